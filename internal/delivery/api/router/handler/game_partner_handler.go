package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"hive/internal/delivery/api/middleware"
	"hive/internal/delivery/api/response"
	"hive/internal/domain/matching"
	"hive/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GamePartnerHandlerParams holds dependencies for GamePartnerHandler, injected by Fx.
type GamePartnerHandlerParams struct {
	fx.In

	GamePartnerUC usecase.GamePartnerUsecase
	Logger        *slog.Logger
}

// GamePartnerHandler serves the game partner finder.
type GamePartnerHandler struct {
	gamePartnerUC usecase.GamePartnerUsecase
	logger        *slog.Logger
}

// NewGamePartnerHandler is the constructor for GamePartnerHandler
func NewGamePartnerHandler(params GamePartnerHandlerParams) *GamePartnerHandler {
	return &GamePartnerHandler{
		gamePartnerUC: params.GamePartnerUC,
		logger:        params.Logger,
	}
}

// AddGameRequest names the game to add at Beginner level
type AddGameRequest struct {
	Game string `json:"game" validate:"required"`
}

// SetSkillRequest carries the new level of a game
type SetSkillRequest struct {
	SkillLevel string `json:"skillLevel" validate:"required,skill_level"`
}

// List returns the partners matching the query filters
func (h *GamePartnerHandler) List(c echo.Context) error {
	partners, err := h.gamePartnerUC.List(c.Request().Context(), matching.GamePartnerFilter{
		Search:       c.QueryParam("search"),
		Game:         c.QueryParam("game"),
		SkillLevel:   c.QueryParam("skill_level"),
		Availability: c.QueryParam("availability"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, partners)
}

// Options returns the skill level and availability choices
func (h *GamePartnerHandler) Options(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.gamePartnerUC.Options())
}

// AddPartner publishes a new partner card
func (h *GamePartnerHandler) AddPartner(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.AddGamePartnerInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	partners, err := h.gamePartnerUC.AddPartner(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, partners)
}

// RemovePartner deletes a partner card
func (h *GamePartnerHandler) RemovePartner(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	partners, err := h.gamePartnerUC.RemovePartner(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, partners)
}

// AddGame adds a game to a partner
func (h *GamePartnerHandler) AddGame(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req AddGameRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	partners, err := h.gamePartnerUC.AddGame(c.Request().Context(), actor, c.Param("id"), req.Game)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, partners)
}

// SetSkill changes the level of one game of a partner
func (h *GamePartnerHandler) SetSkill(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	game, err := url.PathUnescape(c.Param("game"))
	if err != nil {
		return response.BadRequest(c, "INVALID_GAME", "Invalid game name")
	}

	var req SetSkillRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	partners, err := h.gamePartnerUC.SetSkill(c.Request().Context(), actor, c.Param("id"), game, req.SkillLevel)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, partners)
}

// RemoveGame drops one game from a partner
func (h *GamePartnerHandler) RemoveGame(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	game, err := url.PathUnescape(c.Param("game"))
	if err != nil {
		return response.BadRequest(c, "INVALID_GAME", "Invalid game name")
	}

	partners, err := h.gamePartnerUC.RemoveGame(c.Request().Context(), actor, c.Param("id"), game)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, partners)
}

// Reset restores the default partners
func (h *GamePartnerHandler) Reset(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	partners, err := h.gamePartnerUC.Reset(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, partners)
}
