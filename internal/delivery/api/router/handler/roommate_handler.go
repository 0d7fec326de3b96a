package handler

import (
	"log/slog"
	"net/http"

	"hive/internal/delivery/api/middleware"
	"hive/internal/delivery/api/response"
	"hive/internal/domain/matching"
	"hive/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RoommateHandlerParams holds dependencies for RoommateHandler, injected by Fx.
type RoommateHandlerParams struct {
	fx.In

	RoommateUC usecase.RoommateUsecase
	Logger     *slog.Logger
}

// RoommateHandler serves the roommate finder.
type RoommateHandler struct {
	roommateUC usecase.RoommateUsecase
	logger     *slog.Logger
}

// NewRoommateHandler is the constructor for RoommateHandler
func NewRoommateHandler(params RoommateHandlerParams) *RoommateHandler {
	return &RoommateHandler{
		roommateUC: params.RoommateUC,
		logger:     params.Logger,
	}
}

// ListCandidates returns every roommate listing
func (h *RoommateHandler) ListCandidates(c echo.Context) error {
	candidates, err := h.roommateUC.ListCandidates(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, candidates)
}

// SearchCandidates filters listings by location, budget range and gender
func (h *RoommateHandler) SearchCandidates(c echo.Context) error {
	budget, err := queryRange(c, "min_budget", "max_budget")
	if err != nil {
		return invalidQuery(c, err)
	}

	candidates, err := h.roommateUC.SearchCandidates(c.Request().Context(), matching.RoommateFilter{
		Location: c.QueryParam("location"),
		Budget:   budget,
		Gender:   c.QueryParam("gender"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, candidates)
}

// AddCandidate publishes a new roommate listing
func (h *RoommateHandler) AddCandidate(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.AddRoommateInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	candidates, err := h.roommateUC.AddCandidate(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, candidates)
}

// RemoveCandidate deletes a listing. Unknown ids leave the list unchanged.
func (h *RoommateHandler) RemoveCandidate(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	candidates, err := h.roommateUC.RemoveCandidate(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, candidates)
}

// GetProfile returns the saved seeker profile of the caller, or null
func (h *RoommateHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	profile, err := h.roommateUC.GetSeekerProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// SaveProfile stores the seeker profile and answers with its matches
func (h *RoommateHandler) SaveProfile(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.SeekerProfileInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.roommateUC.SaveSeekerProfile(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// FindMatches runs the matcher for the saved profile of the caller
func (h *RoommateHandler) FindMatches(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	out, err := h.roommateUC.FindMatches(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Reset restores the default listings
func (h *RoommateHandler) Reset(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	candidates, err := h.roommateUC.Reset(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, candidates)
}
