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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the shared shopping cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// List returns the cart filtered by status and search term
func (h *CartHandler) List(c echo.Context) error {
	filter := matching.CartFilterForStatus(c.QueryParam("status"), c.QueryParam("search"))

	view, err := h.cartUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AddItem puts a new line at the top of the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.AddCartItemInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	view, err := h.cartUC.AddItem(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// RemoveItem deletes one line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	view, err := h.cartUC.RemoveItem(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ToggleCompleted flips the completed flag of one line
func (h *CartHandler) ToggleCompleted(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	view, err := h.cartUC.ToggleCompleted(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ClearCompleted drops every completed line
func (h *CartHandler) ClearCompleted(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	view, err := h.cartUC.ClearCompleted(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Reset restores the default cart
func (h *CartHandler) Reset(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	view, err := h.cartUC.Reset(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
