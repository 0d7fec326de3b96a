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

// RideHandlerParams holds dependencies for RideHandler, injected by Fx.
type RideHandlerParams struct {
	fx.In

	AutoShareUC usecase.AutoShareUsecase
	Logger      *slog.Logger
}

// RideHandler serves ride sharing.
type RideHandler struct {
	autoShareUC usecase.AutoShareUsecase
	logger      *slog.Logger
}

// NewRideHandler is the constructor for RideHandler
func NewRideHandler(params RideHandlerParams) *RideHandler {
	return &RideHandler{
		autoShareUC: params.AutoShareUC,
		logger:      params.Logger,
	}
}

// List returns the rides matching the query filters
func (h *RideHandler) List(c echo.Context) error {
	shares, err := h.autoShareUC.List(c.Request().Context(), matching.AutoShareFilter{
		StartLocation: c.QueryParam("start"),
		Destination:   c.QueryParam("destination"),
		VehicleType:   c.QueryParam("vehicle_type"),
		Day:           c.QueryParam("day"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shares)
}

// Options returns the day and vehicle choices
func (h *RideHandler) Options(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.autoShareUC.Options())
}

// AddShare offers a new ride
func (h *RideHandler) AddShare(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.AddAutoShareInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	shares, err := h.autoShareUC.AddShare(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shares)
}

// RemoveShare withdraws a ride
func (h *RideHandler) RemoveShare(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	shares, err := h.autoShareUC.RemoveShare(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shares)
}

// Reset restores the default rides
func (h *RideHandler) Reset(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	shares, err := h.autoShareUC.Reset(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shares)
}
