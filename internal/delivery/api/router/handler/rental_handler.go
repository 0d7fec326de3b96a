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

// RentalHandlerParams holds dependencies for RentalHandler, injected by Fx.
type RentalHandlerParams struct {
	fx.In

	RentalUC usecase.RentalUsecase
	Logger   *slog.Logger
}

// RentalHandler serves the item rental board.
type RentalHandler struct {
	rentalUC usecase.RentalUsecase
	logger   *slog.Logger
}

// NewRentalHandler is the constructor for RentalHandler
func NewRentalHandler(params RentalHandlerParams) *RentalHandler {
	return &RentalHandler{
		rentalUC: params.RentalUC,
		logger:   params.Logger,
	}
}

// List returns the listings matching the query filters
func (h *RentalHandler) List(c echo.Context) error {
	price, err := queryRange(c, "min_price", "max_price")
	if err != nil {
		return invalidQuery(c, err)
	}
	available, err := queryBool(c, "available")
	if err != nil {
		return invalidQuery(c, err)
	}

	items, err := h.rentalUC.List(c.Request().Context(), matching.RentalFilter{
		Search:    c.QueryParam("search"),
		Category:  c.QueryParam("category"),
		Condition: c.QueryParam("condition"),
		Price:     price,
		Available: available,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// Options returns the category, condition and duration choices
func (h *RentalHandler) Options(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.rentalUC.Options())
}

// AddItem publishes a new listing
func (h *RentalHandler) AddItem(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.AddRentItemInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	items, err := h.rentalUC.AddItem(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, items)
}

// RemoveItem deletes a listing
func (h *RentalHandler) RemoveItem(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	items, err := h.rentalUC.RemoveItem(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// ToggleAvailable rents out or returns a listing
func (h *RentalHandler) ToggleAvailable(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	items, err := h.rentalUC.ToggleAvailable(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// QRCode renders the share code of a listing as PNG
func (h *RentalHandler) QRCode(c echo.Context) error {
	png, err := h.rentalUC.ListingQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Reset restores the default listings
func (h *RentalHandler) Reset(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	items, err := h.rentalUC.Reset(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}
