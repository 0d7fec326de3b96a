package handler

import (
	"net/http"

	"hive/internal/delivery/api/response"
	"hive/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ActivityHandler serves the recent changes feed.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(activityUC usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{activityUC: activityUC}
}

// List returns the newest feed entries, optionally for one collection key
func (h *ActivityHandler) List(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return invalidQuery(c, err)
	}

	feed, err := h.activityUC.List(c.Request().Context(), c.QueryParam("key"), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, feed)
}
