package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
)

// ActivityHandler serves the recent-activity feed.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Recent handles GET /v1/activity?limit=.
func (h *ActivityHandler) Recent(c echo.Context) error {
	entries, err := h.service.Recent(c.Request().Context(), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
