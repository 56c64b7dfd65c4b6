package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
)

// DashboardHandler serves the composed dashboard summary.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /v1/dashboard/summary.
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context(), sessionRole(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
