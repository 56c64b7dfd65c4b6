package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
)

// CapabilityHandler serves the resolved capability profile for the
// request's role. Resolution is pure, so there is no service behind it.
type CapabilityHandler struct{}

func NewCapabilityHandler() *CapabilityHandler {
	return &CapabilityHandler{}
}

// Get handles GET /v1/capabilities.
func (h *CapabilityHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Capabilities(sessionRole(c)))
}
