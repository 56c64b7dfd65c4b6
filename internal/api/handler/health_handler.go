package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers liveness probes. All state lives in process
// memory, so there are no downstream dependencies to check.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Live handles GET /health.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
