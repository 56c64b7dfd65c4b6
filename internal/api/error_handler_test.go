package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
)

func TestResolveError_DomainSentinels(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	log := zerolog.Nop()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"appointment not found", fmt.Errorf("op: %w", domain.ErrAppointmentNotFound), http.StatusNotFound},
		{"client not found", fmt.Errorf("op: %w", domain.ErrClientNotFound), http.StatusNotFound},
		{"invalid field", fmt.Errorf("op: %w: name", domain.ErrInvalidField), http.StatusUnprocessableEntity},
		{"invalid type", fmt.Errorf("op: %w", domain.ErrInvalidAppointmentType), http.StatusUnprocessableEntity},
		{"terminal status", fmt.Errorf("op: %w", domain.ErrTerminalStatus), http.StatusConflict},
		{"illegal transition", fmt.Errorf("op: %w", domain.ErrIllegalTransition), http.StatusConflict},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError},
		{"echo http error", echo.NewHTTPError(http.StatusBadRequest, "bad"), http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := resolveError(tc.err, log, c)
			if code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, code)
			}
		})
	}
}

func TestResolveError_HidesInternalDetail(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, msg := resolveError(fmt.Errorf("connection string leaked"), zerolog.Nop(), c)
	if msg != "internal server error" {
		t.Errorf("internal detail leaked to client: %q", msg)
	}
}
