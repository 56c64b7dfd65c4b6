package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
)

const dateLayout = "2006-01-02"

// AppointmentHandler exposes the appointment lifecycle over HTTP.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Create handles POST /v1/appointments.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	// Format is guaranteed by the datetime tag above.
	date, _ := time.Parse(dateLayout, req.Date)

	appointment, err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		Role:       sessionRole(c),
		ClientName: req.ClientName,
		Date:       date,
		Time:       req.Time,
		Duration:   req.Duration,
		Type:       req.Type,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, appointment)
}

// List handles GET /v1/appointments?status=&page=&limit=.
func (h *AppointmentHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), ports.ListAppointmentsInput{
		Status: c.QueryParam("status"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ListAppointmentsResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Transition handles PATCH /v1/appointments/:id/status.
func (h *AppointmentHandler) Transition(c echo.Context) error {
	var req TransitionAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	appointment, err := h.service.Transition(c.Request().Context(), c.Param("id"), domain.AppointmentStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, appointment)
}

// queryInt reads a numeric query parameter, treating absent or malformed
// values as zero so the service applies its defaults.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
