package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
)

// ClientHandler exposes the client directory over HTTP.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create handles POST /v1/clients.
func (h *ClientHandler) Create(c echo.Context) error {
	var req CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), ports.CreateClientInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, client)
}

// Search handles GET /v1/clients?q=&page=&limit=.
func (h *ClientHandler) Search(c echo.Context) error {
	result, err := h.service.Search(c.Request().Context(), ports.SearchClientsInput{
		Query: c.QueryParam("q"),
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SearchClientsResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Update handles PATCH /v1/clients/:id.
func (h *ClientHandler) Update(c echo.Context) error {
	var req UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	patch := ports.UpdateClientInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Notes:           req.Notes,
		Tags:            req.Tags,
		LastAppointment: req.LastAppointment,
		NextAppointment: req.NextAppointment,
	}
	if req.Status != nil {
		status := domain.ClientStatus(*req.Status)
		patch.Status = &status
	}

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /v1/clients/:id.
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
