package handler

import "github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"

// CreateAppointmentRequest is the POST /v1/appointments body.
type CreateAppointmentRequest struct {
	ClientName string `json:"client_name" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"time" validate:"required"`
	Duration   string `json:"duration" validate:"required,oneof='30 min' '45 min' '1 hour' '1.5 hours' '2 hours'"`
	Type       string `json:"type" validate:"required"`
	Notes      string `json:"notes"`
}

// TransitionAppointmentRequest is the PATCH /v1/appointments/:id/status body.
type TransitionAppointmentRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

// ListAppointmentsResponse pairs the page of items with paging metadata.
type ListAppointmentsResponse struct {
	Items      []domain.Appointment `json:"items"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
}
