package handler

import (
	"time"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
)

// CreateClientRequest is the POST /v1/clients body. Status and tags are
// assigned server-side; new clients always start active and tagged "New Client".
type CreateClientRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
	Notes string `json:"notes"`
}

// UpdateClientRequest is the PATCH /v1/clients/:id body. Absent fields are
// left untouched; pointer fields distinguish "absent" from "set to zero".
type UpdateClientRequest struct {
	Name            *string    `json:"name" validate:"omitempty,min=1"`
	Email           *string    `json:"email" validate:"omitempty,email"`
	Phone           *string    `json:"phone" validate:"omitempty,min=1"`
	Notes           *string    `json:"notes"`
	Status          *string    `json:"status" validate:"omitempty,oneof=active inactive"`
	Tags            *[]string  `json:"tags"`
	LastAppointment *time.Time `json:"last_appointment"`
	NextAppointment *time.Time `json:"next_appointment"`
}

// SearchClientsResponse pairs the page of items with paging metadata.
type SearchClientsResponse struct {
	Items      []domain.Client `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}
