package ports

import (
	"context"
	"time"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
)

// CreateClientInput carries the caller-settable fields for a new client.
// Status, tags, and appointment dates are assigned by the service.
type CreateClientInput struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// UpdateClientInput is a partial update; nil fields are left untouched.
type UpdateClientInput struct {
	Name            *string
	Email           *string
	Phone           *string
	Notes           *string
	Status          *domain.ClientStatus
	Tags            *[]string
	LastAppointment *time.Time
	NextAppointment *time.Time
}

// SearchClientsInput carries all parameters for the search operation.
// An empty Query returns the full collection in insertion order.
type SearchClientsInput struct {
	Query string
	Page  int // 1-based
	Limit int // capped at 100 by the service
}

// SearchClientsResult is returned by Search.
type SearchClientsResult struct {
	Items      []domain.Client
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// ClientService defines the client directory operations.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, patch UpdateClientInput) (*domain.Client, error)
	// Delete removes the client outright. Deletion and status=inactive are
	// independent paths; neither implies the other.
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, input SearchClientsInput) (*SearchClientsResult, error)
}
