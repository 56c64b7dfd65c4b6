package ports

import (
	"context"
	"time"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
)

// CreateAppointmentInput carries all data needed to create an appointment.
// Role is the active session role; it decides which Type values are legal.
type CreateAppointmentInput struct {
	Role       domain.Role
	ClientName string
	Date       time.Time
	Time       string
	Duration   string
	Type       string
	Notes      string
}

// ListAppointmentsInput carries all parameters for the list operation.
// Status may be an exact status, "all", or empty (both mean no filter).
type ListAppointmentsInput struct {
	Status string
	Page   int // 1-based
	Limit  int // capped at 100 by the service
}

// ListAppointmentsResult is returned by List.
type ListAppointmentsResult struct {
	Items      []domain.Appointment
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// AppointmentService defines the appointment lifecycle operations.
type AppointmentService interface {
	Create(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error)
	// Transition moves the appointment to target per the status state
	// machine. A transition to the current status is a no-op, not an error.
	Transition(ctx context.Context, id string, target domain.AppointmentStatus) (*domain.Appointment, error)
	List(ctx context.Context, input ListAppointmentsInput) (*ListAppointmentsResult, error)
}
