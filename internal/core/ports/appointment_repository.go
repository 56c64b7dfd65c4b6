package ports

import (
	"context"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/store"
)

// AppointmentRepository defines collection operations for appointments.
// There is deliberately no Delete: appointments leave circulation only by
// reaching a terminal status.
type AppointmentRepository interface {
	// Create stores the draft, assigning its id, and returns the stored entity.
	Create(ctx context.Context, draft domain.Appointment) (domain.Appointment, error)
	FindByID(ctx context.Context, id string) (domain.Appointment, error)
	// UpdateStatus rewrites only the status of the appointment with the
	// given id. Every other field is preserved.
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (domain.Appointment, error)
	// List returns a detached snapshot of all appointments in creation order.
	List(ctx context.Context) ([]domain.Appointment, error)
	// Watch registers a subscriber for collection change notifications.
	Watch(fn func(store.Change[domain.Appointment]))
}
