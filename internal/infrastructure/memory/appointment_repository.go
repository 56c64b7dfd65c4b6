// Package memory provides the in-memory repository adapters. They play
// the role the Mongo adapters would in a persistent deployment: the
// service layer only ever sees the ports interfaces.
package memory

import (
	"context"
	"errors"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/store"
)

type AppointmentRepository struct {
	store *store.Store[domain.Appointment]
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		store: store.New(func(a domain.Appointment, id string) domain.Appointment {
			a.ID = id
			return a
		}),
	}
}

// Create stores the draft and returns it with its assigned id.
func (r *AppointmentRepository) Create(_ context.Context, draft domain.Appointment) (domain.Appointment, error) {
	return r.store.Add(draft), nil
}

// FindByID retrieves an appointment by id.
func (r *AppointmentRepository) FindByID(_ context.Context, id string) (domain.Appointment, error) {
	a, ok := r.store.Get(id)
	if !ok {
		return domain.Appointment{}, domain.ErrAppointmentNotFound
	}
	return a, nil
}

// UpdateStatus rewrites the status and nothing else.
func (r *AppointmentRepository) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) (domain.Appointment, error) {
	updated, err := r.store.Update(id, func(a domain.Appointment) domain.Appointment {
		a.Status = status
		return a
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, domain.ErrAppointmentNotFound
		}
		return domain.Appointment{}, err
	}
	return updated, nil
}

// List returns a detached snapshot in creation order.
func (r *AppointmentRepository) List(_ context.Context) ([]domain.Appointment, error) {
	return r.store.List(), nil
}

// Watch registers a subscriber for collection changes.
func (r *AppointmentRepository) Watch(fn func(store.Change[domain.Appointment])) {
	r.store.Subscribe(fn)
}
