package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/api/metrics"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/query"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type AppointmentService struct {
	repo   ports.AppointmentRepository
	logger zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, logger: logger}
}

// Create validates the draft against the active role's capability profile
// and stores it. The status is always forced to scheduled; whatever the
// caller might have set is irrelevant by construction. All validation runs
// before any mutation.
func (s *AppointmentService) Create(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	if err := validateAppointmentFields(input); err != nil {
		metrics.AppointmentErrorsTotal.WithLabelValues("invalid_field").Inc()
		return nil, err
	}

	profile := domain.Capabilities(input.Role)
	if !profile.AllowsType(input.Type) {
		metrics.AppointmentErrorsTotal.WithLabelValues("invalid_type").Inc()
		return nil, fmt.Errorf("create appointment: %w: %q not permitted for %s",
			domain.ErrInvalidAppointmentType, input.Type, profile.Role)
	}

	draft := domain.Appointment{
		ClientName: strings.TrimSpace(input.ClientName),
		Date:       input.Date,
		Time:       input.Time,
		Duration:   input.Duration,
		Status:     domain.StatusScheduled,
		Type:       input.Type,
		Notes:      input.Notes,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, draft)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create appointment")
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	metrics.AppointmentsCreatedTotal.WithLabelValues(string(profile.Role), created.Type).Inc()
	s.logger.Info().
		Str("appointment_id", created.ID).
		Str("client_name", created.ClientName).
		Str("type", created.Type).
		Str("role", string(profile.Role)).
		Msg("appointment created")

	return &created, nil
}

// Transition moves the appointment to target per the state machine.
// A transition to the current status is a no-op returning the unchanged
// entity. From a terminal status every move fails; between non-adjacent
// states the move fails as illegal. No third outcome exists.
func (s *AppointmentService) Transition(ctx context.Context, id string, target domain.AppointmentStatus) (*domain.Appointment, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		metrics.AppointmentErrorsTotal.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("transition appointment: %w", err)
	}

	if current.Status == target {
		s.logger.Debug().
			Str("appointment_id", id).
			Str("status", string(target)).
			Msg("transition to current status, no-op")
		return &current, nil
	}

	if current.Status.IsTerminal() {
		metrics.AppointmentErrorsTotal.WithLabelValues("terminal_status").Inc()
		return nil, fmt.Errorf("transition appointment: %w (from %s to %s)",
			domain.ErrTerminalStatus, current.Status, target)
	}

	if !current.Status.CanTransitionTo(target) {
		metrics.AppointmentErrorsTotal.WithLabelValues("illegal_transition").Inc()
		return nil, fmt.Errorf("transition appointment: %w (from %s to %s)",
			domain.ErrIllegalTransition, current.Status, target)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, target)
	if err != nil {
		return nil, fmt.Errorf("transition appointment: %w", err)
	}

	metrics.AppointmentTransitionsTotal.WithLabelValues(string(current.Status), string(target)).Inc()
	s.logger.Info().
		Str("appointment_id", id).
		Str("from", string(current.Status)).
		Str("to", string(target)).
		Msg("appointment transitioned")

	return &updated, nil
}

// List returns a page of appointments filtered by status ("all" or empty
// passes everything through), in creation order.
func (s *AppointmentService) List(ctx context.Context, input ports.ListAppointmentsInput) (*ports.ListAppointmentsResult, error) {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	filtered := query.AppointmentsByStatus(snapshot, input.Status)
	page, limit := normalizePage(input.Page, input.Limit)
	items, total, totalPages := paginate(filtered, page, limit)

	return &ports.ListAppointmentsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func validateAppointmentFields(input ports.CreateAppointmentInput) error {
	switch {
	case strings.TrimSpace(input.ClientName) == "":
		return fmt.Errorf("create appointment: %w: client_name", domain.ErrInvalidField)
	case input.Date.IsZero():
		return fmt.Errorf("create appointment: %w: date", domain.ErrInvalidField)
	case strings.TrimSpace(input.Time) == "":
		return fmt.Errorf("create appointment: %w: time", domain.ErrInvalidField)
	case !domain.ValidDuration(input.Duration):
		return fmt.Errorf("create appointment: %w: duration %q", domain.ErrInvalidField, input.Duration)
	}
	return nil
}

// normalizePage applies the shared pagination defaults: 1-based pages and
// a limit capped at maxPageLimit.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// paginate slices one page out of items and returns it with the total
// count and page count.
func paginate[T any](items []T, page, limit int) ([]T, int, int) {
	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start >= total {
		return []T{}, total, totalPages
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], total, totalPages
}
