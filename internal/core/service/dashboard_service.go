package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/query"
)

type DashboardService struct {
	appointments ports.AppointmentRepository
	clients      ports.ClientRepository
	activity     ports.ActivityService
	logger       zerolog.Logger
}

func NewDashboardService(
	appointments ports.AppointmentRepository,
	clients ports.ClientRepository,
	activity ports.ActivityService,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		appointments: appointments,
		clients:      clients,
		activity:     activity,
		logger:       logger,
	}
}

// Summary composes the role's capability templates with live counts and
// the recent-activity feed. Every consumer of role-derived data goes
// through domain.Capabilities; the dashboard never branches on the role
// string itself.
func (s *DashboardService) Summary(ctx context.Context, role domain.Role) (*ports.DashboardSummary, error) {
	profile := domain.Capabilities(role)

	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	// Feed trouble must not take the dashboard down with it.
	recent, err := s.activity.Recent(ctx, defaultRecentLimit)
	if err != nil {
		s.logger.Warn().Err(err).Msg("recent activity unavailable, serving summary without it")
		recent = nil
	}

	return &ports.DashboardSummary{
		Role:              profile.Role,
		StatTemplates:     profile.StatTemplates,
		ActivityTemplates: profile.ActivityTemplates,
		RecentActivity:    recent,
		ScheduledToday:    scheduledToday(appointments, time.Now().UTC()),
		TotalClients:      len(clients),
	}, nil
}

// scheduledToday counts scheduled appointments whose calendar date matches
// now's date.
func scheduledToday(appointments []domain.Appointment, now time.Time) int {
	y, m, d := now.Date()
	n := 0
	for _, a := range query.AppointmentsByStatus(appointments, string(domain.StatusScheduled)) {
		ay, am, ad := a.Date.Date()
		if ay == y && am == m && ad == d {
			n++
		}
	}
	return n
}
