package ports

import (
	"context"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
)

// DashboardSummary is the role-tailored dashboard view: the profile's
// display templates plus the live activity feed and collection counts.
type DashboardSummary struct {
	Role              domain.Role
	StatTemplates     []domain.StatTemplate
	ActivityTemplates []domain.ActivityTemplate
	RecentActivity    []domain.ActivityEntry
	ScheduledToday    int
	TotalClients      int
}

// DashboardService composes the capability profile with live store data.
type DashboardService interface {
	Summary(ctx context.Context, role domain.Role) (*DashboardSummary, error)
}
