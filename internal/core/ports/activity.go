package ports

import (
	"context"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
)

// ActivityRepository stores recent-activity feed entries, newest last.
// Implementations cap the collection; Recent reads newest first.
type ActivityRepository interface {
	Append(ctx context.Context, entry domain.ActivityEntry) (domain.ActivityEntry, error)
	Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}

// ActivityService records and serves feed entries.
type ActivityService interface {
	// Record appends one entry to the feed. Failures are expected to be
	// treated as non-fatal by callers.
	Record(ctx context.Context, entry domain.ActivityEntry) error
	Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}
