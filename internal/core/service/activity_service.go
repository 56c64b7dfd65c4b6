package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/api/metrics"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
)

const defaultRecentLimit = 10

type ActivityFeedService struct {
	repo   ports.ActivityRepository
	logger zerolog.Logger
}

func NewActivityFeedService(repo ports.ActivityRepository, logger zerolog.Logger) *ActivityFeedService {
	return &ActivityFeedService{repo: repo, logger: logger}
}

// Record appends one entry to the feed.
func (s *ActivityFeedService) Record(ctx context.Context, entry domain.ActivityEntry) error {
	stored, err := s.repo.Append(ctx, entry)
	if err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivityRecordedTotal.WithLabelValues(entry.Entity).Inc()
	s.logger.Debug().
		Str("activity_id", stored.ID).
		Str("entity", entry.Entity).
		Str("title", entry.Title).
		Msg("activity recorded")

	return nil
}

// Recent returns up to limit entries, newest first.
func (s *ActivityFeedService) Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	entries, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return entries, nil
}
