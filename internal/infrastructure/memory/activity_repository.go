package memory

import (
	"context"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/store"
)

// feedCap bounds the feed; the oldest entry is evicted once it is full.
const feedCap = 100

type ActivityRepository struct {
	store *store.Store[domain.ActivityEntry]
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{
		store: store.New(func(e domain.ActivityEntry, id string) domain.ActivityEntry {
			e.ID = id
			return e
		}),
	}
}

// Append stores the entry, evicting the oldest one beyond the cap.
func (r *ActivityRepository) Append(_ context.Context, entry domain.ActivityEntry) (domain.ActivityEntry, error) {
	stored := r.store.Add(entry)
	for r.store.Len() > feedCap {
		oldest := r.store.List()[0]
		if err := r.store.Remove(oldest.ID); err != nil {
			break
		}
	}
	return stored, nil
}

// Recent returns up to limit entries, newest first.
func (r *ActivityRepository) Recent(_ context.Context, limit int) ([]domain.ActivityEntry, error) {
	all := r.store.List()
	out := make([]domain.ActivityEntry, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
