package domain

import "time"

// ActivityEntry is one line in the live recent-activity feed, produced
// from store change notifications.
type ActivityEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Entity      string    `json:"entity"`
	SubjectID   string    `json:"subject_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EntityID satisfies the store identity contract.
func (e ActivityEntry) EntityID() string { return e.ID }
