package domain

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// completed is terminal; cancelled → scheduled is the reschedule path.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusCompleted, StatusCancelled},
	StatusCancelled: {StatusScheduled},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid. Same-status transitions are handled by the caller as
// no-ops and are not part of the table.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition may ever leave this status.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted
}

// Durations is the fixed vocabulary for the appointment duration label.
var Durations = []string{"30 min", "45 min", "1 hour", "1.5 hours", "2 hours"}

// ValidDuration reports whether d is part of the duration vocabulary.
func ValidDuration(d string) bool {
	for _, v := range Durations {
		if v == d {
			return true
		}
	}
	return false
}

// Appointment is a scheduled engagement with a client. The Date carries a
// time-zone-naive calendar day; the slot itself is the Time label.
type Appointment struct {
	ID         string            `json:"id"`
	ClientName string            `json:"client_name"`
	Date       time.Time         `json:"date"`
	Time       string            `json:"time"`
	Duration   string            `json:"duration"`
	Status     AppointmentStatus `json:"status"`
	Type       string            `json:"type"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// EntityID satisfies the store identity contract.
func (a Appointment) EntityID() string { return a.ID }
