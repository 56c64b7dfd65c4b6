package domain

import "time"

// ClientStatus marks whether a client is currently active. Deactivation
// and deletion are independent paths: setting inactive keeps the record,
// deletion removes it outright.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

// Well-known client tags. Tags are free-form labels; these are the ones
// the application assigns or surfaces by default.
const (
	TagNewClient = "New Client"
	TagRegular   = "Regular"
	TagVIP       = "VIP"
)

// Client is a person served by the professional. LastAppointment and
// NextAppointment are informational only and are not cross-validated
// against the appointment collection.
type Client struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Status          ClientStatus `json:"status"`
	Tags            []string     `json:"tags"`
	LastAppointment *time.Time   `json:"last_appointment,omitempty"`
	NextAppointment *time.Time   `json:"next_appointment,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// EntityID satisfies the store identity contract.
func (c Client) EntityID() string { return c.ID }

// HasTag reports whether the client carries the given tag.
func (c Client) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
