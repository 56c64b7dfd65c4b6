package feed

import (
	"fmt"
	"time"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/store"
)

// AppointmentEntry phrases an appointment collection change as a feed line.
func AppointmentEntry(change store.Change[domain.Appointment]) domain.ActivityEntry {
	a := change.Entity
	entry := domain.ActivityEntry{
		Entity:     "appointment",
		SubjectID:  a.ID,
		OccurredAt: time.Now().UTC(),
	}

	switch change.Op {
	case store.OpAdd:
		entry.Title = "New appointment"
		entry.Description = fmt.Sprintf("%s scheduled for a %s", a.ClientName, a.Type)
	case store.OpUpdate:
		switch a.Status {
		case domain.StatusCompleted:
			entry.Title = "Appointment completed"
			entry.Description = fmt.Sprintf("%s with %s has been completed", a.Type, a.ClientName)
		case domain.StatusCancelled:
			entry.Title = "Appointment cancelled"
			entry.Description = fmt.Sprintf("%s with %s has been cancelled", a.Type, a.ClientName)
		default:
			entry.Title = "Appointment rescheduled"
			entry.Description = fmt.Sprintf("%s with %s is back on the schedule", a.Type, a.ClientName)
		}
	default:
		entry.Title = "Appointment removed"
		entry.Description = fmt.Sprintf("%s with %s was removed", a.Type, a.ClientName)
	}
	return entry
}

// ClientEntry phrases a client collection change as a feed line.
func ClientEntry(change store.Change[domain.Client]) domain.ActivityEntry {
	c := change.Entity
	entry := domain.ActivityEntry{
		Entity:     "client",
		SubjectID:  c.ID,
		OccurredAt: time.Now().UTC(),
	}

	switch change.Op {
	case store.OpAdd:
		entry.Title = "New client"
		entry.Description = fmt.Sprintf("%s was added to the directory", c.Name)
	case store.OpUpdate:
		entry.Title = "Client updated"
		entry.Description = fmt.Sprintf("Details for %s were updated", c.Name)
	default:
		entry.Title = "Client removed"
		entry.Description = fmt.Sprintf("%s was removed from the directory", c.Name)
	}
	return entry
}
