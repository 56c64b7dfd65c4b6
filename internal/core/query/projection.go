// Package query holds stateless projections over store snapshots. Every
// function returns a fresh slice and never mutates its input.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
)

// StatusFilterAll is the passthrough value for appointment filtering.
const StatusFilterAll = "all"

// AppointmentsByStatus returns the appointments whose status matches the
// filter. "all" or "" passes everything through. Order follows the input
// snapshot (creation order).
func AppointmentsByStatus(appointments []domain.Appointment, status string) []domain.Appointment {
	out := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if status == "" || status == StatusFilterAll || string(a.Status) == status {
			out = append(out, a)
		}
	}
	return out
}

// AppointmentsByDate returns a copy sorted by calendar date ascending,
// stable with respect to creation order for same-day appointments.
func AppointmentsByDate(appointments []domain.Appointment) []domain.Appointment {
	out := append([]domain.Appointment(nil), appointments...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// CountByStatus returns how many appointments carry the given status.
func CountByStatus(appointments []domain.Appointment, status domain.AppointmentStatus) int {
	n := 0
	for _, a := range appointments {
		if a.Status == status {
			n++
		}
	}
	return n
}

// MatchClients returns the clients matching the query: case-insensitive
// substring on name or email, or digit-sequence containment on phone.
// An empty query returns the full snapshot unfiltered.
func MatchClients(clients []domain.Client, q string) []domain.Client {
	q = strings.TrimSpace(q)
	if q == "" {
		return append([]domain.Client(nil), clients...)
	}

	lower := strings.ToLower(q)
	qDigits := digits(q)

	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(strings.ToLower(c.Email), lower) ||
			(qDigits != "" && strings.Contains(digits(c.Phone), qDigits)) {
			out = append(out, c)
		}
	}
	return out
}

// digits strips everything but 0-9 so "555-0100" matches "5550100".
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DateLabel formats an optional date for display. Absent values render as
// the placeholder the dashboard shows for "nothing scheduled".
func DateLabel(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "—"
	}
	return t.Format("Jan 2, 2006")
}
