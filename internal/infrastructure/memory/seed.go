package memory

import (
	"context"
	"time"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// SeedDemoData loads the demo fixtures used for local development so the
// dashboard is not empty on first start.
func SeedDemoData(ctx context.Context, appointments *AppointmentRepository, clients *ClientRepository) error {
	demoAppointments := []domain.Appointment{
		{
			ClientName: "John Doe",
			Date:       date(2023, 6, 12),
			Time:       "10:00 AM",
			Duration:   "1 hour",
			Status:     domain.StatusScheduled,
			Type:       "Consultation",
			Notes:      "First time client",
		},
		{
			ClientName: "Jane Smith",
			Date:       date(2023, 6, 13),
			Time:       "2:30 PM",
			Duration:   "45 min",
			Status:     domain.StatusCompleted,
			Type:       "Follow-up",
			Notes:      "Regular client",
		},
		{
			ClientName: "Robert Johnson",
			Date:       date(2023, 6, 14),
			Time:       "11:15 AM",
			Duration:   "30 min",
			Status:     domain.StatusCancelled,
			Type:       "Check-up",
			Notes:      "Cancelled due to illness",
		},
	}
	demoClients := []domain.Client{
		{
			Name:            "Emma Johnson",
			Email:           "emma.j@example.com",
			Phone:           "+1 (555) 123-4567",
			Status:          domain.ClientActive,
			Tags:            []string{domain.TagVIP, domain.TagRegular},
			LastAppointment: datePtr(2023, 5, 10),
			NextAppointment: datePtr(2023, 6, 15),
			Notes:           "Prefers evening appointments",
		},
		{
			Name:            "Michael Brown",
			Email:           "mike.brown@example.com",
			Phone:           "+1 (555) 234-5678",
			Status:          domain.ClientActive,
			Tags:            []string{domain.TagNewClient},
			LastAppointment: datePtr(2023, 5, 5),
			NextAppointment: datePtr(2023, 6, 20),
			Notes:           "Allergic to certain products",
		},
		{
			Name:            "Sophia Martinez",
			Email:           "sophia.m@example.com",
			Phone:           "+1 (555) 345-6789",
			Status:          domain.ClientInactive,
			Tags:            []string{},
			LastAppointment: datePtr(2023, 1, 20),
		},
	}

	now := time.Now().UTC()
	for _, a := range demoAppointments {
		a.CreatedAt = now
		if _, err := appointments.Create(ctx, a); err != nil {
			return err
		}
	}
	for _, c := range demoClients {
		c.CreatedAt = now
		if _, err := clients.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
