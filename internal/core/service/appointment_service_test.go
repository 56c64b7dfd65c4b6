package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/infrastructure/memory"
)

func newAppointmentService() (*AppointmentService, *memory.AppointmentRepository) {
	repo := memory.NewAppointmentRepository()
	return NewAppointmentService(repo, zerolog.Nop()), repo
}

func validCreateInput(role domain.Role, typ string) ports.CreateAppointmentInput {
	return ports.CreateAppointmentInput{
		Role:       role,
		ClientName: "John Doe",
		Date:       time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC),
		Time:       "09:00 AM",
		Duration:   "30 min",
		Type:       typ,
	}
}

func TestCreate_AllowedTypeForRole(t *testing.T) {
	svc, _ := newAppointmentService()

	got, err := svc.Create(context.Background(), validCreateInput(domain.RoleDoctor, "Consultation"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" {
		t.Error("expected an assigned id")
	}
	if got.Status != domain.StatusScheduled {
		t.Errorf("expected status scheduled, got %q", got.Status)
	}
	if got.Type != "Consultation" {
		t.Errorf("expected type Consultation, got %q", got.Type)
	}
}

func TestCreate_TypeOutsideRoleVocabulary(t *testing.T) {
	svc, repo := newAppointmentService()

	// Consultation belongs to the doctor vocabulary, not the barber one.
	_, err := svc.Create(context.Background(), validCreateInput(domain.RoleBarber, "Consultation"))
	if !errors.Is(err, domain.ErrInvalidAppointmentType) {
		t.Fatalf("expected ErrInvalidAppointmentType, got %v", err)
	}

	// Validation failed, so nothing may have been stored.
	all, _ := repo.List(context.Background())
	if len(all) != 0 {
		t.Errorf("expected empty store after rejected create, got %d items", len(all))
	}
}

func TestCreate_UnknownRoleGenericType(t *testing.T) {
	svc, _ := newAppointmentService()

	got, err := svc.Create(context.Background(), validCreateInput(domain.RoleUnknown, "Appointment"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusScheduled {
		t.Errorf("expected scheduled, got %q", got.Status)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	svc, _ := newAppointmentService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*ports.CreateAppointmentInput)
	}{
		{"empty client name", func(in *ports.CreateAppointmentInput) { in.ClientName = "  " }},
		{"zero date", func(in *ports.CreateAppointmentInput) { in.Date = time.Time{} }},
		{"empty time", func(in *ports.CreateAppointmentInput) { in.Time = "" }},
		{"unlisted duration", func(in *ports.CreateAppointmentInput) { in.Duration = "25 min" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateInput(domain.RoleDoctor, "Consultation")
			tc.mutate(&in)
			if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrInvalidField) {
				t.Errorf("expected ErrInvalidField, got %v", err)
			}
		})
	}
}

func TestTransition_ScheduledToCompleted(t *testing.T) {
	svc, _ := newAppointmentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput(domain.RoleDoctor, "Check-up"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Transition(ctx, created.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusCompleted {
		t.Errorf("expected completed, got %q", got.Status)
	}
}

func TestTransition_CompletedIsTerminal(t *testing.T) {
	svc, repo := newAppointmentService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, validCreateInput(domain.RoleDoctor, "Check-up"))
	if _, err := svc.Transition(ctx, created.ID, domain.StatusCompleted); err != nil {
		t.Fatalf("transition to completed: %v", err)
	}

	_, err := svc.Transition(ctx, created.ID, domain.StatusCancelled)
	if !errors.Is(err, domain.ErrTerminalStatus) {
		t.Fatalf("expected ErrTerminalStatus, got %v", err)
	}

	// The failed transition must not have touched the stored entity.
	stored, _ := repo.FindByID(ctx, created.ID)
	if stored.Status != domain.StatusCompleted {
		t.Errorf("expected stored status completed, got %q", stored.Status)
	}
}

func TestTransition_CancelledBackToScheduled(t *testing.T) {
	svc, _ := newAppointmentService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, validCreateInput(domain.RoleTutor, "Exam Prep"))
	if _, err := svc.Transition(ctx, created.ID, domain.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got, err := svc.Transition(ctx, created.ID, domain.StatusScheduled)
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if got.Status != domain.StatusScheduled {
		t.Errorf("expected scheduled, got %q", got.Status)
	}
	// Rescheduling only rewrites the status.
	if got.ID != created.ID || got.ClientName != created.ClientName || got.Type != created.Type {
		t.Error("reschedule changed fields other than status")
	}
}

func TestTransition_SameStatusIsNoOp(t *testing.T) {
	svc, _ := newAppointmentService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, validCreateInput(domain.RoleGymTrainer, "Group Workout"))

	got, err := svc.Transition(ctx, created.ID, domain.StatusScheduled)
	if err != nil {
		t.Fatalf("expected no-op, got error: %v", err)
	}
	if got.Status != domain.StatusScheduled {
		t.Errorf("expected scheduled, got %q", got.Status)
	}
}

func TestTransition_UnknownID(t *testing.T) {
	svc, _ := newAppointmentService()

	_, err := svc.Transition(context.Background(), "no-such-id", domain.StatusCompleted)
	if !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestList_StatusFilterAndPagination(t *testing.T) {
	svc, _ := newAppointmentService()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		created, err := svc.Create(ctx, validCreateInput(domain.RoleBarber, "Haircut"))
		if err != nil {
			t.Fatalf("create #%d: %v", i, err)
		}
		ids = append(ids, created.ID)
	}
	// Cancel the middle one.
	if _, err := svc.Transition(ctx, ids[2], domain.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	scheduled, err := svc.List(ctx, ports.ListAppointmentsInput{Status: "scheduled"})
	if err != nil {
		t.Fatalf("list scheduled: %v", err)
	}
	if scheduled.Total != 4 {
		t.Errorf("expected 4 scheduled, got %d", scheduled.Total)
	}

	all, err := svc.List(ctx, ports.ListAppointmentsInput{Status: "all", Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all.Total != 5 || all.TotalPages != 3 || len(all.Items) != 2 {
		t.Errorf("unexpected paging: total=%d pages=%d items=%d", all.Total, all.TotalPages, len(all.Items))
	}
	// Creation order is preserved, so page 2 starts with the third entity.
	if all.Items[0].ID != ids[2] {
		t.Errorf("expected page 2 to start at %s, got %s", ids[2], all.Items[0].ID)
	}
}

func TestList_PageBeyondEnd(t *testing.T) {
	svc, _ := newAppointmentService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validCreateInput(domain.RoleDoctor, "Emergency")); err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := svc.List(ctx, ports.ListAppointmentsInput{Page: 9, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Items) != 0 || result.Total != 1 {
		t.Errorf("expected empty page with total 1, got items=%d total=%d", len(result.Items), result.Total)
	}
}
