package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/infrastructure/memory"
)

func newClientService() (*ClientService, *memory.ClientRepository) {
	repo := memory.NewClientRepository()
	return NewClientService(repo, zerolog.Nop()), repo
}

func TestClientCreate_DefaultsApplied(t *testing.T) {
	svc, _ := newClientService()

	got, err := svc.Create(context.Background(), ports.CreateClientInput{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "555-0100",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" {
		t.Error("expected an assigned id")
	}
	if got.Status != domain.ClientActive {
		t.Errorf("expected status active, got %q", got.Status)
	}
	if !reflect.DeepEqual(got.Tags, []string{domain.TagNewClient}) {
		t.Errorf("expected tags [%q], got %v", domain.TagNewClient, got.Tags)
	}
	if got.LastAppointment != nil || got.NextAppointment != nil {
		t.Error("expected no appointment dates on a fresh client")
	}
}

func TestClientCreate_MissingIdentityFields(t *testing.T) {
	svc, _ := newClientService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input ports.CreateClientInput
	}{
		{"missing name", ports.CreateClientInput{Email: "a@b.com", Phone: "555"}},
		{"missing email", ports.CreateClientInput{Name: "A", Phone: "555"}},
		{"missing phone", ports.CreateClientInput{Name: "A", Email: "a@b.com"}},
		{"whitespace name", ports.CreateClientInput{Name: "   ", Email: "a@b.com", Phone: "555"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.input); !errors.Is(err, domain.ErrInvalidField) {
				t.Errorf("expected ErrInvalidField, got %v", err)
			}
		})
	}
}

func TestClientUpdate_PartialPatch(t *testing.T) {
	svc, _ := newClientService()
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateClientInput{
		Name:  "Emma Johnson",
		Email: "emma.j@example.com",
		Phone: "(555) 123-4567",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	phone := "(555) 999-0000"
	status := domain.ClientInactive
	got, err := svc.Update(ctx, created.ID, ports.UpdateClientInput{
		Phone:  &phone,
		Status: &status,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Phone != phone {
		t.Errorf("expected patched phone, got %q", got.Phone)
	}
	if got.Status != domain.ClientInactive {
		t.Errorf("expected inactive, got %q", got.Status)
	}
	// Untouched fields survive the patch.
	if got.Name != created.Name || got.Email != created.Email {
		t.Error("patch modified fields that were not set")
	}
	if got.ID != created.ID {
		t.Errorf("patch changed the id: %q -> %q", created.ID, got.ID)
	}
}

func TestClientUpdate_UnknownID(t *testing.T) {
	svc, _ := newClientService()

	name := "Nobody"
	_, err := svc.Update(context.Background(), "no-such-id", ports.UpdateClientInput{Name: &name})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientDelete(t *testing.T) {
	svc, repo := newClientService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, ports.CreateClientInput{
		Name:  "Michael Brown",
		Email: "michael.b@example.com",
		Phone: "(555) 234-5678",
	})

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, created.ID); !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("expected client gone, got %v", err)
	}

	// A second delete reports not found, it does not succeed silently.
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound on repeat delete, got %v", err)
	}
}

func TestClientSearch(t *testing.T) {
	svc, _ := newClientService()
	ctx := context.Background()

	seed := []ports.CreateClientInput{
		{Name: "Emma Johnson", Email: "emma.j@example.com", Phone: "(555) 123-4567"},
		{Name: "Michael Brown", Email: "michael.b@example.com", Phone: "(555) 234-5678"},
		{Name: "Sophia Martinez", Email: "sophia.m@example.com", Phone: "(555) 345-6789"},
	}
	var ids []string
	for _, in := range seed {
		c, err := svc.Create(ctx, in)
		if err != nil {
			t.Fatalf("create %s: %v", in.Name, err)
		}
		ids = append(ids, c.ID)
	}

	t.Run("empty query returns all in insertion order", func(t *testing.T) {
		result, err := svc.Search(ctx, ports.SearchClientsInput{})
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if result.Total != 3 {
			t.Fatalf("expected 3 results, got %d", result.Total)
		}
		for i, c := range result.Items {
			if c.ID != ids[i] {
				t.Errorf("position %d: expected %s, got %s", i, ids[i], c.ID)
			}
		}
	})

	t.Run("name match is case-insensitive", func(t *testing.T) {
		result, err := svc.Search(ctx, ports.SearchClientsInput{Query: "EMMA"})
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if result.Total != 1 || result.Items[0].Name != "Emma Johnson" {
			t.Errorf("expected Emma Johnson, got %+v", result.Items)
		}
	})

	t.Run("email substring matches", func(t *testing.T) {
		result, _ := svc.Search(ctx, ports.SearchClientsInput{Query: "michael.b@"})
		if result.Total != 1 || result.Items[0].Name != "Michael Brown" {
			t.Errorf("expected Michael Brown, got %+v", result.Items)
		}
	})

	t.Run("phone matches on digits regardless of formatting", func(t *testing.T) {
		result, _ := svc.Search(ctx, ports.SearchClientsInput{Query: "3456789"})
		if result.Total != 1 || result.Items[0].Name != "Sophia Martinez" {
			t.Errorf("expected Sophia Martinez, got %+v", result.Items)
		}
	})

	t.Run("no matches yields empty page", func(t *testing.T) {
		result, _ := svc.Search(ctx, ports.SearchClientsInput{Query: "zzz"})
		if result.Total != 0 || len(result.Items) != 0 {
			t.Errorf("expected no results, got %+v", result.Items)
		}
	})
}
