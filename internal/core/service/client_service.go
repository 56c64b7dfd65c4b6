package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/api/metrics"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/ports"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/query"
)

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// Create validates the identity fields and stores the client. Status,
// tags, and appointment dates are assigned here, never by the caller:
// every new client starts active and tagged "New Client".
func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)

	switch {
	case name == "":
		return nil, fmt.Errorf("create client: %w: name", domain.ErrInvalidField)
	case email == "":
		return nil, fmt.Errorf("create client: %w: email", domain.ErrInvalidField)
	case phone == "":
		return nil, fmt.Errorf("create client: %w: phone", domain.ErrInvalidField)
	}

	draft := domain.Client{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Status:    domain.ClientActive,
		Tags:      []string{domain.TagNewClient},
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, draft)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, fmt.Errorf("create client: %w", err)
	}

	metrics.ClientsCreatedTotal.Inc()
	s.logger.Info().
		Str("client_id", created.ID).
		Str("name", created.Name).
		Msg("client created")

	return &created, nil
}

// Update applies the non-nil fields of patch to the stored client. The id
// is never patchable; the repository reasserts it.
func (s *ClientService) Update(ctx context.Context, id string, patch ports.UpdateClientInput) (*domain.Client, error) {
	updated, err := s.repo.Update(ctx, id, func(c domain.Client) domain.Client {
		if patch.Name != nil {
			c.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Email != nil {
			c.Email = strings.TrimSpace(*patch.Email)
		}
		if patch.Phone != nil {
			c.Phone = strings.TrimSpace(*patch.Phone)
		}
		if patch.Notes != nil {
			c.Notes = *patch.Notes
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.Tags != nil {
			c.Tags = append([]string(nil), (*patch.Tags)...)
		}
		if patch.LastAppointment != nil {
			t := *patch.LastAppointment
			c.LastAppointment = &t
		}
		if patch.NextAppointment != nil {
			t := *patch.NextAppointment
			c.NextAppointment = &t
		}
		return c
	})
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	s.logger.Info().Str("client_id", id).Msg("client updated")
	return &updated, nil
}

// Delete removes the client permanently. There is no cascade: any
// appointments naming this client are left untouched.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	metrics.ClientsDeletedTotal.Inc()
	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

// Search returns a page of clients matching the query. An empty query
// returns the whole directory in insertion order.
func (s *ClientService) Search(ctx context.Context, input ports.SearchClientsInput) (*ports.SearchClientsResult, error) {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}

	kind := "full"
	if strings.TrimSpace(input.Query) != "" {
		kind = "filtered"
	}
	metrics.ClientSearchesTotal.WithLabelValues(kind).Inc()

	matched := query.MatchClients(snapshot, input.Query)
	page, limit := normalizePage(input.Page, input.Limit)
	items, total, totalPages := paginate(matched, page, limit)

	return &ports.SearchClientsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
