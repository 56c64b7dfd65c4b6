package ports

import (
	"context"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/store"
)

// ClientRepository defines collection operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, draft domain.Client) (domain.Client, error)
	FindByID(ctx context.Context, id string) (domain.Client, error)
	// Update applies fn to the stored client. Identity is preserved
	// regardless of what fn returns.
	Update(ctx context.Context, id string, fn func(domain.Client) domain.Client) (domain.Client, error)
	// Delete removes the client permanently.
	Delete(ctx context.Context, id string) error
	// List returns a detached snapshot of all clients in creation order.
	List(ctx context.Context) ([]domain.Client, error)
	// Watch registers a subscriber for collection change notifications.
	Watch(fn func(store.Change[domain.Client]))
}
