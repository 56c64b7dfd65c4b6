package memory

import (
	"context"
	"errors"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/store"
)

type ClientRepository struct {
	store *store.Store[domain.Client]
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{
		store: store.New(func(c domain.Client, id string) domain.Client {
			c.ID = id
			return c
		}),
	}
}

func (r *ClientRepository) Create(_ context.Context, draft domain.Client) (domain.Client, error) {
	return r.store.Add(draft), nil
}

func (r *ClientRepository) FindByID(_ context.Context, id string) (domain.Client, error) {
	c, ok := r.store.Get(id)
	if !ok {
		return domain.Client{}, domain.ErrClientNotFound
	}
	return c, nil
}

func (r *ClientRepository) Update(_ context.Context, id string, fn func(domain.Client) domain.Client) (domain.Client, error) {
	updated, err := r.store.Update(id, fn)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, domain.ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return updated, nil
}

func (r *ClientRepository) Delete(_ context.Context, id string) error {
	if err := r.store.Remove(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrClientNotFound
		}
		return err
	}
	return nil
}

func (r *ClientRepository) List(_ context.Context) ([]domain.Client, error) {
	return r.store.List(), nil
}

func (r *ClientRepository) Watch(fn func(store.Change[domain.Client])) {
	r.store.Subscribe(fn)
}
