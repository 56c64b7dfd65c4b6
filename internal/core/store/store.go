// Package store provides the generic identity-keyed, insertion-ordered
// in-memory collection underlying every entity type in the service.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an id is absent from the collection.
// Repositories map it to the entity-specific domain error.
var ErrNotFound = errors.New("store: entity not found")

// Identifiable is the minimal contract an entity must satisfy.
type Identifiable interface {
	EntityID() string
}

// Op describes the kind of change published to subscribers.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
)

// Change is delivered synchronously to subscribers after a mutation.
type Change[T Identifiable] struct {
	Op     Op
	Entity T
}

// Store holds entities of type T in insertion order. Ids are assigned at
// Add time and never reused; List returns a detached snapshot. Access is
// guarded because the HTTP layer serves requests concurrently, even though
// each logical session is a single writer.
type Store[T Identifiable] struct {
	mu    sync.RWMutex
	byID  map[string]T
	order []string
	setID func(T, string) T
	subs  []func(Change[T])
}

// New creates an empty store. setID must return a copy of the entity with
// the id applied; it is how the store writes ids without reflection.
func New[T Identifiable](setID func(T, string) T) *Store[T] {
	return &Store[T]{
		byID:  make(map[string]T),
		setID: setID,
	}
}

// Add assigns a fresh unique id to draft, appends it to the collection,
// and returns the stored entity.
func (s *Store[T]) Add(draft T) T {
	s.mu.Lock()
	entity := s.setID(draft, uuid.NewString())
	s.byID[entity.EntityID()] = entity
	s.order = append(s.order, entity.EntityID())
	s.mu.Unlock()

	s.publish(Change[T]{Op: OpAdd, Entity: entity})
	return entity
}

// Get returns the entity for id, if present.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entity, ok := s.byID[id]
	return entity, ok
}

// Update applies fn to the entity for id and stores the result. The id is
// reasserted after fn runs so a patch can never rewrite identity.
func (s *Store[T]) Update(id string, fn func(T) T) (T, error) {
	s.mu.Lock()
	current, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		var zero T
		return zero, ErrNotFound
	}
	updated := s.setID(fn(current), id)
	s.byID[id] = updated
	s.mu.Unlock()

	s.publish(Change[T]{Op: OpUpdate, Entity: updated})
	return updated, nil
}

// Remove permanently deletes the entity for id. The id is never handed
// out again.
func (s *Store[T]) Remove(id string) error {
	s.mu.Lock()
	entity, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.publish(Change[T]{Op: OpRemove, Entity: entity})
	return nil
}

// List returns a snapshot of all entities in insertion order. The slice
// is detached: later mutations of the store do not affect it.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len returns the number of live entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Subscribe registers fn to be called synchronously after every mutation.
// Subscribers must not mutate the store from the callback.
func (s *Store[T]) Subscribe(fn func(Change[T])) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store[T]) publish(change Change[T]) {
	s.mu.RLock()
	subs := make([]func(Change[T]), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(change)
	}
}
