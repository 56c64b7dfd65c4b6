package store

import (
	"errors"
	"testing"
)

type note struct {
	ID   string
	Text string
}

func (n note) EntityID() string { return n.ID }

func newNoteStore() *Store[note] {
	return New(func(n note, id string) note {
		n.ID = id
		return n
	})
}

func TestStore_AddAssignsUniqueIDs(t *testing.T) {
	s := newNoteStore()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		stored := s.Add(note{Text: "x"})
		if stored.ID == "" {
			t.Fatal("Add must assign a non-empty id")
		}
		if seen[stored.ID] {
			t.Fatalf("id %q assigned twice", stored.ID)
		}
		seen[stored.ID] = true
	}
}

func TestStore_ListPreservesInsertionOrder(t *testing.T) {
	s := newNoteStore()
	for _, text := range []string{"a", "b", "c"} {
		s.Add(note{Text: text})
	}

	listed := s.List()
	if len(listed) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(listed))
	}
	for i, want := range []string{"a", "b", "c"} {
		if listed[i].Text != want {
			t.Errorf("list[%d] = %q, want %q", i, listed[i].Text, want)
		}
	}
}

func TestStore_ListIsDetachedSnapshot(t *testing.T) {
	s := newNoteStore()
	first := s.Add(note{Text: "a"})

	snapshot := s.List()
	if err := s.Remove(first.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	s.Add(note{Text: "b"})

	if len(snapshot) != 1 || snapshot[0].Text != "a" {
		t.Error("snapshot changed after store mutation")
	}
}

func TestStore_UpdateMergesAndKeepsID(t *testing.T) {
	s := newNoteStore()
	stored := s.Add(note{Text: "before"})

	updated, err := s.Update(stored.ID, func(n note) note {
		n.Text = "after"
		n.ID = "hijacked"
		return n
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != stored.ID {
		t.Errorf("update rewrote id: %q → %q", stored.ID, updated.ID)
	}
	if updated.Text != "after" {
		t.Errorf("update did not apply patch: %q", updated.Text)
	}

	got, ok := s.Get(stored.ID)
	if !ok || got.Text != "after" {
		t.Error("updated entity not stored under original id")
	}
}

func TestStore_UpdateMissingID(t *testing.T) {
	s := newNoteStore()
	if _, err := s.Update("nope", func(n note) note { return n }); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_RemoveThenOperate(t *testing.T) {
	s := newNoteStore()
	stored := s.Add(note{Text: "a"})

	if err := s.Remove(stored.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	for _, n := range s.List() {
		if n.ID == stored.ID {
			t.Error("removed id still listed")
		}
	}
	if err := s.Remove(stored.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Update(stored.ID, func(n note) note { return n }); !errors.Is(err, ErrNotFound) {
		t.Errorf("update after remove: expected ErrNotFound, got %v", err)
	}
}

func TestStore_SubscribeReceivesChanges(t *testing.T) {
	s := newNoteStore()

	var ops []Op
	s.Subscribe(func(c Change[note]) {
		ops = append(ops, c.Op)
	})

	stored := s.Add(note{Text: "a"})
	_, _ = s.Update(stored.ID, func(n note) note { n.Text = "b"; return n })
	_ = s.Remove(stored.ID)

	want := []Op{OpAdd, OpUpdate, OpRemove}
	if len(ops) != len(want) {
		t.Fatalf("expected %d notifications, got %d", len(want), len(ops))
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("notification[%d] = %q, want %q", i, ops[i], want[i])
		}
	}
}
