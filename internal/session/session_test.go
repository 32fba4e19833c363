package session

import (
	"errors"
	"testing"

	"github.com/monistowl/enoch/internal/game"
)

func TestCreateAndGet(t *testing.T) {
	m := NewManager()
	s := m.Create(game.NewDefault())

	if s.ID == "" {
		t.Fatal("session has no ID")
	}
	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != s {
		t.Error("Get returned a different session")
	}

	if _, err := m.Get("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown ID: got %v, want ErrNotFound", err)
	}
}

func TestTouchBumpsTimestamp(t *testing.T) {
	m := NewManager()
	s := m.Create(game.NewDefault())
	created := s.UpdatedAt

	if err := m.Touch(s.ID); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if s.UpdatedAt.Before(created) {
		t.Error("UpdatedAt moved backwards")
	}
	if err := m.Touch("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("touching unknown ID: got %v, want ErrNotFound", err)
	}
}

func TestRemoveAndList(t *testing.T) {
	m := NewManager()
	a := m.Create(game.NewDefault())
	b := m.Create(game.NewDefault())

	if got := len(m.List()); got != 2 {
		t.Fatalf("List: got %d sessions, want 2", got)
	}

	m.Remove(a.ID)
	if _, err := m.Get(a.ID); !errors.Is(err, ErrNotFound) {
		t.Error("removed session still resolvable")
	}
	if _, err := m.Get(b.ID); err != nil {
		t.Error("removal dropped the wrong session")
	}

	m.Remove("no-such-id") // no-op
	if got := len(m.List()); got != 1 {
		t.Errorf("List after removal: got %d, want 1", got)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	m := NewManager()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := m.Create(game.NewDefault())
		if seen[s.ID] {
			t.Fatalf("duplicate session ID %s", s.ID)
		}
		seen[s.ID] = true
	}
}
