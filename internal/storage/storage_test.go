package storage

import (
	"errors"
	"testing"

	"github.com/monistowl/enoch/internal/board"
	"github.com/monistowl/enoch/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadGame(t *testing.T) {
	s := openTestStore(t)

	g := game.NewDefault()
	if _, err := g.ApplyMove(board.Blue, board.E2, board.E3, board.NoPieceKind); err != nil {
		t.Fatalf("setup move: %v", err)
	}

	if err := s.SaveGame("evening", g); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	loaded, err := s.LoadGame("evening")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}

	want, _ := g.ToJSON()
	got, _ := loaded.ToJSON()
	if string(got) != string(want) {
		t.Error("loaded game differs from the saved one")
	}
	if loaded.CurrentArmy() != board.Red {
		t.Errorf("turn pointer: got %v, want Red", loaded.CurrentArmy())
	}
}

func TestLoadMissingGame(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.LoadGame("nothing-here"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("got %v, want ErrGameNotFound", err)
	}
}

func TestListAndDeleteGames(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"alpha", "beta"} {
		if err := s.SaveGame(name, game.NewDefault()); err != nil {
			t.Fatalf("SaveGame %s: %v", name, err)
		}
	}

	names, err := s.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("ListGames: got %v, want two names", names)
	}

	if err := s.DeleteGame("alpha"); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
	if _, err := s.LoadGame("alpha"); !errors.Is(err, ErrGameNotFound) {
		t.Error("deleted game still loads")
	}
	if _, err := s.LoadGame("beta"); err != nil {
		t.Error("deletion removed the wrong game")
	}

	// Deleting a missing name is a no-op.
	if err := s.DeleteGame("alpha"); err != nil {
		t.Errorf("double delete: %v", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)

	g := game.NewDefault()
	if err := s.SaveGame("slot", g); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := g.ApplyMove(board.Blue, board.E2, board.E3, board.NoPieceKind); err != nil {
		t.Fatalf("setup move: %v", err)
	}
	if err := s.SaveGame("slot", g); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := s.LoadGame("slot")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if loaded.CurrentArmy() != board.Red {
		t.Error("overwrite kept the stale snapshot")
	}
}
