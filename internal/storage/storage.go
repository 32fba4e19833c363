package storage

import (
	"errors"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/monistowl/enoch/internal/game"
)

// Saved games live under this key prefix so unrelated keys can share the
// database later.
const gameKeyPrefix = "game:"

// ErrGameNotFound is returned when no snapshot exists under the given name.
var ErrGameNotFound = errors.New("saved game not found")

// Store wraps BadgerDB for snapshot persistence.
type Store struct {
	db *badger.DB
}

// Open opens a store rooted at the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the store in the platform data directory.
func OpenDefault() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(name string) []byte {
	return []byte(gameKeyPrefix + name)
}

// SaveGame stores the game's snapshot under the given name, overwriting any
// previous save with that name.
func (s *Store) SaveGame(name string, g *game.Game) error {
	data, err := g.ToJSON()
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(name), data)
	})
}

// LoadGame restores a game from the snapshot saved under the given name.
func (s *Store) LoadGame(name string) (*game.Game, error) {
	var g *game.Game

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrGameNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			g, err = game.FromJSON(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ListGames returns the names of all saved games.
func (s *Store) ListGames() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, gameKeyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// DeleteGame removes a saved game. Deleting a missing name is not an error.
func (s *Store) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(name))
	})
}
