package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chessmodel/internal/board"
)

// Storage keys
const (
	positionPrefix = "position/"
)

var (
	// ErrPositionNotFound is returned when no position is saved under a name.
	ErrPositionNotFound = errors.New("position not found")
	// ErrEmptyName is returned when a position name is empty.
	ErrEmptyName = errors.New("position name is empty")
)

// PositionRecord is a saved position as stored in the database.
type PositionRecord struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	SavedAt time.Time `json:"saved_at"`
}

// Board re-parses the stored FEN.
func (r *PositionRecord) Board() (*board.Board, error) {
	return board.ParseFEN(r.FEN)
}

// PositionStore is the position library as seen by the command protocol
// and the HTTP API. *Storage implements it.
type PositionStore interface {
	SavePosition(name string, b *board.Board) error
	LoadPosition(name string) (*board.Board, error)
	ListPositions() ([]PositionRecord, error)
	DeletePosition(name string) error
}

var _ PositionStore = (*Storage)(nil)

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func positionKey(name string) []byte {
	return []byte(positionPrefix + name)
}

// SavePosition stores b under name, replacing any earlier position.
func (s *Storage) SavePosition(name string, b *board.Board) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	rec := PositionRecord{
		Name:    name,
		FEN:     b.ToFEN(),
		SavedAt: time.Now(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(positionKey(name), data)
	})
}

// LoadRecord returns the raw record saved under name.
func (s *Storage) LoadRecord(name string) (*PositionRecord, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	var rec PositionRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(positionKey(name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", ErrPositionNotFound, name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadPosition returns the board saved under name.
func (s *Storage) LoadPosition(name string) (*board.Board, error) {
	rec, err := s.LoadRecord(name)
	if err != nil {
		return nil, err
	}
	return rec.Board()
}

// ListPositions returns every saved position, sorted by name.
func (s *Storage) ListPositions() ([]PositionRecord, error) {
	var recs []PositionRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(positionPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec PositionRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
	return recs, nil
}

// DeletePosition removes the position saved under name.
func (s *Storage) DeletePosition(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(positionKey(name)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", ErrPositionNotFound, name)
		} else if err != nil {
			return err
		}
		return txn.Delete(positionKey(name))
	})
}
