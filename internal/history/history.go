// Package history persists the REPL transcript across sessions. Entries are
// msgpack-encoded under the user's cache directory and rewritten atomically.
package history

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// Entry is one successfully evaluated expression.
type Entry struct {
	Expr   string
	Result string
	Base   int
	When   time.Time
}

type payload struct {
	Schema  uint16
	Entries []Entry
}

// Store reads and writes the history file. Thread-safe.
type Store struct {
	mu    sync.Mutex
	path  string
	limit int
}

// Open resolves the history file under XDG_CACHE_HOME (or ~/.cache) for the
// given app name. limit caps the number of retained entries (0 = unlimited).
func Open(app string, limit int) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, "history.mp"), limit: limit}, nil
}

// Load returns the persisted entries, oldest first. A missing file or a
// payload with an unknown schema yields an empty history, not an error.
func (s *Store) Load() ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, err
	}
	if p.Schema != schemaVersion {
		return nil, nil
	}
	return p.Entries, nil
}

// Append adds an entry and rewrites the file, trimming to the limit.
func (s *Store) Append(e Entry) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries = append(entries, e)
	if s.limit > 0 && len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}
	return s.save(entries)
}

func (s *Store) save(entries []Entry) error {
	f, err := os.CreateTemp(filepath.Dir(s.path), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload{
		Schema:  schemaVersion,
		Entries: entries,
	}); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, s.path)
}

// Clear drops the whole history.
func (s *Store) Clear() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
