package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists a ledger snapshot to a single CSV file.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the backing file. A missing file yields an empty ledger.
func (s *Store) Load() (*Ledger, error) {
	l, err := LoadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	return l, err
}

// Save overwrites the backing file with the ledger's contents.
func (s *Store) Save(l *Ledger) error {
	return SaveFile(s.path, l)
}

// LoadFile reads the ledger file at path.
func LoadFile(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("loading ledger %s: %w", path, err)
	}
	return l, nil
}

// SaveFile writes the ledger to path, creating parent directories as needed.
func SaveFile(path string, l *Ledger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating ledger dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, l); err != nil {
		return fmt.Errorf("writing ledger %s: %w", path, err)
	}
	return f.Close()
}
