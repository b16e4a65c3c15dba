package localstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cerebrohq/cerebro/internal/domain"
)

const stateFileName = "state.json"

// FileStore persists session state as a single JSON document on the user's
// device.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at dir. An empty dir resolves to
// ~/.cerebro.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("localstate: resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".cerebro")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstate: create state dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, stateFileName)}, nil
}

// Load reads the state document. A missing file yields an empty document; an
// unreadable or unparseable one yields an empty document wrapped in
// ErrStorageUnavailable so callers can log the degradation.
func (f *FileStore) Load() (Document, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("%w: read %s: %v", domain.ErrStorageUnavailable, f.path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: parse %s: %v", domain.ErrStorageUnavailable, f.path, err)
	}
	return doc, nil
}

// Save writes the state document atomically (write to a temp file, then
// rename).
func (f *FileStore) Save(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("localstate: encode state: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorageUnavailable, tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", domain.ErrStorageUnavailable, f.path, err)
	}
	return nil
}
