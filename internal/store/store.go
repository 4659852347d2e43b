package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"emotone/internal/embeddings"
	"emotone/internal/emotion"
)

var (
	// ErrStoreNotFound means generation has never run for this path; the
	// caller should run `generate` first.
	ErrStoreNotFound = errors.New("embedding store not found")

	// ErrStoreCorrupt means the store file exists but cannot be used:
	// malformed JSON, wrong label set, or ragged vector lengths.
	ErrStoreCorrupt = errors.New("embedding store corrupt")
)

// Set maps each of the six emotion labels to its reference vector.
type Set map[emotion.Label]embeddings.Vector

// Dimensions returns the shared vector length of the set.
func (s Set) Dimensions() int {
	for _, vec := range s {
		return len(vec)
	}
	return 0
}

func (s Set) validate() error {
	labels := emotion.All()
	if len(s) != len(labels) {
		return fmt.Errorf("%w: expected %d labels, found %d", ErrStoreCorrupt, len(labels), len(s))
	}
	dims := -1
	for _, label := range labels {
		vec, ok := s[label]
		if !ok {
			return fmt.Errorf("%w: missing label %q", ErrStoreCorrupt, label)
		}
		if len(vec) == 0 {
			return fmt.Errorf("%w: empty vector for label %q", ErrStoreCorrupt, label)
		}
		if dims == -1 {
			dims = len(vec)
		} else if len(vec) != dims {
			return fmt.Errorf("%w: label %q has %d dimensions, expected %d", ErrStoreCorrupt, label, len(vec), dims)
		}
	}
	return nil
}

// FileStore persists the reference set as one JSON document keyed by label.
// The document is always read and written wholesale; there are no partial
// updates.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and validates the persisted reference set.
func (f *FileStore) Load() (Set, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s (run generate first)", ErrStoreNotFound, f.path)
	}
	if err != nil {
		return nil, err
	}
	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreCorrupt, err)
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Save replaces the store document with set. The document is staged in a
// temp file and renamed into place, so on any failure the previous document
// is left untouched.
func (f *FileStore) Save(set Set) error {
	if err := set.validate(); err != nil {
		return err
	}
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".emotion-embeddings-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
