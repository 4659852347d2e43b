package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"emotone/internal/embeddings"
	"emotone/internal/emotion"
)

func validSet(dims int) Set {
	set := make(Set)
	for i, label := range emotion.All() {
		vec := make(embeddings.Vector, dims)
		vec[i%dims] = float32(i + 1)
		set[label] = vec
	}
	return set
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	fs := NewFileStore(path)

	want := validSet(8)
	if err := fs.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := fs.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 labels, got %d", len(got))
	}
	if got.Dimensions() != 8 {
		t.Fatalf("expected 8 dimensions, got %d", got.Dimensions())
	}
	for _, label := range emotion.All() {
		if len(got[label]) != len(want[label]) {
			t.Errorf("label %s: length mismatch", label)
		}
		for i := range want[label] {
			if got[label][i] != want[label][i] {
				t.Errorf("label %s: element %d mismatch", label, i)
			}
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	_, err := fs.Load()
	if !errors.Is(err, ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewFileStore(path).Load()
	if !errors.Is(err, ErrStoreCorrupt) {
		t.Fatalf("expected ErrStoreCorrupt, got %v", err)
	}
}

func TestLoadMissingLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	data := `{"sadness":[1],"happiness":[1],"fear":[1],"anger":[1],"surprise":[1]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewFileStore(path).Load()
	if !errors.Is(err, ErrStoreCorrupt) {
		t.Fatalf("expected ErrStoreCorrupt for five labels, got %v", err)
	}
}

func TestLoadExtraLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	data := `{"sadness":[1],"happiness":[1],"fear":[1],"anger":[1],"surprise":[1],"disgust":[1],"boredom":[1]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewFileStore(path).Load()
	if !errors.Is(err, ErrStoreCorrupt) {
		t.Fatalf("expected ErrStoreCorrupt for seven labels, got %v", err)
	}
}

func TestLoadRaggedDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	data := `{"sadness":[1,2],"happiness":[1,2],"fear":[1,2],"anger":[1,2,3],"surprise":[1,2],"disgust":[1,2]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewFileStore(path).Load()
	if !errors.Is(err, ErrStoreCorrupt) {
		t.Fatalf("expected ErrStoreCorrupt for ragged dimensions, got %v", err)
	}
}

func TestSaveRejectsIncompleteSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	fs := NewFileStore(path)

	set := validSet(4)
	delete(set, emotion.Anger)
	if err := fs.Save(set); !errors.Is(err, ErrStoreCorrupt) {
		t.Fatalf("expected ErrStoreCorrupt, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("rejected save must not create the store file")
	}
}

func TestSavePreservesPriorStoreOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	fs := NewFileStore(path)

	if err := fs.Save(validSet(4)); err != nil {
		t.Fatalf("initial save failed: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	bad := validSet(4)
	bad[emotion.Fear] = embeddings.Vector{}
	if err := fs.Save(bad); !errors.Is(err, ErrStoreCorrupt) {
		t.Fatalf("expected ErrStoreCorrupt, got %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatal("failed save modified the existing store")
	}
}
