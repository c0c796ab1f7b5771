package tracklist

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	apperrors "github.com/promptpack/promptpack/internal/errors"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound kind, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	original := New("a.txt", "dir/b.txt", "c.go")
	if err := store.Save(original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(loaded.Paths(), original.Paths()) {
		t.Errorf("round trip: got %v, want %v", loaded.Paths(), original.Paths())
	}
}

func TestStore_SaveDeduplicates(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	// The List API already deduplicates; Save must not reintroduce
	// duplicates even from a hand-built file.
	if err := os.WriteFile(store.Path(), []byte("a.txt\na.txt\nb.txt\n"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"a.txt", "b.txt"}
	if !reflect.DeepEqual(loaded.Paths(), want) {
		t.Errorf("Paths() = %v, want %v", loaded.Paths(), want)
	}

	if err := store.Save(loaded); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(data) != "a.txt\nb.txt\n" {
		t.Errorf("file contents = %q, want %q", string(data), "a.txt\nb.txt\n")
	}
}

func TestStore_LoadToleratesBlankLinesAndCRLF(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := os.WriteFile(store.Path(), []byte("a.txt\r\n\nb.txt"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"a.txt", "b.txt"}
	if !reflect.DeepEqual(loaded.Paths(), want) {
		t.Errorf("Paths() = %v, want %v", loaded.Paths(), want)
	}
}

func TestStore_SaveEmptyList(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := store.Save(New()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty file, got %q", string(data))
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Len() != 0 {
		t.Errorf("expected empty list, got %v", loaded.Paths())
	}
}

func TestStore_SaveWriteFailure(t *testing.T) {
	// Point the store at a directory that does not exist.
	store := NewStore(filepath.Join(t.TempDir(), "missing", "nested"))

	err := store.Save(New("a.txt"))
	if err == nil {
		t.Fatal("expected error writing to missing directory")
	}
	if !errors.Is(err, apperrors.ErrConfig) {
		t.Errorf("expected ErrConfig kind, got %v", err)
	}
}
