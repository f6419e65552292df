package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBackends(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "file", cfg: Config{Backend: BackendFile, Path: filepath.Join(tmpDir, "notes.json")}},
		{name: "sqlite", cfg: Config{Backend: BackendSQLite, Path: filepath.Join(tmpDir, "notes.db")}},
		{name: "sqlite in memory", cfg: Config{Backend: BackendSQLite, Path: ":memory:"}},
		{name: "memory", cfg: Config{Backend: BackendMemory}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, err := Open(tt.cfg)
			if err != nil {
				t.Fatalf("Failed to open store: %v", err)
			}
			defer s.Close()

			if _, err := s.Get(ctx, "Notes-MVC"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound for missing key, got %v", err)
			}

			if err := s.Set(ctx, "Notes-MVC", []byte(`[{"id":1}]`)); err != nil {
				t.Fatalf("Failed to set: %v", err)
			}
			got, err := s.Get(ctx, "Notes-MVC")
			if err != nil {
				t.Fatalf("Failed to get: %v", err)
			}
			if string(got) != `[{"id":1}]` {
				t.Errorf("Get mismatch: got %s", got)
			}

			if err := s.Set(ctx, "Notes-MVC", []byte(`[]`)); err != nil {
				t.Fatalf("Failed to overwrite: %v", err)
			}
			got, _ = s.Get(ctx, "Notes-MVC")
			if string(got) != `[]` {
				t.Errorf("Expected overwritten value, got %s", got)
			}

			if err := s.Set(ctx, "other", []byte(`{}`)); err != nil {
				t.Fatalf("Failed to set second key: %v", err)
			}
			if err := s.Delete(ctx, "Notes-MVC"); err != nil {
				t.Fatalf("Failed to delete: %v", err)
			}
			if _, err := s.Get(ctx, "Notes-MVC"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound after delete, got %v", err)
			}
			if _, err := s.Get(ctx, "other"); err != nil {
				t.Errorf("Expected other key to survive delete, got %v", err)
			}
			if err := s.Delete(ctx, "missing"); err != nil {
				t.Errorf("Deleting a missing key should succeed, got %v", err)
			}
		})
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()

	for _, cfg := range []Config{
		{Backend: BackendFile, Path: filepath.Join(tmpDir, "nested", "notes.json")},
		{Backend: BackendSQLite, Path: filepath.Join(tmpDir, "nested", "notes.db")},
	} {
		t.Run(cfg.Backend, func(t *testing.T) {
			ctx := context.Background()

			s, err := Open(cfg)
			if err != nil {
				t.Fatalf("Failed to open store: %v", err)
			}
			if err := s.Set(ctx, "key", []byte(`"value"`)); err != nil {
				t.Fatalf("Failed to set: %v", err)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("Failed to close: %v", err)
			}

			reopened, err := Open(cfg)
			if err != nil {
				t.Fatalf("Failed to reopen store: %v", err)
			}
			defer reopened.Close()

			got, err := reopened.Get(ctx, "key")
			if err != nil {
				t.Fatalf("Failed to get after reopen: %v", err)
			}
			if string(got) != `"value"` {
				t.Errorf("Value mismatch after reopen: got %s", got)
			}
		})
	}
}

func TestFileStoreRejectsInvalidJSON(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "notes.json"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := s.Set(context.Background(), "key", []byte("not json")); err == nil {
		t.Error("Expected error for invalid JSON value")
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if _, err := NewFileStore(path); err == nil {
		t.Error("Expected error for corrupt store file")
	}
}

func TestFileStoreLeavesNoTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := s.Set(context.Background(), "key", []byte(`1`)); err != nil {
		t.Fatalf("Failed to set: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("Expected temp file to be renamed away, stat err = %v", err)
	}
}

func TestOpenErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "unknown backend", cfg: Config{Backend: "redis"}},
		{name: "file without path", cfg: Config{Backend: BackendFile}},
		{name: "sqlite without path", cfg: Config{Backend: BackendSQLite}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Open(tt.cfg); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
