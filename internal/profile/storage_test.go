package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStorageCRUD(t *testing.T) {
	storage := NewStorage(t.TempDir())

	p := &Profile{
		UUID:      GenerateUUID(),
		Name:      "work",
		APIKey:    "sk-test",
		BaseURL:   "https://api.openai.com/v1",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := storage.Save(p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !storage.Exists(p.UUID) {
		t.Fatalf("Exists() = false, want true")
	}

	loaded, err := storage.Load(p.UUID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.APIKey != p.APIKey || loaded.Name != p.Name {
		t.Fatalf("loaded = %+v, want %+v", loaded, p)
	}

	profiles, err := storage.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("len(List()) = %d, want 1", len(profiles))
	}

	if err := storage.Delete(p.UUID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if storage.Exists(p.UUID) {
		t.Fatalf("Exists() = true, want false")
	}
	if err := storage.Delete(p.UUID); err != nil {
		t.Fatalf("Delete() of missing profile error = %v", err)
	}
}

func TestStorageListEmptyDir(t *testing.T) {
	profiles, err := NewStorage(t.TempDir()).List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(profiles) != 0 {
		t.Fatalf("len(List()) = %d, want 0", len(profiles))
	}
}

func TestStorageSaveWritesPrivateFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorage(dir)
	p := &Profile{UUID: GenerateUUID(), APIKey: "sk-test"}

	if err := storage.Save(p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "profiles", p.UUID+".json"))
	if err != nil {
		t.Fatalf("stat profile file: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %o, want 600", info.Mode().Perm())
	}
}

func TestStorageInvalidUUID(t *testing.T) {
	storage := NewStorage(t.TempDir())

	if err := storage.Save(&Profile{UUID: "nope"}); err == nil || !strings.Contains(err.Error(), "invalid uuid") {
		t.Fatalf("Save() error = %v, want invalid uuid", err)
	}
	if _, err := storage.Load("nope"); err == nil || !strings.Contains(err.Error(), "invalid uuid") {
		t.Fatalf("Load() error = %v, want invalid uuid", err)
	}
	if err := storage.Delete("nope"); err == nil || !strings.Contains(err.Error(), "invalid uuid") {
		t.Fatalf("Delete() error = %v, want invalid uuid", err)
	}
}
