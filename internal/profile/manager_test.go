package profile

import (
	"testing"
	"time"
)

func TestManagerLifecycle(t *testing.T) {
	manager := NewManager(t.TempDir())
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	manager.now = func() time.Time { return clock }

	created, err := manager.Create("personal", "sk-test", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.BaseURL != "https://api.openai.com/v1" {
		t.Fatalf("BaseURL = %q, want default", created.BaseURL)
	}

	got, err := manager.Get(created.UUID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.UUID != created.UUID || got.Name != "personal" {
		t.Fatalf("Get() = %+v", got)
	}

	clock = clock.Add(time.Hour)
	if err := manager.UpdateUsage(created.UUID); err != nil {
		t.Fatalf("UpdateUsage() error = %v", err)
	}
	used, err := manager.Get(created.UUID)
	if err != nil {
		t.Fatalf("Get() after UpdateUsage error = %v", err)
	}
	if used.RequestCount != 1 {
		t.Fatalf("RequestCount = %d, want 1", used.RequestCount)
	}
	if !used.LastUsedAt.Equal(clock) {
		t.Fatalf("LastUsedAt = %s, want %s", used.LastUsedAt, clock)
	}

	profiles, err := manager.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("len(List()) = %d, want 1", len(profiles))
	}

	if err := manager.Delete(created.UUID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := manager.Get(created.UUID); err == nil {
		t.Fatal("Get() after Delete error = nil, want non-nil")
	}
}

func TestManagerCreateRequiresAPIKey(t *testing.T) {
	if _, err := NewManager(t.TempDir()).Create("x", "  ", ""); err == nil {
		t.Fatal("Create() error = nil, want api key error")
	}
}

func TestMaskedAPIKey(t *testing.T) {
	tests := map[string]string{
		"sk-abcdefghijkl": "sk-a...ijkl",
		"short":           "*****",
		"":                "",
	}
	for key, want := range tests {
		p := &Profile{APIKey: key}
		if got := p.MaskedAPIKey(); got != want {
			t.Fatalf("MaskedAPIKey(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestUUIDHelpers(t *testing.T) {
	id := GenerateUUID()
	if !IsValidUUID(id) {
		t.Fatalf("GenerateUUID() returned invalid uuid: %q", id)
	}
	if IsValidUUID("invalid-uuid") {
		t.Fatal("IsValidUUID(invalid) = true, want false")
	}
}
