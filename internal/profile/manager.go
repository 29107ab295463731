package profile

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rogeecn/llm-sdk-go/pkg/types"
)

// Manager serializes profile reads and writes.
type Manager struct {
	storage *Storage
	mu      sync.RWMutex
	now     func() time.Time
}

func NewManager(dataDir string) *Manager {
	return &Manager{
		storage: NewStorage(dataDir),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new profile. An empty baseURL selects the public API.
func (m *Manager) Create(name, apiKey, baseURL string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	apiKey = strings.TrimSpace(apiKey)
	baseURL = strings.TrimSpace(baseURL)
	if apiKey == "" {
		return nil, fmt.Errorf("create profile: api key is required")
	}
	if baseURL == "" {
		baseURL = types.DefaultBaseURL
	}

	now := m.now()
	p := &Profile{
		UUID:      GenerateUUID(),
		Name:      strings.TrimSpace(name),
		APIKey:    apiKey,
		BaseURL:   baseURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.storage.Save(p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	return p, nil
}

func (m *Manager) Get(id string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, err := m.storage.Load(id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.storage.Delete(id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func (m *Manager) List() ([]*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profiles, err := m.storage.List()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// UpdateUsage records one successful API call made with the profile.
func (m *Manager) UpdateUsage(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.storage.Load(id)
	if err != nil {
		return fmt.Errorf("update usage: %w", err)
	}

	now := m.now()
	p.LastUsedAt = now
	p.UpdatedAt = now
	p.RequestCount++

	if err := m.storage.Save(p); err != nil {
		return fmt.Errorf("update usage: %w", err)
	}
	return nil
}
