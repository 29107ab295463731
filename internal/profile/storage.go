package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Storage keeps one JSON file per profile under <dataDir>/profiles.
type Storage struct {
	dataDir string
}

func NewStorage(dataDir string) *Storage {
	return &Storage{dataDir: dataDir}
}

func (s *Storage) Save(p *Profile) error {
	if p == nil {
		return fmt.Errorf("save profile: nil profile")
	}
	if !IsValidUUID(p.UUID) {
		return fmt.Errorf("save profile: invalid uuid %q", p.UUID)
	}
	if err := os.MkdirAll(s.profilesDir(), 0o700); err != nil {
		return fmt.Errorf("save profile: ensure profiles dir: %w", err)
	}

	payload, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("save profile: marshal json: %w", err)
	}

	path := s.profilePath(p.UUID)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, payload, 0o600); err != nil {
		return fmt.Errorf("save profile: write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("save profile: rename temp file: %w", err)
	}

	return nil
}

func (s *Storage) Load(id string) (*Profile, error) {
	if !IsValidUUID(id) {
		return nil, fmt.Errorf("load profile: invalid uuid %q", id)
	}

	content, err := os.ReadFile(s.profilePath(id))
	if err != nil {
		return nil, fmt.Errorf("load profile: read file: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("load profile: unmarshal json: %w", err)
	}
	return &p, nil
}

func (s *Storage) Delete(id string) error {
	if !IsValidUUID(id) {
		return fmt.Errorf("delete profile: invalid uuid %q", id)
	}

	if err := os.Remove(s.profilePath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete profile: remove file: %w", err)
	}
	return nil
}

// List returns every stored profile, oldest first.
func (s *Storage) List() ([]*Profile, error) {
	entries, err := os.ReadDir(s.profilesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list profiles: read dir: %w", err)
	}

	profiles := make([]*Profile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(s.profilesDir(), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("list profiles: read %s: %w", entry.Name(), err)
		}

		var p Profile
		if err := json.Unmarshal(content, &p); err != nil {
			return nil, fmt.Errorf("list profiles: parse %s: %w", entry.Name(), err)
		}
		profiles = append(profiles, &p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].CreatedAt.Equal(profiles[j].CreatedAt) {
			return profiles[i].UUID < profiles[j].UUID
		}
		return profiles[i].CreatedAt.Before(profiles[j].CreatedAt)
	})

	return profiles, nil
}

func (s *Storage) Exists(id string) bool {
	if !IsValidUUID(id) {
		return false
	}
	_, err := os.Stat(s.profilePath(id))
	return err == nil
}

func (s *Storage) profilesDir() string {
	return filepath.Join(s.dataDir, "profiles")
}

func (s *Storage) profilePath(id string) string {
	return filepath.Join(s.profilesDir(), id+".json")
}
