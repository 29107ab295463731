package profile

import (
	"strings"
	"time"
)

// Profile is a saved set of API credentials.
type Profile struct {
	UUID         string    `json:"uuid"`
	Name         string    `json:"name"`
	APIKey       string    `json:"api_key"`
	BaseURL      string    `json:"base_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastUsedAt   time.Time `json:"last_used_at,omitzero"`
	RequestCount int       `json:"request_count"`
}

// MaskedAPIKey returns the key with everything but its ends hidden.
func (p *Profile) MaskedAPIKey() string {
	key := strings.TrimSpace(p.APIKey)
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + "..." + key[len(key)-4:]
}
