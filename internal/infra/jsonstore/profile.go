package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tugasku/internal/domain"
)

// ProfileStore persists the onboarding profile as a single JSON file,
// separate from tasks and settings.
type ProfileStore struct {
	path string
}

// NewProfileStore creates a profile store at the given path.
func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{path: path}
}

// Load returns the persisted profile. Absent or malformed data yields
// the zero profile, which the caller treats as "not onboarded yet".
func (s *ProfileStore) Load() (domain.Profile, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Profile{}, nil
	}

	var profile domain.Profile
	if err := json.Unmarshal(content, &profile); err != nil {
		return domain.Profile{}, nil
	}
	if profile.Name == "" {
		profile.Onboarded = false
	}
	return profile, nil
}

// Save replaces the persisted record.
func (s *ProfileStore) Save(profile domain.Profile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	content, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return writeAtomic(s.path, content)
}

var _ domain.ProfileStore = (*ProfileStore)(nil)
