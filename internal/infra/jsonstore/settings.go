package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tugasku/internal/domain"
)

// SettingsStore persists the settings record as a single JSON file.
type SettingsStore struct {
	path string
}

// NewSettingsStore creates a settings store at the given path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load returns the persisted settings. Absent or malformed data yields
// the defaults, never an error: first run and corrupt state look the
// same to the caller.
func (s *SettingsStore) Load() (domain.Settings, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return domain.DefaultSettings(), nil
	}

	settings := domain.DefaultSettings()
	if err := json.Unmarshal(content, &settings); err != nil {
		return domain.DefaultSettings(), nil
	}
	return settings.Normalize(), nil
}

// Save replaces the persisted record wholesale.
func (s *SettingsStore) Save(settings domain.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	content, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return writeAtomic(s.path, content)
}

var _ domain.SettingsStore = (*SettingsStore)(nil)
