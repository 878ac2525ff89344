package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/incarnadined/pong/components"
	cfg "github.com/incarnadined/pong/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted      bool `json:"muted"`
	Fullscreen bool `json:"fullscreen"`
	Debug      bool `json:"debug"`
}

// ItemStore is the subset of *gdata.Manager used for settings.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SettingsStore loads and saves SavedSettings under a single item key.
// A nil *SettingsStore is valid and never touches the disk.
type SettingsStore struct {
	items ItemStore
	key   string
}

// OpenSettingsStore opens the gdata storage for the game.
func OpenSettingsStore(c cfg.StorageConfig) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: c.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return NewSettingsStore(m, c.SettingsKey), nil
}

func NewSettingsStore(items ItemStore, key string) *SettingsStore {
	return &SettingsStore{items: items, key: key}
}

// Load returns the saved settings, or nil when nothing has been saved yet.
func (s *SettingsStore) Load() (*SavedSettings, error) {
	if s == nil {
		return nil, nil
	}

	data, err := s.items.LoadItem(s.key)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// Save writes settings to disk
func (s *SettingsStore) Save(settings *SavedSettings) error {
	if s == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.items.SaveItem(s.key, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings saves the Settings component, logging on failure
func SaveCurrentSettings(store *SettingsStore, s *components.SettingsData) {
	saved := &SavedSettings{
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
		Debug:      s.Debug,
	}
	if err := store.Save(saved); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ToSettingsData converts saved settings to the component value
func (s *SavedSettings) ToSettingsData() components.SettingsData {
	if s == nil {
		return components.SettingsData{}
	}
	return components.SettingsData{
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
		Debug:      s.Debug,
	}
}
