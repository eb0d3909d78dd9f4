package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/bullrun/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the display settings stored on disk. Game
// progress is never saved.
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

// ItemStore is the slice of gdata.Manager the settings store needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SettingsStore loads and saves SavedSettings. A nil store is valid and
// behaves as if nothing was ever saved.
type SettingsStore struct {
	items ItemStore
}

// OpenSettingsStore opens the per-user data directory for appName.
func OpenSettingsStore(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return NewSettingsStore(m), nil
}

func NewSettingsStore(items ItemStore) *SettingsStore {
	return &SettingsStore{items: items}
}

// Load returns the saved settings, or defaults when none are stored or the
// stored data is unreadable.
func (s *SettingsStore) Load() SavedSettings {
	defaults := SavedSettings{ResolutionIndex: cfg.Options.DefaultResolutionIndex}
	if s == nil || s.items == nil {
		return defaults
	}

	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return defaults
	}
	if data == nil {
		// No saved settings yet, use defaults
		return defaults
	}

	saved := defaults
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return defaults
	}
	saved.ResolutionIndex = ClampResolutionIndex(saved.ResolutionIndex)
	return saved
}

// Save writes settings to disk.
func (s *SettingsStore) Save(saved SavedSettings) error {
	if s == nil || s.items == nil {
		return nil
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ClampResolutionIndex maps i into the configured resolution presets.
func ClampResolutionIndex(i int) int {
	n := len(cfg.Options.Resolutions)
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
