// Package prefs persists player settings between runs.
package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// Store is the key-value persistence the settings live in
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Settings represents the settings data stored on disk
type Settings struct {
	Muted bool `json:"muted"`
}

// Prefs loads and saves Settings through a Store
type Prefs struct {
	store Store
}

// Open opens the per-user gdata store of the application
func Open(appName string) (*Prefs, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return New(m), nil
}

// New wraps a store
func New(store Store) *Prefs {
	return &Prefs{store: store}
}

// Load returns the saved settings, or the defaults if nothing was saved yet
func (p *Prefs) Load() (Settings, error) {
	var s Settings
	data, err := p.store.LoadItem(settingsKey)
	if err != nil {
		return s, fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}

// Save writes the settings
func (p *Prefs) Save(s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := p.store.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
