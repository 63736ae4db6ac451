package config

import (
	"fmt"
	"time"

	"github.com/platewatch/platewatch/internal/models"
)

// LoadPlates loads the last known plate state from ~/.platewatch/plates.yaml.
// A missing file yields an empty state stamped with the current time.
func LoadPlates() (*models.PlateState, error) {
	path, err := GlobalPlatesFile()
	if err != nil {
		return nil, err
	}
	state, err := LoadYAMLOrDefault(path, func() *models.PlateState {
		return models.NewPlateState(0, 0, time.Now())
	})
	if err != nil {
		return nil, err
	}
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plate state in %s: %w", path, err)
	}
	return state, nil
}

// SavePlates saves the plate state to ~/.platewatch/plates.yaml.
func SavePlates(state *models.PlateState) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalPlatesFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, state)
}

// FileStore persists plate state in the global plates.yaml file.
type FileStore struct{}

// Load returns the stored plate state.
func (FileStore) Load() (*models.PlateState, error) {
	return LoadPlates()
}

// Save writes the plate state.
func (FileStore) Save(state *models.PlateState) error {
	return SavePlates(state)
}
