package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/DrillPlan/internal/model"
)

// DefaultScenariosPath returns the default file path for saved scenario profiles.
func DefaultScenariosPath() string {
	return filepath.Join(DefaultConfigDir(), "scenarios.json")
}

// SaveScenarios saves scenario profiles to a JSON file.
func SaveScenarios(path string, profiles []model.ScenarioProfile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadScenarios loads scenario profiles from a JSON file and validates each.
// Returns an empty slice if the file does not exist.
func LoadScenarios(path string) ([]model.ScenarioProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.ScenarioProfile{}, nil
		}
		return nil, err
	}

	var profiles []model.ScenarioProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}

	for i, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i+1, err)
		}
	}
	if profiles == nil {
		profiles = []model.ScenarioProfile{}
	}
	return profiles, nil
}

// LoadDefaultScenarios loads scenario profiles from the default path.
func LoadDefaultScenarios() ([]model.ScenarioProfile, error) {
	return LoadScenarios(DefaultScenariosPath())
}

// SaveDefaultScenarios saves scenario profiles to the default path.
func SaveDefaultScenarios(profiles []model.ScenarioProfile) error {
	return SaveScenarios(DefaultScenariosPath(), profiles)
}

// ExportScenario writes a single profile to a JSON file for sharing.
func ExportScenario(path string, profile model.ScenarioProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportScenario reads a single profile from a JSON file.
func ImportScenario(path string) (model.ScenarioProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ScenarioProfile{}, err
	}

	var profile model.ScenarioProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.ScenarioProfile{}, err
	}
	if err := profile.Validate(); err != nil {
		return model.ScenarioProfile{}, fmt.Errorf("imported scenario: %w", err)
	}
	return profile, nil
}
