package model

import "errors"

// ScenarioProfile is a saved what-if configuration for scenario comparison.
type ScenarioProfile struct {
	Name     string       `json:"name"`
	Settings PlanSettings `json:"settings"`
}

// Validate requires a name and usable settings.
func (p ScenarioProfile) Validate() error {
	if p.Name == "" {
		return errors.New("scenario profile has no name")
	}
	return p.Settings.Validate()
}
