// Package project persists projects, preferences, templates, scenario
// profiles and backups as JSON files, by default under ~/.drillplan/.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/DrillPlan/internal/model"
)

// FileExtension is appended to project paths that have no extension.
const FileExtension = ".drillplan"

// Save writes a project as indented JSON, creating parent directories.
func Save(path string, proj model.Project) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	data, err := json.MarshalIndent(proj, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}

// Load reads a project and validates its settings.
func Load(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project: %w", err)
	}
	var proj model.Project
	if err := json.Unmarshal(data, &proj); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project: %w", err)
	}
	if err := proj.Settings.Validate(); err != nil {
		return model.Project{}, fmt.Errorf("project %q: %w", path, err)
	}
	if proj.Candidates == nil {
		proj.Candidates = []model.Vector2{}
	}
	return proj, nil
}

// WithExtension appends FileExtension unless path already has an extension.
func WithExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + FileExtension
	}
	return path
}

// IsProjectFile reports whether path carries the project extension.
func IsProjectFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), FileExtension)
}
