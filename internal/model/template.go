package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanTemplate is a reusable grid preset: settings plus an optional list of
// explicit candidate centers, without any placement result.
type PlanTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Settings    PlanSettings `json:"settings"`
	Candidates  []Vector2    `json:"candidates"`
}

// NewPlanTemplate captures settings and candidates from a project.
func NewPlanTemplate(name, description string, settings PlanSettings, candidates []Vector2) PlanTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return PlanTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Settings:    settings,
		Candidates:  copyCenters(candidates),
	}
}

// ToProject creates a new Project from this template.
func (t PlanTemplate) ToProject(projectName string) Project {
	return Project{
		Name:       projectName,
		Settings:   t.Settings,
		Candidates: copyCenters(t.Candidates),
	}
}

// TemplateStore holds a collection of plan templates.
type TemplateStore struct {
	Templates []PlanTemplate `json:"templates"`
}

func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []PlanTemplate{},
	}
}

func (ts *TemplateStore) Add(t PlanTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *PlanTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *PlanTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for UI dropdowns.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyCenters(centers []Vector2) []Vector2 {
	if centers == nil {
		return []Vector2{}
	}
	cp := make([]Vector2, len(centers))
	copy(cp, centers)
	return cp
}
