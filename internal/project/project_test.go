package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/DrillPlan/internal/engine"
	"github.com/piwi3910/DrillPlan/internal/model"
)

func TestSaveAndLoadProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hall", "plan.drillplan")

	proj := model.NewProject()
	proj.Name = "Hall A"
	proj.Candidates = []model.Vector2{model.Vec(6, 8), model.Vec(7, 8)}

	result, err := engine.New(proj.Settings).PlaceCandidates(context.Background(), proj.Candidates)
	if err != nil {
		t.Fatalf("PlaceCandidates failed: %v", err)
	}
	proj.Result = &result

	if err := Save(path, proj); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Name != "Hall A" {
		t.Errorf("expected name 'Hall A', got %q", loaded.Name)
	}
	if loaded.Settings != proj.Settings {
		t.Errorf("settings mismatch: got %+v", loaded.Settings)
	}
	if len(loaded.Candidates) != 2 {
		t.Errorf("expected 2 candidates, got %d", len(loaded.Candidates))
	}
	if loaded.Result == nil {
		t.Fatal("expected result to survive the round trip")
	}
	if len(loaded.Result.Setups) != len(result.Setups) {
		t.Fatalf("expected %d setups, got %d", len(result.Setups), len(loaded.Result.Setups))
	}
	for i, s := range loaded.Result.Setups {
		if s != result.Setups[i] {
			t.Errorf("setup %d mismatch: got %+v, want %+v", i, s, result.Setups[i])
		}
	}
}

func TestLoadProject_NilCandidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.drillplan")

	data := []byte(`{"name":"x","settings":{"grid":{"width":16,"height":16,"tile_size":32},"check_mode":"symmetric","sweep_order":"x-major"}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	proj, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if proj.Candidates == nil {
		t.Error("Candidates should not be nil after loading")
	}
	if proj.Result != nil {
		t.Error("expected no result")
	}
}

func TestLoadProject_InvalidSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.drillplan")

	data := []byte(`{"name":"x","settings":{"grid":{"width":16,"height":16,"tile_size":32},"check_mode":"loose","sweep_order":"x-major"}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown check mode")
	}
}

func TestLoadProject_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.drillplan")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWithExtension(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plan", "plan.drillplan"},
		{"plan.drillplan", "plan.drillplan"},
		{"plan.json", "plan.json"},
	}
	for _, tt := range tests {
		if got := WithExtension(tt.in); got != tt.want {
			t.Errorf("WithExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if !IsProjectFile("a/b.DrillPlan") {
		t.Error("expected case-insensitive extension match")
	}
	if IsProjectFile("a/b.csv") {
		t.Error("csv is not a project file")
	}
}
