package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/DrillPlan/internal/model"
)

func testProfiles() []model.ScenarioProfile {
	strict := model.DefaultPlanSettings()
	strict.CheckMode = model.CheckSolid

	wide := model.DefaultPlanSettings()
	wide.Grid.Width = 32
	wide.SweepOrder = model.SweepYMajor

	return []model.ScenarioProfile{
		{Name: "Strict", Settings: strict},
		{Name: "Wide hall", Settings: wide},
	}
}

func TestSaveAndLoadScenarios(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.json")

	profiles := testProfiles()
	if err := SaveScenarios(path, profiles); err != nil {
		t.Fatalf("SaveScenarios error: %v", err)
	}

	loaded, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("LoadScenarios error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(loaded))
	}
	if loaded[1].Name != "Wide hall" || loaded[1].Settings.Grid.Width != 32 {
		t.Errorf("unexpected second profile: %+v", loaded[1])
	}
	if loaded[0].Settings.CheckMode != model.CheckSolid {
		t.Errorf("expected solid check mode, got %s", loaded[0].Settings.CheckMode)
	}
}

func TestLoadScenarios_NotFound(t *testing.T) {
	loaded, err := LoadScenarios(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if loaded == nil || len(loaded) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", loaded)
	}
}

func TestLoadScenarios_InvalidProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.json")

	data := []byte(`[{"name":"tiny","settings":{"grid":{"width":3,"height":3,"tile_size":32},"check_mode":"symmetric","sweep_order":"x-major"}}]`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadScenarios(path); err == nil {
		t.Fatal("expected error for undersized grid")
	}
}

func TestExportAndImportScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strict.json")

	profile := testProfiles()[0]
	if err := ExportScenario(path, profile); err != nil {
		t.Fatalf("ExportScenario error: %v", err)
	}

	imported, err := ImportScenario(path)
	if err != nil {
		t.Fatalf("ImportScenario error: %v", err)
	}
	if imported != profile {
		t.Errorf("profile mismatch: got %+v, want %+v", imported, profile)
	}
}

func TestImportScenario_NoName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.json")

	if err := ExportScenario(path, model.ScenarioProfile{Settings: model.DefaultPlanSettings()}); err != nil {
		t.Fatalf("ExportScenario error: %v", err)
	}

	if _, err := ImportScenario(path); err == nil {
		t.Fatal("expected error for unnamed profile")
	}
}
