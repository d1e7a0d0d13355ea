package model

import (
	"errors"
	"testing"
)

func TestDefaultPlanSettingsValid(t *testing.T) {
	s := DefaultPlanSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings should be valid: %v", err)
	}
	if s.Grid.Width != 16 || s.Grid.Height != 16 {
		t.Errorf("expected 16x16 grid, got %dx%d", s.Grid.Width, s.Grid.Height)
	}
	if s.Grid.TileSize != 32 {
		t.Errorf("expected 32px tiles, got %d", s.Grid.TileSize)
	}
	if s.CheckMode != CheckSymmetric {
		t.Errorf("expected symmetric check mode, got %s", s.CheckMode)
	}
}

func TestPlanSettingsValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlanSettings)
		want   error
	}{
		{"grid too narrow", func(s *PlanSettings) { s.Grid.Width = 4 }, ErrGridTooSmall},
		{"grid too short", func(s *PlanSettings) { s.Grid.Height = 0 }, ErrGridTooSmall},
		{"zero tile size", func(s *PlanSettings) { s.Grid.TileSize = 0 }, ErrInvalidTileSize},
		{"unknown mode", func(s *PlanSettings) { s.CheckMode = "loose" }, ErrUnknownCheckMode},
		{"unknown order", func(s *PlanSettings) { s.SweepOrder = "spiral" }, ErrUnknownSweepOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultPlanSettings()
			tt.mutate(&s)
			err := s.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGridContains(t *testing.T) {
	g := DefaultPlanSettings().Grid

	if !g.Contains(NewLaserDrillSetup(Vec(2, 2)).BoundingBox) {
		t.Error("setup at (2,2) should fit the grid")
	}
	if !g.Contains(NewLaserDrillSetup(Vec(13, 13)).BoundingBox) {
		t.Error("setup at (13,13) should fit the grid")
	}
	if g.Contains(NewLaserDrillSetup(Vec(1, 5)).BoundingBox) {
		t.Error("setup at (1,5) should stick out of the grid")
	}
	if g.Contains(NewLaserDrillSetup(Vec(5, 14)).BoundingBox) {
		t.Error("setup at (5,14) should stick out of the grid")
	}
}

func TestGridPixelSize(t *testing.T) {
	g := GridConfig{Width: 16, Height: 8, TileSize: 32}
	got := g.PixelSize()
	if got != Vec(16*32+16, 8*32+8) {
		t.Errorf("unexpected pixel size %s", got)
	}
}

func TestPlanResultStats(t *testing.T) {
	r := PlanResult{
		Setups: []LaserDrillSetup{
			NewLaserDrillSetup(Vec(2, 2)),
			NewLaserDrillSetup(Vec(2, 3)),
		},
		Rejected: []Rejection{{Center: Vec(2, 4), ConflictsWith: Vec(2, 2)}},
	}

	if r.Candidates() != 3 {
		t.Errorf("expected 3 candidates, got %d", r.Candidates())
	}
	rate := r.AcceptanceRate()
	if rate < 66.6 || rate > 66.7 {
		t.Errorf("expected ~66.7%% acceptance, got %f", rate)
	}

	counts := r.TileCounts()
	if counts[TileDrill] != 2 || counts[TilePreCharger] != 8 || counts[TileLaser] != 8 {
		t.Errorf("unexpected tile counts: %v", counts)
	}

	if _, ok := r.FindByCenter(Vec(2, 3)); !ok {
		t.Error("expected to find setup at (2,3)")
	}
	if _, ok := r.FindByCenter(Vec(2, 4)); ok {
		t.Error("rejected center must not be found")
	}

	if (PlanResult{}).AcceptanceRate() != 0 {
		t.Error("empty result should have zero acceptance rate")
	}
}

func TestNewProject(t *testing.T) {
	p := NewProject()
	if p.Name != "Untitled" {
		t.Errorf("expected Untitled, got %s", p.Name)
	}
	if p.Candidates == nil {
		t.Error("Candidates should not be nil")
	}
	if p.Result != nil {
		t.Error("new project should have no result")
	}
}
