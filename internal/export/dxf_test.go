package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/DrillPlan/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

func TestExportDXF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.dxf")

	if err := ExportDXF(path, buildTestResult()); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	content := string(data)
	for _, layer := range []string{LayerGrid, LayerDrill, LayerPreCharger, LayerLaser, LayerBeam} {
		if !strings.Contains(content, layer) {
			t.Errorf("expected layer %s in DXF output", layer)
		}
	}
}

func TestExportDXF_LineCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.dxf")

	result := model.PlanResult{
		Settings: model.DefaultPlanSettings(),
		Setups:   []model.LaserDrillSetup{model.NewLaserDrillSetup(model.Vec(5, 5))},
	}
	if err := ExportDXF(path, result); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		t.Fatalf("failed to reopen DXF: %v", err)
	}

	lines := 0
	for _, e := range drawing.Entities() {
		if _, ok := e.(*entity.Line); ok {
			lines++
		}
	}
	// Grid outline, nine tile squares, four beams.
	if want := 4 + 9*4 + 4; lines != want {
		t.Errorf("expected %d lines, got %d", want, lines)
	}
}

func TestExportDXF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dxf")

	if err := ExportDXF(path, model.PlanResult{Settings: model.DefaultPlanSettings()}); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestTileLayer(t *testing.T) {
	tests := []struct {
		tile model.TileType
		want string
	}{
		{model.TileDrill, LayerDrill},
		{model.TilePreCharger, LayerPreCharger},
		{model.TileLaser, LayerLaser},
	}
	for _, tt := range tests {
		if got := tileLayer(tt.tile); got != tt.want {
			t.Errorf("tileLayer(%s) = %s, want %s", tt.tile, got, tt.want)
		}
	}
}
