package export

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/piwi3910/DrillPlan/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	if err := ExportLabels(path, buildTestResult()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	assertNonEmptyFile(t, path, 500)
}

func TestExportLabels_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty_labels.pdf")

	err := ExportLabels(path, model.PlanResult{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportLabels_MultiplePages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// 72 setups span three label sheets.
	result := buildSweepResult(t)
	if len(result.Setups) <= labelsPerPage {
		t.Fatalf("expected more than %d setups, got %d", labelsPerPage, len(result.Setups))
	}

	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	assertNonEmptyFile(t, path, 500)
}

func TestCollectLabelInfos(t *testing.T) {
	result := buildTestResult()
	result.Settings.CheckMode = model.CheckSolid

	labels := CollectLabelInfos(result)

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}
	for i, l := range labels {
		if l.Index != i+1 {
			t.Errorf("label %d: expected index %d, got %d", i, i+1, l.Index)
		}
		if l.ID != result.Setups[i].ID {
			t.Errorf("label %d: expected ID %q, got %q", i, result.Setups[i].ID, l.ID)
		}
		if l.Mode != "solid" {
			t.Errorf("label %d: expected mode solid, got %q", i, l.Mode)
		}
	}
	if labels[2].CenterX != 11 || labels[2].CenterY != 10 {
		t.Errorf("expected third label at (11, 10), got (%d, %d)", labels[2].CenterX, labels[2].CenterY)
	}
}

func TestCollectLabelInfos_Empty(t *testing.T) {
	if labels := CollectLabelInfos(model.PlanResult{}); len(labels) != 0 {
		t.Errorf("expected no labels, got %d", len(labels))
	}
}

func TestLabelInfo_JSONPayload(t *testing.T) {
	info := LabelInfo{ID: "1a2b3c4d", CenterX: 6, CenterY: 8, Index: 2, Mode: "symmetric"}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	want := `{"id":"1a2b3c4d","center_x":6,"center_y":8,"index":2,"mode":"symmetric"}`
	if string(data) != want {
		t.Errorf("payload mismatch:\n got %s\nwant %s", data, want)
	}
}
