package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/piwi3910/DrillPlan/internal/engine"
	"github.com/piwi3910/DrillPlan/internal/model"
)

func TestPlanStateToggleAddRemove(t *testing.T) {
	ps := newPlanState(model.DefaultPlanSettings())

	outcome, _, err := ps.toggle(model.Vec(5, 5))
	if err != nil || outcome != toggleAdded {
		t.Fatalf("expected add, got outcome %d err %v", outcome, err)
	}
	if ps.index.Len() != 1 || ps.registry.Len() != 1 {
		t.Fatalf("expected one setup, index %d registry %d", ps.index.Len(), ps.registry.Len())
	}

	outcome, _, err = ps.toggle(model.Vec(5, 5))
	if err != nil || outcome != toggleRemoved {
		t.Fatalf("expected remove, got outcome %d err %v", outcome, err)
	}
	if ps.index.Len() != 0 || ps.registry.Len() != 0 {
		t.Errorf("expected empty state, index %d registry %d", ps.index.Len(), ps.registry.Len())
	}
}

func TestPlanStateToggleBlocked(t *testing.T) {
	ps := newPlanState(model.DefaultPlanSettings())
	ps.toggle(model.Vec(5, 5))

	// (7, 5) would put its drill on the east pre-charger of (5, 5).
	outcome, blocker, err := ps.toggle(model.Vec(7, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != toggleBlocked {
		t.Fatalf("expected blocked, got %d", outcome)
	}
	if blocker != model.Vec(5, 5) {
		t.Errorf("expected blocker (5, 5), got %s", blocker)
	}

	// (6, 5) lands on a laser tile, which is allowed.
	outcome, _, _ = ps.toggle(model.Vec(6, 5))
	if outcome != toggleAdded {
		t.Errorf("expected (6, 5) to be accepted, got %d", outcome)
	}
}

func TestPlanStateToggleOutsideGrid(t *testing.T) {
	ps := newPlanState(model.DefaultPlanSettings())

	outcome, _, err := ps.toggle(model.Vec(1, 5))
	if outcome != toggleBlocked {
		t.Errorf("expected blocked, got %d", outcome)
	}
	if !errors.Is(err, model.ErrCenterOutsideGrid) {
		t.Errorf("expected ErrCenterOutsideGrid, got %v", err)
	}
}

func TestPlanStateLoadSweep(t *testing.T) {
	result, err := engine.New(model.DefaultPlanSettings()).Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	ps := newPlanState(model.DefaultPlanSettings())
	ps.load(result)

	if ps.index.Len() != len(result.Setups) {
		t.Errorf("expected %d indexed setups, got %d", len(result.Setups), ps.index.Len())
	}
	got := ps.result()
	if len(got.Rejected) != len(result.Rejected) {
		t.Errorf("expected %d rejections, got %d", len(result.Rejected), len(got.Rejected))
	}
	if err := ps.verify(); err != nil {
		t.Errorf("sweep result should verify: %v", err)
	}

	// Every accepted setup is a removal target.
	outcome, _, _ := ps.toggle(result.Setups[0].Center)
	if outcome != toggleRemoved {
		t.Errorf("expected removal of first accepted setup, got %d", outcome)
	}
}

func TestPlanStateSetSettingsKeepsSetups(t *testing.T) {
	ps := newPlanState(model.DefaultPlanSettings())
	ps.toggle(model.Vec(5, 5))
	ps.toggle(model.Vec(9, 5))

	solid := model.DefaultPlanSettings()
	solid.CheckMode = model.CheckSolid
	ps.setSettings(solid)

	if ps.registry.Mode() != model.CheckSolid {
		t.Errorf("expected solid registry, got %s", ps.registry.Mode())
	}
	if len(ps.setups()) != 2 {
		t.Fatalf("expected setups to survive, got %d", len(ps.setups()))
	}
	// Both setups put a pre-charger on (7, 5).
	if err := ps.verify(); err == nil {
		t.Error("expected a conflict under solid mode")
	}
}
