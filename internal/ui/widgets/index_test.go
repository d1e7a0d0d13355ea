package widgets

import (
	"testing"

	"github.com/piwi3910/DrillPlan/internal/model"
)

func TestSetupIndex_AddGet(t *testing.T) {
	ix := NewSetupIndex()
	s := model.NewLaserDrillSetup(model.Vec(5, 5))
	ix.Add(s)

	got, ok := ix.Get(model.Vec(5, 5))
	if !ok {
		t.Fatal("expected setup at (5, 5)")
	}
	if got != s {
		t.Errorf("got %+v, want %+v", got, s)
	}
	if _, ok := ix.Get(model.Vec(6, 6)); ok {
		t.Error("expected nothing at (6, 6)")
	}
	if ix.Len() != 1 {
		t.Errorf("expected len 1, got %d", ix.Len())
	}
}

func TestSetupIndex_ReplaceKeepsOrder(t *testing.T) {
	ix := NewSetupIndex()
	ix.Add(model.NewLaserDrillSetup(model.Vec(2, 2)))
	ix.Add(model.NewLaserDrillSetup(model.Vec(2, 3)))

	replacement := model.NewLaserDrillSetup(model.Vec(2, 2))
	ix.Add(replacement)

	setups := ix.Setups()
	if len(setups) != 2 {
		t.Fatalf("expected 2 setups, got %d", len(setups))
	}
	if setups[0].ID != replacement.ID {
		t.Errorf("expected replacement first, got ID %s", setups[0].ID)
	}
	if setups[1].Center != model.Vec(2, 3) {
		t.Errorf("expected (2, 3) second, got %s", setups[1].Center)
	}
}

func TestSetupIndex_Remove(t *testing.T) {
	ix := NewSetupIndex()
	a := model.NewLaserDrillSetup(model.Vec(2, 2))
	b := model.NewLaserDrillSetup(model.Vec(2, 3))
	c := model.NewLaserDrillSetup(model.Vec(2, 6))
	ix.Reset([]model.LaserDrillSetup{a, b, c})

	if !ix.Remove(b) {
		t.Fatal("expected removal of (2, 3)")
	}
	if ix.Remove(b) {
		t.Error("second removal should report false")
	}
	if ix.RemoveAt(model.Vec(9, 9)) {
		t.Error("removing an empty center should report false")
	}

	setups := ix.Setups()
	if len(setups) != 2 || setups[0].Center != a.Center || setups[1].Center != c.Center {
		t.Errorf("unexpected remaining setups: %+v", setups)
	}
}

func TestSetupIndex_At(t *testing.T) {
	ix := NewSetupIndex()
	ix.Add(model.NewLaserDrillSetup(model.Vec(5, 5)))

	// East pre-charger of the setup at (5, 5).
	s, ok := ix.At(model.Vec(7, 5))
	if !ok {
		t.Fatal("expected a setup covering (7, 5)")
	}
	if s.Center != model.Vec(5, 5) {
		t.Errorf("expected setup at (5, 5), got %s", s.Center)
	}

	// Diagonal corners of the bounding box are not part of the cross.
	if _, ok := ix.At(model.Vec(7, 7)); ok {
		t.Error("corner (7, 7) should not be occupied")
	}
}

func TestSetupIndex_Reset(t *testing.T) {
	ix := NewSetupIndex()
	ix.Add(model.NewLaserDrillSetup(model.Vec(2, 2)))
	ix.Reset(nil)

	if ix.Len() != 0 {
		t.Errorf("expected empty index, got %d", ix.Len())
	}
	if len(ix.Setups()) != 0 {
		t.Error("expected no setups after reset")
	}
}
