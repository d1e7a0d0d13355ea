package ui

import (
	"testing"

	"github.com/piwi3910/DrillPlan/internal/model"
)

func setupsAt(centers ...model.Vector2) []model.LaserDrillSetup {
	setups := make([]model.LaserDrillSetup, len(centers))
	for i, c := range centers {
		setups[i] = model.NewLaserDrillSetup(c)
	}
	return setups
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	// State before placing a setup
	h.Push(MakeSnapshot(nil, nil, "initial"))

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	current := MakeSnapshot(setupsAt(model.Vec(5, 5)), nil, "current")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if len(restored.Setups) != 0 {
		t.Errorf("expected 0 setups after undo, got %d", len(restored.Setups))
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(nil, nil, "empty"))
	h.Push(MakeSnapshot(setupsAt(model.Vec(5, 5)), nil, "one setup"))

	current := MakeSnapshot(setupsAt(model.Vec(5, 5), model.Vec(6, 5)), nil, "two setups")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if len(restored.Setups) != 1 {
		t.Errorf("expected 1 setup, got %d", len(restored.Setups))
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if len(redone.Setups) != 2 {
		t.Errorf("expected 2 setups after redo, got %d", len(redone.Setups))
	}
	if redone.Setups[1].Center != model.Vec(6, 5) {
		t.Errorf("expected second setup at (6, 5), got %s", redone.Setups[1].Center)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(nil, nil, "empty"))

	current := MakeSnapshot(setupsAt(model.Vec(5, 5)), nil, "one setup")
	if _, ok := h.Undo(current); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	h.Push(MakeSnapshot(nil, nil, "new action"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(nil, nil, ""))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack length 3, got %d", len(h.undoStack))
	}
}

func TestUndoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(MakeSnapshot(nil, nil, "current")); ok {
		t.Error("undo on empty history should return false")
	}
}

func TestRedoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Redo(MakeSnapshot(nil, nil, "current")); ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, nil, "a"))
	h.Push(MakeSnapshot(nil, nil, "b"))
	h.Undo(MakeSnapshot(nil, nil, "current"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	setups := setupsAt(model.Vec(5, 5))
	candidates := []model.Vector2{model.Vec(5, 5)}
	snap := MakeSnapshot(setups, candidates, "test")

	setups[0] = model.NewLaserDrillSetup(model.Vec(9, 9))
	candidates[0] = model.Vec(9, 9)

	if snap.Setups[0].Center != model.Vec(5, 5) {
		t.Error("snapshot setups should be independent of original slice")
	}
	if snap.Candidates[0] != model.Vec(5, 5) {
		t.Error("snapshot candidates should be independent of original slice")
	}
}

func TestCopyNilSlices(t *testing.T) {
	snap := MakeSnapshot(nil, nil, "nil test")
	if snap.Setups != nil {
		t.Error("nil setups should stay nil")
	}
	if snap.Candidates != nil {
		t.Error("nil candidates should stay nil")
	}
}

func TestMultipleUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(nil, nil, "empty"))
	h.Push(MakeSnapshot(setupsAt(model.Vec(2, 2)), nil, "1 setup"))
	h.Push(MakeSnapshot(setupsAt(model.Vec(2, 2), model.Vec(2, 3)), nil, "2 setups"))

	current := MakeSnapshot(setupsAt(model.Vec(2, 2), model.Vec(2, 3), model.Vec(2, 6)), nil, "3 setups")

	s, ok := h.Undo(current)
	if !ok || len(s.Setups) != 2 {
		t.Fatalf("first undo: expected 2 setups, got %d", len(s.Setups))
	}

	s, ok = h.Undo(s)
	if !ok || len(s.Setups) != 1 {
		t.Fatalf("second undo: expected 1 setup, got %d", len(s.Setups))
	}

	s, ok = h.Undo(s)
	if !ok || len(s.Setups) != 0 {
		t.Fatalf("third undo: expected 0 setups, got %d", len(s.Setups))
	}

	if h.CanUndo() {
		t.Error("should not be able to undo further")
	}

	s, ok = h.Redo(s)
	if !ok || len(s.Setups) != 1 {
		t.Fatalf("first redo: expected 1 setup, got %d", len(s.Setups))
	}

	s, ok = h.Redo(s)
	if !ok || len(s.Setups) != 2 {
		t.Fatalf("second redo: expected 2 setups, got %d", len(s.Setups))
	}

	s, ok = h.Redo(s)
	if !ok || len(s.Setups) != 3 {
		t.Fatalf("third redo: expected 3 setups, got %d", len(s.Setups))
	}

	if h.CanRedo() {
		t.Error("should not be able to redo further")
	}
}
