package ui

import "github.com/piwi3910/DrillPlan/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the accepted setups and candidate list at a point in time.
type Snapshot struct {
	Setups     []model.LaserDrillSetup
	Candidates []model.Vector2
	Label      string // Human-readable description (e.g. "Place (6, 8)")
}

// History manages undo/redo stacks of plan snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// This should be called before the modification is applied.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot from the undo stack and pushes
// the current state onto the redo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent snapshot from the redo stack and pushes
// the current state onto the undo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// copySetups returns a copy of a setups slice. Setups hold only value types,
// so a shallow copy is already deep.
func copySetups(setups []model.LaserDrillSetup) []model.LaserDrillSetup {
	if setups == nil {
		return nil
	}
	cp := make([]model.LaserDrillSetup, len(setups))
	copy(cp, setups)
	return cp
}

func copyCandidates(centers []model.Vector2) []model.Vector2 {
	if centers == nil {
		return nil
	}
	cp := make([]model.Vector2, len(centers))
	copy(cp, centers)
	return cp
}

// MakeSnapshot creates a snapshot from the current plan state with a label.
func MakeSnapshot(setups []model.LaserDrillSetup, candidates []model.Vector2, label string) Snapshot {
	return Snapshot{
		Setups:     copySetups(setups),
		Candidates: copyCandidates(candidates),
		Label:      label,
	}
}
