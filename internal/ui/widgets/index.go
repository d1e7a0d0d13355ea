package widgets

import "github.com/piwi3910/DrillPlan/internal/model"

// SetupIndex keeps the setups shown on a canvas, keyed by center, in
// insertion order. It stores copies and never changes a setup.
type SetupIndex struct {
	byCenter map[model.Vector2]model.LaserDrillSetup
	order    []model.Vector2
}

func NewSetupIndex() *SetupIndex {
	return &SetupIndex{byCenter: make(map[model.Vector2]model.LaserDrillSetup)}
}

// Add stores setup under its center, replacing any setup already there
// while keeping that center's original position in the order.
func (ix *SetupIndex) Add(setup model.LaserDrillSetup) {
	if _, exists := ix.byCenter[setup.Center]; !exists {
		ix.order = append(ix.order, setup.Center)
	}
	ix.byCenter[setup.Center] = setup
}

// Remove drops the setup anchored at setup's center and reports whether one
// was present.
func (ix *SetupIndex) Remove(setup model.LaserDrillSetup) bool {
	return ix.RemoveAt(setup.Center)
}

// RemoveAt drops the setup anchored at center.
func (ix *SetupIndex) RemoveAt(center model.Vector2) bool {
	if _, exists := ix.byCenter[center]; !exists {
		return false
	}
	delete(ix.byCenter, center)
	for i, c := range ix.order {
		if c == center {
			ix.order = append(ix.order[:i], ix.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the setup anchored at center.
func (ix *SetupIndex) Get(center model.Vector2) (model.LaserDrillSetup, bool) {
	s, ok := ix.byCenter[center]
	return s, ok
}

// At returns the first setup in order with any tile on location.
func (ix *SetupIndex) At(location model.Vector2) (model.LaserDrillSetup, bool) {
	for _, c := range ix.order {
		if s := ix.byCenter[c]; s.Occupies(location) {
			return s, true
		}
	}
	return model.LaserDrillSetup{}, false
}

// Len returns the number of indexed setups.
func (ix *SetupIndex) Len() int {
	return len(ix.order)
}

// Setups returns the indexed setups in insertion order.
func (ix *SetupIndex) Setups() []model.LaserDrillSetup {
	setups := make([]model.LaserDrillSetup, 0, len(ix.order))
	for _, c := range ix.order {
		setups = append(setups, ix.byCenter[c])
	}
	return setups
}

// Reset replaces the contents with setups.
func (ix *SetupIndex) Reset(setups []model.LaserDrillSetup) {
	ix.byCenter = make(map[model.Vector2]model.LaserDrillSetup, len(setups))
	ix.order = ix.order[:0]
	for _, s := range setups {
		ix.Add(s)
	}
}
