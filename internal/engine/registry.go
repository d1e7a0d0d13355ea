package engine

import "github.com/piwi3910/DrillPlan/internal/model"

// PlacementRegistry holds the accepted setups of one placement pass and
// decides whether a candidate may join them. It is not safe for concurrent use.
type PlacementRegistry struct {
	mode   model.CheckMode
	setups []model.LaserDrillSetup
}

// NewPlacementRegistry returns an empty registry using mode to judge
// overlapping setups. An unknown mode falls back to CheckSymmetric.
func NewPlacementRegistry(mode model.CheckMode) *PlacementRegistry {
	if mode.Validate() != nil {
		mode = model.CheckSymmetric
	}
	return &PlacementRegistry{mode: mode}
}

// Mode returns the check mode in use.
func (r *PlacementRegistry) Mode() model.CheckMode {
	return r.mode
}

// CanPlace reports whether candidate clashes with no accepted setup.
func (r *PlacementRegistry) CanPlace(candidate model.LaserDrillSetup) bool {
	_, conflict := r.FirstConflict(candidate)
	return !conflict
}

// FirstConflict returns the earliest accepted setup that blocks candidate.
func (r *PlacementRegistry) FirstConflict(candidate model.LaserDrillSetup) (model.LaserDrillSetup, bool) {
	for _, s := range r.setups {
		if !s.IntersectsArea(candidate) {
			continue
		}
		if Conflicts(r.mode, s, candidate) {
			return s, true
		}
	}
	return model.LaserDrillSetup{}, false
}

// Add appends candidate without checking it. Duplicate centers are kept.
func (r *PlacementRegistry) Add(candidate model.LaserDrillSetup) {
	r.setups = append(r.setups, candidate)
}

// TryAdd adds candidate if it can be placed and reports whether it was.
func (r *PlacementRegistry) TryAdd(candidate model.LaserDrillSetup) bool {
	if !r.CanPlace(candidate) {
		return false
	}
	r.Add(candidate)
	return true
}

// Remove drops the first accepted setup anchored at center.
func (r *PlacementRegistry) Remove(center model.Vector2) bool {
	for i, s := range r.setups {
		if s.Center == center {
			r.setups = append(r.setups[:i], r.setups[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of accepted setups.
func (r *PlacementRegistry) Len() int {
	return len(r.setups)
}

// Setups returns a copy of the accepted setups in acceptance order.
func (r *PlacementRegistry) Setups() []model.LaserDrillSetup {
	cp := make([]model.LaserDrillSetup, len(r.setups))
	copy(cp, r.setups)
	return cp
}

// Conflicts applies mode to two setups whose boxes overlap. existing is the
// already accepted setup, candidate the newcomer; only CheckDrillOnly cares
// about the distinction.
func Conflicts(mode model.CheckMode, existing, candidate model.LaserDrillSetup) bool {
	switch mode {
	case model.CheckDrillOnly:
		return !existing.CanPlaceAbove(candidate)
	case model.CheckSolid:
		return existing.SharesSolidTile(candidate)
	default:
		return !existing.CanPlaceAbove(candidate) || !candidate.CanPlaceAbove(existing)
	}
}
