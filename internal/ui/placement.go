package ui

import (
	"fmt"

	"github.com/piwi3910/DrillPlan/internal/engine"
	"github.com/piwi3910/DrillPlan/internal/model"
	"github.com/piwi3910/DrillPlan/internal/ui/widgets"
)

type toggleOutcome int

const (
	toggleAdded toggleOutcome = iota
	toggleRemoved
	toggleBlocked
)

// planState is the placement being edited on the canvas. The registry decides
// acceptance; the index answers what is drawn where.
type planState struct {
	settings  model.PlanSettings
	registry  *engine.PlacementRegistry
	index     *widgets.SetupIndex
	rejected  []model.Rejection
	outOfGrid []model.Vector2
}

func newPlanState(settings model.PlanSettings) *planState {
	return &planState{
		settings: settings,
		registry: engine.NewPlacementRegistry(settings.CheckMode),
		index:    widgets.NewSetupIndex(),
	}
}

// load replaces the state with a finished plan.
func (ps *planState) load(result model.PlanResult) {
	ps.settings = result.Settings
	ps.restore(result.Setups)
	ps.rejected = append([]model.Rejection(nil), result.Rejected...)
	ps.outOfGrid = append([]model.Vector2(nil), result.OutOfGrid...)
}

// restore rebuilds the registry and index from setups without rechecking
// them, and drops rejection records.
func (ps *planState) restore(setups []model.LaserDrillSetup) {
	ps.registry = engine.NewPlacementRegistry(ps.settings.CheckMode)
	for _, s := range setups {
		ps.registry.Add(s)
	}
	ps.index.Reset(setups)
	ps.rejected = nil
	ps.outOfGrid = nil
}

// setSettings switches to new settings and keeps the current setups.
func (ps *planState) setSettings(settings model.PlanSettings) {
	setups := ps.setups()
	ps.settings = settings
	ps.restore(setups)
}

func (ps *planState) setups() []model.LaserDrillSetup {
	return ps.registry.Setups()
}

// toggle removes the setup centered on tile, or places a new one there when
// the registry accepts it. A blocked placement returns the blocker's center.
func (ps *planState) toggle(tile model.Vector2) (toggleOutcome, model.Vector2, error) {
	if _, ok := ps.index.Get(tile); ok {
		ps.registry.Remove(tile)
		ps.index.RemoveAt(tile)
		return toggleRemoved, tile, nil
	}

	if err := engine.New(ps.settings).Fits(tile); err != nil {
		return toggleBlocked, model.Vector2{}, err
	}

	candidate := model.NewLaserDrillSetup(tile)
	if blocker, conflict := ps.registry.FirstConflict(candidate); conflict {
		return toggleBlocked, blocker.Center, nil
	}
	ps.registry.Add(candidate)
	ps.index.Add(candidate)
	return toggleAdded, tile, nil
}

// result snapshots the state as a PlanResult.
func (ps *planState) result() model.PlanResult {
	return model.PlanResult{
		Settings:  ps.settings,
		Setups:    ps.setups(),
		Rejected:  append([]model.Rejection(nil), ps.rejected...),
		OutOfGrid: append([]model.Vector2(nil), ps.outOfGrid...),
	}
}

// verify audits the current setups under the active check mode.
func (ps *planState) verify() error {
	conflicts := engine.ValidatePlacement(ps.settings.CheckMode, ps.setups())
	if len(conflicts) == 0 {
		return nil
	}
	c := conflicts[0]
	return fmt.Errorf("%d conflicting pairs under %s, first %s and %s",
		len(conflicts), ps.settings.CheckMode, c.A, c.B)
}
