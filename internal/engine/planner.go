// Package engine places laser drill setups on a grid with first-fit
// acceptance against previously accepted setups.
package engine

import (
	"context"
	"fmt"

	"github.com/piwi3910/DrillPlan/internal/model"
)

// Planner runs placement passes for one set of settings.
type Planner struct {
	Settings model.PlanSettings
}

func New(settings model.PlanSettings) *Planner {
	return &Planner{Settings: settings}
}

// Sweep walks every center whose setup fits inside the grid, keeping SetupReach
// tiles clear of each edge, and accepts each candidate that does not clash
// with the setups accepted before it. The result depends on the sweep order.
func (p *Planner) Sweep(ctx context.Context) (model.PlanResult, error) {
	if err := p.Settings.Validate(); err != nil {
		return model.PlanResult{}, fmt.Errorf("invalid plan settings: %w", err)
	}

	grid := p.Settings.Grid
	reach := model.SetupReach
	registry := NewPlacementRegistry(p.Settings.CheckMode)
	result := model.PlanResult{Settings: p.Settings}

	outerN, innerN := grid.Width, grid.Height
	if p.Settings.SweepOrder == model.SweepYMajor {
		outerN, innerN = grid.Height, grid.Width
	}

	for outer := reach; outer < outerN-reach; outer++ {
		if err := ctx.Err(); err != nil {
			return model.PlanResult{}, err
		}
		for inner := reach; inner < innerN-reach; inner++ {
			center := model.Vec(outer, inner)
			if p.Settings.SweepOrder == model.SweepYMajor {
				center = model.Vec(inner, outer)
			}
			place(registry, &result, center)
		}
	}

	result.Setups = registry.Setups()
	return result, nil
}

// PlaceCandidates applies the same first-fit rule to an explicit, ordered
// list of centers. Centers whose setup would leave the grid are skipped and
// listed in OutOfGrid; it is an error only when none of them fit.
func (p *Planner) PlaceCandidates(ctx context.Context, centers []model.Vector2) (model.PlanResult, error) {
	if err := p.Settings.Validate(); err != nil {
		return model.PlanResult{}, fmt.Errorf("invalid plan settings: %w", err)
	}

	registry := NewPlacementRegistry(p.Settings.CheckMode)
	result := model.PlanResult{Settings: p.Settings}

	for _, center := range centers {
		if err := ctx.Err(); err != nil {
			return model.PlanResult{}, err
		}
		if p.Fits(center) != nil {
			result.OutOfGrid = append(result.OutOfGrid, center)
			continue
		}
		place(registry, &result, center)
	}

	if len(centers) > 0 && len(result.OutOfGrid) == len(centers) {
		return result, fmt.Errorf("%w: %d candidates on a %dx%d grid",
			model.ErrNoCandidatesInGrid, len(centers), p.Settings.Grid.Width, p.Settings.Grid.Height)
	}

	result.Setups = registry.Setups()
	return result, nil
}

// Fits reports ErrCenterOutsideGrid when a setup at center would leave the
// grid. The check is on the center alone, so it is safe for any int.
func (p *Planner) Fits(center model.Vector2) error {
	g := p.Settings.Grid
	const r = model.SetupReach
	if center.X < r || center.X > g.Width-1-r || center.Y < r || center.Y > g.Height-1-r {
		return fmt.Errorf("%w: center %s on a %dx%d grid", model.ErrCenterOutsideGrid, center, g.Width, g.Height)
	}
	return nil
}

// place builds the candidate at center and either accepts it or records the
// rejection.
func place(registry *PlacementRegistry, result *model.PlanResult, center model.Vector2) {
	candidate := model.NewLaserDrillSetup(center)
	if blocker, conflict := registry.FirstConflict(candidate); conflict {
		result.Rejected = append(result.Rejected, model.Rejection{
			Center:        center,
			ConflictsWith: blocker.Center,
		})
		return
	}
	registry.Add(candidate)
}

// Conflict is a pair of accepted setups that break the placement rule.
type Conflict struct {
	A, B model.Vector2
}

// ValidatePlacement audits a finished plan pairwise under mode and returns
// every offending pair. A plan produced by Planner under the same mode
// always comes back clean.
func ValidatePlacement(mode model.CheckMode, setups []model.LaserDrillSetup) []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(setups); i++ {
		for j := i + 1; j < len(setups); j++ {
			a, b := setups[i], setups[j]
			if !a.IntersectsArea(b) {
				continue
			}
			if Conflicts(mode, a, b) {
				conflicts = append(conflicts, Conflict{A: a.Center, B: b.Center})
			}
		}
	}
	return conflicts
}
