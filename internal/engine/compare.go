package engine

import (
	"context"
	"fmt"

	"github.com/piwi3910/DrillPlan/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.PlanSettings
}

// ComparisonResult holds the plan and its summary numbers for one scenario.
type ComparisonResult struct {
	Scenario       ComparisonScenario
	Result         model.PlanResult
	Accepted       int
	Rejected       int
	AcceptanceRate float64
}

// CompareScenarios sweeps the grid once per scenario, in scenario order.
// A scenario with invalid settings aborts the comparison.
func CompareScenarios(ctx context.Context, scenarios []ComparisonScenario) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := New(scenario.Settings).Sweep(ctx)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		results = append(results, ComparisonResult{
			Scenario:       scenario,
			Result:         result,
			Accepted:       len(result.Setups),
			Rejected:       len(result.Rejected),
			AcceptanceRate: result.AcceptanceRate(),
		})
	}

	return results, nil
}

// ScenariosFromProfiles turns saved scenario profiles into comparison scenarios.
func ScenariosFromProfiles(profiles []model.ScenarioProfile) []ComparisonScenario {
	scenarios := make([]ComparisonScenario, 0, len(profiles))
	for _, p := range profiles {
		scenarios = append(scenarios, ComparisonScenario{Name: p.Name, Settings: p.Settings})
	}
	return scenarios
}

// BuildDefaultScenarios starts from the current settings and adds every other
// check mode and the opposite sweep order as what-if alternatives.
func BuildDefaultScenarios(base model.PlanSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	for _, mode := range model.CheckModes {
		if mode == base.CheckMode {
			continue
		}
		alt := base
		alt.CheckMode = mode
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Check mode %s", mode),
			Settings: alt,
		})
	}

	altOrder := base
	if base.SweepOrder == model.SweepYMajor {
		altOrder.SweepOrder = model.SweepXMajor
	} else {
		altOrder.SweepOrder = model.SweepYMajor
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Sweep %s", altOrder.SweepOrder),
		Settings: altOrder,
	})

	return scenarios
}
