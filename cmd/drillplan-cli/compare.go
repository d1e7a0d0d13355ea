package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrillPlan/internal/engine"
	"github.com/piwi3910/DrillPlan/internal/project"
)

var scenariosPath string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare check modes, sweep orders and saved scenarios",
	Long: `Compare sweeps the grid once for the current settings, once for each other
check mode and once for the other sweep order, then once per saved scenario.`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&scenariosPath, "scenarios", "", "Scenario profiles JSON to compare as well")
}

func runCompare(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	scenarios := engine.BuildDefaultScenarios(settings)
	if scenariosPath != "" {
		profiles, err := project.LoadScenarios(scenariosPath)
		if err != nil {
			return fmt.Errorf("failed to load scenarios: %w", err)
		}
		scenarios = append(scenarios, engine.ScenariosFromProfiles(profiles)...)
	}

	results, err := engine.CompareScenarios(context.Background(), scenarios)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-28s %8s %8s %8s\n", "SCENARIO", "ACCEPTED", "REJECTED", "RATE")
	for _, r := range results {
		fmt.Fprintf(w, "%-28s %8d %8d %7.1f%%\n", r.Scenario.Name, r.Accepted, r.Rejected, r.AcceptanceRate)
	}
	return nil
}
