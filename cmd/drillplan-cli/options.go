package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrillPlan/internal/engine"
	"github.com/piwi3910/DrillPlan/internal/export"
	"github.com/piwi3910/DrillPlan/internal/model"
	"github.com/piwi3910/DrillPlan/internal/project"
)

// planOptions collects the settings and output flags of one run.
type planOptions struct {
	width, height, tileSize int
	mode, order             string

	verify                     bool
	pdf, labels, dxf, project string
}

// apply overrides base with every flag the user set.
func (o planOptions) apply(base model.PlanSettings, changed func(name string) bool) (model.PlanSettings, error) {
	s := base
	if changed("width") {
		s.Grid.Width = o.width
	}
	if changed("height") {
		s.Grid.Height = o.height
	}
	if changed("tile-size") {
		s.Grid.TileSize = o.tileSize
	}
	if changed("mode") {
		s.CheckMode = model.CheckMode(o.mode)
	}
	if changed("order") {
		s.SweepOrder = model.SweepOrder(o.order)
	}
	if err := s.Validate(); err != nil {
		return model.PlanSettings{}, err
	}
	return s, nil
}

// resolveSettings layers config file defaults and then flags over the built-in
// defaults.
func resolveSettings(cmd *cobra.Command) (model.PlanSettings, error) {
	cfg, err := project.LoadAppConfig(configPath)
	if err != nil {
		return model.PlanSettings{}, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	base := model.DefaultPlanSettings()
	cfg.ApplyToSettings(&base)
	return opts.apply(base, func(name string) bool { return cmd.Flags().Changed(name) })
}

// printSummary writes the plan totals, and with verbose every decision.
func printSummary(w io.Writer, result model.PlanResult, verbose bool) {
	s := result.Settings
	fmt.Fprintf(w, "Grid %dx%d, mode %s, sweep %s\n", s.Grid.Width, s.Grid.Height, s.CheckMode, s.SweepOrder)
	fmt.Fprintf(w, "Accepted %d, rejected %d (%.1f%%)\n", len(result.Setups), len(result.Rejected), result.AcceptanceRate())
	if !verbose {
		return
	}
	for i, setup := range result.Setups {
		fmt.Fprintf(w, "  %3d  %s  %s\n", i+1, setup.ID, setup.Center)
	}
	for _, r := range result.Rejected {
		fmt.Fprintf(w, "  rejected %s, clashes with %s\n", r.Center, r.ConflictsWith)
	}
}

// finish verifies and writes every requested output for result.
func finish(w io.Writer, result model.PlanResult, name string) error {
	printSummary(w, result, verbose)

	if opts.verify {
		if conflicts := engine.ValidatePlacement(result.Settings.CheckMode, result.Setups); len(conflicts) > 0 {
			return fmt.Errorf("placement has %d conflicting pairs, first %s and %s",
				len(conflicts), conflicts[0].A, conflicts[0].B)
		}
		fmt.Fprintln(w, "Verified: no conflicting pairs")
	}

	outputs := []struct {
		path  string
		write func(string, model.PlanResult) error
	}{
		{opts.pdf, export.ExportPDF},
		{opts.labels, export.ExportLabels},
		{opts.dxf, export.ExportDXF},
	}
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := out.write(out.path, result); err != nil {
			return err
		}
		log.Printf("wrote %s", out.path)
	}

	if opts.project != "" {
		proj := model.NewProject()
		proj.Name = name
		proj.Settings = result.Settings
		proj.Result = &result
		path := project.WithExtension(opts.project)
		if err := project.Save(path, proj); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}

// projectName derives a project name from a file path.
func projectName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
