package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrillPlan/internal/engine"
	"github.com/piwi3910/DrillPlan/internal/importer"
	"github.com/piwi3910/DrillPlan/internal/model"
)

var (
	candidateFile string
	centerArgs    []string
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Place an explicit list of candidate centers",
	Long: `Place applies the first-fit rule to candidate centers in the given order.
Centers come from --center flags and from a CSV, Excel or DXF file.`,
	Example: `  drillplan-cli place --center 6,8 --center 7,8
  drillplan-cli place --file centers.csv --pdf layout.pdf`,
	RunE: runPlace,
}

func init() {
	placeCmd.Flags().StringVarP(&candidateFile, "file", "f", "", "Candidate file (.csv, .tsv, .txt, .xlsx or .dxf)")
	placeCmd.Flags().StringArrayVar(&centerArgs, "center", nil, "Candidate center as X,Y (repeatable)")
	addOutputFlags(placeCmd)
}

func runPlace(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	var centers []model.Vector2
	for _, arg := range centerArgs {
		c, err := parseCenter(arg)
		if err != nil {
			return err
		}
		centers = append(centers, c)
	}

	name := "Candidates"
	if candidateFile != "" {
		imported, err := importCandidates(candidateFile)
		if err != nil {
			return err
		}
		centers = append(centers, imported...)
		name = projectName(candidateFile)
	}
	if len(centers) == 0 {
		return errors.New("no candidates: pass --center or --file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := engine.New(settings).PlaceCandidates(ctx, centers)
	if err != nil {
		return err
	}
	for _, c := range result.OutOfGrid {
		log.Printf("skipped %s: setup does not fit the grid", c)
	}
	return finish(cmd.OutOrStdout(), result, name)
}

// parseCenter reads "X,Y" with optional spaces.
func parseCenter(s string) (model.Vector2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return model.Vector2{}, fmt.Errorf("invalid center %q: want X,Y", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return model.Vector2{}, fmt.Errorf("invalid center %q: coordinates must be integers", s)
	}
	c := model.Vec(x, y)
	if !c.InRange() {
		return model.Vector2{}, fmt.Errorf("invalid center %q: %w", s, model.ErrCoordinateRange)
	}
	return c, nil
}

// importCandidates picks the importer by file extension and logs row
// problems. It fails only when nothing usable was read.
func importCandidates(path string) ([]model.Vector2, error) {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		result = importer.ImportCSV(path)
	case ".xlsx":
		result = importer.ImportExcel(path)
	case ".dxf":
		result = importer.ImportDXF(path)
	default:
		return nil, fmt.Errorf("unsupported candidate file %q: use .csv, .tsv, .txt, .xlsx or .dxf", path)
	}

	for _, w := range result.Warnings {
		log.Printf("warning: %s", w)
	}
	for _, e := range result.Errors {
		log.Printf("error: %s", e)
	}
	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates read from %s", path)
	}
	return result.Candidates, nil
}
