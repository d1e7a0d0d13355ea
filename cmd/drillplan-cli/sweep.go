package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrillPlan/internal/engine"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep every center of the grid",
	Long:  `Sweep tries every center whose setup fits inside the grid, in the chosen order, and keeps each one that does not clash.`,
	RunE:  runSweep,
}

func init() {
	addOutputFlags(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := engine.New(settings).Sweep(ctx)
	if err != nil {
		return err
	}
	return finish(cmd.OutOrStdout(), result, "Sweep")
}
