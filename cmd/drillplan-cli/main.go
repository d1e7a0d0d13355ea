// Command drillplan-cli runs laser drill placement passes without the
// desktop UI and writes the same PDF, label, DXF and project files.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/DrillPlan/internal/project"
)

var (
	verbose    bool
	configPath string
	opts       planOptions
)

var rootCmd = &cobra.Command{
	Use:   "drillplan-cli",
	Short: "Laser drill layout planner",
	Long: `drillplan-cli places cross-shaped laser drill setups on a tile grid.
Each candidate is accepted only if it does not clash with the setups accepted before it.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log.SetFlags(0)
		log.SetPrefix("drillplan: ")
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log every accepted and rejected candidate")
	pf.StringVar(&configPath, "config", project.DefaultConfigPath(), "Path to config.json with default plan settings")
	pf.IntVar(&opts.width, "width", 0, "Grid width in tiles (default from config)")
	pf.IntVar(&opts.height, "height", 0, "Grid height in tiles (default from config)")
	pf.IntVar(&opts.tileSize, "tile-size", 0, "Tile size in pixels (default from config)")
	pf.StringVar(&opts.mode, "mode", "", "Check mode: symmetric, drill-only or solid")
	pf.StringVar(&opts.order, "order", "", "Sweep order: x-major or y-major")

	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(compareCmd)
}

// addOutputFlags registers the flags shared by commands that produce a plan.
func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&opts.verify, "verify", false, "Audit the finished plan pairwise and fail on any conflict")
	f.StringVar(&opts.pdf, "pdf", "", "Write the layout PDF to this path")
	f.StringVar(&opts.labels, "labels", "", "Write QR setup labels to this PDF path")
	f.StringVar(&opts.dxf, "dxf", "", "Write the layout DXF to this path")
	f.StringVar(&opts.project, "project", "", "Save the plan as a .drillplan project")
}
