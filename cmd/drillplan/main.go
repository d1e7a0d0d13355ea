// DrillPlan - Laser Drill Layout Planner
//
// A cross-platform desktop application for placing cross-shaped laser drill
// setups on a tile grid and exporting the layout as PDF, labels or DXF.
//
// Build:
//   go build -o drillplan ./cmd/drillplan
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o drillplan.exe ./cmd/drillplan
//   GOOS=darwin  GOARCH=amd64 go build -o drillplan-darwin ./cmd/drillplan
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/DrillPlan/internal/model"
	"github.com/piwi3910/DrillPlan/internal/project"
	"github.com/piwi3910/DrillPlan/internal/ui"
)

func main() {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		config = model.DefaultAppConfig()
	}

	application := app.NewWithID("com.piwi3910.drillplan")
	application.Settings().SetTheme(ui.NewDrillPlanTheme(config.Theme))
	window := application.NewWindow("DrillPlan - Laser Drill Layout Planner")

	appUI := ui.NewApp(window, config)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
