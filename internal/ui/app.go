package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/DrillPlan/internal/engine"
	"github.com/piwi3910/DrillPlan/internal/export"
	centerimporter "github.com/piwi3910/DrillPlan/internal/importer"
	"github.com/piwi3910/DrillPlan/internal/model"
	"github.com/piwi3910/DrillPlan/internal/project"
	"github.com/piwi3910/DrillPlan/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window    fyne.Window
	project   model.Project
	config    model.AppConfig
	templates model.TemplateStore
	scenarios []model.ScenarioProfile
	history   *History
	state     *planState
	tabs      *container.AppTabs

	// UI references for dynamic updates
	grid                *widgets.GridCanvas
	summaryContainer    *fyne.Container
	candidatesContainer *fyne.Container
	compareContainer    *fyne.Container
	statusLabel         *widget.Label
	undoBtn             *ttwidget.Button
	redoBtn             *ttwidget.Button
	modeSelect          *widget.Select
	orderSelect         *widget.Select
	widthEntry          *widget.Entry
	heightEntry         *widget.Entry
	tileEntry           *widget.Entry
}

// NewApp creates the application for window. config supplies the defaults
// for new projects; templates and saved scenarios are read from the config
// directory and a missing file just means an empty list.
func NewApp(window fyne.Window, config model.AppConfig) *App {
	proj := model.NewProject()
	config.ApplyToSettings(&proj.Settings)

	templates, err := project.LoadDefaultTemplates()
	if err != nil {
		log.Printf("failed to load templates: %v", err)
		templates = model.NewTemplateStore()
	}
	scenarios, err := project.LoadDefaultScenarios()
	if err != nil {
		log.Printf("failed to load scenarios: %v", err)
		scenarios = nil
	}

	return &App{
		window:    window,
		project:   proj,
		config:    config,
		templates: templates,
		scenarios: scenarios,
		history:   NewHistory(),
		state:     newPlanState(proj.Settings),
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recentMenu := fyne.NewMenuItem("Open Recent", nil)
	recentMenu.ChildMenu = a.buildRecentMenu()

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", func() {
			a.newProject()
		}),
		fyne.NewMenuItem("Open Project...", func() {
			a.loadProject()
		}),
		recentMenu,
		fyne.NewMenuItem("Save Project...", func() {
			a.saveProject()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Candidates from CSV...", func() {
			a.importCandidates(centerimporter.ImportCSV)
		}),
		fyne.NewMenuItem("Import Candidates from Excel...", func() {
			a.importCandidates(centerimporter.ImportExcel)
		}),
		fyne.NewMenuItem("Import Candidates from DXF...", func() {
			a.importCandidates(centerimporter.ImportDXF)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Layout PDF...", func() {
			a.exportResult("layout.pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Setup Labels...", func() {
			a.exportResult("labels.pdf", export.ExportLabels)
		}),
		fyne.NewMenuItem("Export DXF...", func() {
			a.exportResult("layout.dxf", export.ExportDXF)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Placement", func() {
			a.pushHistory("clear placement")
			a.state.restore(nil)
			a.refreshPlan()
		}),
		fyne.NewMenuItem("Clear Candidates", func() {
			a.pushHistory("clear candidates")
			a.project.Candidates = []model.Vector2{}
			a.refreshCandidates()
		}),
	)

	planMenu := fyne.NewMenu("Plan",
		fyne.NewMenuItem("Sweep Grid", func() {
			a.runSweep()
			a.tabs.SelectIndex(0)
		}),
		fyne.NewMenuItem("Place Candidates", func() {
			a.runPlaceCandidates()
			a.tabs.SelectIndex(0)
		}),
		fyne.NewMenuItem("Verify Placement", func() {
			a.verifyPlacement()
		}),
		fyne.NewMenuItem("Compare Scenarios", func() {
			a.runCompare()
			a.tabs.SelectIndex(2)
		}),
	)

	libraryMenu := fyne.NewMenu("Library",
		fyne.NewMenuItem("Save as Template...", func() {
			a.showSaveTemplateDialog()
		}),
		fyne.NewMenuItem("Templates...", func() {
			a.showTemplateManager()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Scenarios...", func() {
			a.showScenarioManager()
		}),
	)

	settingsMenu := fyne.NewMenu("Settings",
		fyne.NewMenuItem("Preferences...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItem("Import / Export Data...", func() {
			a.showImportExportDialog()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(
		fileMenu,
		editMenu,
		planMenu,
		libraryMenu,
		settingsMenu,
		helpMenu,
	))
}

func (a *App) buildRecentMenu() *fyne.Menu {
	items := make([]*fyne.MenuItem, 0, len(a.config.RecentProjects))
	for _, p := range a.config.RecentProjects {
		path := p
		items = append(items, fyne.NewMenuItem(path, func() {
			a.openProjectPath(path)
		}))
	}
	if len(items) == 0 {
		none := fyne.NewMenuItem("No recent projects", nil)
		none.Disabled = true
		items = append(items, none)
	}
	return fyne.NewMenu("Open Recent", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About DrillPlan",
		"DrillPlan - Laser Drill Layout Planner\n\n"+
			"Places cross-shaped laser drill setups on a tile grid\n"+
			"and checks every new setup against the ones before it.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	planTab := container.NewTabItem("Plan", a.buildPlanPanel())
	candidatesTab := container.NewTabItem("Candidates", a.buildCandidatesPanel())
	compareTab := container.NewTabItem("Compare", a.buildComparePanel())

	a.tabs = container.NewAppTabs(planTab, candidatesTab, compareTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return fynetooltip.AddWindowToolTipLayer(a.tabs, a.window.Canvas())
}

// ─── Plan Panel ────────────────────────────────────────────

func (a *App) buildPlanPanel() fyne.CanvasObject {
	s := &a.project.Settings

	a.grid = widgets.NewGridCanvas(s.Grid, a.config.ShowLasers)
	a.grid.OnTileTapped = a.toggleSetup

	modeNames := make([]string, len(model.CheckModes))
	for i, m := range model.CheckModes {
		modeNames[i] = string(m)
	}
	a.modeSelect = widget.NewSelect(modeNames, func(selected string) {
		if model.CheckMode(selected) == s.CheckMode {
			return
		}
		s.CheckMode = model.CheckMode(selected)
		a.state.setSettings(*s)
		a.refreshPlan()
	})

	orderNames := make([]string, len(model.SweepOrders))
	for i, o := range model.SweepOrders {
		orderNames[i] = string(o)
	}
	a.orderSelect = widget.NewSelect(orderNames, func(selected string) {
		s.SweepOrder = model.SweepOrder(selected)
	})

	a.widthEntry = widget.NewEntry()
	a.heightEntry = widget.NewEntry()
	a.tileEntry = widget.NewEntry()

	applyGridBtn := widget.NewButtonWithIcon("Apply Grid", theme.ViewRefreshIcon(), func() {
		a.applyGrid()
	})

	lasersCheck := widget.NewCheck("Show laser tiles", func(b bool) {
		a.config.ShowLasers = b
		a.grid.SetShowLasers(b)
	})
	lasersCheck.Checked = a.config.ShowLasers

	settingsCard := widget.NewCard("Settings", "", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Check Mode"), a.modeSelect,
			widget.NewLabel("Sweep Order"), a.orderSelect,
			widget.NewLabel("Grid Width (tiles)"), a.widthEntry,
			widget.NewLabel("Grid Height (tiles)"), a.heightEntry,
			widget.NewLabel("Tile Size (px)"), a.tileEntry,
		),
		applyGridBtn,
		lasersCheck,
	))

	sweepBtn := newToolbarButton(theme.MediaPlayIcon(), "Sweep",
		"Try every center in sweep order and keep each one that fits", widget.HighImportance, a.runSweep)

	a.undoBtn = newToolbarButton(theme.ContentUndoIcon(), "", "Undo", widget.MediumImportance, a.undo)
	a.redoBtn = newToolbarButton(theme.ContentRedoIcon(), "", "Redo", widget.MediumImportance, a.redo)
	verifyBtn := newToolbarButton(theme.ConfirmIcon(), "", "Verify placement", widget.MediumImportance, a.verifyPlacement)
	clearBtn := newToolbarButton(theme.DeleteIcon(), "", "Clear placement", widget.MediumImportance, func() {
		a.pushHistory("clear placement")
		a.state.restore(nil)
		a.refreshPlan()
	})

	toolbar := container.NewHBox(
		sweepBtn,
		widget.NewSeparator(),
		a.undoBtn,
		a.redoBtn,
		verifyBtn,
		clearBtn,
		layout.NewSpacer(),
	)

	a.statusLabel = widget.NewLabel("Click a tile to place or remove a setup.")
	a.summaryContainer = container.NewVBox()

	side := container.NewVBox(settingsCard, widget.NewCard("Summary", "", a.summaryContainer))

	a.syncSettingsWidgets()
	a.refreshPlan()

	return container.NewBorder(
		toolbar,
		a.statusLabel,
		nil,
		container.NewVScroll(side),
		container.NewScroll(container.NewPadded(a.grid)),
	)
}

// syncSettingsWidgets copies the project settings into the plan controls.
func (a *App) syncSettingsWidgets() {
	s := a.project.Settings
	a.modeSelect.SetSelected(string(s.CheckMode))
	a.orderSelect.SetSelected(string(s.SweepOrder))
	a.widthEntry.SetText(strconv.Itoa(s.Grid.Width))
	a.heightEntry.SetText(strconv.Itoa(s.Grid.Height))
	a.tileEntry.SetText(strconv.Itoa(s.Grid.TileSize))
}

// applyGrid validates the grid entries and resizes the grid. Setups that no
// longer fit are dropped.
func (a *App) applyGrid() {
	w, errW := strconv.Atoi(strings.TrimSpace(a.widthEntry.Text))
	h, errH := strconv.Atoi(strings.TrimSpace(a.heightEntry.Text))
	ts, errT := strconv.Atoi(strings.TrimSpace(a.tileEntry.Text))
	if err := errors.Join(errW, errH, errT); err != nil {
		dialog.ShowError(fmt.Errorf("grid size must be whole numbers: %w", err), a.window)
		return
	}

	grid := model.GridConfig{Width: w, Height: h, TileSize: ts}
	if err := grid.Validate(); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.pushHistory("resize grid")
	a.project.Settings.Grid = grid

	var kept []model.LaserDrillSetup
	for _, s := range a.state.setups() {
		if grid.Contains(s.BoundingBox) {
			kept = append(kept, s)
		}
	}
	a.state.setSettings(a.project.Settings)
	a.state.restore(kept)
	a.grid.SetGrid(grid)
	a.refreshPlan()
}

// refreshPlan pushes the plan state into the canvas and summary.
func (a *App) refreshPlan() {
	result := a.state.result()
	a.project.Result = &result

	a.grid.SetSetups(a.state.index.Setups(), result.Rejected)

	a.summaryContainer.RemoveAll()
	a.summaryContainer.Add(widgets.RenderPlanSummary(&result))
	a.summaryContainer.Refresh()

	a.refreshHistoryButtons()
}

func (a *App) refreshHistoryButtons() {
	if a.undoBtn == nil {
		return
	}
	if a.history.CanUndo() {
		a.undoBtn.Enable()
	} else {
		a.undoBtn.Disable()
	}
	if a.history.CanRedo() {
		a.redoBtn.Enable()
	} else {
		a.redoBtn.Disable()
	}
}

// ─── Candidates Panel ──────────────────────────────────────

func (a *App) buildCandidatesPanel() fyne.CanvasObject {
	a.candidatesContainer = container.NewVBox()
	a.refreshCandidates()

	addBtn := widget.NewButtonWithIcon("Add Candidate", theme.ContentAddIcon(), func() {
		a.showAddCandidateDialog()
	})
	placeBtn := widget.NewButtonWithIcon("Place Candidates", theme.MediaPlayIcon(), func() {
		a.runPlaceCandidates()
		a.tabs.SelectIndex(0)
	})
	placeBtn.Importance = widget.HighImportance

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Candidate Centers", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			addBtn,
			placeBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.candidatesContainer),
	)
}

func (a *App) refreshCandidates() {
	a.candidatesContainer.RemoveAll()

	if len(a.project.Candidates) == 0 {
		a.candidatesContainer.Add(widget.NewLabel("No candidates yet. Add centers by hand or import them from CSV, Excel or DXF."))
		return
	}

	header := container.NewGridWithColumns(4,
		widget.NewLabelWithStyle("#", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("X", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Y", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.candidatesContainer.Add(header)
	a.candidatesContainer.Add(widget.NewSeparator())

	for i := range a.project.Candidates {
		idx := i
		c := a.project.Candidates[idx]
		row := container.NewGridWithColumns(4,
			widget.NewLabel(strconv.Itoa(idx+1)),
			widget.NewLabel(strconv.Itoa(c.X)),
			widget.NewLabel(strconv.Itoa(c.Y)),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.pushHistory("remove candidate")
				a.project.Candidates = append(a.project.Candidates[:idx], a.project.Candidates[idx+1:]...)
				a.refreshCandidates()
			}),
		)
		a.candidatesContainer.Add(row)
	}
}

func (a *App) showAddCandidateDialog() {
	xEntry := widget.NewEntry()
	xEntry.SetPlaceHolder("Tile X")
	yEntry := widget.NewEntry()
	yEntry.SetPlaceHolder("Tile Y")

	form := dialog.NewForm("Add Candidate", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Center X", xEntry),
			widget.NewFormItem("Center Y", yEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			x, errX := strconv.Atoi(strings.TrimSpace(xEntry.Text))
			y, errY := strconv.Atoi(strings.TrimSpace(yEntry.Text))
			if errX != nil || errY != nil {
				dialog.ShowError(fmt.Errorf("center coordinates must be whole numbers"), a.window)
				return
			}
			c := model.Vec(x, y)
			if !c.InRange() {
				dialog.ShowError(fmt.Errorf("center %s: %w", c, model.ErrCoordinateRange), a.window)
				return
			}
			a.pushHistory("add candidate")
			a.project.Candidates = append(a.project.Candidates, c)
			a.refreshCandidates()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(350, 220))
	form.Show()
}

// ─── Compare Panel ─────────────────────────────────────────

func (a *App) buildComparePanel() fyne.CanvasObject {
	a.compareContainer = container.NewVBox(
		widget.NewLabel("Compare sweeps the grid once per scenario: the current settings, the other check modes, the other sweep order and every saved scenario."),
	)

	runBtn := widget.NewButtonWithIcon("Compare", theme.MediaPlayIcon(), func() {
		a.runCompare()
	})
	manageBtn := widget.NewButtonWithIcon("Scenarios...", theme.SettingsIcon(), func() {
		a.showScenarioManager()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Scenario Comparison", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			manageBtn,
			runBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.compareContainer),
	)
}

func (a *App) runCompare() {
	scenarios := engine.BuildDefaultScenarios(a.project.Settings)
	scenarios = append(scenarios, engine.ScenariosFromProfiles(a.scenarios)...)

	results, err := engine.CompareScenarios(context.Background(), scenarios)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.compareContainer.RemoveAll()
	header := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Scenario", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Accepted", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Rejected", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Rate", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.compareContainer.Add(header)
	a.compareContainer.Add(widget.NewSeparator())

	for _, r := range results {
		res := r
		a.compareContainer.Add(container.NewGridWithColumns(5,
			widget.NewLabel(res.Scenario.Name),
			widget.NewLabel(strconv.Itoa(res.Accepted)),
			widget.NewLabel(strconv.Itoa(res.Rejected)),
			widget.NewLabel(fmt.Sprintf("%.1f%%", res.AcceptanceRate)),
			widget.NewButton("Use", func() {
				a.useResult(res.Result, "use "+res.Scenario.Name)
				a.tabs.SelectIndex(0)
			}),
		))
	}
	a.compareContainer.Refresh()
}

// ─── Actions ───────────────────────────────────────────────

// pushHistory records the current placement and candidates before a change.
func (a *App) pushHistory(label string) {
	a.history.Push(MakeSnapshot(a.state.setups(), a.project.Candidates, label))
	a.refreshHistoryButtons()
}

func (a *App) currentSnapshot() Snapshot {
	return MakeSnapshot(a.state.setups(), a.project.Candidates, "current")
}

func (a *App) applySnapshot(s Snapshot) {
	a.state.restore(s.Setups)
	a.project.Candidates = s.Candidates
	if a.project.Candidates == nil {
		a.project.Candidates = []model.Vector2{}
	}
	a.refreshPlan()
	a.refreshCandidates()
}

func (a *App) undo() {
	if s, ok := a.history.Undo(a.currentSnapshot()); ok {
		a.applySnapshot(s)
		a.statusLabel.SetText("Undid " + s.Label)
	}
}

func (a *App) redo() {
	if s, ok := a.history.Redo(a.currentSnapshot()); ok {
		a.applySnapshot(s)
		a.statusLabel.SetText("Redid " + s.Label)
	}
}

// toggleSetup places or removes a setup at a tapped tile.
func (a *App) toggleSetup(tile model.Vector2) {
	before := a.currentSnapshot()
	outcome, other, err := a.state.toggle(tile)
	switch {
	case err != nil:
		a.statusLabel.SetText(err.Error())
		return
	case outcome == toggleBlocked:
		a.statusLabel.SetText(fmt.Sprintf("Setup at %s clashes with the setup at %s", tile, other))
		return
	case outcome == toggleRemoved:
		before.Label = "remove " + tile.String()
		a.statusLabel.SetText("Removed setup at " + tile.String())
	default:
		before.Label = "place " + tile.String()
		a.statusLabel.SetText("Placed setup at " + tile.String())
	}
	a.history.Push(before)
	a.refreshPlan()
}

func (a *App) runSweep() {
	result, err := engine.New(a.project.Settings).Sweep(context.Background())
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.useResult(result, "sweep")
}

func (a *App) runPlaceCandidates() {
	if len(a.project.Candidates) == 0 {
		dialog.ShowInformation("Nothing to place", "Add or import at least one candidate first.", a.window)
		return
	}
	result, err := engine.New(a.project.Settings).PlaceCandidates(context.Background(), a.project.Candidates)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	for _, c := range result.OutOfGrid {
		log.Printf("candidate %s does not fit the %dx%d grid", c, result.Settings.Grid.Width, result.Settings.Grid.Height)
	}
	a.useResult(result, "place candidates")
}

// useResult replaces the placement with a finished plan and adopts its settings.
func (a *App) useResult(result model.PlanResult, label string) {
	a.pushHistory(label)
	a.project.Settings = result.Settings
	a.state.load(result)
	a.grid.SetGrid(result.Settings.Grid)
	a.syncSettingsWidgets()
	a.refreshPlan()
	a.statusLabel.SetText(fmt.Sprintf("%s: %d accepted, %d rejected", label, len(result.Setups), len(result.Rejected)))
}

func (a *App) verifyPlacement() {
	if err := a.state.verify(); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	dialog.ShowInformation("Placement Valid",
		fmt.Sprintf("%d setups, no conflicts under %s.", len(a.state.setups()), a.state.settings.CheckMode), a.window)
}

func (a *App) newProject() {
	proj := model.NewProject()
	a.config.ApplyToSettings(&proj.Settings)
	a.setProject(proj)
}

// setProject swaps in proj and clears history.
func (a *App) setProject(proj model.Project) {
	a.project = proj
	a.history.Clear()
	a.state = newPlanState(proj.Settings)
	if proj.Result != nil {
		a.state.load(*proj.Result)
	}
	a.grid.SetGrid(proj.Settings.Grid)
	a.syncSettingsWidgets()
	a.refreshPlan()
	a.refreshCandidates()
}

func (a *App) saveProject() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.Save(path, a.project); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberProject(path)
	}, a.window)
	d.SetFileName(project.WithExtension(a.project.Name))
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openProjectPath(reader.URI().Path())
	}, a.window)
	d.Show()
}

func (a *App) openProjectPath(path string) {
	proj, err := project.Load(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.setProject(proj)
	a.rememberProject(path)
}

// rememberProject adds path to the recent list and rebuilds the menus.
func (a *App) rememberProject(path string) {
	a.config.AddRecentProject(path)
	if err := a.saveConfig(); err != nil {
		log.Printf("failed to save recent projects: %v", err)
	}
	a.SetupMenus()
}

func (a *App) exportResult(defaultName string, write func(string, model.PlanResult) error) {
	result := a.state.result()
	if len(result.Setups) == 0 {
		dialog.ShowInformation("No setups", "Sweep the grid or place setups before exporting.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := write(path, result); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importCandidates(load func(string) centerimporter.ImportResult) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		a.handleImportResult(load(reader.URI().Path()))
	}, a.window)
}

func (a *App) handleImportResult(result centerimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(errors.New(errorMsg), a.window)
	}

	for _, w := range result.Warnings {
		log.Printf("import warning: %s", w)
	}

	if len(result.Candidates) > 0 {
		a.pushHistory("import candidates")
		a.project.Candidates = append(a.project.Candidates, result.Candidates...)
		a.refreshCandidates()

		msg := fmt.Sprintf("Imported %d candidates.", len(result.Candidates))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		if len(result.Warnings) > 0 {
			msg += fmt.Sprintf("\n\n%d warnings were logged.", len(result.Warnings))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}
