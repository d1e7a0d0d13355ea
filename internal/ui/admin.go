package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/DrillPlan/internal/model"
	"github.com/piwi3910/DrillPlan/internal/project"
)

// showSettingsDialog displays the application preferences editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.Itoa(*val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	modeNames := make([]string, len(model.CheckModes))
	for i, m := range model.CheckModes {
		modeNames[i] = string(m)
	}
	modeSelect := widget.NewSelect(modeNames, func(selected string) {
		cfg.DefaultCheckMode = model.CheckMode(selected)
	})
	modeSelect.SetSelected(string(cfg.DefaultCheckMode))

	orderNames := make([]string, len(model.SweepOrders))
	for i, o := range model.SweepOrders {
		orderNames[i] = string(o)
	}
	orderSelect := widget.NewSelect(orderNames, func(selected string) {
		cfg.DefaultSweepOrder = model.SweepOrder(selected)
	})
	orderSelect.SetSelected(string(cfg.DefaultSweepOrder))

	lasersCheck := widget.NewCheck("", func(b bool) { cfg.ShowLasers = b })
	lasersCheck.Checked = cfg.ShowLasers

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Show Laser Tiles", lasersCheck),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Grid Width (tiles)", intEntry(&cfg.DefaultGridWidth)),
		widget.NewFormItem("Default Grid Height (tiles)", intEntry(&cfg.DefaultGridHeight)),
		widget.NewFormItem("Default Tile Size (px)", intEntry(&cfg.DefaultTileSize)),
		widget.NewFormItem("Default Check Mode", modeSelect),
		widget.NewFormItem("Default Sweep Order", orderSelect),
	}

	d := dialog.NewForm("Preferences", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			a.config = cfg
			if th, ok := fyne.CurrentApp().Settings().Theme().(*DrillPlanTheme); ok {
				th.SetVariantName(cfg.Theme)
				fyne.CurrentApp().Settings().SetTheme(th)
			}
			a.grid.SetShowLasers(cfg.ShowLasers)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Defaults apply to new projects.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(480, 420))
	d.Show()
}

// showImportExportDialog displays the backup export and restore dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.templates, a.scenarios); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("drillplan-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your preferences, templates and saved scenarios.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := project.ImportAllData(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.templates = backup.Templates
					a.scenarios = backup.Scenarios
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					a.persistTemplates(a.window)
					a.persistScenarios(a.window)
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export preferences, plan templates and saved scenarios to a backup file,\nor restore them from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
