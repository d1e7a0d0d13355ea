package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/DrillPlan/internal/model"
	"github.com/piwi3910/DrillPlan/internal/project"
)

// showScenarioManager opens the window where users view, add, delete, import
// and export the saved scenarios that Compare runs next to the defaults.
func (a *App) showScenarioManager() {
	w := fyne.CurrentApp().NewWindow("Scenario Manager")
	w.Resize(fyne.NewSize(650, 420))

	selectedIdx := -1
	detail := container.NewVBox(widget.NewLabel("Select a scenario to view details."))

	list := widget.NewList(
		func() int {
			return len(a.scenarios)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.DocumentIcon()),
				widget.NewLabel("Scenario Name"),
				layout.NewSpacer(),
				widget.NewLabel("symmetric"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			box := obj.(*fyne.Container)
			p := a.scenarios[id]
			box.Objects[1].(*widget.Label).SetText(p.Name)
			box.Objects[3].(*widget.Label).SetText(string(p.Settings.CheckMode))
		},
	)

	resetDetail := func() {
		selectedIdx = -1
		list.UnselectAll()
		list.Refresh()
		detail.RemoveAll()
		detail.Add(widget.NewLabel("Select a scenario to view details."))
		detail.Refresh()
	}

	list.OnSelected = func(id widget.ListItemID) {
		selectedIdx = id
		s := a.scenarios[id].Settings
		detail.RemoveAll()
		detail.Add(widget.NewLabelWithStyle(a.scenarios[id].Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		detail.Add(container.NewGridWithColumns(2,
			widget.NewLabel("Grid"), widget.NewLabel(fmt.Sprintf("%d x %d tiles", s.Grid.Width, s.Grid.Height)),
			widget.NewLabel("Check Mode"), widget.NewLabel(string(s.CheckMode)),
			widget.NewLabel("Sweep Order"), widget.NewLabel(string(s.SweepOrder)),
		))
		detail.Refresh()
	}

	newBtn := widget.NewButtonWithIcon("From Current", theme.ContentAddIcon(), func() {
		a.showNewScenarioDialog(w, func() {
			list.Refresh()
		})
	})

	importBtn := widget.NewButtonWithIcon("Import", theme.FolderOpenIcon(), func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()

			profile, err := project.ImportScenario(reader.URI().Path())
			if err != nil {
				dialog.ShowError(fmt.Errorf("failed to import scenario: %w", err), w)
				return
			}
			a.scenarios = append(a.scenarios, profile)
			a.persistScenarios(w)
			list.Refresh()
			dialog.ShowInformation("Import Complete",
				fmt.Sprintf("Scenario %q imported successfully.", profile.Name), w)
		}, w)
	})

	exportBtn := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		if selectedIdx < 0 || selectedIdx >= len(a.scenarios) {
			dialog.ShowInformation("No Selection", "Select a scenario to export.", w)
			return
		}
		p := a.scenarios[selectedIdx]
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			if err := project.ExportScenario(writer.URI().Path(), p); err != nil {
				dialog.ShowError(fmt.Errorf("failed to export scenario: %w", err), w)
			}
		}, w)
		d.SetFileName(strings.ReplaceAll(strings.ToLower(p.Name), " ", "_") + "_scenario.json")
		d.Show()
	})

	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		if selectedIdx < 0 || selectedIdx >= len(a.scenarios) {
			dialog.ShowInformation("No Selection", "Select a scenario to delete.", w)
			return
		}
		idx := selectedIdx
		dialog.ShowConfirm("Delete Scenario",
			fmt.Sprintf("Delete scenario %q?", a.scenarios[idx].Name),
			func(ok bool) {
				if !ok {
					return
				}
				a.scenarios = append(a.scenarios[:idx], a.scenarios[idx+1:]...)
				a.persistScenarios(w)
				resetDetail()
			}, w)
	})

	toolbar := container.NewHBox(newBtn, layout.NewSpacer(), importBtn, exportBtn, deleteBtn)
	split := container.NewHSplit(list, container.NewVScroll(detail))
	split.Offset = 0.4

	w.SetContent(container.NewBorder(toolbar, nil, nil, nil, split))
	w.Show()
}

// showNewScenarioDialog saves the current plan settings under a new name.
func (a *App) showNewScenarioDialog(w fyne.Window, onCreated func()) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(fmt.Sprintf("Scenario %d", len(a.scenarios)+1))

	form := dialog.NewForm("New Scenario", "Create", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			profile := model.ScenarioProfile{
				Name:     strings.TrimSpace(nameEntry.Text),
				Settings: a.project.Settings,
			}
			if err := profile.Validate(); err != nil {
				dialog.ShowError(err, w)
				return
			}
			a.scenarios = append(a.scenarios, profile)
			a.persistScenarios(w)
			onCreated()
		},
		w,
	)
	form.Resize(fyne.NewSize(380, 180))
	form.Show()
}

// persistScenarios saves the scenario profiles to disk.
func (a *App) persistScenarios(w fyne.Window) {
	if err := project.SaveDefaultScenarios(a.scenarios); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save scenarios: %w", err), w)
	}
}
