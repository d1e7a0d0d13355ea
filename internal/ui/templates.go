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

// showSaveTemplateDialog stores the current settings and candidates as a
// reusable template.
func (a *App) showSaveTemplateDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(a.project.Name)
	descEntry := widget.NewMultiLineEntry()
	descEntry.SetPlaceHolder("Optional description")

	form := dialog.NewForm("Save as Template", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				dialog.ShowError(fmt.Errorf("template name is required"), a.window)
				return
			}
			a.templates.Add(model.NewPlanTemplate(name, descEntry.Text, a.project.Settings, a.project.Candidates))
			a.persistTemplates(a.window)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(420, 300))
	form.Show()
}

// showTemplateManager lists saved templates with actions to start a new
// project from one or delete it.
func (a *App) showTemplateManager() {
	list := container.NewVBox()
	var d dialog.Dialog
	var refreshList func()

	refreshList = func() {
		list.RemoveAll()

		if len(a.templates.Templates) == 0 {
			list.Add(widget.NewLabel("No templates saved. Use Library > Save as Template to add one."))
			return
		}

		header := container.NewGridWithColumns(6,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Grid", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Mode", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Candidates", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		)
		list.Add(header)
		list.Add(widget.NewSeparator())

		for i := range a.templates.Templates {
			t := a.templates.Templates[i]
			row := container.NewGridWithColumns(6,
				widget.NewLabel(t.Name),
				widget.NewLabel(fmt.Sprintf("%dx%d", t.Settings.Grid.Width, t.Settings.Grid.Height)),
				widget.NewLabel(string(t.Settings.CheckMode)),
				widget.NewLabel(fmt.Sprintf("%d", len(t.Candidates))),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.setProject(t.ToProject(t.Name))
					if d != nil {
						d.Hide()
					}
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.templates.Remove(t.ID)
					a.persistTemplates(a.window)
					refreshList()
				}),
			)
			list.Add(row)
		}
	}

	refreshList()

	saveBtn := widget.NewButtonWithIcon("Save Current...", theme.ContentAddIcon(), func() {
		a.showSaveTemplateDialog()
	})
	toolbar := container.NewHBox(saveBtn, layout.NewSpacer())

	content := container.NewBorder(
		toolbar,
		nil, nil, nil,
		container.NewVScroll(list),
	)

	d = dialog.NewCustom("Plan Templates", "Close", content, a.window)
	d.Resize(fyne.NewSize(700, 450))
	d.Show()
}

// persistTemplates saves the template store to disk.
func (a *App) persistTemplates(w fyne.Window) {
	if err := project.SaveDefaultTemplates(a.templates); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save templates: %w", err), w)
	}
}
