package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newToolbarButton creates a plan toolbar button whose tooltip shows on hover.
// An empty label gives an icon-only button. Tooltips render only inside
// content wrapped by fynetooltip.AddWindowToolTipLayer.
func newToolbarButton(icon fyne.Resource, label, tooltip string, importance widget.Importance, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon(label, icon, tapped)
	btn.Importance = importance
	btn.SetToolTip(tooltip)
	return btn
}
