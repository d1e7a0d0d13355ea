package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// planPrimary is the accent used for selection and primary buttons. It sits
// between the drill and laser palette so highlighted tiles stay readable.
var planPrimary = color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}

// DrillPlanTheme wraps the default Fyne theme with compact sizing and an
// optional fixed light or dark variant.
type DrillPlanTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	fixed   bool
}

// NewDrillPlanTheme builds a theme from the config value "light", "dark" or
// "system". Anything else follows the system variant.
func NewDrillPlanTheme(name string) *DrillPlanTheme {
	t := &DrillPlanTheme{base: theme.DefaultTheme()}
	t.SetVariantName(name)
	return t
}

// SetVariantName switches between light, dark and system variants.
func (t *DrillPlanTheme) SetVariantName(name string) {
	switch name {
	case "light":
		t.variant, t.fixed = theme.VariantLight, true
	case "dark":
		t.variant, t.fixed = theme.VariantDark, true
	default:
		t.fixed = false
	}
}

func (t *DrillPlanTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.fixed {
		variant = t.variant
	}
	if name == theme.ColorNamePrimary {
		return planPrimary
	}
	return t.base.Color(name, variant)
}

func (t *DrillPlanTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *DrillPlanTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing so a 16x16 grid and the side panel fit one screen.
func (t *DrillPlanTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
