package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

func TestDrillPlanTheme_FixedVariant(t *testing.T) {
	test.NewTempApp(t)

	dark := NewDrillPlanTheme("dark")
	want := theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark)
	if got := dark.Color(theme.ColorNameBackground, theme.VariantLight); got != want {
		t.Errorf("dark theme ignored its variant: got %v, want %v", got, want)
	}

	light := NewDrillPlanTheme("light")
	want = theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight)
	if got := light.Color(theme.ColorNameBackground, theme.VariantDark); got != want {
		t.Errorf("light theme ignored its variant: got %v, want %v", got, want)
	}
}

func TestDrillPlanTheme_SystemFollowsRequest(t *testing.T) {
	test.NewTempApp(t)

	sys := NewDrillPlanTheme("system")
	want := theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark)
	if got := sys.Color(theme.ColorNameBackground, theme.VariantDark); got != want {
		t.Errorf("system theme should follow the requested variant: got %v, want %v", got, want)
	}
}

func TestDrillPlanTheme_CompactSizes(t *testing.T) {
	test.NewTempApp(t)

	th := NewDrillPlanTheme("")
	if got := th.Size(theme.SizeNameText); got != 12 {
		t.Errorf("expected text size 12, got %v", got)
	}
	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("expected padding 3, got %v", got)
	}
	if got := th.Color(theme.ColorNamePrimary, theme.VariantLight); got != planPrimary {
		t.Errorf("expected plan primary color, got %v", got)
	}
}
