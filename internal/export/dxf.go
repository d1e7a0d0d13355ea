package export

import (
	"fmt"

	"github.com/piwi3910/DrillPlan/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// DXF layer names.
const (
	LayerGrid       = "GRID"
	LayerDrill      = "DRILL"
	LayerPreCharger = "PRECHARGER"
	LayerLaser      = "LASER"
	LayerBeam       = "BEAM"
)

var dxfLayers = []struct {
	name  string
	color color.ColorNumber
}{
	{LayerGrid, color.White},
	{LayerDrill, color.Red},
	{LayerPreCharger, color.Green},
	{LayerLaser, color.Cyan},
	{LayerBeam, color.Yellow},
}

// tileLayer maps a tile type to its DXF layer.
func tileLayer(t model.TileType) string {
	switch t {
	case model.TileDrill:
		return LayerDrill
	case model.TilePreCharger:
		return LayerPreCharger
	default:
		return LayerLaser
	}
}

// ExportDXF writes the layout as a DXF drawing in tile units, one unit per
// tile. Y is flipped so the drawing reads like the on-screen grid. Every
// tile is a closed square on its type's layer; each beam is a line from a
// pre-charger center to the drill center.
func ExportDXF(path string, result model.PlanResult) error {
	if len(result.Setups) == 0 {
		return fmt.Errorf("no setups to export")
	}

	grid := result.Settings.Grid
	if err := grid.Validate(); err != nil {
		return fmt.Errorf("cannot draw grid: %w", err)
	}

	d := dxf.NewDrawing()
	for _, l := range dxfLayers {
		if _, err := d.AddLayer(l.name, l.color, table.LT_CONTINUOUS, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	flip := func(y float64) float64 { return float64(grid.Height) - y }

	if err := d.ChangeLayer(LayerGrid); err != nil {
		return err
	}
	if err := square(d, 0, flip(float64(grid.Height)), float64(grid.Width), float64(grid.Height)); err != nil {
		return fmt.Errorf("failed to draw grid outline: %w", err)
	}

	for _, s := range result.Setups {
		for _, t := range s.Tiles() {
			if err := d.ChangeLayer(tileLayer(t.Type)); err != nil {
				return err
			}
			x := float64(t.Location.X)
			y := flip(float64(t.Location.Y + 1))
			if err := square(d, x, y, 1, 1); err != nil {
				return fmt.Errorf("failed to draw tile %s of setup %s: %w", t.Location, s.Center, err)
			}
		}

		if err := d.ChangeLayer(LayerBeam); err != nil {
			return err
		}
		cx, cy := float64(s.Center.X)+0.5, flip(float64(s.Center.Y)+0.5)
		for _, pc := range s.PreChargers {
			px, py := float64(pc.Location.X)+0.5, flip(float64(pc.Location.Y)+0.5)
			if _, err := d.Line(px, py, 0, cx, cy, 0); err != nil {
				return fmt.Errorf("failed to draw beam of setup %s: %w", s.Center, err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}

// square draws an axis-aligned rectangle from four lines on the current layer.
func square(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return err
		}
	}
	return nil
}
