package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/DrillPlan/internal/model"
)

var (
	gridLineColor = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	rejectedColor = color.NRGBA{R: 220, G: 30, B: 30, A: 220}
	arrowColor    = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	beamColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
)

// GridCanvas renders the planning grid with its accepted setups. Tapping a
// tile reports the tile coordinate through OnTileTapped.
type GridCanvas struct {
	widget.BaseWidget
	grid       model.GridConfig
	setups     []model.LaserDrillSetup
	rejected   []model.Rejection
	showLasers bool

	OnTileTapped func(tile model.Vector2)
}

func NewGridCanvas(grid model.GridConfig, showLasers bool) *GridCanvas {
	gc := &GridCanvas{
		grid:       grid,
		showLasers: showLasers,
	}
	gc.ExtendBaseWidget(gc)
	return gc
}

// SetGrid changes the grid size and redraws.
func (gc *GridCanvas) SetGrid(grid model.GridConfig) {
	gc.grid = grid
	gc.Refresh()
}

// SetSetups replaces the drawn setups and rejected centers and redraws.
func (gc *GridCanvas) SetSetups(setups []model.LaserDrillSetup, rejected []model.Rejection) {
	gc.setups = setups
	gc.rejected = rejected
	gc.Refresh()
}

// SetShowLasers toggles drawing of laser link tiles. Beams are always drawn.
func (gc *GridCanvas) SetShowLasers(show bool) {
	gc.showLasers = show
	gc.Refresh()
}

// Tapped implements fyne.Tappable.
func (gc *GridCanvas) Tapped(ev *fyne.PointEvent) {
	if gc.OnTileTapped == nil {
		return
	}
	tile, ok := TileAt(ev.Position, gc.grid)
	if ok {
		gc.OnTileTapped(tile)
	}
}

func (gc *GridCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newGridCanvasRenderer(gc)
}

// pitch is the distance between tile origins: the tile plus a one pixel gutter.
func pitch(grid model.GridConfig) float32 {
	return float32(grid.TileSize + 1)
}

// TileOrigin returns the top-left pixel of a tile.
func TileOrigin(tile model.Vector2, grid model.GridConfig) fyne.Position {
	p := pitch(grid)
	return fyne.NewPos(float32(tile.X)*p, float32(tile.Y)*p)
}

// TileCenter returns the pixel center of a tile.
func TileCenter(tile model.Vector2, grid model.GridConfig) fyne.Position {
	half := float32(grid.TileSize) / 2
	return TileOrigin(tile, grid).Add(fyne.NewPos(half, half))
}

// TileAt maps a pixel position to the tile under it. Gutter pixels belong to
// the tile on their left or above. ok is false outside the grid.
func TileAt(pos fyne.Position, grid model.GridConfig) (model.Vector2, bool) {
	if pos.X < 0 || pos.Y < 0 || grid.TileSize <= 0 {
		return model.Vector2{}, false
	}
	p := pitch(grid)
	tile := model.Vec(int(pos.X/p), int(pos.Y/p))
	if tile.X >= grid.Width || tile.Y >= grid.Height {
		return model.Vector2{}, false
	}
	return tile, true
}

// LaserThickness is the beam width in pixels, an eighth of the tile size.
func LaserThickness(grid model.GridConfig) float32 {
	t := float32(grid.TileSize) / 8
	if t < 1 {
		return 1
	}
	return t
}

// ArrowHead returns the two strokes of a chevron centered at c pointing in
// dir. Screen Y grows downward, so NORTH points up. NONE yields no strokes.
func ArrowHead(c fyne.Position, dir model.TileDirection, size float32) [][2]fyne.Position {
	var tip, back, side fyne.Position
	switch dir {
	case model.DirectionNorth:
		tip, back, side = fyne.NewPos(0, -size), fyne.NewPos(0, size), fyne.NewPos(size, 0)
	case model.DirectionSouth:
		tip, back, side = fyne.NewPos(0, size), fyne.NewPos(0, -size), fyne.NewPos(size, 0)
	case model.DirectionEast:
		tip, back, side = fyne.NewPos(size, 0), fyne.NewPos(-size, 0), fyne.NewPos(0, size)
	case model.DirectionWest:
		tip, back, side = fyne.NewPos(-size, 0), fyne.NewPos(size, 0), fyne.NewPos(0, size)
	default:
		return nil
	}
	t := c.Add(tip)
	return [][2]fyne.Position{
		{c.Add(back).Add(side), t},
		{c.Add(back).Subtract(side), t},
	}
}

type gridCanvasRenderer struct {
	gc      *GridCanvas
	objects []fyne.CanvasObject
}

func newGridCanvasRenderer(gc *GridCanvas) *gridCanvasRenderer {
	r := &gridCanvasRenderer{gc: gc}
	r.rebuild()
	return r
}

func (r *gridCanvasRenderer) rebuild() {
	r.objects = nil

	grid := r.gc.grid
	if grid.Width <= 0 || grid.Height <= 0 || grid.TileSize <= 0 {
		return
	}
	size := grid.PixelSize()
	tile := float32(grid.TileSize)

	// Gutter color shows through as grid lines.
	bg := canvas.NewRectangle(gridLineColor)
	bg.Resize(fyne.NewSize(float32(size.X), float32(size.Y)))
	r.objects = append(r.objects, bg)

	empty := model.TileEmpty.Color()
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			cell := canvas.NewRectangle(empty)
			cell.Resize(fyne.NewSize(tile, tile))
			cell.Move(TileOrigin(model.Vec(x, y), grid))
			r.objects = append(r.objects, cell)
		}
	}

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = gridLineColor
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(float32(size.X), float32(size.Y)))
	r.objects = append(r.objects, border)

	// Beams first so tiles are drawn over them.
	thickness := LaserThickness(grid)
	for _, s := range r.gc.setups {
		from := TileCenter(s.Drill.Location, grid)
		for _, pc := range s.PreChargers {
			beam := canvas.NewLine(beamColor)
			beam.StrokeWidth = thickness
			beam.Position1 = from
			beam.Position2 = TileCenter(pc.Location, grid)
			r.objects = append(r.objects, beam)
		}
	}

	for _, s := range r.gc.setups {
		if r.gc.showLasers {
			for _, l := range s.Lasers {
				r.addTile(l, grid)
			}
		}
		for _, pc := range s.PreChargers {
			r.addTile(pc, grid)
		}
		r.addTile(s.Drill, grid)
	}

	for _, c := range r.gc.rejected {
		mark := canvas.NewCircle(color.Transparent)
		mark.StrokeColor = rejectedColor
		mark.StrokeWidth = 2
		inset := tile / 4
		mark.Resize(fyne.NewSize(tile-2*inset, tile-2*inset))
		mark.Move(TileOrigin(c.Center, grid).Add(fyne.NewPos(inset, inset)))
		r.objects = append(r.objects, mark)
	}
}

// addTile draws one tile with its facing arrow.
func (r *gridCanvasRenderer) addTile(t model.Tile, grid model.GridConfig) {
	tile := float32(grid.TileSize)
	rect := canvas.NewRectangle(t.Type.Color())
	rect.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	rect.StrokeWidth = 1
	rect.Resize(fyne.NewSize(tile, tile))
	rect.Move(TileOrigin(t.Location, grid))
	r.objects = append(r.objects, rect)

	for _, stroke := range ArrowHead(TileCenter(t.Location, grid), t.Direction, tile/5) {
		line := canvas.NewLine(arrowColor)
		line.StrokeWidth = 2
		line.Position1 = stroke[0]
		line.Position2 = stroke[1]
		r.objects = append(r.objects, line)
	}
}

func (r *gridCanvasRenderer) Layout(size fyne.Size)        {}
func (r *gridCanvasRenderer) Refresh()                     { r.rebuild(); canvas.Refresh(r.gc) }
func (r *gridCanvasRenderer) Destroy()                     {}
func (r *gridCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *gridCanvasRenderer) MinSize() fyne.Size {
	size := r.gc.grid.PixelSize()
	return fyne.NewSize(float32(size.X), float32(size.Y))
}

// RenderPlanSummary builds the text block shown beside the canvas.
func RenderPlanSummary(result *model.PlanResult) fyne.CanvasObject {
	if result == nil {
		return widget.NewLabel("No plan yet. Run a sweep, place candidates, or click the grid.")
	}

	counts := result.TileCounts()
	header := widget.NewLabel(fmt.Sprintf("%d setups, %d rejected, %.1f%% accepted",
		len(result.Setups), len(result.Rejected), result.AcceptanceRate()))
	header.TextStyle = fyne.TextStyle{Bold: true}

	items := []fyne.CanvasObject{
		header,
		widget.NewLabel(fmt.Sprintf("Check mode: %s | Sweep: %s",
			result.Settings.CheckMode, result.Settings.SweepOrder)),
		widget.NewLabel(fmt.Sprintf("Drills: %d | Pre-chargers: %d | Lasers: %d",
			counts[model.TileDrill], counts[model.TilePreCharger], counts[model.TileLaser])),
	}

	if len(result.OutOfGrid) > 0 {
		warning := widget.NewLabel(fmt.Sprintf("WARNING: %d candidates fall outside the grid.", len(result.OutOfGrid)))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	}

	return container.NewVBox(items...)
}
