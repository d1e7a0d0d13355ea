package widgets

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/piwi3910/DrillPlan/internal/model"
)

func testGrid() model.GridConfig {
	return model.GridConfig{Width: 16, Height: 16, TileSize: 32}
}

func TestTileAt(t *testing.T) {
	grid := testGrid()
	tests := []struct {
		name string
		pos  fyne.Position
		want model.Vector2
		ok   bool
	}{
		{"origin", fyne.NewPos(0, 0), model.Vec(0, 0), true},
		{"inside first tile", fyne.NewPos(31, 31), model.Vec(0, 0), true},
		{"gutter belongs left", fyne.NewPos(32, 0), model.Vec(0, 0), true},
		{"second tile", fyne.NewPos(33, 0), model.Vec(1, 0), true},
		{"center tile", fyne.NewPos(5*33+10, 7*33+10), model.Vec(5, 7), true},
		{"last tile", fyne.NewPos(15*33+1, 15*33+1), model.Vec(15, 15), true},
		{"past right edge", fyne.NewPos(16*33, 0), model.Vector2{}, false},
		{"past bottom edge", fyne.NewPos(0, 16*33), model.Vector2{}, false},
		{"negative", fyne.NewPos(-1, 5), model.Vector2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TileAt(tt.pos, grid)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("TileAt(%v) = %s, want %s", tt.pos, got, tt.want)
			}
		})
	}
}

func TestTileAt_RoundTripsTileCenter(t *testing.T) {
	grid := testGrid()
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			tile := model.Vec(x, y)
			got, ok := TileAt(TileCenter(tile, grid), grid)
			if !ok || got != tile {
				t.Fatalf("center of %s mapped to %s (ok=%v)", tile, got, ok)
			}
		}
	}
}

func TestLaserThickness(t *testing.T) {
	if got := LaserThickness(testGrid()); got != 4 {
		t.Errorf("expected 4px beams for 32px tiles, got %v", got)
	}
	if got := LaserThickness(model.GridConfig{Width: 5, Height: 5, TileSize: 4}); got != 1 {
		t.Errorf("expected 1px minimum, got %v", got)
	}
}

func TestArrowHead(t *testing.T) {
	c := fyne.NewPos(50, 50)

	if strokes := ArrowHead(c, model.DirectionNone, 5); strokes != nil {
		t.Errorf("expected no strokes for NONE, got %v", strokes)
	}

	tests := []struct {
		dir model.TileDirection
		tip fyne.Position
	}{
		{model.DirectionNorth, fyne.NewPos(50, 45)},
		{model.DirectionSouth, fyne.NewPos(50, 55)},
		{model.DirectionEast, fyne.NewPos(55, 50)},
		{model.DirectionWest, fyne.NewPos(45, 50)},
	}
	for _, tt := range tests {
		strokes := ArrowHead(c, tt.dir, 5)
		if len(strokes) != 2 {
			t.Fatalf("%s: expected 2 strokes, got %d", tt.dir, len(strokes))
		}
		for _, s := range strokes {
			if s[1] != tt.tip {
				t.Errorf("%s: stroke ends at %v, want %v", tt.dir, s[1], tt.tip)
			}
		}
	}
}

func TestGridCanvasTapped(t *testing.T) {
	gc := NewGridCanvas(testGrid(), false)

	var tapped []model.Vector2
	gc.OnTileTapped = func(tile model.Vector2) {
		tapped = append(tapped, tile)
	}

	gc.Tapped(&fyne.PointEvent{Position: fyne.NewPos(5*33+4, 5*33+4)})
	gc.Tapped(&fyne.PointEvent{Position: fyne.NewPos(9999, 4)})

	if len(tapped) != 1 || tapped[0] != model.Vec(5, 5) {
		t.Errorf("expected a single tap at (5, 5), got %v", tapped)
	}
}

func TestGridCanvasRejectedMarksAreRed(t *testing.T) {
	gc := NewGridCanvas(testGrid(), false)
	gc.rejected = []model.Rejection{{Center: model.Vec(7, 5), ConflictsWith: model.Vec(5, 5)}}

	r := newGridCanvasRenderer(gc)
	r.rebuild()

	var marks []*canvas.Circle
	for _, o := range r.Objects() {
		if c, ok := o.(*canvas.Circle); ok {
			marks = append(marks, c)
		}
	}
	if len(marks) != 1 {
		t.Fatalf("expected one rejection mark, got %d", len(marks))
	}

	stroke := color.NRGBAModel.Convert(marks[0].StrokeColor).(color.NRGBA)
	if stroke.R < 200 || stroke.G > 60 || stroke.B > 60 {
		t.Errorf("expected a red outline, got %v", marks[0].StrokeColor)
	}
	if want := TileOrigin(model.Vec(7, 5), testGrid()).Add(fyne.NewPos(8, 8)); marks[0].Position() != want {
		t.Errorf("mark at %v, want %v", marks[0].Position(), want)
	}
}
