package model

import (
	"errors"
	"fmt"
)

var (
	ErrGridTooSmall       = errors.New("grid is smaller than one setup")
	ErrInvalidTileSize    = errors.New("tile size must be positive")
	ErrUnknownCheckMode   = errors.New("unknown check mode")
	ErrUnknownSweepOrder  = errors.New("unknown sweep order")
	ErrCenterOutsideGrid  = errors.New("setup does not fit inside the grid")
	ErrNoCandidatesInGrid = errors.New("no candidate fits inside the grid")
	ErrCoordinateRange    = errors.New("coordinate out of range")
)

// CheckMode selects how the registry decides that two overlapping setups clash.
type CheckMode string

const (
	// CheckSymmetric rejects when either drill lands on a solid tile of the other.
	CheckSymmetric CheckMode = "symmetric"
	// CheckDrillOnly only tests the candidate's drill against accepted solid tiles.
	CheckDrillOnly CheckMode = "drill-only"
	// CheckSolid rejects when any solid tile of one lands on a solid tile of the other.
	CheckSolid CheckMode = "solid"
)

// CheckModes lists the modes in UI order.
var CheckModes = []CheckMode{CheckSymmetric, CheckDrillOnly, CheckSolid}

func (m CheckMode) Validate() error {
	for _, known := range CheckModes {
		if m == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCheckMode, string(m))
}

// SweepOrder selects which axis the grid sweep iterates in the outer loop.
type SweepOrder string

const (
	SweepXMajor SweepOrder = "x-major" // X outer, Y inner
	SweepYMajor SweepOrder = "y-major" // Y outer, X inner
)

var SweepOrders = []SweepOrder{SweepXMajor, SweepYMajor}

func (o SweepOrder) Validate() error {
	for _, known := range SweepOrders {
		if o == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownSweepOrder, string(o))
}

// GridConfig describes the planning grid in tiles and the on-screen tile size
// in pixels.
type GridConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tile_size"`
}

// Validate rejects grids that cannot hold a single 5x5 setup.
func (g GridConfig) Validate() error {
	min := 2*SetupReach + 1
	if g.Width < min || g.Height < min {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrGridTooSmall, g.Width, g.Height, min, min)
	}
	if g.TileSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTileSize, g.TileSize)
	}
	return nil
}

// Bounds returns the grid as a box of tile coordinates.
func (g GridConfig) Bounds() AxisAlignedBB {
	return AxisAlignedBB{MinX: 0, MinY: 0, MaxX: g.Width - 1, MaxY: g.Height - 1}
}

// Contains reports whether a setup's bounding box lies fully inside the grid.
func (g GridConfig) Contains(box AxisAlignedBB) bool {
	bounds := g.Bounds()
	return bounds.IntersectsPoint(box.Min()) && bounds.IntersectsPoint(box.Max())
}

// PixelSize returns the rendered size of the grid, including the one pixel
// gutter between tiles.
func (g GridConfig) PixelSize() Vector2 {
	return Vector2{X: g.Width*g.TileSize + g.Width, Y: g.Height*g.TileSize + g.Height}
}

// PlanSettings holds everything the planner needs.
type PlanSettings struct {
	Grid       GridConfig `json:"grid"`
	CheckMode  CheckMode  `json:"check_mode"`
	SweepOrder SweepOrder `json:"sweep_order"`
}

func DefaultPlanSettings() PlanSettings {
	return PlanSettings{
		Grid: GridConfig{
			Width:    16,
			Height:   16,
			TileSize: 32,
		},
		CheckMode:  CheckSymmetric,
		SweepOrder: SweepXMajor,
	}
}

// Validate checks the grid, the check mode and the sweep order.
func (s PlanSettings) Validate() error {
	if err := s.Grid.Validate(); err != nil {
		return err
	}
	if err := s.CheckMode.Validate(); err != nil {
		return err
	}
	return s.SweepOrder.Validate()
}

// Rejection records a candidate center and the accepted setup that blocked it.
type Rejection struct {
	Center        Vector2 `json:"center"`
	ConflictsWith Vector2 `json:"conflicts_with"`
}

// PlanResult is the outcome of one placement pass.
type PlanResult struct {
	Settings PlanSettings      `json:"settings"`
	Setups   []LaserDrillSetup `json:"setups"`
	Rejected []Rejection       `json:"rejected"`
	// OutOfGrid lists explicit candidates skipped because their box left the grid.
	OutOfGrid []Vector2 `json:"out_of_grid,omitempty"`
}

// Candidates returns how many centers were considered.
func (r PlanResult) Candidates() int {
	return len(r.Setups) + len(r.Rejected)
}

// AcceptanceRate returns the accepted share of candidates as a percentage.
func (r PlanResult) AcceptanceRate() float64 {
	total := r.Candidates()
	if total == 0 {
		return 0
	}
	return float64(len(r.Setups)) / float64(total) * 100.0
}

// TileCounts counts placed tiles by type. Tiles shared by crossing beams are
// counted once per setup.
func (r PlanResult) TileCounts() map[TileType]int {
	counts := make(map[TileType]int)
	for _, s := range r.Setups {
		for _, t := range s.Tiles() {
			counts[t.Type]++
		}
	}
	return counts
}

// FindByCenter returns the accepted setup anchored at center.
func (r PlanResult) FindByCenter(center Vector2) (LaserDrillSetup, bool) {
	for _, s := range r.Setups {
		if s.Center == center {
			return s, true
		}
	}
	return LaserDrillSetup{}, false
}

// Project ties everything together for save/load.
type Project struct {
	Name       string       `json:"name"`
	Settings   PlanSettings `json:"settings"`
	Candidates []Vector2    `json:"candidates"`
	Result     *PlanResult  `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:       "Untitled",
		Settings:   DefaultPlanSettings(),
		Candidates: []Vector2{},
	}
}
