package model

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strings"
)

// TileType identifies what occupies a grid tile.
type TileType int

const (
	TilePreCharger TileType = iota
	TileDrill
	TileLaser
	TileEmpty
)

var tileTypeNames = map[TileType]string{
	TilePreCharger: "PRE_CHARGER",
	TileDrill:      "DRILL",
	TileLaser:      "LASER",
	TileEmpty:      "EMPTY",
}

func (t TileType) String() string {
	if name, ok := tileTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TileType(%d)", int(t))
}

// Color returns the display color used by the canvas and exporters.
func (t TileType) Color() color.NRGBA {
	switch t {
	case TilePreCharger:
		return color.NRGBA{R: 20, G: 240, B: 60, A: 255}
	case TileDrill:
		return color.NRGBA{R: 255, A: 255}
	case TileLaser:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	default:
		return color.NRGBA{R: 64, G: 64, B: 64, A: 255}
	}
}

// IsSolid reports whether the tile blocks stacking. Laser links do not.
func (t TileType) IsSolid() bool {
	return t == TileDrill || t == TilePreCharger
}

// ParseTileType accepts the String form, case-insensitively.
func ParseTileType(s string) (TileType, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for t, name := range tileTypeNames {
		if name == want {
			return t, nil
		}
	}
	return TileEmpty, fmt.Errorf("unknown tile type %q", s)
}

func (t TileType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TileType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTileType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TileDirection is the facing of a tile. Only the renderers care about it.
type TileDirection int

const (
	DirectionNorth TileDirection = iota
	DirectionEast
	DirectionSouth
	DirectionWest
	DirectionNone
)

var directionNames = map[TileDirection]string{
	DirectionNorth: "NORTH",
	DirectionEast:  "EAST",
	DirectionSouth: "SOUTH",
	DirectionWest:  "WEST",
	DirectionNone:  "NONE",
}

func (d TileDirection) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("TileDirection(%d)", int(d))
}

// ParseTileDirection accepts the String form, case-insensitively.
func ParseTileDirection(s string) (TileDirection, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == want {
			return d, nil
		}
	}
	return DirectionNone, fmt.Errorf("unknown tile direction %q", s)
}

func (d TileDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *TileDirection) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTileDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Tile is a single placed unit of a setup.
type Tile struct {
	Location  Vector2       `json:"location"`
	Type      TileType      `json:"type"`
	Direction TileDirection `json:"direction"`
}

func NewTile(location Vector2, typ TileType, dir TileDirection) Tile {
	return Tile{Location: location, Type: typ, Direction: dir}
}

// IntersectsLocation reports whether both tiles sit on the same grid cell.
func (t Tile) IntersectsLocation(other Tile) bool {
	return t.Location == other.Location
}

// IsSolid reports whether the tile is a drill or pre-charger.
func (t Tile) IsSolid() bool {
	return t.Type.IsSolid()
}
