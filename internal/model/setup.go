package model

import "github.com/google/uuid"

// SetupReach is how far the template extends from its center on each axis.
const SetupReach = 2

// LaserDrillSetup is the fixed nine-tile cross anchored on a drill:
//
//	        2
//	        |
//	1 ----  D  ---- 3
//	        |
//	        4
//
// Pre-chargers sit two tiles out and face the drill; laser links fill the
// gap between each pre-charger and the drill.
type LaserDrillSetup struct {
	ID          string        `json:"id"`
	Center      Vector2       `json:"center"`
	BoundingBox AxisAlignedBB `json:"bounding_box"`
	Drill       Tile          `json:"drill"`
	PreChargers [4]Tile       `json:"pre_chargers"`
	Lasers      [4]Tile       `json:"lasers"`
}

// NewLaserDrillSetup materializes the template around center. It never fails;
// callers check the center against the grid first, since tile offsets wrap
// near the limits of int.
func NewLaserDrillSetup(center Vector2) LaserDrillSetup {
	return LaserDrillSetup{
		ID:          uuid.New().String()[:8],
		Center:      center,
		BoundingBox: AxisAlignedBB{
			MinX: center.X - SetupReach,
			MinY: center.Y - SetupReach,
			MaxX: center.X + SetupReach,
			MaxY: center.Y + SetupReach,
		},
		Drill:       NewTile(center, TileDrill, DirectionNone),
		PreChargers: [4]Tile{
			NewTile(center.Sub(2, 0), TilePreCharger, DirectionEast),
			NewTile(center.Sub(0, 2), TilePreCharger, DirectionSouth),
			NewTile(center.Add(2, 0), TilePreCharger, DirectionWest),
			NewTile(center.Add(0, 2), TilePreCharger, DirectionNorth),
		},
		Lasers: [4]Tile{
			NewTile(center.Sub(1, 0), TileLaser, DirectionEast),
			NewTile(center.Sub(0, 1), TileLaser, DirectionSouth),
			NewTile(center.Add(1, 0), TileLaser, DirectionWest),
			NewTile(center.Add(0, 1), TileLaser, DirectionNorth),
		},
	}
}

// Tiles returns all nine tiles, drill first, then pre-chargers, then lasers.
func (s LaserDrillSetup) Tiles() []Tile {
	tiles := make([]Tile, 0, 9)
	tiles = append(tiles, s.Drill)
	tiles = append(tiles, s.PreChargers[:]...)
	tiles = append(tiles, s.Lasers[:]...)
	return tiles
}

// SolidTiles returns the drill and the four pre-chargers.
func (s LaserDrillSetup) SolidTiles() []Tile {
	tiles := make([]Tile, 0, 5)
	tiles = append(tiles, s.Drill)
	tiles = append(tiles, s.PreChargers[:]...)
	return tiles
}

// CanPlaceAbove reports whether other may share this setup's footprint on
// another layer. Only the column under the drill has to stay open, so the
// setups clash only when other's drill lands on one of this setup's solid
// tiles. Laser beams are allowed to cross.
func (s LaserDrillSetup) CanPlaceAbove(other LaserDrillSetup) bool {
	return !s.IntersectsArea(other) || !s.TileIntersectsSolidTile(other.Drill)
}

// IntersectsArea reports whether the two bounding boxes overlap.
func (s LaserDrillSetup) IntersectsArea(other LaserDrillSetup) bool {
	return s.BoundingBox.IntersectsAABB(other.BoundingBox)
}

// TileIntersectsSolidTile reports whether tile sits on this setup's drill or
// on one of its pre-chargers.
func (s LaserDrillSetup) TileIntersectsSolidTile(tile Tile) bool {
	if tile.IntersectsLocation(s.Drill) {
		return true
	}
	for _, pc := range s.PreChargers {
		if tile.IntersectsLocation(pc) {
			return true
		}
	}
	return false
}

// TileIntersectsAnyTile reports whether tile sits on any of the nine tiles.
func (s LaserDrillSetup) TileIntersectsAnyTile(tile Tile) bool {
	if s.TileIntersectsSolidTile(tile) {
		return true
	}
	for _, l := range s.Lasers {
		if tile.IntersectsLocation(l) {
			return true
		}
	}
	return false
}

// SharesSolidTile reports whether any solid tile of other coincides with a
// solid tile of this setup. The relation is symmetric.
func (s LaserDrillSetup) SharesSolidTile(other LaserDrillSetup) bool {
	if !s.IntersectsArea(other) {
		return false
	}
	for _, t := range other.SolidTiles() {
		if s.TileIntersectsSolidTile(t) {
			return true
		}
	}
	return false
}

// Occupies reports whether any of the nine tiles sits on location.
func (s LaserDrillSetup) Occupies(location Vector2) bool {
	if !s.BoundingBox.IntersectsPoint(location) {
		return false
	}
	for _, t := range s.Tiles() {
		if t.Location == location {
			return true
		}
	}
	return false
}
