package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvertedBox is returned when a box would end up with min > max on an axis.
	ErrInvertedBox = errors.New("bounding box min exceeds max")
	// ErrNegativeScale is returned when a box is built from a negative half-extent.
	ErrNegativeScale = errors.New("bounding box scale is negative")
)

// AxisAlignedBB is an integer box with closed intervals [MinX, MaxX] and
// [MinY, MaxY]. Constructors and setters keep MinX <= MaxX and MinY <= MaxY.
type AxisAlignedBB struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// NewAABB builds a box from its exact corner coordinates.
func NewAABB(minX, minY, maxX, maxY int) (AxisAlignedBB, error) {
	box := AxisAlignedBB{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	if err := box.Validate(); err != nil {
		return AxisAlignedBB{}, err
	}
	return box, nil
}

// MustAABB is like NewAABB but panics on an inverted box. It is meant for
// fixed geometry and tests.
func MustAABB(minX, minY, maxX, maxY int) AxisAlignedBB {
	box, err := NewAABB(minX, minY, maxX, maxY)
	if err != nil {
		panic(err)
	}
	return box
}

// FromCenterScale builds a box spanning center-scale to center+scale, where
// scale is the distance from the center to the edges.
func FromCenterScale(center, scale Vector2) (AxisAlignedBB, error) {
	var box AxisAlignedBB
	if err := box.RepositionFromCenterAndScale(center, scale); err != nil {
		return AxisAlignedBB{}, err
	}
	return box, nil
}

// FromMinMax builds a box whose corners are exactly min and max.
func FromMinMax(min, max Vector2) (AxisAlignedBB, error) {
	return NewAABB(min.X, min.Y, max.X, max.Y)
}

// Validate reports ErrInvertedBox if the box violates min <= max.
func (b AxisAlignedBB) Validate() error {
	if b.MinX > b.MaxX || b.MinY > b.MaxY {
		return fmt.Errorf("%w: min (%d, %d), max (%d, %d)", ErrInvertedBox, b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
	return nil
}

func (b AxisAlignedBB) Min() Vector2 { return Vector2{X: b.MinX, Y: b.MinY} }
func (b AxisAlignedBB) Max() Vector2 { return Vector2{X: b.MaxX, Y: b.MaxY} }

// SizeX is the distance between the X extremes.
func (b AxisAlignedBB) SizeX() int { return b.MaxX - b.MinX }

// SizeY is the distance between the Y extremes.
func (b AxisAlignedBB) SizeY() int { return b.MaxY - b.MinY }

func (b AxisAlignedBB) Size() Vector2 { return Vector2{X: b.SizeX(), Y: b.SizeY()} }

// ScaleX is half the X size. Integer division truncates, so a box of odd
// size is not centered exactly: [0,5] has scale 2 and center 2.
func (b AxisAlignedBB) ScaleX() int { return b.SizeX() / 2 }

// ScaleY is half the Y size, truncated like ScaleX.
func (b AxisAlignedBB) ScaleY() int { return b.SizeY() / 2 }

func (b AxisAlignedBB) Scale() Vector2 { return Vector2{X: b.ScaleX(), Y: b.ScaleY()} }

// Center is Min + Scale.
func (b AxisAlignedBB) Center() Vector2 {
	return b.Min().Add(b.ScaleX(), b.ScaleY())
}

// SetMin moves the minimum corner. The box is left untouched if the new
// corner would invert it.
func (b *AxisAlignedBB) SetMin(x, y int) error {
	next := AxisAlignedBB{MinX: x, MinY: y, MaxX: b.MaxX, MaxY: b.MaxY}
	if err := next.Validate(); err != nil {
		return err
	}
	*b = next
	return nil
}

// SetMax moves the maximum corner, with the same guard as SetMin.
func (b *AxisAlignedBB) SetMax(x, y int) error {
	next := AxisAlignedBB{MinX: b.MinX, MinY: b.MinY, MaxX: x, MaxY: y}
	if err := next.Validate(); err != nil {
		return err
	}
	*b = next
	return nil
}

func (b *AxisAlignedBB) SetMinV(v Vector2) error { return b.SetMin(v.X, v.Y) }
func (b *AxisAlignedBB) SetMaxV(v Vector2) error { return b.SetMax(v.X, v.Y) }

// RepositionFromCenterAndScale sets min = center-scale and max = center+scale.
func (b *AxisAlignedBB) RepositionFromCenterAndScale(center, scale Vector2) error {
	if scale.X < 0 || scale.Y < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeScale, scale)
	}
	b.MinX = center.X - scale.X
	b.MinY = center.Y - scale.Y
	b.MaxX = center.X + scale.X
	b.MaxY = center.Y + scale.Y
	return nil
}

// RepositionFromCenter moves the box to center, keeping its current scale.
// An odd-sized box shrinks by one on that axis, since scale is truncated.
func (b *AxisAlignedBB) RepositionFromCenter(center Vector2) {
	scale := b.Scale()
	b.MinX = center.X - scale.X
	b.MinY = center.Y - scale.Y
	b.MaxX = center.X + scale.X
	b.MaxY = center.Y + scale.Y
}

// ResizeFromScale keeps the current center and applies a new scale.
func (b *AxisAlignedBB) ResizeFromScale(scale Vector2) error {
	return b.RepositionFromCenterAndScale(b.Center(), scale)
}

// IntersectAmountX returns how far this box reaches into box along X:
// positive when they overlap, negative otherwise. Nothing in the placement
// path uses it.
func (b AxisAlignedBB) IntersectAmountX(box AxisAlignedBB) int {
	center := box.MaxX - box.ScaleX()
	if b.MaxX < center {
		return b.MaxX - box.MinX
	}
	return box.MaxX - b.MaxX
}

// IntersectAmountY is IntersectAmountX for the Y axis.
func (b AxisAlignedBB) IntersectAmountY(box AxisAlignedBB) int {
	center := box.MaxY - box.ScaleY()
	if b.MaxY < center {
		return b.MaxY - box.MinY
	}
	return box.MaxY - b.MaxY
}

// IntersectsPointX reports MinX <= x <= MaxX.
func (b AxisAlignedBB) IntersectsPointX(x int) bool {
	return b.MinX <= x && x <= b.MaxX
}

// IntersectsPointY reports MinY <= y <= MaxY.
func (b AxisAlignedBB) IntersectsPointY(y int) bool {
	return b.MinY <= y && y <= b.MaxY
}

// IntersectsPoint reports whether v lies inside the box, edges included.
func (b AxisAlignedBB) IntersectsPoint(v Vector2) bool {
	return b.IntersectsPointX(v.X) && b.IntersectsPointY(v.Y)
}

// IntersectsRangeX reports whether [min, max] overlaps [MinX, MaxX].
// Touching ends count as overlapping.
func (b AxisAlignedBB) IntersectsRangeX(min, max int) bool {
	return min <= b.MaxX && max >= b.MinX
}

// IntersectsRangeY is IntersectsRangeX for the Y axis.
func (b AxisAlignedBB) IntersectsRangeY(min, max int) bool {
	return min <= b.MaxY && max >= b.MinY
}

func (b AxisAlignedBB) IntersectsAABBX(box AxisAlignedBB) bool {
	return b.IntersectsRangeX(box.MinX, box.MaxX)
}

func (b AxisAlignedBB) IntersectsAABBY(box AxisAlignedBB) bool {
	return b.IntersectsRangeY(box.MinY, box.MaxY)
}

// IntersectsAABB reports whether the boxes overlap on both axes.
func (b AxisAlignedBB) IntersectsAABB(box AxisAlignedBB) bool {
	return b.IntersectsAABBX(box) && b.IntersectsAABBY(box)
}

// Copy returns an independent copy of the box.
func (b AxisAlignedBB) Copy() AxisAlignedBB {
	return b
}

func (b AxisAlignedBB) String() string {
	return fmt.Sprintf("[%d..%d] x [%d..%d]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}
