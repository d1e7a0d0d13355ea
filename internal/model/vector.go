package model

import "fmt"

// Vector2 is an integer grid coordinate. It is a plain value: two vectors
// with the same coordinates are equal and may be used as map keys.
type Vector2 struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MaxCoordinate bounds every center read from a file or typed by a user.
// Tile offsets around such a center stay far from integer overflow.
const MaxCoordinate = 1 << 30

// Vec returns the vector (x, y).
func Vec(x, y int) Vector2 {
	return Vector2{X: x, Y: y}
}

// Splat returns the vector (a, a).
func Splat(a int) Vector2 {
	return Vector2{X: a, Y: a}
}

// Add returns v translated by (dx, dy).
func (v Vector2) Add(dx, dy int) Vector2 {
	return Vector2{X: v.X + dx, Y: v.Y + dy}
}

// AddScalar returns v translated by a on both axes.
func (v Vector2) AddScalar(a int) Vector2 {
	return v.Add(a, a)
}

// Sub returns v translated by (-dx, -dy).
func (v Vector2) Sub(dx, dy int) Vector2 {
	return Vector2{X: v.X - dx, Y: v.Y - dy}
}

// SubScalar returns v translated by -a on both axes.
func (v Vector2) SubScalar(a int) Vector2 {
	return v.Sub(a, a)
}

// Plus returns the component-wise sum v + o.
func (v Vector2) Plus(o Vector2) Vector2 {
	return v.Add(o.X, o.Y)
}

// Minus returns the component-wise difference v - o.
func (v Vector2) Minus(o Vector2) Vector2 {
	return v.Sub(o.X, o.Y)
}

// Equal reports whether both coordinates match.
func (v Vector2) Equal(o Vector2) bool {
	return v == o
}

// Hash packs the coordinates into a single int (x + y<<15). Lookups in this
// module key maps by the vector itself; Hash is kept for external indexes
// that need a scalar key.
func (v Vector2) Hash() int {
	return v.X + (v.Y << 15)
}

// InRange reports whether both coordinates lie within ±MaxCoordinate.
func (v Vector2) InRange() bool {
	return inRange(v.X) && inRange(v.Y)
}

func inRange(n int) bool {
	return n >= -MaxCoordinate && n <= MaxCoordinate
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
