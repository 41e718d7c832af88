package interpreter

import "fmt"

// Vector is a point (or a direction) on the integer plane.
type Vector struct {
	X, Y int
}

func NewVector(x, y int) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// RotateLeft turns v 90 degrees anticlockwise: (x, y) -> (-y, x).
func (v Vector) RotateLeft() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// RotateRight turns v 90 degrees clockwise: (x, y) -> (y, -x).
func (v Vector) RotateRight() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

// IsUnit reports whether v is one of the four axis-aligned unit vectors.
func (v Vector) IsUnit() bool {
	return v.X*v.X+v.Y*v.Y == 1
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
