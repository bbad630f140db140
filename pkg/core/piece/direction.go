package piece

import "github.com/matzehuels/stacktris/pkg/core/grid"

// Direction is a one-cell translation.
type Direction uint8

// Translation directions. The zero value is not a valid direction.
const (
	Left Direction = iota + 1
	Right
	Down
)

// Valid reports whether d is one of Left, Right, or Down.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// Delta returns the origin offset for one step in direction d.
// Invalid directions yield a zero offset.
func (d Direction) Delta() grid.Point {
	switch d {
	case Left:
		return grid.Point{X: -1}
	case Right:
		return grid.Point{X: 1}
	case Down:
		return grid.Point{Y: 1}
	}
	return grid.Point{}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return "invalid"
}

// RotationDirection is a quarter turn.
type RotationDirection uint8

// Rotation directions. The zero value is not a valid rotation.
const (
	CW RotationDirection = iota + 1
	CCW
)

// Valid reports whether r is CW or CCW.
func (r RotationDirection) Valid() bool {
	return r == CW || r == CCW
}

// Inverse returns the opposite rotation.
func (r RotationDirection) Inverse() RotationDirection {
	switch r {
	case CW:
		return CCW
	case CCW:
		return CW
	}
	return r
}

func (r RotationDirection) String() string {
	switch r {
	case CW:
		return "cw"
	case CCW:
		return "ccw"
	}
	return "invalid"
}
