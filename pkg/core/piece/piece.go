package piece

import (
	"github.com/matzehuels/stacktris/pkg/core/grid"
	"github.com/matzehuels/stacktris/pkg/errors"
)

// Piece is the falling tetromino: a shape placed at a board origin.
//
// The origin is the board coordinate of the shape's top-left cell. The
// color is read from the first non-zero cell of the shape's first row when
// the piece is created and never changes afterwards.
type Piece struct {
	shape  Shape
	origin grid.Point
	color  grid.Cell
}

// New creates a piece with the given shape at origin.
// It fails with INVALID_SHAPE when the shape's first row is empty.
func New(shape Shape, origin grid.Point) (*Piece, error) {
	if shape.rows == 0 {
		return nil, errors.New(errors.ErrCodeInvalidShape, "piece needs a shape")
	}

	var color grid.Cell
	for c := 0; c < shape.cols; c++ {
		if v := shape.At(0, c); v != grid.Empty {
			color = v
			break
		}
	}
	if color == grid.Empty {
		return nil, errors.New(errors.ErrCodeInvalidShape, "first row of shape is empty:\n%s", shape)
	}

	return &Piece{shape: shape, origin: origin, color: color}, nil
}

// Shape returns the piece's current shape.
func (p *Piece) Shape() Shape { return p.shape }

// Origin returns the board coordinate of the shape's top-left cell.
func (p *Piece) Origin() grid.Point { return p.origin }

// Color returns the tag written to the board when the piece locks.
func (p *Piece) Color() grid.Cell { return p.color }

// Cells returns the board coordinates of every occupied cell of the
// current shape.
func (p *Piece) Cells() []grid.Point {
	return p.CellsOf(p.shape)
}

// CellsOf returns the board coordinates s would occupy at the piece's
// current origin.
func (p *Piece) CellsOf(s Shape) []grid.Point {
	pts := s.Occupied()
	for i := range pts {
		pts[i] = pts[i].Add(p.origin)
	}
	return pts
}

// RotatedCW returns the clockwise candidate shape without changing p.
func (p *Piece) RotatedCW() Shape { return p.shape.RotateCW() }

// RotatedCCW returns the counter-clockwise candidate shape without changing p.
func (p *Piece) RotatedCCW() Shape { return p.shape.RotateCCW() }

// Rotated returns the candidate shape for dir without changing p.
func (p *Piece) Rotated(dir RotationDirection) Shape { return p.shape.Rotate(dir) }

// RotateCW replaces the shape with its clockwise rotation.
func (p *Piece) RotateCW() { p.shape = p.shape.RotateCW() }

// RotateCCW replaces the shape with its counter-clockwise rotation.
func (p *Piece) RotateCCW() { p.shape = p.shape.RotateCCW() }

// Rotate replaces the shape with its rotation in direction dir.
func (p *Piece) Rotate(dir RotationDirection) { p.shape = p.shape.Rotate(dir) }

// MoveLeft shifts the origin one column left.
func (p *Piece) MoveLeft() { p.origin.X-- }

// MoveRight shifts the origin one column right.
func (p *Piece) MoveRight() { p.origin.X++ }

// MoveDown shifts the origin one row down.
func (p *Piece) MoveDown() { p.origin.Y++ }

// Move shifts the origin one cell in direction d.
// It panics with an INVALID_DIRECTION error if d is not a valid direction.
func (p *Piece) Move(d Direction) {
	if !d.Valid() {
		panic(errors.New(errors.ErrCodeInvalidDirection, "unknown direction %d", d))
	}
	p.origin = p.origin.Add(d.Delta())
}

// Clone returns an independent copy of p.
// Shapes are immutable, so the copy shares the shape's cell storage.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}
