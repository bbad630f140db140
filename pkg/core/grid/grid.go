// Package grid defines the cell and coordinate types shared by pieces,
// boards, and the engine.
//
// Coordinates use the screen convention: (0, 0) is the top-left cell, X
// grows to the right and Y grows downward.
package grid

import "fmt"

// Cell is the value stored in one grid square.
// Zero is empty; 1 through 7 identify a tetromino color.
type Cell uint8

const (
	// Empty marks an unoccupied cell.
	Empty Cell = 0

	// MaxTag is the largest color tag a piece may carry.
	MaxTag Cell = 7

	// Border is reserved for renderers drawing the playfield frame.
	// It never appears on a logical board.
	Border Cell = 8
)

// IsTag reports whether c is a piece color (1..7).
func (c Cell) IsTag() bool {
	return c >= 1 && c <= MaxTag
}

// Point is a board coordinate or a (column, row) offset inside a shape.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
