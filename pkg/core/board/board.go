// Package board implements the fixed-size playfield grid.
//
// Cells are stored in a single row-major buffer indexed y*width + x. Row 0
// is the top of the playfield. The dimensions are fixed at construction;
// only [Board.Set] and [Board.ClearAndCompact] change cell contents.
package board

import (
	"strings"

	"github.com/matzehuels/stacktris/pkg/core/grid"
	"github.com/matzehuels/stacktris/pkg/errors"
)

// Board is a width×height grid of cells.
type Board struct {
	width, height int
	cells         []grid.Cell
}

// New creates an empty board.
func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions,
			"board dimensions must be positive, got %dx%d", width, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]grid.Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). The coordinate must be in bounds.
func (b *Board) At(x, y int) grid.Cell {
	return b.cells[y*b.width+x]
}

// IsEmpty reports whether the cell at (x, y) is empty.
// The coordinate must be in bounds.
func (b *Board) IsEmpty(x, y int) bool {
	return b.At(x, y) == grid.Empty
}

// IsRowFull reports whether row y has no empty cell.
func (b *Board) IsRowFull(y int) bool {
	for _, v := range b.row(y) {
		if v == grid.Empty {
			return false
		}
	}
	return true
}

// TopRowOccupied reports whether any cell of row 0 is filled.
// This is the game-over predicate.
func (b *Board) TopRowOccupied() bool {
	for _, v := range b.row(0) {
		if v != grid.Empty {
			return true
		}
	}
	return false
}

// Set writes c to (x, y). The coordinate must be in bounds.
func (b *Board) Set(x, y int, c grid.Cell) {
	b.cells[y*b.width+x] = c
}

// ClearAndCompact removes every full row and returns how many were removed.
//
// Rows are scanned from the bottom up. When row i is full it is zeroed,
// each row j from i down to 1 takes the contents of row j-1, row 0 is
// zeroed, and row i is examined again because the row above has fallen
// into it. Rows that only become full after a shift are therefore cleared
// in the same call.
func (b *Board) ClearAndCompact() int {
	cleared := 0
	for i := b.height - 1; i >= 0; {
		if !b.IsRowFull(i) {
			i--
			continue
		}
		clear(b.row(i))
		cleared++
		for j := i; j > 0; j-- {
			copy(b.row(j), b.row(j-1))
		}
		clear(b.row(0))
	}
	return cleared
}

// Rows returns a copy of the grid as one slice per row, top row first.
func (b *Board) Rows() [][]grid.Cell {
	out := make([][]grid.Cell, b.height)
	for y := range out {
		out[y] = append([]grid.Cell(nil), b.row(y)...)
	}
	return out
}

// Clone returns an independent copy of b.
func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  append([]grid.Cell(nil), b.cells...),
	}
}

// Equal reports whether b and o have the same dimensions and cells.
func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board one row per line, '.' for empty cells and the
// tag digit otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range b.row(y) {
			if v == grid.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(v))
			}
		}
	}
	return sb.String()
}

func (b *Board) row(y int) []grid.Cell {
	return b.cells[y*b.width : (y+1)*b.width]
}
