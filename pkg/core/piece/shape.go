package piece

import (
	"strings"

	"github.com/matzehuels/stacktris/pkg/core/grid"
	"github.com/matzehuels/stacktris/pkg/errors"
)

// Shape is an immutable rectangular grid of cells.
//
// Cells are stored row-major. The zero Shape has no cells and is only
// useful as a "not set" marker.
type Shape struct {
	rows, cols int
	cells      []grid.Cell
	tag        grid.Cell
}

// NewShape builds a Shape from a row-major grid.
//
// The grid must be non-empty and rectangular, and every non-zero cell must
// carry the same tag in 1..7. At least one cell must be occupied.
func NewShape(rows [][]grid.Cell) (Shape, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Shape{}, errors.New(errors.ErrCodeInvalidShape, "shape must have at least one row and column")
	}

	s := Shape{
		rows:  len(rows),
		cols:  len(rows[0]),
		cells: make([]grid.Cell, 0, len(rows)*len(rows[0])),
	}

	for r, row := range rows {
		if len(row) != s.cols {
			return Shape{}, errors.New(errors.ErrCodeInvalidShape,
				"shape row %d has %d columns, want %d", r, len(row), s.cols)
		}
		for c, v := range row {
			if v != grid.Empty {
				if !v.IsTag() {
					return Shape{}, errors.New(errors.ErrCodeInvalidShape,
						"cell (%d,%d) has tag %d, want 1..%d", c, r, v, grid.MaxTag)
				}
				if s.tag == grid.Empty {
					s.tag = v
				} else if v != s.tag {
					return Shape{}, errors.New(errors.ErrCodeInvalidShape,
						"shape mixes tags %d and %d", s.tag, v)
				}
			}
			s.cells = append(s.cells, v)
		}
	}

	if s.tag == grid.Empty {
		return Shape{}, errors.New(errors.ErrCodeInvalidShape, "shape has no occupied cells")
	}
	return s, nil
}

// MustShape is like NewShape but panics on an invalid grid.
// It is intended for fixed tables such as the piece catalog.
func MustShape(rows [][]grid.Cell) Shape {
	s, err := NewShape(rows)
	if err != nil {
		panic(err)
	}
	return s
}

// Rows returns the number of rows.
func (s Shape) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s Shape) Cols() int { return s.cols }

// Tag returns the shape's color tag.
func (s Shape) Tag() grid.Cell { return s.tag }

// At returns the cell at row r, column c.
func (s Shape) At(r, c int) grid.Cell {
	return s.cells[r*s.cols+c]
}

// Grid returns a copy of the shape as nested rows.
func (s Shape) Grid() [][]grid.Cell {
	out := make([][]grid.Cell, s.rows)
	for r := range out {
		out[r] = append([]grid.Cell(nil), s.cells[r*s.cols:(r+1)*s.cols]...)
	}
	return out
}

// Occupied returns the (column, row) offsets of every non-empty cell,
// scanning rows top to bottom and each row left to right.
func (s Shape) Occupied() []grid.Point {
	pts := make([]grid.Point, 0, 4)
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if s.cells[r*s.cols+c] != grid.Empty {
				pts = append(pts, grid.Point{X: c, Y: r})
			}
		}
	}
	return pts
}

// RotateCW returns the shape turned a quarter clockwise:
// transpose, then reverse each row.
func (s Shape) RotateCW() Shape {
	out := s.transposedFrame()
	for c := 0; c < s.cols; c++ {
		for k := 0; k < s.rows; k++ {
			// T[c][r] = S[r][c], row c reversed.
			out.cells[c*out.cols+k] = s.cells[(s.rows-1-k)*s.cols+c]
		}
	}
	return out
}

// RotateCCW returns the shape turned a quarter counter-clockwise:
// transpose, then reverse the row order.
func (s Shape) RotateCCW() Shape {
	out := s.transposedFrame()
	for c := 0; c < s.cols; c++ {
		for k := 0; k < s.rows; k++ {
			out.cells[c*out.cols+k] = s.cells[k*s.cols+(s.cols-1-c)]
		}
	}
	return out
}

// Rotate returns the shape turned a quarter in direction dir.
// It panics with an INVALID_DIRECTION error if dir is not CW or CCW.
func (s Shape) Rotate(dir RotationDirection) Shape {
	switch dir {
	case CW:
		return s.RotateCW()
	case CCW:
		return s.RotateCCW()
	}
	panic(errors.New(errors.ErrCodeInvalidDirection, "unknown rotation direction %d", dir))
}

func (s Shape) transposedFrame() Shape {
	return Shape{
		rows:  s.cols,
		cols:  s.rows,
		cells: make([]grid.Cell, len(s.cells)),
		tag:   s.tag,
	}
}

// Equal reports whether s and o have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if s.rows != o.rows || s.cols != o.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the shape one row per line, using '.' for empty cells
// and the tag digit otherwise.
func (s Shape) String() string {
	var b strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < s.cols; c++ {
			v := s.At(r, c)
			if v == grid.Empty {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + byte(v))
			}
		}
	}
	return b.String()
}
