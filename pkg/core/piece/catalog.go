package piece

import "github.com/matzehuels/stacktris/pkg/core/grid"

// Kind identifies one of the seven canonical tetrominoes.
// Each kind's value is also its color tag.
type Kind grid.Cell

// The seven tetrominoes, in catalog order.
const (
	I Kind = iota + 1
	O
	J
	L
	T
	S
	Z
)

// catalog holds the unrotated shape of every kind, indexed by Kind-1.
var catalog = [...]Shape{
	MustShape([][]grid.Cell{
		{1, 1, 1, 1},
	}),
	MustShape([][]grid.Cell{
		{2, 2},
		{2, 2},
	}),
	MustShape([][]grid.Cell{
		{3, 0, 0},
		{3, 3, 3},
	}),
	MustShape([][]grid.Cell{
		{0, 0, 4},
		{4, 4, 4},
	}),
	MustShape([][]grid.Cell{
		{0, 5, 0},
		{5, 5, 5},
	}),
	MustShape([][]grid.Cell{
		{0, 6, 6},
		{6, 6, 0},
	}),
	MustShape([][]grid.Cell{
		{7, 7, 0},
		{0, 7, 7},
	}),
}

// Kinds returns all seven kinds in catalog order.
func Kinds() []Kind {
	return []Kind{I, O, J, L, T, S, Z}
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= I && k <= Z
}

// Shape returns the unrotated shape of k.
func (k Kind) Shape() Shape {
	return catalog[k-1]
}

// Tag returns the color tag of k.
func (k Kind) Tag() grid.Cell {
	return grid.Cell(k)
}

func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return string("IOJLTSZ"[k-1])
}

// Standard returns the unrotated shapes of all seven kinds in catalog order.
// The returned slice is a fresh copy; the shapes themselves are immutable.
func Standard() []Shape {
	out := make([]Shape, len(catalog))
	copy(out, catalog[:])
	return out
}
