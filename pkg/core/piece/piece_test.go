package piece

import (
	"testing"

	"github.com/matzehuels/stacktris/pkg/core/grid"
	"github.com/matzehuels/stacktris/pkg/errors"
)

func TestNewShapeRejectsInvalidGrids(t *testing.T) {
	tests := []struct {
		name string
		rows [][]grid.Cell
	}{
		{"nil", nil},
		{"empty row", [][]grid.Cell{{}}},
		{"ragged", [][]grid.Cell{{1, 1}, {1}}},
		{"mixed tags", [][]grid.Cell{{1, 2}}},
		{"border tag", [][]grid.Cell{{grid.Border}}},
		{"all empty", [][]grid.Cell{{0, 0}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShape(tt.rows)
			if !errors.Is(err, errors.ErrCodeInvalidShape) {
				t.Errorf("NewShape(%v) error = %v, want %s", tt.rows, err, errors.ErrCodeInvalidShape)
			}
		})
	}
}

func TestRotateCW(t *testing.T) {
	tests := []struct {
		name string
		in   [][]grid.Cell
		want [][]grid.Cell
	}{
		{
			name: "line",
			in:   [][]grid.Cell{{1, 1, 1, 1}},
			want: [][]grid.Cell{{1}, {1}, {1}, {1}},
		},
		{
			name: "J",
			in:   [][]grid.Cell{{3, 0, 0}, {3, 3, 3}},
			want: [][]grid.Cell{{3, 3}, {3, 0}, {3, 0}},
		},
		{
			name: "T",
			in:   [][]grid.Cell{{0, 5, 0}, {5, 5, 5}},
			want: [][]grid.Cell{{5, 0}, {5, 5}, {5, 0}},
		},
		{
			name: "non-tetromino",
			in:   [][]grid.Cell{{1, 1, 1, 1}, {0, 1, 1, 0}},
			want: [][]grid.Cell{{0, 1}, {1, 1}, {1, 1}, {0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustShape(tt.in).RotateCW()
			if want := MustShape(tt.want); !got.Equal(want) {
				t.Errorf("RotateCW() =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestRotateCCW(t *testing.T) {
	tests := []struct {
		name string
		in   [][]grid.Cell
		want [][]grid.Cell
	}{
		{
			name: "line",
			in:   [][]grid.Cell{{1, 1, 1, 1}},
			want: [][]grid.Cell{{1}, {1}, {1}, {1}},
		},
		{
			name: "J",
			in:   [][]grid.Cell{{3, 0, 0}, {3, 3, 3}},
			want: [][]grid.Cell{{0, 3}, {0, 3}, {3, 3}},
		},
		{
			name: "S",
			in:   [][]grid.Cell{{0, 6, 6}, {6, 6, 0}},
			want: [][]grid.Cell{{6, 0}, {6, 6}, {0, 6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustShape(tt.in).RotateCCW()
			if want := MustShape(tt.want); !got.Equal(want) {
				t.Errorf("RotateCCW() =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestRotateInvalidDirectionPanics(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, errors.ErrCodeInvalidDirection) {
			t.Errorf("recovered %v, want %s", err, errors.ErrCodeInvalidDirection)
		}
	}()
	I.Shape().Rotate(RotationDirection(0))
}

func TestCatalogFirstRowOccupiedInEveryRotation(t *testing.T) {
	for _, k := range Kinds() {
		s := k.Shape()
		for turn := 0; turn < 4; turn++ {
			p, err := New(s, grid.Point{})
			if err != nil {
				t.Fatalf("%s after %d turns: %v", k, turn, err)
			}
			if p.Color() != k.Tag() {
				t.Errorf("%s after %d turns: Color() = %d, want %d", k, turn, p.Color(), k.Tag())
			}
			s = s.RotateCW()
		}
	}
}

func TestCatalog(t *testing.T) {
	shapes := Standard()
	if len(shapes) != 7 {
		t.Fatalf("Standard() returned %d shapes, want 7", len(shapes))
	}
	for i, k := range Kinds() {
		if !shapes[i].Equal(k.Shape()) {
			t.Errorf("Standard()[%d] differs from %s.Shape()", i, k)
		}
		if got := len(k.Shape().Occupied()); got != 4 {
			t.Errorf("%s has %d cells, want 4", k, got)
		}
		if k.Shape().Tag() != grid.Cell(i+1) {
			t.Errorf("%s tag = %d, want %d", k, k.Shape().Tag(), i+1)
		}
	}
	if Kind(0).Valid() || Kind(8).Valid() {
		t.Error("kinds outside 1..7 should be invalid")
	}
}

func TestNewPieceColor(t *testing.T) {
	p, err := New(L.Shape(), grid.Point{X: 4, Y: 0})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if p.Color() != 4 {
		t.Errorf("Color() = %d, want 4", p.Color())
	}

	// A legal shape whose first row is empty cannot become a piece.
	bottomHeavy := MustShape([][]grid.Cell{{0, 0}, {2, 2}})
	if _, err := New(bottomHeavy, grid.Point{}); !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("New(bottom-heavy) error = %v, want %s", err, errors.ErrCodeInvalidShape)
	}
	if _, err := New(Shape{}, grid.Point{}); !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("New(zero shape) error = %v, want %s", err, errors.ErrCodeInvalidShape)
	}
}

func TestTranslation(t *testing.T) {
	p, _ := New(O.Shape(), grid.Point{X: 3, Y: 5})

	p.MoveLeft()
	if got := p.Origin(); got != (grid.Point{X: 2, Y: 5}) {
		t.Errorf("after MoveLeft origin = %v", got)
	}
	p.MoveRight()
	p.MoveRight()
	if got := p.Origin(); got != (grid.Point{X: 4, Y: 5}) {
		t.Errorf("after MoveRight x2 origin = %v", got)
	}
	p.MoveDown()
	if got := p.Origin(); got != (grid.Point{X: 4, Y: 6}) {
		t.Errorf("after MoveDown origin = %v", got)
	}

	p.Move(Left)
	p.Move(Down)
	if got := p.Origin(); got != (grid.Point{X: 3, Y: 7}) {
		t.Errorf("after Move(Left), Move(Down) origin = %v", got)
	}
}

func TestRotationKeepsOrigin(t *testing.T) {
	p, _ := New(T.Shape(), grid.Point{X: 5, Y: 2})
	candidate := p.RotatedCW()
	if !p.Shape().Equal(T.Shape()) {
		t.Fatal("RotatedCW() must not change the piece")
	}

	p.RotateCW()
	if !p.Shape().Equal(candidate) {
		t.Errorf("RotateCW() shape =\n%s\nwant\n%s", p.Shape(), candidate)
	}
	if p.Origin() != (grid.Point{X: 5, Y: 2}) {
		t.Errorf("rotation moved origin to %v", p.Origin())
	}
}

func TestCells(t *testing.T) {
	p, _ := New(S.Shape(), grid.Point{X: 2, Y: 1})
	want := []grid.Point{{X: 3, Y: 1}, {X: 4, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}}

	got := p.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p, _ := New(Z.Shape(), grid.Point{X: 1, Y: 1})
	c := p.Clone()
	c.MoveDown()
	c.RotateCW()

	if p.Origin() != (grid.Point{X: 1, Y: 1}) || !p.Shape().Equal(Z.Shape()) {
		t.Error("mutating a clone changed the original")
	}
}

func TestMoveInvalidDirectionPanics(t *testing.T) {
	p, _ := New(I.Shape(), grid.Point{})
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, errors.ErrCodeInvalidDirection) {
			t.Errorf("recovered %v, want %s", err, errors.ErrCodeInvalidDirection)
		}
	}()
	p.Move(Direction(42))
}
