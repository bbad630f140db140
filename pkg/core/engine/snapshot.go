package engine

import (
	"time"

	"github.com/matzehuels/stacktris/pkg/core/grid"
)

// Snapshot is an immutable picture of the game for renderers.
type Snapshot struct {
	Width, Height int

	// Cells holds the locked board with the active piece drawn over it,
	// top row first. Active piece cells outside the board are omitted.
	Cells [][]grid.Cell

	// Active lists the board coordinates of the active piece.
	Active []grid.Point
	Color  grid.Cell

	Score        int
	ClearedLines int
	Level        int
	PiecesLocked int
	FallInterval time.Duration
	GameOver     bool
}

// Snapshot captures the current game for rendering.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Width:        e.board.Width(),
		Height:       e.board.Height(),
		Cells:        e.board.Rows(),
		Score:        e.score,
		ClearedLines: e.clearedLines,
		Level:        e.Level(),
		PiecesLocked: e.locked,
		FallInterval: e.FallInterval(),
		GameOver:     e.state == GameOver,
	}

	if e.active != nil && e.state != GameOver {
		s.Color = e.active.Color()
		s.Active = e.active.Cells()
		for _, c := range s.Active {
			if e.board.InBounds(c.X, c.Y) {
				s.Cells[c.Y][c.X] = s.Color
			}
		}
	}
	return s
}
