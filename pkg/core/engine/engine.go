package engine

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/stacktris/pkg/core/board"
	"github.com/matzehuels/stacktris/pkg/core/grid"
	"github.com/matzehuels/stacktris/pkg/core/piece"
	"github.com/matzehuels/stacktris/pkg/errors"
	"github.com/matzehuels/stacktris/pkg/observability"
)

// State is the engine's position in the game lifecycle.
type State uint8

const (
	// Falling means an active piece is in play.
	Falling State = iota
	// GameOver means row 0 holds a locked cell. It is terminal.
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "falling"
}

// Outcome describes what a tick did.
type Outcome uint8

const (
	// Idle means nothing happened because the game is over.
	Idle Outcome = iota
	// Descended means the active piece moved down one row.
	Descended
	// Locked means the piece was written to the board, full rows were
	// cleared, and a new piece was spawned unless the game ended.
	Locked
)

func (o Outcome) String() string {
	switch o {
	case Descended:
		return "descended"
	case Locked:
		return "locked"
	}
	return "idle"
}

// TickResult reports the effect of TickDown or HardDrop.
type TickResult struct {
	Outcome      Outcome
	LinesCleared int  // rows removed by this lock
	Points       int  // score added by this lock
	Dropped      int  // rows fallen before locking (HardDrop only)
	GameOver     bool // the lock filled row 0
}

// Randomizer picks the next piece. *rand.Rand from math/rand/v2 satisfies it.
type Randomizer interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// BoardView is the read-only side of the board handed to renderers.
type BoardView interface {
	Width() int
	Height() int
	At(x, y int) grid.Cell
	InBounds(x, y int) bool
	IsEmpty(x, y int) bool
	Rows() [][]grid.Cell
	String() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules sets the scoring and speed tables. The default is DefaultRules.
func WithRules(r *Rules) Option {
	return func(e *Engine) {
		if r != nil {
			e.rules = r
		}
	}
}

// WithRandom sets the source used to pick pieces.
func WithRandom(r Randomizer) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed picks pieces from a deterministic PCG source.
func WithSeed(seed uint64) Option {
	return WithRandom(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithShapes restricts spawning to the given shapes. The default is the
// seven-piece catalog. It exists for drills and tests on small boards.
func WithShapes(shapes []piece.Shape) Option {
	return func(e *Engine) {
		if len(shapes) > 0 {
			e.shapes = append([]piece.Shape(nil), shapes...)
		}
	}
}

// WithHooks sets the event hooks. The default is observability.Engine().
func WithHooks(h observability.EngineHooks) Option {
	return func(e *Engine) {
		if h != nil {
			e.hooks = h
		}
	}
}

// Engine owns the board and the active piece.
//
// An Engine is not safe for concurrent use; a game session drives it from
// one goroutine.
type Engine struct {
	board  *board.Board
	active *piece.Piece

	rules  *Rules
	rng    Randomizer
	shapes []piece.Shape
	hooks  observability.EngineHooks

	clearedLines int
	score        int
	locked       int
	state        State
}

// New creates an engine with an empty width×height board and spawns the
// first piece.
//
// Every spawnable shape must fit on the board at the spawn origin
// (width/2-1, 0); otherwise New fails with INVALID_DIMENSIONS. A one-column
// board has no valid spawn origin.
func New(width, height int, opts ...Option) (*Engine, error) {
	b, err := board.New(width, height)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		board:  b,
		rules:  DefaultRules(),
		rng:    globalRandom{},
		shapes: piece.Standard(),
		hooks:  observability.Engine(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.rules.Validate(); err != nil {
		return nil, err
	}

	spawn := e.spawnOrigin()
	for _, s := range e.shapes {
		if _, err := piece.New(s, spawn); err != nil {
			return nil, err
		}
		if spawn.X < 0 || spawn.X+s.Cols() > width || s.Rows() > height {
			return nil, errors.New(errors.ErrCodeInvalidDimensions,
				"%dx%d board cannot hold a %dx%d shape spawned at %s",
				width, height, s.Cols(), s.Rows(), spawn)
		}
	}

	e.SpawnNewPiece()
	return e, nil
}

func (e *Engine) spawnOrigin() grid.Point {
	return grid.Point{X: e.board.Width()/2 - 1, Y: 0}
}

// SpawnNewPiece replaces the active piece with a uniformly chosen shape at
// the spawn origin. It performs no legality check and never fails. After
// game over it does nothing.
func (e *Engine) SpawnNewPiece() {
	if e.state == GameOver {
		return
	}
	s := e.shapes[e.rng.IntN(len(e.shapes))]
	p, err := piece.New(s, e.spawnOrigin())
	if err != nil {
		// Shapes were checked in New.
		panic(errors.Wrap(errors.ErrCodeInternal, err, "spawn"))
	}
	e.active = p
	o := p.Origin()
	e.hooks.OnSpawn(uint8(p.Color()), o.X, o.Y)
}

// fits reports whether every cell is on the board and empty.
func (e *Engine) fits(cells []grid.Point) bool {
	for _, c := range cells {
		if !e.board.InBounds(c.X, c.Y) || !e.board.IsEmpty(c.X, c.Y) {
			return false
		}
	}
	return true
}

// TryMove reports whether the active piece could move one cell in
// direction d. It never changes any state.
//
// It panics with an INVALID_DIRECTION error if d is not Left, Right, or
// Down.
func (e *Engine) TryMove(d piece.Direction) bool {
	if !d.Valid() {
		panic(errors.New(errors.ErrCodeInvalidDirection, "unknown direction %d", d))
	}
	delta := d.Delta()
	cells := e.active.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(delta)
	}
	return e.fits(cells)
}

// Move moves the active piece one cell in direction d if that is legal.
// It reports whether the piece moved. After game over it does nothing.
func (e *Engine) Move(d piece.Direction) bool {
	if !e.TryMove(d) || e.state == GameOver {
		return false
	}
	e.active.Move(d)
	return true
}

// TryRotate rotates the active piece a quarter turn in direction dir if
// the rotated shape fits at the unchanged origin. It reports whether the
// rotation was applied; a rejected rotation changes nothing. After game
// over it does nothing.
//
// It panics with an INVALID_DIRECTION error if dir is not CW or CCW.
func (e *Engine) TryRotate(dir piece.RotationDirection) bool {
	if !dir.Valid() {
		panic(errors.New(errors.ErrCodeInvalidDirection, "unknown rotation direction %d", dir))
	}
	if e.state == GameOver {
		return false
	}
	if !e.fits(e.active.CellsOf(e.active.Rotated(dir))) {
		return false
	}
	e.active.Rotate(dir)
	return true
}

// TickDown advances the game one drop step.
//
// If the active piece can descend it moves down one row. Otherwise it
// locks: its cells are written to the board, full rows are cleared, the
// line total and score are updated, and a new piece spawns. When the lock
// leaves a cell in row 0 the game ends instead of spawning.
func (e *Engine) TickDown() TickResult {
	if e.state == GameOver {
		return TickResult{Outcome: Idle, GameOver: true}
	}
	if e.TryMove(piece.Down) {
		e.active.MoveDown()
		return TickResult{Outcome: Descended}
	}
	return e.lock()
}

func (e *Engine) lock() TickResult {
	color := e.active.Color()
	for _, c := range e.active.Cells() {
		e.board.Set(c.X, c.Y, color)
	}

	lines := e.board.ClearAndCompact()
	e.clearedLines += lines
	points := e.rules.Points(lines) * (LevelFor(e.clearedLines) + 1)
	e.score += points
	e.locked++
	e.hooks.OnLock(uint8(color), lines, points)

	res := TickResult{Outcome: Locked, LinesCleared: lines, Points: points}
	if e.board.TopRowOccupied() {
		e.endGame()
		res.GameOver = true
		return res
	}
	e.SpawnNewPiece()
	return res
}

func (e *Engine) endGame() {
	e.state = GameOver
	e.hooks.OnGameOver(e.score, e.clearedLines)
}

// HardDrop ticks until the active piece locks and returns that lock's
// result with Dropped set to the number of rows fallen first.
func (e *Engine) HardDrop() TickResult {
	dropped := 0
	for {
		res := e.TickDown()
		if res.Outcome != Descended {
			res.Dropped = dropped
			return res
		}
		dropped++
	}
}

// CheckGameEnd reports whether row 0 holds a locked cell. Drivers call it
// once per frame before acting on input; once it returns true the session
// is over and every mutator becomes a no-op.
func (e *Engine) CheckGameEnd() bool {
	if e.state != GameOver && e.board.TopRowOccupied() {
		e.endGame()
	}
	return e.state == GameOver
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Board returns a read-only view of the locked cells.
func (e *Engine) Board() BoardView { return e.board }

// Piece returns a copy of the active piece.
func (e *Engine) Piece() *piece.Piece { return e.active.Clone() }

// ClearedLines returns the total number of rows cleared.
func (e *Engine) ClearedLines() int { return e.clearedLines }

// Score returns the total score.
func (e *Engine) Score() int { return e.score }

// Level returns ClearedLines / 10.
func (e *Engine) Level() int { return LevelFor(e.clearedLines) }

// PiecesLocked returns how many pieces have locked onto the board.
func (e *Engine) PiecesLocked() int { return e.locked }

// FallInterval returns the automatic drop interval for the current level.
func (e *Engine) FallInterval() time.Duration {
	return e.rules.FallInterval(e.Level())
}

// Rules returns the engine's scoring and speed tables.
func (e *Engine) Rules() *Rules { return e.rules }
