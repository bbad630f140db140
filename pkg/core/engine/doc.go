// Package engine implements the falling-block game state machine.
//
// # Overview
//
// An [Engine] owns a [board.Board] and exactly one active [piece.Piece].
// The driver (a terminal loop, a test, or the headless simulator) calls
// the mutators; the engine never reads input, renders, or looks at a
// clock. Every operation runs to completion synchronously.
//
// # Lifecycle
//
//	Spawning → Falling → Locking → Spawning → ...
//	                          ↓
//	                      GameOver
//
// [Engine.TickDown] moves the piece down one row or, when it cannot
// descend, locks it: its cells are written to the board, full rows are
// removed with [board.Board.ClearAndCompact], score and line totals are
// updated, and a new piece spawns at (width/2-1, 0). Spawning never fails;
// a spawn that lands on locked cells is caught by the next
// [Engine.CheckGameEnd], which reports whether row 0 holds any locked cell.
//
// # Legality
//
// [Engine.TryMove] and [Engine.TryRotate] test every cell of the candidate
// footprint against the board bounds and the locked cells. A rejected
// candidate changes nothing. Rotation keeps the origin; there are no wall
// kicks.
//
// # Scoring
//
// After a lock clears n rows:
//
//	clearedLines += n
//	score += LineScores[n] * (clearedLines/10 + 1)
//
// The multiplier uses the level after the new lines are counted.
package engine
