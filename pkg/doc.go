// Package pkg provides the core libraries for Stacktris, a falling-block
// puzzle game for the terminal.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. core - Game logic (cells, pieces, board, engine)
//  2. config - TOML and environment configuration
//  3. Support packages: errors, observability, buildinfo
//
// # Architecture
//
// Packages depend on each other leaf-first:
//
//	core/grid (Cell, Point)
//	     ↓
//	core/piece (Shape, Piece, catalog)    core/board (Board)
//	     ↘                                  ↙
//	              core/engine (Engine, Rules)
//	                     ↓
//	                  config
//
// The engine never reads input, sleeps, or draws. A driver (the play
// command in internal/cli) owns the clock and the terminal, calls engine
// operations, and renders engine.Snapshot values.
//
// # Quick Start
//
//	e, err := engine.New(11, 25, engine.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	for !e.CheckGameEnd() {
//	    e.Move(piece.Left)
//	    e.TryRotate(piece.CW)
//	    e.HardDrop()
//	}
//	fmt.Println(e.Score(), e.ClearedLines())
package pkg
