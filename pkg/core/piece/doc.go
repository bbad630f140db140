// Package piece models tetromino shapes and the falling piece.
//
// # Overview
//
// A [Shape] is an immutable rectangular grid of [grid.Cell] values where
// zero is empty and every non-zero cell carries the same color tag. A
// [Piece] pairs a shape with a board-relative origin (the board coordinate
// of the shape's top-left cell) and a color that is fixed when the piece is
// created.
//
// # Rotation
//
// Rotation is a pure matrix transform. For an R×C shape S the transposed
// C×R intermediate T has T[c][r] = S[r][c]:
//
//   - Clockwise: reverse each row of T.
//   - Counter-clockwise: reverse the row order of T.
//
// Rotating never moves the origin. [Shape.RotateCW] and [Piece.Rotated]
// return candidate shapes so a caller can test legality first;
// [Piece.Rotate] commits a rotation in place.
//
// # Translation
//
// [Piece.MoveLeft], [Piece.MoveRight], and [Piece.MoveDown] shift the origin
// by exactly one cell. Pieces never check legality; that belongs to the
// engine.
//
// # Catalog
//
// The seven canonical tetrominoes are available as [Kind] values and via
// [Standard]. Tags 1 through 7 identify I, O, J, L, T, S, and Z.
package piece
