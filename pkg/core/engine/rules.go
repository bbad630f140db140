package engine

import (
	"time"

	"github.com/matzehuels/stacktris/pkg/errors"
)

// LinesPerLevel is the number of cleared lines that advance one level.
const LinesPerLevel = 10

// Rules holds the scoring and speed tables.
//
// A Rules value is built once at startup and shared by pointer; nothing in
// this package mutates it.
type Rules struct {
	// LineScores maps lines cleared by one lock to base points.
	// Index 0 must be zero.
	LineScores []int

	// LevelSpeeds maps a level to the interval between automatic drops.
	// Levels past the end of the table keep the last interval.
	LevelSpeeds []time.Duration
}

// DefaultRules returns the classic tables: 0/40/100/300/1200 points and
// fall intervals of 500, 300, 250, 200, 150, and 100 milliseconds for
// levels 0 through 5.
func DefaultRules() *Rules {
	return &Rules{
		LineScores: []int{0, 40, 100, 300, 1200},
		LevelSpeeds: []time.Duration{
			500 * time.Millisecond,
			300 * time.Millisecond,
			250 * time.Millisecond,
			200 * time.Millisecond,
			150 * time.Millisecond,
			100 * time.Millisecond,
		},
	}
}

// Validate checks both tables.
func (r *Rules) Validate() error {
	if err := errors.ValidateLineScores(r.LineScores); err != nil {
		return err
	}
	return errors.ValidateLevelSpeeds(r.LevelSpeeds)
}

// Points returns the base points for clearing lines rows at once.
// Counts past the table score as its last entry.
func (r *Rules) Points(lines int) int {
	if lines <= 0 {
		return 0
	}
	if lines >= len(r.LineScores) {
		return r.LineScores[len(r.LineScores)-1]
	}
	return r.LineScores[lines]
}

// FallInterval returns the automatic drop interval for level.
func (r *Rules) FallInterval(level int) time.Duration {
	if level < 0 {
		level = 0
	}
	if level >= len(r.LevelSpeeds) {
		return r.LevelSpeeds[len(r.LevelSpeeds)-1]
	}
	return r.LevelSpeeds[level]
}

// LevelFor returns the level reached after clearedLines lines.
func LevelFor(clearedLines int) int {
	return clearedLines / LinesPerLevel
}
