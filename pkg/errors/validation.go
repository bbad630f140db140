package errors

import (
	"strings"
	"time"
	"unicode"
)

// Limits applied to user-supplied board sizes. Pieces spawn at column
// width/2-1, so the four-wide line piece needs width/2+3 columns; any board
// narrower than 5 cannot spawn it. Very large boards do not fit any terminal.
const (
	MinBoardWidth  = 5
	MaxBoardWidth  = 64
	MinBoardHeight = 4
	MaxBoardHeight = 128
)

// ValidateDimensions validates a board size.
func ValidateDimensions(width, height int) error {
	if width < MinBoardWidth || width > MaxBoardWidth {
		return New(ErrCodeInvalidDimensions, "board width must be between %d and %d, got %d",
			MinBoardWidth, MaxBoardWidth, width)
	}
	if height < MinBoardHeight || height > MaxBoardHeight {
		return New(ErrCodeInvalidDimensions, "board height must be between %d and %d, got %d",
			MinBoardHeight, MaxBoardHeight, height)
	}
	return nil
}

// ValidateLineScores validates a lines-cleared to points table.
//
// Validation rules:
//   - At least 5 entries (0 through 4 lines)
//   - Entry 0 must be zero
//   - No negative entries
//   - Entries never decrease
func ValidateLineScores(scores []int) error {
	if len(scores) < 5 {
		return New(ErrCodeInvalidConfig, "line score table needs entries for 0..4 lines, got %d", len(scores))
	}
	if scores[0] != 0 {
		return New(ErrCodeInvalidConfig, "clearing no lines must score 0, got %d", scores[0])
	}
	for i, s := range scores {
		if s < 0 {
			return New(ErrCodeInvalidConfig, "line score for %d lines is negative: %d", i, s)
		}
		if i > 0 && s < scores[i-1] {
			return New(ErrCodeInvalidConfig, "line score for %d lines (%d) is below the score for %d lines (%d)",
				i, s, i-1, scores[i-1])
		}
	}
	return nil
}

// ValidateLevelSpeeds validates a level to fall-interval table.
// Intervals must be positive and must not get slower as the level rises.
func ValidateLevelSpeeds(speeds []time.Duration) error {
	if len(speeds) == 0 {
		return New(ErrCodeInvalidConfig, "level speed table cannot be empty")
	}
	for i, d := range speeds {
		if d <= 0 {
			return New(ErrCodeInvalidConfig, "fall interval for level %d must be positive, got %s", i, d)
		}
		if i > 0 && d > speeds[i-1] {
			return New(ErrCodeInvalidConfig, "fall interval for level %d (%s) is slower than level %d (%s)",
				i, d, i-1, speeds[i-1])
		}
	}
	return nil
}

// ValidatePath validates a config file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateTheme validates a theme name against the known set.
func ValidateTheme(name string, known []string) error {
	for _, k := range known {
		if strings.EqualFold(name, k) {
			return nil
		}
	}
	return New(ErrCodeInvalidTheme, "unknown theme %q (available: %s)", name, strings.Join(known, ", "))
}
