package errors

import (
	"strings"
	"testing"
	"time"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr bool
	}{
		{"classic", 11, 25, false},
		{"guideline", 10, 20, false},
		{"minimum", MinBoardWidth, MinBoardHeight, false},
		{"maximum", MaxBoardWidth, MaxBoardHeight, false},

		{"zero width", 0, 20, true},
		{"negative height", 10, -1, true},
		{"too narrow", MinBoardWidth - 1, 20, true},
		{"too wide", MaxBoardWidth + 1, 20, true},
		{"too short", 10, MinBoardHeight - 1, true},
		{"too tall", 10, MaxBoardHeight + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimensions) {
				t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeInvalidDimensions)
			}
		})
	}
}

func TestValidateLineScores(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		wantErr bool
	}{
		{"classic", []int{0, 40, 100, 300, 1200}, false},
		{"flat", []int{0, 0, 0, 0, 0}, false},
		{"extra entries", []int{0, 1, 2, 3, 4, 5}, false},

		{"too short", []int{0, 40, 100, 300}, true},
		{"nil", nil, true},
		{"nonzero base", []int{10, 40, 100, 300, 1200}, true},
		{"negative", []int{0, -40, 100, 300, 1200}, true},
		{"decreasing", []int{0, 40, 30, 300, 1200}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLineScores(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLineScores(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLevelSpeeds(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		name    string
		input   []time.Duration
		wantErr bool
	}{
		{"classic", []time.Duration{500 * ms, 300 * ms, 250 * ms, 200 * ms, 150 * ms, 100 * ms}, false},
		{"single", []time.Duration{time.Second}, false},
		{"plateau", []time.Duration{200 * ms, 200 * ms}, false},

		{"empty", nil, true},
		{"zero", []time.Duration{0}, true},
		{"negative", []time.Duration{500 * ms, -ms}, true},
		{"slowing down", []time.Duration{300 * ms, 500 * ms}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLevelSpeeds(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLevelSpeeds(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "config.toml", false},
		{"absolute", "/etc/stacktris/config.toml", false},
		{"home", "~/.config/stacktris/config.toml", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "config\x00.toml", true},
		{"newline", "config\n.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTheme(t *testing.T) {
	known := []string{"blocks", "emoji"}

	if err := ValidateTheme("blocks", known); err != nil {
		t.Errorf("ValidateTheme(blocks) = %v", err)
	}
	if err := ValidateTheme("EMOJI", known); err != nil {
		t.Errorf("ValidateTheme(EMOJI) = %v, want case-insensitive match", err)
	}

	err := ValidateTheme("neon", known)
	if !Is(err, ErrCodeInvalidTheme) {
		t.Fatalf("ValidateTheme(neon) = %v, want %s", err, ErrCodeInvalidTheme)
	}
	if !strings.Contains(UserMessage(err), "blocks, emoji") {
		t.Errorf("message %q should list available themes", UserMessage(err))
	}
}
