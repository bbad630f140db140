package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stacktris/pkg/config"
	"github.com/matzehuels/stacktris/pkg/core/engine"
	"github.com/matzehuels/stacktris/pkg/core/grid"
)

// =============================================================================
// Themes
// =============================================================================

// theme maps every cell value to a two-column glyph.
type theme struct {
	name  string
	cells [grid.Border + 1]string
}

// glyph returns the rendered form of c.
func (t theme) glyph(c grid.Cell) string {
	if int(c) >= len(t.cells) {
		return "??"
	}
	return t.cells[c]
}

// pieceColors holds the background of each tag for the blocks theme,
// followed by the border.
var pieceColors = [grid.Border + 1]lipgloss.Color{
	1:           colorRed,
	2:           lipgloss.Color("130"), // brown
	3:           colorBlue,
	4:           lipgloss.Color("135"), // purple
	5:           colorYellow,
	6:           colorGreen,
	7:           lipgloss.Color("208"), // orange
	grid.Border: colorWhite,
}

func blocksTheme() theme {
	t := theme{name: config.ThemeBlocks}
	t.cells[grid.Empty] = "  "
	for c := grid.Cell(1); c <= grid.Border; c++ {
		t.cells[c] = lipgloss.NewStyle().Background(pieceColors[c]).Render("  ")
	}
	return t
}

func emojiTheme() theme {
	return theme{
		name: config.ThemeEmoji,
		cells: [grid.Border + 1]string{
			"  ", "🟥", "🟫", "🟦", "🟪", "🟨", "🟩", "🟧", "⬜",
		},
	}
}

// themeByName returns the named theme, falling back to blocks.
func themeByName(name string) theme {
	if strings.EqualFold(name, config.ThemeEmoji) {
		return emojiTheme()
	}
	return blocksTheme()
}

// =============================================================================
// Scene
// =============================================================================

var (
	styleSidebar = lipgloss.NewStyle().PaddingLeft(4).PaddingTop(2)
	stylePause   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(colorWhite).Padding(0, 2)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray)
)

// controls lists the key bindings shown next to the board.
var controls = []string{
	"←/→ strafe",
	"↑ or x rotates",
	"z rotates back",
	"↓ soft drop",
	"enter drops block",
	"p pauses",
	"q quits",
}

// renderBoard draws the playfield inside a one-cell frame.
func renderBoard(s engine.Snapshot, t theme) string {
	border := t.glyph(grid.Border)
	edge := strings.Repeat(border, s.Width+2)

	var b strings.Builder
	b.WriteString(edge)
	b.WriteByte('\n')
	for _, row := range s.Cells {
		b.WriteString(border)
		for _, c := range row {
			b.WriteString(t.glyph(c))
		}
		b.WriteString(border)
		b.WriteByte('\n')
	}
	b.WriteString(edge)
	return b.String()
}

// renderSidebar draws the title, counters, and controls.
func renderSidebar(s engine.Snapshot) string {
	lines := []string{
		StyleTitle.Underline(true).Render("Stacktris"),
		"",
		styleLabel.Render("Lines  ") + StyleNumber.Render(fmt.Sprint(s.ClearedLines)),
		styleLabel.Render("Score  ") + StyleNumber.Render(fmt.Sprint(s.Score)),
		styleLabel.Render("Level  ") + StyleNumber.Render(fmt.Sprint(s.Level)),
		"",
		"",
	}
	for _, c := range controls {
		lines = append(lines, StyleDim.Render(c))
	}
	return styleSidebar.Render(strings.Join(lines, "\n"))
}

// renderScene draws the board with the sidebar to its right.
func renderScene(s engine.Snapshot, t theme) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, renderBoard(s, t), renderSidebar(s))
}

// renderPause draws the pause banner centered in a width×height screen.
// A zero size yields the bare banner.
func renderPause(width, height int) string {
	banner := stylePause.Render("press P to continue.")
	if width <= 0 || height <= 0 {
		return banner
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, banner)
}
