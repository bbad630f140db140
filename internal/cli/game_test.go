package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stacktris/pkg/core/engine"
	"github.com/matzehuels/stacktris/pkg/core/grid"
)

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m gameModel, msg tea.Msg) (gameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(gameModel)
	if !ok {
		t.Fatalf("Update returned %T, want gameModel", next)
	}
	return gm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameInitSchedulesTick(t *testing.T) {
	m := newGameModel(newOEngine(t, 6, 8), emojiTheme())
	if m.Init() == nil {
		t.Error("Init() should schedule the first tick")
	}
}

func TestGameTickDescends(t *testing.T) {
	m := newGameModel(newOEngine(t, 6, 8), emojiTheme())

	m, cmd := update(t, m, tickMsg{gen: m.gen})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.engine.Piece().Origin(); got != (grid.Point{X: 2, Y: 1}) {
		t.Errorf("origin after tick = %v, want (2,1)", got)
	}
}

func TestGameStaleTickIgnored(t *testing.T) {
	m := newGameModel(newOEngine(t, 6, 8), emojiTheme())
	stale := m.gen

	m, _ = update(t, m, keyDown) // resets the timer
	y := m.engine.Piece().Origin().Y

	m, cmd := update(t, m, tickMsg{gen: stale})
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if got := m.engine.Piece().Origin().Y; got != y {
		t.Errorf("stale tick moved the piece from row %d to %d", y, got)
	}
}

func TestGameMovementKeys(t *testing.T) {
	m := newGameModel(newOEngine(t, 6, 8), emojiTheme())

	m, _ = update(t, m, keyLeft)
	if got := m.engine.Piece().Origin().X; got != 1 {
		t.Errorf("after left x = %d, want 1", got)
	}
	m, _ = update(t, m, keyRight)
	m, _ = update(t, m, keyRight)
	if got := m.engine.Piece().Origin().X; got != 3 {
		t.Errorf("after right right x = %d, want 3", got)
	}

	// O is symmetric, so rotation keys succeed without changing the footprint.
	before := m.engine.Piece().Cells()
	for _, k := range []tea.KeyMsg{keyUp, runeKey('x'), runeKey('z')} {
		m, _ = update(t, m, k)
	}
	after := m.engine.Piece().Cells()
	if len(before) != len(after) {
		t.Fatalf("rotation changed the cell count")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("cell %d moved from %v to %v", i, before[i], after[i])
		}
	}
}

func TestGameSoftDropResetsTimer(t *testing.T) {
	m := newGameModel(newOEngine(t, 6, 8), emojiTheme())
	gen := m.gen

	m, cmd := update(t, m, keyDown)
	if m.gen != gen+1 {
		t.Errorf("gen = %d, want %d", m.gen, gen+1)
	}
	if cmd == nil {
		t.Error("soft drop should schedule a fresh tick")
	}
	if got := m.engine.Piece().Origin().Y; got != 1 {
		t.Errorf("origin y = %d, want 1", got)
	}
}

func TestGameHardDrop(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyEnter, keySpace} {
		m := newGameModel(newOEngine(t, 6, 8), emojiTheme())
		gen := m.gen

		m, cmd := update(t, m, k)
		if m.engine.PiecesLocked() != 1 {
			t.Errorf("%s: pieces locked = %d, want 1", k, m.engine.PiecesLocked())
		}
		if m.gen != gen+1 || cmd == nil || isQuit(cmd) {
			t.Errorf("%s: hard drop should reset the timer", k)
		}
	}
}

func TestGamePause(t *testing.T) {
	m := newGameModel(newOEngine(t, 6, 8), emojiTheme())
	gen := m.gen

	m, cmd := update(t, m, runeKey('p'))
	if !m.paused || cmd != nil {
		t.Fatal("p should pause without scheduling a tick")
	}
	if !strings.Contains(m.View(), "press P to continue.") {
		t.Errorf("paused view = %q", m.View())
	}

	origin := m.engine.Piece().Origin()
	m, _ = update(t, m, keyLeft)
	m, _ = update(t, m, tickMsg{gen: m.gen})
	m, _ = update(t, m, tickMsg{gen: gen})
	if got := m.engine.Piece().Origin(); got != origin {
		t.Errorf("piece moved while paused: %v -> %v", origin, got)
	}

	m, cmd = update(t, m, runeKey('P'))
	if m.paused || cmd == nil {
		t.Error("P should resume and schedule a tick")
	}
}

func TestGameQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{runeKey('q'), runeKey('Q'), keyCtrlC} {
		m := newGameModel(newOEngine(t, 6, 8), emojiTheme())
		m, cmd := update(t, m, k)
		if !isQuit(cmd) {
			t.Errorf("%s should quit", k)
		}
		if m.gameOver() {
			t.Errorf("%s: quitting is not game over", k)
		}
	}

	// Quit works from the pause screen too.
	m := newGameModel(newOEngine(t, 6, 8), emojiTheme())
	m, _ = update(t, m, runeKey('p'))
	if _, cmd := update(t, m, runeKey('q')); !isQuit(cmd) {
		t.Error("q should quit while paused")
	}
}

func TestGameOverQuits(t *testing.T) {
	// Two O pieces fill a 4x4 board to the top.
	m := newGameModel(newOEngine(t, 4, 4), emojiTheme())

	m, cmd := update(t, m, keyEnter)
	if isQuit(cmd) {
		t.Fatal("first drop should not end the game")
	}
	m, cmd = update(t, m, keyEnter)
	if !isQuit(cmd) {
		t.Fatal("second drop should end the game")
	}
	if !m.gameOver() || m.engine.State() != engine.GameOver {
		t.Error("model should report game over")
	}

	// Every later input quits again without touching the engine.
	score := m.engine.Score()
	for _, msg := range []tea.Msg{keyLeft, keyDown, tickMsg{gen: m.gen}} {
		var cmd tea.Cmd
		m, cmd = update(t, m, msg)
		if !isQuit(cmd) {
			t.Errorf("%v after game over should quit", msg)
		}
	}
	if m.engine.Score() != score {
		t.Error("score changed after game over")
	}
}

func TestGameWindowSize(t *testing.T) {
	m := newGameModel(newOEngine(t, 6, 8), emojiTheme())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.width != 80 || m.height != 24 {
		t.Errorf("size = %dx%d, want 80x24", m.width, m.height)
	}
}
