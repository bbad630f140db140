package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stacktris/pkg/core/engine"
	"github.com/matzehuels/stacktris/pkg/core/piece"
)

// tickMsg fires when the fall interval elapses. gen identifies the timer
// that produced it; ticks from a timer that has since been reset are dropped.
type tickMsg struct {
	gen int
}

// gameModel is the bubbletea model for one interactive game.
type gameModel struct {
	engine *engine.Engine
	theme  theme

	gen    int
	paused bool

	width  int
	height int
}

// newGameModel creates a model driving e.
func newGameModel(e *engine.Engine, t theme) gameModel {
	return gameModel{engine: e, theme: t}
}

// tick schedules the next automatic drop on the current level's interval.
func (m gameModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.engine.FallInterval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// resetTimer invalidates any pending tick and starts a fresh interval.
func (m gameModel) resetTimer() (gameModel, tea.Cmd) {
	m.gen++
	return m, m.tick()
}

func (m gameModel) Init() tea.Cmd {
	return m.tick()
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		if msg.gen != m.gen || m.paused {
			return m, nil
		}
		if m.engine.CheckGameEnd() {
			return m, tea.Quit
		}
		if res := m.engine.TickDown(); res.GameOver {
			return m, tea.Quit
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

// handleKey applies one key press.
func (m gameModel) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit
	case "p", "P":
		m.paused = !m.paused
		if m.paused {
			m.gen++
			return m, nil
		}
		return m.resetTimer()
	}

	if m.paused {
		return m, nil
	}
	if m.engine.CheckGameEnd() {
		return m, tea.Quit
	}

	switch key {
	case "left":
		m.engine.Move(piece.Left)
	case "right":
		m.engine.Move(piece.Right)
	case "up", "x":
		m.engine.TryRotate(piece.CW)
	case "z":
		m.engine.TryRotate(piece.CCW)
	case "down":
		if res := m.engine.TickDown(); res.GameOver {
			return m, tea.Quit
		}
		return m.resetTimer()
	case "enter", " ":
		if res := m.engine.HardDrop(); res.GameOver {
			return m, tea.Quit
		}
		return m.resetTimer()
	}
	return m, nil
}

func (m gameModel) View() string {
	if m.paused {
		return renderPause(m.width, m.height)
	}
	return renderScene(m.engine.Snapshot(), m.theme)
}

// gameOver reports whether the game ended with a full board.
func (m gameModel) gameOver() bool {
	return m.engine.State() == engine.GameOver
}
