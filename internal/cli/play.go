package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacktris/pkg/config"
	"github.com/matzehuels/stacktris/pkg/core/engine"
	"github.com/matzehuels/stacktris/pkg/observability"
)

// playOpts holds the command-line flags for the play command.
type playOpts struct {
	configFlags
	logFile string
}

// playCommand creates the play command that runs an interactive game.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: `Play a game in the terminal.

Controls:
  ←/→         strafe
  ↑ or x      rotate clockwise
  z           rotate counter-clockwise
  ↓           soft drop
  enter/space hard drop
  p           pause
  q           quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return c.runPlay(cmd.Context(), cfg, opts.logFile)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.theme, "theme", "", "board theme: blocks (default), emoji")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write game logs to this file")

	return cmd
}

// session describes one finished game.
type session struct {
	id       string
	seed     uint64
	score    int
	lines    int
	pieces   int
	gameOver bool
	duration time.Duration
}

// runPlay runs one interactive game and prints a summary afterwards.
func (c *CLI) runPlay(ctx context.Context, cfg config.Config, logFile string) error {
	logger, closeLog, err := gameLogger(logFile, c.Logger.GetLevel())
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	id := uuid.NewString()
	logger = logger.With("session", id)

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	eng, err := engine.New(cfg.Board.Width, cfg.Board.Height,
		engine.WithRules(cfg.EngineRules()),
		engine.WithSeed(seed),
		engine.WithHooks(engineLogHooks{logger: logger}),
	)
	if err != nil {
		return err
	}
	logger.Info("game started", "seed", seed, "width", cfg.Board.Width, "height", cfg.Board.Height)

	hooks := observability.Session()
	hooks.OnSessionStart(ctx, id, cfg.Board.Width, cfg.Board.Height)
	start := time.Now()

	program := tea.NewProgram(newGameModel(eng, themeByName(cfg.Game.Theme)),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	final, err := program.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	m := final.(gameModel)
	s := session{
		id:       id,
		seed:     seed,
		score:    eng.Score(),
		lines:    eng.ClearedLines(),
		pieces:   eng.PiecesLocked(),
		gameOver: m.gameOver(),
		duration: time.Since(start),
	}
	hooks.OnSessionEnd(ctx, s.id, s.score, s.lines, s.gameOver, s.duration)

	printSummary(s)
	return nil
}

// printSummary prints the end-of-game report.
func printSummary(s session) {
	if s.gameOver {
		printError("Game over")
	} else {
		printInfo("Game quit")
	}
	printKeyValue("Score", StyleNumber.Render(fmt.Sprint(s.score)))
	printKeyValue("Lines", StyleNumber.Render(fmt.Sprint(s.lines)))
	printKeyValue("Pieces", fmt.Sprint(s.pieces))
	printKeyValue("Time", s.duration.Round(time.Second).String())
	printNewline()
	printNextStep("Replay these pieces", fmt.Sprintf("%s play --seed %d", appName, s.seed))
}
