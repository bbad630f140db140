package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacktris/pkg/config"
	"github.com/matzehuels/stacktris/pkg/core/engine"
	"github.com/matzehuels/stacktris/pkg/core/piece"
	"github.com/matzehuels/stacktris/pkg/errors"
	"github.com/matzehuels/stacktris/pkg/observability"
)

// simulateOpts holds the command-line flags for the simulate command.
type simulateOpts struct {
	configFlags
	games     int
	maxPieces int
}

// simulateCommand creates the simulate command that plays headless games.
func (c *CLI) simulateCommand() *cobra.Command {
	opts := simulateOpts{
		games:     defaultSimulateGames,
		maxPieces: defaultSimulatePieces,
	}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play headless games with a random policy and report statistics",
		Long: `Play headless games with a random policy and report statistics.

Each game uses its own seed derived from --seed, so a run is reproducible:
the same seed, board, and rules always produce the same table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.games < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--games must be at least 1")
			}
			if opts.maxPieces < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--max-pieces must be at least 1")
			}
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runSimulate(cmd.Context(), cfg, opts.games, opts.maxPieces)
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVarP(&opts.games, "games", "n", opts.games, "number of games to play")
	cmd.Flags().IntVar(&opts.maxPieces, "max-pieces", opts.maxPieces, "stop a game after this many locked pieces")

	return cmd
}

// gameResult holds the outcome of one simulated game.
type gameResult struct {
	seed     uint64
	score    int
	lines    int
	pieces   int
	level    int
	gameOver bool
}

// runSimulate plays the games and prints a results table.
func runSimulate(ctx context.Context, cfg config.Config, games, maxPieces int) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	base := cfg.Game.Seed
	if base == 0 {
		base = rand.Uint64()
	}
	logger.Debug("simulating", "games", games, "seed", base, "width", cfg.Board.Width, "height", cfg.Board.Height)

	hooks := observability.Engine()
	if logger.GetLevel() <= log.DebugLevel {
		hooks = engineLogHooks{logger: logger}
	}

	spinner := newSpinnerWithContext(ctx, os.Stderr, fmt.Sprintf("Simulating %d games...", games))
	spinner.Start()

	results := make([]gameResult, 0, games)
	for i := range games {
		if err := ctx.Err(); err != nil {
			spinner.Stop()
			return err
		}
		r, err := simulateGame(cfg, base+uint64(i), maxPieces, hooks)
		if err != nil {
			spinner.StopWithError("Simulation failed")
			return err
		}
		results = append(results, r)
	}

	spinner.Stop()
	prog.done(fmt.Sprintf("Simulated %d games", games))

	fmt.Println(resultsTable(results))
	printNewline()
	printTotals(results)
	return nil
}

// simulateGame plays one game to its end, or until maxPieces pieces have
// locked. For every piece the policy picks a random rotation and a random
// column, then hard drops.
func simulateGame(cfg config.Config, seed uint64, maxPieces int, hooks observability.EngineHooks) (gameResult, error) {
	eng, err := engine.New(cfg.Board.Width, cfg.Board.Height,
		engine.WithRules(cfg.EngineRules()),
		engine.WithSeed(seed),
		engine.WithHooks(hooks),
	)
	if err != nil {
		return gameResult{}, err
	}

	policy := rand.New(rand.NewPCG(seed, ^seed))
	for eng.PiecesLocked() < maxPieces && !eng.CheckGameEnd() {
		for range policy.IntN(4) {
			eng.TryRotate(piece.CW)
		}

		dir := piece.Left
		if policy.IntN(2) == 1 {
			dir = piece.Right
		}
		for range policy.IntN(cfg.Board.Width/2 + 1) {
			if !eng.Move(dir) {
				break
			}
		}

		eng.HardDrop()
	}

	return gameResult{
		seed:     seed,
		score:    eng.Score(),
		lines:    eng.ClearedLines(),
		pieces:   eng.PiecesLocked(),
		level:    eng.Level(),
		gameOver: eng.State() == engine.GameOver,
	}, nil
}

// resultsTable renders one row per game.
func resultsTable(results []gameResult) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, len(results))
	for i, r := range results {
		end := "cap"
		if r.gameOver {
			end = "over"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.FormatUint(r.seed, 10),
			strconv.Itoa(r.score),
			strconv.Itoa(r.lines),
			strconv.Itoa(r.level),
			strconv.Itoa(r.pieces),
			end,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Seed", "Score", "Lines", "Level", "Pieces", "End").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 2 {
				return cellStyle.Foreground(colorCyan)
			}
			return cellStyle
		}).
		Render()
}

// printTotals prints aggregate statistics over all games.
func printTotals(results []gameResult) {
	var score, lines, pieces, best int
	for _, r := range results {
		score += r.score
		lines += r.lines
		pieces += r.pieces
		best = max(best, r.score)
	}
	n := len(results)
	printKeyValue("Games", strconv.Itoa(n))
	printKeyValue("Best score", StyleNumber.Render(strconv.Itoa(best)))
	printKeyValue("Mean score", fmt.Sprintf("%.1f", float64(score)/float64(n)))
	printKeyValue("Lines", strconv.Itoa(lines))
	printKeyValue("Pieces", strconv.Itoa(pieces))
}
