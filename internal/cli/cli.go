// Package cli implements the stacktris command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacktris/pkg/buildinfo"
	"github.com/matzehuels/stacktris/pkg/config"
	"github.com/matzehuels/stacktris/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "stacktris"

	// defaultSimulateGames is the number of headless games run by simulate.
	defaultSimulateGames = 10

	// defaultSimulatePieces caps the pieces locked in one simulated game.
	defaultSimulatePieces = 1000
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "A falling-block puzzle game for the terminal",
		Long:         `Stacktris is a falling-block puzzle game that runs in the terminal. Clear full rows to score; every ten rows raises the level and the fall speed.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetSessionHooks(sessionLogHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.playCommand())
	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// configFlags holds the flags shared by commands that build a game from the
// effective configuration. Flags override file and environment values only
// when set explicitly.
type configFlags struct {
	path   string
	width  int
	height int
	seed   uint64
	theme  string
}

// register adds the shared flags to cmd.
func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "config", "c", "", "config file (default $XDG_CONFIG_HOME/stacktris/config.toml)")
	cmd.Flags().IntVar(&f.width, "width", 0, "board width in cells")
	cmd.Flags().IntVar(&f.height, "height", 0, "board height in cells")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed for piece selection (0 picks one)")
}

// load reads the configuration and applies explicitly set flags on top.
func (f *configFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Board.Height = f.height
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = f.seed
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Game.Theme = f.theme
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
