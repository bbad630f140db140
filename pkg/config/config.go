// Package config loads stacktris settings.
//
// Settings come from three layers, later layers winning:
//
//  1. [Default] values (an 11×25 board with the classic tables)
//  2. A TOML file, by default $XDG_CONFIG_HOME/stacktris/config.toml
//  3. STACKTRIS_* environment variables
//
// Example file:
//
//	[board]
//	width = 11
//	height = 25
//
//	[rules]
//	line_scores = [0, 40, 100, 300, 1200]
//	level_speeds = ["500ms", "300ms", "250ms", "200ms", "150ms", "100ms"]
//
//	[game]
//	seed = 0       # 0 picks a random seed per session
//	theme = "blocks"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/matzehuels/stacktris/pkg/core/engine"
	"github.com/matzehuels/stacktris/pkg/errors"
)

const appName = "stacktris"

// Theme names understood by the terminal renderer.
const (
	ThemeBlocks = "blocks"
	ThemeEmoji  = "emoji"
)

// Themes lists every theme name.
var Themes = []string{ThemeBlocks, ThemeEmoji}

// Config is the full set of user settings.
type Config struct {
	Board BoardConfig `toml:"board"`
	Rules RulesConfig `toml:"rules"`
	Game  GameConfig  `toml:"game"`
}

// BoardConfig sets the playfield size.
type BoardConfig struct {
	Width  int `toml:"width"  env:"STACKTRIS_WIDTH"`
	Height int `toml:"height" env:"STACKTRIS_HEIGHT"`
}

// RulesConfig holds the scoring and speed tables.
type RulesConfig struct {
	LineScores  []int           `toml:"line_scores"  env:"STACKTRIS_LINE_SCORES"  envSeparator:","`
	LevelSpeeds []time.Duration `toml:"level_speeds" env:"STACKTRIS_LEVEL_SPEEDS" envSeparator:","`
}

// GameConfig holds session settings.
type GameConfig struct {
	Seed  uint64 `toml:"seed"  env:"STACKTRIS_SEED"`
	Theme string `toml:"theme" env:"STACKTRIS_THEME"`
}

// Default returns the built-in configuration.
func Default() Config {
	r := engine.DefaultRules()
	return Config{
		Board: BoardConfig{Width: 11, Height: 25},
		Rules: RulesConfig{
			LineScores:  r.LineScores,
			LevelSpeeds: r.LevelSpeeds,
		},
		Game: GameConfig{Theme: ThemeBlocks},
	}
}

// DefaultPath returns the default config file location using the XDG
// standard (~/.config/stacktris/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load builds the effective configuration.
//
// An empty path means the default location, where a missing file is not an
// error. An explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInternal, err, "locate config directory")
		}
		path = p
	} else if err := errors.ValidatePath(path); err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Decode(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		}
	case os.IsNotExist(err) && !explicit:
		// Defaults only.
	case os.IsNotExist(err):
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	default:
		return Config{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg. Keys absent from data keep their
// current values; unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return nil
}

// ApplyEnv overlays STACKTRIS_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse environment")
	}
	return nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := errors.ValidateDimensions(c.Board.Width, c.Board.Height); err != nil {
		return err
	}
	if err := c.EngineRules().Validate(); err != nil {
		return err
	}
	return errors.ValidateTheme(c.Game.Theme, Themes)
}

// EngineRules converts the rules section into engine tables.
func (c Config) EngineRules() *engine.Rules {
	return &engine.Rules{
		LineScores:  append([]int(nil), c.Rules.LineScores...),
		LevelSpeeds: append([]time.Duration(nil), c.Rules.LevelSpeeds...),
	}
}

// Encode renders cfg as TOML. Durations are written as strings such as
// "500ms" so the output can be loaded again.
func Encode(cfg Config) ([]byte, error) {
	speeds := make([]string, len(cfg.Rules.LevelSpeeds))
	for i, d := range cfg.Rules.LevelSpeeds {
		speeds[i] = d.String()
	}

	out := struct {
		Board BoardConfig `toml:"board"`
		Rules struct {
			LineScores  []int    `toml:"line_scores"`
			LevelSpeeds []string `toml:"level_speeds"`
		} `toml:"rules"`
		Game GameConfig `toml:"game"`
	}{Board: cfg.Board, Game: cfg.Game}
	out.Rules.LineScores = cfg.Rules.LineScores
	out.Rules.LevelSpeeds = speeds

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}
