// Package config loads game tuning, terminal mapping and logging options from TOML
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

type Config struct {
	Game     GameConfig     `toml:"game"`
	Terminal TerminalConfig `toml:"terminal"`
	Logging  LoggingConfig  `toml:"logging"`
}

type GameConfig struct {
	GridDivisor   int           `toml:"grid_divisor"`
	InitialSpeed  time.Duration `toml:"initial_speed"`
	MinSpeed      time.Duration `toml:"min_speed"`
	SpeedStep     time.Duration `toml:"speed_step"`
	InitialLength int           `toml:"initial_length"`
	BallSize      int           `toml:"ball_size"`
	SpawnAttempts int           `toml:"spawn_attempts"`
	ResizeSettle  time.Duration `toml:"resize_settle"`
	Seed          uint64        `toml:"seed"` // 0 = seed from the clock
}

type TerminalConfig struct {
	PixelsPerColumn int    `toml:"pixels_per_column"`
	PixelsPerRow    int    `toml:"pixels_per_row"`
	SwipeThreshold  int    `toml:"swipe_threshold"` // virtual pixels
	Keymap          string `toml:"keymap"`          // YAML file, empty = built-in bindings
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`
	Debug  bool   `toml:"debug"` // false discards all log output
}

// Load reads path over Defaults; an empty path yields Defaults
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			GridDivisor:   constants.GridDivisor,
			InitialSpeed:  constants.InitialSpeed,
			MinSpeed:      constants.MinSpeed,
			SpeedStep:     constants.SpeedStep,
			InitialLength: constants.InitialSnakeLength,
			BallSize:      constants.BallSize,
			SpawnAttempts: constants.SpawnMaxAttempts,
			ResizeSettle:  constants.ResizeSettleDelay,
		},
		Terminal: TerminalConfig{
			PixelsPerColumn: constants.PixelsPerColumn,
			PixelsPerRow:    constants.PixelsPerRow,
			SwipeThreshold:  constants.SwipeThreshold,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "logs/vi-snake.log",
		},
	}
}

// Validate reports every out-of-range value at once
func (c *Config) Validate() error {
	var errs []error
	g := c.Game

	if g.GridDivisor < 1 {
		errs = append(errs, fmt.Errorf("game.grid_divisor must be >= 1, got %d", g.GridDivisor))
	}
	if g.InitialSpeed <= 0 {
		errs = append(errs, fmt.Errorf("game.initial_speed must be positive, got %v", g.InitialSpeed))
	}
	if g.MinSpeed <= 0 {
		errs = append(errs, fmt.Errorf("game.min_speed must be positive, got %v", g.MinSpeed))
	}
	if g.MinSpeed > g.InitialSpeed {
		errs = append(errs, fmt.Errorf("game.min_speed %v exceeds game.initial_speed %v", g.MinSpeed, g.InitialSpeed))
	}
	if g.SpeedStep < 0 {
		errs = append(errs, fmt.Errorf("game.speed_step must not be negative, got %v", g.SpeedStep))
	}
	if g.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("game.initial_length must be >= 1, got %d", g.InitialLength))
	}
	if g.BallSize < 1 {
		errs = append(errs, fmt.Errorf("game.ball_size must be >= 1, got %d", g.BallSize))
	}
	if g.SpawnAttempts < 1 {
		errs = append(errs, fmt.Errorf("game.spawn_attempts must be >= 1, got %d", g.SpawnAttempts))
	}
	if g.ResizeSettle < 0 {
		errs = append(errs, fmt.Errorf("game.resize_settle must not be negative, got %v", g.ResizeSettle))
	}

	t := c.Terminal
	if t.PixelsPerColumn < 1 || t.PixelsPerRow < 1 {
		errs = append(errs, fmt.Errorf("terminal pixel mapping must be >= 1, got %dx%d", t.PixelsPerColumn, t.PixelsPerRow))
	}
	if t.SwipeThreshold < 1 {
		errs = append(errs, fmt.Errorf("terminal.swipe_threshold must be >= 1, got %d", t.SwipeThreshold))
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	if c.Logging.Debug && c.Logging.File == "" {
		errs = append(errs, errors.New("logging.file is required when logging.debug is set"))
	}

	return errors.Join(errs...)
}

// Settings maps the game section onto engine tuning
func (g GameConfig) Settings() engine.Settings {
	return engine.Settings{
		GridDivisor:   g.GridDivisor,
		InitialSpeed:  g.InitialSpeed,
		MinSpeed:      g.MinSpeed,
		SpeedStep:     g.SpeedStep,
		InitialLength: g.InitialLength,
		SettleDelay:   g.ResizeSettle,
	}
}
