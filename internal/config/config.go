// Package config provides YAML-based configuration loading for the 2048
// engine and its presenters.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Config contains all configuration for a 2048 session and the tools around it.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Seed    int64         `yaml:"seed"`   // 0 = time-based seed
	Target  int           `yaml:"target"` // Tile value that wins the session
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// SpawnConfig defines when moves spawn new tiles.
type SpawnConfig struct {
	Policy string `yaml:"policy"` // "every_move", "on_change" or "manual"
}

// StorageConfig defines where finished sessions are recorded.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig defines the SSH server parameters.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can build a board.
func (c Config) Validate() error {
	if c.Board.Height < 1 || c.Board.Width < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidConfig, c.Board.Height, c.Board.Width)
	}
	if _, err := engine.ParseSpawnPolicy(c.Spawn.Policy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Target < 2 {
		return fmt.Errorf("%w: target must be at least 2, got %d", ErrInvalidConfig, c.Target)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: idle timeout cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// SpawnPolicy returns the parsed spawn policy. Call Validate first.
func (c Config) SpawnPolicy() engine.SpawnPolicy {
	p, err := engine.ParseSpawnPolicy(c.Spawn.Policy)
	if err != nil {
		return engine.SpawnEveryMove
	}
	return p
}

// Overrides holds command-line values that take precedence over the file.
// Zero values leave the loaded setting untouched.
type Overrides struct {
	Height      int
	Width       int
	SpawnPolicy string
	Seed        int64
	Target      int
	DBPath      string
}

// ApplyOverrides copies every non-zero override into the config.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Height > 0 {
		c.Board.Height = o.Height
	}
	if o.Width > 0 {
		c.Board.Width = o.Width
	}
	if o.SpawnPolicy != "" {
		c.Spawn.Policy = o.SpawnPolicy
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Target > 0 {
		c.Target = o.Target
	}
	if o.DBPath != "" {
		c.Storage.Path = o.DBPath
	}
}

// ParseSize parses a board size written as "HxW" (for example "4x4" or
// "3x5") or as a single number for a square board.
func ParseSize(s string) (height, width int, err error) {
	hs, ws, found := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !found {
		ws = hs
	}

	height, hErr := strconv.Atoi(hs)
	width, wErr := strconv.Atoi(ws)
	if hErr != nil || wErr != nil {
		return 0, 0, fmt.Errorf("%w: cannot parse board size %q", ErrInvalidConfig, s)
	}
	if height < 1 || width < 1 {
		return 0, 0, fmt.Errorf("%w: board size %q must be positive", ErrInvalidConfig, s)
	}
	return height, width, nil
}
