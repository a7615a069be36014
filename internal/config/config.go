// Package config provides YAML-based configuration loading for tilemerge.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tilemerge/internal/engine"
)

// Config contains all tilemerge configuration.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Render RenderConfig `yaml:"render"`
	Seed   int64        `yaml:"seed"` // 0 = derive from the clock
	SSH    SSHConfig    `yaml:"ssh"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines the tile spawn policy.
type SpawnConfig struct {
	Pool         []int `yaml:"pool"`
	InitialPool  []int `yaml:"initial_pool"`
	InitialTiles int   `yaml:"initial_tiles"`
}

// RenderConfig defines the text dump layout.
type RenderConfig struct {
	CellWidth int `yaml:"cell_width"`
}

// SSHConfig defines the SSH server parameters.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty = ~/.tilemerge/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks the configuration for values the engine or drivers cannot use.
func (c Config) Validate() error {
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Render.CellWidth < 1 {
		return fmt.Errorf("invalid config: render.cell_width must be positive, got %d", c.Render.CellWidth)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("invalid config: ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout)
	}
	return nil
}

// EngineConfig converts the board and spawn sections into an engine configuration.
func (c Config) EngineConfig() engine.Config {
	return engine.Config{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		SpawnPool:    c.Spawn.Pool,
		InitialPool:  c.Spawn.InitialPool,
		InitialTiles: c.Spawn.InitialTiles,
	}
}
