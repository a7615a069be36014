package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/render"
)

//go:embed defaults/tilemerge.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	ec := engine.DefaultConfig()
	return Config{
		Board: BoardConfig{
			Width:  ec.Width,
			Height: ec.Height,
		},
		Spawn: SpawnConfig{
			Pool:         ec.SpawnPool,
			InitialPool:  ec.InitialPool,
			InitialTiles: ec.InitialTiles,
		},
		Render: RenderConfig{
			CellWidth: render.DefaultCellWidth,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
