package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tilemerge/internal/engine"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n%+v\nvs\n%+v", cfg, Default())
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
board:
  width: 5
  height: 3
spawn:
  pool: [2, 4]
ssh:
  idle_timeout: 5m
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if cfg.Board.Width != 5 || cfg.Board.Height != 3 {
		t.Errorf("board = %dx%d, want 5x3", cfg.Board.Width, cfg.Board.Height)
	}
	if !reflect.DeepEqual(cfg.Spawn.Pool, []int{2, 4}) {
		t.Errorf("spawn.pool = %v, want [2 4]", cfg.Spawn.Pool)
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("ssh.idle_timeout = %s, want 5m", cfg.SSH.IdleTimeout)
	}

	// Untouched fields keep their defaults
	if cfg.Spawn.InitialTiles != 2 {
		t.Errorf("spawn.initial_tiles = %d, want default 2", cfg.Spawn.InitialTiles)
	}
	if cfg.Render.CellWidth != 5 {
		t.Errorf("render.cell_width = %d, want default 5", cfg.Render.CellWidth)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"zero width", "board: {width: 0}", engine.ErrInvalidDimensions},
		{"empty pool", "spawn: {pool: []}", engine.ErrInvalidSpawnPool},
		{"negative pool value", "spawn: {initial_pool: [-2]}", engine.ErrInvalidSpawnPool},
		{"zero cell width", "render: {cell_width: 0}", nil},
		{"malformed", "board: [", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse should fail")
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("Parse error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("board: {width: 6, height: 2}\nseed: 99\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Board.Width != 6 || cfg.Board.Height != 2 || cfg.Seed != 99 {
		t.Errorf("Load = %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd error: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir error: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := Default()
	cfg.Board.Width = 3

	ec := cfg.EngineConfig()
	if ec.Width != 3 || ec.Height != 4 {
		t.Errorf("EngineConfig dims = %dx%d, want 3x4", ec.Width, ec.Height)
	}
	if !reflect.DeepEqual(ec.SpawnPool, engine.DefaultSpawnPool) {
		t.Errorf("EngineConfig pool = %v", ec.SpawnPool)
	}
}
