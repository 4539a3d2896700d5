package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 4x4 board that spawns after
// every move, aiming for 2048.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Height: 4,
			Width:  4,
		},
		Spawn: SpawnConfig{
			Policy: "every_move",
		},
		Seed:   0,
		Target: 2048,
		Storage: StorageConfig{
			Path: "~/.t2048/results.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}
