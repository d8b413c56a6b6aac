package config

import (
	_ "embed"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			FourProbability: 0.1,
		},
		Display: DisplayConfig{
			Color: true,
			Clear: ClearAuto,
		},
		Keys: KeysConfig{
			Left:  "a",
			Right: "d",
			Up:    "w",
			Down:  "s",
			Quit:  "q",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
