// Package config provides YAML-based configuration loading for term2048.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/term2048/internal/games/t2048"
)

// Config contains all user-tunable settings.
type Config struct {
	Spawn   SpawnConfig   `yaml:"spawn"`
	Display DisplayConfig `yaml:"display"`
	Keys    KeysConfig    `yaml:"keys"`
}

// SpawnConfig defines tile spawning parameters.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Probability of a 4 (0.0-1.0)
}

// DisplayConfig defines how the board is presented.
type DisplayConfig struct {
	Color bool      `yaml:"color"`
	Clear ClearMode `yaml:"clear"`
}

// ClearMode selects how the screen is cleared before each render.
type ClearMode string

const (
	ClearAuto    ClearMode = "auto"    // ANSI on a terminal, nothing otherwise
	ClearANSI    ClearMode = "ansi"    // Emit an ANSI clear sequence
	ClearCommand ClearMode = "command" // Run the host's clear command
	ClearNone    ClearMode = "none"
)

// reservedKeys are bound by the full-screen view whatever the configuration says.
var reservedKeys = map[string]bool{
	"?":      true,
	"left":   true,
	"right":  true,
	"up":     true,
	"down":   true,
	"ctrl+c": true,
}

// KeysConfig maps input lines to commands.
type KeysConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Quit  string `yaml:"quit"`
}

// Direction translates a trimmed input line into a command.
// Lines that match no key are reported as not ok.
func (k KeysConfig) Direction(input string) (t2048.Direction, bool) {
	switch input {
	case k.Left:
		return t2048.DirLeft, true
	case k.Right:
		return t2048.DirRight, true
	case k.Up:
		return t2048.DirUp, true
	case k.Down:
		return t2048.DirDown, true
	case k.Quit:
		return t2048.DirQuit, true
	}
	return t2048.DirNone, false
}

// Controls returns the control hint line for these keys.
func (k KeysConfig) Controls() string {
	return t2048.Controls(k.Left, k.Right, k.Up, k.Down, k.Quit)
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	var errs []error

	if p := c.Spawn.FourProbability; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("spawn.four_probability %v outside [0, 1]", p))
	}

	switch c.Display.Clear {
	case ClearAuto, ClearANSI, ClearCommand, ClearNone:
	default:
		errs = append(errs, fmt.Errorf("display.clear %q is not one of auto, ansi, command, none", c.Display.Clear))
	}

	seen := make(map[string]string)
	for _, kv := range []struct{ name, key string }{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"quit", c.Keys.Quit},
	} {
		key := strings.TrimSpace(kv.key)
		if key == "" {
			errs = append(errs, fmt.Errorf("keys.%s is empty", kv.name))
			continue
		}
		if key != kv.key {
			errs = append(errs, fmt.Errorf("keys.%s %q has surrounding whitespace", kv.name, kv.key))
		}
		if reservedKeys[key] {
			errs = append(errs, fmt.Errorf("keys.%s %q is reserved", kv.name, key))
		}
		if other, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("keys.%s and keys.%s both use %q", other, kv.name, key))
		}
		seen[key] = kv.name
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// GameOptions converts the configuration into session options.
func (c Config) GameOptions(seed int64) t2048.Options {
	opts := t2048.DefaultOptions()
	opts.Seed = seed
	opts.Spawn4 = c.Spawn.FourProbability
	return opts
}
