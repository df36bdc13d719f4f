package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable startup settings
// Runtime state (focus, camera pose) is never persisted
type Config struct {
	// TickMillis is the fixed frame interval in milliseconds
	TickMillis int `toml:"tick_millis"`

	// Speed is the initial time multiplier
	Speed float64 `toml:"speed"`

	// ShowOrbits sets initial orbit-path visibility
	ShowOrbits bool `toml:"show_orbits"`

	// StarCount is the number of backdrop stars to generate
	StarCount int `toml:"star_count"`

	// Audio enables the speaker cues
	Audio bool `toml:"audio"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		TickMillis: 16,
		Speed:      1.0,
		ShowOrbits: true,
		StarCount:  600,
		Audio:      true,
	}
}

// Load reads a TOML config file over the defaults
// A missing file is not an error; a malformed one is
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg.sanitize(), nil
}

// sanitize clamps nonsense values back to usable ones
func (c Config) sanitize() Config {
	if c.TickMillis <= 0 {
		c.TickMillis = 16
	}
	if c.Speed <= 0 {
		c.Speed = 1.0
	}
	if c.StarCount < 0 {
		c.StarCount = 0
	}
	return c
}
