package engine

import (
	"os"
	"strconv"

	"github.com/Heliodex/sprig/constant"
)

// Config holds simulation settings
type Config struct {
	// Seed for the session RNG, 0 picks one from the clock
	Seed int64
	// FrameRate caps executed frames per second
	FrameRate int
	// CollideOffscreenRows keeps collision checks active above and below the screen
	CollideOffscreenRows bool
}

// DefaultConfig returns the standard 30 Hz configuration
func DefaultConfig() *Config {
	return &Config{
		FrameRate: constant.FrameRate,
	}
}

// LoadConfig loads configuration from environment variables over the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if seed := os.Getenv("SHOOTER_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	if fps := os.Getenv("SHOOTER_FRAME_RATE"); fps != "" {
		if val, err := strconv.Atoi(fps); err == nil && val > 0 {
			cfg.FrameRate = val
		}
	}

	if alias := os.Getenv("SHOOTER_ALIAS_ROWS"); alias != "" {
		if val, err := strconv.ParseBool(alias); err == nil {
			cfg.CollideOffscreenRows = val
		}
	}

	return cfg
}
