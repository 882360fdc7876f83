package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"liftsim/src/types"
)

const (
	DefaultNumFloors    = 4
	DefaultNumLifts     = 2
	TickPeriod          = 2000 * time.Millisecond
	DefaultDistanceMode = "parity"
	DefaultLogLevel     = "info"
	DefaultLogFile      = "liftsim.log"

	DefaultConfigPath = "liftsim.yaml"
	DefaultEnvPath    = ".env"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	NumFloors    int           `yaml:"floors"`
	NumLifts     int           `yaml:"lifts"`
	TickPeriod   time.Duration `yaml:"tick"`
	DistanceMode string        `yaml:"distance"`
	LogLevel     string        `yaml:"log_level"`
	LogFile      string        `yaml:"log_file"` // empty discards logs
}

func Default() Config {
	return Config{
		NumFloors:    DefaultNumFloors,
		NumLifts:     DefaultNumLifts,
		TickPeriod:   TickPeriod,
		DistanceMode: DefaultDistanceMode,
		LogLevel:     DefaultLogLevel,
		LogFile:      DefaultLogFile,
	}
}

// Validate rejects configurations that cannot build a simulation.
func (c Config) Validate() error {
	if c.NumFloors <= 0 {
		return fmt.Errorf("%w: floors must be positive, got %d", ErrInvalidConfig, c.NumFloors)
	}
	if c.NumLifts <= 0 {
		return fmt.Errorf("%w: lifts must be positive, got %d", ErrInvalidConfig, c.NumLifts)
	}
	if c.TickPeriod <= 0 {
		return fmt.Errorf("%w: tick period must be positive, got %s", ErrInvalidConfig, c.TickPeriod)
	}
	if _, err := c.Distance(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Distance() (types.DistanceMode, error) {
	return types.ParseDistanceMode(c.DistanceMode)
}

func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(c.LogLevel)
}
