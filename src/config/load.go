package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvFloors   = "LIFTSIM_FLOORS"
	EnvLifts    = "LIFTSIM_LIFTS"
	EnvTick     = "LIFTSIM_TICK"
	EnvDistance = "LIFTSIM_DISTANCE"
	EnvLogLevel = "LIFTSIM_LOG_LEVEL"
	EnvLogFile  = "LIFTSIM_LOG_FILE"
)

// Load layers configuration: defaults, then the yaml file, then the .env file,
// then the process environment. Missing files are skipped.
// The result is not validated; callers apply flags first.
func Load(yamlPath, envPath string) (Config, error) {
	cfg := Default()

	if err := loadYAML(yamlPath, &cfg); err != nil {
		return cfg, err
	}

	fileEnv, err := readEnvFile(envPath)
	if err != nil {
		return cfg, err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return env, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFloors); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvFloors, v)
		}
		cfg.NumFloors = n
	}
	if v, ok := lookup(EnvLifts); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvLifts, v)
		}
		cfg.NumLifts = n
	}
	if v, ok := lookup(EnvTick); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvTick, v)
		}
		cfg.TickPeriod = d
	}
	if v, ok := lookup(EnvDistance); ok {
		cfg.DistanceMode = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	return nil
}
