package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"liftsim/src/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad_MissingFilesGiveDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "nope.yaml"), filepath.Join(dir, "nope.env"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Expected defaults.\nExpected: %+v\nWas: %+v", Default(), cfg)
	}
}

func TestLoad_YAMLThenEnvFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "liftsim.yaml", "floors: 10\nlifts: 3\ntick: 500ms\ndistance: corrected\n")
	envPath := writeFile(t, dir, ".env", "LIFTSIM_LIFTS=5\nLIFTSIM_LOG_LEVEL=debug\nLIFTSIM_LOG_FILE=run.log\n")

	cfg, err := Load(yamlPath, envPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	expected := Config{
		NumFloors:    10,
		NumLifts:     5,
		TickPeriod:   500 * time.Millisecond,
		DistanceMode: "corrected",
		LogLevel:     "debug",
		LogFile:      "run.log",
	}
	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf("Config not as expected.\nExpected: %+v\nWas: %+v", expected, cfg)
	}
}

func TestLoad_ProcessEnvBeatsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "LIFTSIM_FLOORS=7\n")
	t.Setenv(EnvFloors, "12")

	cfg, err := Load("", envPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NumFloors != 12 {
		t.Errorf("Expected floors 12 from process env, got %d", cfg.NumFloors)
	}
}

func TestLoad_BadValues(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"floors": "LIFTSIM_FLOORS=many\n",
		"lifts":  "LIFTSIM_LIFTS=1.5\n",
		"tick":   "LIFTSIM_TICK=soon\n",
	}
	for name, content := range cases {
		envPath := writeFile(t, dir, name+".env", content)
		if _, err := Load("", envPath); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}

	yamlPath := writeFile(t, dir, "bad.yaml", "floors: [1, 2\n")
	if _, err := Load(yamlPath, ""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("yaml: expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := Default()
	if err := valid.Validate(); err != nil {
		t.Fatalf("Default config rejected: %v", err)
	}

	mutations := map[string]func(c *Config){
		"zero floors":      func(c *Config) { c.NumFloors = 0 },
		"negative lifts":   func(c *Config) { c.NumLifts = -1 },
		"zero tick":        func(c *Config) { c.TickPeriod = 0 },
		"unknown mode":     func(c *Config) { c.DistanceMode = "fastest" },
		"unknown loglevel": func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range mutations {
		c := Default()
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestDistance(t *testing.T) {
	c := Default()
	c.DistanceMode = "Corrected"
	mode, err := c.Distance()
	if err != nil || mode != types.DistanceCorrected {
		t.Errorf("Expected corrected mode, got %v (err %v)", mode, err)
	}
}
