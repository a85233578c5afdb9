package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// demoConfig mirrors the handler options that make sense to toggle
// from outside: a YAML file for the numbers, environment flags for the
// booleans.
type demoConfig struct {
	MinSwipeDistance   float32 `yaml:"min_swipe_distance"`
	Momentum           bool    `yaml:"momentum"`
	MomentumMultiplier float32 `yaml:"momentum_multiplier"`
	Snap               bool    `yaml:"snap_to_sections"`
	Feedback           bool    `yaml:"feedback"`
}

func defaultDemoConfig() demoConfig {
	return demoConfig{
		MinSwipeDistance:   30,
		Momentum:           true,
		MomentumMultiplier: 2.5,
		Snap:               true,
		Feedback:           true,
	}
}

// loadConfig reads path if it exists, then overlays the environment
// flags. A missing file is not an error; a malformed one is, with the
// defaults returned alongside so the caller can keep going.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultDemoConfig()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		applyEnv(&cfg)
		return cfg, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			applyEnv(&cfg)
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays the boolean flags FLICK_MOMENTUM, FLICK_SNAP and
// FLICK_FEEDBACK. Values strconv.ParseBool doesn't understand are
// ignored.
func applyEnv(cfg *demoConfig) {
	flags := []struct {
		name string
		dst  *bool
	}{
		{"FLICK_MOMENTUM", &cfg.Momentum},
		{"FLICK_SNAP", &cfg.Snap},
		{"FLICK_FEEDBACK", &cfg.Feedback},
	}
	for _, flag := range flags {
		v, ok := os.LookupEnv(flag.name)
		if !ok {
			continue
		}
		if b, err := strconv.ParseBool(v); err == nil {
			*flag.dst = b
		}
	}
}
