// Package config loads the runtime configuration of the binaries from the
// environment and batch launch scenarios from YAML files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
)

// DefaultMaxSamples bounds the number of trajectory samples the service will
// compute for a single request.
const DefaultMaxSamples = 1_000_000

// TracingConfig governs how tracing is initialised.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	SampleRatio float64
}

// Config is the runtime configuration of the launch service.
type Config struct {
	HTTPAddr   string
	LogLevel   string
	LogFormat  string
	Tracing    TracingConfig
	Defaults   ballistic.LaunchParameters
	MaxSamples int
}

// FromEnv reads the configuration from environment variables, falling back
// to defaults for anything unset. Malformed numbers are reported as errors.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		HTTPAddr:   ":8080",
		LogLevel:   "info",
		LogFormat:  "text",
		Defaults:   ballistic.DefaultLaunchParameters(),
		MaxSamples: DefaultMaxSamples,
		Tracing: TracingConfig{
			ServiceName: "ballisticd",
			SampleRatio: 1.0,
		},
	}

	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	if v := get("BALLISTIC_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := get("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := get("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := get("BALLISTIC_MAX_SAMPLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config: BALLISTIC_MAX_SAMPLES must be a positive integer, got %q", v)
		}
		cfg.MaxSamples = n
	}

	cfg.Tracing.Enabled = strings.EqualFold(get("BALLISTIC_TRACING_ENABLED"), "true")
	if v := get("BALLISTIC_TRACING_SERVICE_NAME"); v != "" {
		cfg.Tracing.ServiceName = v
	}
	if v := get("BALLISTIC_TRACING_SAMPLE_RATIO"); v != "" {
		ratio, err := strconv.ParseFloat(v, 64)
		if err != nil || ratio < 0 || ratio > 1 {
			return Config{}, fmt.Errorf("config: BALLISTIC_TRACING_SAMPLE_RATIO must be within [0, 1], got %q", v)
		}
		cfg.Tracing.SampleRatio = ratio
	}

	defaults := []struct {
		key string
		dst *float64
	}{
		{"BALLISTIC_DEFAULT_SPEED", &cfg.Defaults.Speed},
		{"BALLISTIC_DEFAULT_ANGLE", &cfg.Defaults.Angle},
		{"BALLISTIC_DEFAULT_GRAVITY", &cfg.Defaults.Gravity},
		{"BALLISTIC_DEFAULT_STEP", &cfg.Defaults.Step},
	}
	for _, d := range defaults {
		v := get(d.key)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", d.key, err)
		}
		*d.dst = f
	}

	return cfg, nil
}
