package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, DefaultMaxSamples, cfg.MaxSamples)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
	assert.Equal(t, ballistic.DefaultLaunchParameters(), cfg.Defaults)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{
		"BALLISTIC_HTTP_ADDR":            "127.0.0.1:9000",
		"LOG_LEVEL":                      "debug",
		"LOG_FORMAT":                     "json",
		"BALLISTIC_MAX_SAMPLES":          "5000",
		"BALLISTIC_TRACING_ENABLED":      "TRUE",
		"BALLISTIC_TRACING_SAMPLE_RATIO": "0.25",
		"BALLISTIC_DEFAULT_GRAVITY":      "9.81",
		"BALLISTIC_DEFAULT_STEP":         " 0.01 ",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5000, cfg.MaxSamples)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRatio)
	assert.Equal(t, 9.81, cfg.Defaults.Gravity)
	assert.Equal(t, 0.01, cfg.Defaults.Step)
	assert.Equal(t, 10.0, cfg.Defaults.Speed)
}

func TestFromEnvRejectsMalformedValues(t *testing.T) {
	for key, value := range map[string]string{
		"BALLISTIC_MAX_SAMPLES":          "-1",
		"BALLISTIC_TRACING_SAMPLE_RATIO": "2",
		"BALLISTIC_DEFAULT_SPEED":        "fast",
	} {
		_, err := fromLookup(lookupFrom(map[string]string{key: value}))
		assert.Error(t, err, key)
	}
}

func TestPartialParametersMerge(t *testing.T) {
	angle, y := 75.0, 0.0
	got := PartialParameters{Angle: &angle, LaunchY: &y}.Merge(ballistic.LaunchParameters{
		Speed: 3, Angle: 10, Gravity: 1.62, LaunchX: 4, LaunchY: 5, Step: 0.5,
	})
	assert.Equal(t, ballistic.LaunchParameters{
		Speed: 3, Angle: 75, Gravity: 1.62, LaunchX: 4, LaunchY: 0, Step: 0.5,
	}, got)
}

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario(strings.NewReader(`
defaults:
  gravity: 9.81
  step: 0.001
launches:
  - name: lob
    speed: 12
    angle: 70
    plot: lob.png
  - speed: 30
    angle: 10
    gravity: 1.62
    ascii: true
  - {}
`))
	require.NoError(t, err)
	require.Len(t, s.Launches, 3)

	lob := s.Launches[0]
	assert.Equal(t, "lob", lob.Name)
	assert.Equal(t, "lob.png", lob.Plot)
	assert.Equal(t, ballistic.LaunchParameters{Speed: 12, Angle: 70, Gravity: 9.81, Step: 0.001}, lob.Parameters)

	second := s.Launches[1]
	assert.Equal(t, "launch-2", second.Name)
	assert.True(t, second.ASCII)
	assert.Equal(t, 1.62, second.Parameters.Gravity)

	third := s.Launches[2]
	assert.Equal(t, ballistic.LaunchParameters{Speed: 10, Angle: 20, Gravity: 9.81, Step: 0.001}, third.Parameters)
}

func TestParseScenarioErrors(t *testing.T) {
	_, err := ParseScenario(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyScenario)

	_, err = ParseScenario(strings.NewReader("launches: []\n"))
	assert.ErrorIs(t, err, ErrEmptyScenario)

	_, err = ParseScenario(strings.NewReader("launches:\n  - speed: 1\n    drag: 0.3\n"))
	assert.Error(t, err)
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("launches:\n  - angle: 45\n"), 0o600))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 45.0, s.Launches[0].Parameters.Angle)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
