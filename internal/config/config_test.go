package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2020/haversack"
	"github.com/katalvlaran/aoc2020/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "aoc2020.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	return p
}

// clearEnv unsets every AOC2020_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, config.EnvPrefix) {
			t.Setenv(key, "") // restores the old value on cleanup
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	// a value left over in the developer's shell must not leak in
	t.Setenv("AOC2020_SEATING_MAX_ITERATIONS", "7")
	clearEnv(t)

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Inputs.Dir)
	assert.Equal(t, "day-11/input", cfg.Seating.Input)
	assert.Equal(t, 250, cfg.Seating.MaxIterations)
	assert.Equal(t, 4, cfg.Seating.AdjacencyTolerance)
	assert.Equal(t, 5, cfg.Seating.SightTolerance)
	assert.Equal(t, "shiny gold", cfg.Haversack.Target)
	assert.Equal(t, haversack.DuplicateWarn, cfg.DuplicatePolicy())
}

func TestLoad_Layers(t *testing.T) {
	path := writeFile(t, `
[inputs]
dir = "/srv/aoc"

[seating]
max_iterations = 100

[haversack]
target = "dark olive"
duplicate_policy = "reject"
`)
	clearEnv(t)
	t.Setenv("AOC2020_SEATING_MAX_ITERATIONS", "50")
	t.Setenv("AOC2020_SEATING_SIGHT_TOLERANCE", "6")

	cfg, err := config.Load(path, map[string]interface{}{"haversack.target": "faded blue"})
	require.NoError(t, err)

	assert.Equal(t, "/srv/aoc", cfg.Inputs.Dir)
	assert.Equal(t, 50, cfg.Seating.MaxIterations, "env beats file")
	assert.Equal(t, 6, cfg.Seating.SightTolerance)
	assert.Equal(t, 4, cfg.Seating.AdjacencyTolerance, "default kept")
	assert.Equal(t, "faded blue", cfg.Haversack.Target, "override beats file")
	assert.Equal(t, haversack.DuplicateReject, cfg.DuplicatePolicy())
	assert.Equal(t, filepath.Join("/srv/aoc", "day-7/input"), cfg.InputPath(cfg.Haversack.Input))
	assert.Equal(t, "/tmp/x", cfg.InputPath("/tmp/x"))
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{"ZeroIterations", "[seating]\nmax_iterations = 0\n"},
		{"ToleranceTooHigh", "[seating]\nadjacency_tolerance = 9\n"},
		{"EmptyTarget", "[haversack]\ntarget = \" \"\n"},
		{"UnknownPolicy", "[haversack]\nduplicate_policy = \"ignore\"\n"},
	}
	clearEnv(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.toml), nil)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}
