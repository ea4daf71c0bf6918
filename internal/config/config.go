package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/aoc2020/haversack"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultFile is looked up in the working directory when Load gets no path.
const DefaultFile = "aoc2020.toml"

// EnvPrefix marks environment variables read by Load.
const EnvPrefix = "AOC2020_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	Inputs    Inputs    `koanf:"inputs"`
	Seating   Seating   `koanf:"seating"`
	Haversack Haversack `koanf:"haversack"`
}

// Inputs locates puzzle input files.
type Inputs struct {
	Dir string `koanf:"dir"`
}

// Seating configures the day 11 automaton.
type Seating struct {
	Input              string `koanf:"input"`
	MaxIterations      int    `koanf:"max_iterations"`
	AdjacencyTolerance int    `koanf:"adjacency_tolerance"`
	SightTolerance     int    `koanf:"sight_tolerance"`
}

// Haversack configures the day 7 bag graph.
type Haversack struct {
	Input           string `koanf:"input"`
	Target          string `koanf:"target"`
	DuplicatePolicy string `koanf:"duplicate_policy"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the configuration from all layers. An empty path falls back
// to DefaultFile when it exists; an explicit path must exist. overrides
// uses dotted keys ("seating.max_iterations") and may be nil.
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. User file
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flag overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps AOC2020_SEATING_MAX_ITERATIONS to seating.max_iterations.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// Validate rejects settings the puzzle packages cannot run with.
func (c *Config) Validate() error {
	if c.Seating.MaxIterations <= 0 {
		return fmt.Errorf("%w: seating.max_iterations must be positive, got %d", ErrInvalid, c.Seating.MaxIterations)
	}
	for key, v := range map[string]int{
		"seating.adjacency_tolerance": c.Seating.AdjacencyTolerance,
		"seating.sight_tolerance":     c.Seating.SightTolerance,
	} {
		if v < 1 || v > 8 {
			return fmt.Errorf("%w: %s must be between 1 and 8, got %d", ErrInvalid, key, v)
		}
	}
	if strings.TrimSpace(c.Haversack.Target) == "" {
		return fmt.Errorf("%w: haversack.target is empty", ErrInvalid)
	}
	if _, err := haversack.ParseDuplicatePolicy(c.Haversack.DuplicatePolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// DuplicatePolicy returns the parsed haversack duplicate policy.
func (c *Config) DuplicatePolicy() haversack.DuplicatePolicy {
	p, _ := haversack.ParseDuplicatePolicy(c.Haversack.DuplicatePolicy)
	return p
}

// InputPath resolves an input file against inputs.dir unless it is absolute.
func (c *Config) InputPath(p string) string {
	if filepath.IsAbs(p) || c.Inputs.Dir == "" {
		return p
	}

	return filepath.Join(c.Inputs.Dir, p)
}
