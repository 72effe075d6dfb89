// Package config provides unified configuration loading for turgles.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nvandessel/turgles/internal/constants"
	"github.com/nvandessel/turgles/internal/walk"
	"gopkg.in/yaml.v3"
)

// Config contains all turgles configuration settings.
// A Config is read-only once a run starts.
type Config struct {
	// World contains the world geometry.
	World WorldConfig `json:"world" yaml:"world"`

	// Walk contains the random-walk parameters.
	Walk WalkConfig `json:"walk" yaml:"walk"`

	// Bench contains the benchmark sizing.
	Bench BenchConfig `json:"bench" yaml:"bench"`

	// Logging contains settings for operational and step logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// WorldConfig describes the bounded plane.
type WorldConfig struct {
	// HalfExtent is the coordinate beyond which the boundary policy triggers.
	HalfExtent float64 `json:"half_extent" yaml:"half_extent"`
}

// WalkConfig configures the per-turtle update.
type WalkConfig struct {
	// Speed is the distance travelled per unit of simulated time.
	Speed float64 `json:"speed" yaml:"speed"`

	// DT is the simulated time covered by one step.
	DT float64 `json:"dt" yaml:"dt"`

	// MaxDeviation is the largest heading change per step for uniform noise, in degrees.
	MaxDeviation float64 `json:"max_deviation" yaml:"max_deviation"`

	// TurnRate is the rate parameter for exponential noise.
	TurnRate float64 `json:"turn_rate" yaml:"turn_rate"`

	// Noise selects the turn-noise model: "uniform" or "exponential".
	Noise walk.NoiseModel `json:"noise" yaml:"noise"`

	// Boundary selects the boundary policy: "bounce" or "wrap".
	Boundary walk.BoundaryPolicy `json:"boundary" yaml:"boundary"`
}

// Magnitude returns the distance a turtle travels in one step.
func (w WalkConfig) Magnitude() float64 {
	return w.Speed * w.DT
}

// BenchConfig sizes a benchmark run.
type BenchConfig struct {
	// Population is the number of turtles.
	Population int `json:"population" yaml:"population"`

	// Steps is the number of timed steps.
	Steps int `json:"steps" yaml:"steps"`

	// Seed seeds every generator of the run.
	Seed uint64 `json:"seed" yaml:"seed"`

	// Workers bounds the goroutines stepping the population.
	Workers int `json:"workers" yaml:"workers"`

	// ChunkSize is the number of consecutive turtles sharing one noise stream.
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"`
}

// LoggingConfig configures turgles' logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" additionally traces each step's duration as JSONL.
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with the reference benchmark settings.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			HalfExtent: constants.DefaultHalfExtent,
		},
		Walk: WalkConfig{
			Speed:        constants.DefaultSpeed,
			DT:           constants.DefaultDT,
			MaxDeviation: constants.DefaultMaxDeviation,
			TurnRate:     constants.DefaultTurnRate,
			Noise:        walk.NoiseUniform,
			Boundary:     walk.Bounce,
		},
		Bench: BenchConfig{
			Population: constants.DefaultPopulation,
			Steps:      constants.DefaultSteps,
			Seed:       constants.DefaultSeed,
			Workers:    constants.DefaultWorkers,
			ChunkSize:  constants.DefaultChunkSize,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.turgles/config.yaml -> environment variables
func Load() (*Config, error) {
	config := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".turgles", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFrom loads configuration from path, or from the default locations
// when path is empty. Environment variables override the file either way.
func LoadFrom(path string) (*Config, error) {
	if path == "" {
		return Load()
	}

	config, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
// Fields missing from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
// Finiteness of the world and walk magnitudes is not checked.
func (c *Config) Validate() error {
	if !c.Walk.Noise.Valid() {
		return fmt.Errorf("invalid noise model: %s (valid: uniform, exponential)", c.Walk.Noise)
	}

	if !c.Walk.Boundary.Valid() {
		return fmt.Errorf("invalid boundary policy: %s (valid: bounce, wrap)", c.Walk.Boundary)
	}

	if c.Walk.Noise == walk.NoiseExponential && !(c.Walk.TurnRate > 0) {
		return fmt.Errorf("turn_rate must be positive for exponential noise, got %v", c.Walk.TurnRate)
	}

	if c.Bench.Population < 1 {
		return fmt.Errorf("population must be at least 1, got %d", c.Bench.Population)
	}

	if c.Bench.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", c.Bench.Steps)
	}

	if c.Bench.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Bench.Workers)
	}

	if c.Bench.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be at least 1, got %d", c.Bench.ChunkSize)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// WalkParams builds the kernel parameters for this configuration.
func (c *Config) WalkParams() (walk.Params, error) {
	noise, err := walk.NewTurnNoise(c.Walk.Noise, c.Walk.MaxDeviation, c.Walk.TurnRate)
	if err != nil {
		return walk.Params{}, err
	}
	return walk.Params{
		Magnitude:  c.Walk.Magnitude(),
		HalfExtent: c.World.HalfExtent,
		Boundary:   c.Walk.Boundary,
		Noise:      noise,
	}, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Values that do not parse are ignored.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("TURGLES_POPULATION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Bench.Population = n
		}
	}

	if v := os.Getenv("TURGLES_STEPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Bench.Steps = n
		}
	}

	if v := os.Getenv("TURGLES_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			config.Bench.Seed = n
		}
	}

	if v := os.Getenv("TURGLES_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Bench.Workers = n
		}
	}

	if v := os.Getenv("TURGLES_NOISE"); v != "" {
		config.Walk.Noise = walk.NoiseModel(v)
	}

	if v := os.Getenv("TURGLES_BOUNDARY"); v != "" {
		config.Walk.Boundary = walk.BoundaryPolicy(v)
	}

	if v := os.Getenv("TURGLES_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
