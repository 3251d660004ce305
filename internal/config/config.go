// Package config resolves solver settings from defaults, a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"qmaze/internal/engine"
	"qmaze/internal/maze"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "QMAZE_"

// Config holds the learning parameters and I/O locations.
type Config struct {
	Alpha    float64 `yaml:"alpha"`     // Learning rate, (0,1]
	Gamma    float64 `yaml:"gamma"`     // Discount factor, [0,1)
	Epsilon  float64 `yaml:"epsilon"`   // Exploration rate, [0,1]
	Episodes int     `yaml:"episodes"`  // Training episodes
	MaxSteps int     `yaml:"max_steps"` // Step cap per episode and for path extraction
	Seed     int64   `yaml:"seed"`      // Random seed, 0 means 1
	Input    string  `yaml:"input"`     // Grid file to solve
	Output   string  `yaml:"output"`    // Solved grid file
	Report   string  `yaml:"report"`    // Optional HTML training report
}

// Default returns the stock parameters.
func Default() Config {
	return Config{
		Alpha:    engine.DefaultAlpha,
		Gamma:    engine.DefaultGamma,
		Epsilon:  engine.DefaultEpsilon,
		Episodes: engine.DefaultEpisodes,
		MaxSteps: engine.DefaultMaxSteps,
		Seed:     1,
		Output:   maze.DefaultOutputPath,
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys missing from the file keep their value.
func LoadFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// FromEnv overlays QMAZE_* variables onto cfg.
func FromEnv(cfg Config) (Config, error) {
	var err error
	if cfg.Alpha, err = envFloat("ALPHA", cfg.Alpha); err != nil {
		return cfg, err
	}
	if cfg.Gamma, err = envFloat("GAMMA", cfg.Gamma); err != nil {
		return cfg, err
	}
	if cfg.Epsilon, err = envFloat("EPSILON", cfg.Epsilon); err != nil {
		return cfg, err
	}
	if cfg.Episodes, err = envInt("EPISODES", cfg.Episodes); err != nil {
		return cfg, err
	}
	if cfg.MaxSteps, err = envInt("MAX_STEPS", cfg.MaxSteps); err != nil {
		return cfg, err
	}
	seed, err := envInt("SEED", int(cfg.Seed))
	if err != nil {
		return cfg, err
	}
	cfg.Seed = int64(seed)
	cfg.Input = envString("INPUT", cfg.Input)
	cfg.Output = envString("OUTPUT", cfg.Output)
	cfg.Report = envString("REPORT", cfg.Report)
	return cfg, nil
}

// Validate checks the parameter ranges.
func (c Config) Validate() error {
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0,1] (got %.2f)", c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma >= 1 {
		return fmt.Errorf("gamma must be in [0,1) (got %.2f)", c.Gamma)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be between 0 and 1 (got %.2f)", c.Epsilon)
	}
	if c.Episodes <= 0 {
		return fmt.Errorf("episodes must be positive (got %d)", c.Episodes)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps must be positive (got %d)", c.MaxSteps)
	}
	return nil
}

// EngineConfig converts to the trainer's parameters.
func (c Config) EngineConfig() engine.Config {
	return engine.Config{
		Alpha:    c.Alpha,
		Gamma:    c.Gamma,
		Epsilon:  c.Epsilon,
		Episodes: c.Episodes,
		MaxSteps: c.MaxSteps,
	}
}

// NormalizedSeed maps the zero seed to 1.
func (c Config) NormalizedSeed() int64 {
	if c.Seed == 0 {
		return 1
	}
	return c.Seed
}

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(EnvPrefix + key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("%s%s must be an integer: %w", EnvPrefix, key, err)
	}
	return parsed, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s%s must be a number: %w", EnvPrefix, key, err)
	}
	return parsed, nil
}
