// Package config loads the courselab settings: defaults, overridden by an
// optional YAML file, overridden in turn by command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/i5heu/GoCourseLab/internal/logging"
	"github.com/i5heu/GoCourseLab/pkg/display"
)

// PathEnv names the YAML file when -config is not given.
const PathEnv = "COURSELAB_CONFIG"

var ErrInvalidConfig = errors.New("config: invalid value")

type BenchConfig struct {
	Iterations  int    `yaml:"iterations"`
	DurationMS  int    `yaml:"duration_ms"`
	Workers     []int  `yaml:"workers"`
	Capacity    int    `yaml:"capacity"`
	Batch       int    `yaml:"batch"`
	ResultsFile string `yaml:"results_file"`
}

type Config struct {
	Display  display.Config `yaml:"display"`
	Logging  logging.Config `yaml:"logging"`
	Capacity int            `yaml:"capacity"`
	TodoFile string         `yaml:"todo_file"`
	Bench    BenchConfig    `yaml:"bench"`
}

func Default() *Config {
	return &Config{
		Display:  display.Plain(),
		Logging:  logging.DefaultConfig(),
		Capacity: 5,
		TodoFile: "tasks.txt",
		Bench: BenchConfig{
			Iterations:  3,
			DurationMS:  200,
			Workers:     []int{1, 2, 4, 8},
			Capacity:    1024,
			Batch:       512,
			ResultsFile: "test-results.json",
		},
	}
}

// LoadYAML decodes the file at path over the values built by defaults.
// An empty path or a missing file yields the defaults without error.
func LoadYAML[T any](path string, defaults func() *T) (*T, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv reads KEY=VALUE pairs from files into the process environment
// without overriding variables that are already set. Missing files are
// skipped.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: env %s: %w", f, err)
		}
	}
	return nil
}

// Load resolves the YAML path (explicit path, then $COURSELAB_CONFIG) and
// returns the validated configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	cfg, err := LoadYAML(path, Default)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("%w: capacity %d, want >= 1", ErrInvalidConfig, c.Capacity)
	}
	if c.TodoFile == "" {
		return fmt.Errorf("%w: todo_file is empty", ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	b := c.Bench
	if b.Iterations < 1 || b.DurationMS < 1 || b.Capacity < 1 || b.Batch < 1 {
		return fmt.Errorf("%w: bench iterations, duration_ms, capacity and batch must be positive", ErrInvalidConfig)
	}
	if b.Batch > b.Capacity {
		return fmt.Errorf("%w: bench batch %d exceeds capacity %d", ErrInvalidConfig, b.Batch, b.Capacity)
	}
	for _, w := range b.Workers {
		if w < 1 {
			return fmt.Errorf("%w: bench worker count %d", ErrInvalidConfig, w)
		}
	}
	return nil
}
