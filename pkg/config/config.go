package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks a structurally invalid TikTakConfig: keep_ratio
// outside (0, 1], a non-positive N, theta_min > theta_max, or a non-positive
// local-search budget. Wrapped by Validate via %w so callers can errors.Is
// against it.
var ErrInvalidConfig = errors.New("config: invalid config")

// Config represents the tiktak coordinator configuration.
type Config struct {
	TikTak     TikTakConfig     `yaml:"tiktak"`
	Logging    LoggingConfig    `yaml:"logging"`
	Execution  ExecutionConfig  `yaml:"execution"`
	Checkpoint CheckpointConfig `yaml:"checkpoint"`
}

// TikTakConfig holds the numeric knobs for the sampler budget, the seed-keep
// ratio, the θ mixing schedule, and the two local-search budgets used by
// Phase B (the initial sweep) and Phase C (the cluster finisher).
type TikTakConfig struct {
	QuasirandomN      int           `yaml:"quasirandom_n"`
	KeepRatio         float64       `yaml:"keep_ratio"`
	ThetaMin          float64       `yaml:"theta_min"`
	ThetaMax          float64       `yaml:"theta_max"`
	ThetaPow          float64       `yaml:"theta_pow"`
	LocalMaxEvalInit  int           `yaml:"local_maxeval_initial"`
	LocalMaxEvalFinal int           `yaml:"local_maxeval_final"`
	LocalMaxTime      time.Duration `yaml:"local_maxtime"`
	LocalXTolAbs      float64       `yaml:"local_xtol_abs"`
	LocalXTolRel      float64       `yaml:"local_xtol_rel"`
}

// LoggingConfig controls the zerolog sink used throughout a solve run.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ExecutionConfig controls how evaluation work is parallelised across the
// evalpool.
type ExecutionConfig struct {
	Workers int `yaml:"workers"`
}

// CheckpointConfig controls whether and where checkpoint artifacts are
// written. An empty Dir disables checkpointing.
type CheckpointConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a default configuration, tuned for the benchmark
// catalogue's low-dimensional problems.
func DefaultConfig() *Config {
	return &Config{
		TikTak: TikTakConfig{
			QuasirandomN:      10000,
			KeepRatio:         0.1,
			ThetaMin:          0.1,
			ThetaMax:          0.995,
			ThetaPow:          0.5,
			LocalMaxEvalInit:  100,
			LocalMaxEvalFinal: 1000,
			LocalMaxTime:      30 * time.Second,
			LocalXTolAbs:      1e-8,
			LocalXTolRel:      1e-8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Execution: ExecutionConfig{
			Workers: 8,
		},
		Checkpoint: CheckpointConfig{
			Dir: "",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file doesn't exist. ${VAR}-style environment references in the file
// are expanded before parsing.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = "tiktak.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expandedData := []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(expandedData, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration against the InvalidConfig error
// taxonomy: bounds, ratios and budgets must all be well-formed before a
// solve is allowed to start.
func (c *Config) Validate() error {
	t := c.TikTak

	if t.QuasirandomN <= 0 {
		return fmt.Errorf("%w: tiktak.quasirandom_n must be > 0", ErrInvalidConfig)
	}
	if t.KeepRatio <= 0 || t.KeepRatio > 1 {
		return fmt.Errorf("%w: tiktak.keep_ratio must be in (0, 1], got %v", ErrInvalidConfig, t.KeepRatio)
	}
	if t.ThetaMin <= 0 || t.ThetaMin >= 1 {
		return fmt.Errorf("%w: tiktak.theta_min must be in (0, 1), got %v", ErrInvalidConfig, t.ThetaMin)
	}
	if t.ThetaMax <= 0 || t.ThetaMax >= 1 {
		return fmt.Errorf("%w: tiktak.theta_max must be in (0, 1), got %v", ErrInvalidConfig, t.ThetaMax)
	}
	if t.ThetaMin > t.ThetaMax {
		return fmt.Errorf("%w: tiktak.theta_min (%v) must be <= theta_max (%v)", ErrInvalidConfig, t.ThetaMin, t.ThetaMax)
	}
	if t.ThetaPow <= 0 {
		return fmt.Errorf("%w: tiktak.theta_pow must be > 0", ErrInvalidConfig)
	}
	if t.LocalMaxEvalInit <= 0 {
		return fmt.Errorf("%w: tiktak.local_maxeval_initial must be > 0", ErrInvalidConfig)
	}
	if t.LocalMaxEvalFinal <= 0 {
		return fmt.Errorf("%w: tiktak.local_maxeval_final must be > 0", ErrInvalidConfig)
	}
	if c.Execution.Workers < 0 {
		return fmt.Errorf("%w: execution.workers must be >= 0", ErrInvalidConfig)
	}

	return nil
}

// InitialN computes initial_N = ceil(keep_ratio * quasirandom_N), clamped
// to the range [1, quasirandom_N].
func (t TikTakConfig) InitialN() int {
	n := int(t.KeepRatio*float64(t.QuasirandomN) + 0.999999999)
	if n < 1 {
		n = 1
	}
	if n > t.QuasirandomN {
		n = t.QuasirandomN
	}
	return n
}
