// Package config provides configuration loading and construction-time validation for the optimization engine.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// weightSumTolerance is the allowed deviation of the dimension weight sum from 1.0.
const weightSumTolerance = 0.01

// Error represents a fatal configuration error detected at construction time.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Config holds every knob of the optimization engine. A validated Config is
// constructed once and passed by reference into the scorer, generator, and
// iteration controller; there is no ambient global configuration.
type Config struct {
	// Convergence policy
	TargetScore         float64 `json:"target_score,omitempty"`
	MaxIterations       int     `json:"max_iterations,omitempty"`
	EarlyStoppingRounds int     `json:"early_stopping_rounds,omitempty"`
	MinImprovement      float64 `json:"min_improvement,omitempty"`

	// Scoring
	DimensionWeights types.DimensionWeights `json:"dimension_weights,omitempty"`

	// Agent communication
	TimeoutMs    int64 `json:"timeout_ms,omitempty"`
	MaxRetries   int   `json:"max_retries,omitempty"`
	RetryDelayMs int64 `json:"retry_delay_ms,omitempty"`

	// Completion service
	APIKey string `json:"api_key,omitempty"`

	// CLI behavior
	Verbose    bool `json:"verbose,omitempty"`
	UseBrowser bool `json:"use_browser,omitempty"`
}

// Default returns the engine defaults documented in the configuration surface.
func Default() *Config {
	return &Config{
		TargetScore:         0.8,
		MaxIterations:       10,
		EarlyStoppingRounds: 2,
		MinImprovement:      0.01,
		DimensionWeights: types.DimensionWeights{
			Keyword:    0.20,
			Skills:     0.30,
			Attributes: 0.15,
			Experience: 0.25,
			Level:      0.10,
		},
		TimeoutMs:    30000,
		MaxRetries:   2,
		RetryDelayMs: 1000,
	}
}

// Load reads configuration from a JSON file, fills unset fields from the
// defaults and the environment, and validates the result. An invalid
// configuration is a fatal construction-time error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		var fileCfg Config
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
		cfg.merge(&fileCfg)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge overlays non-zero fields from other onto c.
func (c *Config) merge(other *Config) {
	if other.TargetScore != 0 {
		c.TargetScore = other.TargetScore
	}
	if other.MaxIterations != 0 {
		c.MaxIterations = other.MaxIterations
	}
	if other.EarlyStoppingRounds != 0 {
		c.EarlyStoppingRounds = other.EarlyStoppingRounds
	}
	if other.MinImprovement != 0 {
		c.MinImprovement = other.MinImprovement
	}
	if other.DimensionWeights.Sum() != 0 {
		c.DimensionWeights = other.DimensionWeights
	}
	if other.TimeoutMs != 0 {
		c.TimeoutMs = other.TimeoutMs
	}
	if other.MaxRetries != 0 {
		c.MaxRetries = other.MaxRetries
	}
	if other.RetryDelayMs != 0 {
		c.RetryDelayMs = other.RetryDelayMs
	}
	if other.APIKey != "" {
		c.APIKey = other.APIKey
	}
	if other.Verbose {
		c.Verbose = true
	}
	if other.UseBrowser {
		c.UseBrowser = true
	}
}

// applyEnv fills fields from environment variables when set.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" && c.APIKey == "" {
		c.APIKey = v
	}
	if v := os.Getenv("RESUME_OPTIMIZER_TARGET_SCORE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.TargetScore = f
		}
	}
	if v := os.Getenv("RESUME_OPTIMIZER_MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxIterations = n
		}
	}
	if v := os.Getenv("RESUME_OPTIMIZER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.TimeoutMs = n
		}
	}
}

// Validate checks every field against its documented range. The engine never
// starts a run with an invalid configuration.
func (c *Config) Validate() error {
	if c.TargetScore < 0 || c.TargetScore > 1 || math.IsNaN(c.TargetScore) {
		return &Error{Field: "target_score", Message: "must be in [0,1]"}
	}
	if c.MaxIterations < 1 {
		return &Error{Field: "max_iterations", Message: "must be at least 1"}
	}
	if c.EarlyStoppingRounds < 1 {
		return &Error{Field: "early_stopping_rounds", Message: "must be at least 1"}
	}
	if c.MinImprovement < 0 || math.IsNaN(c.MinImprovement) {
		return &Error{Field: "min_improvement", Message: "must be non-negative"}
	}
	if c.TimeoutMs <= 0 {
		return &Error{Field: "timeout_ms", Message: "must be positive"}
	}
	if c.MaxRetries < 0 {
		return &Error{Field: "max_retries", Message: "must be non-negative"}
	}
	if c.RetryDelayMs < 0 {
		return &Error{Field: "retry_delay_ms", Message: "must be non-negative"}
	}

	w := c.DimensionWeights
	for _, pair := range []struct {
		name  string
		value float64
	}{
		{"dimension_weights.keyword", w.Keyword},
		{"dimension_weights.skills", w.Skills},
		{"dimension_weights.attributes", w.Attributes},
		{"dimension_weights.experience", w.Experience},
		{"dimension_weights.level", w.Level},
	} {
		if pair.value < 0 || pair.value > 1 || math.IsNaN(pair.value) {
			return &Error{Field: pair.name, Message: "must be in [0,1]"}
		}
	}
	if math.Abs(w.Sum()-1.0) > weightSumTolerance {
		return &Error{
			Field:   "dimension_weights",
			Message: fmt.Sprintf("must sum to 1.0 ±%.2f, got %.4f", weightSumTolerance, w.Sum()),
		}
	}

	return nil
}

// Timeout returns the per-call agent timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// RetryDelay returns the delay between caller-level dispatch retries.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}
