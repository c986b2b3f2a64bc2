package config

import (
	"fmt"
	"os"

	"github.com/jonathanmweiss/go-polycalc/field"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the polycalc configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Calculator CalculatorConfig `yaml:"calculator"`
}

// LoggingConfig configures the debug log. Nothing is logged unless DebugMode
// is set.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"` // debug, info, warn, error
}

type CalculatorConfig struct {
	// TraceStack logs the whole stack after every input line.
	TraceStack bool `yaml:"trace_stack"`

	// MaxLineBytes bounds one input line. Zero means the calculator default.
	MaxLineBytes int `yaml:"max_line_bytes"`

	// FingerprintPrime is the field order used by FINGERPRINT. Zero means
	// field.DefaultPrime.
	FingerprintPrime uint64 `yaml:"fingerprint_prime"`
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "debug",
		},
		Calculator: CalculatorConfig{
			FingerprintPrime: field.DefaultPrime,
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}

	if c.Calculator.MaxLineBytes < 0 {
		return fmt.Errorf("max_line_bytes must not be negative, got %d", c.Calculator.MaxLineBytes)
	}

	if p := c.Calculator.FingerprintPrime; p != 0 {
		if _, err := field.NewPrimeField(p); err != nil {
			return fmt.Errorf("invalid fingerprint_prime %d: %w", p, err)
		}
	}

	return nil
}

// ZapLevel is the parsed logging level. Call Validate first.
func (c *Config) ZapLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.DebugLevel
	}

	return lvl
}
