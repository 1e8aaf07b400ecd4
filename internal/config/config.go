package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/battlecalc/internal/game/damage"
	"github.com/udisondev/battlecalc/internal/ruleset"
)

// Calc holds all configuration for the battlecalc CLI. Environment
// variables override the file.
type Calc struct {
	LogLevel string `yaml:"log_level" env:"BATTLECALC_LOG_LEVEL"`

	// Engine
	Generation     int    `yaml:"generation"      env:"BATTLECALC_GENERATION"`
	CalcType       string `yaml:"calc_type"       env:"BATTLECALC_CALC_TYPE"`
	ReplaceFainted bool   `yaml:"replace_fainted" env:"BATTLECALC_REPLACE_FAINTED"`

	// Evaluation
	Workers int           `yaml:"workers" env:"BATTLECALC_WORKERS"` // scenarios evaluated at once
	Timeout time.Duration `yaml:"timeout" env:"BATTLECALC_TIMEOUT"` // whole run; 0 disables
}

// DefaultCalc returns Calc config with sensible defaults.
func DefaultCalc() Calc {
	return Calc{
		LogLevel:   "info",
		Generation: 8,
		CalcType:   string(damage.Average),
		Workers:    4,
		Timeout:    time.Minute,
	}
}

// LoadCalc loads config from a YAML file and applies environment overrides.
// If the file doesn't exist, the defaults are used.
func LoadCalc(path string) (Calc, error) {
	cfg := DefaultCalc()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c Calc) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Ruleset(); err != nil {
		return err
	}
	if _, err := damage.ParseCalcType(c.CalcType); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("negative timeout %s", c.Timeout)
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error" or an offset
// such as "info+2").
func (c Calc) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// Ruleset returns the ruleset for Generation.
func (c Calc) Ruleset() (ruleset.Ruleset, error) {
	return ruleset.ForGeneration(c.Generation)
}
