// Package config loads game settings from an HCL file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joeshaw/envdecode"

	"github.com/lox/thyme/internal/game"
	"github.com/lox/thyme/internal/score"
)

// DefaultFile is the configuration file read when none is given
const DefaultFile = "thyme.hcl"

const (
	defaultScorer   = score.StandardKind
	defaultLogLevel = "info"
	defaultLogFile  = "thyme.log"
)

// Config represents the complete configuration
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	Log  *LogSettings  `hcl:"log,block"`
}

// GameSettings controls how games are dealt and scored
type GameSettings struct {
	Scorer   string `hcl:"scorer,optional"`
	Discards *int   `hcl:"discards,optional"`
	// Seed for the deck shuffle; 0 shuffles from the clock
	Seed int64 `hcl:"seed,optional"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// env holds the THYME_* overrides. Unset variables decode to zero values,
// except discards where zero is meaningful.
type env struct {
	Scorer   string `env:"THYME_SCORER"`
	Discards int    `env:"THYME_DISCARDS,default=-1"`
	Seed     int64  `env:"THYME_SEED"`
	LogLevel string `env:"THYME_LOG_LEVEL"`
	LogFile  string `env:"THYME_LOG_FILE"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	discards := game.DefaultDiscards
	return &Config{
		Game: &GameSettings{
			Scorer:   defaultScorer,
			Discards: &discards,
		},
		Log: &LogSettings{
			Level: defaultLogLevel,
			File:  defaultLogFile,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

// Load reads filename, applies environment overrides and validates the
// result.
func Load(filename string) (*Config, error) {
	config, err := LoadConfig(filename)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// ApplyEnv overrides settings from THYME_* environment variables.
// THYME_SEED=0 leaves the configured seed in place.
func (c *Config) ApplyEnv() error {
	var e env
	if err := envdecode.Decode(&e); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("failed to decode environment: %w", err)
	}

	if e.Scorer != "" {
		c.Game.Scorer = e.Scorer
	}
	if e.Discards >= 0 {
		c.Game.Discards = &e.Discards
	}
	if e.Seed != 0 {
		c.Game.Seed = e.Seed
	}
	if e.LogLevel != "" {
		c.Log.Level = e.LogLevel
	}
	if e.LogFile != "" {
		c.Log.File = e.LogFile
	}
	return nil
}

// DiscardBudget returns the configured discard budget
func (c *Config) DiscardBudget() int {
	if c.Game.Discards == nil {
		return game.DefaultDiscards
	}
	return *c.Game.Discards
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !slices.Contains(score.Kinds, c.Game.Scorer) {
		return fmt.Errorf("unknown scorer %q (want one of %v)", c.Game.Scorer, score.Kinds)
	}
	if c.DiscardBudget() < 0 {
		return fmt.Errorf("discards must not be negative, got %d", c.DiscardBudget())
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Game.Scorer == "" {
		c.Game.Scorer = defaultScorer
	}
	if c.Game.Discards == nil {
		discards := game.DefaultDiscards
		c.Game.Discards = &discards
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = defaultLogFile
	}
}
