package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thyme.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		scorer   string
		discards int
		seed     int64
		level    string
		file     string
	}{
		{
			name: "full",
			content: `
game {
  scorer   = "vegas"
  discards = 3
  seed     = 42
}

log {
  level = "debug"
  file  = "/tmp/thyme-debug.log"
}
`,
			scorer:   "vegas",
			discards: 3,
			seed:     42,
			level:    "debug",
			file:     "/tmp/thyme-debug.log",
		},
		{
			name:     "defaults for missing values",
			content:  "game {}\n",
			scorer:   "standard",
			discards: 2,
			level:    "info",
			file:     "thyme.log",
		},
		{
			name:     "empty file",
			content:  "",
			scorer:   "standard",
			discards: 2,
			level:    "info",
			file:     "thyme.log",
		},
		{
			name: "zero discards is kept",
			content: `
game {
  discards = 0
}
log {}
`,
			scorer:   "standard",
			discards: 0,
			level:    "info",
			file:     "thyme.log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(writeConfig(t, tt.content))
			require.NoError(t, err)

			assert.Equal(t, tt.scorer, config.Game.Scorer)
			assert.Equal(t, tt.discards, config.DiscardBudget())
			assert.Equal(t, tt.seed, config.Game.Seed)
			assert.Equal(t, tt.level, config.Log.Level)
			assert.Equal(t, tt.file, config.Log.File)
			assert.NoError(t, config.Validate())
		})
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", `game {`},
		{"wrong type", "game {\n  discards = \"many\"\n}\nlog {}\n"},
		{"unknown attribute", "game {\n  lives = 3\n}\nlog {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("THYME_SCORER", "vegas")
	t.Setenv("THYME_DISCARDS", "0")
	t.Setenv("THYME_SEED", "7")
	t.Setenv("THYME_LOG_LEVEL", "warn")
	t.Setenv("THYME_LOG_FILE", "other.log")

	config := DefaultConfig()
	require.NoError(t, config.ApplyEnv())

	assert.Equal(t, "vegas", config.Game.Scorer)
	assert.Equal(t, 0, config.DiscardBudget())
	assert.Equal(t, int64(7), config.Game.Seed)
	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "other.log", config.Log.File)
}

func TestApplyEnvPartial(t *testing.T) {
	t.Setenv("THYME_SCORER", "vegas")

	config := DefaultConfig()
	require.NoError(t, config.ApplyEnv())

	assert.Equal(t, "vegas", config.Game.Scorer)
	assert.Equal(t, 2, config.DiscardBudget())
	assert.Equal(t, "info", config.Log.Level)
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("THYME_DISCARDS", "lots")

	config := DefaultConfig()
	assert.Error(t, config.ApplyEnv())
}

func TestLoadOverridesFileWithEnv(t *testing.T) {
	t.Setenv("THYME_DISCARDS", "5")

	path := writeConfig(t, "game {\n  scorer = \"vegas\"\n  discards = 1\n}\nlog {}\n")
	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "vegas", config.Game.Scorer)
	assert.Equal(t, 5, config.DiscardBudget())
}

func TestValidate(t *testing.T) {
	negative := -1

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"vegas", func(c *Config) { c.Game.Scorer = "vegas" }, false},
		{"unknown scorer", func(c *Config) { c.Game.Scorer = "blackjack" }, true},
		{"negative discards", func(c *Config) { c.Game.Discards = &negative }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)
			err := config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
