package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/thyme/internal/statistics"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("thyme"), kong.Vars{"version": version})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseCommands(t *testing.T) {
	cli, ctx := parse(t, "play", "--scorer", "vegas", "--discards", "0", "--seed", "9")
	assert.Equal(t, "play", ctx.Command())
	assert.Equal(t, "vegas", cli.Play.Scorer)
	assert.Equal(t, 0, cli.Play.Discards)
	assert.Equal(t, int64(9), cli.Play.Seed)

	cli, ctx = parse(t, "deals", "-n", "50", "--workers", "3")
	assert.Equal(t, "deals", ctx.Command())
	assert.Equal(t, 50, cli.Deals.Count)
	assert.Equal(t, 3, cli.Deals.Workers)
	assert.Equal(t, "standard", cli.Deals.Scorer)

	cli, _ = parse(t, "play")
	assert.Equal(t, -1, cli.Play.Discards)
}

func TestPlayLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thyme.hcl")
	require.NoError(t, os.WriteFile(path, []byte("game {\n  scorer = \"vegas\"\n  discards = 1\n  seed = 5\n}\n"), 0o644))

	t.Run("file", func(t *testing.T) {
		cmd := &PlayCmd{Config: path, Discards: -1}
		cfg, err := cmd.loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "vegas", cfg.Game.Scorer)
		assert.Equal(t, 1, cfg.DiscardBudget())
		assert.Equal(t, int64(5), cfg.Game.Seed)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("THYME_DISCARDS", "3")
		cmd := &PlayCmd{Config: path, Discards: -1}
		cfg, err := cmd.loadConfig()
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.DiscardBudget())
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("THYME_DISCARDS", "3")
		cmd := &PlayCmd{Config: path, Scorer: "standard", Discards: 0, Seed: 11, LogLevel: "debug"}
		cfg, err := cmd.loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "standard", cfg.Game.Scorer)
		assert.Equal(t, 0, cfg.DiscardBudget())
		assert.Equal(t, int64(11), cfg.Game.Seed)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("invalid flag", func(t *testing.T) {
		cmd := &PlayCmd{Config: path, Scorer: "blackjack", Discards: -1}
		_, err := cmd.loadConfig()
		assert.Error(t, err)
	})
}

func TestRenderSummary(t *testing.T) {
	cmd := &DealsCmd{Count: 4, Seed: 3, Discards: 2, Scorer: "standard"}
	summary, err := statistics.Analyze(context.Background(), statistics.Options{
		Count:    cmd.Count,
		Seed:     cmd.Seed,
		Discards: cmd.Discards,
		Scorer:   cmd.Scorer,
	})
	require.NoError(t, err)

	out := renderSummary(cmd, summary)
	assert.Contains(t, out, "4 deals from seed 3")
	assert.Contains(t, out, "Opening hands per deal")
	assert.Contains(t, out, "Best opening hand")
	assert.Contains(t, out, "Straight Flush")
	assert.Contains(t, out, "None")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0.0%", percent(0, 0))
	assert.Equal(t, "25.0%", percent(1, 4))
}
