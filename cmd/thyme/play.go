package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/thyme/internal/board"
	"github.com/lox/thyme/internal/config"
	"github.com/lox/thyme/internal/deck"
	"github.com/lox/thyme/internal/game"
	"github.com/lox/thyme/internal/score"
	"github.com/lox/thyme/internal/tui"
)

type PlayCmd struct {
	Config   string `short:"c" type:"path" default:"thyme.hcl" help:"HCL configuration file"`
	Scorer   string `help:"Scoring strategy (standard or vegas)"`
	Discards int    `default:"-1" help:"Discard budget (-1 uses the configuration)"`
	Seed     int64  `help:"Shuffle seed (0 shuffles from the clock)"`
	LogFile  string `type:"path" help:"Log file (the terminal belongs to the game)"`
	LogLevel string `help:"Log level (debug, info, warn, error)"`
	NoColor  bool   `help:"Disable colors"`
}

func (c *PlayCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "thyme",
		Level:           level,
	})

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	b, err := board.Deal(deck.NewShuffled(seed))
	if err != nil {
		return fmt.Errorf("failed to deal: %w", err)
	}
	scorer, err := score.New(cfg.Game.Scorer, b.LuckyCard())
	if err != nil {
		return err
	}
	g, err := game.New(b, scorer, cfg.DiscardBudget(), game.WithLogger(logger.WithPrefix("game")))
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	logger.Info("Dealt board", "game", g.ID(), "seed", seed, "scorer", scorer.Name())

	program := tea.NewProgram(tui.New(g, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	fmt.Printf("%s  score %s  (seed %d)\n", g.Status(), scorer.FormatAsScore(g.Score()), seed)
	return nil
}

// loadConfig reads the configuration file and environment, then applies
// any flags given on the command line.
func (c *PlayCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if c.Scorer != "" {
		cfg.Game.Scorer = c.Scorer
	}
	if c.Discards >= 0 {
		cfg.Game.Discards = &c.Discards
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
