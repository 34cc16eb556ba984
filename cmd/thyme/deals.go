package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/thyme/internal/fileutil"
	"github.com/lox/thyme/internal/hand"
	"github.com/lox/thyme/internal/score"
	"github.com/lox/thyme/internal/statistics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(28)
)

type DealsCmd struct {
	Count    int    `short:"n" default:"1000" help:"Number of deals"`
	Seed     int64  `default:"1" help:"Seed of the first deal"`
	Workers  int    `short:"w" default:"0" help:"Worker goroutines (0 uses one per CPU)"`
	Discards int    `default:"2" help:"Discard budget for the greedy playout"`
	Scorer   string `default:"standard" enum:"standard,vegas" help:"Scoring strategy for the greedy playout"`
	Output   string `short:"o" type:"path" help:"Also write per-deal results to this CSV file"`
	Verbose  bool   `help:"Log progress to stderr"`
}

func (c *DealsCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	level := log.WarnLevel
	if c.Verbose {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "deals",
		Level:           level,
	})

	summary, err := statistics.Analyze(ctx, statistics.Options{
		Count:    c.Count,
		Seed:     c.Seed,
		Workers:  c.Workers,
		Discards: c.Discards,
		Scorer:   c.Scorer,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("failed to analyse deals: %w", err)
	}
	if err := summary.Playable.Validate(); err != nil {
		return fmt.Errorf("inconsistent statistics: %w", err)
	}

	if c.Output != "" {
		if err := fileutil.WriteAtomic(c.Output, 0o644, summary.WriteCSV); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.Output, err)
		}
		logger.Info("Wrote deal results", "file", c.Output, "deals", summary.Deals)
	}

	fmt.Println(renderSummary(c, summary))
	return nil
}

func renderSummary(c *DealsCmd, s *statistics.Summary) string {
	var out strings.Builder

	out.WriteString(titleStyle.Render(fmt.Sprintf("♠ ♥ %d deals from seed %d ♦ ♣", s.Deals, c.Seed)))
	out.WriteString("\n\n")

	row := func(label, value string) {
		out.WriteString(labelStyle.Render(label))
		out.WriteString(value)
		out.WriteString("\n")
	}

	low, high := s.Playable.ConfidenceInterval95()
	row("Opening hands per deal", fmt.Sprintf("mean %.2f (95%% CI %.2f-%.2f), sd %.2f",
		s.Playable.Mean(), low, high, s.Playable.StdDev()))
	row("", fmt.Sprintf("median %.0f, p10 %.0f, p90 %.0f",
		s.Playable.Median(), s.Playable.Percentile(0.1), s.Playable.Percentile(0.9)))
	row("Deals without an opening", fmt.Sprintf("%d (%s)", s.NoOpening, percent(s.NoOpening, s.Deals)))
	row("Greedy "+c.Scorer+" wins", fmt.Sprintf("%d (%s)", s.Wins, percent(s.Wins, s.Deals)))
	row("Greedy score", fmt.Sprintf("mean %.1f, median %.0f, max %.0f",
		s.Scores.Mean(), s.Scores.Median(), s.Scores.Percentile(1)))

	out.WriteString("\n")
	out.WriteString(titleStyle.Render("Best opening hand"))
	out.WriteString("\n")
	for _, h := range hand.Types {
		label := h.String()
		if h == hand.Trash {
			label = "None"
		}
		row("  "+label, fmt.Sprintf("%6d  %s", s.BestHands[h], percent(s.BestHands[h], s.Deals)))
	}

	if c.Scorer == score.VegasKind {
		out.WriteString("\nVegas scores include the cleared-stack multiplier.\n")
	}
	return strings.TrimRight(out.String(), "\n")
}

func percent(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}
