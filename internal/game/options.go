package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Option configures a Game during creation
type Option func(*Game)

// WithLogger sets the logger used to record plays
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithClock sets the clock used to timestamp plays
func WithClock(clock quartz.Clock) Option {
	return func(g *Game) {
		g.clock = clock
	}
}

// WithID sets the identifier reported in logs
func WithID(id string) Option {
	return func(g *Game) {
		g.id = id
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
