// Package score converts played hands into points. Two strategies are
// provided: Standard, which rewards every hand and doubles hands holding the
// lucky suit, and Vegas, which pays only for lucky hands but multiplies the
// final total by the stacks cleared.
package score

import (
	"fmt"
	"slices"
	"time"

	"github.com/lox/thyme/internal/board"
	"github.com/lox/thyme/internal/deck"
	"github.com/lox/thyme/internal/hand"
)

// Play describes a committed move
type Play struct {
	// Cards played
	Cards []deck.Card
	// Positions whose stacks were emptied by this play
	ClearedPositions []board.Position
	Hand             hand.Type
	At               time.Time
}

// Score is the value of a single play
type Score struct {
	// Points for the hand itself
	Value int
	// Points for clearing stacks
	Bonus int
	// Multiplier applied to Value
	Multiplier int
}

// Scorer accumulates points across a game
type Scorer interface {
	// Name identifies the strategy, e.g. "standard"
	Name() string
	// CheckPlay computes the score of a potential play without recording it
	CheckPlay(play Play) Score
	// AddPlay records a committed play
	AddPlay(play Play)
	// Bonus returns the points for clearing the stack at position
	Bonus(position board.Position) int
	// Score returns the total, including completion multipliers when completed
	Score(completed bool) int
	// FormatAsScore renders a value in the scorer's notation
	FormatAsScore(value int) string
}

// Kinds lists the available scoring strategies
var Kinds = []string{StandardKind, VegasKind}

// New creates the scorer named by kind
func New(kind string, luckyCard deck.Card) (Scorer, error) {
	switch kind {
	case StandardKind:
		return NewStandard(luckyCard), nil
	case VegasKind:
		return NewVegas(luckyCard), nil
	default:
		return nil, fmt.Errorf("unknown scorer %q (want one of %v)", kind, Kinds)
	}
}

func hasSuit(cards []deck.Card, suit deck.Suit) bool {
	return slices.ContainsFunc(cards, func(c deck.Card) bool { return c.Suit == suit })
}
