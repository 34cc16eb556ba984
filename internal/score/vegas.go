package score

import (
	"fmt"

	"github.com/lox/thyme/internal/board"
	"github.com/lox/thyme/internal/deck"
	"github.com/lox/thyme/internal/hand"
)

// VegasKind names the Vegas scorer
const VegasKind = "vegas"

var vegasValues = map[hand.Type]int{
	hand.StraightFlush:     40,
	hand.FourOfAKind:       20,
	hand.Flush:             10,
	hand.FullHouse:         8,
	hand.FiveCardStraight:  5,
	hand.ThreeOfAKind:      3,
	hand.ThreeCardStraight: 2,
	hand.Pair:              1,
	hand.Trash:             0,
}

// Vegas pays only for hands holding the lucky suit. Clearing stacks in the
// top and middle rows builds a multiplier applied to the completed game.
type Vegas struct {
	luckySuit  deck.Suit
	total      int
	multiplier float64
}

// NewVegas creates a Vegas scorer for a game with luckyCard
func NewVegas(luckyCard deck.Card) *Vegas {
	return &Vegas{luckySuit: luckyCard.Suit}
}

func (v *Vegas) Name() string { return VegasKind }

func (v *Vegas) CheckPlay(play Play) Score {
	value := 0
	if hasSuit(play.Cards, v.luckySuit) {
		value = vegasValues[play.Hand]
	}
	return Score{Value: value, Multiplier: 1}
}

func (v *Vegas) AddPlay(play Play) {
	for _, p := range play.ClearedPositions {
		v.multiplier += clearedMultiplier(p)
	}
	v.total += v.CheckPlay(play).Value
}

// Bonus is always zero; cleared stacks feed the final multiplier instead
func (v *Vegas) Bonus(board.Position) int {
	return 0
}

func (v *Vegas) Score(completed bool) int {
	if completed {
		return int(float64(v.total) * v.multiplier)
	}
	return v.total
}

// Multiplier returns the completion multiplier accumulated so far
func (v *Vegas) Multiplier() float64 {
	return v.multiplier
}

func (v *Vegas) FormatAsScore(value int) string {
	return fmt.Sprintf("$%d x %g", value, v.multiplier)
}

func clearedMultiplier(p board.Position) float64 {
	switch p.Y {
	case board.Top:
		return 0.75
	case board.Middle:
		return 0.25
	}
	return 0
}
