package score

import (
	"strconv"

	"github.com/lox/thyme/internal/board"
	"github.com/lox/thyme/internal/deck"
	"github.com/lox/thyme/internal/hand"
)

// StandardKind names the standard scorer
const StandardKind = "standard"

var standardValues = map[hand.Type]int{
	hand.StraightFlush:     150,
	hand.FourOfAKind:       100,
	hand.Flush:             90,
	hand.FullHouse:         70,
	hand.FiveCardStraight:  50,
	hand.ThreeOfAKind:      30,
	hand.ThreeCardStraight: 20,
	hand.Pair:              10,
	hand.Trash:             0,
}

// Standard scores every hand, doubles hands containing the lucky suit and
// adds a bonus for each stack cleared.
type Standard struct {
	luckySuit deck.Suit
	total     int
}

// NewStandard creates a standard scorer for a game with luckyCard
func NewStandard(luckyCard deck.Card) *Standard {
	return &Standard{luckySuit: luckyCard.Suit}
}

func (s *Standard) Name() string { return StandardKind }

func (s *Standard) CheckPlay(play Play) Score {
	multiplier := 1
	if hasSuit(play.Cards, s.luckySuit) {
		multiplier = 2
	}
	bonus := 0
	for _, p := range play.ClearedPositions {
		bonus += s.Bonus(p)
	}
	return Score{
		Value:      standardValues[play.Hand],
		Bonus:      bonus,
		Multiplier: multiplier,
	}
}

func (s *Standard) AddPlay(play Play) {
	score := s.CheckPlay(play)
	s.total += score.Value*score.Multiplier + score.Bonus
}

// Bonus awards more for clearing the deeper stacks in the upper rows
func (s *Standard) Bonus(position board.Position) int {
	switch position.Y {
	case board.Top:
		return 150
	case board.Middle:
		return 100
	case board.Bottom:
		return 50
	}
	return 0
}

func (s *Standard) Score(bool) int {
	return s.total
}

func (s *Standard) FormatAsScore(value int) string {
	return strconv.Itoa(value)
}
