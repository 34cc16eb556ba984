// Package hand classifies a selection of up to five cards into the hands
// that can be played in thyme.
package hand

import (
	"slices"

	"github.com/lox/thyme/internal/deck"
)

// Type is a playable hand, ordered from most to least valuable
type Type int

const (
	StraightFlush Type = iota
	FourOfAKind
	Flush
	FullHouse
	FiveCardStraight
	ThreeOfAKind
	ThreeCardStraight
	Pair
	Trash
)

// Types lists every hand type, most valuable first
var Types = []Type{
	StraightFlush, FourOfAKind, Flush, FullHouse, FiveCardStraight,
	ThreeOfAKind, ThreeCardStraight, Pair, Trash,
}

// String returns a human-readable hand description
func (t Type) String() string {
	switch t {
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FiveCardStraight:
		return "Five-card Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case ThreeCardStraight:
		return "Three-card Straight"
	case Pair:
		return "Pair"
	case Trash:
		return "Discard"
	default:
		return "Unknown"
	}
}

// Classify returns the hand formed by two to five cards. Single cards are
// not classified here; whether one may be discarded depends on the game's
// discard budget.
func Classify(cards []deck.Card) (Type, bool) {
	switch len(cards) {
	case 5:
		consecutive := IsConsecutive(cards)
		sameSuit := IsSameSuit(cards)
		switch {
		case consecutive && sameSuit:
			return StraightFlush, true
		case consecutive:
			return FiveCardStraight, true
		case sameSuit:
			return Flush, true
		case ContainsMultipleOfValue(cards, 3) && ContainsMultipleOfValue(cards, 2):
			return FullHouse, true
		}
	case 4:
		if ContainsMultipleOfValue(cards, 4) {
			return FourOfAKind, true
		}
	case 3:
		if IsConsecutive(cards) {
			return ThreeCardStraight, true
		}
		if ContainsMultipleOfValue(cards, 3) {
			return ThreeOfAKind, true
		}
	case 2:
		if ContainsMultipleOfValue(cards, 2) {
			return Pair, true
		}
	}
	return 0, false
}

// ContainsMultipleOfValue reports whether some rank appears in cards exactly
// times times.
func ContainsMultipleOfValue(cards []deck.Card, times int) bool {
	counts := make(map[deck.Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	for _, n := range counts {
		if n == times {
			return true
		}
	}
	return false
}

// IsConsecutive reports whether cards form an unbroken run of values. Aces
// rank high unless a Two is present, in which case they rank low. Runs do not
// wrap around, and a repeated value breaks the run.
func IsConsecutive(cards []deck.Card) bool {
	if len(cards) < 2 {
		return false
	}

	aceLow := slices.ContainsFunc(cards, func(c deck.Card) bool { return c.Rank == deck.Two })
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = sortValue(c.Rank, aceLow)
	}
	slices.Sort(values)

	for i := 0; i < len(values)-1; i++ {
		if values[i]-values[i+1] != -1 {
			return false
		}
	}
	return true
}

// IsSameSuit reports whether there are at least two cards and all share the
// first card's suit.
func IsSameSuit(cards []deck.Card) bool {
	if len(cards) < 2 {
		return false
	}
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// sortValue maps Two..King to 0..11 and Ace to 12, or -1 when aceLow
func sortValue(r deck.Rank, aceLow bool) int {
	if r == deck.Ace {
		if aceLow {
			return -1
		}
		return 12
	}
	return int(r - deck.Two)
}
