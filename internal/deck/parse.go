package deck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseCard parses a card such as "As", "10h", "Td" or "Q♣". Matching is
// case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	suitRune, size := utf8.DecodeLastRuneInString(s)
	if size == 0 || len(s) == size {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	suit, ok := parseSuit(suitRune)
	if !ok {
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}
	rank, ok := parseRank(strings.ToUpper(s[:len(s)-size]))
	if !ok {
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses whitespace separated cards, e.g. "5c 9c 6c 8c 7c"
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case 's', 'S', '♠':
		return Spades, true
	case 'h', 'H', '♥':
		return Hearts, true
	case 'd', 'D', '♦':
		return Diamonds, true
	case 'c', 'C', '♣':
		return Clubs, true
	}
	return 0, false
}

func parseRank(s string) (Rank, bool) {
	switch s {
	case "A":
		return Ace, true
	case "K":
		return King, true
	case "Q":
		return Queen, true
	case "J":
		return Jack, true
	case "T", "10":
		return Ten, true
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), true
	}
	return 0, false
}
