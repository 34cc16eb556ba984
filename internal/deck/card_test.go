package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "straight flush",
			input: "As Ks Qs Js Ts",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "ten as two digits",
			input: "10h 9d",
			expected: []Card{
				{Suit: Hearts, Rank: Ten},
				{Suit: Diamonds, Rank: Nine},
			},
		},
		{
			name:  "unicode suits",
			input: "5♣ 5♥ 5♠ 5♦",
			expected: []Card{
				{Suit: Clubs, Rank: Five},
				{Suit: Hearts, Rank: Five},
				{Suit: Spades, Rank: Five},
				{Suit: Diamonds, Rank: Five},
			},
		},
		{
			name:  "case insensitive",
			input: "as KH qD jc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{name: "invalid rank", input: "Xs Ks", wantErr: true},
		{name: "invalid suit", input: "As Kx", wantErr: true},
		{name: "missing suit", input: "A", wantErr: true},
		{name: "one is not a rank", input: "1s", wantErr: true},
		{name: "empty string", input: "", expected: []Card{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	assert.Equal(t, []Card{{Rank: Ace, Suit: Spades}}, MustParseCards("As"))
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "10♥", NewCard(Ten, Hearts).String())
	assert.Equal(t, "A♠", NewCard(Ace, Spades).String())
	assert.Equal(t, "7♣", NewCard(Seven, Clubs).String())
	assert.True(t, NewCard(Two, Diamonds).IsRed())
	assert.False(t, NewCard(Two, Clubs).IsRed())
}

func TestStringRoundTrip(t *testing.T) {
	for _, suit := range Suits {
		for _, rank := range Ranks {
			card := NewCard(rank, suit)
			parsed, err := ParseCard(card.String())
			require.NoError(t, err)
			assert.Equal(t, card, parsed)
		}
	}
}
