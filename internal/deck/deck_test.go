package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHasEveryCardOnce(t *testing.T) {
	d := NewShuffled(42)
	require.Equal(t, Size, d.Remaining())

	cards, err := d.Draw(Size)
	require.NoError(t, err)

	seen := make(map[Card]bool)
	for _, card := range cards {
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
	assert.Len(t, seen, Size)
	assert.Equal(t, 0, d.Remaining())
}

func TestDrawInsufficientCards(t *testing.T) {
	d := NewShuffled(1)
	_, err := d.Draw(50)
	require.NoError(t, err)

	_, err = d.Draw(3)
	assert.ErrorIs(t, err, ErrInsufficientCards)
	assert.Equal(t, 2, d.Remaining(), "failed draw must not remove cards")

	_, err = d.DrawOne()
	require.NoError(t, err)
	_, err = d.DrawOne()
	require.NoError(t, err)
	_, err = d.DrawOne()
	assert.ErrorIs(t, err, ErrInsufficientCards)
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a, err := NewShuffled(7).Draw(Size)
	require.NoError(t, err)
	b, err := NewShuffled(7).Draw(Size)
	require.NoError(t, err)
	c, err := NewShuffled(8).Draw(Size)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestReset(t *testing.T) {
	d := NewShuffled(3)
	_, err := d.Draw(10)
	require.NoError(t, err)

	d.Reset()
	assert.Equal(t, Size, d.Remaining())
}

func TestNewUnshuffledOrder(t *testing.T) {
	d := New(NewRand(0))
	first, err := d.DrawOne()
	require.NoError(t, err)
	assert.Equal(t, NewCard(Two, Spades), first)
}
