package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"
)

// Size is the number of cards in a standard deck
const Size = 52

// ErrInsufficientCards is returned when a draw asks for more cards than remain
var ErrInsufficientCards = errors.New("not enough cards remaining in deck")

// Deck represents a deck of playing cards. Cards are drawn from the front.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates an ordered 52-card deck that shuffles with rng
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.fill()
	return d
}

// NewShuffled creates a deck shuffled deterministically from seed
func NewShuffled(seed int64) *Deck {
	d := New(NewRand(seed))
	d.Shuffle()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates)
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the next n cards. It fails without removing
// anything when fewer than n cards remain.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("draw %d of %d: %w", n, len(d.cards), ErrInsufficientCards)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards, nil
}

// DrawOne removes and returns the next card
func (d *Deck) DrawOne() (Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.fill()
	d.Shuffle()
}
