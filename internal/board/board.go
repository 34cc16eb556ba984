package board

import (
	"fmt"
	"iter"

	"github.com/lox/thyme/internal/deck"
)

// StackSizes is the number of cards dealt to each position, in deal order
var StackSizes = []int{8, 8, 8, 7, 6, 5, 4, 3, 2}

// Stack is a pile of cards at a board position, ordered bottom to top
type Stack struct {
	Position Position
	Cards    []deck.Card
}

// Top returns the top card of the stack
func (s Stack) Top() (deck.Card, bool) {
	if len(s.Cards) == 0 {
		return deck.Card{}, false
	}
	return s.Cards[len(s.Cards)-1], true
}

// Board holds the nine stacks in play and the lucky card withheld from them
type Board struct {
	stacks    []Stack
	luckyCard deck.Card
}

// Deal creates a board from a shuffled deck: 8,8,8,7,6,5,4,3,2 cards to the
// positions in deal order, and the next card becomes the lucky card.
func Deal(d *deck.Deck) (*Board, error) {
	positions := AllPositions()
	stacks := make([]Stack, len(positions))
	for i, pos := range positions {
		cards, err := d.Draw(StackSizes[i])
		if err != nil {
			return nil, fmt.Errorf("deal %s: %w", pos, err)
		}
		stacks[i] = Stack{Position: pos, Cards: cards}
	}

	lucky, err := d.DrawOne()
	if err != nil {
		return nil, fmt.Errorf("deal lucky card: %w", err)
	}
	return &Board{stacks: stacks, luckyCard: lucky}, nil
}

// New creates a board from explicit stacks. Positions missing from stacks
// are empty. Each position may appear at most once.
func New(stacks []Stack, luckyCard deck.Card) (*Board, error) {
	b := &Board{luckyCard: luckyCard}
	for _, pos := range AllPositions() {
		b.stacks = append(b.stacks, Stack{Position: pos})
	}

	seen := make(map[Position]bool)
	for _, s := range stacks {
		if !s.Position.Valid() {
			return nil, fmt.Errorf("invalid position %v", s.Position)
		}
		if seen[s.Position] {
			return nil, fmt.Errorf("duplicate stack at %s", s.Position)
		}
		seen[s.Position] = true
		b.stack(s.Position).Cards = append([]deck.Card(nil), s.Cards...)
	}
	return b, nil
}

// LuckyCard returns the card withheld from play
func (b *Board) LuckyCard() deck.Card {
	return b.luckyCard
}

// Positions returns every position on the board in a fixed order
func (b *Board) Positions() []Position {
	positions := make([]Position, len(b.stacks))
	for i, s := range b.stacks {
		positions[i] = s.Position
	}
	return positions
}

// PositionsRemaining returns the positions whose stacks still hold cards
func (b *Board) PositionsRemaining() []Position {
	var positions []Position
	for _, s := range b.stacks {
		if len(s.Cards) > 0 {
			positions = append(positions, s.Position)
		}
	}
	return positions
}

// HandsRemaining yields every non-empty combination of the remaining
// positions. It is recomputed from the current board on each call.
func (b *Board) HandsRemaining() iter.Seq[[]Position] {
	return Combinations(b.PositionsRemaining())
}

// Stacks returns a copy of the stacks in position order
func (b *Board) Stacks() []Stack {
	stacks := make([]Stack, len(b.stacks))
	for i, s := range b.stacks {
		stacks[i] = Stack{Position: s.Position, Cards: append([]deck.Card(nil), s.Cards...)}
	}
	return stacks
}

// CountCards returns the number of cards at a position, 0 if unknown
func (b *Board) CountCards(pos Position) int {
	if s := b.stack(pos); s != nil {
		return len(s.Cards)
	}
	return 0
}

// CountAllCards returns the number of cards left across all stacks
func (b *Board) CountAllCards() int {
	total := 0
	for _, s := range b.stacks {
		total += len(s.Cards)
	}
	return total
}

// Top returns the top card at a position
func (b *Board) Top(pos Position) (deck.Card, bool) {
	cards, ok := b.Peek([]Position{pos})
	if !ok {
		return deck.Card{}, false
	}
	return cards[0], true
}

// Peek returns the top card at each position in request order. It returns
// false, and nothing, unless every position holds a card.
func (b *Board) Peek(positions []Position) ([]deck.Card, bool) {
	cards := make([]deck.Card, 0, len(positions))
	for _, pos := range positions {
		s := b.stack(pos)
		if s == nil {
			return nil, false
		}
		card, ok := s.Top()
		if !ok {
			return nil, false
		}
		cards = append(cards, card)
	}
	return cards, true
}

// Pop removes the top card at each position and returns them in request
// order. The request is validated in full first: if any stack cannot supply
// its cards nothing is removed. A repeated position removes one card per
// occurrence.
func (b *Board) Pop(positions []Position) ([]deck.Card, bool) {
	want := make(map[Position]int, len(positions))
	for _, pos := range positions {
		s := b.stack(pos)
		if s == nil {
			return nil, false
		}
		want[pos]++
		if want[pos] > len(s.Cards) {
			return nil, false
		}
	}

	cards := make([]deck.Card, 0, len(positions))
	for _, pos := range positions {
		s := b.stack(pos)
		last := len(s.Cards) - 1
		cards = append(cards, s.Cards[last])
		s.Cards = s.Cards[:last]
	}
	return cards, true
}

func (b *Board) stack(pos Position) *Stack {
	for i := range b.stacks {
		if b.stacks[i].Position == pos {
			return &b.stacks[i]
		}
	}
	return nil
}
