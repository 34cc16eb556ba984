// Package game implements the rules of thyme, a patience game played on a
// 3×3 grid of card stacks.
//
// The main type is Game, which owns a board.Board, a discard budget and a
// score.Scorer, and decides which selections of stack tops may be played.
//
// # Basic Usage
//
//	d := deck.NewShuffled(seed)
//	b, _ := board.Deal(d)
//	g, _ := game.New(b, score.NewStandard(b.LuckyCard()), 2)
//
//	positions := []board.Position{{X: board.Left, Y: board.Top}, {X: board.Left, Y: board.Middle}}
//	if h, err := g.Check(positions); err == nil {
//	    g.Play(h, positions)
//	}
//
// # Rules
//
//   - A hand of two or more cards must use stacks from at least two rows.
//   - Pairs, three of a kind, three-card straights, four of a kind and the
//     five-card hands may be played; anything else is ErrInvalidMove.
//   - A single card may be discarded while the discard budget is positive.
//     Discarding spends one from the budget, and every other hand restores
//     one, up to the maximum the game was created with.
//   - The game ends when MovesRemaining is false: won if the board is empty,
//     lost otherwise.
//
// # Deterministic Testing
//
// Deal from deck.NewShuffled with a fixed seed, or build an exact layout with
// board.New. WithClock accepts a quartz mock for play timestamps.
package game
