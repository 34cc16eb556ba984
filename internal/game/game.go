package game

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/thyme/internal/board"
	"github.com/lox/thyme/internal/gameid"
	"github.com/lox/thyme/internal/hand"
	"github.com/lox/thyme/internal/score"
)

// DefaultDiscards is the discard budget of the reference game
const DefaultDiscards = 2

// Status describes whether a game can continue
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game is the rules engine for a single deal. Methods are safe for
// concurrent use; each check and play runs under one lock so a play can
// never commit against a board another play has changed.
type Game struct {
	mu sync.Mutex

	id                 string
	board              *board.Board
	scorer             score.Scorer
	discardsAllowed    int
	discardsAllowedMax int
	history            []score.Play

	clock     quartz.Clock
	startedAt time.Time
	logger    *log.Logger
}

// New creates a game over b. discards is both the starting and maximum
// discard budget.
func New(b *board.Board, scorer score.Scorer, discards int, opts ...Option) (*Game, error) {
	if b == nil {
		return nil, errors.New("board is required")
	}
	if scorer == nil {
		return nil, errors.New("scorer is required")
	}
	if discards < 0 {
		return nil, fmt.Errorf("discards must not be negative, got %d", discards)
	}

	g := &Game{
		board:              b,
		scorer:             scorer,
		discardsAllowed:    discards,
		discardsAllowedMax: discards,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = quartz.NewReal()
	}
	if g.logger == nil {
		g.logger = discardLogger()
	}
	if g.id == "" {
		g.id = gameid.Generate()
	}
	g.startedAt = g.clock.Now()
	g.logger = g.logger.With("game", g.id)

	g.logger.Info("Game started",
		"scorer", scorer.Name(),
		"discards", discards,
		"lucky", b.LuckyCard(),
		"cards", b.CountAllCards())
	return g, nil
}

// ID returns the game identifier
func (g *Game) ID() string {
	return g.id
}

// Board returns the board in play. Callers must not mutate it directly.
func (g *Game) Board() *board.Board {
	return g.board
}

// Scorer returns the game's scorer
func (g *Game) Scorer() score.Scorer {
	return g.scorer
}

// DiscardsAllowed returns the remaining discard budget
func (g *Game) DiscardsAllowed() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.discardsAllowed
}

// DiscardsAllowedMax returns the cap on the discard budget
func (g *Game) DiscardsAllowedMax() int {
	return g.discardsAllowedMax
}

// History returns the plays committed so far, oldest first
func (g *Game) History() []score.Play {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.history)
}

// Elapsed returns the time since the game started
func (g *Game) Elapsed() time.Duration {
	return g.clock.Since(g.startedAt)
}

// Check determines which hand the top cards at positions would form
func (g *Game) Check(positions []board.Position) (hand.Type, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.check(positions)
}

func (g *Game) check(positions []board.Position) (hand.Type, error) {
	if len(positions) > 1 && len(board.Rows(positions)) < 2 {
		return 0, ErrNeedMultipleRows
	}
	if hasDuplicates(positions) {
		return 0, ErrInvalidMove
	}

	cards, ok := g.board.Peek(positions)
	if !ok {
		return 0, ErrInvalidMove
	}

	if len(cards) == 1 {
		if g.discardsAllowed > 0 {
			return hand.Trash, nil
		}
		return 0, ErrNoDiscardsRemain
	}
	if h, ok := hand.Classify(cards); ok {
		return h, nil
	}
	return 0, ErrInvalidMove
}

// Preview checks positions and scores the resulting play without committing
// it.
func (g *Game) Preview(positions []board.Position) (hand.Type, score.Score, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	h, err := g.check(positions)
	if err != nil {
		return 0, score.Score{}, err
	}
	cards, _ := g.board.Peek(positions)
	return h, g.scorer.CheckPlay(score.Play{
		Cards:            cards,
		ClearedPositions: g.clearedBy(positions),
		Hand:             h,
	}), nil
}

// Play commits the hand at positions if it is legal and matches asserted.
// On error nothing changes.
func (g *Game) Play(asserted hand.Type, positions []board.Position) (hand.Type, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	h, err := g.check(positions)
	if err != nil {
		g.logger.Debug("Rejected play", "positions", positions, "error", err)
		return 0, err
	}
	if h != asserted {
		g.logger.Debug("Rejected play", "positions", positions, "asserted", asserted, "actual", h)
		return 0, ErrInvalidHand
	}

	cleared := g.clearedBy(positions)
	cards, ok := g.board.Pop(positions)
	if !ok {
		// check has already peeked every position under the lock
		return 0, ErrInvalidMove
	}

	if h == hand.Trash {
		if g.discardsAllowed > 0 {
			g.discardsAllowed--
		}
	} else if g.discardsAllowed < g.discardsAllowedMax {
		g.discardsAllowed++
	}

	play := score.Play{
		Cards:            cards,
		ClearedPositions: cleared,
		Hand:             h,
		At:               g.clock.Now(),
	}
	g.scorer.AddPlay(play)
	g.history = append(g.history, play)

	g.logger.Info("Played hand",
		"hand", h,
		"cards", cards,
		"cleared", cleared,
		"discards", g.discardsAllowed,
		"remaining", g.board.CountAllCards(),
		"score", g.scorer.Score(false))
	return h, nil
}

// MovesRemaining reports whether any combination of stacks can be played or
// a discard is still available. The search runs over the live board and
// stops at the first playable combination.
func (g *Game) MovesRemaining() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.movesRemaining()
}

func (g *Game) movesRemaining() bool {
	for positions := range g.board.HandsRemaining() {
		if _, err := g.check(positions); err == nil {
			return true
		}
	}
	return g.discardsAllowed > 0
}

// PlayableHands returns every combination of stacks that can be played now
func (g *Game) PlayableHands() [][]board.Position {
	g.mu.Lock()
	defer g.mu.Unlock()

	var playable [][]board.Position
	for positions := range g.board.HandsRemaining() {
		if _, err := g.check(positions); err == nil {
			playable = append(playable, positions)
		}
	}
	return playable
}

// Status reports whether the game is still in progress, won or lost
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.board.CountAllCards() == 0 {
		return Won
	}
	if g.movesRemaining() {
		return Playing
	}
	return Lost
}

// Score returns the current total, with completion bonuses once the game
// has ended.
func (g *Game) Score() int {
	completed := g.Status() != Playing
	return g.scorer.Score(completed)
}

// clearedBy returns the positions whose stacks a play at positions would empty
func (g *Game) clearedBy(positions []board.Position) []board.Position {
	var cleared []board.Position
	for _, p := range positions {
		if g.board.CountCards(p) == 1 {
			cleared = append(cleared, p)
		}
	}
	return cleared
}

func hasDuplicates(positions []board.Position) bool {
	for i, p := range positions {
		if slices.Contains(positions[i+1:], p) {
			return true
		}
	}
	return false
}
