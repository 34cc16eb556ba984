package statistics

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/thyme/internal/board"
	"github.com/lox/thyme/internal/deck"
	"github.com/lox/thyme/internal/game"
	"github.com/lox/thyme/internal/hand"
	"github.com/lox/thyme/internal/score"
)

// Options controls a batch of deals
type Options struct {
	// Number of deals to analyse
	Count int
	// Seed of the first deal; deal i uses Seed+i
	Seed int64
	// Worker goroutines; 0 uses one per CPU, up to 8
	Workers int
	// Discard budget for the greedy playout
	Discards int
	// Scorer used for the greedy playout; empty means standard
	Scorer string
	Logger *log.Logger
}

// DealResult describes one dealt board
type DealResult struct {
	Seed int64
	// Playable counts the stack combinations that form a hand on the opening
	// board, discards excluded
	Playable int
	// BestHand is the strongest opening hand, or Trash when there is none
	BestHand hand.Type
	// Greedy playout outcome
	Status game.Status
	Score  int
	Plays  int
}

// HasOpening reports whether the deal opens with a hand other than a discard
func (r DealResult) HasOpening() bool {
	return r.Playable > 0
}

// Summary aggregates the results of a batch
type Summary struct {
	Deals    int
	Playable Statistics
	Scores   Statistics
	// BestHands counts deals by their strongest opening hand
	BestHands map[hand.Type]int
	// NoOpening counts deals that can only be started with a discard
	NoOpening int
	Wins      int
	Results   []DealResult
}

// WinRate returns the fraction of greedy playouts that cleared the board
func (s *Summary) WinRate() float64 {
	if s.Deals == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Deals)
}

// Analyze deals opts.Count boards and plays each one out greedily. Results
// depend only on the options, not on the worker count.
func Analyze(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", opts.Count)
	}
	if opts.Discards < 0 {
		return nil, fmt.Errorf("discards must not be negative, got %d", opts.Discards)
	}
	if opts.Scorer == "" {
		opts.Scorer = score.StandardKind
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = min(runtime.NumCPU(), 8)
	}
	workers = max(1, min(workers, opts.Count))

	results := make([]DealResult, opts.Count)
	indexes := make(chan int, workers)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(indexes)
		for i := range opts.Count {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for range workers {
		g.Go(func() error {
			for i := range indexes {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := AnalyzeDeal(opts.Seed+int64(i), opts.Discards, opts.Scorer)
				if err != nil {
					return err
				}
				results[i] = result
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Deals:     opts.Count,
		BestHands: make(map[hand.Type]int),
		Results:   results,
	}
	for _, r := range results {
		summary.Playable.Add(float64(r.Playable))
		summary.Scores.Add(float64(r.Score))
		summary.BestHands[r.BestHand]++
		if !r.HasOpening() {
			summary.NoOpening++
		}
		if r.Status == game.Won {
			summary.Wins++
		}
	}

	opts.Logger.Info("Analysed deals",
		"deals", summary.Deals,
		"workers", workers,
		"mean_playable", summary.Playable.Mean(),
		"wins", summary.Wins)
	return summary, nil
}

// AnalyzeDeal deals the board for seed, counts its opening hands and plays
// it out, always taking the play worth the most points.
func AnalyzeDeal(seed int64, discards int, scorer string) (DealResult, error) {
	b, err := board.Deal(deck.NewShuffled(seed))
	if err != nil {
		return DealResult{}, fmt.Errorf("deal %d: %w", seed, err)
	}

	result := DealResult{Seed: seed, BestHand: hand.Trash}

	// openings are counted without discards so singles never match
	opening, err := newGame(b, 0, scorer, seed)
	if err != nil {
		return DealResult{}, err
	}
	for positions := range b.HandsRemaining() {
		h, err := opening.Check(positions)
		if err != nil {
			continue
		}
		result.Playable++
		if h < result.BestHand {
			result.BestHand = h
		}
	}

	g, err := newGame(b, discards, scorer, seed)
	if err != nil {
		return DealResult{}, err
	}
	for {
		positions, h, ok := bestPlay(g)
		if !ok {
			break
		}
		if _, err := g.Play(h, positions); err != nil {
			return DealResult{}, fmt.Errorf("deal %d: play %v: %w", seed, positions, err)
		}
		result.Plays++
	}
	result.Status = g.Status()
	result.Score = g.Score()
	return result, nil
}

func newGame(b *board.Board, discards int, kind string, seed int64) (*game.Game, error) {
	s, err := score.New(kind, b.LuckyCard())
	if err != nil {
		return nil, err
	}
	return game.New(b, s, discards, game.WithID(fmt.Sprintf("deal-%d", seed)))
}

// bestPlay returns the playable combination worth the most points, preferring
// the earliest on ties.
func bestPlay(g *game.Game) ([]board.Position, hand.Type, bool) {
	var (
		best      []board.Position
		bestHand  hand.Type
		bestValue = -1
	)
	for _, positions := range g.PlayableHands() {
		h, s, err := g.Preview(positions)
		if err != nil {
			continue
		}
		if value := s.Value*s.Multiplier + s.Bonus; value > bestValue {
			best, bestHand, bestValue = positions, h, value
		}
	}
	return best, bestHand, best != nil
}
