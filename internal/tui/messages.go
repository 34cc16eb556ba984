package tui

import (
	"errors"
	"fmt"

	"github.com/lox/thyme/internal/game"
	"github.com/lox/thyme/internal/hand"
	"github.com/lox/thyme/internal/score"
)

const (
	successMessage = "You WON!"
	hintMessage    = "No hints yet. Look for pairs across rows."
	quitHint       = "Press 'q' to quit"
)

func errorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidMove):
		return "This selection is not a hand"
	case errors.Is(err, game.ErrInvalidHand):
		return "This selection does not match the hand"
	case errors.Is(err, game.ErrNeedMultipleRows):
		return "A hand must be played from multiple rows"
	case errors.Is(err, game.ErrNoMovesRemain):
		return "Game Over - No moves left"
	case errors.Is(err, game.ErrNoDiscardsRemain):
		return "No discards remain"
	default:
		return err.Error()
	}
}

func checkMessage(h hand.Type, s score.Score) string {
	if h == hand.Trash {
		return "Press return to discard this card."
	}
	return fmt.Sprintf("Press return to play '%s' (+%d x%d)", h, s.Value, s.Multiplier)
}

func playMessage(h hand.Type) string {
	return fmt.Sprintf("Played '%s'", h)
}
