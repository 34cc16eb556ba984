package game

import "errors"

// Move errors. All are recoverable and leave the game unchanged.
var (
	// ErrInvalidMove means the selected cards do not form a hand
	ErrInvalidMove = errors.New("selection is not a hand")
	// ErrInvalidHand means the selection does not match the hand being played
	ErrInvalidHand = errors.New("selection does not match the hand")
	// ErrNeedMultipleRows means a multi-card selection used a single row
	ErrNeedMultipleRows = errors.New("hand must be played from multiple rows")
	// ErrNoMovesRemain signals that the game is over. Check and Play never
	// return it; front ends use it to report the end of a lost game.
	ErrNoMovesRemain = errors.New("no moves left")
	// ErrNoDiscardsRemain means a single card was selected with no discards left
	ErrNoDiscardsRemain = errors.New("no discards remain")
)
