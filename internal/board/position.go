package board

import "fmt"

// HPosition is the column of a stack on the board
type HPosition int

const (
	Left HPosition = iota
	Center
	Right
)

// String returns the column name
func (h HPosition) String() string {
	switch h {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// VPosition is the row of a stack on the board
type VPosition int

const (
	Top VPosition = iota
	Middle
	Bottom
)

// String returns the row name
func (v VPosition) String() string {
	switch v {
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Position identifies one of the nine stack slots on the board
type Position struct {
	X HPosition
	Y VPosition
}

// String returns the position as "row-column", e.g. "top-left"
func (p Position) String() string {
	return fmt.Sprintf("%s-%s", p.Y, p.X)
}

// Valid reports whether p is one of the nine grid coordinates
func (p Position) Valid() bool {
	return p.X >= Left && p.X <= Right && p.Y >= Top && p.Y <= Bottom
}

// AllPositions returns the nine grid coordinates in deal order: rows top to
// bottom, columns left to right.
func AllPositions() []Position {
	positions := make([]Position, 0, 9)
	for _, y := range []VPosition{Top, Middle, Bottom} {
		for _, x := range []HPosition{Left, Center, Right} {
			positions = append(positions, Position{X: x, Y: y})
		}
	}
	return positions
}

// Rows returns the distinct rows spanned by positions, in first-seen order
func Rows(positions []Position) []VPosition {
	var rows []VPosition
	for _, p := range positions {
		seen := false
		for _, r := range rows {
			if r == p.Y {
				seen = true
				break
			}
		}
		if !seen {
			rows = append(rows, p.Y)
		}
	}
	return rows
}
