package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/thyme/internal/board"
	"github.com/lox/thyme/internal/deck"
)

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.width < minWidth || m.height < minHeight {
		return WarningStyle.Render(fmt.Sprintf("Please resize your terminal to be at least %dx%d", minWidth, minHeight))
	}

	body := m.renderBoard()
	if m.width >= playLogMinWidth {
		pane := playLogStyle.
			Height(lipgloss.Height(body) - 2).
			Render(m.renderPlayLog())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", pane)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		"",
		body,
		m.renderStatus(),
		"",
		m.renderMessage(),
		m.help.View(m.keys),
	)
}

// renderTitle renders the title bar with the lucky suit and score
func (m *Model) renderTitle() string {
	lucky := m.game.Board().LuckyCard()
	scorer := m.game.Scorer()
	return lipgloss.JoinHorizontal(lipgloss.Center,
		HeaderStyle.Render("Thyme - Lucky Suit: "+lucky.Suit.String()),
		"  ",
		ScoreStyle.Render("Score: "+scorer.FormatAsScore(m.game.Score())),
	)
}

// renderBoard lays the nine stacks out in a grid
func (m *Model) renderBoard() string {
	rows := make([]string, 0, 3)
	for _, y := range []board.VPosition{board.Top, board.Middle, board.Bottom} {
		cells := make([]string, 0, 3)
		for _, x := range []board.HPosition{board.Left, board.Center, board.Right} {
			cells = append(cells, m.renderStack(board.Position{X: x, Y: y}))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderStack renders the top card at pos with the stack size and cursor
// marker beneath it.
func (m *Model) renderStack(pos board.Position) string {
	b := m.game.Board()

	var face string
	if card, ok := b.Top(pos); ok {
		style := cardStyle
		if m.isSelected(pos) {
			style = style.Border(lipgloss.ThickBorder()).BorderForeground(selectedBorderColor)
		}
		face = style.Render(renderCardFace(card))
	} else {
		style := emptyCardStyle
		if m.isSelected(pos) {
			style = style.BorderForeground(selectedBorderColor)
		}
		face = style.Render("")
	}

	marker := InfoStyle.Render(fmt.Sprintf("%d", b.CountCards(pos)))
	if pos == m.cursor {
		marker = CursorStyle.Render(fmt.Sprintf("* %d", b.CountCards(pos)))
	}
	marker = lipgloss.PlaceHorizontal(cardWidth, lipgloss.Center, marker)

	return lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, face, marker))
}

// renderCardFace draws the rank and suit in opposite corners
func renderCardFace(card deck.Card) string {
	label := renderCardLabel(card)
	inner := cardWidth - 2
	pad := inner - lipgloss.Width(label)

	lines := make([]string, cardHeight-2)
	lines[0] = label + strings.Repeat(" ", pad)
	for i := 1; i < len(lines)-1; i++ {
		lines[i] = strings.Repeat(" ", inner)
	}
	lines[len(lines)-1] = strings.Repeat(" ", pad) + label
	return strings.Join(lines, "\n")
}

// renderCardLabel formats a card with its suit color
func renderCardLabel(card deck.Card) string {
	rank := BlackCardStyle.Render(card.Rank.String())
	if card.IsRed() {
		return rank + RedCardStyle.Render(card.Suit.String())
	}
	return rank + BlackCardStyle.Render(card.Suit.String())
}

// renderStatus shows the discard budget and cards left
func (m *Model) renderStatus() string {
	return InfoStyle.Render(fmt.Sprintf("Discards: %d/%d  Cards: %d",
		m.game.DiscardsAllowed(),
		m.game.DiscardsAllowedMax(),
		m.game.Board().CountAllCards()))
}

// renderMessage renders the status line in the style of its kind
func (m *Model) renderMessage() string {
	switch m.messageKind {
	case messageError:
		return ErrorStyle.Render(m.message)
	case messageSuccess:
		return SuccessStyle.Render(m.message)
	default:
		return WarningStyle.Render(m.message)
	}
}

// renderPlayLog renders the plays made so far
func (m *Model) renderPlayLog() string {
	if len(m.plays) == 0 {
		return InfoStyle.Render("No plays yet")
	}
	return m.playLog.View()
}

func (m *Model) isSelected(pos board.Position) bool {
	return slices.Contains(m.selection, pos)
}
