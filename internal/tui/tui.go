package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/thyme/internal/board"
	"github.com/lox/thyme/internal/game"
	"github.com/lox/thyme/internal/hand"
)

type messageKind int

const (
	messageInfo messageKind = iota
	messageError
	messageSuccess
)

// Model is the Bubble Tea model for a game of thyme
type Model struct {
	game   *game.Game
	logger *log.Logger

	// UI components
	keys    keyMap
	help    help.Model
	playLog viewport.Model

	// State
	cursor      board.Position
	selection   []board.Position
	checked     hand.Type
	hasChecked  bool
	message     string
	messageKind messageKind
	plays       []string
	quitting    bool

	// Dimensions
	width  int
	height int
}

// New creates a model playing g with the cursor on the top left stack
func New(g *game.Game, logger *log.Logger) *Model {
	vp := viewport.New(playLogWidth, 3*cardHeight)
	vp.SetContent("")

	return &Model{
		game:    g,
		logger:  logger.WithPrefix("tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
		playLog: vp,
		cursor:  board.Position{X: board.Left, Y: board.Top},
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Thyme")
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.logger.Info("Quitting", "status", m.game.Status(), "score", m.game.Score())
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.MoveCursor(0, -1)
		case key.Matches(msg, m.keys.Down):
			m.MoveCursor(0, 1)
		case key.Matches(msg, m.keys.Left):
			m.MoveCursor(-1, 0)
		case key.Matches(msg, m.keys.Right):
			m.MoveCursor(1, 0)
		case key.Matches(msg, m.keys.Toggle):
			m.ToggleSelection()
		case key.Matches(msg, m.keys.Play):
			m.PlaySelection()
		case key.Matches(msg, m.keys.Hint):
			m.setMessage(hintMessage, messageInfo)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			m.setMessage(quitHint, messageInfo)
		}
	}

	var cmd tea.Cmd
	m.playLog, cmd = m.playLog.Update(msg)
	return m, cmd
}

// MoveCursor moves the cursor by dx columns and dy rows, stopping at the
// edges of the board.
func (m *Model) MoveCursor(dx, dy int) {
	x := min(max(int(m.cursor.X)+dx, int(board.Left)), int(board.Right))
	y := min(max(int(m.cursor.Y)+dy, int(board.Top)), int(board.Bottom))
	m.cursor = board.Position{X: board.HPosition(x), Y: board.VPosition(y)}
}

// ToggleSelection adds or removes the stack under the cursor from the
// selection and checks the hand it forms.
func (m *Model) ToggleSelection() {
	m.hasChecked = false

	if !m.game.MovesRemaining() {
		m.setMessage(errorMessage(game.ErrNoMovesRemain), messageError)
		return
	}
	if _, ok := m.game.Board().Top(m.cursor); ok {
		if i := slices.Index(m.selection, m.cursor); i >= 0 {
			m.selection = slices.Delete(m.selection, i, i+1)
		} else {
			m.selection = append(m.selection, m.cursor)
		}
	}
	if len(m.selection) == 0 {
		m.setMessage("", messageInfo)
		return
	}

	h, s, err := m.game.Preview(m.selection)
	if err != nil {
		m.setMessage(errorMessage(err), messageError)
		return
	}
	m.checked, m.hasChecked = h, true
	m.setMessage(checkMessage(h, s), messageInfo)
}

// PlaySelection plays the checked hand and clears the selection
func (m *Model) PlaySelection() {
	if !m.hasChecked {
		return
	}

	h, err := m.game.Play(m.checked, m.selection)
	if err != nil {
		m.setMessage(errorMessage(err), messageError)
		return
	}
	m.selection = nil
	m.hasChecked = false
	m.recordPlay()

	switch m.game.Status() {
	case game.Won:
		m.setMessage(successMessage, messageSuccess)
	case game.Lost:
		m.setMessage(errorMessage(game.ErrNoMovesRemain), messageError)
	default:
		m.setMessage(playMessage(h), messageInfo)
	}
}

// Cursor returns the position under the cursor
func (m *Model) Cursor() board.Position {
	return m.cursor
}

// Selection returns the selected positions in the order they were chosen
func (m *Model) Selection() []board.Position {
	return slices.Clone(m.selection)
}

// Message returns the status line text
func (m *Model) Message() string {
	return m.message
}

// Plays returns the play log entries, oldest first
func (m *Model) Plays() []string {
	return slices.Clone(m.plays)
}

func (m *Model) setMessage(message string, kind messageKind) {
	m.message = message
	m.messageKind = kind
}

func (m *Model) recordPlay() {
	history := m.game.History()
	if len(history) == 0 {
		return
	}
	play := history[len(history)-1]
	scorer := m.game.Scorer()
	s := scorer.CheckPlay(play)

	cards := make([]string, len(play.Cards))
	for i, c := range play.Cards {
		cards[i] = c.String()
	}
	entry := fmt.Sprintf("%-19s %s", play.Hand, strings.Join(cards, " "))
	if points := s.Value*s.Multiplier + s.Bonus; points > 0 {
		entry += fmt.Sprintf(" +%d", points)
	}

	m.plays = append(m.plays, entry)
	m.playLog.SetContent(strings.Join(m.plays, "\n"))
	m.playLog.GotoBottom()
}
