// Package tui provides the Bubble Tea front end for tilemerge.
// It maps key presses to moves, renders the board and serves sessions over SSH.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/render"
)

// Model is the Bubble Tea model for one game.
// Moves are applied synchronously in Update; there is no tick loop.
type Model struct {
	game      *engine.Game
	snapshot  engine.Snapshot
	screen    *core.Screen
	keyMapper *KeyMapper
	keys      KeyMap
	help      help.Model
	cellWidth int
	width     int // Terminal size, 0 until the first WindowSizeMsg
	height    int
	quitting  bool
	err       error // last rejected move, shown in the status line
}

// NewModel creates a Bubble Tea model driving the given game.
func NewModel(game *engine.Game, cellWidth int) Model {
	if cellWidth < 1 {
		cellWidth = render.DefaultCellWidth
	}
	snap := game.Snapshot()
	keys := DefaultKeyMap()

	return Model{
		game:      game,
		snapshot:  snap,
		screen:    core.NewScreen(render.BoardSize(snap, cellWidth)),
		keyMapper: NewKeyMapper(keys),
		keys:      keys,
		help:      help.New(),
		cellWidth: cellWidth,
	}
}

// Init has nothing to start: the board is already seeded.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionRestart:
		if m.game.GameOver() {
			m.game.Reset()
			m.snapshot = m.game.Snapshot()
			m.err = nil
		}
		return m, nil
	}

	dir, ok := action.Direction()
	if !ok {
		return m, nil
	}

	return m.applyMove(dir), nil
}

// applyMove plays dir. A rejected move leaves the board as it was.
func (m Model) applyMove(dir engine.Direction) Model {
	result, err := m.game.ApplyMove(dir)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.snapshot = result.Snapshot
	return m
}

// Snapshot returns the board as last rendered.
func (m Model) Snapshot() engine.Snapshot {
	return m.snapshot
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	render.Draw(m.screen, m.snapshot, m.cellWidth)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("tilemerge"))
	sb.WriteString("\n")
	sb.WriteString(RenderScreen(m.screen, m.snapshot.GameOver()))
	sb.WriteString("\n")
	status := fmt.Sprintf("%dx%d  moves: %d  max: %d",
		m.snapshot.Width, m.snapshot.Height, m.snapshot.Moves, m.snapshot.MaxTile)
	if m.snapshot.GameOver() {
		status += "  (r: new game)"
	}
	if m.err != nil {
		status += "  error: " + m.err.Error()
	}
	sb.WriteString(statusStyle.Render(status))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	view := sb.String()
	if m.width > 0 && m.height > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Run starts a Bubble Tea program for the game on the local terminal.
func Run(game *engine.Game, cellWidth int) error {
	p := tea.NewProgram(
		NewModel(game, cellWidth),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
