package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Model is the Bubble Tea model for playing a 2048 session.
type Model struct {
	session    *game.Session
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	scoreboard Scoreboard
	width      int
	height     int
	best       int
	saved      bool // Whether the result has been saved for current game over
	showScores bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
// store and logger may be nil.
func NewModel(session *game.Session, store *storage.Store, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		session:    session,
		store:      store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		scoreboard: NewScoreboard(24),
		width:      80,
		height:     24,
	}
	m.refreshBest()
	return m
}

// Init initializes the model.
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
		m.scoreboard = NewScoreboard(msg.Height)
		if m.showScores {
			m.loadScores()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		m.showScores = !m.showScores
		if m.showScores {
			m.loadScores()
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.session.Restart()
		m.saved = false
		m.refreshBest()
		return m, nil
	}

	if m.showScores {
		// Arrow keys scroll the results while they are shown
		var cmd tea.Cmd
		m.scoreboard.table, cmd = m.scoreboard.table.Update(msg)
		return m, cmd
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.session.Move(dir)
		m.saveResult()
	}

	return m, nil
}

// saveResult records the session once it is over.
func (m *Model) saveResult() {
	if m.saved || m.session.Status() != game.StatusOver {
		return
	}
	m.saved = true

	if m.store == nil {
		return
	}

	snap := m.session.Snapshot()
	_, err := m.store.SaveResult(storage.Result{
		Height:  snap.Height,
		Width:   snap.Width,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Won:     snap.Won,
		Seed:    snap.Seed,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save result", "error", err)
		return
	}
	m.refreshBest()
}

// refreshBest reloads the best recorded score for the board size.
func (m *Model) refreshBest() {
	if m.store == nil {
		return
	}
	b := m.session.Board()
	best, err := m.store.BestScore(b.Height(), b.Width())
	if err != nil {
		m.logger.Warn("could not load best score", "error", err)
		return
	}
	m.best = best
}

func (m *Model) loadScores() {
	b := m.session.Board()
	m.scoreboard.Load(m.store, b.Height(), b.Width())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()

	var sb strings.Builder
	sb.WriteString(centerText(renderHUD(snap, m.best), m.width))
	sb.WriteString("\n\n")

	if m.showScores {
		sb.WriteString(centerText(m.scoreboard.View(), m.width))
	} else {
		sb.WriteString(centerText(renderBoard(snap.Cells), m.width))
	}
	sb.WriteString("\n")

	if banner := renderBanner(snap); banner != "" {
		sb.WriteString(centerText(banner, m.width))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return sb.String()
}

// Run starts the Bubble Tea program for the given session.
func Run(session *game.Session, store *storage.Store, logger *log.Logger) error {
	model := NewModel(session, store, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
