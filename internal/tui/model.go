// Package tui is the interactive terminal front end of passforge.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/passforge/internal/clipboard"
	"github.com/Veraticus/passforge/internal/session"
	"github.com/Veraticus/passforge/internal/tui/components"
	"github.com/Veraticus/passforge/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the main TUI state. Password state lives in the session; the
// model only maps keys to session events and renders the result.
type Model struct {
	theme      themes.Theme
	clipboard  clipboard.Clipboard
	session    *session.Session
	status     string
	help       help.Model
	keymap     KeyMap
	categories components.ListView
	options    components.ListView
	panel      components.PasswordPanel
	config     Config
	statusID   int
	statusKind statusKind
	width      int
	height     int
	quitting   bool
}

// New creates a model from the given options.
func New(opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

func newModel(cfg Config) (Model, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s, err := session.New(cfg.Source, session.WithLogger(logger))
	if err != nil {
		return Model{}, fmt.Errorf("failed to start session: %w", err)
	}

	m := Model{
		theme:      cfg.Theme,
		clipboard:  cfg.Clipboard,
		session:    s,
		help:       help.New(),
		keymap:     DefaultKeyMap(),
		categories: components.NewListView("Password Types", cfg.Theme),
		options:    components.NewListView("Options", cfg.Theme),
		panel:      components.NewPasswordPanel("Preview", cfg.Theme),
		config:     cfg,
		width:      cfg.Width,
		height:     cfg.Height,
	}
	m.options.SetHint("Letters are always included")
	m.handleResize()

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case copyResultMsg:
		m.statusID++
		if msg.ok {
			m.status = "Copied to clipboard"
			m.statusKind = statusSuccess
		} else {
			m.status = "Clipboard unavailable"
			m.statusKind = statusError
		}
		id := m.statusID
		return m, tea.Tick(statusTimeout, func(_ time.Time) tea.Msg {
			return clearStatusMsg{id: id}
		})

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusKind = statusNone
		}
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Session exposes the underlying session for inspection.
func (m Model) Session() *session.Session {
	return m.session
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keymap.Copy):
		return m, m.copyPassword()
	case key.Matches(msg, m.keymap.Regenerate):
		m.session.HandleEvent(session.Regenerate)
		return m, nil
	}

	if m.session.State() == session.StateBrowsing {
		return m.handleBrowsingKey(msg)
	}
	return m.handleConfiguringKey(msg)
}

func (m Model) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Down):
		m.session.HandleEvent(session.NavigateNext)
	case key.Matches(msg, m.keymap.Up):
		m.session.HandleEvent(session.NavigatePrevious)
	case key.Matches(msg, m.keymap.Select):
		m.session.HandleEvent(session.ConfirmSelection)
	}
	return m, nil
}

func (m Model) handleConfiguringKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.session.HandleEvent(session.Back)
	case key.Matches(msg, m.keymap.Left):
		m.session.HandleEvent(session.DecreaseLength)
	case key.Matches(msg, m.keymap.Right):
		m.session.HandleEvent(session.IncreaseLength)
	case key.Matches(msg, m.keymap.Down):
		m.session.HandleEvent(session.NavigateOptionNext)
	case key.Matches(msg, m.keymap.Up):
		m.session.HandleEvent(session.NavigateOptionPrevious)
	case key.Matches(msg, m.keymap.Select, m.keymap.Toggle):
		m.session.HandleEvent(session.ToggleCurrentOption)
	case key.Matches(msg, m.keymap.ToggleAt):
		n := int(msg.Runes[0] - '1')
		m.session.HandleEvent(session.ToggleOptionAt(n))
	}
	return m, nil
}

// copyPassword writes the current password in the background. The result
// only drives the status line; failures never reach the session.
func (m Model) copyPassword() tea.Cmd {
	cb := m.clipboard
	pw := m.session.CurrentPassword()
	return func() tea.Msg {
		return copyResultMsg{ok: clipboard.Copy(cb, pw)}
	}
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.help.Width = m.width

	if m.width < 80 {
		m.categories.Resize(m.width - 2)
		m.options.Resize(m.width - 2)
		m.panel.Resize(m.width - 2)
		return
	}

	side := 30
	m.categories.Resize(side)
	m.options.Resize(side)
	m.panel.Resize(m.width - side - 6)
}
