package tui

import (
	"github.com/Veraticus/passforge/internal/session"
	"github.com/Veraticus/passforge/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

// render lays out the list, panel, status and help for the current state.
func (m Model) render() string {
	s := m.session
	configuring := s.State() == session.StateConfiguring

	items, cursor := s.CategoryList()
	m.categories.SetItems(components.Labels(items), cursor)
	m.categories.SetFocused(!configuring)

	m.panel.SetPassword(s.CurrentCategory(), s.CurrentLength(), s.CurrentPassword())
	m.panel.SetFocused(configuring)
	if configuring {
		m.panel.SetTitle("Password Generator")
	} else {
		m.panel.SetTitle("Preview")
	}

	var side string
	if configuring {
		if opts, optCursor, ok := s.OptionList(); ok {
			m.options.SetItems(components.Labels(opts), optCursor)
			m.options.SetFocused(true)
			side = m.options.View()
		}
	} else {
		side = m.categories.View()
	}

	var body string
	switch {
	case side == "":
		body = m.panel.View()
	case m.width < 80:
		body = lipgloss.JoinVertical(lipgloss.Left, side, m.panel.View())
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", m.panel.View())
	}

	sections := []string{body, m.renderStatus()}
	if m.config.ShowHelp {
		keys := stateKeyMap{
			keys:       m.keymap,
			state:      s.State(),
			hasOptions: s.CurrentCategory().HasOptions(),
		}
		sections = append(sections, m.help.View(keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatus renders the transient copy notice line.
func (m Model) renderStatus() string {
	switch m.statusKind {
	case statusSuccess:
		return m.theme.StatusSuccess.Render("✓ " + m.status)
	case statusError:
		return m.theme.StatusError.Render("✗ " + m.status)
	default:
		return ""
	}
}
