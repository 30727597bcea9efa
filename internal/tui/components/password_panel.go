package components

import (
	"fmt"

	"github.com/Veraticus/passforge/internal/model"
	"github.com/Veraticus/passforge/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// PasswordPanel shows the current category, length and password.
type PasswordPanel struct {
	theme    themes.Theme
	title    string
	password string
	category model.Category
	length   int
	width    int
	focused  bool
}

// NewPasswordPanel creates a panel with the given title.
func NewPasswordPanel(title string, theme themes.Theme) PasswordPanel {
	return PasswordPanel{
		title: title,
		theme: theme,
	}
}

// SetTitle changes the panel heading.
func (p *PasswordPanel) SetTitle(title string) {
	p.title = title
}

// SetPassword updates the displayed values.
func (p *PasswordPanel) SetPassword(category model.Category, length int, password string) {
	p.category = category
	p.length = length
	p.password = password
}

// SetFocused controls whether the panel draws with the focus border.
func (p *PasswordPanel) SetFocused(focused bool) {
	p.focused = focused
}

// Resize updates the component width.
func (p *PasswordPanel) Resize(width int) {
	p.width = width
}

// View renders the panel.
func (p PasswordPanel) View() string {
	muted := lipgloss.NewStyle().Foreground(p.theme.Muted)

	pw := p.theme.Password
	if p.width > 8 && len(p.password) > p.width-8 {
		// Long Random passwords wrap inside the panel.
		pw = pw.Width(p.width - 8)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		p.theme.Title.Render(p.title),
		"",
		fmt.Sprintf("Type:     %s", p.theme.Bold.Render(p.category.Name)),
		fmt.Sprintf("Length:   %s %s",
			p.theme.Bold.Render(fmt.Sprintf("%d", p.length)),
			muted.Render(fmt.Sprintf("(%s)", p.category.Bounds))),
		"",
		"Password:",
		pw.Render(p.password),
	)

	box := p.theme.BorderedBox
	if p.focused {
		box = p.theme.FocusedBox
	}
	if p.width > 0 {
		box = box.Width(p.width)
	}
	return box.Render(content)
}
