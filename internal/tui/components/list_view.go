package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/passforge/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

const highlightSymbol = ">> "

// ListView renders a titled list with one highlighted row.
type ListView struct {
	theme   themes.Theme
	title   string
	hint    string
	items   []string
	cursor  int
	width   int
	focused bool
}

// NewListView creates an empty list view.
func NewListView(title string, theme themes.Theme) ListView {
	return ListView{
		title: title,
		theme: theme,
	}
}

// Labels converts items to display strings.
func Labels[T fmt.Stringer](items []T) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.String()
	}
	return labels
}

// SetItems replaces the rows and cursor.
func (v *ListView) SetItems(items []string, cursor int) {
	v.items = items
	v.cursor = cursor
}

// SetHint sets the muted line shown under the rows.
func (v *ListView) SetHint(hint string) {
	v.hint = hint
}

// SetFocused controls whether the list draws with the focus border.
func (v *ListView) SetFocused(focused bool) {
	v.focused = focused
}

// Resize updates the component width.
func (v *ListView) Resize(width int) {
	v.width = width
}

// View renders the list.
func (v ListView) View() string {
	lines := make([]string, 0, len(v.items)+3)
	lines = append(lines, v.theme.Title.Render(v.title), "")

	pad := strings.Repeat(" ", len(highlightSymbol))
	for i, item := range v.items {
		if i == v.cursor {
			marker := lipgloss.NewStyle().Foreground(v.theme.Primary).Render(highlightSymbol)
			lines = append(lines, marker+v.theme.Selected.Render(item))
			continue
		}
		lines = append(lines, pad+v.theme.Normal.Render(item))
	}

	if v.hint != "" {
		lines = append(lines, "", v.theme.Subtitle.Render(v.hint))
	}

	box := v.theme.BorderedBox
	if v.focused {
		box = v.theme.FocusedBox
	}
	if v.width > 0 {
		box = box.Width(v.width)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
