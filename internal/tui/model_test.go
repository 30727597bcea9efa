package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/Veraticus/passforge/internal/model"
	"github.com/Veraticus/passforge/internal/password"
	"github.com/Veraticus/passforge/internal/session"
	tuitest "github.com/Veraticus/passforge/internal/tui/testing"
	"github.com/Veraticus/passforge/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	err    error
	copied []string
}

func (f *fakeClipboard) SetText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func newTestModel(t *testing.T, cb *fakeClipboard) Model {
	t.Helper()
	m, err := New(
		WithSource(password.NewSource(42)),
		WithClipboard(cb),
		WithTheme(themes.Default),
		WithSize(120, 30),
	)
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestModel_InitialView(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	assert.Nil(t, m.Init())

	out := tuitest.StripANSI(m.View())
	assert.True(t, tuitest.ContainsInOrder(out, "Password Types", ">> Pin", "Random"))
	assert.Contains(t, out, "Preview")
	assert.Contains(t, out, m.Session().CurrentPassword())
}

func TestModel_BrowsingNavigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		wantKind model.Kind
	}{
		{name: "j moves down", keys: []tea.Msg{tuitest.KeyPress("j")}, wantKind: model.KindRandom},
		{name: "down arrow moves down", keys: []tea.Msg{tuitest.KeyDown()}, wantKind: model.KindRandom},
		{name: "k wraps to last", keys: []tea.Msg{tuitest.KeyPress("k")}, wantKind: model.KindRandom},
		{name: "down twice wraps to first", keys: []tea.Msg{tuitest.KeyDown(), tuitest.KeyDown()}, wantKind: model.KindPin},
		{name: "up then down returns", keys: []tea.Msg{tuitest.KeyUp(), tuitest.KeyDown()}, wantKind: model.KindPin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, &fakeClipboard{})
			m, _ = send(t, m, tt.keys...)

			assert.Equal(t, session.StateBrowsing, m.Session().State())
			assert.Equal(t, tt.wantKind, m.Session().CurrentCategory().Kind)
		})
	}
}

func TestModel_ConfigurePin(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})

	m, _ = send(t, m, tuitest.KeyEnter())
	require.Equal(t, session.StateConfiguring, m.Session().State())
	assert.Equal(t, 3, m.Session().CurrentLength())

	renderer := tuitest.NewTestRenderer()
	seq := tuitest.NewInputSequence().
		Repeat(tuitest.KeyRight(), 4).
		Add(tuitest.KeyPress("l"))
	next := seq.Apply(m, renderer)
	m = next.(Model)

	assert.Equal(t, 8, m.Session().CurrentLength())
	assert.Equal(t, 5, renderer.UpdateCount)

	out := renderer.Plain()
	assert.Contains(t, out, "Password Generator")
	assert.Contains(t, out, m.Session().CurrentPassword())
	assert.NotContains(t, out, "Password Types")

	m, _ = send(t, m, tuitest.KeyLeft(), tuitest.KeyPress("h"))
	assert.Equal(t, 6, m.Session().CurrentLength())
}

func TestModel_BackAndQuit(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})

	m, cmd := send(t, m, tuitest.KeyEnter(), tuitest.KeyPress("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, session.StateBrowsing, m.Session().State())

	m, cmd = send(t, m, tuitest.KeyEnter(), tuitest.KeyEsc())
	assert.Nil(t, cmd)
	assert.Equal(t, session.StateBrowsing, m.Session().State())

	m, cmd = send(t, m, tuitest.KeyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_ForceQuitWhileConfiguring(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})

	_, cmd := send(t, m, tuitest.KeyEnter(), tuitest.KeyCtrlC())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_RandomOptions(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m, _ = send(t, m, tuitest.KeyDown(), tuitest.KeyEnter())

	out := tuitest.StripANSI(m.View())
	assert.True(t, tuitest.ContainsInOrder(out, "Options", ">> Numbers: true", "Symbols: true"))

	m, _ = send(t, m, tuitest.KeySpace())
	assert.False(t, model.Enabled(m.Session().CurrentOptions(), model.OptionNumbers))

	m, _ = send(t, m, tuitest.KeyDown(), tuitest.KeyEnter())
	assert.False(t, model.Enabled(m.Session().CurrentOptions(), model.OptionSymbols))

	m, _ = send(t, m, tuitest.KeyPress("1"))
	assert.True(t, model.Enabled(m.Session().CurrentOptions(), model.OptionNumbers))

	m, _ = send(t, m, tuitest.KeyPress("9"))
	assert.Equal(t, []model.Option{
		{Kind: model.OptionNumbers, Enabled: true},
		{Kind: model.OptionSymbols, Enabled: false},
	}, m.Session().CurrentOptions())

	out = tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Symbols: false")
	assert.Contains(t, out, "Letters are always included")
}

func TestModel_Copy(t *testing.T) {
	cb := &fakeClipboard{}
	m := newTestModel(t, cb)
	pw := m.Session().CurrentPassword()

	m, cmd := send(t, m, tuitest.KeyPress("c"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, copyResultMsg{ok: true}, msg)
	assert.Equal(t, []string{pw}, cb.copied)

	m, tick := send(t, m, msg)
	assert.NotNil(t, tick)
	assert.Contains(t, tuitest.StripANSI(m.View()), "Copied to clipboard")
	assert.Equal(t, pw, m.Session().CurrentPassword())

	m, _ = send(t, m, clearStatusMsg{id: m.statusID})
	assert.NotContains(t, tuitest.StripANSI(m.View()), "Copied to clipboard")
}

func TestModel_CopyFailureIsNotFatal(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no display")}
	m := newTestModel(t, cb)
	pw := m.Session().CurrentPassword()

	m, cmd := send(t, m, tuitest.KeyPress("y"))
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	assert.Contains(t, tuitest.StripANSI(m.View()), "Clipboard unavailable")
	assert.Equal(t, pw, m.Session().CurrentPassword())
	assert.Equal(t, session.StateBrowsing, m.Session().State())
}

func TestModel_StaleStatusClearIgnored(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})

	m, _ = send(t, m, copyResultMsg{ok: true}, copyResultMsg{ok: false})
	m, _ = send(t, m, clearStatusMsg{id: 1})

	assert.Contains(t, tuitest.StripANSI(m.View()), "Clipboard unavailable")
}

func TestModel_Regenerate(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m, _ = send(t, m, tuitest.KeyDown(), tuitest.KeyEnter())
	before := m.Session().CurrentPassword()

	m, _ = send(t, m, tuitest.KeyPress("r"))
	assert.NotEqual(t, before, m.Session().CurrentPassword())
	assert.Len(t, m.Session().CurrentPassword(), model.RandomMinLength)
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	short := tuitest.StripANSI(m.View())
	assert.Contains(t, short, "select")

	m, _ = send(t, m, tuitest.KeyPress("?"))
	full := tuitest.StripANSI(m.View())
	assert.Contains(t, full, "force quit")
	assert.NotContains(t, short, "force quit")
}

func TestModel_NarrowLayout(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	renderer := tuitest.NewTestRenderer()
	renderer.Update(m, tuitest.WindowSize(60, 30))

	listRow, panelRow := -1, -1
	for i, line := range renderer.Lines() {
		plain := tuitest.StripANSI(line)
		if listRow < 0 && strings.Contains(plain, "Password Types") {
			listRow = i
		}
		if panelRow < 0 && strings.Contains(plain, "Preview") {
			panelRow = i
		}
	}
	require.GreaterOrEqual(t, listRow, 0)
	assert.Greater(t, panelRow, listRow, "narrow terminals stack the panel below the list")
}

func TestModel_HelpDisabled(t *testing.T) {
	m, err := New(WithSource(password.NewSource(1)), WithClipboard(&fakeClipboard{}), WithHelp(false))
	require.NoError(t, err)

	out := tuitest.StripANSI(m.View())
	assert.NotContains(t, out, "select")
}
