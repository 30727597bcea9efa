package tui

import (
	"log/slog"

	"github.com/Veraticus/passforge/internal/clipboard"
	"github.com/Veraticus/passforge/internal/password"
	"github.com/Veraticus/passforge/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Clipboard clipboard.Clipboard
	Source    password.Source
	Logger    *slog.Logger
	Width     int
	Height    int
	ShowHelp  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Clipboard: clipboard.NewSystem(),
		Width:     80,
		Height:    24,
		ShowHelp:  true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithClipboard sets the clipboard used by the copy key.
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(c *Config) {
		c.Clipboard = cb
	}
}

// WithSource sets the random source, e.g. a seeded one for reproducible runs.
func WithSource(src password.Source) Option {
	return func(c *Config) {
		c.Source = src
	}
}

// WithLogger sets the logger passed to the session.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithHelp toggles the key help footer.
func WithHelp(enabled bool) Option {
	return func(c *Config) {
		c.ShowHelp = enabled
	}
}
