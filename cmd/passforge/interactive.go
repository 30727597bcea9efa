package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/passforge/internal/common"
	"github.com/Veraticus/passforge/internal/config"
	"github.com/Veraticus/passforge/internal/password"
	"github.com/Veraticus/passforge/internal/tui"
	"github.com/Veraticus/passforge/internal/tui/themes"
	"github.com/spf13/cobra"
)

func runInteractive(cmd *cobra.Command, _ []string) error {
	opts, err := tuiOptions(settings)
	if err != nil {
		return err
	}

	slog.Debug("Starting interactive picker", "theme", settings.Theme)
	if err := tui.Run(cmd.Context(), opts...); err != nil {
		common.LogError(err, "Interactive session failed", common.Fields{
			"theme": settings.Theme,
		})
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}

// tuiOptions translates settings into TUI options.
func tuiOptions(s config.Settings) ([]tui.Option, error) {
	theme, ok := themes.ByName(s.Theme)
	if !ok {
		return nil, common.NewUserError("Unknown theme", fmt.Errorf("%w: %q", common.ErrInvalidConfig, s.Theme))
	}

	return []tui.Option{
		tui.WithTheme(theme),
		tui.WithClipboard(clipboardFor(s.ClipboardEnabled)),
		tui.WithSource(password.NewSource(s.Seed)),
		tui.WithLogger(slog.Default()),
	}, nil
}
