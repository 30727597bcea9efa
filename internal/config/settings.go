package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/passforge/internal/common"
	"github.com/spf13/viper"
)

// Settings holds the user-tunable parts of the application.
type Settings struct {
	Theme            string
	LogLevel         string
	LogFormat        string
	LogFile          string
	Seed             uint64
	ClipboardEnabled bool
}

// Viper keys.
const (
	KeyTheme            = "ui.theme"
	KeyClipboardEnabled = "clipboard.enabled"
	KeySeed             = "generator.seed"
	KeyLogLevel         = "logging.level"
	KeyLogFormat        = "logging.format"
	KeyLogFile          = "logging.file"
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyClipboardEnabled, true)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Theme:            "default",
		ClipboardEnabled: true,
		LogLevel:         "info",
		LogFormat:        "console",
	}
}

// Load reads settings from v and validates them.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Theme:            strings.ToLower(v.GetString(KeyTheme)),
		ClipboardEnabled: v.GetBool(KeyClipboardEnabled),
		Seed:             v.GetUint64(KeySeed),
		LogLevel:         v.GetString(KeyLogLevel),
		LogFormat:        v.GetString(KeyLogFormat),
		LogFile:          ExpandPath(v.GetString(KeyLogFile)),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks enumerated values.
func (s Settings) Validate() error {
	switch s.Theme {
	case "default", "catppuccin", "catppuccin-mocha":
	default:
		return fmt.Errorf("%w: unknown theme %q", common.ErrInvalidConfig, s.Theme)
	}

	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}

	switch s.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", common.ErrInvalidConfig, s.LogFormat)
	}

	return nil
}
