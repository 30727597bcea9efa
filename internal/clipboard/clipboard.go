// Package clipboard copies generated passwords to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/Veraticus/passforge/internal/common"
	"github.com/atotto/clipboard"
)

// Clipboard accepts text for the user to paste elsewhere.
type Clipboard interface {
	SetText(text string) error
}

// System writes to the OS clipboard through xclip/xsel/wl-copy, pbcopy or
// the Windows API.
type System struct{}

// NewSystem returns the OS clipboard.
func NewSystem() System {
	return System{}
}

// SetText replaces the clipboard contents.
func (System) SetText(text string) error {
	if clipboard.Unsupported {
		return common.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", common.ErrClipboardUnavailable, err)
	}
	return nil
}

// Disabled is a clipboard that always reports itself unavailable.
type Disabled struct{}

// SetText always fails.
func (Disabled) SetText(string) error {
	return common.ErrClipboardUnavailable
}

// Copy writes text to cb and reports whether it succeeded. Failures are
// logged and swallowed.
func Copy(cb Clipboard, text string) bool {
	if cb == nil {
		return false
	}
	if err := cb.SetText(text); err != nil {
		common.LogWarn(err, "Failed to copy password to clipboard", common.Fields{
			"length": len(text),
		})
		return false
	}
	common.LogDebug("Copied password to clipboard", common.Fields{
		"length": len(text),
	})
	return true
}
