// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Generation errors.
	ErrEmptyClassSet     = errors.New("no character classes to draw from")
	ErrUnknownCategory   = errors.New("unknown password category")
	ErrLengthOutOfBounds = errors.New("length outside category bounds")

	// Selection errors.
	ErrInvalidSelectionIndex = errors.New("selection index out of range")

	// Clipboard errors.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
