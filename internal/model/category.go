// Package model defines the password categories offered by the generator.
package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/passforge/internal/common"
)

// Kind identifies a password category.
type Kind string

const (
	// KindPin is a digits-only PIN.
	KindPin Kind = "pin"
	// KindRandom is a mixed string of letters with optional digits and symbols.
	KindRandom Kind = "random"
)

// Length bounds for each category, inclusive.
const (
	PinMinLength    = 3
	PinMaxLength    = 12
	RandomMinLength = 8
	RandomMaxLength = 100
)

// Bounds is an inclusive length range.
type Bounds struct {
	Min int
	Max int
}

// Clamp forces n into the range.
func (b Bounds) Clamp(n int) int {
	if n < b.Min {
		return b.Min
	}
	if n > b.Max {
		return b.Max
	}
	return n
}

// Contains reports whether n lies within the range.
func (b Bounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

// Valid reports whether the range is non-empty and starts at 1 or above.
func (b Bounds) Valid() bool {
	return b.Min >= 1 && b.Min <= b.Max
}

func (b Bounds) String() string {
	return fmt.Sprintf("%d-%d", b.Min, b.Max)
}

// Category is a selectable password kind. Bounds never change at runtime;
// Options holds the default values of the category's composition flags.
type Category struct {
	Name    string
	Kind    Kind
	Options []Option
	Bounds  Bounds
}

func (c Category) String() string {
	return c.Name
}

// HasOptions reports whether the category exposes composition flags.
func (c Category) HasOptions() bool {
	return len(c.Options) > 0
}

// DefaultOptions returns a fresh copy of the category's option defaults.
func (c Category) DefaultOptions() []Option {
	if len(c.Options) == 0 {
		return nil
	}
	opts := make([]Option, len(c.Options))
	copy(opts, c.Options)
	return opts
}

var registry = []Category{
	{
		Name:   "Pin",
		Kind:   KindPin,
		Bounds: Bounds{Min: PinMinLength, Max: PinMaxLength},
	},
	{
		Name:   "Random",
		Kind:   KindRandom,
		Bounds: Bounds{Min: RandomMinLength, Max: RandomMaxLength},
		Options: []Option{
			{Kind: OptionNumbers, Enabled: true},
			{Kind: OptionSymbols, Enabled: true},
		},
	},
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(registry))
	for i, c := range registry {
		c.Options = c.DefaultOptions()
		out[i] = c
	}
	return out
}

// Lookup finds a category by name or kind, ignoring case.
func Lookup(name string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(c.Name, name) || strings.EqualFold(string(c.Kind), name) {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %q", common.ErrUnknownCategory, name)
}
