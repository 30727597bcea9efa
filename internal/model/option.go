package model

import "fmt"

// OptionKind names a composition flag.
type OptionKind string

const (
	// OptionNumbers includes digits.
	OptionNumbers OptionKind = "numbers"
	// OptionSymbols includes symbols.
	OptionSymbols OptionKind = "symbols"
)

// Label returns the human-readable name.
func (k OptionKind) Label() string {
	switch k {
	case OptionNumbers:
		return "Numbers"
	case OptionSymbols:
		return "Symbols"
	default:
		return string(k)
	}
}

// Option is a single boolean composition flag.
type Option struct {
	Kind    OptionKind
	Enabled bool
}

func (o Option) String() string {
	return fmt.Sprintf("%s: %t", o.Kind.Label(), o.Enabled)
}

// Enabled reports whether the flag of the given kind is set in opts.
// Missing flags count as disabled.
func Enabled(opts []Option, kind OptionKind) bool {
	for _, o := range opts {
		if o.Kind == kind {
			return o.Enabled
		}
	}
	return false
}

// WithOption returns a copy of opts with the given flag set.
func WithOption(opts []Option, kind OptionKind, enabled bool) []Option {
	out := make([]Option, len(opts))
	copy(out, opts)
	for i := range out {
		if out[i].Kind == kind {
			out[i].Enabled = enabled
		}
	}
	return out
}
