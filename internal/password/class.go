package password

import "slices"

// ClassSpec is a set of characters eligible for a generated string, either a
// contiguous rune range or an explicit list.
type ClassSpec struct {
	name     string
	set      []rune
	first    rune
	last     rune
	explicit bool
}

// Range builds a class covering first..last inclusive.
func Range(name string, first, last rune) ClassSpec {
	if last < first {
		first, last = last, first
	}
	return ClassSpec{name: name, first: first, last: last}
}

// Set builds a class from an explicit character list.
func Set(name string, chars string) ClassSpec {
	return ClassSpec{name: name, set: []rune(chars), explicit: true}
}

// Name returns the class label.
func (c ClassSpec) Name() string {
	return c.name
}

// Len returns the number of characters in the class.
func (c ClassSpec) Len() int {
	if c.explicit {
		return len(c.set)
	}
	return int(c.last-c.first) + 1
}

// At returns the i-th character of the class.
func (c ClassSpec) At(i int) rune {
	if c.explicit {
		return c.set[i]
	}
	return c.first + rune(i)
}

// Contains reports whether r belongs to the class.
func (c ClassSpec) Contains(r rune) bool {
	if c.explicit {
		return slices.Contains(c.set, r)
	}
	return r >= c.first && r <= c.last
}

// Symbols are the OWASP password special characters without whitespace,
// backtick, comma, period, quotes and backslash.
const Symbols = "!#$%&()*+-/:;<=>?@[]^_{|}"

// Predefined classes.
var (
	Digits    = Range("digits", '0', '9')
	Lowercase = Range("lowercase", 'a', 'z')
	Uppercase = Range("uppercase", 'A', 'Z')
	Symbol    = Set("symbols", Symbols)
)
