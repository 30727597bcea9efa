// Package password generates random strings constrained to character classes.
package password

import (
	"fmt"
	"strings"

	"github.com/Veraticus/passforge/internal/common"
	"github.com/Veraticus/passforge/internal/model"
)

// Generate returns a string of length characters drawn from classes.
//
// When length >= len(classes) every class appears at least once and the
// remaining positions pick a class uniformly at random. When length is
// smaller, a uniformly random subset of length classes contributes one
// character each. Class order is shuffled before characters are drawn, so
// the covering characters land at unpredictable positions.
func Generate(src Source, length int, classes []ClassSpec) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if len(classes) == 0 {
		return "", common.ErrEmptyClassSet
	}
	for _, c := range classes {
		if c.Len() == 0 {
			return "", fmt.Errorf("%w: class %q has no characters", common.ErrEmptyClassSet, c.Name())
		}
	}

	picks := make([]int, 0, length)
	if length >= len(classes) {
		for i := range classes {
			picks = append(picks, i)
		}
		for len(picks) < length {
			picks = append(picks, src.IntN(len(classes)))
		}
	} else {
		perm := make([]int, len(classes))
		for i := range perm {
			perm[i] = i
		}
		src.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		picks = append(picks, perm[:length]...)
	}

	src.Shuffle(len(picks), func(i, j int) { picks[i], picks[j] = picks[j], picks[i] })

	var b strings.Builder
	b.Grow(length)
	for _, ci := range picks {
		class := classes[ci]
		b.WriteRune(class.At(src.IntN(class.Len())))
	}
	return b.String(), nil
}

// ClassesFor maps a category and its option flags to character classes.
// Random always includes both letter cases, so its class set is never empty.
func ClassesFor(kind model.Kind, opts []model.Option) ([]ClassSpec, error) {
	switch kind {
	case model.KindPin:
		return []ClassSpec{Digits}, nil
	case model.KindRandom:
		classes := make([]ClassSpec, 0, 4)
		if model.Enabled(opts, model.OptionNumbers) {
			classes = append(classes, Digits)
		}
		classes = append(classes, Lowercase, Uppercase)
		if model.Enabled(opts, model.OptionSymbols) {
			classes = append(classes, Symbol)
		}
		return classes, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, kind)
	}
}

// ForCategory generates a password for the category with the given flags.
func ForCategory(src Source, category model.Category, length int, opts []model.Option) (string, error) {
	classes, err := ClassesFor(category.Kind, opts)
	if err != nil {
		return "", err
	}
	pw, err := Generate(src, length, classes)
	if err != nil {
		return "", fmt.Errorf("generating %s password: %w", category.Name, err)
	}
	return pw, nil
}
