// Package selection provides a cyclic single-cursor list.
package selection

import (
	"fmt"

	"github.com/Veraticus/passforge/internal/common"
)

// List is an ordered sequence of items with at most one selected index.
// Navigation wraps around both ends.
type List[T any] struct {
	items  []T
	cursor int
	active bool
}

// New creates a list with the cursor on the first item. An empty list has
// no cursor.
func New[T any](items []T) *List[T] {
	owned := make([]T, len(items))
	copy(owned, items)
	return &List[T]{
		items:  owned,
		active: len(owned) > 0,
	}
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns a copy of the items.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Cursor returns the selected index and whether one is set.
func (l *List[T]) Cursor() (int, bool) {
	return l.cursor, l.active
}

// Select moves the cursor to index. Out-of-range indices leave the list
// unchanged and return ErrInvalidSelectionIndex.
func (l *List[T]) Select(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d not in [0,%d)", common.ErrInvalidSelectionIndex, index, len(l.items))
	}
	l.cursor = index
	l.active = true
	return nil
}

// Next advances the cursor, wrapping from the last item to the first.
func (l *List[T]) Next() {
	if !l.active {
		return
	}
	l.cursor = (l.cursor + 1) % len(l.items)
}

// Previous moves the cursor back, wrapping from the first item to the last.
func (l *List[T]) Previous() {
	if !l.active {
		return
	}
	n := len(l.items)
	l.cursor = (l.cursor + n - 1) % n
}

// Current returns the selected item.
func (l *List[T]) Current() (T, bool) {
	if !l.active {
		var zero T
		return zero, false
	}
	return l.items[l.cursor], true
}

// SetCurrent replaces the selected item.
func (l *List[T]) SetCurrent(item T) bool {
	if !l.active {
		return false
	}
	l.items[l.cursor] = item
	return true
}
