package model

import (
	"testing"

	"github.com/Veraticus/passforge/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 2)

	assert.Equal(t, KindPin, cats[0].Kind)
	assert.Equal(t, Bounds{Min: 3, Max: 12}, cats[0].Bounds)
	assert.False(t, cats[0].HasOptions())

	assert.Equal(t, KindRandom, cats[1].Kind)
	assert.Equal(t, Bounds{Min: 8, Max: 100}, cats[1].Bounds)
	assert.Equal(t, []Option{
		{Kind: OptionNumbers, Enabled: true},
		{Kind: OptionSymbols, Enabled: true},
	}, cats[1].Options)

	for _, c := range cats {
		assert.GreaterOrEqual(t, c.Bounds.Min, 1, c.Name)
		assert.LessOrEqual(t, c.Bounds.Min, c.Bounds.Max, c.Name)
	}
}

func TestCategoriesReturnsCopies(t *testing.T) {
	cats := Categories()
	cats[1].Options[0].Enabled = false
	cats[0].Bounds.Max = 99

	fresh := Categories()
	assert.True(t, fresh[1].Options[0].Enabled)
	assert.Equal(t, PinMaxLength, fresh[0].Bounds.Max)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantErr  bool
	}{
		{name: "display name", input: "Pin", wantKind: KindPin},
		{name: "kind lower case", input: "random", wantKind: KindRandom},
		{name: "mixed case", input: "RaNdOm", wantKind: KindRandom},
		{name: "unknown", input: "passphrase", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Lookup(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, c.Kind)
		})
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{Min: 3, Max: 12}

	assert.Equal(t, 3, b.Clamp(-4))
	assert.Equal(t, 3, b.Clamp(2))
	assert.Equal(t, 7, b.Clamp(7))
	assert.Equal(t, 12, b.Clamp(13))

	assert.True(t, b.Contains(3))
	assert.True(t, b.Contains(12))
	assert.False(t, b.Contains(13))
	assert.Equal(t, "3-12", b.String())
}

func TestBounds_Valid(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		want   bool
	}{
		{name: "pin", bounds: Bounds{Min: PinMinLength, Max: PinMaxLength}, want: true},
		{name: "single length", bounds: Bounds{Min: 1, Max: 1}, want: true},
		{name: "inverted", bounds: Bounds{Min: 5, Max: 2}},
		{name: "zero minimum", bounds: Bounds{Min: 0, Max: 4}},
		{name: "negative", bounds: Bounds{Min: -3, Max: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bounds.Valid())
		})
	}

	for _, c := range Categories() {
		assert.True(t, c.Bounds.Valid(), c.Name)
	}
}

func TestOptions(t *testing.T) {
	opts := []Option{
		{Kind: OptionNumbers, Enabled: true},
		{Kind: OptionSymbols, Enabled: true},
	}

	assert.True(t, Enabled(opts, OptionNumbers))
	assert.False(t, Enabled(nil, OptionNumbers))

	off := WithOption(opts, OptionSymbols, false)
	assert.False(t, Enabled(off, OptionSymbols))
	assert.True(t, Enabled(opts, OptionSymbols), "original slice must be untouched")

	assert.Equal(t, "Numbers: true", opts[0].String())
	assert.Equal(t, "Symbols: false", off[1].String())
}
