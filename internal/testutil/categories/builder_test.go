package categories

import (
	"testing"

	"github.com/Veraticus/passforge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Fixtures(t *testing.T) {
	tests := []struct {
		name    string
		fixture Fixture
		want    []string
	}{
		{"standard", FixtureStandard, []string{"Pin", "Random"}},
		{"random first", FixtureRandomFirst, []string{"Random", "Pin"}},
		{"boundaries", FixtureBoundaries, []string{"Short Pin", "Letters", "No Symbols"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cats := NewBuilder().WithFixture(tt.fixture).Build()
			assert.Equal(t, tt.want, cats.Names())
		})
	}
}

func TestBuilder_StandardMatchesRegistry(t *testing.T) {
	assert.Equal(t, Categories(model.Categories()), NewBuilder().WithFixture(FixtureStandard).Build())
}

func TestBuilder_CustomAndKnown(t *testing.T) {
	cats := NewBuilder().
		WithCategory(CategoryNoSymbols).
		WithCustom(model.Category{Name: "Long Pin", Kind: model.KindPin, Bounds: model.Bounds{Min: 20, Max: 30}}).
		Build()

	require.Len(t, cats, 2)
	assert.False(t, model.Enabled(cats.MustFind(t, CategoryNoSymbols).Options, model.OptionSymbols))
	assert.Equal(t, 20, cats.MustFind(t, "Long Pin").Bounds.Min)
	assert.Nil(t, cats.Find(CategoryRandom))
}

func TestBuilder_BuildCopiesOptions(t *testing.T) {
	b := NewBuilder().WithCategory(CategoryRandom)
	first := b.Build()
	first[0].Options[0].Enabled = false

	second := b.Build()
	assert.True(t, second[0].Options[0].Enabled)
}

func TestBuilder_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { NewBuilder().WithCategory("Nope") })
}
