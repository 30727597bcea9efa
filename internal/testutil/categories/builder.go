// Package categories builds custom category registries for tests.
//
// Example usage:
//
//	cats := categories.NewBuilder().
//		WithFixture(categories.FixtureRandomFirst).
//		WithCategory(categories.CategoryShortPin).
//		Build()
//
//	s, err := session.New(src, session.WithCategories(cats))
package categories

import (
	"testing"

	"github.com/Veraticus/passforge/internal/model"
)

// Builder provides a fluent interface for constructing test registries.
type Builder interface {
	// WithCategory adds a single known category.
	WithCategory(name CategoryName) Builder

	// WithCategories adds multiple known categories in order.
	WithCategories(names ...CategoryName) Builder

	// WithCustom adds a category that has no predefined name.
	WithCustom(c model.Category) Builder

	// WithFixture adds every category of a predefined fixture.
	WithFixture(fixture Fixture) Builder

	// Build returns independent copies of the accumulated categories.
	Build() Categories
}

// CategoryName is a strongly-typed category name.
type CategoryName string

func (c CategoryName) String() string {
	return string(c)
}

// Names of the production categories plus test-only variants.
const (
	CategoryPin       CategoryName = "Pin"
	CategoryRandom    CategoryName = "Random"
	CategoryShortPin  CategoryName = "Short Pin"
	CategoryLetters   CategoryName = "Letters"
	CategoryNoSymbols CategoryName = "No Symbols"
)

var known = map[CategoryName]model.Category{
	CategoryShortPin: {
		Name:   CategoryShortPin.String(),
		Kind:   model.KindPin,
		Bounds: model.Bounds{Min: 1, Max: 2},
	},
	CategoryLetters: {
		Name:   CategoryLetters.String(),
		Kind:   model.KindRandom,
		Bounds: model.Bounds{Min: 1, Max: 4},
	},
	CategoryNoSymbols: {
		Name:   CategoryNoSymbols.String(),
		Kind:   model.KindRandom,
		Bounds: model.Bounds{Min: 4, Max: 6},
		Options: []model.Option{
			{Kind: model.OptionNumbers, Enabled: true},
			{Kind: model.OptionSymbols, Enabled: false},
		},
	},
}

func init() {
	for _, c := range model.Categories() {
		known[CategoryName(c.Name)] = c
	}
}

// Categories is a built test registry.
type Categories []model.Category

// Find returns the category with the given name, or nil.
func (c Categories) Find(name CategoryName) *model.Category {
	for i := range c {
		if c[i].Name == name.String() {
			return &c[i]
		}
	}
	return nil
}

// MustFind returns the category with the given name or fails the test.
func (c Categories) MustFind(t *testing.T, name CategoryName) model.Category {
	t.Helper()
	cat := c.Find(name)
	if cat == nil {
		t.Fatalf("category %q not found in test registry", name)
	}
	return *cat
}

// Names returns the category names in order.
func (c Categories) Names() []string {
	names := make([]string, len(c))
	for i, cat := range c {
		names[i] = cat.Name
	}
	return names
}

type builder struct {
	categories []model.Category
}

// NewBuilder returns an empty builder.
func NewBuilder() Builder {
	return &builder{}
}

func (b *builder) WithCategory(name CategoryName) Builder {
	c, ok := known[name]
	if !ok {
		panic("categories: unknown category " + name.String())
	}
	b.categories = append(b.categories, c)
	return b
}

func (b *builder) WithCategories(names ...CategoryName) Builder {
	for _, name := range names {
		b.WithCategory(name)
	}
	return b
}

func (b *builder) WithCustom(c model.Category) Builder {
	b.categories = append(b.categories, c)
	return b
}

func (b *builder) WithFixture(fixture Fixture) Builder {
	return b.WithCategories(fixture.Categories()...)
}

func (b *builder) Build() Categories {
	out := make(Categories, len(b.categories))
	for i, c := range b.categories {
		c.Options = c.DefaultOptions()
		out[i] = c
	}
	return out
}
