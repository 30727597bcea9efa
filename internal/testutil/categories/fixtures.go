package categories

// Fixture is a predefined category set.
type Fixture interface {
	Name() string
	Description() string
	Categories() []CategoryName
}

type fixture struct {
	name        string
	description string
	categories  []CategoryName
}

func (f *fixture) Name() string               { return f.name }
func (f *fixture) Description() string        { return f.description }
func (f *fixture) Categories() []CategoryName { return f.categories }

// Predefined fixtures.
var (
	// FixtureStandard mirrors the production registry.
	FixtureStandard = &fixture{
		name:        "Standard",
		description: "Production categories in display order",
		categories:  []CategoryName{CategoryPin, CategoryRandom},
	}

	// FixtureRandomFirst reverses the production order.
	FixtureRandomFirst = &fixture{
		name:        "RandomFirst",
		description: "Random listed ahead of Pin",
		categories:  []CategoryName{CategoryRandom, CategoryPin},
	}

	// FixtureBoundaries holds categories with narrow length ranges.
	FixtureBoundaries = &fixture{
		name:        "Boundaries",
		description: "Tiny ranges for exercising clamping and subset coverage",
		categories:  []CategoryName{CategoryShortPin, CategoryLetters, CategoryNoSymbols},
	}
)
