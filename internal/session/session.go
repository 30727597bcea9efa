// Package session holds the live state of the password picker: which
// category is highlighted or being configured, the chosen length and
// flags, and the password they produced.
//
// A Session is not safe for concurrent use. The UI feeds it one event at a
// time and reads it between events.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/passforge/internal/common"
	"github.com/Veraticus/passforge/internal/model"
	"github.com/Veraticus/passforge/internal/password"
	"github.com/Veraticus/passforge/internal/selection"
)

// State is the session's mode.
type State int

const (
	// StateBrowsing means the user is choosing a category.
	StateBrowsing State = iota
	// StateConfiguring means the user is adjusting length and options.
	StateConfiguring
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateConfiguring:
		return "configuring"
	default:
		return "unknown"
	}
}

// Session is the password picker state machine.
type Session struct {
	src        password.Source
	logger     *slog.Logger
	categories *selection.List[model.Category]
	options    *selection.List[model.Option]
	password   string
	category   model.Category
	length     int
	state      State
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for transition tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithCategories replaces the registry's categories.
func WithCategories(categories []model.Category) Option {
	return func(s *Session) {
		s.categories = selection.New(categories)
	}
}

// New starts a session browsing the first category at its minimum length,
// with a preview password already generated. A nil src uses a freshly
// seeded password.NewSource.
func New(src password.Source, opts ...Option) (*Session, error) {
	if src == nil {
		src = password.NewSource(0)
	}

	s := &Session{
		src:        src,
		logger:     slog.Default(),
		categories: selection.New(model.Categories()),
		state:      StateBrowsing,
	}
	for _, opt := range opts {
		opt(s)
	}

	current, ok := s.categories.Current()
	if !ok {
		return nil, fmt.Errorf("%w: no categories to choose from", common.ErrInvalidConfig)
	}
	for _, c := range s.categories.Items() {
		if err := validateCategory(c); err != nil {
			return nil, err
		}
	}
	s.reset(current)

	return s, nil
}

// validateCategory rejects categories that regenerate could not serve.
func validateCategory(c model.Category) error {
	if !c.Bounds.Valid() {
		return fmt.Errorf("%w: category %q has length range %s", common.ErrInvalidConfig, c.Name, c.Bounds)
	}
	classes, err := password.ClassesFor(c.Kind, c.Options)
	if err != nil {
		return fmt.Errorf("%w: category %q: %w", common.ErrInvalidConfig, c.Name, err)
	}
	if len(classes) == 0 {
		return fmt.Errorf("%w: category %q has no characters to draw from", common.ErrInvalidConfig, c.Name)
	}
	return nil
}

// HandleEvent applies ev. Events that make no sense in the current state are
// ignored. Any change to category, length or options regenerates the
// password before returning.
func (s *Session) HandleEvent(ev Event) {
	s.logger.Debug("handling event", "event", ev.Kind.String(), "state", s.state.String())

	switch s.state {
	case StateBrowsing:
		s.handleBrowsing(ev)
	case StateConfiguring:
		s.handleConfiguring(ev)
	}
}

func (s *Session) handleBrowsing(ev Event) {
	switch ev.Kind {
	case EventNavigateNext:
		s.categories.Next()
		s.preview()
	case EventNavigatePrevious:
		s.categories.Previous()
		s.preview()
	case EventConfirmSelection:
		current, ok := s.categories.Current()
		if !ok {
			return
		}
		s.state = StateConfiguring
		s.reset(current)
	case EventRegenerate:
		s.regenerate()
	}
}

func (s *Session) handleConfiguring(ev Event) {
	switch ev.Kind {
	case EventBack:
		s.state = StateBrowsing
	case EventIncreaseLength:
		s.length = s.category.Bounds.Clamp(s.length + 1)
		s.regenerate()
	case EventDecreaseLength:
		s.length = s.category.Bounds.Clamp(s.length - 1)
		s.regenerate()
	case EventNavigateNext, EventNavigateOptionNext:
		if s.options == nil {
			return
		}
		s.options.Next()
		s.regenerate()
	case EventNavigatePrevious, EventNavigateOptionPrevious:
		if s.options == nil {
			return
		}
		s.options.Previous()
		s.regenerate()
	case EventToggleCurrentOption:
		if s.toggleCurrent() {
			s.regenerate()
		}
	case EventToggleOptionAt:
		if s.options == nil {
			return
		}
		if err := s.options.Select(ev.Index); err != nil {
			s.logger.Debug("ignoring toggle", "index", ev.Index, "error", err)
			return
		}
		if s.toggleCurrent() {
			s.regenerate()
		}
	case EventRegenerate:
		s.regenerate()
	}
}

func (s *Session) preview() {
	current, ok := s.categories.Current()
	if !ok {
		return
	}
	s.reset(current)
}

// reset switches to c at its minimum length with default flags.
func (s *Session) reset(c model.Category) {
	s.category = c
	s.length = c.Bounds.Clamp(c.Bounds.Min)
	if c.HasOptions() {
		s.options = selection.New(c.DefaultOptions())
	} else {
		s.options = nil
	}
	s.regenerate()
}

func (s *Session) toggleCurrent() bool {
	if s.options == nil {
		return false
	}
	opt, ok := s.options.Current()
	if !ok {
		return false
	}
	opt.Enabled = !opt.Enabled
	return s.options.SetCurrent(opt)
}

// regenerate refreshes the password. The class set for every registered
// category is non-empty, so a failure here is a programming error.
func (s *Session) regenerate() {
	pw, err := password.ForCategory(s.src, s.category, s.length, s.CurrentOptions())
	if err != nil {
		if errors.Is(err, common.ErrEmptyClassSet) {
			panic(fmt.Sprintf("session: category %s produced no character classes: %v", s.category.Name, err))
		}
		panic(fmt.Sprintf("session: %v", err))
	}
	s.password = pw
	s.logger.Debug("password regenerated",
		"category", s.category.Name,
		"length", s.length,
		"options", s.CurrentOptions())
}

// State returns the current mode.
func (s *Session) State() State {
	return s.state
}

// CurrentCategory returns the highlighted or configured category.
func (s *Session) CurrentCategory() model.Category {
	return s.category
}

// CurrentLength returns the length of the current password.
func (s *Session) CurrentLength() int {
	return s.length
}

// CurrentPassword returns the last generated password.
func (s *Session) CurrentPassword() string {
	return s.password
}

// CurrentOptions returns the option flags in effect, or nil for categories
// without options.
func (s *Session) CurrentOptions() []model.Option {
	if s.options == nil {
		return nil
	}
	return s.options.Items()
}

// CategoryList returns the selectable categories and the cursor position.
func (s *Session) CategoryList() ([]model.Category, int) {
	idx, _ := s.categories.Cursor()
	return s.categories.Items(), idx
}

// OptionList returns the option items and cursor. ok is false when the
// current category has no options.
func (s *Session) OptionList() (items []model.Option, cursor int, ok bool) {
	if s.options == nil {
		return nil, 0, false
	}
	idx, _ := s.options.Cursor()
	return s.options.Items(), idx, true
}
