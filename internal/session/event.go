package session

// EventKind identifies an input the session reacts to.
type EventKind int

const (
	// EventNavigateNext moves to the next category or option.
	EventNavigateNext EventKind = iota
	// EventNavigatePrevious moves to the previous category or option.
	EventNavigatePrevious
	// EventConfirmSelection starts configuring the highlighted category.
	EventConfirmSelection
	// EventBack returns to browsing.
	EventBack
	// EventIncreaseLength adds one character, up to the category maximum.
	EventIncreaseLength
	// EventDecreaseLength removes one character, down to the category minimum.
	EventDecreaseLength
	// EventNavigateOptionNext moves the option cursor forward.
	EventNavigateOptionNext
	// EventNavigateOptionPrevious moves the option cursor back.
	EventNavigateOptionPrevious
	// EventToggleCurrentOption flips the option under the cursor.
	EventToggleCurrentOption
	// EventToggleOptionAt flips the option at Event.Index.
	EventToggleOptionAt
	// EventRegenerate draws a fresh password with unchanged settings.
	EventRegenerate
)

var eventNames = map[EventKind]string{
	EventNavigateNext:           "navigate_next",
	EventNavigatePrevious:       "navigate_previous",
	EventConfirmSelection:       "confirm_selection",
	EventBack:                   "back",
	EventIncreaseLength:         "increase_length",
	EventDecreaseLength:         "decrease_length",
	EventNavigateOptionNext:     "navigate_option_next",
	EventNavigateOptionPrevious: "navigate_option_previous",
	EventToggleCurrentOption:    "toggle_current_option",
	EventToggleOptionAt:         "toggle_option_at",
	EventRegenerate:             "regenerate",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single input. Index is only read for EventToggleOptionAt.
type Event struct {
	Kind  EventKind
	Index int
}

// Events without payload.
var (
	NavigateNext           = Event{Kind: EventNavigateNext}
	NavigatePrevious       = Event{Kind: EventNavigatePrevious}
	ConfirmSelection       = Event{Kind: EventConfirmSelection}
	Back                   = Event{Kind: EventBack}
	IncreaseLength         = Event{Kind: EventIncreaseLength}
	DecreaseLength         = Event{Kind: EventDecreaseLength}
	NavigateOptionNext     = Event{Kind: EventNavigateOptionNext}
	NavigateOptionPrevious = Event{Kind: EventNavigateOptionPrevious}
	ToggleCurrentOption    = Event{Kind: EventToggleCurrentOption}
	Regenerate             = Event{Kind: EventRegenerate}
)

// ToggleOptionAt flips the option at index.
func ToggleOptionAt(index int) Event {
	return Event{Kind: EventToggleOptionAt, Index: index}
}
