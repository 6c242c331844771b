package view

import "fmt"

// PanelState is the visibility state of the slide-in form panel.
type PanelState int

const (
	Collapsed PanelState = iota
	PanelOpenNoForm
	PanelOpenWithForm
)

func (s PanelState) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case PanelOpenNoForm:
		return "panel_open_no_form"
	case PanelOpenWithForm:
		return "panel_open_with_form"
	}
	return fmt.Sprintf("panel_state(%d)", int(s))
}

func (s PanelState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Event is a user action that may move the panel.
type Event string

const (
	EventNewRequest Event = "new"
	EventToggle     Event = "toggle"
	EventCancel     Event = "cancel"
	EventSubmitted  Event = "submitted"
)

func ParseEvent(s string) (Event, bool) {
	switch e := Event(s); e {
	case EventNewRequest, EventToggle, EventCancel, EventSubmitted:
		return e, true
	}
	return "", false
}

// Next is the panel transition function. Pairs not listed leave the state
// unchanged.
//
// Collapsed+toggle opens the panel with the form hidden. The toggle control
// is only rendered while the panel is open, so the page itself never sends
// that pair.
func Next(s PanelState, e Event) PanelState {
	switch e {
	case EventNewRequest:
		return PanelOpenWithForm
	case EventToggle:
		if s == Collapsed {
			return PanelOpenNoForm
		}
		return Collapsed
	case EventCancel, EventSubmitted:
		if s == PanelOpenWithForm {
			return Collapsed
		}
	}
	return s
}

// ClearsDraft reports whether moving from s to next discards the draft.
func ClearsDraft(s, next PanelState) bool {
	return s == PanelOpenWithForm && next == Collapsed
}
