package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name string
		from PanelState
		ev   Event
		want PanelState
	}{
		{"new from collapsed", Collapsed, EventNewRequest, PanelOpenWithForm},
		{"new from prompt", PanelOpenNoForm, EventNewRequest, PanelOpenWithForm},
		{"new while form open", PanelOpenWithForm, EventNewRequest, PanelOpenWithForm},
		{"toggle closes form", PanelOpenWithForm, EventToggle, Collapsed},
		{"toggle closes prompt", PanelOpenNoForm, EventToggle, Collapsed},
		{"cancel closes form", PanelOpenWithForm, EventCancel, Collapsed},
		{"submitted closes form", PanelOpenWithForm, EventSubmitted, Collapsed},
		{"cancel ignored when collapsed", Collapsed, EventCancel, Collapsed},
		{"cancel ignored on prompt", PanelOpenNoForm, EventCancel, PanelOpenNoForm},
		{"submitted ignored when collapsed", Collapsed, EventSubmitted, Collapsed},
		{"unknown event", PanelOpenWithForm, Event("resize"), PanelOpenWithForm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.from, tt.ev))
		})
	}
}

// The prompt state is only reachable through a toggle sent while collapsed,
// which the rendered page never offers.
func TestNext_PromptStateOnlyViaCollapsedToggle(t *testing.T) {
	assert.Equal(t, PanelOpenNoForm, Next(Collapsed, EventToggle))

	pageEvents := map[PanelState][]Event{
		Collapsed:         {EventNewRequest},
		PanelOpenWithForm: {EventToggle, EventCancel, EventSubmitted, EventNewRequest},
	}
	for from, evs := range pageEvents {
		for _, ev := range evs {
			assert.NotEqual(t, PanelOpenNoForm, Next(from, ev), "%s --%s-->", from, ev)
		}
	}
}

func TestClearsDraft(t *testing.T) {
	assert.True(t, ClearsDraft(PanelOpenWithForm, Collapsed))
	assert.False(t, ClearsDraft(PanelOpenNoForm, Collapsed))
	assert.False(t, ClearsDraft(Collapsed, PanelOpenWithForm))
	assert.False(t, ClearsDraft(PanelOpenWithForm, PanelOpenWithForm))
}

func TestParseEvent(t *testing.T) {
	ev, ok := ParseEvent("toggle")
	assert.True(t, ok)
	assert.Equal(t, EventToggle, ev)

	_, ok = ParseEvent("open")
	assert.False(t, ok)
}

func TestLayoutFor(t *testing.T) {
	c := LayoutFor(Collapsed)
	assert.False(t, c.PanelOpen)
	assert.False(t, c.ToggleVisible)
	assert.True(t, c.NewButtonInTop)
	assert.Equal(t, WidthFull, c.ListWidth)
	assert.Equal(t, OffsetOffScreen, c.PanelOffset)

	f := LayoutFor(PanelOpenWithForm)
	assert.True(t, f.PanelOpen)
	assert.True(t, f.FormVisible)
	assert.True(t, f.ToggleVisible)
	assert.Equal(t, WidthHalf, f.ListWidth)
	assert.Equal(t, OffsetOnScreen, f.PanelOffset)

	p := LayoutFor(PanelOpenNoForm)
	assert.True(t, p.PanelOpen)
	assert.False(t, p.FormVisible)
	assert.True(t, p.ToggleVisible)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Sunday, August 9, 2026", FormatDate("2026-08-09"))
	assert.Equal(t, "Sunday, October 18, 2026", FormatDate("2026-10-18T07:00:00.000Z"))
	assert.Equal(t, "next week", FormatDate("next week"))
}
