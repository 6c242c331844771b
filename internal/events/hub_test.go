package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHub_FanOut(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()
	assert.Equal(t, 2, h.Subscribers())

	h.Publish("hello")
	assert.Equal(t, "hello", <-a)
	assert.Equal(t, "hello", <-b)

	h.Unsubscribe(a)
	_, open := <-a
	assert.False(t, open)
	assert.Equal(t, 1, h.Subscribers())

	// double unsubscribe must not panic on a closed channel
	h.Unsubscribe(a)
	h.Unsubscribe(b)
}

func TestHub_DropsForSlowSubscriber(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	for i := 0; i < h.buffer+5; i++ {
		h.Publish("x")
	}
	assert.Len(t, ch, h.buffer)
}

func TestMakeEvent(t *testing.T) {
	raw := MakeEvent("req-1", TypeRequestCreated, map[string]any{"id": "abc"})

	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, TypeRequestCreated, e.Type)
	assert.Equal(t, Version, e.Version)
	assert.Equal(t, "req-1", e.RequestID)
	assert.JSONEq(t, `{"id":"abc"}`, string(e.Data))
	assert.False(t, e.At.IsZero())
}

func TestMakeEvent_NoData(t *testing.T) {
	raw := MakeEvent("", TypePing, nil)
	assert.NotContains(t, raw, `"data"`)
	assert.NotContains(t, raw, `"request_id"`)
}
