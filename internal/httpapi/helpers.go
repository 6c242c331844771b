package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"petjobs-engine/internal/app"
	"petjobs-engine/internal/events"
)

func writeJSON(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, v)
}

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// pathTail returns what follows prefix, or "" when it is empty or nested.
func pathTail(r *http.Request, prefix string) string {
	tail := strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
	if strings.Contains(tail, "/") {
		return ""
	}
	return tail
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data")
	}
	return nil
}

// notifier publishes change events tagged with the request id.
type notifier struct {
	hub events.Publisher
}

func (n notifier) publish(r *http.Request, typ string, data any) {
	if n.hub == nil {
		return
	}
	n.hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), typ, data))
}

func (n notifier) transition(r *http.Request, t app.Transition) {
	if !t.Changed() {
		return
	}
	n.publish(r, events.TypePanelChanged, t)
}
