package events

import (
	"encoding/json"
	"time"
)

const (
	TypePing           = "ping"
	TypeHeartbeat      = "heartbeat"
	TypeRequestCreated = "request_created"
	TypeRequestDeleted = "request_deleted"
	TypeDraftChanged   = "draft_changed"
	TypePanelChanged   = "panel_changed"
)

// Version of the envelope below. Bump when Data shapes change.
const Version = 1

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   Version,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
