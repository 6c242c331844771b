package httpapi

import (
	"encoding/json"
	"net/http"
)

type APIError struct {
	Error struct {
		Code      string   `json:"code"`
		Message   string   `json:"message"`
		Fields    []string `json:"fields,omitempty"`
		RequestID string   `json:"request_id,omitempty"`
	} `json:"error"`
}

const (
	CodeBadRequest     = "bad_request"
	CodeNotFound       = "not_found"
	CodeMissingField   = "missing_required_field"
	CodeUnknownField   = "unknown_field"
	CodeUnknownEvent   = "unknown_event"
	CodeRateLimited    = "rate_limited"
	CodeInternal       = "internal_error"
	CodeStreamNotFlush = "stream_unsupported"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeAPIError(w, r, status, code, message, nil)
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, code, message string, fields []string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.Fields = fields
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}
