package httpapi

import (
	"errors"
	"net/http"

	"petjobs-engine/internal/app"
	"petjobs-engine/internal/domain"
	"petjobs-engine/internal/events"
)

type RequestsHandler struct {
	Session *app.Session
	notifier
}

func (h RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Session.Requests())
}

// Create submits the posted draft. It replaces whatever the page form held.
func (h RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var d domain.Draft
	if err := decodeJSON(w, r, &d); err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, "invalid JSON: "+err.Error())
		return
	}

	req, t, err := h.Session.SubmitDraft(d)
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		fields := make([]string, len(ve.Missing))
		for i, f := range ve.Missing {
			fields[i] = string(f)
		}
		writeAPIError(w, r, http.StatusUnprocessableEntity, CodeMissingField, domain.MissingFieldsMessage, fields)
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, CodeInternal, err.Error())
		return
	}

	h.publish(r, events.TypeRequestCreated, req)
	h.transition(r, t)
	WriteJSON(w, http.StatusCreated, req)
}

func (h RequestsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := pathTail(r, "/api/requests/")
	req, ok := h.Session.Get(id)
	if !ok {
		WriteError(w, r, http.StatusNotFound, CodeNotFound, "no request with that id")
		return
	}
	writeJSON(w, req)
}

// DeleteByPath is a no-op for unknown ids; "removed" tells the caller which.
func (h RequestsHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	id := pathTail(r, "/api/requests/")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, "invalid id")
		return
	}

	removed := h.Session.Delete(id)
	if removed {
		h.publish(r, events.TypeRequestDeleted, map[string]any{"id": id})
	}
	writeJSON(w, map[string]any{"ok": true, "id": id, "removed": removed})
}

func (h RequestsHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Session.Catalog())
}

func (h RequestsHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Session.Snapshot())
}
