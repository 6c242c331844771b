package httpapi

import (
	"errors"
	"net/http"

	"petjobs-engine/internal/app"
	"petjobs-engine/internal/domain"
	"petjobs-engine/internal/events"
)

type DraftHandler struct {
	Session *app.Session
	notifier
}

type setFieldReq struct {
	Value string `json:"value"`
}

func (h DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Session.Draft())
}

func (h DraftHandler) PutField(w http.ResponseWriter, r *http.Request) {
	name := pathTail(r, "/api/draft/")
	f, ok := domain.ParseField(name)
	if !ok {
		WriteError(w, r, http.StatusNotFound, CodeUnknownField, "unknown draft field "+name)
		return
	}

	var req setFieldReq
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, "invalid JSON: "+err.Error())
		return
	}

	err := h.Session.SetField(f, req.Value)
	if errors.Is(err, domain.ErrUnknownField) {
		WriteError(w, r, http.StatusNotFound, CodeUnknownField, err.Error())
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, CodeInternal, err.Error())
		return
	}

	d := h.Session.Draft()
	h.publish(r, events.TypeDraftChanged, d)
	writeJSON(w, d)
}

func (h DraftHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.Session.ResetDraft()
	h.publish(r, events.TypeDraftChanged, domain.Draft{})
	w.WriteHeader(http.StatusNoContent)
}
