package httpapi

import (
	"bytes"
	"errors"
	"net/http"

	"petjobs-engine/internal/app"
	"petjobs-engine/internal/domain"
	"petjobs-engine/internal/events"
	"petjobs-engine/internal/logging"
	"petjobs-engine/internal/view"
)

// PageHandler serves the rendered page and the html form actions. Every
// action answers with 303 back to "/" except a rejected submit, which
// re-renders the page with the notice.
type PageHandler struct {
	Session  *app.Session
	Renderer *view.Renderer
	Log      *logging.Logger
	notifier
}

func (h PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "")
}

func (h PageHandler) New(w http.ResponseWriter, r *http.Request) {
	h.transition(r, h.Session.NewRequest())
	backToPage(w, r)
}

func (h PageHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.transition(r, h.Session.Toggle())
	backToPage(w, r)
}

func (h PageHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(r, h.Session.Cancel())
	backToPage(w, r)
}

func (h PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	var d domain.Draft
	for key, vals := range r.PostForm {
		f, ok := domain.ParseField(key)
		if !ok || len(vals) == 0 {
			continue
		}
		d, _ = d.With(f, vals[0])
	}

	req, t, err := h.Session.SubmitDraft(d)
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		h.publish(r, events.TypeDraftChanged, d)
		h.render(w, r, http.StatusUnprocessableEntity, domain.MissingFieldsMessage)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.publish(r, events.TypeRequestCreated, req)
	h.transition(r, t)
	backToPage(w, r)
}

func (h PageHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	id := pathTail(r, "/actions/delete/")
	if id == "" {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if h.Session.Delete(id) {
		h.publish(r, events.TypeRequestDeleted, map[string]any{"id": id})
	}
	backToPage(w, r)
}

func (h PageHandler) render(w http.ResponseWriter, r *http.Request, status int, notice string) {
	p := h.Session.Snapshot().Page()
	p.Notice = notice

	var buf bytes.Buffer
	if err := h.Renderer.Render(&buf, p); err != nil {
		h.Log.Error("render failed", "request_id", RequestIDFrom(r.Context()), "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func backToPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
