package httpapi

import (
	"net/http"

	"petjobs-engine/internal/app"
	"petjobs-engine/internal/view"
)

type PanelHandler struct {
	Session *app.Session
	notifier
}

type panelResp struct {
	State  view.PanelState `json:"state"`
	Layout view.Layout     `json:"layout"`
}

type eventResp struct {
	app.Transition
	Layout view.Layout `json:"layout"`
}

func (h PanelHandler) Get(w http.ResponseWriter, r *http.Request) {
	s := h.Session.Panel()
	writeJSON(w, panelResp{State: s, Layout: view.LayoutFor(s)})
}

// PostEvent accepts new, toggle and cancel. "submitted" only happens through
// a successful submit.
func (h PanelHandler) PostEvent(w http.ResponseWriter, r *http.Request) {
	name := pathTail(r, "/api/panel/")
	ev, ok := view.ParseEvent(name)
	if !ok || ev == view.EventSubmitted {
		WriteError(w, r, http.StatusBadRequest, CodeUnknownEvent, "unknown panel event "+name)
		return
	}

	t := h.Session.Apply(ev)
	h.transition(r, t)
	writeJSON(w, eventResp{Transition: t, Layout: view.LayoutFor(t.To)})
}
