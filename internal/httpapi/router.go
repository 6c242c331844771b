package httpapi

import (
	"net/http"
	"time"

	"petjobs-engine/internal/events"
	"petjobs-engine/internal/logging"
)

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	var pub events.Publisher = events.Discard
	if d.Hub != nil {
		pub = d.Hub
	}
	n := notifier{hub: pub}

	mux := http.NewServeMux()

	// Page and form actions
	ph := PageHandler{Session: d.Session, Renderer: d.Renderer, Log: d.Log, notifier: n}
	mux.HandleFunc("/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Index,
	}))
	mux.HandleFunc("/actions/new", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ph.New,
	}))
	mux.HandleFunc("/actions/toggle", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ph.Toggle,
	}))
	mux.HandleFunc("/actions/cancel", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ph.Cancel,
	}))
	mux.HandleFunc("/actions/submit", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ph.Submit,
	}))
	mux.HandleFunc("/actions/delete/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ph.DeleteByPath, // expects /actions/delete/{id}
	}))

	// Requests
	rh := RequestsHandler{Session: d.Session, notifier: n}
	mux.HandleFunc("/api/requests", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  rh.List,
		http.MethodPost: rh.Create,
	}))
	mux.HandleFunc("/api/requests/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:    rh.GetByPath,
		http.MethodDelete: rh.DeleteByPath, // expects /api/requests/{id}
	}))
	mux.HandleFunc("/api/catalog", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Catalog,
	}))
	mux.HandleFunc("/api/state", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.State,
	}))

	// Draft
	dh := DraftHandler{Session: d.Session, notifier: n}
	mux.HandleFunc("/api/draft", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:    dh.Get,
		http.MethodDelete: dh.Reset,
	}))
	mux.HandleFunc("/api/draft/", methodMux(map[string]http.HandlerFunc{
		http.MethodPut: dh.PutField, // expects /api/draft/{field}
	}))

	// Panel
	pnh := PanelHandler{Session: d.Session, notifier: n}
	mux.HandleFunc("/api/panel", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: pnh.Get,
	}))
	mux.HandleFunc("/api/panel/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: pnh.PostEvent, // expects /api/panel/{event}
	}))

	// Config
	if d.CfgVal != nil {
		ch := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath}
		mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
			http.MethodGet: ch.Get,
		}))
		mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
			http.MethodGet: ch.Path,
		}))
		mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
			http.MethodGet: ch.Validate,
		}))
	}

	// SSE events
	if d.Hub != nil {
		eh := EventsHandler{Hub: d.Hub}
		mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
			http.MethodGet: eh.ServeSSE,
		}))
	}

	hh := HealthHandler{Session: d.Session, Started: time.Now()}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}

// Handler wraps mux in the standard middleware stack.
func Handler(mux http.Handler, log *logging.Logger, limiter *ClientLimiter) http.Handler {
	return Chain(mux,
		RequestID,
		Recover(log),
		AccessLog(log),
		RateLimit(limiter),
		Cors,
	)
}
