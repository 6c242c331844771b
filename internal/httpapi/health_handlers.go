package httpapi

import (
	"net/http"
	"time"

	"petjobs-engine/internal/app"
)

type HealthHandler struct {
	Session *app.Session
	Started time.Time
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"ok":       true,
		"requests": len(h.Session.Requests()),
		"uptime_s": int64(time.Since(h.Started).Seconds()),
	})
}
