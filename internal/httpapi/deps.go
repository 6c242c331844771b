package httpapi

import (
	"sync/atomic"

	"petjobs-engine/internal/app"
	"petjobs-engine/internal/events"
	"petjobs-engine/internal/logging"
	"petjobs-engine/internal/view"
)

type Deps struct {
	Session  *app.Session
	Hub      *events.Hub
	Renderer *view.Renderer
	Log      *logging.Logger

	// Atomic stores
	CfgVal *atomic.Value // stores config.Config

	UserCfgPath string
}
