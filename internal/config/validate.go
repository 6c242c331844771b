package config

import (
	"fmt"
	"strings"

	"petjobs-engine/internal/logging"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

func (v Validation) Err() error {
	if v.OK() {
		return nil
	}
	return fmt.Errorf("config validation failed:\n- %s", strings.Join(v.Errors, "\n- "))
}

// NormalizeAndValidate returns a normalized copy of cfg plus any problems.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.App.Host = strings.TrimSpace(out.App.Host)
	out.Catalog.Jobs = trimList(out.Catalog.Jobs)
	out.Catalog.TimeSlots = trimList(out.Catalog.TimeSlots)

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.App.Host == "" {
		res.addErr("app.host is required")
	} else if out.App.Host != "127.0.0.1" && out.App.Host != "localhost" && out.App.Host != "::1" {
		res.addWarn("app.host %q exposes the engine beyond this machine", out.App.Host)
	}
	if !logging.ValidLevel(out.App.LogLevel) {
		res.addErr("app.log_level %q must be one of debug, info, warn, error", out.App.LogLevel)
	}

	if len(out.Catalog.Jobs) == 0 {
		res.addErr("catalog.jobs must have at least 1 entry")
	}
	if len(out.Catalog.TimeSlots) == 0 {
		res.addErr("catalog.time_slots must have at least 1 entry")
	}

	if out.Limits.RequestsPerSecond < 0 {
		res.addErr("limits.requests_per_second must be >= 0")
	} else if out.Limits.RequestsPerSecond == 0 {
		res.addWarn("limits.requests_per_second is 0; rate limiting is disabled.")
	}
	if out.Limits.RequestsPerSecond > 0 && out.Limits.Burst <= 0 {
		res.addErr("limits.burst must be > 0 when limits.requests_per_second is set")
	}

	if out.Events.HeartbeatSeconds < 0 {
		res.addErr("events.heartbeat_seconds must be >= 0")
	}

	// seeds go through the same required-field rule as the form
	if out.Seed.Enabled {
		jobs := setOf(out.Catalog.Jobs)
		slots := setOf(out.Catalog.TimeSlots)
		for i, r := range out.Seed.Requests {
			if missing := r.Draft().Missing(); len(missing) > 0 {
				res.addErr("seed.requests[%d] is missing %v", i, missing)
				continue
			}
			if !jobs[strings.ToLower(r.Job)] {
				res.addWarn("seed.requests[%d].job %q is not in catalog.jobs", i, r.Job)
			}
			if !slots[strings.ToLower(r.TimeSlot)] {
				res.addWarn("seed.requests[%d].time_slot %q is not in catalog.time_slots", i, r.TimeSlot)
			}
		}
	}

	return out, res
}

func setOf(xs []string) map[string]bool {
	m := make(map[string]bool, len(xs))
	for _, x := range xs {
		m[strings.ToLower(x)] = true
	}
	return m
}
