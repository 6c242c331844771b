package httpapi

import (
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter rate-limits per client address.
type ClientLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

// NewClientLimiter returns nil when reqPerSec is not positive.
func NewClientLimiter(reqPerSec float64, burst int) *ClientLimiter {
	if reqPerSec <= 0 {
		return nil
	}
	return &ClientLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (cl *ClientLimiter) limiterFor(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if lim, ok := cl.m[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(cl.r, cl.b)
	cl.m[key] = lim
	return lim
}

func (cl *ClientLimiter) Allow(key string) bool {
	if key == "" {
		key = "_"
	}
	return cl.limiterFor(key).Allow()
}
