package api

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// RateConfig bounds how fast a single client may hit the API.
type RateConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	mu    sync.Mutex
	ips   map[string]*rate.Limiter
	rps   rate.Limit
	burst int
}

func newIPRateLimiter(rps rate.Limit, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		ips:   make(map[string]*rate.Limiter),
		rps:   rps,
		burst: burst,
	}
}

func (l *ipRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.ips[ip]
	if !ok {
		lim = rate.NewLimiter(l.rps, l.burst)
		l.ips[ip] = lim
	}
	return lim
}

func rateLimitMiddleware(cfg RateConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}
	limiters := newIPRateLimiter(rate.Limit(cfg.RPS), cfg.Burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Probes and metrics scrapes are never throttled.
			if probePath(r.URL.Path) || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiters.limiter(ip).Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
