// Package health serves liveness and readiness probes.
package health

import (
	"net/http"
	"sync"

	"github.com/almagest/almagest/internal/ephemeris"
	"github.com/almagest/almagest/internal/timescale"
)

// Healthz returns 200 "ok\n" unconditionally.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

var selfTest = sync.OnceValue(func() bool {
	// The ephemeris tables are compiled in, so one sane evaluation at
	// the J2000 epoch proves the engine is usable.
	d := ephemeris.CalcEarth(timescale.FromUniversal(0)).Length()
	return d > 0.9 && d < 1.1
})

// Readyz returns 200 "ready\n" once an ephemeris self-test has passed,
// and 503 otherwise.
func Readyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if !selfTest() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("ephemeris self-test failed\n"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ready\n"))
}
