package handlers

import (
	"net/http"
	"sync/atomic"
)

var healthy atomic.Bool

// UpdateHealth flips /healthz; main marks the exporter healthy once the
// metrics listener is bound.
func UpdateHealth(isHealthy bool) {
	healthy.Store(isHealthy)
}

func Healthz(w http.ResponseWriter, _ *http.Request) {
	if !healthy.Load() {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Unhealthy"))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
