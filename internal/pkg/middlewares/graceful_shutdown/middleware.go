package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

const retryAfterSeconds = "5"

var shuttingDown = []byte(`{"message":"service is shutting down"}`)

// Middleware отвечает 503, когда выставлен флаг остановки и ongoingCtx уже отменён.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() == nil || !isShuttingDown.Load() {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Connection", "close")
			w.Header().Set("Retry-After", retryAfterSeconds)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write(shuttingDown)
		})
	}
}
