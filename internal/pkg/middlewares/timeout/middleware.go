package timeout

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Middleware ограничивает контекст запроса. Для маршрутов из overrides (ключ - шаблон пути
// gorilla/mux) берётся собственный таймаут, остальные получают defaultTimeout.
func Middleware(defaultTimeout time.Duration, overrides map[string]time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), routeTimeout(r, defaultTimeout, overrides))
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func routeTimeout(r *http.Request, fallback time.Duration, overrides map[string]time.Duration) time.Duration {
	if len(overrides) == 0 {
		return fallback
	}
	route := mux.CurrentRoute(r)
	if route == nil {
		return fallback
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return fallback
	}
	if d, ok := overrides[template]; ok && d > 0 {
		return d
	}
	return fallback
}
