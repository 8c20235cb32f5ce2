package chi

import (
	"context"
	"net/http"

	statsuc "github.com/ngdp/geoportal/internal/usecase/stats"
)

// VisitTracker counts portal visits on public GET routes. Tracking runs in
// a detached goroutine so a slow counter store never delays the response;
// operational routes are excluded from the count.
func VisitTracker(stats *statsuc.Service) func(next http.Handler) http.Handler {
	skip := map[string]struct{}{
		"/healthz":    {},
		"/metrics":    {},
		"/statistics": {},
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, excluded := skip[r.URL.Path]
			if r.Method == http.MethodGet && !excluded && stats.Enabled() {
				go stats.Track(context.WithoutCancel(r.Context()))
			}
			next.ServeHTTP(w, r)
		})
	}
}
