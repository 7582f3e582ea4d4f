package middleware

import (
	"net/http"
	"time"

	"github.com/BrianElionDev/Meta-ads-project/pkg/metrics"
)

// Metrics registra contagem e latência por rota. O rótulo usa o padrão
// cadastrado (/v1/ads/:id) para manter a cardinalidade baixa.
func Metrics(m *metrics.Metrics, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			m.HTTPInFlight.Inc()
			defer m.HTTPInFlight.Dec()

			lrw := newLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)

			m.ObserveHTTPRequest(r.Method, route, lrw.statusCode, time.Since(start).Seconds())
		})
	}
}
