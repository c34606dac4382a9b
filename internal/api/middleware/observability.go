package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/winnipegconnect/backend/internal/infrastructure/observability"
)

// ObservabilityMiddleware traces each request and records its duration under
// a low-cardinality route label. Spans carry the client session when
// SessionMiddleware runs first.
func ObservabilityMiddleware(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := routeLabel(r.URL.Path)

			ctx, span := observability.StartSpan(r.Context(), r.Method+" "+route)
			defer span.End()

			attrs := []attribute.KeyValue{
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
			}
			if id := observability.SessionIDFromContext(ctx); id != "" {
				attrs = append(attrs, attribute.String("session.id", id))
			}
			if r.URL.RawQuery != "" && route == "/api/providers" {
				q := r.URL.Query()
				attrs = append(attrs,
					attribute.String("provider_query.sort", q.Get("sort")),
					attribute.String("provider_query.category", q.Get("category")),
				)
			}
			span.SetAttributes(attrs...)

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rw, r.WithContext(ctx))

			observability.RecordRequestMetric(ctx, metrics, r.Method, route, rw.statusCode, time.Since(start))
			span.SetAttributes(attribute.Int("http.status_code", rw.statusCode))
		})
	}
}

// routeLabel replaces record ids in path with {id}: numeric provider and job
// ids and the opaque session id
func routeLabel(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if _, err := strconv.Atoi(part); err == nil {
			parts[i] = "{id}"
			continue
		}
		if i > 0 && parts[i-1] == "sessions" && part != "{id}" {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}
