package middleware

import (
	"net/http"

	"github.com/winnipegconnect/backend/internal/application/services"
)

// SessionHeader carries the client session id on API requests
const SessionHeader = "X-Session-ID"

// SessionMiddleware copies the session header into the request context so
// searches can be attributed to a session
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(SessionHeader); id != "" {
			r = r.WithContext(services.WithSessionID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
