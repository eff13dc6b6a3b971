package request

import (
	"net/http"
)

// actorHeader carries the acting user. Authentication lives at the edge;
// this service trusts the gateway in front of it.
const actorHeader = "X-User-Id"

// Actor the acting user of the request, empty when anonymous
func Actor(r *http.Request) string {
	return r.Header.Get(actorHeader)
}

// WithActor middleware rejecting anonymous requests
func WithActor(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if Actor(r) == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
