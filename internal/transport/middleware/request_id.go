package middleware

import (
	"net/http"

	"github.com/heartmarshall/phoneme-service/pkg/ctxutil"
)

// RequestIDHeader carries the invocation identifier in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that assigns every request its invocation ID.
// A well-formed caller-supplied X-Request-Id is kept; anything else (missing,
// oversized, non-printable) is replaced by a fresh UUID. The ID is stored in
// the context and echoed back in the response header.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !ctxutil.AcceptRequestID(id) {
				id = ctxutil.NewRequestID()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
