// Package ctxutil carries per-invocation values through a context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// MaxRequestIDLen bounds the length of a caller-supplied request ID.
const MaxRequestIDLen = 128

type requestIDKey struct{}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// NewRequestID returns a fresh random request ID.
func NewRequestID() string {
	return uuid.NewString()
}

// AcceptRequestID reports whether a caller-supplied ID may be reused as-is:
// non-empty, at most MaxRequestIDLen bytes, printable ASCII only.
func AcceptRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
