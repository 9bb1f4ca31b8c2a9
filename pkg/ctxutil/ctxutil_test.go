package ctxutil

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Fatalf("expected req-123, got %q", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), requestIDKey{}, 42)

	if got := RequestIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string for wrong type, got %q", got)
	}
}

func TestNewRequestID(t *testing.T) {
	t.Parallel()

	a, b := NewRequestID(), NewRequestID()
	if a == b {
		t.Fatal("request IDs should be unique")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("expected UUID, got %q: %v", a, err)
	}
	if !AcceptRequestID(a) {
		t.Fatal("generated ID should be acceptable")
	}
}

func TestAcceptRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want bool
	}{
		{"req-1", true},
		{"abc_DEF.123:xyz", true},
		{strings.Repeat("a", MaxRequestIDLen), true},
		{strings.Repeat("a", MaxRequestIDLen+1), false},
		{"", false},
		{"has space", false},
		{"line\nbreak", false},
		{"tab\there", false},
		{"ünïcode", false},
	}

	for _, tt := range tests {
		if got := AcceptRequestID(tt.id); got != tt.want {
			t.Errorf("AcceptRequestID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
