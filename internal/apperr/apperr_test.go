package apperr

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{Validation("bad box"), http.StatusBadRequest},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Forbidden("not the host"), http.StatusForbidden},
		{NotFound("no room"), http.StatusNotFound},
		{Conflict("duplicate request"), http.StatusConflict},
		{Gone("deadline passed"), http.StatusConflict},
		{Full("room is full"), http.StatusConflict},
		{RateLimited("slow down"), http.StatusTooManyRequests},
		{New(CodeInternal, "boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Fatalf("HTTPStatus(%s) = %d, want %d", tt.err.Code, got, tt.want)
			}
		})
	}
}

func TestAs(t *testing.T) {
	base := Full("room is full")

	wrapped := fmt.Errorf("accept request: %w", base)
	got, ok := As(wrapped)
	if !ok {
		t.Fatal("As failed to unwrap")
	}
	if got.Code != CodeFull {
		t.Fatalf("unwrapped code = %s, want %s", got.Code, CodeFull)
	}

	if _, ok := As(fmt.Errorf("plain error")); ok {
		t.Fatal("As matched a plain error")
	}
}

func TestErrorString(t *testing.T) {
	err := Gone("the accept deadline for this room has passed")
	want := "gone: the accept deadline for this room has passed"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
