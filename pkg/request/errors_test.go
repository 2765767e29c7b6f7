package request

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStatusError_FirstMatchWins(t *testing.T) {
	tests := []struct {
		status   int
		kind     Kind
		contains string
	}{
		{404, KindNotFound, `resource "http://h/x" not found`},
		{500, KindServerError, "internal server error"},
		{301, KindUnknownStatus, "unknown error"},
		{0, KindUnknownStatus, "unknown error"},
	}
	for _, tt := range tests {
		err := statusError("http://h/x", tt.status)
		if err.Kind != tt.kind {
			t.Errorf("status %d: Kind = %s, want %s", tt.status, err.Kind, tt.kind)
		}
		if err.Status != tt.status {
			t.Errorf("status %d: Status = %d", tt.status, err.Status)
		}
		if !strings.Contains(err.Error(), tt.contains) {
			t.Errorf("status %d: %q does not contain %q", tt.status, err.Error(), tt.contains)
		}
	}
}

func TestError_Classification(t *testing.T) {
	general := []*Error{
		{Kind: KindCanceled, Message: "request canceled", Err: context.Canceled},
		{Kind: KindAborted, Message: "request aborted"},
		{Kind: KindNetwork, Message: "network error"},
	}
	for _, err := range general {
		if !errors.Is(err, ErrRequest) {
			t.Errorf("%s: not an ErrRequest", err.Kind)
		}
		if errors.Is(err, ErrFailed) || err.IsFail() {
			t.Errorf("%s: classified as fail", err.Kind)
		}
		if _, ok := StatusCode(err); ok {
			t.Errorf("%s: StatusCode reported a status", err.Kind)
		}
	}

	fail := statusError("u", 500)
	if !errors.Is(fail, ErrRequest) || !errors.Is(fail, ErrFailed) || !fail.IsFail() {
		t.Error("server error should be both a request error and a fail error")
	}
}

func TestError_KindSentinelsDoNotCrossMatch(t *testing.T) {
	err := statusError("u", 404)
	if !errors.Is(err, ErrNotFound) {
		t.Error("404 should match ErrNotFound")
	}
	for _, other := range []error{ErrServerError, ErrUnknownStatus, ErrCanceled, ErrAborted, ErrNetwork} {
		if errors.Is(err, other) {
			t.Errorf("404 matched %v", other)
		}
	}

	// A non-sentinel *Error target only matches itself.
	if errors.Is(err, statusError("u", 404)) {
		t.Error("matched a distinct non-sentinel error")
	}
}

func TestError_WrappedStillClassified(t *testing.T) {
	wrapped := fmt.Errorf("fetch widgets: %w", statusError("u", 503))

	code, ok := StatusCode(wrapped)
	if !ok || code != 503 {
		t.Errorf("StatusCode = %d,%v want 503,true", code, ok)
	}
	if !errors.Is(wrapped, ErrUnknownStatus) {
		t.Error("wrapped 503 should match ErrUnknownStatus")
	}
}

func TestError_UnwrapCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := &Error{Kind: KindNetwork, Message: "network error", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("Error() = %q, want cause text", err.Error())
	}
}

func TestKind_String(t *testing.T) {
	if KindNotFound.String() != "not_found" || Kind(0).String() != "unknown" {
		t.Errorf("unexpected kind names: %s %s", KindNotFound, Kind(0))
	}
}
