package prototest

import (
	"errors"
	"testing"

	"github.com/jmgilman/fallible"
	"github.com/jmgilman/fallible/fault"
)

// RequireRaise runs fn and fails the test unless it raises a fault of the
// given kind.
func RequireRaise(t *testing.T, kind fault.Kind, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected a raise of kind %s, call returned normally", kind)
		}
		raised, ok := r.(fallible.Raised)
		if !ok {
			t.Fatalf("expected a raise of kind %s, got panic: %v", kind, r)
		}
		if got := raised.Value.Kind(); got != kind {
			t.Fatalf("raised kind = %s, want %s", got, kind)
		}
	}()
	fn()
}

// RequireMisuse runs fn and fails the test unless it panics with a protocol
// misuse matching the given sentinel, e.g. fallible.ErrIllegalReassignment.
func RequireMisuse(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected misuse %v, call returned normally", sentinel)
		}
		m, ok := r.(*fallible.Misuse)
		if !ok {
			t.Fatalf("expected misuse %v, got panic: %v", sentinel, r)
		}
		if !errors.Is(m, sentinel) {
			t.Fatalf("misuse = %v, want %v", m, sentinel)
		}
	}()
	fn()
}
