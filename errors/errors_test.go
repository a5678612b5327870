package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseRegistry,
				Kind:    KindInvalidHandle,
				Op:      "Drop",
				Detail:  "handle 5 is not live",
				Handles: []uint32{5},
			},
			contains: []string{"[registry]", "invalid_handle", "Drop", "handle 5 is not live", "handles: 5"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDrop,
				Kind:  KindNilReferent,
			},
			contains: []string{"[drop]", "nil_referent"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseTrack,
				Kind:   KindLeak,
				Detail: "2 referent(s) still live",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[track]", "leak", "still live", "caused by", "underlying error"},
		},
		{
			name: "multiple handles",
			err: &Error{
				Phase:   PhaseTrack,
				Kind:    KindLeak,
				Handles: []uint32{1, 3, 8},
			},
			contains: []string{"handles: 1, 3, 8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseRegistry,
		Kind:  KindClosed,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseRegistry,
		Kind:  KindClosed,
		Op:    "Insert",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseRegistry, Kind: KindClosed}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseTrack, Kind: KindClosed}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseRegistry, Kind: KindEmptyBox}) {
		t.Error("Is should not match different kind")
	}

	// Through errors.Is
	if !errors.Is(err, Closed("anything")) {
		t.Error("errors.Is should match the convenience constructor")
	}

	// Non-Error target
	if err.Is(errors.New("plain")) {
		t.Error("Is should not match a plain error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseRegistry, KindInvalidHandle).
		Op("Release").
		Handles(7).
		Detail("handle %d is not live", 7).
		Cause(cause).
		Build()

	if err.Phase != PhaseRegistry || err.Kind != KindInvalidHandle {
		t.Fatal("Builder lost phase/kind")
	}
	if err.Op != "Release" {
		t.Fatalf("Expected op Release, got %q", err.Op)
	}
	if err.Detail != "handle 7 is not live" {
		t.Fatalf("Unexpected detail: %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("Builder cause not wired into Unwrap chain")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if err := Closed("Insert"); err.Kind != KindClosed || err.Op != "Insert" {
		t.Error("Closed constructor mismatch")
	}
	if err := EmptyBox("Insert"); err.Kind != KindEmptyBox {
		t.Error("EmptyBox constructor mismatch")
	}
	if err := InvalidHandle("Get", 4); err.Kind != KindInvalidHandle || err.Handles[0] != 4 {
		t.Error("InvalidHandle constructor mismatch")
	}
	if err := NilReferent("Adopt"); err.Phase != PhaseAdopt || err.Kind != KindNilReferent {
		t.Error("NilReferent constructor mismatch")
	}

	err := Leak(2, []uint32{1, 2})
	if err.Kind != KindLeak || len(err.Handles) != 2 {
		t.Error("Leak constructor mismatch")
	}
	if !strings.Contains(err.Error(), "2 referent(s) still live") {
		t.Errorf("Unexpected leak message: %q", err.Error())
	}
}
