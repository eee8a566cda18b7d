package cgats

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestError_Is(t *testing.T) {
	err := newError(KindNoData, "extract data", "")
	if !errors.Is(err, ErrNoData) {
		t.Error("error should match its sentinel")
	}
	if errors.Is(err, ErrNoDataFormat) {
		t.Error("error should not match another kind")
	}

	wrapped := fmt.Errorf("failed to load: %w", err)
	if !errors.Is(wrapped, ErrNoData) {
		t.Error("wrapped error should still match")
	}
	if KindOf(wrapped) != KindNoData {
		t.Errorf("KindOf: got %s", KindOf(wrapped))
	}
	if KindOf(io.EOF) != KindOther {
		t.Error("foreign errors should be KindOther")
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{
		Kind:   KindFormatDataMismatch,
		Op:     "validate",
		Path:   "a.txt",
		Detail: "data line 3",
		Err:    io.ErrUnexpectedEOF,
	}
	msg := err.Error()
	for _, part := range []string{"validate", `"a.txt"`, "FormatDataMismatch", "data line 3", io.ErrUnexpectedEOF.Error()} {
		if !strings.Contains(msg, part) {
			t.Errorf("message %q does not contain %q", msg, part)
		}
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("Unwrap should expose the cause")
	}
}

func TestKind_String(t *testing.T) {
	if got := KindInvariantViolation.String(); got != "InvariantViolation" {
		t.Errorf("got %q", got)
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("got %q", got)
	}
}
