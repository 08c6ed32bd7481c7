package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOfThroughWrapping(t *testing.T) {
	base := Conflict(CodePickConflict, "pick 5 already applied")
	wrapped := fmt.Errorf("make pick: %w", base)

	code, ok := CodeOf(wrapped)
	if !ok {
		t.Fatal("expected wrapped error to expose a code")
	}
	if code != CodePickConflict {
		t.Errorf("got code %s, want %s", code, CodePickConflict)
	}
}

func TestIsKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		want bool
	}{
		{"not found matches", NotFound(CodeDraftNotFound, ""), KindNotFound, true},
		{"conflict is not validation", Conflict(CodePlayerAlreadyDrafted, ""), KindValidation, false},
		{"plain error has no kind", errors.New("boom"), KindInternal, false},
		{"wrapped transient", fmt.Errorf("tick: %w", Transient("deadlock", nil)), KindTransient, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(Transient("lock timeout", nil)) {
		t.Error("transient errors must be retryable")
	}
	if !Retryable(Conflict(CodePickConflict, "")) {
		t.Error("conflicts are retryable after a re-read")
	}
	if Retryable(Validation(CodeNotYourTurn, "")) {
		t.Error("validation failures must not be retryable")
	}
	if Retryable(errors.New("boom")) {
		t.Error("unclassified errors must not be retryable")
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("scanning draft row", cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause must stay reachable through Unwrap")
	}
	want := "INTERNAL: scanning draft row: connection reset"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
