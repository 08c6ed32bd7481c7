// Package apperrors carries the draft engine's error taxonomy: every error
// surfaced by the engine is classified by kind (how the caller should react)
// and code (which precise condition fired).
package apperrors

import (
	"errors"
	"fmt"
)

// Kind tells the caller how to react to an error.
type Kind int

const (
	// KindNotFound means the referenced entity does not exist; not retried.
	KindNotFound Kind = iota
	// KindForbidden means the caller is not allowed to act on the entity.
	KindForbidden
	// KindValidation means a pre-condition failed; the request was never applied.
	KindValidation
	// KindConflict signals a lost optimistic race; callers may re-read and retry.
	KindConflict
	// KindTransient marks retryable infrastructure failures (deadlock, lock
	// timeout, network blip).
	KindTransient
	// KindInternal marks invariant violations and schema breakage.
	KindInternal
)

// Code is a stable machine-readable identifier for a failure condition.
type Code string

const (
	CodeDraftNotFound     Code = "DRAFT_NOT_FOUND"
	CodePlayerNotFound    Code = "PLAYER_NOT_FOUND"
	CodePickAssetNotFound Code = "PICK_ASSET_NOT_FOUND"

	CodeNotLeagueMember Code = "NOT_LEAGUE_MEMBER"
	CodeNotCommissioner Code = "NOT_COMMISSIONER"
	CodeNotInLeague     Code = "NOT_IN_LEAGUE"

	CodeDraftNotInProgress Code = "DRAFT_NOT_IN_PROGRESS"
	CodeDraftNotStartedYet Code = "DRAFT_NOT_STARTED_YET"
	CodeOrderNotConfirmed  Code = "ORDER_NOT_CONFIRMED"
	CodeNotYourTurn        Code = "NOT_YOUR_TURN"
	CodePickDeadlinePassed Code = "PICK_DEADLINE_PASSED"
	CodeInvalidWeek        Code = "INVALID_WEEK"
	CodePoolIneligible     Code = "POOL_INELIGIBLE"
	CodeNoPicksToUndo      Code = "NO_PICKS_TO_UNDO"
	CodeOrderInvalid       Code = "ORDER_INVALID"

	CodeDraftAlreadyStarted Code = "DRAFT_ALREADY_STARTED"
	CodeDraftNotPaused      Code = "DRAFT_NOT_PAUSED"

	CodePickConflict              Code = "PICK_CONFLICT"
	CodePickAlreadyMade           Code = "PICK_ALREADY_MADE"
	CodePlayerAlreadyDrafted      Code = "PLAYER_ALREADY_DRAFTED"
	CodeAssetAlreadySelected      Code = "ASSET_ALREADY_SELECTED"
	CodeTimerModeLockedAfterStart Code = "TIMER_MODE_LOCKED_AFTER_START"

	CodeTransient Code = "TRANSIENT"
	CodeInternal  Code = "INTERNAL"
)

// Error is the engine's error type. Wrapped causes stay reachable through
// errors.Is / errors.As.
type Error struct {
	Kind Kind
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	}
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(code Code, msg string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Msg: msg}
}

func Forbidden(code Code, msg string) *Error {
	return &Error{Kind: KindForbidden, Code: code, Msg: msg}
}

func Validation(code Code, msg string) *Error {
	return &Error{Kind: KindValidation, Code: code, Msg: msg}
}

func Conflict(code Code, msg string) *Error {
	return &Error{Kind: KindConflict, Code: code, Msg: msg}
}

func Transient(msg string, err error) *Error {
	return &Error{Kind: KindTransient, Code: CodeTransient, Msg: msg, Err: err}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Msg: msg, Err: err}
}

// CodeOf returns the code of err if it is (or wraps) an *Error.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Retryable reports whether the caller may safely retry the operation.
// Conflicts are retryable after a re-read; transient failures are retryable
// as-is.
func Retryable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == KindTransient || e.Kind == KindConflict
	}
	return false
}
