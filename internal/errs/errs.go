// Package errs defines the four error kinds every loop in this orchestrator
// classifies its failures into: Unrecoverable, Validation, Recoverable, and RPC.
package errs

import (
	"errors"
	"fmt"
)

// Kind is one of the four error classes a loop iteration can fail with.
type Kind int

const (
	// KindUnrecoverable is not retried by retrywrap. The polling loops log it
	// and keep running; only errors returned to the CLI exit the process.
	KindUnrecoverable Kind = iota
	// KindValidation drops the offending item but keeps the loop running.
	KindValidation
	// KindRecoverable is logged at warn and retried on the next iteration.
	KindRecoverable
	// KindRPC is a wrapped transport error, treated as recoverable unless it
	// repeats beyond the loop's outer timeout.
	KindRPC
)

func (k Kind) String() string {
	switch k {
	case KindUnrecoverable:
		return "unrecoverable"
	case KindValidation:
		return "validation"
	case KindRecoverable:
		return "recoverable"
	case KindRPC:
		return "rpc"
	default:
		return "unknown"
	}
}

// Error wraps an underlying cause with a Kind and optional correlating fields
// (event nonce, transaction hash) so loops can log the diagnostics §7 requires
// without re-parsing the error string.
type Error struct {
	Kind       Kind
	Msg        string
	EventNonce *uint64
	TxHash     string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// WithEventNonce returns a copy of e carrying the given event nonce.
func (e *Error) WithEventNonce(n uint64) *Error {
	cp := *e
	cp.EventNonce = &n
	return &cp
}

// WithTxHash returns a copy of e carrying the given transaction hash.
func (e *Error) WithTxHash(hash string) *Error {
	cp := *e
	cp.TxHash = hash
	return &cp
}

func newf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// Unrecoverable constructs a KindUnrecoverable error. A loop iteration that
// returns it is logged like any other failed iteration; the loop continues.
func Unrecoverable(cause error, format string, args ...any) *Error {
	return newf(KindUnrecoverable, cause, format, args...)
}

// Validation constructs a KindValidation error for a malformed item.
func Validation(cause error, format string, args ...any) *Error {
	return newf(KindValidation, cause, format, args...)
}

// Recoverable constructs a KindRecoverable error.
func Recoverable(cause error, format string, args ...any) *Error {
	return newf(KindRecoverable, cause, format, args...)
}

// RPC constructs a KindRPC error wrapping a transport failure.
func RPC(cause error, format string, args ...any) *Error {
	return newf(KindRPC, cause, format, args...)
}

// Is reports whether err (or any error it wraps) is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
