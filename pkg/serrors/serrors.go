// Package serrors carries semantic error kinds across layers so the HTTP
// boundary can pick a status code without knowing where an error came from.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Only values built by NewKind satisfy it.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind returns a comparable sentinel named name. The name doubles as the
// machine readable code sent to API clients.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds known to the service.
var (
	// ErrNotFound: unknown or expired short code.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized: missing, invalid or foreign credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest: malformed JSON, missing keys, unsupported URLs.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrTooLarge: a request body over the configured limit.
	ErrTooLarge = NewKind("PAYLOAD_TOO_LARGE")
	// ErrConflict: no free short code could be found.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal is what every error without a kind is treated as.
	ErrInternal = NewKind("INTERNAL")
)

// Error pairs a Kind with an optional cause and message.
//
// errors.Is and errors.As match both the kind and anything in the cause chain.
// Error() prints "<msg>: <cause>", falling back to whichever of the two is set
// and finally to the kind name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With returns an error of kind k with a formatted message and no cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k wrapping err, with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns a bare error of kind k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

// Kind returns the sentinel of e, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message given to With or Wrap.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, or nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the first kind found in err's chain, ErrInternal if none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// MessageOf returns the message of the first *Error in err's chain that has
// one, or fallback.
func MessageOf(err error, fallback string) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}
		if e.msg != "" {
			return e.msg
		}
		err = e.err
	}

	return fallback
}
