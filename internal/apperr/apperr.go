// Package apperr defines the error taxonomy shared by services and controllers:
// validation (400), not-found (404), upstream store failures and everything
// unexpected (500). Upstream details are meant for logs, not response bodies.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUpstream
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Upstream wraps a failed call to the backing store. The wrapped error is kept
// for logging; clients only ever see msg.
func Upstream(msg string, err error) error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf classifies any error; non-taxonomy errors count as internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// Message returns the client-safe message for err.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Msg
	}
	return "internal server error"
}
