// Package apperr defines the domain error taxonomy. Services return
// *apperr.Error values; the HTTP layer maps kinds onto status codes and
// never leaks raw storage errors to clients.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindUnauthorized Kind = iota // missing or invalid credential
	KindForbidden                // authenticated but not permitted
	KindNotFound                 // entity absent or not owned by caller
	KindConflict                 // uniqueness violation
	KindInvalid                  // malformed input
	KindIntegrity                // expected invariant violated (e.g. missing default wallet)
	KindUpstream                 // external collaborator unreachable or erroring
	KindInternal                 // everything else
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause while keeping the client-facing
// message stable.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func Invalid(message string) *Error      { return New(KindInvalid, message) }
func Integrity(message string) *Error    { return New(KindIntegrity, message) }
func Upstream(message string) *Error     { return New(KindUpstream, message) }

// KindOf reports the kind of err, or KindInternal when err is not a
// domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps a domain error onto a response status. Unknown errors
// map to 500.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInvalid:
		return http.StatusBadRequest
	case KindIntegrity, KindInternal:
		return http.StatusInternalServerError
	case KindUpstream:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
