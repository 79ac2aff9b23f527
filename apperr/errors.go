// Package apperr holds the request-level error taxonomy. Engines return
// these; the HTTP layer translates them into the JSON envelope without
// leaking store internals.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindUnavailable
	KindEmptyCart
	KindInvalidStatus
	KindAuth
	KindStore
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error     { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error       { return &Error{Kind: KindNotFound, Message: msg} }
func Unavailable(msg string) *Error    { return &Error{Kind: KindUnavailable, Message: msg} }
func EmptyCart(msg string) *Error      { return &Error{Kind: KindEmptyCart, Message: msg} }
func InvalidStatus(msg string) *Error  { return &Error{Kind: KindInvalidStatus, Message: msg} }
func Auth(msg string) *Error           { return &Error{Kind: KindAuth, Message: msg} }
func Store(msg string, err error) *Error {
	return &Error{Kind: KindStore, Message: msg, Err: err}
}

// Status maps an error to its HTTP status code. Unknown errors are treated
// as store failures.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindEmptyCart, KindInvalidStatus:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Public returns the message safe to show the caller. Store errors carry
// internal detail in Err, which stays in the logs only.
func Public(err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindStore {
		return "Something went wrong"
	}
	return e.Message
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
