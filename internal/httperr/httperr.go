// Package httperr carries the service error taxonomy. Services fail fast
// with a typed error and a human-readable message; the handler layer maps
// the kind to an HTTP status and never exposes store internals.
package httperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	// KindValidation: missing/malformed field, out-of-range value. 400.
	KindValidation Kind = iota
	// KindNotFound: id/code/username absent. 404.
	KindNotFound
	// KindAuth: bad credentials or forbidden admin action. 401.
	KindAuth
	// KindStore: connection/statement failure. 500, generic client message.
	KindStore
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.cause }

func Validation(code, message string) error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func NotFound(code, message string) error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Auth(code, message string) error {
	return &Error{Kind: KindAuth, Code: code, Message: message}
}

func Store(code string, cause error) error {
	return &Error{Kind: KindStore, Code: code, Message: "An error occurred. Please try again.", cause: cause}
}

// IsKind reports whether err is a taxonomy error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// StatusOf maps an error to its HTTP status. Untyped errors are treated as
// store failures.
func StatusOf(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the client-safe message for an error. Untyped errors get
// the generic store-failure message.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "An error occurred. Please try again."
}
