// Package apperrors defines the domain error taxonomy shared by services and
// handlers. Services return these; handlers map them to an HTTP status and a
// flat {message} JSON body in one place.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	KindUnauthenticated Kind = iota // 401
	KindForbidden                   // 403
	KindInvalidRequest              // 400
	KindNotFound                    // 404
	KindInternal                    // 500
)

// Error is a domain error with a client-safe message. For KindInternal the
// message shown to clients is always generic; the wrapped cause stays
// server-side.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Unauthenticated returns a generic 401. The message is deliberately the same
// for a missing, malformed, expired, or orphaned credential.
func Unauthenticated() *Error {
	return &Error{Kind: KindUnauthenticated, Message: "Invalid token."}
}

// Forbidden returns a 403 with the given business reason.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// InvalidRequest returns a 400.
func InvalidRequest(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message}
}

// NotFound returns a 404.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps an unexpected failure. Clients only ever see "Server error".
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Server error", cause: cause}
}

// HTTPStatus maps a Kind to its status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindInvalidRequest:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// As extracts an *Error from err's chain, if any.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
