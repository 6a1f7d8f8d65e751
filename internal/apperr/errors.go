package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails domain validation (HTTP 400).
var ErrInvalid = errors.New("invalid input")

// ErrBusinessRule is returned when valid input breaks a pricing or promotion rule (HTTP 400).
var ErrBusinessRule = errors.New("business rule violation")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized indicates missing or wrong credentials (HTTP 401).
var ErrUnauthorized = errors.New("unauthorized")

// Error carries a human-readable message on top of one of the sentinel kinds.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Msg
}

// Unwrap exposes the sentinel so callers can match with errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

func newf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Invalidf returns an ErrInvalid with a formatted message.
func Invalidf(format string, args ...any) error { return newf(ErrInvalid, format, args...) }

// NotFoundf returns an ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error { return newf(ErrNotFound, format, args...) }

// Conflictf returns an ErrConflict with a formatted message.
func Conflictf(format string, args ...any) error { return newf(ErrConflict, format, args...) }

// BusinessRulef returns an ErrBusinessRule with a formatted message.
func BusinessRulef(format string, args ...any) error { return newf(ErrBusinessRule, format, args...) }

// Unauthorizedf returns an ErrUnauthorized with a formatted message.
func Unauthorizedf(format string, args ...any) error { return newf(ErrUnauthorized, format, args...) }

// Message returns the user-facing message of err, or fallback when err carries none.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return fallback
}
