// Package apperrors defines the error taxonomy surfaced by domain
// operations: validation, not-found, conflict and storage failures.
// Handlers map these to HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned for every failed authentication attempt.
// Unknown username, wrong password and an inactive account are deliberately
// indistinguishable to the caller.
var ErrUnauthorized = errors.New("invalid credentials or inactive user")

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NotFound(format string, args ...interface{}) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(format string, args ...interface{}) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// StorageError wraps a database or I/O failure. The wrapped cause is kept
// for logs; the message is what callers see.
type StorageError struct {
	Msg string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *StorageError) Unwrap() error { return e.Err }

func Storage(err error, format string, args ...interface{}) error {
	return &StorageError{Msg: fmt.Sprintf(format, args...), Err: err}
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsStorage(err error) bool {
	var e *StorageError
	return errors.As(err, &e)
}
