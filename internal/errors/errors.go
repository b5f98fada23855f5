// Package errors defines the error taxonomy shared by the engine, the stores
// and the CLI, plus helpers for printing errors at the command line.
package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/tracker/internal/logger"
)

// Code identifies a class of failure
type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeStorage      Code = "STORAGE_FAILURE"
	CodeInvalidInput Code = "INVALID_INPUT"
)

// AppError carries a failure class, a human-readable message and an optional cause
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As
func (e *AppError) Unwrap() error { return e.Err }

// Is matches any AppError with the same code, so sentinels work with errors.Is
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

var (
	ErrNotFound     = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrStorage      = &AppError{Code: CodeStorage, Message: "storage failure"}
	ErrInvalidInput = &AppError{Code: CodeInvalidInput, Message: "invalid input"}
)

// NotFound reports a missing entity, e.g. NotFound("tracker", id)
func NotFound(kind, key string) error {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s %q not found", kind, key)}
}

// Storage wraps a persistence failure. NotFound and Storage errors pass through unchanged.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) && (appErr.Code == CodeNotFound || appErr.Code == CodeStorage) {
		return err
	}
	return &AppError{Code: CodeStorage, Message: "failed to " + op, Err: err}
}

// InvalidInput reports a caller error
func InvalidInput(format string, args ...interface{}) error {
	return &AppError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool { return stderrors.Is(err, ErrNotFound) }

func IsStorage(err error) bool { return stderrors.Is(err, ErrStorage) }

func IsInvalidInput(err error) bool { return stderrors.Is(err, ErrInvalidInput) }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
