// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-coretypes.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrTopologyUnavailable means the provider could not enumerate any
	// logical processors. Callers fall back to a degraded single-type
	// registry; this error never propagates past registry construction.
	ErrTopologyUnavailable = fmt.Errorf("topology unavailable")

	// ErrInvalidCoreTypeID means a core-type id does not fit the
	// constraint payload bit width.
	ErrInvalidCoreTypeID = fmt.Errorf("core type id out of range")

	// ErrEmptyConstraint means an explicit constraint with zero members
	// was requested. Use the Any sentinel for "unconstrained" instead.
	ErrEmptyConstraint = fmt.Errorf("empty core type constraint")

	// ErrUnknownCoreType means a registry lookup missed.
	ErrUnknownCoreType = fmt.Errorf("unknown core type")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeTopologyUnavailable
	ErrCodeInvalidCoreTypeID
	ErrCodeEmptyConstraint
	ErrCodeUnknownCoreType
	ErrCodeStaleCoreTypeID
	ErrCodeInternal
)

// sentinels maps codes onto the package-level errors so structured errors
// stay matchable with errors.Is.
var sentinels = map[ErrorCode]error{
	ErrCodeTopologyUnavailable: ErrTopologyUnavailable,
	ErrCodeInvalidCoreTypeID:   ErrInvalidCoreTypeID,
	ErrCodeEmptyConstraint:     ErrEmptyConstraint,
	ErrCodeUnknownCoreType:     ErrUnknownCoreType,
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the structured error onto its package-level sentinel.
func (e *Error) Unwrap() error {
	return sentinels[e.Code]
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
