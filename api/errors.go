// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrResourceExhausted = fmt.Errorf("resource exhausted")
	ErrMirrorUnsupported = fmt.Errorf("mirrored mapping not supported")
	ErrLayoutMismatch    = fmt.Errorf("region layout mismatch")
	ErrRegionReleased    = fmt.Errorf("region already released")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeResourceExhausted
	ErrCodeMirrorUnsupported
	ErrCodeLayoutMismatch
	ErrCodeRegionReleased
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeResourceExhausted:
		return "resource_exhausted"
	case ErrCodeMirrorUnsupported:
		return "mirror_unsupported"
	case ErrCodeLayoutMismatch:
		return "layout_mismatch"
	case ErrCodeRegionReleased:
		return "region_released"
	default:
		return "internal"
	}
}

// Error represents a structured error with code and context.
// Unwrap exposes the sentinel matching Code and, if set, the platform cause.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		msg = fmt.Sprintf("%s (context: %+v)", msg, e.Context)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the code sentinel and the cause for errors.Is/As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := sentinelFor(e.Code); s != nil {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
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

// WithCause attaches the underlying platform error.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// CodeOf extracts the ErrorCode carried by err, or ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, ErrResourceExhausted):
		return ErrCodeResourceExhausted
	case errors.Is(err, ErrMirrorUnsupported):
		return ErrCodeMirrorUnsupported
	case errors.Is(err, ErrLayoutMismatch):
		return ErrCodeLayoutMismatch
	case errors.Is(err, ErrRegionReleased):
		return ErrCodeRegionReleased
	}
	return ErrCodeInternal
}

func sentinelFor(code ErrorCode) error {
	switch code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeResourceExhausted:
		return ErrResourceExhausted
	case ErrCodeMirrorUnsupported:
		return ErrMirrorUnsupported
	case ErrCodeLayoutMismatch:
		return ErrLayoutMismatch
	case ErrCodeRegionReleased:
		return ErrRegionReleased
	}
	return nil
}
