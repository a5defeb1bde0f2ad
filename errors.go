package sprite

import (
	"errors"
	"fmt"
	"strconv"
)

// Code represents a machine-readable error code.
type Code string

// Error codes reported by the sprite generator.
const (
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeUnsupportedRatio Code = "UNSUPPORTED_RATIO"
	ErrCodeNoRatios         Code = "NO_RATIOS_SPECIFIED"
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeDecode           Code = "DECODE_FAILED"
	ErrCodeWrite            Code = "WRITE_FAILED"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
)

// Sentinel errors to be used with errors.Is. Any *Error carrying the same
// code matches, regardless of its message or context.
var (
	ErrInvalidDimension = &Error{Code: ErrCodeInvalidDimension}
	ErrUnsupportedRatio = &Error{Code: ErrCodeUnsupportedRatio}
	ErrNoRatios         = &Error{Code: ErrCodeNoRatios}
	ErrInvalidInput     = &Error{Code: ErrCodeInvalidInput}
	ErrDecode           = &Error{Code: ErrCodeDecode}
	ErrWrite            = &Error{Code: ErrCodeWrite}
	ErrInvalidConfig    = &Error{Code: ErrCodeInvalidConfig}
)

// Error is a structured error carrying the offending icon or ratio.
type Error struct {
	Code    Code    // Machine-readable error code
	Message string  // Human-readable message
	Icon    string  // Offending icon identifier (optional)
	Ratio   float64 // Offending pixel ratio (optional, zero when unset)
	Cause   error   // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := string(e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Icon != "" {
		msg += fmt.Sprintf(" (icon %q)", e.Icon)
	}
	if e.Ratio != 0 {
		msg += " (ratio " + strconv.FormatFloat(e.Ratio, 'g', -1, 64) + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsCode reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func IsCode(err error, code Code) bool {
	return errors.Is(err, &Error{Code: code})
}

// GetCode extracts the error code from an error, if available.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
