package core

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of failure reported by a polynomial operation
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrAllocation represents a result whose coefficient storage cannot be
	// obtained, either because it exceeds the ring's degree limit or because
	// its size overflows.
	ErrAllocation

	// ErrDomain represents a field division by the zero complex value
	ErrDomain

	// ErrDivisionByZeroPolynomial represents a Euclidean division whose divisor
	// is the zero polynomial
	ErrDivisionByZeroPolynomial

	// ErrIndexOutOfRange represents a coefficient write past allocated storage
	ErrIndexOutOfRange

	// ErrInvalidInput represents malformed textual or binary input
	ErrInvalidInput

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig
)

var codeNames = map[ErrorCode]string{
	ErrUnknown:                  "unknown",
	ErrAllocation:               "allocation failure",
	ErrDomain:                   "domain error",
	ErrDivisionByZeroPolynomial: "division by zero polynomial",
	ErrIndexOutOfRange:          "index out of range",
	ErrInvalidInput:             "invalid input",
	ErrInvalidConfig:            "invalid config",
}

// String returns the name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error represents a tagged polynomial engine failure
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vybium-poly %s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vybium-poly %s: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error by code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf returns the code of the first *Error in err's chain, or ErrUnknown
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

func newError(code ErrorCode, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}
