package vybiumpoly

import "github.com/vybium/vybium-poly/internal/vybium-poly/core"

// ErrorCode represents a polynomial engine error code
type ErrorCode = core.ErrorCode

// Error represents a polynomial engine error
type Error = core.Error

const (
	// ErrUnknown represents an unknown error
	ErrUnknown = core.ErrUnknown

	// ErrAllocation represents a result exceeding the ring's storage limit
	ErrAllocation = core.ErrAllocation

	// ErrDomain represents a division by the zero complex value
	ErrDomain = core.ErrDomain

	// ErrDivisionByZeroPolynomial represents a division by the zero polynomial
	ErrDivisionByZeroPolynomial = core.ErrDivisionByZeroPolynomial

	// ErrIndexOutOfRange represents a coefficient write past allocated storage
	ErrIndexOutOfRange = core.ErrIndexOutOfRange

	// ErrInvalidInput represents malformed textual or binary input
	ErrInvalidInput = core.ErrInvalidInput

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig = core.ErrInvalidConfig
)

// CodeOf returns the code carried by err, or ErrUnknown
func CodeOf(err error) ErrorCode {
	return core.CodeOf(err)
}
