package num

import "fmt"

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

const (
	// ErrInvalidArgument indicates malformed input to a constructor, such as
	// an empty digit list or a string that is not a decimal number.
	ErrInvalidArgument = ErrorKind("ErrInvalidArgument")

	// ErrNegativeValue indicates a negative value was passed to a
	// constructor. Naturals are unsigned.
	ErrNegativeValue = ErrorKind("ErrNegativeValue")

	// ErrUnderflow indicates a subtraction whose result would be below zero.
	ErrUnderflow = ErrorKind("ErrUnderflow")

	// ErrDivisionByZero indicates a division or modulo by zero.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrUnsupported indicates division by a multi-digit divisor that is not
	// an exact power of two.
	ErrUnsupported = ErrorKind("ErrUnsupported")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a failed operation. It has full support for errors.Is and
// errors.As, so the caller can ascertain the specific reason for the error by
// checking the underlying error.
type Error struct {
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

func numError(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Err: kind, Description: "num: " + fmt.Sprintf(format, args...)}
}
