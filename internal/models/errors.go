package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrSourceUnavailable ErrorType = iota
	ErrMalformedRecord
	ErrNotFound
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrSourceUnavailable:
		return "SourceUnavailable"
	case ErrMalformedRecord:
		return "MalformedRecord"
	case ErrNotFound:
		return "NotFound"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// LookupError represents a failure while reading a package source.
// Adapters log these and degrade to fewer results; they never reach
// the search or details entry points.
type LookupError struct {
	Type    ErrorType
	Package string
	Err     error
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Package, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *LookupError) Unwrap() error {
	return e.Err
}
