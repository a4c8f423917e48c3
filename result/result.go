package result

import (
	"fmt"

	"github.com/martidominguez/nanolog/core"
)

// MaxDescLen is the bound for a status description in bytes. Longer
// descriptions are truncated silently, like log messages.
const MaxDescLen = 128

// Code classifies a failure.
type Code int

const (
	// OK marks success
	OK Code = iota
	// ErrFail is an unclassified failure
	ErrFail
	// ErrInvalidArg marks a rejected argument
	ErrInvalidArg
	// ErrTimeout marks an expired deadline
	ErrTimeout
	// ErrNoMemory marks an exhausted allocation
	ErrNoMemory
	// ErrNotSupported marks an unimplemented operation
	ErrNotSupported
)

// String returns the string representation of the code
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case ErrFail:
		return "FAIL"
	case ErrInvalidArg:
		return "INVALID_ARG"
	case ErrTimeout:
		return "TIMEOUT"
	case ErrNoMemory:
		return "NO_MEMORY"
	case ErrNotSupported:
		return "NOT_SUPPORTED"
	default:
		return "UNKNOWN"
	}
}

// Status is a typed operation outcome: a code, the tag of the
// reporting component, and a bounded human-readable description. It is
// a plain value with no control flow of its own; functions return it
// instead of raising anything.
type Status struct {
	Code        Code
	Tag         string
	Description string
}

// Ok returns a success status
func Ok() Status {
	return Status{Code: OK}
}

// Failf returns a failure status with a formatted description. Tag and
// description are bounded the same way log records are.
func Failf(code Code, tag, format string, args ...interface{}) Status {
	return Status{
		Code:        code,
		Tag:         core.Truncate(tag, core.MaxTagLen),
		Description: core.Truncate(fmt.Sprintf(format, args...), MaxDescLen),
	}
}

// IsOk reports whether the status carries no failure
func (s Status) IsOk() bool {
	return s.Code == OK
}

// Error makes Status usable as an error value.
func (s Status) Error() string {
	if s.IsOk() {
		return "OK"
	}
	if s.Tag == "" {
		return fmt.Sprintf("%s: %s", s.Code, s.Description)
	}
	return fmt.Sprintf("[%s] %s: %s", s.Tag, s.Code, s.Description)
}
