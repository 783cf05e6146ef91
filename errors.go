package worldcal

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors returned by calendar operations.
type ErrorKind int

const (
	// DomainRange reports an argument outside its valid range, such as a
	// month of 13 in a Gregorian year or a day past the end of the month.
	DomainRange ErrorKind = iota + 1

	// ResultOutOfRange reports that the result of a conversion or of date
	// arithmetic falls outside the calendar's supported range.
	ResultOutOfRange

	// InvalidEra reports an era identifier the calendar does not define.
	InvalidEra

	// FrozenState reports an attempt to modify a read-only calendar.
	FrozenState
)

func (k ErrorKind) String() string {
	switch k {
	case DomainRange:
		return "domain_range"
	case ResultOutOfRange:
		return "result_out_of_range"
	case InvalidEra:
		return "invalid_era"
	case FrozenState:
		return "frozen_state"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors for use with [errors.Is]. Every *Error matches the
// sentinel of its kind.
var (
	ErrDomainRange      = errors.New("argument out of range")
	ErrResultOutOfRange = errors.New("result out of supported range")
	ErrInvalidEra       = errors.New("invalid era")
	ErrFrozenState      = errors.New("calendar is read-only")
)

// Error is the error type returned by every calendar operation.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Op is the calendar operation that failed (e.g., "hebrew.ToTimePoint").
	Op string

	// Param names the offending argument, if any.
	Param string

	// Message describes the failure.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Op + ": "
	if e.Param != "" {
		msg += e.Param + ": "
	}
	if e.Message != "" {
		return msg + e.Message
	}
	return msg + e.sentinel().Error()
}

// Unwrap returns the sentinel error of the kind, so that errors.Is matches
// both the sentinel and another *Error of the same kind.
func (e *Error) Unwrap() error {
	return e.sentinel()
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case DomainRange:
		return ErrDomainRange
	case ResultOutOfRange:
		return ErrResultOutOfRange
	case InvalidEra:
		return ErrInvalidEra
	case FrozenState:
		return ErrFrozenState
	}
	return nil
}

// --- Constructors ---

func newDomainError(op, param, format string, args ...any) *Error {
	return &Error{Kind: DomainRange, Op: op, Param: param, Message: fmt.Sprintf(format, args...)}
}

func newRangeError(op, format string, args ...any) *Error {
	return &Error{Kind: ResultOutOfRange, Op: op, Message: fmt.Sprintf(format, args...)}
}

func newEraError(op string, era int) *Error {
	return &Error{Kind: InvalidEra, Op: op, Param: "era", Message: fmt.Sprintf("era %d is not defined", era)}
}

func newFrozenError(op string) *Error {
	return &Error{Kind: FrozenState, Op: op}
}
