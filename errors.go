package fastscaling

import (
	"errors"
	"fmt"
)

// Kind classifies a failure detected by the core.
type Kind uint8

const (
	// KindUnknown is reported for errors that did not originate here.
	KindUnknown Kind = iota

	// KindNullArgument means a required buffer or value was missing,
	// or a buffer was used after Destroy.
	KindNullArgument

	// KindDimensionMismatch means buffer geometry does not fit the request.
	KindDimensionMismatch

	// KindInvalidPixelFormat means the pixel format is not recognized.
	KindInvalidPixelFormat

	// KindInvalidFilterParameter means a filter, window or kernel
	// parameter is out of range.
	KindInvalidFilterParameter

	// KindOutOfMemory means a scratch allocation would exceed the budget.
	KindOutOfMemory

	// KindSizeLimitExceeded means the output exceeds the configured limits.
	KindSizeLimitExceeded
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNullArgument:
		return "NullArgument"
	case KindDimensionMismatch:
		return "DimensionMismatch"
	case KindInvalidPixelFormat:
		return "InvalidPixelFormat"
	case KindInvalidFilterParameter:
		return "InvalidFilterParameter"
	case KindOutOfMemory:
		return "OutOfMemory"
	case KindSizeLimitExceeded:
		return "SizeLimitExceeded"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every fallible operation of the core.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "fastscaling: " + e.Kind.String()
	}
	return "fastscaling: " + e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is the sentinel for the same kind, so that
// errors.Is(err, ErrDimensionMismatch) matches any mismatch error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Kind == e.Kind
}

// Sentinel errors, one per kind.
var (
	ErrNullArgument           = &Error{Kind: KindNullArgument}
	ErrDimensionMismatch      = &Error{Kind: KindDimensionMismatch}
	ErrInvalidPixelFormat     = &Error{Kind: KindInvalidPixelFormat}
	ErrInvalidFilterParameter = &Error{Kind: KindInvalidFilterParameter}
	ErrOutOfMemory            = &Error{Kind: KindOutOfMemory}
	ErrSizeLimitExceeded      = &Error{Kind: KindSizeLimitExceeded}
)

// Errorf returns an *Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, looking through wrapping.
// It returns KindUnknown for nil and for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
