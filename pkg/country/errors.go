package country

import (
	"errors"
	"fmt"
)

// Kind classifies a recoverable query failure.
type Kind int

const (
	KindUnknown Kind = iota
	EmptyInput
	InvalidNumber
	RangeOrder
	InvalidKey
	NoData
	NoRecords
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case InvalidNumber:
		return "invalid number"
	case RangeOrder:
		return "range order"
	case InvalidKey:
		return "invalid key"
	case NoData:
		return "no data"
	case NoRecords:
		return "no records"
	}
	return "unknown"
}

// Error is the structured error every query component returns.
// Field names the input that failed ("query", "population", "area", ...).
type Error struct {
	Kind  Kind
	Field string
	Input string
	Msg   string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Field, e.Msg)
}

// Is matches any *Error of the same Kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrEmptyInput    = &Error{Kind: EmptyInput, Msg: "value must not be empty"}
	ErrInvalidNumber = &Error{Kind: InvalidNumber, Msg: "value must be an integer"}
	ErrRangeOrder    = &Error{Kind: RangeOrder, Msg: "minimum exceeds maximum"}
	ErrInvalidKey    = &Error{Kind: InvalidKey, Msg: "unrecognized sort key"}
	ErrNoData        = &Error{Kind: NoData, Msg: "no records to aggregate"}
	ErrNoRecords     = &Error{Kind: NoRecords, Msg: "no records to page through"}
)

// NewError builds an *Error of the given kind.
func NewError(kind Kind, field, input, format string, args ...any) *Error {
	return &Error{
		Kind:  kind,
		Field: field,
		Input: input,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// KindOf returns the Kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
