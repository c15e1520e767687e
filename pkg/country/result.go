package country

import "strings"

// Status tags a Result.
type Status int

const (
	StatusOK Status = iota
	StatusErr
	StatusCancelled
)

// Result carries a value, an error, or a cancellation.
// A cancelled Result is not a failure: callers drop the operation without reporting it.
type Result[T any] struct {
	Value  T
	Err    error
	Status Status
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v, Status: StatusOK}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err, Status: StatusErr}
}

func Cancelled[T any]() Result[T] {
	return Result[T]{Status: StatusCancelled}
}

func (r Result[T]) IsOK() bool        { return r.Status == StatusOK }
func (r Result[T]) IsCancelled() bool { return r.Status == StatusCancelled }

// Input is one line of raw user text as delivered by a prompt.
// Cancelled is set when the read was interrupted instead of completed.
type Input struct {
	Text      string
	Cancelled bool
}

// Text wraps a completed read.
func Text(s string) Input {
	return Input{Text: s}
}

// Interrupted is the Input for a read abandoned by the user.
func Interrupted() Input {
	return Input{Cancelled: true}
}

// Blank reports whether the input has no visible characters.
func (in Input) Blank() bool {
	return strings.TrimSpace(in.Text) == ""
}
