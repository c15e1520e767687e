/*
Package pager splits an ordered sequence into fixed-size pages and tracks
navigation between them.

Navigation is a pure transition function, Step, over a small State. A
Session pairs that state with the sequence it windows so callers can fetch
the current page after each transition and render it however they like.
The sequence is fixed when the session starts; the pager never re-sorts or
re-filters it.
*/
package pager

import (
	"strings"

	"github.com/bastiangx/countryq/pkg/country"
)

// DefaultPageSize is used when a session is opened with a non-positive size.
const DefaultPageSize = 10

// Command is a navigation input.
type Command int

const (
	Invalid Command = iota
	Next
	Previous
	Exit
)

func (c Command) String() string {
	switch c {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Exit:
		return "exit"
	}
	return "invalid"
}

// ParseCommand maps a typed token to a Command.
// s/a/v are accepted alongside n/p/q so older key habits keep working.
func ParseCommand(token string) Command {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "n", "next", "s", ">":
		return Next
	case "p", "prev", "previous", "a", "<":
		return Previous
	case "q", "quit", "exit", "v":
		return Exit
	}
	return Invalid
}

// Notice is a non-fatal status message produced by a transition.
type Notice string

const (
	NoNotice        Notice = ""
	NoticeLastPage  Notice = "already on the last page"
	NoticeFirstPage Notice = "already on the first page"
	NoticeInvalid   Notice = "invalid navigation option, use N, P or Q"
)

// State is the navigation position. Current is 1-indexed.
type State struct {
	Current int
	Total   int
	Done    bool
}

// Step applies cmd to s. Boundary moves and unknown commands leave the page unchanged.
func Step(s State, cmd Command) (State, Notice) {
	if s.Done {
		return s, NoNotice
	}
	switch cmd {
	case Next:
		if s.Current < s.Total {
			s.Current++
			return s, NoNotice
		}
		return s, NoticeLastPage
	case Previous:
		if s.Current > 1 {
			s.Current--
			return s, NoNotice
		}
		return s, NoticeFirstPage
	case Exit:
		s.Done = true
		return s, NoNotice
	}
	return s, NoticeInvalid
}

// TotalPages is ceil(n / size).
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Session windows items page by page.
type Session[T any] struct {
	items []T
	size  int
	state State
}

// New opens a session on page 1. Zero items is rejected and no session is created.
func New[T any](items []T, pageSize int) (*Session[T], error) {
	if len(items) == 0 {
		return nil, country.NewError(country.NoRecords, "", "", "nothing to display")
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Session[T]{
		items: items,
		size:  pageSize,
		state: State{Current: 1, Total: TotalPages(len(items), pageSize)},
	}, nil
}

// Apply runs one transition and returns its notice.
func (s *Session[T]) Apply(cmd Command) Notice {
	next, notice := Step(s.state, cmd)
	s.state = next
	return notice
}

// Page returns the slice [(current-1)*size, current*size) of the sequence.
func (s *Session[T]) Page() []T {
	start := (s.state.Current - 1) * s.size
	end := min(start+s.size, len(s.items))
	return s.items[start:end]
}

// Offset is the index in the full sequence of the first item on the current page.
func (s *Session[T]) Offset() int {
	return (s.state.Current - 1) * s.size
}

func (s *Session[T]) State() State      { return s.state }
func (s *Session[T]) CurrentPage() int  { return s.state.Current }
func (s *Session[T]) TotalPages() int   { return s.state.Total }
func (s *Session[T]) PageSize() int     { return s.size }
func (s *Session[T]) Len() int          { return len(s.items) }
func (s *Session[T]) Done() bool        { return s.state.Done }
func (s *Session[T]) HasNext() bool     { return s.state.Current < s.state.Total }
func (s *Session[T]) HasPrevious() bool { return s.state.Current > 1 }
