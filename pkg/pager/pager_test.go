package pager

import (
	"testing"

	"github.com/bastiangx/countryq/pkg/country"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestTotalPages(t *testing.T) {
	testCases := []struct{ n, size, expected int }{
		{25, 10, 3},
		{30, 10, 3},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{0, 10, 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, TotalPages(tc.n, tc.size), "n=%d size=%d", tc.n, tc.size)
	}
}

func TestSessionBoundaries(t *testing.T) {
	s, err := New(seq(25), 10)
	require.NoError(t, err)
	require.Equal(t, 3, s.TotalPages())
	require.Equal(t, 1, s.CurrentPage())

	assert.Equal(t, NoticeFirstPage, s.Apply(Previous))
	assert.Equal(t, 1, s.CurrentPage())

	assert.Equal(t, NoNotice, s.Apply(Next))
	assert.Equal(t, NoNotice, s.Apply(Next))
	assert.Equal(t, 3, s.CurrentPage())
	assert.Equal(t, []int{20, 21, 22, 23, 24}, s.Page())
	assert.Equal(t, 20, s.Offset())

	assert.Equal(t, NoticeLastPage, s.Apply(Next))
	assert.Equal(t, 3, s.CurrentPage())
	assert.False(t, s.HasNext())
	assert.True(t, s.HasPrevious())
}

func TestSessionPages(t *testing.T) {
	s, err := New(seq(25), 10)
	require.NoError(t, err)
	assert.Equal(t, seq(10), s.Page())

	s.Apply(Next)
	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, s.Page())

	s.Apply(Previous)
	assert.Equal(t, seq(10), s.Page())
}

func TestInvalidAndExit(t *testing.T) {
	s, err := New(seq(5), 2)
	require.NoError(t, err)

	assert.Equal(t, NoticeInvalid, s.Apply(Invalid))
	assert.Equal(t, 1, s.CurrentPage())
	assert.False(t, s.Done())

	assert.Equal(t, NoNotice, s.Apply(Exit))
	assert.True(t, s.Done())

	// terminal: nothing moves after exit
	s.Apply(Next)
	assert.Equal(t, 1, s.CurrentPage())
}

func TestNewRejectsEmpty(t *testing.T) {
	s, err := New([]string{}, 10)
	require.ErrorIs(t, err, country.ErrNoRecords)
	assert.Nil(t, s)
}

func TestNewDefaultsPageSize(t *testing.T) {
	s, err := New(seq(11), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, s.PageSize())
	assert.Equal(t, 2, s.TotalPages())
}

func TestStepIsPure(t *testing.T) {
	start := State{Current: 2, Total: 3}
	next, notice := Step(start, Next)
	assert.Equal(t, NoNotice, notice)
	assert.Equal(t, 3, next.Current)
	assert.Equal(t, 2, start.Current)
}

func TestParseCommand(t *testing.T) {
	testCases := map[string]Command{
		"n": Next, " N ": Next, "next": Next, "S": Next,
		"p": Previous, "PREV": Previous, "a": Previous,
		"q": Exit, "exit": Exit, "V": Exit,
		"": Invalid, "x": Invalid, "2": Invalid,
	}
	for token, expected := range testCases {
		assert.Equal(t, expected, ParseCommand(token), "token %q", token)
	}
}
