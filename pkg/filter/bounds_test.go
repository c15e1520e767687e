package filter

import (
	"testing"

	"github.com/bastiangx/countryq/pkg/country"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBound(t *testing.T) {
	testCases := []struct {
		input       country.Input
		status      country.Status
		value       int64
		kind        country.Kind
		description string
	}{
		{country.Text("42"), country.StatusOK, 42, country.KindUnknown, "Plain integer"},
		{country.Text("  -7 "), country.StatusOK, -7, country.KindUnknown, "Surrounding spaces, negative"},
		{country.Text(""), country.StatusErr, 0, country.EmptyInput, "Empty"},
		{country.Text("   "), country.StatusErr, 0, country.EmptyInput, "Whitespace only"},
		{country.Text("12.5"), country.StatusErr, 0, country.InvalidNumber, "Decimal"},
		{country.Text("diez"), country.StatusErr, 0, country.InvalidNumber, "Word"},
		{country.Interrupted(), country.StatusCancelled, 0, country.KindUnknown, "Interrupted read"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			res := ParseBound("population", tc.input)
			assert.Equal(t, tc.status, res.Status)
			assert.Equal(t, tc.value, res.Value)
			assert.Equal(t, tc.kind, country.KindOf(res.Err))
			if res.IsCancelled() {
				assert.NoError(t, res.Err)
			}
		})
	}
}

func TestPopulationRangeFromInput(t *testing.T) {
	res := PopulationRange(sample(), country.Text("1000000"), country.Text("100000000"))
	require.True(t, res.IsOK())
	require.Len(t, res.Value, 3)
	assert.Equal(t, "Alemania", res.Value[0].Name)
	assert.Equal(t, "Kenia", res.Value[1].Name)
	assert.Equal(t, "Uruguay", res.Value[2].Name)
}

func TestRangeFromInputOutcomes(t *testing.T) {
	t.Run("cancelled minimum skips the maximum", func(t *testing.T) {
		res := AreaRange(sample(), country.Interrupted(), country.Text("oops"))
		assert.True(t, res.IsCancelled())
		assert.NoError(t, res.Err)
		assert.Nil(t, res.Value)
	})
	t.Run("cancelled maximum", func(t *testing.T) {
		res := AreaRange(sample(), country.Text("1"), country.Interrupted())
		assert.True(t, res.IsCancelled())
	})
	t.Run("invalid maximum", func(t *testing.T) {
		res := AreaRange(sample(), country.Text("1"), country.Text("x"))
		assert.Equal(t, country.StatusErr, res.Status)
		assert.ErrorIs(t, res.Err, country.ErrInvalidNumber)
	})
	t.Run("inverted bounds", func(t *testing.T) {
		res := PopulationRange(sample(), country.Text("9"), country.Text("1"))
		assert.Equal(t, country.StatusErr, res.Status)
		assert.ErrorIs(t, res.Err, country.ErrRangeOrder)
		assert.Nil(t, res.Value)
	})
}
