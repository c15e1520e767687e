package filter

import (
	"strconv"
	"strings"

	"github.com/bastiangx/countryq/pkg/country"
)

// ParseBound reads one integer bound from user input.
// A cancelled read is passed through as a cancelled result, never as an error.
func ParseBound(field string, in country.Input) country.Result[int64] {
	if in.Cancelled {
		return country.Cancelled[int64]()
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return country.Fail[int64](country.NewError(country.EmptyInput, field, in.Text, "bound must not be empty"))
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return country.Fail[int64](country.NewError(country.InvalidNumber, field, in.Text, "%q is not an integer", text))
	}
	return country.Ok(n)
}

// PopulationRange parses both bounds and filters by population.
func PopulationRange(records []country.Country, lo, hi country.Input) country.Result[[]country.Country] {
	return rangeFromInput(records, "population", lo, hi, ByPopulation)
}

// AreaRange parses both bounds and filters by area.
func AreaRange(records []country.Country, lo, hi country.Input) country.Result[[]country.Country] {
	return rangeFromInput(records, "area", lo, hi, ByArea)
}

type rangeFunc func([]country.Country, int64, int64) ([]country.Country, error)

// rangeFromInput stops at the first bound that is cancelled or invalid.
func rangeFromInput(records []country.Country, field string, lo, hi country.Input, apply rangeFunc) country.Result[[]country.Country] {
	from := ParseBound(field, lo)
	if !from.IsOK() {
		return country.Result[[]country.Country]{Err: from.Err, Status: from.Status}
	}
	to := ParseBound(field, hi)
	if !to.IsOK() {
		return country.Result[[]country.Country]{Err: to.Err, Status: to.Status}
	}
	out, err := apply(records, from.Value, to.Value)
	if err != nil {
		return country.Fail[[]country.Country](err)
	}
	return country.Ok(out)
}
