// Package filter applies continent and numeric range predicates to a record sequence.
// Every filter returns a new slice and keeps the relative order of its input.
package filter

import (
	"slices"
	"sort"
	"strings"

	"github.com/bastiangx/countryq/pkg/country"
	"github.com/sahilm/fuzzy"
)

// ByContinent keeps records whose continent equals term, ignoring case.
// An unknown continent yields an empty result, not an error.
func ByContinent(records []country.Country, term string) ([]country.Country, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, country.NewError(country.EmptyInput, "continent", term, "continent name must not be empty")
	}
	out := make([]country.Country, 0)
	for _, c := range records {
		if c.SameContinent(term) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Continents returns the distinct continent labels, sorted.
func Continents(records []country.Country) []string {
	seen := make(map[string]bool)
	labels := make([]string, 0)
	for _, c := range records {
		if !seen[c.Continent] {
			seen[c.Continent] = true
			labels = append(labels, c.Continent)
		}
	}
	sort.Strings(labels)
	return labels
}

// SuggestContinent returns the known continent closest to term,
// for hinting after a continent search came back empty.
func SuggestContinent(records []country.Country, term string) (string, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", false
	}
	labels := Continents(records)
	matches := fuzzy.Find(strings.ToLower(term), lowerAll(labels))
	if len(matches) == 0 {
		return "", false
	}
	return labels[matches[0].Index], true
}

// ByPopulation keeps records with lo <= Population <= hi.
func ByPopulation(records []country.Country, lo, hi int64) ([]country.Country, error) {
	return byRange(records, "population", lo, hi, func(c country.Country) int64 { return c.Population })
}

// ByArea keeps records with lo <= Area <= hi.
func ByArea(records []country.Country, lo, hi int64) ([]country.Country, error) {
	return byRange(records, "area", lo, hi, func(c country.Country) int64 { return c.Area })
}

// byRange rejects inverted bounds instead of swapping them.
func byRange(records []country.Country, field string, lo, hi int64, value func(country.Country) int64) ([]country.Country, error) {
	if lo > hi {
		return nil, country.NewError(country.RangeOrder, field, "",
			"minimum %d is greater than maximum %d", lo, hi)
	}
	out := slices.DeleteFunc(slices.Clone(records), func(c country.Country) bool {
		v := value(c)
		return v < lo || v > hi
	})
	if out == nil {
		out = make([]country.Country, 0)
	}
	return out, nil
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}
