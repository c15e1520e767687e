/*
Package order sorts record sequences by a user-selected key.

Sorting is always stable: records equal under the key keep their input
order in both directions. Descending order inverts the comparison rather
than reversing the sorted slice, which is what keeps ties in input order.
For the composite continent key the direction applies to continent and
name together.
*/
package order

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/bastiangx/countryq/pkg/country"
)

// Key selects the sort criterion.
type Key int

const (
	ByName Key = iota + 1
	ByContinent
	ByPopulation
	ByArea
)

func (k Key) String() string {
	switch k {
	case ByName:
		return "name"
	case ByContinent:
		return "continent"
	case ByPopulation:
		return "population"
	case ByArea:
		return "area"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Direction is ascending or descending.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

var keyTokens = map[string]Key{
	"1": ByName, "name": ByName,
	"2": ByContinent, "continent": ByContinent,
	"3": ByPopulation, "population": ByPopulation,
	"4": ByArea, "area": ByArea,
}

// ParseKey maps a menu number or key name to a Key.
func ParseKey(token string) (Key, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if k, ok := keyTokens[t]; ok {
		return k, nil
	}
	return 0, country.NewError(country.InvalidKey, "key", token, "%q is not a sort criterion (1-4)", token)
}

// ParseDirection maps A/D (or asc/desc) to a Direction.
// Anything else falls back to Ascending with ok=false.
func ParseDirection(token string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "a", "asc", "ascending":
		return Ascending, true
	case "d", "desc", "descending":
		return Descending, true
	}
	return Ascending, false
}

// Sorted is a sort result plus a warning when the direction token was not understood.
type Sorted struct {
	Records   []country.Country
	Key       Key
	Direction Direction
	Warning   string
}

// Sort parses both selectors and returns a sorted copy of records.
// A bad key aborts the sort; a bad direction only produces a warning.
func Sort(records []country.Country, keyToken, dirToken string) (Sorted, error) {
	key, err := ParseKey(keyToken)
	if err != nil {
		return Sorted{}, err
	}
	dir, ok := ParseDirection(dirToken)
	res := Sorted{Key: key, Direction: dir}
	if !ok {
		res.Warning = fmt.Sprintf("unknown order %q, using ascending", strings.TrimSpace(dirToken))
	}
	sorted, err := By(records, key, dir)
	if err != nil {
		return Sorted{}, err
	}
	res.Records = sorted
	return res, nil
}

// By returns a stable, sorted copy of records. The input is not modified.
// An unknown key is an InvalidKey error and no records are returned.
func By(records []country.Country, key Key, dir Direction) ([]country.Country, error) {
	compare, ok := comparator(key)
	if !ok {
		return nil, country.NewError(country.InvalidKey, "key", key.String(), "%s is not a sort criterion", key)
	}
	if dir == Descending {
		asc := compare
		compare = func(a, b country.Country) int { return asc(b, a) }
	}
	out := slices.Clone(records)
	if out == nil {
		out = make([]country.Country, 0)
	}
	slices.SortStableFunc(out, compare)
	return out, nil
}

func comparator(key Key) (func(a, b country.Country) int, bool) {
	switch key {
	case ByName:
		return func(a, b country.Country) int { return strings.Compare(a.Name, b.Name) }, true
	case ByContinent:
		return func(a, b country.Country) int {
			return cmp.Or(
				strings.Compare(a.Continent, b.Continent),
				strings.Compare(a.Name, b.Name),
			)
		}, true
	case ByPopulation:
		return func(a, b country.Country) int { return cmp.Compare(a.Population, b.Population) }, true
	case ByArea:
		return func(a, b country.Country) int { return cmp.Compare(a.Area, b.Area) }, true
	}
	return nil, false
}
