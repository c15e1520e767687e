package filter

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/bastiangx/countryq/pkg/country"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []country.Country {
	return []country.Country{
		{Name: "Alemania", Population: 83240525, Area: 357022, Continent: "Europa"},
		{Name: "Brasil", Population: 212559409, Area: 8515767, Continent: "América"},
		{Name: "Malta", Population: 525285, Area: 316, Continent: "Europa"},
		{Name: "Japón", Population: 125836021, Area: 377930, Continent: "Asia"},
		{Name: "Kenia", Population: 53771300, Area: 580367, Continent: "África"},
		{Name: "Uruguay", Population: 3473727, Area: 181034, Continent: "América"},
		{Name: "Islandia", Population: 366425, Area: 103000, Continent: "europa"},
	}
}

func randomRecords(r *rand.Rand, n int) []country.Country {
	continents := []string{"Europa", "Asia", "América", "África", "Oceanía"}
	out := make([]country.Country, n)
	for i := range out {
		out[i] = country.Country{
			Name:       fmt.Sprintf("C%03d", i),
			Population: r.Int63n(1000),
			Area:       r.Int63n(1000) + 1,
			Continent:  continents[r.Intn(len(continents))],
		}
	}
	return out
}

func TestByContinentIgnoresCase(t *testing.T) {
	records := sample()
	lower, err := ByContinent(records, "europa")
	require.NoError(t, err)
	upper, err := ByContinent(records, "EUROPA")
	require.NoError(t, err)
	mixed, err := ByContinent(records, "  Europa ")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
	require.Len(t, lower, 3)
	assert.Equal(t, "Alemania", lower[0].Name)
	assert.Equal(t, "Malta", lower[1].Name)
	assert.Equal(t, "Islandia", lower[2].Name)
}

func TestByContinentErrors(t *testing.T) {
	_, err := ByContinent(sample(), "   ")
	require.ErrorIs(t, err, country.ErrEmptyInput)

	out, err := ByContinent(sample(), "Antártida")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestContinents(t *testing.T) {
	assert.Equal(t, []string{"América", "Asia", "Europa", "europa", "África"}, Continents(sample()))
	assert.Empty(t, Continents(nil))
}

func TestSuggestContinent(t *testing.T) {
	testCases := []struct {
		term        string
		expected    string
		found       bool
		description string
	}{
		{"europ", "Europa", true, "Prefix of a label"},
		{"AMRCA", "América", true, "Subsequence, any case"},
		{"xyz", "", false, "No label shares the letters"},
		{" ", "", false, "Blank term"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, ok := SuggestContinent(sample(), tc.term)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.True(t, country.Country{Continent: got}.SameContinent(tc.expected))
			}
		})
	}
}

// Every kept record is in range, every in-range record is kept, order holds.
func TestByPopulationSoundAndComplete(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		records := randomRecords(r, 40)
		lo := r.Int63n(1000)
		hi := lo + r.Int63n(1000-lo)

		out, err := ByPopulation(records, lo, hi)
		require.NoError(t, err)

		var expected []country.Country
		for _, c := range records {
			if lo <= c.Population && c.Population <= hi {
				expected = append(expected, c)
			}
		}
		if expected == nil {
			assert.Empty(t, out)
			continue
		}
		assert.Equal(t, expected, out)
	}
}

func TestRangeOrderRejected(t *testing.T) {
	records := sample()

	out, err := ByPopulation(records, 10, 5)
	require.ErrorIs(t, err, country.ErrRangeOrder)
	assert.Nil(t, out)

	out, err = ByArea(records, 1000, 999)
	require.ErrorIs(t, err, country.ErrRangeOrder)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "area")
}

func TestByAreaInclusiveBounds(t *testing.T) {
	out, err := ByArea(sample(), 316, 181034)
	require.NoError(t, err)
	names := make([]string, len(out))
	for i, c := range out {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Malta", "Uruguay", "Islandia"}, names)
}

func TestFiltersDoNotAliasInput(t *testing.T) {
	records := sample()
	out, err := ByPopulation(records, 0, 1<<62)
	require.NoError(t, err)
	out[0].Name = "changed"
	assert.Equal(t, "Alemania", records[0].Name)
}
