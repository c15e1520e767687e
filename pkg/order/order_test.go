package order

import (
	"slices"
	"testing"

	"github.com/bastiangx/countryq/pkg/country"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []country.Country {
	return []country.Country{
		{Name: "Chile", Population: 19116209, Area: 756102, Continent: "América"},
		{Name: "Austria", Population: 9006398, Area: 83871, Continent: "Europa"},
		{Name: "Bután", Population: 771608, Area: 38394, Continent: "Asia"},
		{Name: "Zambia", Population: 18383955, Area: 752612, Continent: "África"},
		{Name: "Argentina", Population: 45376763, Area: 2780400, Continent: "América"},
	}
}

func names(records []country.Country) []string {
	out := make([]string, len(records))
	for i, c := range records {
		out[i] = c.Name
	}
	return out
}

func TestSortByEachKey(t *testing.T) {
	testCases := []struct {
		key, dir    string
		expected    []string
		description string
	}{
		{"1", "A", []string{"Argentina", "Austria", "Bután", "Chile", "Zambia"}, "Name ascending"},
		{"name", "d", []string{"Zambia", "Chile", "Bután", "Austria", "Argentina"}, "Name descending"},
		{"2", "A", []string{"Argentina", "Chile", "Bután", "Austria", "Zambia"}, "Continent then name"},
		{"continent", "D", []string{"Zambia", "Austria", "Bután", "Chile", "Argentina"}, "Composite key descending together"},
		{"3", "a", []string{"Bután", "Austria", "Zambia", "Chile", "Argentina"}, "Population ascending"},
		{"population", "desc", []string{"Argentina", "Chile", "Zambia", "Austria", "Bután"}, "Population descending"},
		{" 4 ", "A", []string{"Bután", "Austria", "Zambia", "Chile", "Argentina"}, "Area ascending"},
		{"AREA", "D", []string{"Argentina", "Chile", "Zambia", "Austria", "Bután"}, "Area descending"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			res, err := Sort(sample(), tc.key, tc.dir)
			require.NoError(t, err)
			assert.Empty(t, res.Warning)
			assert.Equal(t, tc.expected, names(res.Records))
		})
	}
}

func TestSortInvalidKeyAborts(t *testing.T) {
	for _, key := range []string{"", "5", "0", "nombre"} {
		res, err := Sort(sample(), key, "A")
		require.ErrorIs(t, err, country.ErrInvalidKey)
		assert.Nil(t, res.Records)
	}
}

func TestSortInvalidDirectionWarns(t *testing.T) {
	res, err := Sort(sample(), "1", "sideways")
	require.NoError(t, err)
	assert.Equal(t, Ascending, res.Direction)
	assert.Contains(t, res.Warning, "sideways")
	assert.Equal(t, "Argentina", res.Records[0].Name)
}

func TestNameSortReversesWithUniqueNames(t *testing.T) {
	asc, err := By(sample(), ByName, Ascending)
	require.NoError(t, err)
	desc, err := By(sample(), ByName, Descending)
	require.NoError(t, err)
	reversed := slices.Clone(desc)
	slices.Reverse(reversed)
	assert.Equal(t, asc, reversed)
}

func TestSortIsStableInBothDirections(t *testing.T) {
	records := []country.Country{
		{Name: "Congo", Population: 5518092, Area: 342000, Continent: "África"},
		{Name: "Benín", Population: 12123198, Area: 112622, Continent: "África"},
		{Name: "Congo", Population: 89561404, Area: 2344858, Continent: "África"},
		{Name: "Angola", Population: 32866268, Area: 1246700, Continent: "África"},
		{Name: "Congo", Population: 1, Area: 1, Continent: "África"},
	}

	for _, dir := range []Direction{Ascending, Descending} {
		t.Run(dir.String(), func(t *testing.T) {
			out, err := By(records, ByName, dir)
			require.NoError(t, err)
			var congos []int64
			for _, c := range out {
				if c.Name == "Congo" {
					congos = append(congos, c.Population)
				}
			}
			assert.Equal(t, []int64{5518092, 89561404, 1}, congos)
		})
	}

	byContinent, err := By(records, ByContinent, Descending)
	require.NoError(t, err)
	assert.Equal(t, []string{"Congo", "Congo", "Congo", "Benín", "Angola"}, names(byContinent))
	assert.Equal(t, int64(5518092), byContinent[0].Population)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := sample()
	before := slices.Clone(records)
	_, err := By(records, ByPopulation, Descending)
	require.NoError(t, err)
	assert.Equal(t, before, records)
	empty, err := By(nil, ByArea, Ascending)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestByRejectsUnknownKey(t *testing.T) {
	for _, key := range []Key{0, ByArea + 1, -3} {
		t.Run(key.String(), func(t *testing.T) {
			out, err := By(sample(), key, Ascending)
			assert.ErrorIs(t, err, country.ErrInvalidKey)
			assert.Nil(t, out)
		})
	}
}
