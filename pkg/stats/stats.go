// Package stats computes summary metrics over a record sequence.
package stats

import (
	"sort"

	"github.com/bastiangx/countryq/pkg/country"
)

// ContinentCount is one row of the per-continent breakdown.
type ContinentCount struct {
	Continent string `msgpack:"continent"`
	Count     int    `msgpack:"count"`
}

// Summary holds the aggregates for a non-empty sequence.
type Summary struct {
	Count           int              `msgpack:"count"`
	TotalPopulation int64            `msgpack:"total_population"`
	MeanPopulation  float64          `msgpack:"mean_population"`
	MostPopulous    country.Country  `msgpack:"most_populous"`
	LeastPopulous   country.Country  `msgpack:"least_populous"`
	ByContinent     []ContinentCount `msgpack:"by_continent"`
}

// Summarize computes extrema (first occurrence wins ties), mean population
// and continent counts ordered by label. An empty sequence reports ErrNoData.
func Summarize(records []country.Country) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, country.NewError(country.NoData, "", "", "no records to compute statistics over")
	}

	sum := Summary{
		Count:         len(records),
		MostPopulous:  records[0],
		LeastPopulous: records[0],
	}
	counts := make(map[string]int)
	for _, c := range records {
		sum.TotalPopulation += c.Population
		if c.Population > sum.MostPopulous.Population {
			sum.MostPopulous = c
		}
		if c.Population < sum.LeastPopulous.Population {
			sum.LeastPopulous = c
		}
		counts[c.Continent]++
	}
	sum.MeanPopulation = float64(sum.TotalPopulation) / float64(sum.Count)

	sum.ByContinent = make([]ContinentCount, 0, len(counts))
	for label, n := range counts {
		sum.ByContinent = append(sum.ByContinent, ContinentCount{Continent: label, Count: n})
	}
	sort.Slice(sum.ByContinent, func(i, j int) bool {
		return sum.ByContinent[i].Continent < sum.ByContinent[j].Continent
	})
	return sum, nil
}
