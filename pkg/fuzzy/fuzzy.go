/*
Package fuzzy ranks country records against a free-text query.

Scoring uses a partial ratio: the shorter of query and name is slid across
the longer one and every same-length window is compared. The matched
character count of a window is its longest common subsequence with the
shorter string, and the score is that count as a percentage of the shorter
string's length. A short query therefore scores 100 against any name that
contains it, however long the name is.

Ranking keeps the best CandidateLimit records first and only then drops
those under MatchThreshold, so a qualifying name ranked below the cap is
not returned.
*/
package fuzzy

import (
	"cmp"
	"slices"
	"strings"

	"github.com/adrg/strutil/metrics"
	"github.com/bastiangx/countryq/pkg/country"
)

const (
	// CandidateLimit caps how many top-scoring records survive before the threshold applies.
	CandidateLimit = 10
	// MatchThreshold is the minimum partial ratio a candidate needs to be kept.
	MatchThreshold = 80
)

// Match is a record that cleared the threshold.
type Match struct {
	Country country.Country
	Index   int // position in the searched sequence
	Score   int // 0-100
}

// indel is Levenshtein with substitution priced as delete+insert,
// which makes Distance = len(a) + len(b) - 2*LCS(a, b).
var indel = &metrics.Levenshtein{
	CaseSensitive: true,
	InsertCost:    1,
	DeleteCost:    1,
	ReplaceCost:   2,
}

// PartialRatio scores the best alignment of the shorter string inside the longer one.
// Comparison is case-insensitive. Either side empty scores 0.
func PartialRatio(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	short, long := ra, rb
	if len(short) > len(long) {
		short, long = long, short
	}
	n := len(short)
	shortStr := string(short)

	best := 0
	for start := 0; start+n <= len(long); start++ {
		window := string(long[start : start+n])
		if window == shortStr {
			return 100
		}
		matched := (2*n - indel.Distance(shortStr, window)) / 2
		if matched > best {
			best = matched
		}
	}
	// round half up
	return (200*best + n) / (2 * n)
}

// Rank scores every record, keeps the top limit by score (ties by input order),
// then drops candidates scoring under threshold.
// A blank query is rejected before anything is scored.
func Rank(query string, records []country.Country, limit, threshold int) ([]Match, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, country.NewError(country.EmptyInput, "query", query, "search query must not be empty")
	}

	scored := make([]Match, len(records))
	for i, c := range records {
		scored[i] = Match{Country: c, Index: i, Score: PartialRatio(q, c.Name)}
	}
	slices.SortStableFunc(scored, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	matches := make([]Match, 0, len(scored))
	for _, m := range scored {
		if m.Score >= threshold {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// Countries strips scores, keeping ranked order.
func Countries(matches []Match) []country.Country {
	out := make([]country.Country, len(matches))
	for i, m := range matches {
		out[i] = m.Country
	}
	return out
}
