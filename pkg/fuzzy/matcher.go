package fuzzy

import (
	"slices"
	"strings"
	"time"

	"github.com/bastiangx/countryq/pkg/country"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Options tunes a Matcher.
type Options struct {
	CandidateLimit int
	Threshold      int
	CacheSize      int           // 0 disables caching
	CacheTTL       time.Duration // 0 means entries never expire
}

// DefaultOptions returns the stock limit, threshold and a small cache.
func DefaultOptions() Options {
	return Options{
		CandidateLimit: CandidateLimit,
		Threshold:      MatchThreshold,
		CacheSize:      256,
		CacheTTL:       10 * time.Minute,
	}
}

// Matcher searches one store. The store is read-only for the session,
// so results are cached per normalized query.
type Matcher struct {
	records []country.Country
	opts    Options
	cache   *expirable.LRU[string, []Match]
}

// NewMatcher binds a matcher to the records of store.
func NewMatcher(store *country.Store, opts Options) *Matcher {
	m := &Matcher{
		records: store.All(),
		opts:    opts,
	}
	if opts.CacheSize > 0 {
		m.cache = expirable.NewLRU[string, []Match](opts.CacheSize, nil, opts.CacheTTL)
	}
	return m
}

// Search ranks the store against query.
// An empty result with a nil error means nothing cleared the threshold.
func (m *Matcher) Search(query string) ([]Match, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if m.cache != nil && key != "" {
		if cached, ok := m.cache.Get(key); ok {
			log.Debug("Fuzzy cache hit", "query", key, "matches", len(cached))
			return slices.Clone(cached), nil
		}
	}

	start := time.Now()
	matches, err := Rank(query, m.records, m.opts.CandidateLimit, m.opts.Threshold)
	if err != nil {
		return nil, err
	}
	log.Debugf("Ranked %d records for '%s' in [ %v ], kept %d", len(m.records), key, time.Since(start), len(matches))

	if m.cache != nil {
		m.cache.Add(key, slices.Clone(matches))
	}
	return matches, nil
}

// Stats reports cache occupancy.
func (m *Matcher) Stats() map[string]int {
	stats := map[string]int{
		"records":        len(m.records),
		"candidateLimit": m.opts.CandidateLimit,
		"threshold":      m.opts.Threshold,
	}
	if m.cache != nil {
		stats["cachedQueries"] = m.cache.Len()
	}
	return stats
}
