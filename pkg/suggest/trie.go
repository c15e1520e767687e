package suggest

import (
	"sort"
	"strings"

	"github.com/bastiangx/countryq/pkg/country"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Suggestion is a completed name and its position in the store.
type Suggestion struct {
	Name  string `msgpack:"name"`
	Index int    `msgpack:"index"`
}

// NameIndex maps lowercased names to store positions.
// Duplicate names share a key and keep every position.
type NameIndex struct {
	trie  *patricia.Trie
	names []string
	keys  int
}

// NewNameIndex indexes every record name in store.
func NewNameIndex(store *country.Store) *NameIndex {
	ix := &NameIndex{
		trie:  patricia.NewTrie(),
		names: make([]string, store.Len()),
	}
	for i := 0; i < store.Len(); i++ {
		name := store.At(i).Name
		ix.names[i] = name
		key := patricia.Prefix(strings.ToLower(name))
		if item := ix.trie.Get(key); item != nil {
			ix.trie.Set(key, append(item.([]int), i))
			continue
		}
		ix.trie.Insert(key, []int{i})
		ix.keys++
	}
	log.Debugf("Name index built: names=[%d], keys=[%d]", len(ix.names), ix.keys)
	return ix
}

// Complete returns names starting with prefix (case-insensitive), sorted by
// name then store position. limit <= 0 returns all of them.
func (ix *NameIndex) Complete(prefix string, limit int) []Suggestion {
	lowerPrefix := strings.ToLower(strings.TrimSpace(prefix))
	if lowerPrefix == "" {
		return []Suggestion{}
	}

	suggestions := make([]Suggestion, 0)
	err := ix.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		positions, ok := item.([]int)
		if !ok {
			log.Errorf("Unknown item type: %T for name %s", item, p)
			return nil
		}
		for _, i := range positions {
			suggestions = append(suggestions, Suggestion{Name: ix.names[i], Index: i})
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return []Suggestion{}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Name != suggestions[j].Name {
			return suggestions[i].Name < suggestions[j].Name
		}
		return suggestions[i].Index < suggestions[j].Index
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Stats reports index size.
func (ix *NameIndex) Stats() map[string]int {
	return map[string]int{
		"names": len(ix.names),
		"keys":  ix.keys,
	}
}
