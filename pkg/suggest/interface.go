// Package suggest completes country names from a typed prefix using a patricia trie.
package suggest

// ICompleter defines the interface for name completion
type ICompleter interface {
	// Complete returns names starting with prefix, at most limit of them
	Complete(prefix string, limit int) []Suggestion

	// Stats returns statistics about the index
	Stats() map[string]int
}
