// Package suggest is the core engine: a letter-tree word store with
// popularity ranking for prefix queries and a Levenshtein "did you
// mean" fallback when a prefix matches nothing.
package suggest

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrNoPrefix reports that no stored word starts with the queried
// prefix. It is a normal outcome, not a failure; callers typically fall
// back to Correct.
var ErrNoPrefix = errors.New("suggest: no words with prefix")

const (
	// DefaultLimit caps how many suggestions a query returns.
	DefaultLimit = 10
	// DefaultMaxDistance bounds the correction fallback.
	DefaultMaxDistance = 2
	// DefaultCacheKeys bounds the prefix result cache.
	DefaultCacheKeys = 512
)

// Options tune an Engine. Zero fields fall back to the defaults above.
type Options struct {
	Limit       int
	MaxDistance int
	CacheKeys   int
}

// Entry is one (canonical word, popularity) pair from the store.
type Entry struct {
	Word       string
	Popularity int
}

// Engine composes the trie store, the bounded ranker and the distance
// matcher behind the API the CLI and IPC layers consume. It is a
// single-owner structure: callers serialize access themselves.
type Engine struct {
	trie        *Trie
	cache       *resultCache
	dictionary  []string
	stale       bool
	limit       int
	maxDistance int
}

// NewEngine creates an empty engine.
func NewEngine(opts Options) *Engine {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.MaxDistance <= 0 {
		opts.MaxDistance = DefaultMaxDistance
	}
	if opts.CacheKeys <= 0 {
		opts.CacheKeys = DefaultCacheKeys
	}
	return &Engine{
		trie:        NewTrie(),
		cache:       newResultCache(opts.CacheKeys),
		stale:       true,
		limit:       opts.Limit,
		maxDistance: opts.MaxDistance,
	}
}

// AddWord stores word with its popularity, keeping the highest
// popularity seen for the same case-folded spelling. The word snapshot
// used by Correct goes stale and cached results covering the word are
// dropped. The caller guarantees word is non-empty and alphabetic.
func (e *Engine) AddWord(word string, popularity int) {
	e.trie.Insert(word, popularity)
	e.stale = true
	e.cache.invalidate(strings.ToLower(word))
}

// Complete returns up to the engine's limit of stored words starting
// with prefix (case-insensitively), ranked by popularity descending.
// ErrNoPrefix signals that nothing matches and correction may help.
func (e *Engine) Complete(prefix string) ([]Suggestion, error) {
	folded := strings.ToLower(prefix)
	if cached, ok := e.cache.get(folded); ok {
		return cached, nil
	}
	n, ok := e.trie.Lookup(folded)
	if !ok {
		return nil, ErrNoPrefix
	}
	ranker := NewRanker(e.limit)
	for word, popularity := range e.trie.Walk(n) {
		ranker.Offer(word, 0, popularity)
	}
	out := ranker.Finalize()
	e.cache.put(folded, out)
	return out, nil
}

// Correct returns up to the engine's limit of "did you mean"
// candidates within the edit-distance bound, ranked by distance. All
// results carry popularity 0. An empty slice means nothing was close
// enough.
func (e *Engine) Correct(input string) []Suggestion {
	return MatchDictionary(input, e.snapshot(), e.maxDistance, e.limit)
}

// Words lists every stored (canonical word, popularity) pair sorted
// ascending by canonical spelling in byte order. This is the one query
// whose output order is contractually fixed.
func (e *Engine) Words() []Entry {
	entries := make([]Entry, 0, e.trie.Len())
	for word, popularity := range e.trie.All() {
		entries = append(entries, Entry{Word: word, Popularity: popularity})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// Len returns the number of distinct words stored.
func (e *Engine) Len() int { return e.trie.Len() }

// Stats reports store and cache counters.
func (e *Engine) Stats() map[string]int {
	stats := e.cache.stats()
	stats["totalWords"] = e.trie.Len()
	return stats
}

// snapshot rebuilds the flat canonical-word dictionary consumed by the
// correction path. It stays valid until the next AddWord.
func (e *Engine) snapshot() []string {
	if e.stale {
		e.dictionary = e.dictionary[:0]
		for word := range e.trie.All() {
			e.dictionary = append(e.dictionary, word)
		}
		e.stale = false
		log.Debugf("rebuilt word snapshot: %d entries", len(e.dictionary))
	}
	return e.dictionary
}
