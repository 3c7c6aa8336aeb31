package suggest

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// resultCache memoizes finalized suggestion lists per case-folded
// prefix. Keys live in a patricia trie so that inserting a word can
// invalidate exactly the cached prefixes of that word via
// VisitPrefixes, rather than flushing everything.
type resultCache struct {
	trie    *patricia.Trie
	maxKeys int
	size    int
	hits    int
	misses  int
}

func newResultCache(maxKeys int) *resultCache {
	return &resultCache{trie: patricia.NewTrie(), maxKeys: maxKeys}
}

func (rc *resultCache) get(prefix string) ([]Suggestion, bool) {
	item := rc.trie.Get(patricia.Prefix(prefix))
	if item == nil {
		rc.misses++
		return nil, false
	}
	rc.hits++
	return item.([]Suggestion), true
}

// put stores a finalized result. At capacity the whole cache is reset;
// entries repopulate on demand.
func (rc *resultCache) put(prefix string, suggestions []Suggestion) {
	if rc.size >= rc.maxKeys {
		rc.trie = patricia.NewTrie()
		rc.size = 0
		log.Debug("result cache reset at capacity")
	}
	if rc.trie.Insert(patricia.Prefix(prefix), suggestions) {
		rc.size++
	}
}

// invalidate drops every cached prefix of the case-folded word: those
// are exactly the keys whose result set the insert may have changed.
func (rc *resultCache) invalidate(word string) {
	var stale []patricia.Prefix
	_ = rc.trie.VisitPrefixes(patricia.Prefix(word), func(p patricia.Prefix, _ patricia.Item) error {
		cp := make(patricia.Prefix, len(p))
		copy(cp, p)
		stale = append(stale, cp)
		return nil
	})
	for _, p := range stale {
		if rc.trie.Delete(p) {
			rc.size--
		}
	}
	if len(stale) > 0 {
		log.Debugf("invalidated %d cached prefixes of %q", len(stale), word)
	}
}

func (rc *resultCache) stats() map[string]int {
	return map[string]int{
		"cachedPrefixes": rc.size,
		"cacheHits":      rc.hits,
		"cacheMisses":    rc.misses,
	}
}
