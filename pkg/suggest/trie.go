package suggest

import (
	"iter"
	"strings"
)

// node is one letter position in the indexed vocabulary. A node is
// terminal when some inserted word ends exactly there; only then do its
// canonical spelling and popularity carry meaning.
type node struct {
	children   map[byte]*node
	terminal   bool
	word       string
	popularity int
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie indexes words by their case-folded spelling while keeping the
// original-case form for display. It owns the whole node graph and is
// mutated only through Insert.
type Trie struct {
	root  *node
	words int
}

func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Len returns the number of distinct case-folded words stored.
func (t *Trie) Len() int { return t.words }

// Insert stores word under its case-folded path, creating intermediate
// nodes lazily. A word already present keeps its stored spelling and
// popularity unless the incoming popularity is strictly higher, so the
// stored pair always comes from the earliest insertion that reached the
// maximum popularity seen so far.
//
// The caller guarantees word is non-empty and alphabetic; the trie does
// not re-validate.
func (t *Trie) Insert(word string, popularity int) {
	cur := t.root
	folded := strings.ToLower(word)
	for i := 0; i < len(folded); i++ {
		c := folded[i]
		next, ok := cur.children[c]
		if !ok {
			next = newNode()
			cur.children[c] = next
		}
		cur = next
	}
	if !cur.terminal {
		cur.terminal = true
		cur.word = word
		cur.popularity = popularity
		t.words++
		return
	}
	if popularity > cur.popularity {
		cur.word = word
		cur.popularity = popularity
	}
}

// Lookup walks the tree along the case-folded prefix one letter at a
// time. ok is false the moment a required child is absent, meaning no
// stored word starts with the prefix. The node reached may itself be
// non-terminal when words merely extend the prefix.
func (t *Trie) Lookup(prefix string) (*node, bool) {
	cur := t.root
	folded := strings.ToLower(prefix)
	for i := 0; i < len(folded); i++ {
		next, ok := cur.children[folded[i]]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Walk yields (canonical word, popularity) for every terminal node in
// the subtree rooted at n, depth-first with children visited in
// 'a'..'z' order. The sequence is lazy and restartable.
func (t *Trie) Walk(n *node) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		walk(n, yield)
	}
}

// All yields every stored word in the same depth-first letter order.
func (t *Trie) All() iter.Seq2[string, int] {
	return t.Walk(t.root)
}

func walk(n *node, yield func(string, int) bool) bool {
	if n == nil {
		return true
	}
	if n.terminal {
		if !yield(n.word, n.popularity) {
			return false
		}
	}
	for c := byte('a'); c <= 'z'; c++ {
		if child, ok := n.children[c]; ok {
			if !walk(child, yield) {
				return false
			}
		}
	}
	return true
}
