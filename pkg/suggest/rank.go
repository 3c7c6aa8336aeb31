package suggest

import "sort"

// Suggestion is one ranked completion or correction candidate.
type Suggestion struct {
	Word       string
	Distance   int
	Popularity int
}

// better reports whether a ranks strictly ahead of b: lower distance
// first, then higher popularity.
func better(a, b Suggestion) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Popularity > b.Popularity
}

// Ranker keeps the best k suggestions seen across a stream of offers
// without sorting per offer. The prefix path and the correction path
// share the same ranker and ordering; prefix search always offers
// distance 0, so there the order degenerates to pure popularity.
type Ranker struct {
	entries []Suggestion
	bound   int
}

// NewRanker returns a ranker bounded to k entries. k must be positive.
func NewRanker(k int) *Ranker {
	return &Ranker{entries: make([]Suggestion, 0, k), bound: k}
}

// Offer considers one candidate. Below capacity it is kept
// unconditionally; at capacity it replaces the current worst entry
// (highest distance, then lowest popularity) only when strictly better
// under the ranking order. O(k) per offer.
func (r *Ranker) Offer(word string, distance, popularity int) {
	s := Suggestion{Word: word, Distance: distance, Popularity: popularity}
	if len(r.entries) < r.bound {
		r.entries = append(r.entries, s)
		return
	}
	worst := 0
	for i := 1; i < len(r.entries); i++ {
		if better(r.entries[worst], r.entries[i]) {
			worst = i
		}
	}
	if better(s, r.entries[worst]) {
		r.entries[worst] = s
	}
}

// Finalize returns the retained entries in presentation order, distance
// ascending then popularity descending, truncated to the bound. The
// ranker itself is left untouched.
func (r *Ranker) Finalize() []Suggestion {
	out := make([]Suggestion, len(r.entries))
	copy(out, r.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return better(out[i], out[j])
	})
	if len(out) > r.bound {
		out = out[:r.bound]
	}
	return out
}
