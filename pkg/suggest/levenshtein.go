package suggest

import "strings"

// Distance returns the unit-cost Levenshtein distance between a and b:
// the minimum number of single-character insertions, deletions and
// substitutions transforming a into b. Two rolling rows of length
// len(b)+1 replace the full DP table.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := prev[j] + 1
			if ins := curr[j-1] + 1; ins < d {
				d = ins
			}
			if sub := prev[j-1] + cost; sub < d {
				d = sub
			}
			curr[j] = d
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// MatchDictionary scores input against every dictionary word and
// returns up to k candidates within maxDistance, ranked by distance.
// Both sides are case-folded before scoring. The correction path has
// no popularity metadata for its candidates, so every offer carries
// popularity 0.
func MatchDictionary(input string, dictionary []string, maxDistance, k int) []Suggestion {
	folded := strings.ToLower(input)
	ranker := NewRanker(k)
	for _, word := range dictionary {
		d := Distance(folded, strings.ToLower(word))
		if d <= maxDistance {
			ranker.Offer(word, d, 0)
		}
	}
	return ranker.Finalize()
}
