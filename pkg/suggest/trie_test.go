package suggest

import (
	"strings"
	"testing"
)

func collect(t *Trie) map[string]int {
	out := make(map[string]int)
	for word, popularity := range t.All() {
		out[word] = popularity
	}
	return out
}

func TestInsertAndLookup(t *testing.T) {
	trie := NewTrie()
	trie.Insert("apple", 5)
	trie.Insert("app", 3)

	if _, ok := trie.Lookup("ap"); !ok {
		t.Fatal("expected prefix 'ap' to be present")
	}
	if _, ok := trie.Lookup("APP"); !ok {
		t.Fatal("lookup must be case-insensitive")
	}
	if _, ok := trie.Lookup("b"); ok {
		t.Fatal("expected prefix 'b' to be absent")
	}
	if trie.Len() != 2 {
		t.Errorf("expected 2 words, got %d", trie.Len())
	}
}

// The stored pair for a case-folded word must come from the earliest
// insertion that reached the maximum popularity.
func TestInsertPopularityMerge(t *testing.T) {
	cases := []struct {
		name    string
		inserts []struct {
			word string
			pop  int
		}
		wantWord string
		wantPop  int
	}{
		{
			name: "higher popularity replaces spelling",
			inserts: []struct {
				word string
				pop  int
			}{{"hello", 2}, {"Hello", 7}},
			wantWord: "Hello",
			wantPop:  7,
		},
		{
			name: "equal popularity keeps first arrival",
			inserts: []struct {
				word string
				pop  int
			}{{"Hello", 7}, {"HELLO", 7}},
			wantWord: "Hello",
			wantPop:  7,
		},
		{
			name: "lower popularity is a no-op",
			inserts: []struct {
				word string
				pop  int
			}{{"Hello", 7}, {"hello", 3}},
			wantWord: "Hello",
			wantPop:  7,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trie := NewTrie()
			for _, ins := range tc.inserts {
				trie.Insert(ins.word, ins.pop)
			}
			if trie.Len() != 1 {
				t.Fatalf("expected a single stored word, got %d", trie.Len())
			}
			got := collect(trie)
			pop, ok := got[tc.wantWord]
			if !ok {
				t.Fatalf("expected canonical spelling %q, got %v", tc.wantWord, got)
			}
			if pop != tc.wantPop {
				t.Errorf("expected popularity %d, got %d", tc.wantPop, pop)
			}
		})
	}
}

func TestFinalPopularityIsMax(t *testing.T) {
	trie := NewTrie()
	for _, p := range []int{3, 9, 1, 9, 4} {
		trie.Insert("word", p)
	}
	if got := collect(trie)["word"]; got != 9 {
		t.Errorf("expected max popularity 9, got %d", got)
	}
}

func TestWalkOrder(t *testing.T) {
	trie := NewTrie()
	for _, w := range []string{"banana", "apricot", "apple", "app"} {
		trie.Insert(w, 1)
	}

	var got []string
	for word := range trie.All() {
		got = append(got, word)
	}
	want := []string{"app", "apple", "apricot", "banana"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("expected depth-first letter order %v, got %v", want, got)
	}
}

func TestWalkIsRestartable(t *testing.T) {
	trie := NewTrie()
	trie.Insert("cat", 1)
	trie.Insert("car", 2)

	seq := trie.All()
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != 2 || second != 2 {
		t.Errorf("expected both passes to yield 2 words, got %d and %d", first, second)
	}
}

func TestWalkEarlyStop(t *testing.T) {
	trie := NewTrie()
	for _, w := range []string{"a", "b", "c"} {
		trie.Insert(w, 1)
	}
	n := 0
	for range trie.All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("expected early break after 1 word, got %d", n)
	}
}

func TestLookupSubtreeWalk(t *testing.T) {
	trie := NewTrie()
	trie.Insert("apple", 5)
	trie.Insert("apt", 1)
	trie.Insert("banana", 9)

	n, ok := trie.Lookup("ap")
	if !ok {
		t.Fatal("expected subtree for 'ap'")
	}
	got := make(map[string]int)
	for word, pop := range trie.Walk(n) {
		got[word] = pop
	}
	if len(got) != 2 || got["apple"] != 5 || got["apt"] != 1 {
		t.Errorf("unexpected subtree contents: %v", got)
	}
}
