package suggest

import (
	"errors"
	"strings"
	"testing"
)

func newTestEngine() *Engine {
	return NewEngine(Options{})
}

func TestCompleteRankedByPopularity(t *testing.T) {
	e := newTestEngine()
	e.AddWord("apple", 5)
	e.AddWord("app", 3)
	e.AddWord("apt", 1)

	got, err := e.Complete("ap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []struct {
		word string
		pop  int
	}{{"apple", 5}, {"app", 3}, {"apt", 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %d suggestions, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Word != w.word || got[i].Popularity != w.pop {
			t.Errorf("position %d: expected %s(%d), got %s(%d)",
				i, w.word, w.pop, got[i].Word, got[i].Popularity)
		}
	}
}

func TestCompleteRoundTripKeepsCase(t *testing.T) {
	e := newTestEngine()
	e.AddWord("Hello", 5)

	got, err := e.Complete("hel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Word != "Hello" || got[0].Popularity != 5 {
		t.Errorf("expected Hello(5), got %v", got)
	}
}

func TestCompleteProperties(t *testing.T) {
	e := newTestEngine()
	words := []string{
		"apple", "app", "apt", "apricot", "apex", "april", "aptitude",
		"apply", "appliance", "approve", "appoint", "appraise", "ape",
	}
	for i, w := range words {
		e.AddWord(w, i*7%13)
	}

	got, err := e.Complete("ap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) > DefaultLimit {
		t.Errorf("never more than %d results, got %d", DefaultLimit, len(got))
	}
	for i, s := range got {
		if !strings.HasPrefix(strings.ToLower(s.Word), "ap") {
			t.Errorf("result %q does not start with the prefix", s.Word)
		}
		if i > 0 && got[i-1].Popularity < s.Popularity {
			t.Errorf("popularity not non-increasing at %d: %v", i, got)
		}
	}
}

func TestCompleteNoPrefix(t *testing.T) {
	e := newTestEngine()
	if _, err := e.Complete("x"); !errors.Is(err, ErrNoPrefix) {
		t.Errorf("expected ErrNoPrefix on empty store, got %v", err)
	}

	e.AddWord("apple", 1)
	if _, err := e.Complete("b"); !errors.Is(err, ErrNoPrefix) {
		t.Errorf("expected ErrNoPrefix for absent prefix, got %v", err)
	}
}

func TestCorrectScenario(t *testing.T) {
	e := newTestEngine()
	e.AddWord("apple", 5)
	e.AddWord("app", 3)
	e.AddWord("apt", 1)

	got := e.Correct("aple")
	if len(got) != 2 {
		t.Fatalf("expected [apple app], got %v", got)
	}
	if got[0].Word != "apple" || got[0].Distance != 1 {
		t.Errorf("expected apple(d=1) first, got %+v", got[0])
	}
	if got[1].Word != "app" || got[1].Distance != 2 {
		t.Errorf("expected app(d=2) second, got %+v", got[1])
	}
	for i, s := range got {
		if s.Popularity != 0 {
			t.Errorf("correction results carry popularity 0, got %+v", s)
		}
		if s.Distance > DefaultMaxDistance {
			t.Errorf("result %d beyond max distance: %+v", i, s)
		}
		if i > 0 && got[i-1].Distance > s.Distance {
			t.Errorf("distance not non-decreasing: %v", got)
		}
	}
}

func TestCorrectEmptyStore(t *testing.T) {
	e := newTestEngine()
	if got := e.Correct("x"); len(got) != 0 {
		t.Errorf("expected empty result on empty store, got %v", got)
	}
}

// The snapshot behind Correct must pick up words added after a
// previous correction ran.
func TestCorrectSeesLaterInserts(t *testing.T) {
	e := newTestEngine()
	e.AddWord("apple", 5)
	if got := e.Correct("grap"); len(got) != 0 {
		t.Fatalf("expected no matches yet, got %v", got)
	}
	e.AddWord("grape", 2)
	got := e.Correct("grap")
	if len(got) != 1 || got[0].Word != "grape" {
		t.Errorf("expected grape after insert, got %v", got)
	}
}

func TestWordsSortedByteOrder(t *testing.T) {
	e := newTestEngine()
	e.AddWord("Banana", 1)
	e.AddWord("apple", 1)
	e.AddWord("Cherry", 1)

	got := e.Words()
	want := []string{"Banana", "Cherry", "apple"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Word != w {
			t.Errorf("position %d: expected %q, got %q", i, w, got[i].Word)
		}
	}
}

func TestCacheInvalidation(t *testing.T) {
	e := newTestEngine()
	e.AddWord("apple", 5)
	e.AddWord("app", 3)

	first, err := e.Complete("ap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unrelated insert must not change the cached answer.
	e.AddWord("zebra", 9)
	second, err := e.Complete("ap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != len(first) {
		t.Errorf("unrelated insert changed results: %v vs %v", first, second)
	}

	// A covering insert must invalidate the cached prefix.
	e.AddWord("apex", 7)
	third, err := e.Complete("ap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, s := range third {
		if s.Word == "apex" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected apex in results after insert, got %v", third)
	}
}

func TestCacheHitsCounted(t *testing.T) {
	e := newTestEngine()
	e.AddWord("apple", 5)

	if _, err := e.Complete("ap"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.Complete("ap"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats := e.Stats()
	if stats["cacheHits"] != 1 {
		t.Errorf("expected 1 cache hit, got %d", stats["cacheHits"])
	}
	if stats["totalWords"] != 1 {
		t.Errorf("expected 1 stored word, got %d", stats["totalWords"])
	}
}

func BenchmarkComplete(b *testing.B) {
	e := newTestEngine()
	for _, w := range []string{"apple", "apricot", "apt", "append", "apply", "banana"} {
		e.AddWord(w, len(w))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Complete("ap")
	}
}
