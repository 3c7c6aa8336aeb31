package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

type recorder struct {
	words map[string]int
}

func (r *recorder) AddWord(word string, popularity int) {
	r.words[word] = popularity
}

func TestLoadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# seed list\napple:5\napp:3\n\nbad token:1\nnumeric:xx\nBanana\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	dst := &recorder{words: make(map[string]int)}
	n, err := LoadWordFile(path, 64, dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 loaded words, got %d", n)
	}
	if dst.words["apple"] != 5 || dst.words["app"] != 3 {
		t.Errorf("unexpected words: %v", dst.words)
	}
	if pop, ok := dst.words["Banana"]; !ok || pop != 0 {
		t.Errorf("expected Banana with default frequency 0, got %v", dst.words)
	}
}

func TestLoadWordFileMissing(t *testing.T) {
	dst := &recorder{words: make(map[string]int)}
	if _, err := LoadWordFile(filepath.Join(t.TempDir(), "nope.txt"), 64, dst); err == nil {
		t.Error("expected an error for a missing file")
	}
}
