// Package dictionary loads seed vocabularies from word:frequency text
// files. Nothing is ever written back; the store lives in memory only.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/lexiserve/internal/utils"
	"github.com/charmbracelet/log"
)

// Adder receives parsed (word, popularity) pairs. *suggest.Engine
// satisfies it.
type Adder interface {
	AddWord(word string, popularity int)
}

// LoadWordFile reads one word[:frequency] token per line, skipping
// blank lines, '#' comments and invalid tokens, and feeds the rest to
// dst. It returns how many words were loaded.
func LoadWordFile(path string, maxWordLen int, dst Adder) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open word file: %w", err)
	}
	defer file.Close()

	loaded, skipped := 0, 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, popularity, err := utils.ParseToken(line, maxWordLen)
		if err != nil {
			skipped++
			log.Debugf("skipping %q: %v", line, err)
			continue
		}
		dst.AddWord(word, popularity)
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("read word file: %w", err)
	}
	if skipped > 0 {
		log.Warnf("skipped %d invalid lines in %s", skipped, path)
	}
	log.Debugf("loaded %d words from %s", loaded, path)
	return loaded, nil
}
