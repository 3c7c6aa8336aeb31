// Package cli implements the interactive loop around the engine: word
// entry, prefix search with correction fallback, and vocabulary
// browsing.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/lexiserve/internal/logger"
	"github.com/bastiangx/lexiserve/internal/utils"
	"github.com/bastiangx/lexiserve/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler drives an interactive session over stdin.
type InputHandler struct {
	engine     *suggest.Engine
	maxWordLen int
	prompt     string
	out        *log.Logger
}

// NewInputHandler returns a handler bound to the engine.
func NewInputHandler(engine *suggest.Engine, maxWordLen int, prompt string) *InputHandler {
	return &InputHandler{
		engine:     engine,
		maxWordLen: maxWordLen,
		prompt:     prompt,
		out:        logger.Default(""),
	}
}

// Start runs the loop until EOF or quit.
func (h *InputHandler) Start() error {
	h.out.Print("LexiServe interactive mode")
	h.out.Print("commands: add <word[:freq]>, find <prefix>, list, quit")
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(h.prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !h.handleLine(line) {
			return nil
		}
	}
}

// handleLine dispatches one command; it returns false to end the loop.
func (h *InputHandler) handleLine(line string) bool {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "add":
		h.handleAdd(rest)
	case "find":
		h.handleFind(rest)
	case "list":
		h.handleList()
	case "quit", "exit":
		h.out.Print("Exiting...")
		return false
	default:
		h.out.Warnf("unknown command %q", cmd)
	}
	return true
}

func (h *InputHandler) handleAdd(token string) {
	word, popularity, err := utils.ParseToken(token, h.maxWordLen)
	if err != nil {
		h.out.Errorf("%v", err)
		return
	}
	h.engine.AddWord(word, popularity)
	h.out.Printf("added %q (freq: %s)", word, utils.FormatWithCommas(popularity))
}

// handleFind runs the prefix query; when nothing starts with the
// prefix it falls through to "did you mean" correction, mirroring the
// engine's two-step contract.
func (h *InputHandler) handleFind(prefix string) {
	if !utils.IsValidWord(prefix, h.maxWordLen) {
		h.out.Errorf("prefix must be 1..%d letters", h.maxWordLen)
		return
	}

	start := time.Now()
	suggestions, err := h.engine.Complete(prefix)
	if errors.Is(err, suggest.ErrNoPrefix) {
		h.out.Warnf("no words with prefix %q, trying spell correction...", prefix)
		corrections := h.engine.Correct(prefix)
		if len(corrections) == 0 {
			h.out.Print("no similar words found")
			return
		}
		h.out.Print("did you mean:")
		for i, s := range corrections {
			h.out.Printf("%2d. %-24s (distance: %d)", i+1, s.Word, s.Distance)
		}
		return
	}
	log.Debugf("lookup took %v", time.Since(start))

	h.out.Printf("suggestions for %q:", prefix)
	for i, s := range suggestions {
		h.out.Printf("%2d. %-24s (freq: %8s)", i+1, s.Word, utils.FormatWithCommas(s.Popularity))
	}
}

func (h *InputHandler) handleList() {
	entries := h.engine.Words()
	if len(entries) == 0 {
		h.out.Print("the store is empty")
		return
	}
	h.out.Printf("all %d words:", len(entries))
	for i, e := range entries {
		h.out.Printf("%3d. %-24s (freq: %8s)", i+1, e.Word, utils.FormatWithCommas(e.Popularity))
	}
}
