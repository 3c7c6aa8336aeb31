package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/lexiserve/internal/utils"
	"github.com/bastiangx/lexiserve/pkg/config"
	"github.com/bastiangx/lexiserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server drives the IPC loop: one msgpack Request per message on the
// reader, one response object per request on the writer.
type Server struct {
	engine *suggest.Engine
	cfg    *config.Config
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// NewServer wires an engine to stdin/stdout.
func NewServer(engine *suggest.Engine, cfg *config.Config) *Server {
	return NewServerIO(engine, cfg, os.Stdin, os.Stdout)
}

// NewServerIO is NewServer with explicit streams, used by tests.
func NewServerIO(engine *suggest.Engine, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine: engine,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
	}
}

// Start signals readiness and processes requests until the stream ends.
func (s *Server) Start() error {
	log.Debug("Starting IPC loop")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req Request) {
	switch req.Cmd {
	case "complete":
		s.handleComplete(req)
	case "correct":
		s.handleCorrect(req)
	case "add":
		s.handleAdd(req)
	case "list":
		s.handleList(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown command %q", req.Cmd), 400)
	}
}

// handleComplete runs the prefix query and, when nothing matches, falls
// back to edit-distance correction in the same response.
func (s *Server) handleComplete(req Request) {
	if !s.checkPrefix(req.ID, req.Prefix) {
		return
	}
	start := time.Now()
	corrected := false
	suggestions, err := s.engine.Complete(req.Prefix)
	if errors.Is(err, suggest.ErrNoPrefix) {
		suggestions = s.engine.Correct(req.Prefix)
		corrected = true
	}
	elapsed := time.Since(start)

	suggestions = clampLimit(suggestions, req.Limit, s.cfg.Server.MaxLimit)
	s.send(SuggestResponse{
		ID:          req.ID,
		Suggestions: toWire(suggestions),
		Count:       len(suggestions),
		Corrected:   corrected,
		TookMicros:  elapsed.Microseconds(),
	})
}

func (s *Server) handleCorrect(req Request) {
	if !s.checkPrefix(req.ID, req.Prefix) {
		return
	}
	start := time.Now()
	suggestions := s.engine.Correct(req.Prefix)
	elapsed := time.Since(start)

	suggestions = clampLimit(suggestions, req.Limit, s.cfg.Server.MaxLimit)
	s.send(SuggestResponse{
		ID:          req.ID,
		Suggestions: toWire(suggestions),
		Count:       len(suggestions),
		Corrected:   true,
		TookMicros:  elapsed.Microseconds(),
	})
}

func (s *Server) handleAdd(req Request) {
	if !utils.IsValidWord(req.Word, s.cfg.Suggest.MaxWordLen) {
		s.sendError(req.ID, fmt.Sprintf("word must be 1..%d letters", s.cfg.Suggest.MaxWordLen), 400)
		return
	}
	if req.Popularity < 0 {
		s.sendError(req.ID, "popularity must be >= 0", 400)
		return
	}
	s.engine.AddWord(req.Word, req.Popularity)
	s.send(StatusResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) handleList(req Request) {
	entries := s.engine.Words()
	words := make([]WordEntry, len(entries))
	for i, e := range entries {
		words[i] = WordEntry{Word: e.Word, Popularity: e.Popularity}
	}
	s.send(ListResponse{ID: req.ID, Words: words, Count: len(words)})
}

// checkPrefix enforces the server's length and alphabet bounds before a
// prefix reaches the engine.
func (s *Server) checkPrefix(id, prefix string) bool {
	if len(prefix) < s.cfg.Server.MinPrefix {
		s.sendError(id, "prefix too short", 400)
		return false
	}
	if len(prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(id, "prefix too long", 400)
		return false
	}
	if !utils.IsAlphabetic(prefix) {
		s.sendError(id, "prefix must be alphabetic", 400)
		return false
	}
	return true
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	log.Debugf("request %s rejected: %s", id, message)
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func toWire(suggestions []suggest.Suggestion) []WireSuggestion {
	out := make([]WireSuggestion, len(suggestions))
	for i, s := range suggestions {
		out[i] = WireSuggestion{Word: s.Word, Distance: s.Distance, Popularity: s.Popularity}
	}
	return out
}

// clampLimit truncates to the request limit, itself capped by the
// configured maximum.
func clampLimit(suggestions []suggest.Suggestion, limit, maxLimit int) []suggest.Suggestion {
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
