/*
Package main runs the lexiserve word suggestion engine.

LexiServe keeps an in-memory vocabulary of words with popularity
scores, answers prefix queries ranked by popularity, and falls back to
edit-distance "did you mean" correction when a prefix matches nothing.
It runs either as a MessagePack IPC server over stdin/stdout or as an
interactive CLI for testing and debugging.

# Usage

Start the IPC server with default settings:

	lexiserve

Seed the vocabulary from a word list and run interactively:

	lexiserve -c -load words.txt

The word list is plain text, one word[:frequency] token per line.
Nothing is ever persisted back to disk; the store is rebuilt from the
seed file on every start.

# Configuration

Runtime configuration lives in a TOML file that is created with
defaults when missing:

	[suggest]
	max_suggestions = 10
	max_edit_distance = 2
	max_word_len = 64

	[server]
	max_limit = 10
	min_prefix = 1
	max_prefix = 60

Pass -config to point at a different file.

# IPC Protocol

Requests and responses are msgpack objects; see pkg/server for the
message shapes. A completion request

	{"id": "req1", "cmd": "complete", "p": "app"}

comes back ranked by popularity, or — when no stored word has the
prefix — with correction candidates and the corrected flag set.

# Command Line Flags

	-c            Run the interactive CLI instead of the IPC server
	-d            Enable debug logging
	-config path  Explicit config file
	-load path    Seed word list (word[:frequency] per line)
	-version      Print version and exit
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/lexiserve/internal/cli"
	"github.com/bastiangx/lexiserve/pkg/config"
	"github.com/bastiangx/lexiserve/pkg/dictionary"
	"github.com/bastiangx/lexiserve/pkg/server"
	"github.com/bastiangx/lexiserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "lexiserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, engine and the chosen front end together; the
// logic itself lives in the packages.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI instead of the IPC server")
	configPath := flag.String("config", "", "Path to a config.toml")
	loadPath := flag.String("load", "", "Seed word list file (word[:frequency] per line)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if activePath != "" {
		log.Debugf("Using config file: %s", activePath)
	}

	engine := suggest.NewEngine(suggest.Options{
		Limit:       cfg.Suggest.MaxSuggestions,
		MaxDistance: cfg.Suggest.MaxEditDistance,
		CacheKeys:   cfg.Suggest.CachedPrefixes,
	})

	if *loadPath != "" {
		n, err := dictionary.LoadWordFile(*loadPath, cfg.Suggest.MaxWordLen, engine)
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		log.Debugf("Seeded %d words from %s", n, *loadPath)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(engine, cfg.Suggest.MaxWordLen, cfg.CLI.Prompt)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("[ LexiServe ] ranked word suggestions with typo correction")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
}
