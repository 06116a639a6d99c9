/*
Package main implements the Luau completion server and CLI application.

LuauSense provides case-sensitive prefix completion over the Luau keyword
and built-in function vocabulary, using a Patricia trie for lookups. It can
operate as a MessagePack IPC server for integration with text editors, or
as a CLI application for testing and debugging.

The vocabulary is embedded data shipped with the library: language
keywords, core globals, standard library functions and the common Roblox
globals. Each identifier carries a category (keyword, function, constant,
other) that maps to a highlight color.

# Usage

Start the server with default settings:

	luausense

Enable debug mode:

	luausense -d

Run in CLI mode for interactive testing:

	luausense -c -limit 10

# Configuration

Runtime configuration is managed through a TOML file that supports server
parameters, CLI defaults, and highlight color overrides:

	[server]
	max_limit = 64
	max_query = 60

	[cli]
	default_limit = 24

	[highlight]
	keyword = "#c4a7e7"
	function = "#9ccfd8"

The config file is automatically created with defaults if it doesn't exist.
Highlight values must be #RRGGBB strings; anything else is ignored and the
builtin palette color stays in place.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Completion
requests are processed synchronously with microsecond timing information
included in responses.

Send a completion request:

	{"id": "req1", "p": "loc", "l": 20}

Receive matches in vocabulary order with their highlight colors:

	{"id": "req1", "s": [{"w": "local", "h": "#c4a7e7"}], "c": 1, "t": 38}

Resolve a single identifier to its color:

	{"id": "hl1", "w": "print"}

Requests shorter than two characters fail with a 400 error; highlight
lookups for names absent from the vocabulary fail with 404.

# CLI Mode

CLI mode provides an interactive interface for testing completion
functionality. It reads queries from stdin and displays matches styled
with their highlight colors.

	inputHandler := cli.NewInputHandler(completer, maxLen, limit)
	err := inputHandler.Start()

# Completion Engine

The core functionality is provided by the suggest package, which implements
Patricia trie prefix matching over the embedded vocabulary.

	completer := suggest.NewDefault()
	matches, err := completer.Autocomplete("loc")
	color, err := completer.Highlight("local")
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/luau-tools/luausense/internal/cli"
	"github.com/luau-tools/luausense/pkg/config"
	"github.com/luau-tools/luausense/pkg/server"
	"github.com/luau-tools/luausense/pkg/suggest"
)

const (
	Version = "0.1.0"
	AppName = "luausense"
	gh      = "https://github.com/luau-tools/luausense"
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

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to return")
	configPath := flag.String("config", "", "Path to a custom config.toml")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ LuauSense ] Prefix completions for the Luau vocabulary!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	completer := suggest.NewDefault()
	completer.SetColors(appConfig.HighlightOverrides())
	log.Debugf("Init completer: identifiers=[%d]", completer.Size())

	// CLI is mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"maxQuery", appConfig.Server.MaxQuery,
			"limit", *limit)

		inputHandler := cli.NewInputHandler(completer, appConfig.Server.MaxQuery, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, appConfig)

	showStartupInfo()

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo() {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" LuauSense ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
