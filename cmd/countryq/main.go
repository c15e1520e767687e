// Copyright 2025 The countryq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the countryq interactive browser and IPC server.

countryq loads a small dataset of country records (name, population, area,
continent) into memory and lets users search, filter, sort, page through and
summarize it. It runs as an interactive terminal menu by default, or as a
MessagePack IPC server for other programs.

# Usage

Browse the default dataset:

	countryq

Use a specific data file and enable debug logging:

	countryq -data /path/to/countries.csv -d

Serve queries over stdin/stdout:

	countryq -serve

Convert the loaded dataset into a msgpack snapshot and exit:

	countryq -data countries.csv -export countries.msgpack

# Data

The data file is either CSV with the columns name,population,area,continent
(a header row is optional) or a msgpack snapshot written by -export. Rows with
an empty name or continent, a negative population or a non-positive area are
skipped with a warning. Relative paths are looked up in the working
directory, next to the executable and in the config directory.

# Configuration

Runtime configuration lives in config.toml in the user config directory and is
created with defaults when missing:

	[data]
	path = "data/countries.csv"

	[display]
	page_size = 10
	name_width = 28
	clear_screen = true

	[search]
	candidate_limit = 10
	match_threshold = 80
	cache_size = 256
	cache_ttl_seconds = 600
	completion_limit = 5

A file that fails to parse is recovered key by key; anything unreadable falls
back to the defaults.

# Interactive Mode

The menu offers name search, continent filter, population and area ranges,
sorting and statistics. Results longer than one page are browsed with N
(next), P (previous) and Q (quit). Ctrl+C while a prompt is waiting abandons
the current operation; at the main menu it exits.

# Command Line Flags

	-data string
	    Dataset file (default from config)
	-config string
	    Path to config.toml
	-d  Enable debug mode with detailed logging
	-serve
	    Run the msgpack IPC server instead of the menu
	-export string
	    Write the loaded dataset to this file (.msgpack or .csv) and exit
	-page int
	    Records per page (default from config)
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bastiangx/countryq/internal/cli"
	"github.com/bastiangx/countryq/internal/logger"
	"github.com/bastiangx/countryq/internal/render"
	"github.com/bastiangx/countryq/internal/utils"
	"github.com/bastiangx/countryq/pkg/config"
	"github.com/bastiangx/countryq/pkg/country"
	"github.com/bastiangx/countryq/pkg/dataset"
	"github.com/bastiangx/countryq/pkg/fuzzy"
	"github.com/bastiangx/countryq/pkg/server"
	"github.com/bastiangx/countryq/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.4.0"
	AppName = "countryq"
	gh      = "https://github.com/bastiangx/countryq"
)

// sigHandler exits on interrupt. Used by server mode, where no prompt can be cancelled.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow; every mode lives in its own package.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Dataset file, CSV or msgpack snapshot (default from config)")
	configPath := flag.String("config", "", "Path to config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server on stdin/stdout")
	exportPath := flag.String("export", "", "Write the loaded dataset to this file (.msgpack or .csv) and exit")
	pageSize := flag.Int("page", 0, "Records per page (default from config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// stdout belongs to the protocol in server mode, so logs always go to stderr
	logger.Setup(os.Stderr, *debugMode)

	appConfig, activeConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfig))
	if *pageSize > 0 {
		appConfig.Display.PageSize = *pageSize
	}
	if *dataPath == "" {
		*dataPath = appConfig.Data.Path
	}

	store, resolved, err := loadStore(*dataPath, activeConfig)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	log.Debugf("Using data file at: %s", resolved)

	if *exportPath != "" {
		if err := export(*exportPath, store); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Exported %d records to %s\n", store.Len(), *exportPath)
		return
	}

	matcher := fuzzy.NewMatcher(store, appConfig.FuzzyOptions())
	names := suggest.NewNameIndex(store)

	if *serveMode {
		sigHandler()
		srv := server.NewServer(store, matcher, names, appConfig, os.Stdin, os.Stdout)
		showStartupInfo(resolved, store, matcher, names)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)

	app := cli.NewApp(store, matcher, names,
		render.NewTerminal(os.Stdout, appConfig.Display.NameWidth),
		cli.NewPrompter(os.Stdin, interrupts),
		cli.Options{
			PageSize:        appConfig.Display.PageSize,
			CompletionLimit: appConfig.Search.CompletionLimit,
			ClearScreen:     appConfig.Display.ClearScreen,
		})
	if err := app.Run(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
	fmt.Fprintln(os.Stdout, "Goodbye!")
}

// loadStore resolves path against the usual locations and loads it.
func loadStore(path, activeConfig string) (*country.Store, string, error) {
	configDir := ""
	if activeConfig != "" {
		configDir = filepath.Dir(activeConfig)
	}
	resolver, err := utils.NewPathResolver(configDir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to initialize path resolver: %w", err)
	}
	resolved, err := resolver.ResolveDataFile(path)
	if err != nil {
		return nil, resolved, fmt.Errorf("data file %s not found: %w", path, err)
	}
	store, err := dataset.Load(resolved)
	if err != nil {
		return nil, resolved, err
	}
	if store.Dropped() > 0 {
		log.Warnf("%d invalid rows skipped in %s", store.Dropped(), resolved)
	}
	return store, resolved, nil
}

func export(path string, store *country.Store) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk":
		return dataset.SaveSnapshot(path, store)
	case ".csv":
		return dataset.SaveCSV(path, store)
	}
	return fmt.Errorf("unsupported export format %q (use .msgpack or .csv)", filepath.Ext(path))
}

func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ countryq ] Search, filter and summarize country data")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(dataFile string, store *country.Store, matcher *fuzzy.Matcher, names suggest.ICompleter) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("data file: ( %s )", dataFile)
	log.Infof("records: [ %d ]", store.Len())
	ms := matcher.Stats()
	log.Infof("fuzzy: limit [ %d ] threshold [ %d ] cache [ %d ]", ms["candidateLimit"], ms["threshold"], ms["cachedQueries"])
	ns := names.Stats()
	log.Infof("name index: [ %d ] names, [ %d ] keys", ns["names"], ns["keys"])
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
