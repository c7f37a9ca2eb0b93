// Package main provides the entry point for taskboard, a terminal kanban
// board with a fixed Todo → In Progress → Done pipeline.
//
// Usage:
//
//	taskboard [--ephemeral] [command] [arguments]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskboard/internal/app"
	"github.com/riordanpawley/taskboard/internal/cli"
	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/storage"
	"github.com/riordanpawley/taskboard/internal/store"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("taskboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	ephemeral := fs.Bool("ephemeral", false, "keep tasks in memory only")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(os.Stdout)
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		cli.PrintUsage(os.Stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		return 1
	}
	defer closeLog()
	slog.SetDefault(logger)

	var st storage.Storage
	if *ephemeral {
		st = storage.NewMemoryStore(logger)
	} else {
		st = storage.NewFileStore(cfg.Storage.Dir, cfg.Storage.Key, logger)
	}
	tasks := store.New(st, store.WithLogger(logger))

	if rest := fs.Args(); len(rest) > 0 {
		deps := &cli.Dependencies{Config: cfg, Store: tasks, Logger: logger, Out: os.Stdout}
		if err := cli.Dispatch(deps, rest); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	logger.Info("starting taskboard", "tasks", tasks.Len(), "ephemeral", *ephemeral)

	p := tea.NewProgram(app.New(tasks, cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openLogger writes text logs to the configured file; the TUI owns stdout
func openLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	return slog.New(handler), func() { _ = f.Close() }, nil
}
