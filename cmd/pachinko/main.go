package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/diegok/pachinko/internal/app"
	"github.com/diegok/pachinko/internal/config"
	"github.com/diegok/pachinko/internal/game"
)

const logPath = "logs/pachinko.log"

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logFile, err := setupLogging(cfg.Debug, logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	board, err := config.LoadBlackboard(cfg.GameConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg, game.LoadSettings(board), nil)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to path when debug is set and
// discards it otherwise, since the terminal belongs to the screen.
func setupLogging(debug bool, path string) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pachinko [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --mode <name>       Start mode: nearest, discs, segments, aabbs, pachinko (default: pachinko)")
	fmt.Fprintln(os.Stderr, "  --config <path>     TOML file overriding the built-in game config")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Random seed, 0 picks one from the clock")
	fmt.Fprintln(os.Stderr, "  --fixed-step        Start the simulation in fixed-step mode")
	fmt.Fprintln(os.Stderr, "  --debug             Write a log to "+logPath)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pachinko")
	fmt.Fprintln(os.Stderr, "  pachinko --mode discs --seed 42")
	fmt.Fprintln(os.Stderr, "  pachinko --config my-table.toml --fixed-step")
}
