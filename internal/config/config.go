package config

import (
	"flag"
	"fmt"
	"strings"
)

// Start mode names, in F6/F7 cycling order
const (
	ModeNearest  = "nearest"
	ModeDiscs    = "discs"
	ModeSegments = "segments"
	ModeAABBs    = "aabbs"
	ModePachinko = "pachinko"
)

// ModeNames lists every selectable mode
var ModeNames = []string{ModeNearest, ModeDiscs, ModeSegments, ModeAABBs, ModePachinko}

// DefaultMode is the mode shown at startup
const DefaultMode = ModePachinko

// Config holds the application configuration
type Config struct {
	GameConfigPath string
	Mode           string
	Seed           int64
	FixedStep      bool
	Debug          bool
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pachinko", flag.ContinueOnError)

	path := fs.String("config", "", "TOML game config file overriding the built-in values")
	mode := fs.String("mode", DefaultMode, "start mode: "+strings.Join(ModeNames, ", "))
	seed := fs.Int64("seed", 0, "random seed (0 = time based)")
	fixed := fs.Bool("fixed-step", false, "start the simulation in fixed-step mode")
	debug := fs.Bool("debug", false, "write a debug log to logs/pachinko.log")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	name := strings.ToLower(*mode)
	if !validMode(name) {
		return nil, fmt.Errorf("unknown mode %q (want one of %s)", *mode, strings.Join(ModeNames, ", "))
	}

	cfg := &Config{
		GameConfigPath: *path,
		Mode:           name,
		Seed:           *seed,
		FixedStep:      *fixed,
		Debug:          *debug,
	}

	return cfg, nil
}

func validMode(name string) bool {
	for _, m := range ModeNames {
		if m == name {
			return true
		}
	}
	return false
}
