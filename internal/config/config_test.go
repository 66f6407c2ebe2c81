package config

import (
	"testing"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != DefaultMode {
		t.Errorf("expected mode %q, got %q", DefaultMode, cfg.Mode)
	}
	if cfg.GameConfigPath != "" {
		t.Errorf("expected no config path, got '%s'", cfg.GameConfigPath)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
	if cfg.FixedStep {
		t.Error("expected FixedStep to be false")
	}
	if cfg.Debug {
		t.Error("expected Debug to be false")
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--config", "my.toml", "--mode", "discs", "--seed", "42", "--fixed-step", "--debug"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GameConfigPath != "my.toml" {
		t.Errorf("expected config path 'my.toml', got '%s'", cfg.GameConfigPath)
	}
	if cfg.Mode != ModeDiscs {
		t.Errorf("expected mode %q, got %q", ModeDiscs, cfg.Mode)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if !cfg.FixedStep {
		t.Error("expected FixedStep to be true")
	}
	if !cfg.Debug {
		t.Error("expected Debug to be true")
	}
}

func TestParseArgs_ModeIsCaseInsensitive(t *testing.T) {
	cfg, err := ParseArgs([]string{"--mode", "Nearest"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != ModeNearest {
		t.Errorf("expected mode %q, got %q", ModeNearest, cfg.Mode)
	}
}

func TestParseArgs_AllModes(t *testing.T) {
	for _, name := range ModeNames {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseArgs([]string{"--mode", name})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Mode != name {
				t.Errorf("expected mode %q, got %q", name, cfg.Mode)
			}
		})
	}
}

func TestParseArgs_UnknownMode(t *testing.T) {
	_, err := ParseArgs([]string{"--mode", "curves"})
	if err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestParseArgs_InvalidSeed(t *testing.T) {
	_, err := ParseArgs([]string{"--seed", "abc"})
	if err == nil {
		t.Error("expected error for non-numeric seed")
	}
}

func TestParseArgs_UnexpectedArguments(t *testing.T) {
	_, err := ParseArgs([]string{"extra"})
	if err == nil {
		t.Error("expected error for positional arguments")
	}
}
