package config

import (
	_ "embed"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//go:embed gameconfig.toml
var defaultGameConfig string

// Blackboard is a read-only name -> scalar store for game tuning values
type Blackboard struct {
	values map[string]any
}

// DefaultBlackboard returns the built-in game configuration
func DefaultBlackboard() *Blackboard {
	b := &Blackboard{values: make(map[string]any)}
	// the embedded file is part of the build; a decode failure is a programming error
	if err := b.merge(defaultGameConfig, "built-in game config"); err != nil {
		panic(err)
	}
	return b
}

// LoadBlackboard starts from the defaults and overlays the TOML file at path,
// if path is not empty
func LoadBlackboard(path string) (*Blackboard, error) {
	b := DefaultBlackboard()
	if path == "" {
		return b, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read game config %s", path)
	}
	if err := b.merge(string(data), path); err != nil {
		return nil, err
	}
	return b, nil
}

// ParseBlackboard decodes a TOML document without defaults
func ParseBlackboard(doc string) (*Blackboard, error) {
	b := &Blackboard{values: make(map[string]any)}
	if err := b.merge(doc, "game config"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Blackboard) merge(doc, source string) error {
	values := make(map[string]any)
	if _, err := toml.Decode(doc, &values); err != nil {
		return errors.Wrapf(err, "decode %s", source)
	}
	for k, v := range values {
		b.values[k] = v
	}
	return nil
}

// Float returns a numeric value, or def when the key is missing or not a number
func (b *Blackboard) Float(name string, def float64) float64 {
	switch v := b.values[name].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return def
}

// Int returns an integer value, or def when the key is missing or not an
// integer. Whole floats are accepted.
func (b *Blackboard) Int(name string, def int) int {
	switch v := b.values[name].(type) {
	case int64:
		return int(v)
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	}
	return def
}

// Bool returns a boolean value, or def when the key is missing or not a bool
func (b *Blackboard) Bool(name string, def bool) bool {
	if v, ok := b.values[name].(bool); ok {
		return v
	}
	return def
}

// Has reports whether name is set
func (b *Blackboard) Has(name string) bool {
	_, ok := b.values[name]
	return ok
}
