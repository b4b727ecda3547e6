package config

import (
	"bufio"
	"io"
	"maps"
	"os"
	"strings"
)

// Environment is a snapshot of process variables. Components read settings from
// an Environment rather than from os.Getenv so resolution stays deterministic.
type Environment struct {
	vars map[string]string
}

// NewEnvironment builds an Environment from a copy of vars.
func NewEnvironment(vars map[string]string) Environment {
	return Environment{vars: maps.Clone(vars)}
}

// FromOS snapshots the current process environment.
func FromOS() Environment {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	return Environment{vars: vars}
}

// Lookup returns the value of key and whether it is defined at all.
// A variable defined as the empty string is reported as present.
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Get returns the value of key, or "" when undefined.
func (e Environment) Get(key string) string {
	return e.vars[key]
}

// WithFile returns a copy of e with the variables from an override file added.
// Keys already defined in e are left untouched. A missing or unreadable file
// returns e unchanged.
func (e Environment) WithFile(path string) Environment {
	f, err := os.Open(path)
	if err != nil {
		return e
	}
	defer f.Close()

	return e.WithOverrides(ParseOverrides(f))
}

// WithOverrides returns a copy of e with overrides applied where the key is
// not yet defined.
func (e Environment) WithOverrides(overrides map[string]string) Environment {
	merged := maps.Clone(e.vars)
	if merged == nil {
		merged = make(map[string]string, len(overrides))
	}
	for k, v := range overrides {
		if _, defined := merged[k]; defined {
			continue
		}
		merged[k] = v
	}
	return Environment{vars: merged}
}

// ParseOverrides reads KEY=VALUE lines. Blank lines, # comments and lines
// without "=" are skipped. Each remaining line is decoded on its own, so one
// malformed line never discards the rest of the file.
func ParseOverrides(r io.Reader) map[string]string {
	out := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.Contains(line, "=") {
			continue
		}

		key, value, ok := decodeLine(line)
		if !ok {
			continue
		}
		out[key] = value
	}
	// A read error mid-file keeps whatever was decoded so far.
	return out
}

// decodeLine splits a single KEY=VALUE line. Values are taken literally; a
// value wrapped in matching single or double quotes loses only those quotes.
func decodeLine(line string) (string, string, bool) {
	rawKey, rawValue, _ := strings.Cut(line, "=")
	key := strings.TrimSpace(rawKey)
	value := strings.TrimSpace(rawValue)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 && (value[0] == '\'' || value[0] == '"') && value[len(value)-1] == value[0] {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}
