package cli

import (
	"fmt"
	"strings"

	"github.com/ValentinKolb/kvstore/lib/env"
	"github.com/ValentinKolb/kvstore/lib/store"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("cli")

const (
	Version = "0.3.0"

	// ListKey lists every entry with a non-empty value
	ListKey = "."

	// SaveSuccessful is printed after a key was written
	SaveSuccessful = "kv-info: Save successful"

	// listGutter is the number of spaces between the longest key and its value
	listGutter = 4
)

// Usage is the help text
const Usage = `kv - a command-line key-value store

Usage:
    kv <key>                 print the value of <key>
    kv <key> <value>         set <key> to <value>
    kv <key> <value> --append
                             append <value> to the current value of <key>
    kv .                     list all keys with a non-empty value
    kv --init                print shell assignments for all keys
    kv --help                print this help
    kv --version             print the version

Environment:
    KVSTORE_HOME             directory holding kv.db (default: .)

Example:
    eval "export $(kv --init)"`

// VersionString returns the text printed for --version
func VersionString() string {
	return fmt.Sprintf("kv v%s", Version)
}

// Run executes the invocation against the store and returns the text for the user.
// The store may be nil if NeedsStore reports false.
func (inv Invocation) Run(s store.IStore, b *env.Builder) (string, error) {
	switch {
	case inv.Version:
		return VersionString(), nil
	case inv.showUsage():
		return Usage, nil
	case inv.Init:
		return b.Export(s), nil
	case inv.HasValue:
		s.Edit(inv.Key, inv.Value, inv.Append)
		if err := s.Save(); err != nil {
			return "", err
		}
		Logger.Debugf("set %s (append=%t)", inv.Key, inv.Append)
		return SaveSuccessful, nil
	}

	if v, ok := s.View(inv.Key); ok {
		return v, nil
	}
	if inv.Key == ListKey {
		return List(s), nil
	}
	return "", nil
}

// List formats every entry with a non-empty value as one line, the values
// aligned to the longest key plus a gutter. There is no trailing newline.
func List(s store.IStore) string {
	width := 0
	for k := range s.Keys() {
		width = max(width, len(k))
	}

	var lines []string
	for k := range s.Keys() {
		v, _ := s.View(k)
		if v == "" {
			continue
		}
		lines = append(lines, k+strings.Repeat(" ", width-len(k)+listGutter)+v)
	}
	return strings.Join(lines, "\n")
}
