package cli

import (
	"fmt"
	"slices"
	"strings"
)

// Recognized flags. Any other token starting with '-' is ignored.
const (
	FlagInit    = "--init"
	FlagHelp    = "--help"
	FlagVersion = "--version"
	FlagAppend  = "--append"
)

// UnknownArgError is returned when more than two positional arguments are given
type UnknownArgError struct {
	Arg string
}

func (e *UnknownArgError) Error() string {
	return fmt.Sprintf("unknown arg %q", e.Arg)
}

// Invocation is a parsed command line
type Invocation struct {
	Key      string
	HasKey   bool
	Value    string
	HasValue bool
	Init     bool
	Help     bool
	Version  bool
	Append   bool
}

// Parse splits args (without the program name) into flags and positionals.
// Tokens beginning with '-' are flags, everything else is positional: the
// first is the key, the second the value. A third positional is an error.
func Parse(args []string) (Invocation, error) {
	var flags, positionals []string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			flags = append(flags, a)
		} else {
			positionals = append(positionals, a)
		}
	}

	if len(positionals) > 2 {
		return Invocation{}, &UnknownArgError{Arg: positionals[2]}
	}

	inv := Invocation{
		Init:    slices.Contains(flags, FlagInit),
		Help:    slices.Contains(flags, FlagHelp),
		Version: slices.Contains(flags, FlagVersion),
		Append:  slices.Contains(flags, FlagAppend),
	}
	if len(positionals) > 0 {
		inv.Key, inv.HasKey = positionals[0], true
	}
	if len(positionals) > 1 {
		inv.Value, inv.HasValue = positionals[1], true
	}
	return inv, nil
}

// NeedsStore reports whether Run will read or write the store
func (inv Invocation) NeedsStore() bool {
	return !inv.Version && !inv.showUsage()
}

func (inv Invocation) showUsage() bool {
	return inv.Help || (!inv.HasKey && !inv.Init)
}
