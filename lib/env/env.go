package env

import (
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/ValentinKolb/kvstore/lib/store"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("env")

// PathListKey is the name of the variable whose value is merged instead of skipped
const PathListKey = "PATH"

// LookupFunc returns the value of an environment variable and whether it is set
type LookupFunc func(key string) (string, bool)

// MapLookup returns a LookupFunc backed by a fixed map
func MapLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// PathListSeparator returns the separator of path lists for the given GOOS
func PathListSeparator(goos string) string {
	switch goos {
	case "windows":
		return ";"
	case "plan9", "js", "wasip1":
		return ","
	default:
		return ":"
	}
}

// Builder turns store entries into shell assignments
type Builder struct {
	lookup LookupFunc
	sep    string
}

// NewBuilder creates a Builder using lookup to inspect the environment.
// A nil lookup uses the process environment.
func NewBuilder(lookup LookupFunc) *Builder {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Builder{
		lookup: lookup,
		sep:    PathListSeparator(runtime.GOOS),
	}
}

// WithSeparator returns a copy of the builder using sep for path lists
func (b *Builder) WithSeparator(sep string) *Builder {
	return &Builder{lookup: b.lookup, sep: sep}
}

// Assignment returns "KEY=VALUE " for a variable that is not set yet.
// A set variable is never overridden: the result is empty, except for PATH
// where the stored segments missing from the current value are appended.
func (b *Builder) Assignment(key, value string) string {
	current, ok := b.lookup(key)
	if !ok {
		return key + "=" + value + " "
	}
	if key != PathListKey {
		Logger.Debugf("skipping %s, already set in the environment", key)
		return ""
	}

	existing := strings.Split(current, b.sep)
	var added []string
	for _, segment := range strings.Split(value, b.sep) {
		if !slices.Contains(existing, segment) {
			added = append(added, segment)
		}
	}

	joined := strings.Join(added, b.sep)
	if joined == "" {
		return ""
	}
	return key + "=" + current + b.sep + joined + " "
}

// Export concatenates the assignments of every key in the store in enumeration order
func (b *Builder) Export(s store.IStore) string {
	var sb strings.Builder
	for key := range s.Keys() {
		value, ok := s.View(key)
		if !ok {
			continue
		}
		sb.WriteString(b.Assignment(key, value))
	}
	return sb.String()
}
