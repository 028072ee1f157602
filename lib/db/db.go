package db

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

type Implementation string

const (
	ImplTSV Implementation = "tsv"
)

// Feature represents database features as bit flags
type Feature uint64

const (
	FeatureSet    Feature = 1 << iota // Support for Set operations
	FeatureAppend                     // Support for Append operations
	FeatureGet                        // Support for Get operations
	FeatureKeys                       // Support for Keys enumeration
	FeatureSave                       // Support for Save operations
	FeatureLoad                       // Support for Load operations
)

func (f Feature) String() string {
	switch f {
	case FeatureSet:
		return "Set"
	case FeatureAppend:
		return "Append"
	case FeatureGet:
		return "Get"
	case FeatureKeys:
		return "Keys"
	case FeatureSave:
		return "Save"
	case FeatureLoad:
		return "Load"
	default:
		return "Unknown"
	}
}

type DatabaseInfo struct {
	Entries           int            `json:"entries"`
	DbType            Implementation `json:"db_type"`
	SupportedFeatures []Feature      `json:"supported_features"`
}

// --------------------------------------------------------------------------
// Load Errors
// --------------------------------------------------------------------------

// ErrEncoding is returned by Load if the input is not valid UTF-8 text.
var ErrEncoding = errors.New("kv file is not valid UTF-8 text")

// FormatError is returned by Load if a line does not consist of exactly one
// key and one value separated by a single tab.
type FormatError struct {
	Line int // 1-based line number of the offending line
	Tabs int // number of tabs found on that line
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid kv file - found %d tab(s) on line %d (expecting 1)", e.Tabs, e.Line)
}

// --------------------------------------------------------------------------
// Database Interface
// --------------------------------------------------------------------------

// KVDB defines an interface for string key-value database implementations.
// Keys are unique. Implementations must enumerate keys in a deterministic order.
// Implementations can vary in their feature support, which can be queried with SupportsFeature.
type KVDB interface {

	// --------------------------------------------------------------------------
	// Write Operations
	// --------------------------------------------------------------------------

	// Set inserts or updates an entry. If the key already exists, the old value is overwritten.
	Set(key, value string)

	// Append concatenates value to the existing value of key.
	// If the key does not exist it behaves like Set.
	Append(key, value string)

	// --------------------------------------------------------------------------
	// Query Operations
	// --------------------------------------------------------------------------

	// Get retrieves the value for an exact key.
	// The boolean return value indicates whether a value for the key was found.
	Get(key string) (value string, loaded bool)

	// Keys returns a restartable sequence over all keys.
	Keys() iter.Seq[string]

	// Len returns the number of entries.
	Len() int

	// --------------------------------------------------------------------------
	// Persistence Operations
	// --------------------------------------------------------------------------

	// Save writes every entry to the provided io.Writer.
	Save(w io.Writer) (err error)

	// Load replaces the database contents with the data provided by an io.Reader.
	// On error the database is left unchanged.
	Load(r io.Reader) (err error)

	// --------------------------------------------------------------------------
	// Feature Support
	// --------------------------------------------------------------------------

	// SupportsFeature checks if the database implementation supports the specified feature.
	// Multiple features can be checked at once using bitwise OR (|) operator.
	SupportsFeature(feature Feature) (ok bool)

	// GetInfo returns information about the database.
	GetInfo() (info DatabaseInfo)
}
