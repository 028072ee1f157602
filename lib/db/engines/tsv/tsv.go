package tsv

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ValentinKolb/kvstore/lib/db"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	fieldSep  = "\t" // Separates key and value on a line
	recordSep = "\n" // Terminates every record
)

// --------------------------------------------------------------------------
// Core TSV database structure
// --------------------------------------------------------------------------

// tsvImpl is an insertion-ordered string map that persists as tab separated lines
type tsvImpl struct {
	mu     sync.RWMutex
	order  []string          // Keys in first-insertion order
	values map[string]string // Key to value
}

// NewTSVDB creates a new, empty TSV database
func NewTSVDB() db.KVDB {
	return &tsvImpl{
		values: make(map[string]string),
	}
}

// put stores a value without locking. Overwriting a key keeps its position.
func (t *tsvImpl) put(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.order = append(t.order, key)
	}
	t.values[key] = value
}

// --------------------------------------------------------------------------
// Write Operations
// --------------------------------------------------------------------------

func (t *tsvImpl) Set(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.put(key, value)
}

func (t *tsvImpl) Append(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.put(key, t.values[key]+value)
}

// --------------------------------------------------------------------------
// Query Operations
// --------------------------------------------------------------------------

func (t *tsvImpl) Get(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.values[key]
	return v, ok
}

// Keys iterates over a snapshot of the key order taken when iteration starts,
// so the callback may read from or write to the database.
func (t *tsvImpl) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		t.mu.RLock()
		keys := make([]string, len(t.order))
		copy(keys, t.order)
		t.mu.RUnlock()

		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}

func (t *tsvImpl) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// --------------------------------------------------------------------------
// Persistence Operations
// --------------------------------------------------------------------------

// Save writes one "key<TAB>value<NEWLINE>" line per entry in insertion order.
func (t *tsvImpl) Save(w io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	bw := bufio.NewWriter(w)
	for _, k := range t.order {
		if _, err := bw.WriteString(k + fieldSep + t.values[k] + recordSep); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load parses the whole input before touching the database, so a malformed
// line leaves the current contents untouched. Empty lines are skipped and a
// later duplicate key overwrites an earlier one. A trailing "\r" is stripped
// from every line, so a value ending in a carriage return does not round trip.
func (t *tsvImpl) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if !utf8.Valid(data) {
		return db.ErrEncoding
	}

	order := make([]string, 0)
	values := make(map[string]string)
	for i, line := range strings.Split(string(data), recordSep) {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, fieldSep)
		if len(fields) != 2 {
			return &db.FormatError{Line: i + 1, Tabs: len(fields) - 1}
		}
		if _, ok := values[fields[0]]; !ok {
			order = append(order, fields[0])
		}
		values[fields[0]] = fields[1]
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.order = order
	t.values = values
	return nil
}

// --------------------------------------------------------------------------
// Feature Support
// --------------------------------------------------------------------------

func (t *tsvImpl) SupportsFeature(feature db.Feature) bool {
	supported := db.FeatureSet | db.FeatureAppend | db.FeatureGet | db.FeatureKeys | db.FeatureSave | db.FeatureLoad
	return feature&supported == feature
}

func (t *tsvImpl) GetInfo() db.DatabaseInfo {
	return db.DatabaseInfo{
		Entries: t.Len(),
		DbType:  db.ImplTSV,
		SupportedFeatures: []db.Feature{
			db.FeatureSet, db.FeatureAppend, db.FeatureGet, db.FeatureKeys, db.FeatureSave, db.FeatureLoad,
		},
	}
}
