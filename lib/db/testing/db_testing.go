package testing

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/ValentinKolb/kvstore/lib/db"
)

// DBFactory is a function that creates a new instance of a KVDB implementation
type DBFactory func() db.KVDB

// RunKVDBTests runs a comprehensive test suite for a KVDB implementation.
func RunKVDBTests(t *testing.T, name string, factory DBFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("Append", func(t *testing.T) {
			testAppend(t, factory())
		})

		t.Run("KeyOrder", func(t *testing.T) {
			testKeyOrder(t, factory())
		})

		t.Run("SaveLoad", func(t *testing.T) {
			testSaveLoad(t, factory)
		})

		t.Run("SaveFormat", func(t *testing.T) {
			testSaveFormat(t, factory())
		})

		t.Run("LoadDuplicates", func(t *testing.T) {
			testLoadDuplicates(t, factory())
		})

		t.Run("LoadInvalid", func(t *testing.T) {
			testLoadInvalid(t, factory)
		})

		t.Run("EdgeCases", func(t *testing.T) {
			testEdgeCases(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// Checks if the database supports the specified feature
// Skip the test if it is not supported
func requireFeature(t testing.TB, database db.KVDB, feature db.Feature) {
	if !database.SupportsFeature(feature) {
		t.Skip()
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, database db.KVDB) {
	requireFeature(t, database, db.FeatureSet|db.FeatureGet)

	database.Set("hello", "world")
	if v, ok := database.Get("hello"); !ok || v != "world" {
		t.Errorf("Expected (world, true), got (%s, %v)", v, ok)
	}

	database.Set("hello", "earth")
	if v, ok := database.Get("hello"); !ok || v != "earth" {
		t.Errorf("Expected overwrite to earth, got (%s, %v)", v, ok)
	}

	if _, ok := database.Get("konnichiwa"); ok {
		t.Errorf("Expected nonexistent key to return loaded=false")
	}

	// reading twice must not change anything
	first, _ := database.Get("hello")
	second, _ := database.Get("hello")
	if first != second {
		t.Errorf("Repeated Get returned %s then %s", first, second)
	}

	if database.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", database.Len())
	}
}

func testAppend(t *testing.T, database db.KVDB) {
	requireFeature(t, database, db.FeatureSet|db.FeatureAppend|db.FeatureGet)

	database.Set("hello", "earth")
	database.Append("hello", ":world")
	if v, _ := database.Get("hello"); v != "earth:world" {
		t.Errorf("Expected earth:world, got %s", v)
	}

	database.Append("new", "value")
	if v, ok := database.Get("new"); !ok || v != "value" {
		t.Errorf("Append to a missing key should set it, got (%s, %v)", v, ok)
	}
}

func testKeyOrder(t *testing.T, database db.KVDB) {
	requireFeature(t, database, db.FeatureSet|db.FeatureAppend|db.FeatureKeys)

	database.Set("c", "1")
	database.Set("a", "2")
	database.Set("b", "3")
	database.Set("c", "4")
	database.Append("a", "5")

	want := []string{"c", "a", "b"}
	if got := slices.Collect(database.Keys()); !slices.Equal(got, want) {
		t.Errorf("Expected keys %v, got %v", want, got)
	}

	// the sequence is restartable
	if got := slices.Collect(database.Keys()); !slices.Equal(got, want) {
		t.Errorf("Second iteration returned %v", got)
	}

	// early stop must not panic
	for range database.Keys() {
		break
	}
}

func testSaveLoad(t *testing.T, factory DBFactory) {
	database := factory()
	database2 := factory()

	requireFeature(t, database, db.FeatureSet|db.FeatureGet|db.FeatureSave|db.FeatureLoad)

	numEntries := 1000
	for i := 0; i < numEntries; i++ {
		database.Set(fmt.Sprintf("save-load-test-key-%d", i), fmt.Sprintf("save-load-test-value-%d", i))
	}

	var buf bytes.Buffer
	if err := database.Save(&buf); err != nil {
		t.Fatalf("Unexpected error during Save: %v", err)
	}

	if err := database2.Load(&buf); err != nil {
		t.Fatalf("Unexpected error during Load: %v", err)
	}

	if database2.Len() != numEntries {
		t.Errorf("Expected %d entries after Load, got %d", numEntries, database2.Len())
	}

	for i := 0; i < numEntries; i++ {
		key := fmt.Sprintf("save-load-test-key-%d", i)
		expected := fmt.Sprintf("save-load-test-value-%d", i)
		actual, exists := database2.Get(key)
		if !exists {
			t.Errorf("Key %s not found after Load", key)
			continue
		}
		if actual != expected {
			t.Errorf("Value mismatch for key %s: expected %s, got %s", key, expected, actual)
		}
	}

	if !slices.Equal(slices.Collect(database.Keys()), slices.Collect(database2.Keys())) {
		t.Errorf("Key order changed during Save/Load")
	}
}

func testSaveFormat(t *testing.T, database db.KVDB) {
	requireFeature(t, database, db.FeatureSet|db.FeatureSave)

	var empty bytes.Buffer
	if err := database.Save(&empty); err != nil {
		t.Fatalf("Unexpected error during Save: %v", err)
	}
	if empty.Len() != 0 {
		t.Errorf("Expected empty output for an empty database, got %q", empty.String())
	}

	database.Set("hello", "earth")
	database.Set("bonjour", "venus")

	var buf bytes.Buffer
	if err := database.Save(&buf); err != nil {
		t.Fatalf("Unexpected error during Save: %v", err)
	}
	if want := "hello\tearth\nbonjour\tvenus\n"; buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func testLoadDuplicates(t *testing.T, database db.KVDB) {
	requireFeature(t, database, db.FeatureLoad|db.FeatureGet|db.FeatureKeys)

	input := "a\t1\n\nb\t2\na\t3\n"
	if err := database.Load(strings.NewReader(input)); err != nil {
		t.Fatalf("Unexpected error during Load: %v", err)
	}

	if database.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", database.Len())
	}
	if v, _ := database.Get("a"); v != "3" {
		t.Errorf("Expected last duplicate to win, got %s", v)
	}
	if got := slices.Collect(database.Keys()); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Unexpected key order %v", got)
	}
}

func testLoadInvalid(t *testing.T, factory DBFactory) {
	cases := []struct {
		name  string
		input string
		line  int
		tabs  int
	}{
		{"NoTab", "hello world\ngo gators\n", 1, 0},
		{"TwoTabs", "ok\tfine\na\tb\tc\n", 2, 2},
		{"ThreeTabs", "\t\t\t\n", 1, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			database := factory()
			requireFeature(t, database, db.FeatureSet|db.FeatureLoad|db.FeatureGet)

			database.Set("keep", "me")

			err := database.Load(strings.NewReader(tc.input))
			var formatErr *db.FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("Expected *db.FormatError, got %v", err)
			}
			if formatErr.Line != tc.line || formatErr.Tabs != tc.tabs {
				t.Errorf("Expected line %d with %d tabs, got line %d with %d tabs",
					tc.line, tc.tabs, formatErr.Line, formatErr.Tabs)
			}

			// a failed load must not modify the database
			if v, ok := database.Get("keep"); !ok || v != "me" {
				t.Errorf("Database was modified by a failed Load")
			}
		})
	}

	t.Run("InvalidUTF8", func(t *testing.T) {
		database := factory()
		requireFeature(t, database, db.FeatureLoad)

		err := database.Load(bytes.NewReader([]byte("key\t\xff\xfe\n")))
		if !errors.Is(err, db.ErrEncoding) {
			t.Errorf("Expected db.ErrEncoding, got %v", err)
		}
	})
}

func testEdgeCases(t *testing.T, database db.KVDB) {
	requireFeature(t, database, db.FeatureSet|db.FeatureGet|db.FeatureSave|db.FeatureLoad)

	database.Set("", "value for empty key")
	database.Set("empty-value-key", "")
	database.Set("unicode-ключ", "värde ✓")
	database.Set(strings.Repeat("k", 1000), strings.Repeat("v", 100000))

	var buf bytes.Buffer
	if err := database.Save(&buf); err != nil {
		t.Fatalf("Unexpected error during Save: %v", err)
	}
	if err := database.Load(&buf); err != nil {
		t.Fatalf("Unexpected error during Load: %v", err)
	}

	if v, ok := database.Get(""); !ok || v != "value for empty key" {
		t.Errorf("Empty key did not survive a round trip")
	}
	if v, ok := database.Get("empty-value-key"); !ok || v != "" {
		t.Errorf("Empty value did not survive a round trip")
	}
	if v, _ := database.Get("unicode-ключ"); v != "värde ✓" {
		t.Errorf("Unicode value mismatch: %s", v)
	}
	if v, _ := database.Get(strings.Repeat("k", 1000)); len(v) != 100000 {
		t.Errorf("Large value has length %d", len(v))
	}
}
