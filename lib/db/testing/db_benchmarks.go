package testing

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/ValentinKolb/kvstore/lib/db"
)

// RunKVDBBenchmarks runs all benchmarks for a key-value database implementations
func RunKVDBBenchmarks(b *testing.B, name string, factory DBFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("Set", func(b *testing.B) {
			benchmarkSet(b, factory())
		})

		b.Run("Get", func(b *testing.B) {
			benchmarkGet(b, factory())
		})

		b.Run("SaveLoad", func(b *testing.B) {
			benchmarkSaveLoad(b, factory)
		})
	})
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

func benchmarkSet(b *testing.B, database db.KVDB) {
	requireFeature(b, database, db.FeatureSet)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		database.Set(fmt.Sprintf("key-%d", i%1000), "value")
	}
}

func benchmarkGet(b *testing.B, database db.KVDB) {
	requireFeature(b, database, db.FeatureSet|db.FeatureGet)

	for i := 0; i < 1000; i++ {
		database.Set(fmt.Sprintf("key-%d", i), "value")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		database.Get(fmt.Sprintf("key-%d", i%1000))
	}
}

func benchmarkSaveLoad(b *testing.B, factory DBFactory) {
	database := factory()
	requireFeature(b, database, db.FeatureSet|db.FeatureSave|db.FeatureLoad)

	for i := 0; i < 10000; i++ {
		database.Set(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
	}

	b.Run("Save", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := database.Save(&bytes.Buffer{}); err != nil {
				b.Fatal(err)
			}
		}
	})

	var buf bytes.Buffer
	if err := database.Save(&buf); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()

	b.Run("Load", func(b *testing.B) {
		target := factory()
		for i := 0; i < b.N; i++ {
			if err := target.Load(bytes.NewReader(data)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
