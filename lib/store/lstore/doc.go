// Package lstore implements an in-memory record store based on the
// store.IStore interface. It is a thin wrapper around any db.KVDB engine and
// never touches the disk: Save is a no-op.
//
// Usage Example:
//
//	factory := func() db.KVDB { return tsv.NewTSVDB() }
//	s := lstore.NewLocalStore(factory)
//	s.Edit("hello", "earth", false)
//	v, ok := s.View("hello")
//
// It is used for dry runs and wherever a store is needed without a file.
package lstore
