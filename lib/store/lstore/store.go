package lstore

import (
	"iter"

	"github.com/ValentinKolb/kvstore/lib/db"
	"github.com/ValentinKolb/kvstore/lib/store"
)

type storeImpl struct {
	db db.KVDB
}

// NewLocalStore creates a new local store instance.
// The store lives in memory only; Save does nothing.
func NewLocalStore(factory store.DBFactory) store.IStore {
	return &storeImpl{
		db: factory(),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Edit(key, value string, append bool) {
	if append {
		s.db.Append(key, value)
	} else {
		s.db.Set(key, value)
	}
}

func (s *storeImpl) View(key string) (string, bool) {
	return s.db.Get(key)
}

func (s *storeImpl) Keys() iter.Seq[string] {
	return s.db.Keys()
}

func (s *storeImpl) Save() error {
	return nil
}
