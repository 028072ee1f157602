package fstore

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"os"

	"github.com/ValentinKolb/kvstore/lib/db"
	"github.com/ValentinKolb/kvstore/lib/db/engines/tsv"
	"github.com/ValentinKolb/kvstore/lib/store"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("store")

// fileMode is used when the store file has to be created
const fileMode os.FileMode = 0o644

// Options configures how a file store is opened and saved
type Options struct {
	Factory    store.DBFactory // Creates the in-memory engine (nil = tsv)
	AtomicSave bool            // Write a temp file and rename it over the target on Save
}

// DefaultOptions returns the default file store options
func DefaultOptions() *Options {
	return &Options{
		Factory:    func() db.KVDB { return tsv.NewTSVDB() },
		AtomicSave: true,
	}
}

// Store is a record store backed by a single file
type Store struct {
	path   string
	db     db.KVDB
	atomic bool
}

// Open loads the file at path, creating an empty file if it does not exist.
// The whole file is parsed or the call fails, there is no partial load.
// The file is not kept open after Open returns.
func Open(path string, opts *Options) (*Store, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	factory := opts.Factory
	if factory == nil {
		factory = DefaultOptions().Factory
	}

	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, fileMode)
	if err != nil {
		return nil, store.NewError(store.RetCIO, fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	database := factory()
	if err := database.Load(f); err != nil {
		var formatErr *db.FormatError
		switch {
		case errors.As(err, &formatErr):
			return nil, store.NewError(store.RetCInvalidFormat, fmt.Sprintf("cannot load %s", path), err)
		case errors.Is(err, db.ErrEncoding):
			return nil, store.NewError(store.RetCEncoding, fmt.Sprintf("cannot load %s", path), err)
		default:
			return nil, store.NewError(store.RetCIO, fmt.Sprintf("cannot read %s", path), err)
		}
	}

	Logger.Debugf("loaded %d entries from %s", database.Len(), path)

	return &Store{
		path:   path,
		db:     database,
		atomic: opts.AtomicSave,
	}, nil
}

// Path returns the location of the store file
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of entries currently held in memory
func (s *Store) Len() int {
	return s.db.Len()
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *Store) Edit(key, value string, append bool) {
	if append {
		s.db.Append(key, value)
	} else {
		s.db.Set(key, value)
	}
}

func (s *Store) View(key string) (string, bool) {
	return s.db.Get(key)
}

func (s *Store) Keys() iter.Seq[string] {
	return s.db.Keys()
}

// Save rewrites the whole file. Concurrent writers are not coordinated, the
// last Save to finish wins.
func (s *Store) Save() error {
	var buf bytes.Buffer
	if err := s.db.Save(&buf); err != nil {
		return store.NewError(store.RetCInternalError, "cannot serialize store", err)
	}

	write := os.WriteFile
	if s.atomic {
		write = writeFileAtomic
	}
	if err := write(s.path, buf.Bytes(), fileMode); err != nil {
		return store.NewError(store.RetCIO, fmt.Sprintf("cannot write %s", s.path), err)
	}

	Logger.Debugf("saved %d entries to %s (atomic=%t)", s.db.Len(), s.path, s.atomic)
	return nil
}
