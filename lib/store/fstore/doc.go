// Package fstore implements the file backed record store (store.IStore).
//
// The store owns exactly one file. Open reads it completely into a db.KVDB
// engine (tsv by default) and closes it again; Edit and View only touch the
// in-memory engine; Save serializes the full mapping and replaces the file.
//
// Failure Semantics:
//
//   - Open fails with a *store.Error of code RetCIO, RetCInvalidFormat or
//     RetCEncoding. A missing file is created empty, a missing directory is an
//     I/O error.
//   - Save fails with RetCIO. With Options.AtomicSave the new content is
//     written to a temp file in the same directory and renamed over the target,
//     so readers see either the old or the new file. If the path is a symlink
//     the link is resolved and its target is replaced. Without it the file is
//     rewritten in place and its content is undefined after a failed write.
//
// There is no locking. Two processes saving the same file race and the last
// one to finish wins.
package fstore
