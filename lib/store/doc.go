// Package store provides the record store abstraction: a mapping of unique
// string keys to string values that is edited in memory and persisted on an
// explicit Save.
//
// Key Components:
//
//   - IStore Interface: Edit (set or append), View, Keys and Save. Both
//     implementations share this interface so the command dispatcher and the
//     environment export builder work against either of them.
//
//   - Error System: Failures are reported as *Error values carrying a RetCode
//     (RetCInvalidFormat, RetCEncoding, RetCIO, ...), a message and the
//     underlying cause, which stays reachable through errors.Is and errors.As.
//
//   - DBFactory: A function type that abstracts the creation of the underlying
//     db.KVDB engine.
//
// Implementations:
//
//   - File Store (fstore): owns a file on disk. Open loads it completely or
//     fails, Save rewrites it. Available in the "github.com/ValentinKolb/kvstore/lib/store/fstore" package.
//
//   - Local Store (lstore): in-memory only, Save is a no-op. Available in the
//     "github.com/ValentinKolb/kvstore/lib/store/lstore" package.
package store
