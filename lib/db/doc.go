// Package db provides the interface for the in-memory key-value engines that
// back a record store.
//
// Key Components:
//
//   - KVDB Interface: Set, Append, Get and ordered key enumeration plus
//     persistence to any io.Writer and from any io.Reader. The engine knows
//     nothing about files; owning the file is the job of the store package.
//
//   - Feature Flags: The Feature type defines capability flags that implementations
//     advertise through the SupportsFeature method.
//
//   - Load Errors: FormatError and ErrEncoding describe why an input could not
//     be loaded. A failed Load never leaves a partially loaded database behind.
//
// Implementations live in the engines subpackages (currently "tsv").
package db
