// Package tsv implements db.KVDB as an insertion-ordered string map that is
// persisted as UTF-8 text with one "key<TAB>value" record per line.
//
// Format:
//
//	hello<TAB>earth\n
//	PATH<TAB>/usr/local/bin:/opt/bin\n
//
// There is no header, no versioning and no escaping. A key or value that
// contains a tab or newline cannot be read back. Loading fails with a
// *db.FormatError for any non-empty line that does not contain exactly one tab,
// and with db.ErrEncoding for input that is not valid UTF-8.
//
// Ordering:
//
//	Keys are enumerated in the order they were first inserted. Overwriting or
//	appending to a key keeps its position, and a duplicate key on load keeps
//	the position of its first occurrence with the value of its last.
//
// Thread Safety:
//
//	All methods are safe for concurrent use. Keys iterates over a snapshot.
package tsv
