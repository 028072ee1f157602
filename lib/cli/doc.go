// Package cli parses a kv command line and dispatches it against a record
// store.
//
// Parse splits the arguments the simple way: tokens starting with '-' are
// flags, the first two remaining tokens are key and value. Run then decides
// what happens, in this order:
//
//  1. --version prints the version.
//  2. --help, or no key without --init, prints the usage.
//  3. --init prints the environment export of the whole store.
//  4. key and value set (or with --append extend) the key and save the store.
//  5. a key alone prints its value; the key "." lists all entries.
package cli
