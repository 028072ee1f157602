// Package cmd implements the command-line interface of kvstore.
//
// There is a single command, kv, which takes up to two positional arguments
// (key and value) and the flags --init, --help, --version and --append.
// The database lives at $KVSTORE_HOME/kv.db (./kv.db if KVSTORE_HOME is
// unset).
//
// The package is organized into:
//
//   - root.go: the cobra root command wiring parsing, configuration and dispatch
//   - util: configuration via environment variables and .env files (internal use)
//
// See kv --help for usage.
package cmd
