// Package env derives shell-exportable "KEY=VALUE " assignments from a record
// store. Variables that are already set are left alone, except for PATH whose
// stored segments are merged into the existing value.
//
// The environment is read through a LookupFunc so tests can substitute a map
// for the process environment.
package env
