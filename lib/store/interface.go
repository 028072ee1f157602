package store

import (
	"fmt"
	"iter"

	"github.com/ValentinKolb/kvstore/lib/db"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// DBFactory is a function type that creates a new db used by the store.
// This is used to abstract the creation of the db from the store implementation.
type DBFactory func() db.KVDB

// IStore is the interface of a record store: a mapping of unique string keys
// to string values. Edits only change the in-memory state, Save persists it.
type IStore interface {
	// Edit sets key to value. If append is true and the key exists, value is
	// concatenated to the existing value without any delimiter.
	Edit(key, value string, append bool)
	// View returns the value for a key. The boolean return value indicates whether the key was found.
	View(key string) (value string, loaded bool)
	// Keys returns a lazy, restartable sequence over all keys in enumeration order.
	Keys() iter.Seq[string]
	// Save persists the full current mapping, replacing what was stored before.
	Save() (err error)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode),
// an error message and the underlying cause, if any.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
	Err  error   // The underlying cause (may be nil)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new store error with the given code, message and cause.
func NewError(code RetCode, msg string, err error) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
		Err:  err,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess       RetCode = iota // 0: Command executed successfully.
	RetCInternalError                // 1: Command failed due to an internal error.
	RetCInvalidFormat                // 2: The store file contains a malformed line.
	RetCEncoding                     // 3: The store file is not valid text.
	RetCIO                           // 4: Reading, creating or writing the store file failed.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCInternalError:
		return "InternalError"
	case RetCInvalidFormat:
		return "InvalidFormat"
	case RetCEncoding:
		return "EncodingError"
	case RetCIO:
		return "IoError"
	default:
		return "Unknown"
	}
}
