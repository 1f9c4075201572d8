package store

import (
	"fmt"

	"github.com/ValentinKolb/oarr/lib/array"
)

//go:generate mockgen -source=interface.go -destination=store_mock.go -package=store

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// ArrayFactory is a function type that creates a new array used by the store.
// This is used to abstract the creation of the array from the store implementation.
type ArrayFactory func() array.OverlayArray

// IStore is the generic interface for interacting with one overlay array.
// All write operations return only a *Error (nil on success),
// while read operations return the requested data along with a *Error (nil on success).
// Implementations are safe for concurrent use.
type IStore interface {
	// SetOne stores value at index. Fails with RetCOutOfRange if the index is invalid.
	SetOne(index int, value byte) (err error)
	// SetAll makes value the result of every index not set individually afterward.
	SetAll(value byte) (err error)
	// Get returns the value at index. Fails with RetCOutOfRange if the index is invalid.
	Get(index int) (value byte, err error)
	// GetInfo returns metadata about the array underlying the store.
	// It is not guaranteed that all fields are filled in or that the information is up-to-date!
	GetInfo() (info array.ArrayInfo, err error)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("StoreError (code %s): %s", e.Code, e.Msg)
}

// Is lets errors.Is match RetCOutOfRange errors against array.ErrOutOfRange
// and two *Error values with the same code against each other.
func (e *Error) Is(target error) bool {
	if target == array.ErrOutOfRange {
		return e.Code == RetCOutOfRange
	}
	if t, ok := target.(*Error); ok {
		return t.Code == e.Code
	}
	return false
}

// NewError creates a new StoreError with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess              RetCode = iota // 0: Command executed successfully.
	RetCInternalError                       // 1: Command failed due to an internal error.
	RetCUnsupportedOperation                // 2: Operation is not supported by underlying array.
	RetCInvalidOperation                    // 3: Invalid operation.
	RetCOutOfRange                          // 4: Index outside of the array.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCInternalError:
		return "InternalError"
	case RetCUnsupportedOperation:
		return "UnsupportedOperation"
	case RetCInvalidOperation:
		return "InvalidOperation"
	case RetCOutOfRange:
		return "OutOfRange"
	default:
		return "Unknown"
	}
}
