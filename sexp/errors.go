package sexp

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors returned by sexp operations.
//
// Use [errors.Is] for comparisons:
//
//	head, err := sexp.Car(v)
//	if errors.Is(err, sexp.ErrNotCons) {
//	    // v was not built by sexp.New
//	}
var (
	// ErrNotCons is matched by every error returned when an operation that
	// requires a pair receives some other value.
	ErrNotCons = errors.New("sexp: argument must be a symbolic expression")

	// ErrUnknownSelector is the panic value (wrapped) raised by
	// [Cons.Select] for a selector other than [SelectCar] or [SelectCdr].
	ErrUnknownSelector = errors.New("sexp: unknown selector")

	// ErrCycle is returned by the MarshalJSON methods of [Cons] and [Object]
	// when a value contains itself. The printer renders such a leaf as the
	// placeholder.
	ErrCycle = errors.New("sexp: value contains itself")
)

// NotConsError reports a value that failed [AssertCons].
type NotConsError struct {
	// Value is the offending value, unchanged.
	Value any

	// Repr is a best-effort rendering of Value: indented JSON, or the Go
	// type name when the value cannot be encoded.
	Repr string
}

func (e *NotConsError) Error() string {
	return fmt.Sprintf("%s, but it was '%s'", ErrNotCons, e.Repr)
}

// Unwrap lets [errors.Is] match [ErrNotCons].
func (e *NotConsError) Unwrap() error { return ErrNotCons }
