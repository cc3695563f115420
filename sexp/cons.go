package sexp

import (
	"github.com/pkg/errors"
)

// Pair is the behaviour shared by every instantiation of [Cons]. It is sealed:
// only types from this package (or types embedding a [Cons]) satisfy it.
type Pair interface {
	// Select returns the slot chosen by sel. It panics for any selector other
	// than [SelectCar] or [SelectCdr].
	Select(sel Selector) any

	constructed() bool
}

// Cons is an immutable pair of two values. Build one with [New]; the zero
// value is not a pair as far as [IsCons] is concerned.
type Cons[A, B any] struct {
	car  A
	cdr  B
	made bool
}

// New builds a pair holding car and cdr. It never fails.
func New[A, B any](car A, cdr B) Cons[A, B] {
	return Cons[A, B]{car: car, cdr: cdr, made: true}
}

// Car returns the first slot exactly as it was passed to [New].
func (c Cons[A, B]) Car() A { return c.car }

// Cdr returns the second slot exactly as it was passed to [New].
func (c Cons[A, B]) Cdr() B { return c.cdr }

// Select implements [Pair].
func (c Cons[A, B]) Select(sel Selector) any {
	switch sel {
	case SelectCar:
		return c.car
	case SelectCdr:
		return c.cdr
	default:
		panic(errors.Wrapf(ErrUnknownSelector, "selector %s", sel))
	}
}

func (c Cons[A, B]) constructed() bool { return c.made }

// String renders the pair with the default [Printer], e.g. "(1, 2)".
func (c Cons[A, B]) String() string {
	return defaultPrinter.format(c)
}

// MarshalJSON encodes the pair as the two-element array [car, cdr]. It is
// used when a pair sits inside a JSON-encoded container such as a slice,
// map or [Object]. A pair that reaches itself through such a container fails
// with [ErrCycle].
func (c Cons[A, B]) MarshalJSON() ([]byte, error) {
	return marshalJSON([]any{c.car, c.cdr})
}
