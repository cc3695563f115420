package sexp

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// IsCons reports whether v is a pair built by [New], either as a [Cons] value
// or a non-nil pointer to one. It never panics.
//
//	sexp.IsCons(sexp.New(5, "hello"))                   // → true
//	sexp.IsCons(struct{ Car, Cdr int }{5, 6})           // → false
//	sexp.IsCons(sexp.Cons[int, int]{})                  // → false
func IsCons(v any) bool {
	_, ok := asPair(v)
	return ok
}

// AssertCons returns nil when v satisfies [IsCons], and a [*NotConsError]
// carrying a stack trace otherwise.
//
//	err := sexp.AssertCons(map[string]int{"car": 5})
//	// err: sexp: argument must be a symbolic expression, but it was '{
//	//     "car": 5
//	// }'
func AssertCons(v any) error {
	if IsCons(v) {
		return nil
	}
	return errors.WithStack(&NotConsError{Value: v, Repr: describe(v)})
}

func asPair(v any) (Pair, bool) {
	p, ok := v.(Pair)
	if !ok {
		return nil, false
	}
	// Value-receiver methods dereference the pointer.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	if !constructed(p) {
		return nil, false
	}
	return p, true
}

// constructed reports false instead of panicking when p reaches its Cons
// through a nil embedded pointer.
func constructed(p Pair) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return p.constructed()
}

func describe(v any) string {
	b, err := encodeJSON(v, false, "    ")
	if err != nil {
		return fmt.Sprintf("%T", v)
	}
	return string(b)
}
