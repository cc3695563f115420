// Package sexp provides an immutable pair ("cons cell") in the style of Lisp
// symbolic expressions, together with the classic accessors and a structural
// printer.
//
// # Building pairs
//
// [New] builds a [Cons] from any two values. Pairs nest freely, so trees and
// right-nested chains are just pairs of pairs:
//
//	p := sexp.New(sexp.New(3, 5), sexp.New[int, any](1, nil))
//	p.Car().Cdr()           // → 5
//	sexp.ToString(p)        // → "((3, 5), (1, null))", nil
//
// A [Cons] has no exported fields and no setters: once built, its two slots
// never change. Values are safe to share across goroutines without locking.
//
// # Typed and untyped access
//
// Inside Go code the compiler already knows a [Cons] is a pair, and the
// methods [Cons.Car] and [Cons.Cdr] return the typed slots directly.
//
// Values that arrive through an untyped boundary (any, decoded input, plugin
// code) are checked at runtime instead:
//
//   - [IsCons]: reports whether a value is a pair built by [New]
//   - [AssertCons]: returns [ErrNotCons] when it is not
//   - [Car], [Cdr]: assert, then read a slot
//   - [ToString]: assert, then render
//
// Every failure is a [*NotConsError] that matches [ErrNotCons] under
// [errors.Is].
//
// # Rendering
//
// Pairs render as "(<car>, <cdr>)". Nested pairs recurse; every other slot
// value is rendered with JSON conventions. Values that cannot be expressed as
// JSON (funcs, channels, complex numbers) render as a placeholder, "undefined"
// by default. The placeholder replaces the whole slot: a slice or map holding
// a single unencodable element renders as the placeholder, not as a partial
// array with null in its place. A value can take over its own rendering by implementing
// [Renderer], and [Object] keeps map-like leaves in insertion order.
//
// Use a [Printer] built from a [Config] to change the placeholder or to turn
// on HTML escaping.
//
// # Limitations
//
// Pairs themselves cannot form a cycle, but a mutable container that later
// receives the pair holding it can. Cycles through an [Object], a []any or a
// map[string]any are detected and fail with [ErrCycle], so the slot renders
// as the placeholder. A cycle that runs through a struct field or a typed
// container of your own is not detected and recurses until the stack runs
// out.
package sexp
