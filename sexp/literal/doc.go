// Package literal reads pair literals written as YAML (or JSON, which YAML
// accepts) into values the sexp package can render.
//
// A two-item sequence tagged !cons becomes a pair; everything else maps onto
// plain Go values:
//
//	v, _ := literal.Parse(`!cons [!cons [3, 5], !cons [1, null]]`)
//	sexp.ToString(v) // → "((3, 5), (1, null))", nil
//
//	v, _ = literal.Parse(`!cons [{b: 1, a: 2}, [x, "y"]]`)
//	sexp.ToString(v) // → `({"b":1,"a":2}, ["x","y"])`, nil
//
// Mappings decode to [*sexp.Object] so their keys render in document order.
// This package only reads input; it does not parse the "(car, cdr)" text that
// sexp produces.
package literal
