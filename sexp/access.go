package sexp

// Car returns the first slot of v. It fails with [ErrNotCons] when v is not a
// pair; see [AssertCons].
//
//	five, err := sexp.Car(sexp.New(5, "hello")) // → 5, nil
func Car(v any) (any, error) {
	return slot(v, SelectCar)
}

// Cdr returns the second slot of v. It fails with [ErrNotCons] when v is not a
// pair; see [AssertCons].
//
//	hello, err := sexp.Cdr(sexp.New(5, "hello")) // → "hello", nil
func Cdr(v any) (any, error) {
	return slot(v, SelectCdr)
}

func slot(v any, sel Selector) (any, error) {
	if err := AssertCons(v); err != nil {
		return nil, err
	}
	return v.(Pair).Select(sel), nil
}
