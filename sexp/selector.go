package sexp

import "strconv"

// Selector chooses which slot of a pair [Cons.Select] reads.
// The zero value selects nothing.
type Selector uint8

const (
	// SelectCar selects the first slot.
	SelectCar Selector = iota + 1
	// SelectCdr selects the second slot.
	SelectCdr
)

func (s Selector) String() string {
	switch s {
	case SelectCar:
		return "car"
	case SelectCdr:
		return "cdr"
	default:
		return "Selector(" + strconv.Itoa(int(s)) + ")"
	}
}
