package sexp

import "fmt"

// Object is a string-keyed map that remembers insertion order. In a pair slot
// it renders as a JSON object whose keys appear in the order they were first
// set, where a plain Go map would be rendered with sorted keys.
//
// Unlike a [Cons], an Object is mutable; do not modify one while another
// goroutine renders it.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject builds an [Object] from alternating keys and values. Keys that
// are not strings are converted with fmt.Sprint; a trailing key without a
// value is set to nil.
//
//	obj := sexp.NewObject("b", 1, "a", 2) // renders {"b":1,"a":2}
func NewObject(kv ...any) *Object {
	o := &Object{values: make(map[string]any, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		o.Set(keyString(kv[i]), value)
	}
	return o
}

// Set stores value under key. Updating an existing key keeps its position.
// Set returns o for chaining.
func (o *Object) Set(key string, value any) *Object {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value stored under key and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// MarshalJSON encodes the object with keys in insertion order. An object
// that contains itself fails with [ErrCycle].
func (o Object) MarshalJSON() ([]byte, error) {
	return marshalJSON(o)
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
