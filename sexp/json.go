package sexp

import (
	"bytes"
	"encoding/json"
	"reflect"
	"slices"

	"github.com/pkg/errors"
)

// encodeJSON encodes v without the trailing newline json.Encoder appends.
// An empty indent produces compact output. A panicking MarshalJSON, such as
// one promoted through a nil embedded pointer, is reported as an error.
func encodeJSON(v any, escapeHTML bool, indent string) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, errors.Errorf("sexp: encoding %T panicked: %v", v, r)
		}
	}()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(escapeHTML)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// marshalJSON backs the MarshalJSON methods of Cons and Object. Every nested
// MarshalJSON call starts a fresh encoding/json state, so cycles running
// through those methods are invisible to the encoder's own check. The walker
// encodes pairs, objects, []any and map[string]any itself and remembers which
// of them it is inside.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	w := jsonWalker{active: make(map[container]struct{})}
	if err := w.value(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type jsonWalker struct {
	active map[container]struct{}
}

// container identifies a map by its pointer and a slice by its backing array
// and length, as encoding/json does.
type container struct {
	ptr uintptr
	n   int
}

func (w *jsonWalker) value(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case Object:
		return w.object(buf, x)
	case *Object:
		if x == nil {
			buf.WriteString("null")
			return nil
		}
		return w.object(buf, *x)
	case []any:
		return w.list(buf, x)
	case map[string]any:
		return w.dict(buf, x)
	}
	if p, ok := asPair(v); ok {
		return w.list(buf, []any{p.Select(SelectCar), p.Select(SelectCdr)})
	}
	b, err := encodeJSON(v, false, "")
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// enter marks c as being encoded. The returned func clears the mark.
func (w *jsonWalker) enter(c container) (func(), error) {
	if _, ok := w.active[c]; ok {
		return nil, errors.WithStack(ErrCycle)
	}
	w.active[c] = struct{}{}
	return func() { delete(w.active, c) }, nil
}

func (w *jsonWalker) object(buf *bytes.Buffer, o Object) error {
	if o.values != nil {
		leave, err := w.enter(container{ptr: reflect.ValueOf(o.values).Pointer(), n: -1})
		if err != nil {
			return err
		}
		defer leave()
	}
	return w.members(buf, o.keys, func(k string) any { return o.values[k] })
}

func (w *jsonWalker) dict(buf *bytes.Buffer, m map[string]any) error {
	if m == nil {
		buf.WriteString("null")
		return nil
	}
	leave, err := w.enter(container{ptr: reflect.ValueOf(m).Pointer(), n: -1})
	if err != nil {
		return err
	}
	defer leave()

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return w.members(buf, keys, func(k string) any { return m[k] })
}

func (w *jsonWalker) members(buf *bytes.Buffer, keys []string, get func(string) any) error {
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(k, false, "")
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := w.value(buf, get(k)); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func (w *jsonWalker) list(buf *bytes.Buffer, items []any) error {
	if items == nil {
		buf.WriteString("null")
		return nil
	}
	// Empty slices may share one zero-size allocation.
	if len(items) > 0 {
		leave, err := w.enter(container{ptr: reflect.ValueOf(items).Pointer(), n: len(items)})
		if err != nil {
			return err
		}
		defer leave()
	}
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := w.value(buf, item); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}
