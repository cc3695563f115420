package sexp

import (
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// DefaultUndefined is the placeholder written for values that have no JSON
// form.
const DefaultUndefined = "undefined"

// Renderer is implemented by values that supply their own text when they sit
// in a pair slot. The returned text is written verbatim.
type Renderer interface {
	RenderSexp() string
}

// Config holds the options of a [Printer].
type Config struct {
	// Undefined is written for slot values the JSON encoder rejects, such as
	// funcs and channels. Defaults to "undefined" if empty.
	Undefined string

	// EscapeHTML escapes <, > and & inside JSON strings. Off by default so
	// that text renders as written.
	EscapeHTML bool
}

// DefaultConfig returns a [Config] populated with the defaults used by
// [ToString].
func DefaultConfig() Config {
	return Config{Undefined: DefaultUndefined}
}

// Printer renders pairs as "(<car>, <cdr>)". A Printer is immutable and safe
// for concurrent use.
type Printer struct {
	cfg Config
}

var defaultPrinter = NewPrinter(DefaultConfig())

// NewPrinter returns a [Printer] using cfg. Empty fields fall back to the
// values of [DefaultConfig].
func NewPrinter(cfg Config) *Printer {
	if cfg.Undefined == "" {
		cfg.Undefined = DefaultUndefined
	}
	return &Printer{cfg: cfg}
}

// Config returns the configuration the printer was built with, defaults
// applied.
func (p *Printer) Config() Config { return p.cfg }

// ToString renders v with the default [Printer]. It fails with [ErrNotCons]
// when v is not a pair.
//
//	s, _ := sexp.ToString(sexp.New(sexp.New(1, 2), sexp.New("hello", "world")))
//	// s == `((1, 2), ("hello", "world"))`
func ToString(v any) (string, error) {
	return defaultPrinter.Sprint(v)
}

// Sprint renders v. It fails with [ErrNotCons] when v is not a pair.
func (p *Printer) Sprint(v any) (string, error) {
	if err := AssertCons(v); err != nil {
		return "", err
	}
	return p.format(v.(Pair)), nil
}

// Fprint renders v and writes the text to w.
func (p *Printer) Fprint(w io.Writer, v any) error {
	s, err := p.Sprint(v)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Wrap(err, "sexp: write")
	}
	return nil
}

func (p *Printer) format(pair Pair) string {
	var b strings.Builder
	p.writePair(&b, pair)
	return b.String()
}

func (p *Printer) writePair(b *strings.Builder, pair Pair) {
	b.WriteByte('(')
	p.writeSlot(b, pair.Select(SelectCar))
	b.WriteString(", ")
	p.writeSlot(b, pair.Select(SelectCdr))
	b.WriteByte(')')
}

func (p *Printer) writeSlot(b *strings.Builder, v any) {
	if pair, ok := asPair(v); ok {
		p.writePair(b, pair)
		return
	}
	b.WriteString(p.leaf(v))
}

// leaf renders a non-pair slot value with JSON conventions.
func (p *Printer) leaf(v any) string {
	if isNil(v) {
		return "null"
	}
	if r, ok := v.(Renderer); ok {
		return r.RenderSexp()
	}
	if f, ok := asFloat(v); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return "null"
	}
	b, err := encodeJSON(v, p.cfg.EscapeHTML, "")
	if err != nil {
		return p.cfg.Undefined
	}
	return string(b)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
