package sexp_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sexp/sexp"
)

func TestObjectKeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	o := sexp.NewObject().Set("zeta", 1).Set("alpha", 2).Set("mid", 3)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, o.Keys())
	assert.Equal(t, 3, o.Len())

	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":2,"mid":3}`, string(b))
}

func TestObjectUpdateKeepsPosition(t *testing.T) {
	t.Parallel()
	o := sexp.NewObject("a", 1, "b", 2)
	o.Set("a", "changed")

	v, ok := o.Get("a")
	require.True(t, ok)
	assert.Equal(t, "changed", v)
	assert.Equal(t, []string{"a", "b"}, o.Keys())

	_, ok = o.Get("missing")
	assert.False(t, ok)
}

func TestNewObjectOddArgs(t *testing.T) {
	t.Parallel()
	o := sexp.NewObject("a", 1, 7)
	assert.Equal(t, []string{"a", "7"}, o.Keys())
	v, ok := o.Get("7")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestObjectKeysIsCopy(t *testing.T) {
	t.Parallel()
	o := sexp.NewObject("a", 1)
	keys := o.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a"}, o.Keys())
}

func TestObjectZeroValue(t *testing.T) {
	t.Parallel()
	var o sexp.Object
	assert.Equal(t, 0, o.Len())
	o.Set("k", true)
	assert.Equal(t, 1, o.Len())

	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"k":true}`, string(b))
}

func TestObjectNestedValues(t *testing.T) {
	t.Parallel()
	inner := sexp.NewObject("readonly", true, "html", "<i>")
	o := sexp.NewObject("accessor", inner, "pair", sexp.New(1, "x"))
	s := mustString(t, sexp.New[*sexp.Object, any](o, nil))
	assert.Equal(t, `({"accessor":{"readonly":true,"html":"<i>"},"pair":[1,"x"]}, null)`, s)
}

func TestObjectUnencodableValue(t *testing.T) {
	t.Parallel()
	o := sexp.NewObject("fn", func() {})
	_, err := json.Marshal(o)
	assert.Error(t, err)
	assert.Equal(t, "(undefined, 1)", mustString(t, sexp.New(o, 1)))
}

func TestObjectCycle(t *testing.T) {
	t.Parallel()
	o := sexp.NewObject("a", 1)
	o.Set("self", sexp.NewObject("back", o))

	_, err := json.Marshal(o)
	assert.ErrorIs(t, err, sexp.ErrCycle)
	assert.Equal(t, "(undefined, 1)", mustString(t, sexp.New(o, 1)))
}

func TestObjectSharedValueIsNotACycle(t *testing.T) {
	t.Parallel()
	shared := sexp.NewObject("k", 1)
	list := []any{shared}
	o := sexp.NewObject("x", shared, "y", shared, "l", list, "m", list)

	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"x":{"k":1},"y":{"k":1},"l":[{"k":1}],"m":[{"k":1}]}`, string(b))
}
