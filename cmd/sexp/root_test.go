package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sexp/sexp"
	"github.com/hasbyte1/go-sexp/sexp/literal"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPrintCommand(t *testing.T) {
	t.Parallel()
	out, err := run(t, "print", "!cons [10, -10]", "!cons [!cons [3, 5], !cons [1, null]]")
	require.NoError(t, err)
	assert.Equal(t, "(10, -10)\n((3, 5), (1, null))\n", out)
}

func TestPrintCommandRejectsNonPairs(t *testing.T) {
	t.Parallel()
	for _, arg := range []string{"345", "asdf", "{key: value}"} {
		_, err := run(t, "print", arg)
		assert.ErrorIs(t, err, sexp.ErrNotCons, arg)
	}
}

func TestPrintCommandBadLiteral(t *testing.T) {
	t.Parallel()
	_, err := run(t, "print", "!cons [1]")
	assert.ErrorIs(t, err, literal.ErrBadCons)
}

func TestPrintCommandNeedsArgs(t *testing.T) {
	t.Parallel()
	_, err := run(t, "print")
	assert.Error(t, err)
}

func TestPairCommand(t *testing.T) {
	t.Parallel()
	out, err := run(t, "pair", "[1]", "{key: value}")
	require.NoError(t, err)
	assert.Equal(t, "([1], {\"key\":\"value\"})\n", out)

	out, err = run(t, "pair", "!cons [1, 2]", `"a"`)
	require.NoError(t, err)
	assert.Equal(t, "((1, 2), \"a\")\n", out)

	_, err = run(t, "pair", "1")
	assert.Error(t, err)
}

func TestChainCommand(t *testing.T) {
	t.Parallel()
	out, err := run(t, "chain", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "(1, (2, (3, null)))\n", out)

	out, err = run(t, "chain", "--dotted", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "(\"a\", (\"b\", \"c\"))\n", out)

	_, err = run(t, "chain", "-d", "a")
	assert.ErrorIs(t, err, errDottedTooShort)
}

func TestChainDepth(t *testing.T) {
	t.Parallel()
	args := []string{"chain"}
	for i := 0; i < 25; i++ {
		args = append(args, "x")
	}
	out, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, 25, strings.Count(out, "("))
	assert.Equal(t, 25, strings.Count(out, ")"))
}

func TestPersistentFlags(t *testing.T) {
	t.Parallel()
	out, err := run(t, "--escape-html", "pair", `"<b>"`, "1")
	require.NoError(t, err)
	assert.Equal(t, "(\"\\u003cb\\u003e\", 1)\n", out)

	out, err = run(t, "pair", `"<b>"`, "1")
	require.NoError(t, err)
	assert.Equal(t, "(\"<b>\", 1)\n", out)
}

func TestOptionsPrinter(t *testing.T) {
	t.Parallel()
	p := (&options{undefined: "#<fn>"}).printer()
	s, err := p.Sprint(sexp.New(func() {}, 1))
	require.NoError(t, err)
	assert.Equal(t, "(#<fn>, 1)", s)

	p = (&options{}).printer()
	assert.Equal(t, sexp.DefaultUndefined, p.Config().Undefined)
}

func TestBuildChain(t *testing.T) {
	t.Parallel()
	v, err := buildChain([]any{1}, false)
	require.NoError(t, err)
	s, err := sexp.ToString(v)
	require.NoError(t, err)
	assert.Equal(t, "(1, null)", s)

	v, err = buildChain([]any{1, 2}, true)
	require.NoError(t, err)
	s, err = sexp.ToString(v)
	require.NoError(t, err)
	assert.Equal(t, "(1, 2)", s)
}

func TestEvalLine(t *testing.T) {
	t.Parallel()
	p := sexp.NewPrinter(sexp.DefaultConfig())

	out, quit, err := evalLine(p, "  !cons [1, !cons [2, null]]  ")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, "(1, (2, null))", out)

	out, quit, err = evalLine(p, "   ")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Empty(t, out)

	_, quit, err = evalLine(p, ":quit")
	require.NoError(t, err)
	assert.True(t, quit)

	_, quit, err = evalLine(p, ":help")
	assert.Error(t, err)
	assert.False(t, quit)

	_, _, err = evalLine(p, "42")
	assert.ErrorIs(t, err, sexp.ErrNotCons)

	_, _, err = evalLine(p, "[1,")
	assert.Error(t, err)

	_, quit, err = evalLine(p, "&a !cons [1, *a]")
	assert.ErrorIs(t, err, literal.ErrAliasCycle)
	assert.False(t, quit)
}
