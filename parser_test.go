package rlisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, h *Heap, source string) Value {
	t.Helper()
	toks, err := Scan(source)
	require.NoError(t, err, "Scan(%q)", source)
	v, err := NewParser(h, toks).Parse()
	require.NoError(t, err, "Parse(%q)", source)
	return v
}

func TestParseAtoms(t *testing.T) {
	h := NewHeap(64)
	assert.Equal(t, IntVal(42), parse(t, h, "42"))
	assert.Equal(t, FloatVal(1.5), parse(t, h, "1.5"))
	assert.Equal(t, BoolVal(true), parse(t, h, "#t"))
	assert.Equal(t, SymVal("foo"), parse(t, h, "foo"))
	assert.True(t, parse(t, h, "()").IsNil())
}

func TestParseListRoundTrip(t *testing.T) {
	h := NewHeap(256)
	cases := []string{
		"(1 2 3)",
		"(a (b c) d)",
		"()",
		"(+ 1 2)",
	}
	for _, src := range cases {
		v := parse(t, h, src)
		got := h.Print(v)
		// Re-parse the printed form and confirm it reprints identically
		// (printed output uses canonical spacing, so this is the
		// round-trip property the printer guarantees).
		v2 := parse(t, h, got)
		got2 := h.Print(v2)
		assert.Equal(t, got, got2, "round trip of %q", src)
	}
}

func TestParseMissingCloseParen(t *testing.T) {
	h := NewHeap(64)
	toks, _ := Scan("(+ 1")
	_, err := NewParser(h, toks).Parse()
	assert.Error(t, err)
}

func TestParseStrayCloseParen(t *testing.T) {
	h := NewHeap(64)
	toks, _ := Scan(")")
	_, err := NewParser(h, toks).Parse()
	assert.Error(t, err)
}

func TestParseNestedLists(t *testing.T) {
	h := NewHeap(256)
	v := parse(t, h, "(a (b (c d)) e)")
	assert.Equal(t, "(a (b (c d)) e)", h.Print(v))
}
