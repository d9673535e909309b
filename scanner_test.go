package rlisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAtoms(t *testing.T) {
	toks, err := Scan("( ) 42 -7 1.5 .5 5. 1e10 1.5e-3 #t #f \"hi\" foo +bar -bar")
	require.NoError(t, err)
	want := []TokType{
		TokOpenParen, TokClosedParen,
		TokInt, TokInt,
		TokFloat, TokFloat, TokFloat, TokFloat, TokFloat,
		TokBool, TokBool,
		TokStr,
		TokSymbol, TokSymbol, TokSymbol,
	}
	require.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w, toks[i].Type, "token %d: %+v", i, toks[i])
	}
}

func TestScanNumberValues(t *testing.T) {
	toks, err := Scan("42 -7 1.5 1e2")
	require.NoError(t, err)
	assert.Equal(t, int64(42), toks[0].I)
	assert.Equal(t, int64(-7), toks[1].I)
	assert.Equal(t, 1.5, toks[2].F)
	assert.Equal(t, 100.0, toks[3].F)
}

func TestScanSignAloneIsSymbol(t *testing.T) {
	toks, err := Scan("+ - +x")
	require.NoError(t, err)
	for i, tok := range toks {
		assert.Equal(t, TokSymbol, tok.Type, "token %d", i)
	}
}

func TestScanStringLiteral(t *testing.T) {
	toks, err := Scan(`"hello world"`)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, TokStr, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].S)
}

func TestScanMissingQuote(t *testing.T) {
	_, err := Scan(`"unterminated`)
	assert.Error(t, err)
	_, err = Scan("\"split\nline\"")
	assert.Error(t, err, "a newline inside a string literal should fail")
}

func TestScanBadHash(t *testing.T) {
	_, err := Scan("#xyz")
	assert.Error(t, err)
}

func TestScanLineTracking(t *testing.T) {
	toks, err := Scan("a\nb\n\nc")
	require.NoError(t, err)
	wantLines := []int{1, 2, 4}
	for i, want := range wantLines {
		assert.Equal(t, want, toks[i].Line, "token %d", i)
	}
}
