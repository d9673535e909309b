package rlisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInterpreterSeedsPrimitives(t *testing.T) {
	in := NewInterpreter(256)
	for _, name := range []string{"+", "-", "*", "/", "=", "<", "<=", ">", ">="} {
		_, err := in.Heap.EnvLookup(in.Root, name)
		assert.NoError(t, err, "primitive %q not bound in root environment", name)
	}
}

func TestInterpretersDoNotShareState(t *testing.T) {
	a := NewInterpreter(256)
	b := NewInterpreter(256)
	evalStr(t, a, "(define x 1)")
	evalStr(t, b, "(define x 2)")
	assert.Equal(t, IntVal(1), evalStr(t, a, "x"))
	assert.Equal(t, IntVal(2), evalStr(t, b, "x"))
}

func TestEvalStringMultipleCalls(t *testing.T) {
	in := NewInterpreter(1024)
	evalStr(t, in, "(define counter 0)")
	for i := 1; i <= 3; i++ {
		evalStr(t, in, "(set! counter (+ counter 1))")
	}
	assert.Equal(t, IntVal(3), evalStr(t, in, "counter"))
}

func TestPrintedRepresentation(t *testing.T) {
	in := NewInterpreter(256)
	cases := []struct{ src, want string }{
		{"42", "42"},
		{"1.5", "1.5"},
		{"#t", "true"},
		{"#f", "false"},
		{"()", "()"},
		{"\"hi\"", "hi"},
		{"(quote foo)", "foo"},
		{"(quote (1 2 3))", "(1 2 3)"},
	}
	for _, c := range cases {
		v := evalStr(t, in, c.src)
		assert.Equal(t, c.want, in.Print(v), "Print(eval(%q))", c.src)
	}
}
