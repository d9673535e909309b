package rlisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	truthy := []Value{
		BoolVal(true), Nil(), IntVal(0), StrVal(""), IntVal(1), FloatVal(0),
	}
	for _, v := range truthy {
		assert.True(t, v.Truthy(), "%#v should be truthy", v)
	}
	assert.False(t, BoolVal(false).Truthy(), "#f should be falsy")
}

func TestAsFloat(t *testing.T) {
	assert.Equal(t, 3.0, IntVal(3).AsFloat())
	assert.Equal(t, 1.5, FloatVal(1.5).AsFloat())
}
