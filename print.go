package rlisp

import (
	"strconv"
	"strings"
)

// Print renders v as the implementation's printed representation.
// Atoms print per §6 of the language's external contract; pairs print
// as a space-separated list, or as a dotted pair when the chain does
// not terminate in Nil.
func (h *Heap) Print(v Value) string {
	var b strings.Builder
	h.buildString(&b, v)
	return b.String()
}

func (h *Heap) buildString(b *strings.Builder, v Value) {
	switch v.Kind {
	case KindNil:
		b.WriteString("()")
	case KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.Flt, 'g', -1, 64))
	case KindStr:
		b.WriteString(v.Str)
	case KindSym:
		b.WriteString(v.Str)
	case KindRef:
		h.buildRef(b, v)
	}
}

func (h *Heap) buildRef(b *strings.Builder, v Value) {
	obj, ok := h.object(v)
	if !ok {
		b.WriteString("()")
		return
	}
	switch obj.Kind {
	case ObjPair:
		h.buildPair(b, v)
	case ObjPrimitive:
		b.WriteString("#<primitive:" + obj.Prim.String() + ">")
	case ObjCompound:
		b.WriteString("#<procedure>")
	case ObjEnv:
		b.WriteString("#<environment>")
	default:
		b.WriteString("#<empty>")
	}
}

// buildPair prints a pair as a proper list when its cdr chain
// terminates in Nil, or as a dotted pair otherwise.
func (h *Heap) buildPair(b *strings.Builder, v Value) {
	b.WriteByte('(')
	cur := v
	first := true
	for {
		obj, ok := h.object(cur)
		if !ok || obj.Kind != ObjPair {
			break
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		h.buildString(b, obj.Car)
		next := obj.Cdr
		if next.IsNil() {
			b.WriteByte(')')
			return
		}
		if nextObj, ok := h.object(next); ok && nextObj.Kind == ObjPair {
			cur = next
			continue
		}
		b.WriteString(" . ")
		h.buildString(b, next)
		b.WriteByte(')')
		return
	}
	b.WriteByte(')')
}
