package rlisp

// Kind tags the variant of a Value.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindSym
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "string"
	case KindSym:
		return "symbol"
	case KindRef:
		return "ref"
	default:
		return "unknown"
	}
}

// Value is an s-expression: either an atom carried by value, or a Ref
// naming a cell in the Heap. Values are small and trivially copyable;
// equality on atoms is structural, equality on Refs is by address.
type Value struct {
	Kind Kind
	Bool bool
	Int  int64
	Flt  float64
	Str  string // payload for both Str and Sym
	Addr int    // payload for Ref
}

func Nil() Value               { return Value{Kind: KindNil} }
func BoolVal(b bool) Value     { return Value{Kind: KindBool, Bool: b} }
func IntVal(i int64) Value     { return Value{Kind: KindInt, Int: i} }
func FloatVal(f float64) Value { return Value{Kind: KindFloat, Flt: f} }
func StrVal(s string) Value    { return Value{Kind: KindStr, Str: s} }
func SymVal(s string) Value    { return Value{Kind: KindSym, Str: s} }
func RefVal(addr int) Value    { return Value{Kind: KindRef, Addr: addr} }

func (v Value) IsNil() bool { return v.Kind == KindNil }
func (v Value) IsRef() bool { return v.Kind == KindRef }
func (v Value) IsSym() bool { return v.Kind == KindSym }
func (v Value) IsNumber() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// Truthy implements the language's truthiness law: only #f is falsy.
func (v Value) Truthy() bool {
	return !(v.Kind == KindBool && !v.Bool)
}

// AsFloat widens an Int or Float Value to float64; it panics (a
// programmer error, not a user-facing one) if v is not numeric.
func (v Value) AsFloat() float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.Int)
	case KindFloat:
		return v.Flt
	default:
		panic("AsFloat on non-numeric Value")
	}
}

// ObjKind tags the variant of a heap Object.
type ObjKind int

const (
	ObjPair ObjKind = iota
	ObjPrimitive
	ObjCompound
	ObjEnv
	ObjEmpty
)

// PrimTag enumerates the built-in procedures. Each is bound to its
// conventional symbol in the root environment by NewInterpreter.
type PrimTag int

const (
	PrimAdd PrimTag = iota
	PrimSub
	PrimMul
	PrimDiv
	PrimEql
	PrimLt
	PrimLte
	PrimGt
	PrimGte
)

func (t PrimTag) String() string {
	switch t {
	case PrimAdd:
		return "+"
	case PrimSub:
		return "-"
	case PrimMul:
		return "*"
	case PrimDiv:
		return "/"
	case PrimEql:
		return "="
	case PrimLt:
		return "<"
	case PrimLte:
		return "<="
	case PrimGt:
		return ">"
	case PrimGte:
		return ">="
	default:
		return "?"
	}
}

// Object is a heap cell. Exactly one of its payload groups is
// meaningful, selected by Kind:
//
//	ObjPair      -> Car, Cdr
//	ObjPrimitive -> Prim
//	ObjCompound  -> Defn (a Ref to a 3-element (params body env) list)
//	ObjEnv       -> Frame, Enclosing
//	ObjEmpty     -> Next (index of the next free slot, or endOfFreeList)
type Object struct {
	Kind ObjKind

	Car, Cdr Value

	Prim PrimTag

	Defn Value

	Frame     map[string]Value
	Enclosing Value

	Next int
}

// endOfFreeList marks the tail of the heap's free list.
const endOfFreeList = -1
