package rlisp

// Interpreter holds the state of one evaluation session: a Heap and
// its root environment, seeded with the primitive procedures bound to
// their conventional symbols.
type Interpreter struct {
	Heap *Heap
	Root Value
}

// NewInterpreter creates an interpreter whose heap has room for
// heapCapacity objects. The root environment is seeded with the
// arithmetic and comparison primitives.
func NewInterpreter(heapCapacity int) *Interpreter {
	h := NewHeap(heapCapacity)
	root := h.NewEnv(Nil())
	in := &Interpreter{Heap: h, Root: root}
	for tag, name := range primitiveNames {
		proc := h.Alloc(Object{Kind: ObjPrimitive, Prim: tag})
		if err := h.EnvInsert(root, name, proc); err != nil {
			// Cannot fail: root was just allocated as a fresh Env.
			fatalf("seeding primitive %s: %v", name, err)
		}
	}
	return in
}

// EvalString scans, parses, and evaluates a single expression read
// from source, returning its value or the first error encountered.
func (in *Interpreter) EvalString(source string) (v Value, err error) {
	defer recoverError(&err)
	toks, scanErr := Scan(source)
	if scanErr != nil {
		return Nil(), scanErr
	}
	p := NewParser(in.Heap, toks)
	expr, parseErr := p.Parse()
	if parseErr != nil {
		return Nil(), parseErr
	}
	return in.eval(expr, in.Root), nil
}

// Print renders v using the interpreter's heap (needed to follow Refs).
func (in *Interpreter) Print(v Value) string {
	return in.Heap.Print(v)
}
