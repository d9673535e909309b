package rlisp

// Heap is a fixed-capacity arena of Objects. "Pointers" between heap
// objects are plain integer indices (Value.Addr), so cycles between an
// environment and a closure that captures it cost nothing to represent
// and nothing to collect: the arena's lifetime is the program's, and
// there is no reclamation. Capacity is fixed at construction; running
// past it is a FatalError, not a recoverable one.
type Heap struct {
	cells []Object
	first int // head of the free list, or endOfFreeList
}

// NewHeap allocates an arena of the given capacity. Every slot starts
// as an Empty cell chained into the free list in order, so the first
// Alloc returns address 0.
func NewHeap(capacity int) *Heap {
	cells := make([]Object, capacity)
	for i := range cells {
		next := i + 1
		if i == capacity-1 {
			next = endOfFreeList
		}
		cells[i] = Object{Kind: ObjEmpty, Next: next}
	}
	first := endOfFreeList
	if capacity > 0 {
		first = 0
	}
	return &Heap{cells: cells, first: first}
}

// Alloc takes the head of the free list, overwrites it with obj, and
// returns a Ref to its address. It is fatal to allocate once the free
// list is exhausted.
func (h *Heap) Alloc(obj Object) Value {
	if h.first == endOfFreeList {
		fatalf("heap exhausted: out of free cells")
	}
	idx := h.first
	cell := h.cells[idx]
	if cell.Kind != ObjEmpty {
		fatalf("free-list corruption: head %d is not empty", idx)
	}
	h.first = cell.Next
	h.cells[idx] = obj
	return RefVal(idx)
}

// Cons allocates a new pair cell.
func (h *Heap) Cons(a, b Value) Value {
	return h.Alloc(Object{Kind: ObjPair, Car: a, Cdr: b})
}

// object dereferences a Ref, fataling on a reference to a free cell
// (an invariant violation) and returning ok=false for any non-Ref.
func (h *Heap) object(v Value) (*Object, bool) {
	if v.Kind != KindRef {
		return nil, false
	}
	if v.Addr < 0 || v.Addr >= len(h.cells) {
		fatalf("dangling ref: address %d out of range", v.Addr)
	}
	obj := &h.cells[v.Addr]
	if obj.Kind == ObjEmpty {
		fatalf("dereference of empty heap cell at address %d", v.Addr)
	}
	return obj, true
}

func (h *Heap) pair(v Value) (*Object, error) {
	obj, ok := h.object(v)
	if !ok || obj.Kind != ObjPair {
		return nil, EvalError("type error: expected a pair")
	}
	return obj, nil
}

// Car returns the car of a pair; a type error if v is not a Ref to a Pair.
func (h *Heap) Car(v Value) (Value, error) {
	p, err := h.pair(v)
	if err != nil {
		return Nil(), err
	}
	return p.Car, nil
}

// Cdr returns the cdr of a pair; a type error if v is not a Ref to a Pair.
func (h *Heap) Cdr(v Value) (Value, error) {
	p, err := h.pair(v)
	if err != nil {
		return Nil(), err
	}
	return p.Cdr, nil
}

// SetCar mutates the car of a pair in place.
func (h *Heap) SetCar(v, x Value) error {
	p, err := h.pair(v)
	if err != nil {
		return err
	}
	p.Car = x
	return nil
}

// SetCdr mutates the cdr of a pair in place. ListFromVec, and through
// it the parser, relies on this: it conses a cell with cdr = Nil and
// wires it to its successor once that successor exists.
func (h *Heap) SetCdr(v, x Value) error {
	p, err := h.pair(v)
	if err != nil {
		return err
	}
	p.Cdr = x
	return nil
}

// ListFromVec builds a proper list from vs, left to right. An empty
// vs yields Nil.
func (h *Heap) ListFromVec(vs []Value) Value {
	if len(vs) == 0 {
		return Nil()
	}
	head := h.Cons(vs[0], Nil())
	tail := head
	for _, v := range vs[1:] {
		cell := h.Cons(v, Nil())
		// SetCdr cannot fail: tail was just produced by Cons.
		_ = h.SetCdr(tail, cell)
		tail = cell
	}
	return head
}

// VecFromList walks a proper list and collects its elements. A type
// error is returned if any cdr in the chain is neither Pair nor Nil.
func (h *Heap) VecFromList(v Value) ([]Value, error) {
	var vs []Value
	cur := v
	for {
		if cur.IsNil() {
			return vs, nil
		}
		p, err := h.pair(cur)
		if err != nil {
			return nil, EvalError("type error: improper list")
		}
		vs = append(vs, p.Car)
		cur = p.Cdr
	}
}

// NthCdr walks cdr n times, failing with a type error on an improper prefix.
func (h *Heap) NthCdr(v Value, n int) (Value, error) {
	cur := v
	for i := 0; i < n; i++ {
		next, err := h.Cdr(cur)
		if err != nil {
			return Nil(), err
		}
		cur = next
	}
	return cur, nil
}

// NewEnv allocates a fresh environment frame enclosed by `enclosing`,
// which must be Nil (the root) or a Ref to another Env object.
func (h *Heap) NewEnv(enclosing Value) Value {
	return h.Alloc(Object{
		Kind:      ObjEnv,
		Frame:     make(map[string]Value),
		Enclosing: enclosing,
	})
}

func (h *Heap) env(v Value) (*Object, error) {
	if v.IsNil() {
		return nil, nil
	}
	obj, ok := h.object(v)
	if !ok || obj.Kind != ObjEnv {
		return nil, EvalError("type error: not an environment")
	}
	return obj, nil
}

// EnvLookup walks the environment chain starting at env, returning the
// first binding for key. It fails with "unbound variable" if the chain
// is exhausted.
func (h *Heap) EnvLookup(env Value, key string) (Value, error) {
	cur := env
	for {
		frame, err := h.env(cur)
		if err != nil {
			return Nil(), err
		}
		if frame == nil {
			return Nil(), EvalError("unbound variable: " + key)
		}
		if val, ok := frame.Frame[key]; ok {
			return val, nil
		}
		cur = frame.Enclosing
	}
}

// EnvInsert adds or overwrites key in the frame at env directly,
// without walking the enclosing chain.
func (h *Heap) EnvInsert(env Value, key string, val Value) error {
	frame, err := h.env(env)
	if err != nil {
		return err
	}
	if frame == nil {
		return EvalError("type error: cannot define in nil environment")
	}
	frame.Frame[key] = val
	return nil
}

// EnvSet finds the innermost frame on the chain that already binds
// key and overwrites it there. It fails with "unbound variable" if no
// frame binds key.
func (h *Heap) EnvSet(env Value, key string, val Value) error {
	cur := env
	for {
		frame, err := h.env(cur)
		if err != nil {
			return err
		}
		if frame == nil {
			return EvalError("unbound variable: " + key)
		}
		if _, ok := frame.Frame[key]; ok {
			frame.Frame[key] = val
			return nil
		}
		cur = frame.Enclosing
	}
}
