package rlisp

// Special-form keywords. These are matched by literal symbol name at
// the head of a pair; they are not values and user code cannot rebind
// them by defining a variable of the same name in an enclosing scope,
// since the evaluator checks for them before ever resolving the head
// as a variable.
const (
	kwQuote  = "quote"
	kwSet    = "set!"
	kwDefine = "define"
	kwIf     = "if"
	kwBegin  = "begin"
	kwLambda = "lambda"
	kwCond   = "cond"
)

var specialForms = map[string]bool{
	kwQuote: true, kwSet: true, kwDefine: true, kwIf: true,
	kwBegin: true, kwLambda: true, kwCond: true,
}

// Eval evaluates e in env, dispatching on its shape as described in
// the evaluator's shape table: atoms return themselves, symbols
// resolve through the environment chain, special forms get their own
// evaluation rule, and any other pair is a procedure application.
func (in *Interpreter) Eval(e Value, env Value) (v Value, err error) {
	defer recoverError(&err)
	return in.eval(e, env), nil
}

func (in *Interpreter) eval(e Value, env Value) Value {
	h := in.Heap
	switch e.Kind {
	case KindInt, KindFloat, KindBool, KindStr, KindNil:
		return e
	case KindSym:
		val, err := h.EnvLookup(env, e.Str)
		if err != nil {
			panic(EvalError(err.Error()))
		}
		return val
	case KindRef:
		obj, ok := h.object(e)
		if !ok {
			return e
		}
		if obj.Kind != ObjPair {
			return e
		}
		return in.evalPair(e, obj, env)
	}
	errorf("cannot evaluate value of kind %s", e.Kind)
	panic("unreachable")
}

func (in *Interpreter) evalPair(e Value, pair *Object, env Value) Value {
	if head := pair.Car; head.IsSym() && specialForms[head.Str] {
		return in.evalSpecialForm(head.Str, pair.Cdr, env)
	}
	return in.apply(in.eval(pair.Car, env), pair.Cdr, env)
}

func (in *Interpreter) evalSpecialForm(kw string, operands Value, env Value) Value {
	h := in.Heap
	switch kw {
	case kwQuote:
		x, err := h.Car(operands)
		if err != nil {
			errorf("ill-formed quote: %v", err)
		}
		return x

	case kwSet:
		name, valExpr := in.two(operands, "set!")
		sym := symOf(name, "set!: first operand must be a symbol")
		val := in.eval(valExpr, env)
		if err := h.EnvSet(env, sym, val); err != nil {
			errorf("%v", err)
		}
		return Nil()

	case kwDefine:
		return in.evalDefine(operands, env)

	case kwIf:
		return in.evalIf(operands, env)

	case kwBegin:
		return in.evalBegin(operands, env)

	case kwLambda:
		return in.makeLambda(operands, env)

	case kwCond:
		return in.evalCond(operands, env)
	}
	errorf("unknown special form %q", kw)
	panic("unreachable")
}

// two returns the first two elements of operands, failing if there are
// not exactly two.
func (in *Interpreter) two(operands Value, form string) (Value, Value) {
	vs, err := in.Heap.VecFromList(operands)
	if err != nil || len(vs) != 2 {
		errorf("ill-formed %s: expected 2 operands", form)
	}
	return vs[0], vs[1]
}

func symOf(v Value, msg string) string {
	if !v.IsSym() {
		errorf("%s", msg)
	}
	return v.Str
}

// evalDefine implements both shapes of `define`:
//
//	(define NAME EXPR)
//	(define (NAME PARAM...) BODY...)  -- sugar for (define NAME (lambda (PARAM...) BODY...))
func (in *Interpreter) evalDefine(operands Value, env Value) Value {
	h := in.Heap
	head, err := h.Car(operands)
	if err != nil {
		errorf("ill-formed define")
	}
	if head.IsRef() {
		// (define (NAME PARAM...) BODY...)
		obj, ok := h.object(head)
		if !ok || obj.Kind != ObjPair {
			errorf("ill-formed define: bad signature")
		}
		name := symOf(obj.Car, "ill-formed define: function name must be a symbol")
		params := obj.Cdr
		body, err := h.Cdr(operands)
		if err != nil {
			errorf("ill-formed define")
		}
		lambdaExpr := h.Cons(params, body)
		proc := in.makeLambda(lambdaExpr, env)
		if err := h.EnvInsert(env, name, proc); err != nil {
			errorf("%v", err)
		}
		return SymVal(name)
	}
	name := symOf(head, "ill-formed define: name must be a symbol")
	valExpr, err := h.Car(mustCdr(h, operands))
	if err != nil {
		errorf("ill-formed define")
	}
	val := in.eval(valExpr, env)
	if err := h.EnvInsert(env, name, val); err != nil {
		errorf("%v", err)
	}
	return SymVal(name)
}

func mustCdr(h *Heap, v Value) Value {
	x, err := h.Cdr(v)
	if err != nil {
		errorf("%v", err)
	}
	return x
}

// evalIf requires exactly three operands: COND, THEN, ELSE.
func (in *Interpreter) evalIf(operands Value, env Value) Value {
	vs, err := in.Heap.VecFromList(operands)
	if err != nil || len(vs) != 3 {
		errorf("ill-formed if: expected 3 operands")
	}
	if in.eval(vs[0], env).Truthy() {
		return in.eval(vs[1], env)
	}
	return in.eval(vs[2], env)
}

// evalBegin evaluates each operand left to right in env, returning the
// value of the last. At least one operand is required.
func (in *Interpreter) evalBegin(operands Value, env Value) Value {
	vs, err := in.Heap.VecFromList(operands)
	if err != nil {
		errorf("ill-formed begin")
	}
	if len(vs) == 0 {
		errorf("begin: at least one operand required")
	}
	var result Value
	for _, x := range vs {
		result = in.eval(x, env)
	}
	return result
}

// evalCond evaluates clauses in order; the first whose test is truthy
// has its (implicit-begin) body evaluated and returned. Falling off the
// end without a truthy test returns Nil.
func (in *Interpreter) evalCond(clauses Value, env Value) Value {
	h := in.Heap
	cur := clauses
	for {
		if cur.IsNil() {
			return Nil()
		}
		clause, err := h.Car(cur)
		if err != nil {
			errorf("ill-formed cond")
		}
		parts, err := h.VecFromList(clause)
		if err != nil || len(parts) < 2 {
			errorf("ill-formed cond clause")
		}
		if in.eval(parts[0], env).Truthy() {
			var result Value
			for _, x := range parts[1:] {
				result = in.eval(x, env)
			}
			return result
		}
		cur = mustCdr(h, cur)
	}
}

// makeLambda builds a compound-procedure record: a CompoundProcedure
// object whose payload is the 3-element list (params body env).
// `operands` is (PARAMS BODY...).
func (in *Interpreter) makeLambda(operands Value, env Value) Value {
	h := in.Heap
	params, err := h.Car(operands)
	if err != nil {
		errorf("ill-formed lambda")
	}
	if !isProperSymbolList(h, params) {
		errorf("ill-formed lambda: params must be a proper list of symbols")
	}
	body, err := h.Cdr(operands)
	if err != nil {
		errorf("ill-formed lambda")
	}
	bodyVec, err := h.VecFromList(body)
	if err != nil || len(bodyVec) == 0 {
		errorf("ill-formed lambda: body must be non-empty")
	}
	defn := h.ListFromVec([]Value{params, body, env})
	return h.Alloc(Object{Kind: ObjCompound, Defn: defn})
}

func isProperSymbolList(h *Heap, v Value) bool {
	vs, err := h.VecFromList(v)
	if err != nil {
		return false
	}
	for _, p := range vs {
		if !p.IsSym() {
			return false
		}
	}
	return true
}

// apply takes the already-evaluated operator, checks that it is a
// procedure, evaluates each operand left to right, and dispatches to
// the primitive or compound procedure.
func (in *Interpreter) apply(operator Value, operands Value, env Value) Value {
	h := in.Heap
	if obj, ok := h.object(operator); !ok || (obj.Kind != ObjPrimitive && obj.Kind != ObjCompound) {
		errorf("applying non-procedure: %s", h.Print(operator))
	}
	operandVec, err := h.VecFromList(operands)
	if err != nil {
		errorf("ill-formed application: improper operand list")
	}
	args := make([]Value, len(operandVec))
	for i, o := range operandVec {
		args[i] = in.eval(o, env)
	}
	return in.applyValue(operator, args)
}

func (in *Interpreter) applyValue(operator Value, args []Value) Value {
	h := in.Heap
	obj, ok := h.object(operator)
	if !ok {
		errorf("applying non-procedure: %s", h.Print(operator))
	}
	switch obj.Kind {
	case ObjPrimitive:
		return in.applyPrimitive(obj.Prim, args)
	case ObjCompound:
		return in.applyCompound(obj.Defn, args)
	default:
		errorf("applying non-procedure: %s", h.Print(operator))
		panic("unreachable")
	}
}

// applyCompound applies a compound procedure whose payload is the
// 3-element list (params body env_of_creation). Arity must match
// exactly; the body evaluates as an implicit begin in a fresh frame
// enclosed by env_of_creation, not the caller's environment.
func (in *Interpreter) applyCompound(defn Value, args []Value) Value {
	h := in.Heap
	parts, err := h.VecFromList(defn)
	if err != nil || len(parts) != 3 {
		fatalf("corrupt compound-procedure record")
	}
	params, body, creationEnv := parts[0], parts[1], parts[2]

	paramVec, err := h.VecFromList(params)
	if err != nil {
		fatalf("corrupt compound-procedure params")
	}
	if len(paramVec) != len(args) {
		errorf("arity mismatch: expected %d arguments, got %d", len(paramVec), len(args))
	}

	frame := h.NewEnv(creationEnv)
	for i, p := range paramVec {
		if err := h.EnvInsert(frame, p.Str, args[i]); err != nil {
			errorf("%v", err)
		}
	}

	bodyVec, err := h.VecFromList(body)
	if err != nil || len(bodyVec) == 0 {
		fatalf("corrupt compound-procedure body")
	}
	var result Value
	for _, expr := range bodyVec {
		result = in.eval(expr, frame)
	}
	return result
}
