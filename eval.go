package opexpr

import (
	"strconv"
	"strings"
)

// Expr is a parsed expression together with the operators, functions, and
// variables used to evaluate it. It is not safe to use an Expr concurrently.
type Expr struct {
	syms symbols
	// prog is the parsed program in postfix order.
	prog []token
	// names and vals are the variable table in order of first appearance.
	names []string
	vals  []Value
	index map[string]int
	// given holds bindings from options, applied after each Set.
	given map[string]Value
	// stack is reused across evaluations.
	stack []Value
}

// Option is an option used when creating an expression.
type Option interface {
	option(*config)
}

type config struct {
	nodefaults bool
	given      map[string]Value
}

type (
	nodefaultsopt struct{}
	varopt        struct {
		name string
		val  Value
	}
)

func (nodefaultsopt) option(c *config) {
	c.nodefaults = true
}

func (o varopt) option(c *config) {
	if c.given == nil {
		c.given = make(map[string]Value)
	}
	c.given[o.name] = o.val
}

// DisableDefaultFuncs prevents registering the default function library.
// Built-in operators are always registered.
func DisableDefaultFuncs() Option {
	return nodefaultsopt{}
}

// WithVar binds a variable after every Set in which the variable appears.
func WithVar(name string, val Value) Option {
	return varopt{name, val}
}

// New creates an empty expression. Evaluating it gives Error(ErrUndefined)
// until Set is called.
func New(opts ...Option) *Expr {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt.option(&c)
		}
	}
	e := Expr{given: c.given}
	builtinOperators(&e.syms)
	if !c.nodefaults {
		defaultFuncs(&e.syms)
	}
	return &e
}

// Parse creates an expression and sets its source.
func Parse(src string, opts ...Option) *Expr {
	e := New(opts...)
	e.Set(src)
	return e
}

// EvalString is a shortcut to parse and evaluate an expression.
func EvalString(src string, opts ...Option) Value {
	return Parse(src, opts...).Eval()
}

// Set parses src, replacing the program and variable table. Set always
// succeeds; malformed expressions produce error values from Eval. Every
// variable starts as Error(ErrUndefined) unless it was given by WithVar.
func (e *Expr) Set(src string) {
	toks := e.syms.lex(src)
	e.names = e.names[:0]
	e.vals = e.vals[:0]
	e.index = make(map[string]int)
	for i := range toks {
		if toks[i].kind != tokenVar {
			continue
		}
		k, ok := e.index[toks[i].text]
		if !ok {
			k = len(e.names)
			e.index[toks[i].text] = k
			e.names = append(e.names, toks[i].text)
			v, ok := e.given[toks[i].text]
			if !ok {
				v = Error(ErrUndefined)
			}
			e.vals = append(e.vals, v)
		}
		toks[i].idx = k
	}
	e.prog = e.syms.parse(toks)
}

// Eval evaluates the expression with the current variable values. Every
// failure, including malformed expressions, is reported as an error value.
func (e *Expr) Eval() Value {
	stack := e.stack[:0]
	defer func() { e.stack = stack[:0] }()
	for i := range e.prog {
		tok := &e.prog[i]
		switch tok.kind {
		case tokenNum, tokenBool:
			stack = append(stack, tok.val)
		case tokenVar:
			if tok.idx < 0 || tok.idx >= len(e.vals) {
				stack = append(stack, Error(ErrOutOfBounds))
				continue
			}
			stack = append(stack, e.vals[tok.idx])
		case tokenFunc:
			fn := tok.fn
			if fn == nil {
				// Allow functions defined after Set.
				fn = e.syms.funcs[tok.text]
			}
			if fn == nil || tok.idx != fn.arity || len(stack) < fn.arity {
				return Error(ErrOutOfBounds)
			}
			k := len(stack) - fn.arity
			r := fn.fn(Pack(stack[k:]...))
			stack = append(stack[:k], r)
		case tokenOp:
			op := tok.op
			if op.fix != Infix {
				if len(stack) < 1 {
					return Error(ErrOutOfBounds)
				}
				k := len(stack) - 1
				stack[k] = op.fn(stack[k])
				continue
			}
			if len(stack) < 2 {
				return Error(ErrOutOfBounds)
			}
			k := len(stack) - 2
			l, r := stack[k], stack[k+1]
			var v Value
			switch op.spelling {
			case "&&":
				v = shortCircuit(l, r, false)
			case "||":
				v = shortCircuit(l, r, true)
			default:
				v = op.fn(Pack(l, r))
			}
			stack = append(stack[:k], v)
		default:
			return Error(ErrUndefined)
		}
	}
	switch len(stack) {
	case 0:
		return Error(ErrUndefined)
	case 1:
		return stack[0]
	default:
		return Error(ErrOutOfBounds)
	}
}

// shortCircuit computes a logical connective. If the left operand decides the
// result, the right operand is ignored even if it is an error. when is the
// left truth value that decides the result: false for &&, true for ||.
func shortCircuit(l, r Value, when bool) Value {
	if l.kind == KindError {
		return l
	}
	if l.Bool() == when {
		return Bool(when)
	}
	if r.kind == KindError {
		return r
	}
	return Bool(r.Bool())
}

// NumVars returns the number of distinct variables in the expression.
func (e *Expr) NumVars() int {
	return len(e.names)
}

// VarName returns the name of the variable at index i, in order of first
// appearance in the expression.
func (e *Expr) VarName(i int) (string, bool) {
	if i < 0 || i >= len(e.names) {
		return "", false
	}
	return e.names[i], true
}

// Vars returns the variable names used in the expression in order of first
// appearance.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// Var returns the current value of a variable.
func (e *Expr) Var(name string) (Value, bool) {
	k, ok := e.index[name]
	if !ok {
		return Value{}, false
	}
	return e.vals[k], true
}

// VarAt returns the current value of the variable at index i.
func (e *Expr) VarAt(i int) (Value, bool) {
	if i < 0 || i >= len(e.vals) {
		return Value{}, false
	}
	return e.vals[i], true
}

// SetVar sets the value of a variable. The result is a *NameError if the
// variable does not appear in the expression.
func (e *Expr) SetVar(name string, val Value) error {
	k, ok := e.index[name]
	if !ok {
		return &NameError{Name: name}
	}
	e.vals[k] = val
	return nil
}

// SetVarAt sets the value of the variable at index i. The result is an
// *IndexError if i is out of range.
func (e *Expr) SetVarAt(i int, val Value) error {
	if i < 0 || i >= len(e.vals) {
		return &IndexError{Index: i, Len: len(e.vals)}
	}
	e.vals[i] = val
	return nil
}

// CopyVar sets the variable dst to the value of the variable src.
func (e *Expr) CopyVar(dst, src string) error {
	v, ok := e.Var(src)
	if !ok {
		return &NameError{Name: src}
	}
	return e.SetVar(dst, v)
}

// CopyVarAt sets the variable at index dst to the value of the variable at
// index src.
func (e *Expr) CopyVarAt(dst, src int) error {
	v, ok := e.VarAt(src)
	if !ok {
		return &IndexError{Index: src, Len: len(e.vals)}
	}
	return e.SetVarAt(dst, v)
}

// DefineOperator adds an operator. Higher precedence binds more tightly. The
// result is a *DefineError if an operator with the same spelling and fixity
// exists, the precedence is negative, the callback is nil, or the spelling
// contains letters, digits, underscores, periods, whitespace, parens, or
// commas.
//
// Operators should be defined before calling Set. Expressions already parsed
// keep the operators they were parsed with.
func (e *Expr) DefineOperator(spelling string, fix Fixity, prec int, fn Callback) error {
	return e.syms.defineOperator(spelling, fix, prec, fn)
}

// DefineFunction adds a function of a fixed number of arguments. Only one
// function may have a given name, regardless of arity.
func (e *Expr) DefineFunction(name string, arity int, fn Callback) error {
	return e.syms.defineFunction(name, arity, fn)
}

// OperatorPrecedence returns the precedence of an operator.
func (e *Expr) OperatorPrecedence(spelling string, fix Fixity) (int, bool) {
	op := e.syms.operator(spelling, fix)
	if op == nil {
		return 0, false
	}
	return op.prec, true
}

// SetOperatorPrecedence changes the precedence of an existing operator. The
// change applies to subsequent calls to Set.
func (e *Expr) SetOperatorPrecedence(spelling string, fix Fixity, prec int) error {
	op := e.syms.operator(spelling, fix)
	if op == nil {
		return &DefineError{Name: spelling, Fixity: fix, Err: ErrNotDefined}
	}
	if prec < 0 {
		return &DefineError{Name: spelling, Fixity: fix, Err: ErrPrecedence}
	}
	op.prec = prec
	return nil
}

// String renders the parsed program in postfix order. Prefix operators have
// a trailing underscore, postfix operators have a leading underscore, and
// function calls show their arity, as in "x -_ 3 _! max/2".
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.prog {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch tok.kind {
		case tokenOp:
			if tok.op.fix == Postfix {
				b.WriteByte('_')
			}
			b.WriteString(tok.text)
			if tok.op.fix == Prefix {
				b.WriteByte('_')
			}
		case tokenFunc:
			b.WriteString(tok.text)
			b.WriteByte('/')
			if tok.arity < 0 {
				b.WriteByte('?')
			} else {
				b.WriteString(strconv.Itoa(tok.arity))
			}
		default:
			b.WriteString(tok.text)
		}
	}
	return b.String()
}
