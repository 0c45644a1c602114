package opexpr

import (
	"strings"
	"unicode"
)

// Fixity is the position of an operator relative to its operands.
type Fixity uint8

const (
	// Prefix operators precede their single operand, as in -x.
	Prefix Fixity = iota
	// Infix operators sit between their two operands, as in x+y.
	Infix
	// Postfix operators follow their single operand, as in x!.
	Postfix
)

func (f Fixity) String() string {
	switch f {
	case Prefix:
		return "prefix"
	case Infix:
		return "infix"
	case Postfix:
		return "postfix"
	default:
		return "invalid"
	}
}

// Callback is the native implementation of an operator or function. Prefix
// and postfix operators receive their operand directly. Infix operators
// receive a two-element array of the left and right operands. Functions
// receive an array with one element per argument.
//
// A callback must not panic. If any input is an Error value, the callback
// should return the first such Error unchanged.
type Callback func(in Value) Value

type operator struct {
	spelling string
	fix      Fixity
	// prec is the precedence. Higher is more binding.
	prec int
	fn   Callback
}

type function struct {
	name  string
	arity int
	fn    Callback
}

// symbols holds the operators and functions known to an expression.
type symbols struct {
	// ops is every operator in registration order.
	ops   []*operator
	funcs map[string]*function
	// width is the length in runes of the longest operator spelling.
	width int
}

func (s *symbols) defineOperator(spelling string, fix Fixity, prec int, fn Callback) error {
	switch {
	case !validSpelling(spelling), fix > Postfix:
		return &DefineError{Name: spelling, Fixity: fix, Err: ErrSpelling}
	case prec < 0:
		return &DefineError{Name: spelling, Fixity: fix, Err: ErrPrecedence}
	case fn == nil:
		return &DefineError{Name: spelling, Fixity: fix, Err: ErrCallback}
	case s.operator(spelling, fix) != nil:
		return &DefineError{Name: spelling, Fixity: fix, Err: ErrDuplicate}
	}
	s.ops = append(s.ops, &operator{spelling: spelling, fix: fix, prec: prec, fn: fn})
	if n := len([]rune(spelling)); n > s.width {
		s.width = n
	}
	return nil
}

func (s *symbols) defineFunction(name string, arity int, fn Callback) error {
	switch {
	case !validName(name):
		return &DefineError{Name: name, Func: true, Err: ErrSpelling}
	case arity < 0:
		return &DefineError{Name: name, Func: true, Err: ErrArity}
	case fn == nil:
		return &DefineError{Name: name, Func: true, Err: ErrCallback}
	case s.funcs[name] != nil:
		return &DefineError{Name: name, Func: true, Err: ErrDuplicate}
	}
	if s.funcs == nil {
		s.funcs = make(map[string]*function)
	}
	s.funcs[name] = &function{name: name, arity: arity, fn: fn}
	return nil
}

// operator finds the operator with the given spelling and fixity, or nil.
func (s *symbols) operator(spelling string, fix Fixity) *operator {
	for _, op := range s.ops {
		if op.fix == fix && op.spelling == spelling {
			return op
		}
	}
	return nil
}

// longest returns the longest operator spelling that src begins with, or the
// empty string if there is none.
func (s *symbols) longest(src []rune) string {
	n := s.width
	if n > len(src) {
		n = len(src)
	}
	for ; n > 0; n-- {
		sp := string(src[:n])
		for _, op := range s.ops {
			if op.spelling == sp {
				return sp
			}
		}
	}
	return ""
}

// resolve chooses among the operators spelled sp. In prefix position, a
// prefix operator wins. Otherwise the first infix operator in registration
// order wins, then the first postfix one. A prefix operator is the last
// resort outside prefix position.
func (s *symbols) resolve(sp string, prefix bool) *operator {
	if prefix {
		if op := s.operator(sp, Prefix); op != nil {
			return op
		}
	}
	if op := s.operator(sp, Infix); op != nil {
		return op
	}
	if op := s.operator(sp, Postfix); op != nil {
		return op
	}
	return s.operator(sp, Prefix)
}

// validSpelling reports whether an operator spelling can be produced by the
// tokenizer: non-empty, and free of any rune that starts another kind of
// token.
func validSpelling(sp string) bool {
	if sp == "" {
		return false
	}
	return !strings.ContainsFunc(sp, func(r rune) bool {
		return r == '_' || r == '(' || r == ')' || r == ',' || r == '.' ||
			unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r)
	})
}

// validName reports whether a function name can be produced by the
// tokenizer as an identifier.
func validName(name string) bool {
	if name == "" || name == "true" || name == "false" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
