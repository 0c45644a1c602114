package opexpr

import "math"

// Precedences of the built-in operators.
const (
	precOr = 1 + iota
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precPower
	precPrefix
	precPostfix
)

func builtinOperators(s *symbols) {
	ops := []struct {
		sp   string
		fix  Fixity
		prec int
		fn   Callback
	}{
		{"+", Infix, precAdditive, add},
		{"-", Infix, precAdditive, sub},
		{"*", Infix, precMultiplicative, mul},
		{"/", Infix, precMultiplicative, div},
		{`\`, Infix, precMultiplicative, intdiv},
		{"%", Infix, precMultiplicative, rem},
		{"^", Infix, precPower, pow},
		{"!", Postfix, precPostfix, factorial},
		{"==", Infix, precEquality, compare(eqInt, eqFloat)},
		{"!=", Infix, precEquality, compare(neInt, neFloat)},
		{"<", Infix, precRelational, compare(ltInt, ltFloat)},
		{"<=", Infix, precRelational, compare(leInt, leFloat)},
		{">", Infix, precRelational, compare(gtInt, gtFloat)},
		{">=", Infix, precRelational, compare(geInt, geFloat)},
		{"&&", Infix, precAnd, and},
		{"||", Infix, precOr, or},
		{"-", Prefix, precPrefix, neg},
		{"+", Prefix, precPrefix, plus},
		{"!", Prefix, precPrefix, not},
	}
	for _, op := range ops {
		if err := s.defineOperator(op.sp, op.fix, op.prec, op.fn); err != nil {
			panic(err)
		}
	}
}

// binary applies an arithmetic operation to an infix argument pair, using
// ints when both operands are integers and ints is not nil, and floats
// otherwise. Errors in either operand pass through, left first.
func binary(in Value, ints func(a, b int64) Value, floats func(a, b float64) Value) Value {
	l, r := in.At(0), in.At(1)
	switch {
	case l.kind == KindError:
		return l
	case r.kind == KindError:
		return r
	case l.kind == KindArray, r.kind == KindArray:
		return Error(ErrDomain)
	case ints != nil && l.kind == KindInt && r.kind == KindInt:
		return ints(l.i, r.i)
	default:
		return floats(l.Float(), r.Float())
	}
}

// unary applies an operation to a single operand, passing errors through.
func unary(x Value, ints func(a int64) Value, floats func(a float64) Value) Value {
	switch {
	case x.kind == KindError:
		return x
	case x.kind == KindArray:
		return Error(ErrDomain)
	case ints != nil && x.kind == KindInt:
		return ints(x.i)
	default:
		return floats(x.Float())
	}
}

func addInt(a, b int64) Value {
	s := a + b
	if (a^s)&(b^s) < 0 {
		return Error(ErrOverflow)
	}
	return Int(s)
}

func subInt(a, b int64) Value {
	d := a - b
	if (a^b)&(a^d) < 0 {
		return Error(ErrOverflow)
	}
	return Int(d)
}

// mulInt multiplies with overflow detection.
func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return p, true
}

func add(in Value) Value {
	return binary(in, addInt, func(a, b float64) Value { return Double(a + b) })
}

func sub(in Value) Value {
	return binary(in, subInt, func(a, b float64) Value { return Double(a - b) })
}

func mul(in Value) Value {
	return binary(in,
		func(a, b int64) Value {
			p, ok := mulInt(a, b)
			if !ok {
				return Error(ErrOverflow)
			}
			return Int(p)
		},
		func(a, b float64) Value { return Double(a * b) },
	)
}

// div always produces a double.
func div(in Value) Value {
	return binary(in, nil, func(a, b float64) Value {
		if b == 0 {
			return Error(ErrDivByZero)
		}
		return Double(a / b)
	})
}

// intdiv divides and truncates toward zero.
func intdiv(in Value) Value {
	return binary(in,
		func(a, b int64) Value {
			switch {
			case b == 0:
				return Error(ErrDivByZero)
			case a == math.MinInt64 && b == -1:
				return Error(ErrOverflow)
			}
			return Int(a / b)
		},
		func(a, b float64) Value {
			if b == 0 {
				return Error(ErrDivByZero)
			}
			return Double(math.Trunc(a / b))
		},
	)
}

func rem(in Value) Value {
	return binary(in,
		func(a, b int64) Value {
			if b == 0 {
				return Error(ErrDivByZero)
			}
			return Int(a % b)
		},
		func(a, b float64) Value {
			if b == 0 {
				return Error(ErrDivByZero)
			}
			return Double(math.Mod(a, b))
		},
	)
}

func pow(in Value) Value {
	return binary(in, powInt, powFloat)
}

// powInt raises to a non-negative integer power by squaring. Negative
// exponents give doubles.
func powInt(a, b int64) Value {
	if b < 0 {
		return powFloat(float64(a), float64(b))
	}
	r := int64(1)
	for ok := true; b > 0; b >>= 1 {
		if b&1 != 0 {
			if r, ok = mulInt(r, a); !ok {
				return Error(ErrOverflow)
			}
		}
		if b > 1 {
			if a, ok = mulInt(a, a); !ok {
				return Error(ErrOverflow)
			}
		}
	}
	return Int(r)
}

func powFloat(a, b float64) Value {
	if a == 0 && b < 0 {
		return Error(ErrDivByZero)
	}
	r := math.Pow(a, b)
	switch {
	case math.IsNaN(r) && !math.IsNaN(a) && !math.IsNaN(b):
		return Error(ErrDomain)
	case math.IsInf(r, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0):
		return Error(ErrOverflow)
	}
	return Double(r)
}

// maxFactorial is the largest n for which n! fits in an int64.
const maxFactorial = 20

func factorial(x Value) Value {
	return unary(x,
		func(n int64) Value {
			switch {
			case n < 0:
				return Error(ErrDomain)
			case n > maxFactorial:
				return Error(ErrOverflow)
			}
			r := int64(1)
			for i := int64(2); i <= n; i++ {
				r *= i
			}
			return Int(r)
		},
		func(f float64) Value {
			if f < 0 && f == math.Trunc(f) {
				return Error(ErrDomain)
			}
			r := math.Gamma(f + 1)
			switch {
			case math.IsNaN(r):
				return Error(ErrDomain)
			case math.IsInf(r, 0):
				return Error(ErrOverflow)
			}
			return Double(r)
		},
	)
}

func compare(ints func(a, b int64) bool, floats func(a, b float64) bool) Callback {
	return func(in Value) Value {
		return binary(in,
			func(a, b int64) Value { return Bool(ints(a, b)) },
			func(a, b float64) Value { return Bool(floats(a, b)) },
		)
	}
}

func eqInt(a, b int64) bool { return a == b }
func neInt(a, b int64) bool { return a != b }
func ltInt(a, b int64) bool { return a < b }
func leInt(a, b int64) bool { return a <= b }
func gtInt(a, b int64) bool { return a > b }
func geInt(a, b int64) bool { return a >= b }
func eqFloat(a, b float64) bool { return a == b }
func neFloat(a, b float64) bool { return a != b }
func ltFloat(a, b float64) bool { return a < b }
func leFloat(a, b float64) bool { return a <= b }
func gtFloat(a, b float64) bool { return a > b }
func geFloat(a, b float64) bool { return a >= b }

// and and or are registered so that && and || are known operators, but Eval
// evaluates those with shortCircuit instead of calling them.
func and(in Value) Value {
	return binary(in, nil, func(a, b float64) Value { return Bool(a != 0 && b != 0) })
}

func or(in Value) Value {
	return binary(in, nil, func(a, b float64) Value { return Bool(a != 0 || b != 0) })
}

func neg(x Value) Value {
	return unary(x,
		func(n int64) Value {
			if n == math.MinInt64 {
				return Error(ErrOverflow)
			}
			return Int(-n)
		},
		func(f float64) Value { return Double(-f) },
	)
}

func plus(x Value) Value {
	return unary(x, Int, Double)
}

func not(x Value) Value {
	return unary(x,
		func(n int64) Value { return Bool(n == 0) },
		func(f float64) Value { return Bool(f == 0) },
	)
}
