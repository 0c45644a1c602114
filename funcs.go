package opexpr

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// bigprec is the precision in bits of intermediate results computed with
// bigfloat. Results are rounded to float64 afterward.
const bigprec = 128

// Bounds of arguments to exp for which the result is finite and nonzero as a
// float64.
const (
	expmax = 709.78
	expmin = -745.13
)

var (
	constpi, _ = bigfloat.Pi(bigf(0)).Float64()
	conste, _  = bigfloat.Exp(bigf(0), bigf(1)).Float64()
)

func defaultFuncs(s *symbols) {
	fns := []struct {
		name  string
		arity int
		fn    Callback
	}{
		{"abs", 1, monadic(absInt, mathfn(math.Abs))},
		{"sqrt", 1, monadic(nil, sqrt)},
		{"exp", 1, monadic(nil, exp)},
		{"ln", 1, monadic(nil, ln)},
		{"log", 1, monadic(nil, log10)},
		{"pow", 2, dyadic(powInt, powBig)},
		{"min", 2, dyadic(minInt, mathfn2(math.Min))},
		{"max", 2, dyadic(maxInt, mathfn2(math.Max))},
		{"floor", 1, monadic(Int, mathfn(math.Floor))},
		{"ceil", 1, monadic(Int, mathfn(math.Ceil))},
		{"round", 1, monadic(Int, mathfn(math.Round))},
		{"int", 1, monadic(Int, toInt)},
		{"double", 1, monadic(func(n int64) Value { return Double(float64(n)) }, Double)},
		{"sin", 1, monadic(nil, mathfn(math.Sin))},
		{"cos", 1, monadic(nil, mathfn(math.Cos))},
		{"tan", 1, monadic(nil, mathfn(math.Tan))},
		{"pi", 0, niladic(constpi)},
		{"e", 0, niladic(conste)},
	}
	for _, f := range fns {
		if err := s.defineFunction(f.name, f.arity, f.fn); err != nil {
			panic(err)
		}
	}
}

// monadic wraps a function of one argument into a Callback. If ints is nil,
// integer arguments are converted to doubles.
func monadic(ints func(int64) Value, floats func(float64) Value) Callback {
	return func(in Value) Value {
		return unary(in.At(0), ints, floats)
	}
}

// dyadic wraps a function of two arguments into a Callback.
func dyadic(ints func(a, b int64) Value, floats func(a, b float64) Value) Callback {
	return func(in Value) Value {
		return binary(in, ints, floats)
	}
}

// niladic creates a Callback returning a constant.
func niladic(x float64) Callback {
	return func(Value) Value {
		return Double(x)
	}
}

// mathfn converts a float64 function into one producing values. A NaN result
// from a non-NaN argument is a domain error, and an infinite result from a
// finite argument is an overflow.
func mathfn(f func(float64) float64) func(float64) Value {
	return func(x float64) Value {
		return checked(f(x), x)
	}
}

func mathfn2(f func(a, b float64) float64) func(a, b float64) Value {
	return func(a, b float64) Value {
		if math.IsNaN(a) || math.IsNaN(b) {
			return Double(math.NaN())
		}
		return Double(f(a, b))
	}
}

func checked(r, x float64) Value {
	switch {
	case math.IsNaN(r) && !math.IsNaN(x):
		return Error(ErrDomain)
	case math.IsInf(r, 0) && !math.IsInf(x, 0):
		return Error(ErrOverflow)
	}
	return Double(r)
}

func bigf(x float64) *big.Float {
	return new(big.Float).SetPrec(bigprec).SetFloat64(x)
}

// rounded converts a bigfloat result to a value.
func rounded(x *big.Float) Value {
	f, _ := x.Float64()
	if math.IsInf(f, 0) {
		return Error(ErrOverflow)
	}
	return Double(f)
}

func absInt(n int64) Value {
	switch {
	case n == math.MinInt64:
		return Error(ErrOverflow)
	case n < 0:
		return Int(-n)
	}
	return Int(n)
}

func minInt(a, b int64) Value {
	if b < a {
		return Int(b)
	}
	return Int(a)
}

func maxInt(a, b int64) Value {
	if b > a {
		return Int(b)
	}
	return Int(a)
}

func toInt(f float64) Value {
	switch {
	case math.IsNaN(f):
		return Error(ErrDomain)
	case f >= 1<<63 || f < -(1<<63):
		return Error(ErrOverflow)
	}
	return Int(int64(f))
}

func sqrt(x float64) Value {
	if x < 0 {
		return Error(ErrDomain)
	}
	return Double(math.Sqrt(x))
}

func exp(x float64) Value {
	switch {
	case math.IsNaN(x):
		return Double(x)
	case x > expmax:
		return Error(ErrOverflow)
	case x < expmin:
		return Double(0)
	case x == 0:
		return Double(1)
	}
	return rounded(bigfloat.Exp(bigf(0), bigf(x)))
}

func ln(x float64) Value {
	switch {
	case math.IsNaN(x), math.IsInf(x, 1):
		return Double(x)
	case x <= 0:
		return Error(ErrDomain)
	case x == 1:
		return Double(0)
	}
	return rounded(bigfloat.Log(bigf(0), bigf(x)))
}

func log10(x float64) Value {
	switch {
	case math.IsNaN(x), math.IsInf(x, 1):
		return Double(x)
	case x <= 0:
		return Error(ErrDomain)
	case x == 1:
		return Double(0)
	}
	r := bigfloat.Log(bigf(0), bigf(x))
	return rounded(r.Quo(r, bigfloat.Log(bigf(0), bigf(10))))
}

// powBig computes a power through bigfloat for positive finite bases and
// falls back to math.Pow otherwise.
func powBig(a, b float64) Value {
	if a <= 0 || math.IsInf(a, 0) || math.IsNaN(a) || math.IsInf(b, 0) || math.IsNaN(b) {
		return powFloat(a, b)
	}
	switch t := b * math.Log(a); {
	case t > expmax:
		return Error(ErrOverflow)
	case t < expmin:
		return Double(0)
	}
	return rounded(bigfloat.Pow(bigf(0), bigf(a), bigf(b)))
}
