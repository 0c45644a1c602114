package opexpr

import (
	"math"
	"strconv"
)

// Kind is the variant held by a Value.
type Kind uint8

const (
	// KindInt is a 64-bit signed integer.
	KindInt Kind = iota
	// KindDouble is a 64-bit floating-point number.
	KindDouble
	// KindError is an error code produced during evaluation.
	KindError
	// KindArray is a fixed-length sequence of values. Arrays pack arguments
	// to callbacks; expressions never produce them on their own.
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindError:
		return "error"
	case KindArray:
		return "array"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ErrCode identifies the kind of failure held by an Error value.
type ErrCode uint8

const (
	// ErrDivByZero is division or remainder by zero.
	ErrDivByZero ErrCode = iota
	// ErrDomain is an argument outside a function's domain.
	ErrDomain
	// ErrOverflow is a result that cannot be represented.
	ErrOverflow
	// ErrOutOfBounds is a bad index, stack underflow, or call to an unknown
	// or misused function.
	ErrOutOfBounds
	// ErrUndefined is an empty result or a variable that was never set.
	ErrUndefined
	// ErrUser1 through ErrUser4 are reserved for embedders' callbacks.
	ErrUser1
	ErrUser2
	ErrUser3
	ErrUser4
)

var errnames = [...]string{
	ErrDivByZero:   "div-by-zero",
	ErrDomain:      "domain",
	ErrOverflow:    "overflow",
	ErrOutOfBounds: "out-of-bounds",
	ErrUndefined:   "undefined",
	ErrUser1:       "user-1",
	ErrUser2:       "user-2",
	ErrUser3:       "user-3",
	ErrUser4:       "user-4",
}

var errmsgs = [...]string{
	ErrDivByZero:   "division by zero",
	ErrDomain:      "argument outside function domain",
	ErrOverflow:    "numeric overflow",
	ErrOutOfBounds: "out of bounds",
	ErrUndefined:   "undefined value",
	ErrUser1:       "user error 1",
	ErrUser2:       "user error 2",
	ErrUser3:       "user error 3",
	ErrUser4:       "user error 4",
}

// String returns the display form of the code, e.g. "<div-by-zero>".
func (c ErrCode) String() string {
	if int(c) >= len(errnames) {
		return "<error-" + strconv.Itoa(int(c)) + ">"
	}
	return "<" + errnames[c] + ">"
}

// Error implements error so that error codes can leave the value model.
func (c ErrCode) Error() string {
	if int(c) >= len(errmsgs) {
		return "opexpr: error code " + strconv.Itoa(int(c))
	}
	return "opexpr: " + errmsgs[c]
}

// Value is the result of evaluating an expression or any part of one. The
// zero Value is the integer 0.
//
// Values are immutable apart from SetAt and Resize, which replace the content
// of the Value they are called on. Copies of a Value never observe those
// changes.
type Value struct {
	kind Kind
	code ErrCode
	i    int64
	f    float64
	arr  []Value
}

// Int creates an integer value.
func Int(x int64) Value {
	return Value{kind: KindInt, i: x}
}

// Double creates a floating-point value.
func Double(x float64) Value {
	return Value{kind: KindDouble, f: x}
}

// Error creates an error value.
func Error(code ErrCode) Value {
	return Value{kind: KindError, code: code}
}

// Bool creates the integer 1 if b is true and 0 otherwise.
func Bool(b bool) Value {
	if b {
		return Int(1)
	}
	return Int(0)
}

// Array creates an array of n integer zeros.
func Array(n int) Value {
	if n < 0 {
		n = 0
	}
	return Value{kind: KindArray, arr: make([]Value, n)}
}

// Pack creates an array holding copies of vals.
func Pack(vals ...Value) Value {
	arr := make([]Value, len(vals))
	copy(arr, vals)
	return Value{kind: KindArray, arr: arr}
}

// Kind returns the variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns v as an integer. Doubles are truncated toward zero; errors and
// arrays are 0.
func (v Value) Int() int64 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindDouble:
		if math.IsNaN(v.f) {
			return 0
		}
		return int64(v.f)
	default:
		return 0
	}
}

// Float returns v as a float64. Errors and arrays are NaN.
func (v Value) Float() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindDouble:
		return v.f
	default:
		return math.NaN()
	}
}

// Err returns the error code of v and whether v is an error.
func (v Value) Err() (ErrCode, bool) {
	return v.code, v.kind == KindError
}

// AsError returns the error code of v as an error, or nil if v is not an
// error value.
func (v Value) AsError() error {
	if v.kind != KindError {
		return nil
	}
	return v.code
}

// Bool reports whether v is nonzero. Errors are false, and arrays are true
// when they have any elements.
func (v Value) Bool() bool {
	switch v.kind {
	case KindInt:
		return v.i != 0
	case KindDouble:
		return v.f != 0
	case KindArray:
		return len(v.arr) != 0
	default:
		return false
	}
}

// Len returns the number of elements of an array, or 1 for any other value.
func (v Value) Len() int {
	if v.kind != KindArray {
		return 1
	}
	return len(v.arr)
}

// At returns the element at index i. A non-array value is its own element at
// index 0. Any other index is Error(ErrOutOfBounds).
func (v Value) At(i int) Value {
	if v.kind != KindArray {
		if i == 0 {
			return v
		}
		return Error(ErrOutOfBounds)
	}
	if i < 0 || i >= len(v.arr) {
		return Error(ErrOutOfBounds)
	}
	return v.arr[i]
}

// SetAt replaces the element at index i and reports whether i was in range.
// Setting index 0 of a non-array value replaces the value.
func (v *Value) SetAt(i int, x Value) bool {
	if v.kind != KindArray {
		if i != 0 {
			return false
		}
		*v = x
		return true
	}
	if i < 0 || i >= len(v.arr) {
		return false
	}
	// Copy so that other holders of the same array are unaffected.
	arr := make([]Value, len(v.arr))
	copy(arr, v.arr)
	arr[i] = x
	v.arr = arr
	return true
}

// Resize converts v to an array of n elements. A non-array value becomes the
// first element; an array keeps its existing prefix. New elements are 0.
func (v *Value) Resize(n int) {
	if n < 0 {
		n = 0
	}
	arr := make([]Value, n)
	if v.kind != KindArray {
		if n > 0 {
			arr[0] = *v
		}
	} else {
		copy(arr, v.arr)
	}
	*v = Value{kind: KindArray, arr: arr}
}

// Equal reports whether v and w hold the same variant with bit-identical
// content.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == w.i
	case KindDouble:
		return math.Float64bits(v.f) == math.Float64bits(w.f)
	case KindError:
		return v.code == w.code
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders v for display. Integers and doubles use the shortest decimal
// representation, errors use their code's name in angle brackets, and arrays
// are "<array>".
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindError:
		return v.code.String()
	case KindArray:
		return "<array>"
	default:
		return "<" + v.kind.String() + ">"
	}
}
