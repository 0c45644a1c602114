package opexpr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/opexpr"
)

func TestValueString(t *testing.T) {
	cases := []struct {
		v    opexpr.Value
		want string
	}{
		{opexpr.Int(0), "0"},
		{opexpr.Int(-42), "-42"},
		{opexpr.Double(2), "2"},
		{opexpr.Double(0.5), "0.5"},
		{opexpr.Double(math.Inf(-1)), "-Inf"},
		{opexpr.Error(opexpr.ErrDivByZero), "<div-by-zero>"},
		{opexpr.Error(opexpr.ErrDomain), "<domain>"},
		{opexpr.Error(opexpr.ErrOverflow), "<overflow>"},
		{opexpr.Error(opexpr.ErrOutOfBounds), "<out-of-bounds>"},
		{opexpr.Error(opexpr.ErrUndefined), "<undefined>"},
		{opexpr.Error(opexpr.ErrUser1), "<user-1>"},
		{opexpr.Error(opexpr.ErrUser4), "<user-4>"},
		{opexpr.Array(2), "<array>"},
		{opexpr.Value{}, "0"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
}

func TestValueAt(t *testing.T) {
	x := opexpr.Int(7)
	if got := x.At(0); !got.Equal(x) {
		t.Errorf("scalar at 0: want %v, got %v", x, got)
	}
	if got := x.At(1); !got.Equal(opexpr.Error(opexpr.ErrOutOfBounds)) {
		t.Errorf("scalar at 1: want out of bounds, got %v", got)
	}
	a := opexpr.Pack(opexpr.Int(1), opexpr.Double(2))
	if n := a.Len(); n != 2 {
		t.Errorf("want length 2, got %d", n)
	}
	if got := a.At(1); !got.Equal(opexpr.Double(2)) {
		t.Errorf("array at 1: want 2.0, got %v", got)
	}
	for _, i := range []int{-1, 2, 100} {
		if got := a.At(i); !got.Equal(opexpr.Error(opexpr.ErrOutOfBounds)) {
			t.Errorf("array at %d: want out of bounds, got %v", i, got)
		}
	}
}

func TestValueSetAt(t *testing.T) {
	a := opexpr.Array(3)
	b := a
	if !a.SetAt(1, opexpr.Int(5)) {
		t.Fatal("SetAt in range failed")
	}
	if got := a.At(1); !got.Equal(opexpr.Int(5)) {
		t.Errorf("want 5, got %v", got)
	}
	if got := b.At(1); !got.Equal(opexpr.Int(0)) {
		t.Errorf("copy changed: want 0, got %v", got)
	}
	if a.SetAt(3, opexpr.Int(1)) {
		t.Error("SetAt out of range succeeded")
	}
	x := opexpr.Int(1)
	if !x.SetAt(0, opexpr.Double(3)) || !x.Equal(opexpr.Double(3)) {
		t.Errorf("scalar SetAt 0: want 3.0, got %v", x)
	}
	if x.SetAt(1, opexpr.Int(0)) {
		t.Error("scalar SetAt 1 succeeded")
	}
}

func TestValueResize(t *testing.T) {
	x := opexpr.Int(9)
	x.Resize(2)
	if x.Kind() != opexpr.KindArray || x.Len() != 2 {
		t.Fatalf("want 2-element array, got %v with length %d", x.Kind(), x.Len())
	}
	if got := x.At(0); !got.Equal(opexpr.Int(9)) {
		t.Errorf("want seed 9, got %v", got)
	}
	x.SetAt(1, opexpr.Int(4))
	x.Resize(1)
	if x.Len() != 1 || !x.At(0).Equal(opexpr.Int(9)) {
		t.Errorf("shrink: want [9], got length %d with %v", x.Len(), x.At(0))
	}
	x.Resize(3)
	if !x.At(2).Equal(opexpr.Int(0)) {
		t.Errorf("grow: want 0, got %v", x.At(2))
	}
}

func TestValueConversions(t *testing.T) {
	if n := opexpr.Double(-2.7).Int(); n != -2 {
		t.Errorf("Double(-2.7).Int(): want -2, got %d", n)
	}
	if f := opexpr.Int(3).Float(); f != 3 {
		t.Errorf("Int(3).Float(): want 3, got %g", f)
	}
	if f := opexpr.Error(opexpr.ErrDomain).Float(); !math.IsNaN(f) {
		t.Errorf("error Float: want NaN, got %g", f)
	}
	if code, ok := opexpr.Error(opexpr.ErrOverflow).Err(); !ok || code != opexpr.ErrOverflow {
		t.Errorf("Err: want overflow, got %v %t", code, ok)
	}
	if _, ok := opexpr.Int(1).Err(); ok {
		t.Error("Int(1) is an error")
	}
	err := opexpr.Error(opexpr.ErrDivByZero).AsError()
	if !errors.Is(err, opexpr.ErrDivByZero) {
		t.Errorf("AsError: want ErrDivByZero, got %v", err)
	}
	if err := opexpr.Double(1).AsError(); err != nil {
		t.Errorf("AsError of double: want nil, got %v", err)
	}
}

func TestValueEqual(t *testing.T) {
	cases := []struct {
		a, b opexpr.Value
		want bool
	}{
		{opexpr.Int(1), opexpr.Int(1), true},
		{opexpr.Int(1), opexpr.Double(1), false},
		{opexpr.Double(math.NaN()), opexpr.Double(math.NaN()), true},
		{opexpr.Double(0), opexpr.Double(math.Copysign(0, -1)), false},
		{opexpr.Error(opexpr.ErrDomain), opexpr.Error(opexpr.ErrDomain), true},
		{opexpr.Error(opexpr.ErrDomain), opexpr.Error(opexpr.ErrOverflow), false},
		{opexpr.Pack(opexpr.Int(1)), opexpr.Pack(opexpr.Int(1)), true},
		{opexpr.Pack(opexpr.Int(1)), opexpr.Pack(opexpr.Int(1), opexpr.Int(2)), false},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.want {
			t.Errorf("%v == %v: want %t, got %t", c.a, c.b, c.want, got)
		}
	}
}
