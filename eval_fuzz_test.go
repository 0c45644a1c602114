package opexpr_test

import (
	"testing"

	"github.com/zephyrtronium/opexpr"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("1×2")
	f.Add("max(x, -y!)^2 && 1/0")
	f.Add("((,)")
	f.Fuzz(func(t *testing.T, s string) {
		e := opexpr.Parse(s, opexpr.WithVar("x", opexpr.Int(2)))
		a := e.Eval()
		if b := e.Eval(); !a.Equal(b) {
			t.Errorf("%q: evaluations differ: %v then %v", s, a, b)
		}
	})
}
