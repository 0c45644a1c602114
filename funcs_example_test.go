package opexpr_test

import (
	"fmt"

	"github.com/zephyrtronium/opexpr"
)

func ExampleExpr_DefineFunction() {
	e := opexpr.New()
	hypot := func(in opexpr.Value) opexpr.Value {
		a, b := in.At(0), in.At(1)
		if _, ok := a.Err(); ok {
			return a
		}
		if _, ok := b.Err(); ok {
			return b
		}
		return opexpr.Double(a.Float()*a.Float() + b.Float()*b.Float())
	}
	if err := e.DefineFunction("hypot2", 2, hypot); err != nil {
		panic(err)
	}
	e.Set("sqrt(hypot2(3, 4))")
	fmt.Println(e.Eval(), e)
	e.Set("hypot2(3)")
	fmt.Println(e.Eval(), e)

	// Output:
	// 5 3 4 hypot2/2 sqrt/1
	// <out-of-bounds> 3 hypot2/2
}

func ExampleExpr_DefineOperator() {
	e := opexpr.New()
	pow := func(in opexpr.Value) opexpr.Value {
		return opexpr.EvalString("pow(a, b)",
			opexpr.WithVar("a", in.At(0)),
			opexpr.WithVar("b", in.At(1)),
		)
	}
	if err := e.DefineOperator("**", opexpr.Infix, 7, pow); err != nil {
		panic(err)
	}
	e.Set("2**3**2")
	fmt.Println(e.Eval(), e)

	// Output:
	// 64 2 3 ** 2 **
}

func ExampleExpr_SetVar() {
	e := opexpr.Parse("r*r*pi()")
	fmt.Println(e.Vars(), e.Eval())
	for _, r := range []int64{1, 2} {
		e.SetVar("r", opexpr.Int(r))
		fmt.Printf("%.4f\n", e.Eval().Float())
	}

	// Output:
	// [r] <undefined>
	// 3.1416
	// 12.5664
}

func ExampleEvalString() {
	fmt.Println(opexpr.EvalString("2 + 3*4"))
	fmt.Println(opexpr.EvalString("7/2"))
	fmt.Println(opexpr.EvalString("5/0 + 3"))
	fmt.Println(opexpr.EvalString("0 && 5/0"))

	// Output:
	// 14
	// 3.5
	// <div-by-zero>
	// 0
}
