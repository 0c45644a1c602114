// Package opexpr implements an embeddable calculator with a runtime-extensible
// operator table.
//
// An expression is parsed once into a postfix program and may then be
// evaluated any number of times while its variables change. Operators may be
// prefix, infix, or postfix, each with its own precedence, and any of them can
// be defined by the embedder alongside named functions of fixed arity:
//
//	e := opexpr.New()
//	e.DefineOperator("**", opexpr.Infix, 7, pow)
//	e.Set("x ** 2 + 1")
//	e.SetVar("x", opexpr.Int(3))
//	fmt.Println(e.Eval()) // 10
//
// Results are Values: integers, doubles, or errors. Errors are values rather
// than control flow. Any operation given an error produces that same error, so
// "5/0 + 3" is <div-by-zero>. The logical operators && and || short-circuit,
// so "0 && 1/0" is 0.
//
// All infix operators are left-associative, including ^, so "2^3^2" is 64.
// Prefix operators are right-associative.
//
package opexpr
