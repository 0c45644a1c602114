package opexpr

import (
	"testing"
)

func TestParseRPN(t *testing.T) {
	cases := []struct {
		name string
		src  string
		rpn  string
	}{
		{"empty", "", ""},
		{"num", "1", "1"},
		{"paren", "(x)", "x"},
		{"multi", "(((x)))", "x"},

		{"plus", "+x", "x +_"},
		{"neg", "-x", "x -_"},
		{"not", "!x", "x !_"},
		{"fact", "x!", "x _!"},
		{"add", "x+y", "x y +"},
		{"sub", "x-y", "x y -"},
		{"mul", "x*y", "x y *"},
		{"div", "x/y", "x y /"},
		{"intdiv", `x\y`, `x y \`},
		{"rem", "x%y", "x y %"},
		{"pow", "x^y", "x y ^"},

		{"add3", "x+y+z", "x y + z +"},
		{"sub3", "x-y-z", "x y - z -"},
		{"pow3", "x^y^z", "x y ^ z ^"},
		{"prec", "2+3*4", "2 3 4 * +"},
		{"parens", "(2+3)*4", "2 3 + 4 *"},
		{"desc", "w^x*y+z", "w x ^ y * z +"},
		{"asc", "w+x*y^z", "w x y z ^ * +"},

		{"negneg", "--x", "x -_ -_"},
		{"negsub", "-x-y", "x -_ y -"},
		{"negpow", "-x^y", "x -_ y ^"},
		{"powneg", "x^-y", "x y -_ ^"},
		{"negfact", "-x!", "x _! -_"},
		{"notnot", "!!x", "x !_ !_"},
		{"factfact", "x!!", "x _! _!"},
		{"factadd", "x!+y", "x _! y +"},

		{"cmp", "a<b==c>=d", "a b < c d >= =="},
		{"logic", "a||b&&c", "a b c && ||"},
		{"logic2", "a&&b||c", "a b && c ||"},
		{"cmplogic", "a<b&&c!=d", "a b < c d != &&"},
		{"bools", "true||false", "true false ||"},

		{"call0", "pi()", "pi/0"},
		{"call1", "sqrt(x)", "x sqrt/1"},
		{"call2", "max(x, y)", "x y max/2"},
		{"callexpr", "max(x+1, y*2)", "x 1 + y 2 * max/2"},
		{"nested", "max(min(a,b),c)", "a b min/2 c max/2"},
		{"callop", "2*sqrt(x)+1", "2 x sqrt/1 * 1 +"},
		{"callneg", "-sqrt(x)", "x sqrt/1 -_"},
		{"unknown", "nope(x)", "x nope/?"},

		// Malformed input still produces a program.
		{"extraclose", "x)+y", "x y +"},
		{"unclosed", "(x+y", "x y +"},
		{"unclosedcall", "sqrt(x", "x sqrt/1"},
		{"dangling", "x+", "x +"},
		{"adjacent", "x y", "x y"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := Parse(c.src)
			if got := e.String(); got != c.rpn {
				t.Errorf("%q: want %q, got %q", c.src, c.rpn, got)
			}
		})
	}
}

func TestParseArgCount(t *testing.T) {
	cases := []struct {
		src  string
		args int
	}{
		{"pi()", 0},
		{"sqrt(x)", 1},
		{"sqrt((x))", 1},
		{"max(x,y)", 2},
		{"max(x,(y,z))", 2},
		{"max(1,2,3)", 3},
		{"max(min(1,2,3),4)", 2},
	}
	for _, c := range cases {
		e := Parse(c.src)
		last := e.prog[len(e.prog)-1]
		if last.kind != tokenFunc {
			t.Errorf("%q: last token is %v, not a call", c.src, last)
			continue
		}
		if last.idx != c.args {
			t.Errorf("%q: want %d args, got %d", c.src, c.args, last.idx)
		}
	}
}

func TestParsePrecedenceChange(t *testing.T) {
	e := New()
	if err := e.SetOperatorPrecedence("+", Infix, 10); err != nil {
		t.Fatal(err)
	}
	e.Set("2*3+4")
	if got, want := e.String(), "2 3 4 + *"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestPops(t *testing.T) {
	cases := []struct {
		name    string
		top, in operator
		want    bool
	}{
		{"infix-higher", operator{fix: Infix, prec: 2}, operator{fix: Infix, prec: 1}, true},
		{"infix-equal", operator{fix: Infix, prec: 1}, operator{fix: Infix, prec: 1}, true},
		{"infix-lower", operator{fix: Infix, prec: 1}, operator{fix: Infix, prec: 2}, false},
		{"postfix-equal", operator{fix: Postfix, prec: 1}, operator{fix: Postfix, prec: 1}, true},
		{"prefix-higher", operator{fix: Prefix, prec: 2}, operator{fix: Prefix, prec: 1}, true},
		{"prefix-equal", operator{fix: Prefix, prec: 1}, operator{fix: Prefix, prec: 1}, false},
		{"prefix-lower", operator{fix: Infix, prec: 1}, operator{fix: Prefix, prec: 2}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := pops(&c.top, &c.in); got != c.want {
				t.Errorf("want %t, got %t", c.want, got)
			}
		})
	}
}
