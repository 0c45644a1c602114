package opexpr

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type token struct {
	kind tokenKind
	text string
	// val is the value of a number or boolean literal.
	val Value
	// op is the resolved operator of an operator token.
	op *operator
	// fn is the resolved function of a function token, if it was defined
	// when the expression was parsed.
	fn *function
	// idx is the variable table index of a variable token, the count of
	// commas seen so far inside an open paren on the parser's stack, or the
	// number of arguments written in a call for a function token.
	idx int
	// arity is the registered arity of a function token, or -1 if the
	// function was unknown at parse time.
	arity int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is an integer or double literal.
	tokenNum
	// tokenBool is true or false.
	tokenBool
	// tokenVar is an identifier not followed by an open paren.
	tokenVar
	// tokenFunc is an identifier immediately followed by an open paren.
	tokenFunc
	// tokenOp is an operator with resolved fixity.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
	// tokenSep is the argument separator, a comma.
	tokenSep
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// lex splits src into tokens. All whitespace is removed first. Runes which
// cannot begin any token are skipped.
func (s *symbols) lex(src string) []token {
	rs := make([]rune, 0, utf8.RuneCountInString(src))
	for _, r := range src {
		if !unicode.IsSpace(r) {
			rs = append(rs, r)
		}
	}
	var toks []token
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case isDigit(r), r == '.' && i+1 < len(rs) && isDigit(rs[i+1]):
			j := scanNum(rs, i)
			text := string(rs[i:j])
			toks = append(toks, token{kind: tokenNum, text: text, val: number(text)})
			i = j
		case r == '_', unicode.IsLetter(r):
			j := scanIdent(rs, i)
			tok := token{text: string(rs[i:j])}
			switch {
			case tok.text == "true":
				tok.kind, tok.val = tokenBool, Int(1)
			case tok.text == "false":
				tok.kind, tok.val = tokenBool, Int(0)
			case j < len(rs) && rs[j] == '(':
				tok.kind, tok.arity = tokenFunc, -1
			default:
				tok.kind = tokenVar
			}
			toks = append(toks, tok)
			i = j
		case r == '(':
			toks = append(toks, token{kind: tokenOpen, text: "("})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokenClose, text: ")"})
			i++
		case r == ',':
			toks = append(toks, token{kind: tokenSep, text: ","})
			i++
		default:
			sp := s.longest(rs[i:])
			if sp == "" {
				i++
				continue
			}
			op := s.resolve(sp, prefixPosition(toks))
			toks = append(toks, token{kind: tokenOp, text: sp, op: op})
			i += utf8.RuneCountInString(sp)
		}
	}
	return toks
}

// prefixPosition reports whether an operator following toks is in a position
// where it can only have an operand to its right.
func prefixPosition(toks []token) bool {
	if len(toks) == 0 {
		return true
	}
	switch last := toks[len(toks)-1]; last.kind {
	case tokenOpen, tokenSep, tokenFunc:
		return true
	case tokenOp:
		return last.op.fix != Postfix
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// scanNum returns the end of the number beginning at rs[i]. A number is a run
// of digits containing at most one decimal point.
func scanNum(rs []rune, i int) int {
	dot := false
	for ; i < len(rs); i++ {
		switch r := rs[i]; {
		case isDigit(r):
		case r == '.' && !dot:
			dot = true
		default:
			return i
		}
	}
	return i
}

// scanIdent returns the end of the identifier beginning at rs[i].
func scanIdent(rs []rune, i int) int {
	for ; i < len(rs); i++ {
		r := rs[i]
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return i
		}
	}
	return i
}

// number converts the text of a number token to its value. A decimal point
// makes a double. Literals too large to represent are Error(ErrOverflow).
func number(text string) Value {
	for _, r := range text {
		if r == '.' {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return Error(ErrOverflow)
			}
			return Double(f)
		}
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Error(ErrOverflow)
		}
		return Error(ErrUndefined)
	}
	return Int(n)
}
