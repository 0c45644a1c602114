package opexpr

// parse converts tokens to postfix order with the shunting-yard algorithm.
// Malformed input never fails here: unmatched parens are dropped, and any
// structural problems surface as errors when the program is evaluated.
func (s *symbols) parse(toks []token) []token {
	out := make([]token, 0, len(toks))
	var stack []token
	prev := tokenNone
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum, tokenBool, tokenVar:
			out = append(out, tok)
		case tokenFunc, tokenOpen:
			stack = append(stack, tok)
		case tokenOp:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenOp || !pops(top.op, tok.op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case tokenClose:
			for len(stack) > 0 && stack[len(stack)-1].kind != tokenOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				// Close with no open.
				break
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) > 0 && stack[len(stack)-1].kind == tokenFunc {
				fn := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				fn.idx = open.idx + 1
				if prev == tokenOpen {
					fn.idx = 0
				}
				out = append(out, s.call(fn))
			}
		case tokenSep:
			for len(stack) > 0 && stack[len(stack)-1].kind != tokenOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				stack[len(stack)-1].idx++
			}
		}
		prev = tok.kind
	}
	for len(stack) > 0 {
		tok := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch tok.kind {
		case tokenOpen:
			// Open with no close.
		case tokenFunc:
			// The call was never closed, so its argument count is unknown.
			// Assume it was written correctly.
			tok = s.call(tok)
			tok.idx = tok.arity
			out = append(out, tok)
		default:
			out = append(out, tok)
		}
	}
	return out
}

// call attaches the registered function and arity to a function token.
func (s *symbols) call(tok token) token {
	tok.fn = s.funcs[tok.text]
	tok.arity = -1
	if tok.fn != nil {
		tok.arity = tok.fn.arity
	}
	return tok
}

// pops reports whether top, an operator on the stack, must be output before
// in is pushed. An incoming prefix operator yields only to strictly higher
// precedence, making prefix operators right-associative. Infix and postfix
// operators yield to equal precedence as well, making them left-associative.
func pops(top, in *operator) bool {
	if in.fix == Prefix {
		return top.prec > in.prec
	}
	return top.prec >= in.prec
}
