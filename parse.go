package mathexpr

// expression -> term
// term       -> factor ( ( "+" | "-" ) factor )*
// factor     -> exponent ( ( "*" | "/" ) exponent )*
// exponent   -> primary ( "^" exponent )*
// primary    -> NUMERIC | CHAR | "(" expression ")"

// ParseText scans and parses an expression. Scanning never fails; any
// error is one of the parser's InputError kinds.
func ParseText(text string) (*Expr, error) {
	return parse(scan(text, nil))
}

// parse consumes a token sequence and builds an expression tree. The
// whole sequence must form one expression.
func parse(toks []token) (*Expr, error) {
	p := parser{toks: toks}
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		tok := p.peek()
		if tok.kind == tokenClose {
			return nil, &BracketError{Col: tok.pos, Right: ")"}
		}
		return nil, &TrailingTokenError{Col: tok.pos, Token: tok.String()}
	}
	return e, nil
}

// parser is a single forward cursor over a token sequence. One token of
// lookahead via match suffices at every choice point.
type parser struct {
	toks  []token
	cur   int
	depth int // open brackets entered and not yet closed
}

func (p *parser) atEnd() bool {
	return p.cur >= len(p.toks)
}

func (p *parser) peek() token {
	return p.toks[p.cur]
}

func (p *parser) prev() token {
	return p.toks[p.cur-1]
}

// match consumes the next token if it has one of the given kinds.
func (p *parser) match(kinds ...tokenKind) bool {
	if p.atEnd() {
		return false
	}
	for _, k := range kinds {
		if p.peek().kind == k {
			p.cur++
			return true
		}
	}
	return false
}

func (p *parser) expression() (*Expr, error) {
	return p.term()
}

func (p *parser) term() (*Expr, error) {
	e, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(tokenPlus, tokenMinus) {
		op := p.prev().kind
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		e = binary(op, e, rhs)
	}
	return e, nil
}

func (p *parser) factor() (*Expr, error) {
	e, err := p.exponent()
	if err != nil {
		return nil, err
	}
	for p.match(tokenMul, tokenDiv) {
		op := p.prev().kind
		rhs, err := p.exponent()
		if err != nil {
			return nil, err
		}
		e = binary(op, e, rhs)
	}
	return e, nil
}

func (p *parser) exponent() (*Expr, error) {
	e, err := p.primary()
	if err != nil {
		return nil, err
	}
	// Recursing on the right-hand side makes ^ right-associative:
	// 2^3^2 is 2^(3^2).
	for p.match(tokenPow) {
		rhs, err := p.exponent()
		if err != nil {
			return nil, err
		}
		e = binary(tokenPow, e, rhs)
	}
	return e, nil
}

func (p *parser) primary() (*Expr, error) {
	if p.match(tokenNum) {
		return Const(p.prev().num), nil
	}
	if p.match(tokenChar) {
		return Var(p.prev().name), nil
	}
	if p.match(tokenOpen) {
		open := p.prev()
		p.depth++
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.match(tokenClose) {
			return nil, &BracketError{Col: open.pos, Left: "("}
		}
		p.depth--
		return e, nil
	}
	if p.atEnd() {
		col := 1
		if len(p.toks) > 0 {
			col = p.prev().pos + 1
		}
		return nil, &EmptyExpressionError{Col: col}
	}
	tok := p.peek()
	if tok.kind == tokenClose {
		if p.depth > 0 {
			// Inside brackets the close is matched, so the failure is
			// the missing operand: () has brackets but no expression.
			return nil, &EmptyExpressionError{Col: tok.pos, End: tok.String()}
		}
		return nil, &BracketError{Col: tok.pos, Right: ")"}
	}
	return nil, &EmptyExpressionError{Col: tok.pos, End: tok.String()}
}

// binary builds the tree node for a binary operator token.
func binary(op tokenKind, l, r *Expr) *Expr {
	switch op {
	case tokenPlus:
		return Add(l, r)
	case tokenMinus:
		return Sub(l, r)
	case tokenMul:
		return Mul(l, r)
	case tokenDiv:
		return Div(l, r)
	case tokenPow:
		return Pow(l, r)
	}
	panic("mathexpr: invalid binary operator " + op.String())
}
