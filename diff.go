package mathexpr

// Differentiate returns the derivative of e with respect to its unknown.
// Differentiation is single-variable: every unknown differentiates to 1
// regardless of name, so trees mixing distinct unknown names are
// differentiated as if they shared one variable.
//
// Powers require a constant exponent; a power with a symbolic exponent
// returns an ExponentError. The result is not simplified.
func (e *Expr) Differentiate() (*Expr, error) {
	switch e.kind {
	case exprConst:
		return Const(0), nil
	case exprUnknown:
		return Const(1), nil
	case exprAdd:
		dl, dr, err := e.diffChildren()
		if err != nil {
			return nil, err
		}
		return Add(dl, dr), nil
	case exprSub:
		dl, dr, err := e.diffChildren()
		if err != nil {
			return nil, err
		}
		return Sub(dl, dr), nil
	case exprMul:
		// Product rule: (lr)' = l'r + lr'.
		dl, dr, err := e.diffChildren()
		if err != nil {
			return nil, err
		}
		return Add(Mul(dl, e.right), Mul(e.left, dr)), nil
	case exprDiv:
		// Quotient rule: (n/d)' = (dn' - nd') / d^2.
		dn, dd, err := e.diffChildren()
		if err != nil {
			return nil, err
		}
		return Div(
			Sub(Mul(e.right, dn), Mul(e.left, dd)),
			Pow(e.right, Const(2)),
		), nil
	case exprPow:
		if e.right.kind != exprConst {
			return nil, &ExponentError{Exponent: e.right}
		}
		if e.left.kind == exprConst {
			return Const(0), nil
		}
		// Power rule with the chain rule: (b^n)' = n b^(n-1) b'.
		db, err := e.left.Differentiate()
		if err != nil {
			return nil, err
		}
		n := e.right.num
		return Mul(Mul(Const(n), Pow(e.left, Const(n-1))), db), nil
	}
	panic("mathexpr: invalid expression kind " + e.kind.String())
}

func (e *Expr) diffChildren() (dl, dr *Expr, err error) {
	dl, err = e.left.Differentiate()
	if err != nil {
		return nil, nil, err
	}
	dr, err = e.right.Differentiate()
	if err != nil {
		return nil, nil, err
	}
	return dl, dr, nil
}
