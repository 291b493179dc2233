package mathexpr

// Simplify removes additive and multiplicative identities from e and
// returns the result. It applies one rewriting pass at a time until the
// tree stops changing. Constant subexpressions are not evaluated:
// 2+3 stays 2+3, but x+0 becomes x.
func (e *Expr) Simplify() *Expr {
	a := e.step()
	b := a.step()
	for !a.Equal(b) {
		a, b = b, b.step()
	}
	return a
}

// step applies one round of local rewrites to every node of e.
func (e *Expr) step() *Expr {
	switch e.kind {
	case exprConst, exprUnknown:
		return e
	case exprAdd:
		l, r := e.left.step(), e.right.step()
		if s := dropAdditiveIdentity(l, r); s != nil {
			return s
		}
		return Add(l, r)
	case exprSub:
		l, r := e.left.step(), e.right.step()
		if l.Equal(r) {
			return Const(0)
		}
		if s := dropAdditiveIdentity(l, r); s != nil {
			return s
		}
		return Sub(l, r)
	case exprMul:
		l, r := e.left.step(), e.right.step()
		if l.isConst(0) || r.isConst(0) {
			return Const(0)
		}
		if l.isConst(1) {
			return r
		}
		if r.isConst(1) {
			return l
		}
		return Mul(l, r)
	case exprDiv:
		l, r := e.left.step(), e.right.step()
		if l.Equal(r) {
			return Const(1)
		}
		return Div(l, r)
	case exprPow:
		if e.right.isConst(1) {
			return e.left.step()
		}
		return Pow(e.left.step(), e.right)
	}
	panic("mathexpr: invalid expression kind " + e.kind.String())
}

// dropAdditiveIdentity removes an operand equal to zero. Addition and
// subtraction share this rule; a non-nil result replaces the node.
func dropAdditiveIdentity(l, r *Expr) *Expr {
	if l.isConst(0) {
		return r
	}
	if r.isConst(0) {
		return l
	}
	return nil
}
