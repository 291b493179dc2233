package mathexpr

import "math"

// Evaluate computes the value of e with each unknown looked up in vars.
// Every free variable of e must be present; a missing name returns a
// NameError. Division follows IEEE semantics, so a zero denominator
// yields an infinity or NaN rather than an error.
func (e *Expr) Evaluate(vars map[string]float64) (float64, error) {
	switch e.kind {
	case exprConst:
		return e.num, nil
	case exprUnknown:
		v, ok := vars[e.name]
		if !ok {
			return 0, &NameError{Name: e.name}
		}
		return v, nil
	}
	l, err := e.left.Evaluate(vars)
	if err != nil {
		return 0, err
	}
	r, err := e.right.Evaluate(vars)
	if err != nil {
		return 0, err
	}
	switch e.kind {
	case exprAdd:
		return l + r, nil
	case exprSub:
		return l - r, nil
	case exprMul:
		return l * r, nil
	case exprDiv:
		return l / r, nil
	case exprPow:
		return math.Pow(l, r), nil
	}
	panic("mathexpr: invalid expression kind " + e.kind.String())
}
