package mathexpr

// Equation pairs two expressions. It is a data holder only; nothing in
// this package solves equations.
type Equation struct {
	LHS, RHS *Expr
}

// Eq builds an equation from two expression trees.
func Eq(lhs, rhs *Expr) *Equation {
	return &Equation{LHS: lhs, RHS: rhs}
}

func (q *Equation) String() string {
	return q.LHS.Format() + " = " + q.RHS.Format()
}

// Vars returns the sorted union of the free variables of both sides.
func (q *Equation) Vars() []string {
	set := make(map[string]bool)
	q.LHS.freeVars(set)
	q.RHS.freeVars(set)
	if len(set) == 0 {
		return nil
	}
	names := make([]string, 0, len(set))
	for k := range set {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}
