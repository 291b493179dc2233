package mathexpr

import "strconv"

// Expr is a node in a symbolic expression tree. Trees are immutable:
// every transformation returns a new tree, so an Expr may be shared and
// read concurrently.
type Expr struct {
	kind exprKind

	num  float64 // value of an exprConst
	name string  // name of an exprUnknown

	left  *Expr
	right *Expr
}

type exprKind int8

const (
	exprNone exprKind = iota

	exprConst   // a literal value
	exprUnknown // a free variable reference

	exprAdd // left + right
	exprSub // left - right
	exprMul // left * right
	exprDiv // left / right
	exprPow // left ^ right
)

func (k exprKind) String() string {
	names := [...]string{"None", "Constant", "Unknown", "Addition", "Subtraction", "Product", "Quotient", "Power"}
	if int(k) < len(names) {
		return names[k]
	}
	return "exprKind(" + strconv.Itoa(int(k)) + ")"
}

// Const returns a literal constant.
func Const(v float64) *Expr {
	return &Expr{kind: exprConst, num: v}
}

// Var returns a named unknown. The empty name means "x".
func Var(name string) *Expr {
	if name == "" {
		name = "x"
	}
	return &Expr{kind: exprUnknown, name: name}
}

// Add returns the sum l + r.
func Add(l, r *Expr) *Expr {
	return &Expr{kind: exprAdd, left: l, right: r}
}

// Sub returns the difference l - r.
func Sub(l, r *Expr) *Expr {
	return &Expr{kind: exprSub, left: l, right: r}
}

// Mul returns the product l * r.
func Mul(l, r *Expr) *Expr {
	return &Expr{kind: exprMul, left: l, right: r}
}

// Div returns the quotient numer / denom.
func Div(numer, denom *Expr) *Expr {
	return &Expr{kind: exprDiv, left: numer, right: denom}
}

// Pow returns the power base ^ exponent.
func Pow(base, exponent *Expr) *Expr {
	return &Expr{kind: exprPow, left: base, right: exponent}
}

// Equal reports whether e and o are structurally equal: same kind and
// equal children. It is the fixed-point test for Simplify.
func (e *Expr) Equal(o *Expr) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.kind != o.kind {
		return false
	}
	switch e.kind {
	case exprConst:
		return e.num == o.num
	case exprUnknown:
		return e.name == o.name
	}
	return e.left.Equal(o.left) && e.right.Equal(o.right)
}

// Vars returns the sorted names of the free variables of e, or nil if
// there are none.
func (e *Expr) Vars() []string {
	set := make(map[string]bool)
	e.freeVars(set)
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

func (e *Expr) freeVars(set map[string]bool) {
	switch e.kind {
	case exprConst:
	case exprUnknown:
		set[e.name] = true
	default:
		e.left.freeVars(set)
		e.right.freeVars(set)
	}
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// Substitute returns e with every unknown called name replaced by v.
func (e *Expr) Substitute(name string, v *Expr) *Expr {
	switch e.kind {
	case exprConst:
		return e
	case exprUnknown:
		if e.name == name {
			return v
		}
		return e
	}
	return &Expr{
		kind:  e.kind,
		left:  e.left.Substitute(name, v),
		right: e.right.Substitute(name, v),
	}
}

// isConst reports whether e is the literal constant v.
func (e *Expr) isConst(v float64) bool {
	return e.kind == exprConst && e.num == v
}

func (e *Expr) String() string {
	return e.Format()
}
