package mathexpr

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Context is a context for evaluating expression trees to arbitrary
// precision. It is not safe to use a Context concurrently, but any number
// of contexts may evaluate the same tree at once.
type Context struct {
	stack []*big.Float
	names map[string]*big.Float
	prec  uint
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  *big.Float
	}
	varsopt map[string]*big.Float
	precopt uint
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}
func (precopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val *big.Float) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]*big.Float) ContextOption {
	return varsopt(vars)
}

// Prec sets the precision of calculations.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given,
// the default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64}
	return ctx.Clone(opts...)
}

// EvalBig evaluates e in ctx and returns the result. If an error occurs,
// e.g. a missing variable definition or an invalid division, then the
// result is nil and ctx.Err returns the error.
func (e *Expr) EvalBig(ctx *Context) *big.Float {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		panic("mathexpr: EvalBig during EvalBig")
	}
	err := e.evalBig(ctx)
	ctx.err = err
	if err != nil {
		return nil
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating an expression.
// Panics if ctx has not been used to evaluate an expression. Returns nil
// if an error occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("mathexpr: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("mathexpr: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad tree?)")
	}
}

// Err returns the first error that occurred while evaluating an
// expression with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Set sets the value of a variable. Returns ctx for chaining. Calling Set
// while the context is being used to evaluate an expression panics.
func (ctx *Context) Set(name string, value *big.Float) *Context {
	if len(ctx.stack) > 1 {
		panic("mathexpr: Set on in-use context")
	}
	if ctx.names == nil {
		ctx.names = make(map[string]*big.Float)
	}
	ctx.names[name] = new(big.Float).SetPrec(ctx.prec).Set(value)
	return ctx
}

// Lookup returns a copy of the value of a variable. If there is no such
// variable in the context, then the result is nil.
func (ctx *Context) Lookup(name string) *big.Float {
	v := ctx.names[name]
	if v == nil {
		return nil
	}
	return new(big.Float).Copy(v)
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it. The
// returned context has no Result and is safe to use to evaluate an
// expression.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]*big.Float, 0, cap(ctx.stack)),
		names: make(map[string]*big.Float, len(ctx.names)),
		prec:  ctx.prec,
	}
	// Check for a precision setting first. Loop backward so we apply the
	// last precision.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	// Copy variables. (We always need a copy in case of Set.) If we have
	// the same precision, we can just copy pointers.
	if n.prec == ctx.prec {
		for name, val := range ctx.names {
			n.names[name] = val
		}
	} else {
		for name, val := range ctx.names {
			n.names[name] = new(big.Float).SetPrec(n.prec).Set(val)
		}
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = new(big.Float).SetPrec(n.prec).Set(opt.val)
		case varsopt:
			for k, v := range opt {
				n.names[k] = new(big.Float).SetPrec(n.prec).Set(v)
			}
		case precopt:
			// Already done. Do nothing.
		default:
			panic("mathexpr: unknown option type")
		}
	}
	return &n
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value
// may be modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// evalBig pushes the node's value to the context's stack.
func (e *Expr) evalBig(ctx *Context) error {
	switch e.kind {
	case exprConst:
		ctx.push().SetFloat64(e.num)
		return nil
	case exprUnknown:
		v := ctx.names[e.name]
		if v == nil {
			return &NameError{Name: e.name}
		}
		ctx.push().Set(v)
		return nil
	}
	if err := e.left.evalBig(ctx); err != nil {
		return err
	}
	if err := e.right.evalBig(ctx); err != nil {
		return err
	}
	r := ctx.pop()
	l := ctx.top()
	switch e.kind {
	case exprAdd:
		l.Add(l, r)
	case exprSub:
		l.Sub(l, r)
	case exprMul:
		l.Mul(l, r)
	case exprDiv:
		// Guard against invalid divisions, 0/0 or inf/inf.
		if l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf() {
			return &DomainError{X: r, Op: "/"}
		}
		l.Quo(l, r)
	case exprPow:
		// Guard against invalid exponentiations, i.e. negative base.
		// TODO: allow negative base with integer exponent
		if l.Signbit() {
			return &DomainError{X: l, Op: "^"}
		}
		bigfloat.Pow(l, l, r)
	default:
		panic("mathexpr: invalid expression kind " + e.kind.String())
	}
	return nil
}

// EvalText is a shortcut to parse an expression and evaluate it to
// arbitrary precision.
func EvalText(src string, opts ...ContextOption) (*big.Float, error) {
	e, err := ParseText(src)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(opts...)
	e.EvalBig(ctx)
	return ctx.Result(), ctx.Err()
}

// DomainError is an error returned when an operation is applied to values
// outside its domain, such as 0/0 or a power with a negative base.
type DomainError struct {
	// X is the out-of-domain operand.
	X *big.Float
	// Op is the operator.
	Op string
}

func (err *DomainError) Error() string {
	return err.X.String() + " outside domain of " + err.Op
}
