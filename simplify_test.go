package mathexpr_test

import (
	"testing"

	"mathexpr"
)

func TestSimplify(t *testing.T) {
	x := mathexpr.Var("x")
	one := mathexpr.Const(1)
	zero := mathexpr.Const(0)
	cases := []struct {
		name string
		e    *mathexpr.Expr
		want *mathexpr.Expr
	}{
		{"add-zero-right", mathexpr.Add(x, zero), x},
		{"add-zero-left", mathexpr.Add(zero, x), x},
		{"sub-zero", mathexpr.Sub(x, zero), x},
		{"sub-self", mathexpr.Sub(x, x), zero},
		{"sub-self-compound", mathexpr.Sub(mathexpr.Add(x, one), mathexpr.Add(x, one)), zero},
		{"mul-one-right", mathexpr.Mul(x, one), x},
		{"mul-one-left", mathexpr.Mul(one, x), x},
		{"mul-zero", mathexpr.Mul(x, zero), zero},
		{"div-self", mathexpr.Div(mathexpr.Add(x, one), mathexpr.Add(x, one)), one},
		{"pow-one", mathexpr.Pow(x, one), x},
		{"nested", mathexpr.Add(mathexpr.Mul(one, x), mathexpr.Mul(x, zero)), x},
		{"deep", mathexpr.Mul(mathexpr.Pow(mathexpr.Add(x, zero), one), one), x},

		// Simplification removes identities only; it never folds
		// constant arithmetic.
		{"no-folding", mathexpr.Add(mathexpr.Const(2), mathexpr.Const(3)), mathexpr.Add(mathexpr.Const(2), mathexpr.Const(3))},
		{"no-div-folding", mathexpr.Div(mathexpr.Const(4), mathexpr.Const(2)), mathexpr.Div(mathexpr.Const(4), mathexpr.Const(2))},
		{"leaf-const", mathexpr.Const(7), mathexpr.Const(7)},
		{"leaf-var", x, x},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.e.Simplify()
			if !got.Equal(c.want) {
				t.Errorf("%v simplified to %v, want %v", c.e, got, c.want)
			}
		})
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	x := mathexpr.Var("x")
	es := []*mathexpr.Expr{
		mathexpr.Add(x, mathexpr.Const(0)),
		mathexpr.Mul(mathexpr.Add(x, mathexpr.Const(1)), mathexpr.Sub(x, mathexpr.Const(1))),
		mathexpr.Div(mathexpr.Add(x, mathexpr.Const(1)), mathexpr.Add(mathexpr.Mul(mathexpr.Const(2), x), mathexpr.Const(4))),
		mathexpr.Pow(mathexpr.Add(x, mathexpr.Const(0)), mathexpr.Const(2)),
		mathexpr.Sub(mathexpr.Mul(x, mathexpr.Const(1)), mathexpr.Mul(mathexpr.Const(1), x)),
	}
	for _, e := range es {
		once := e.Simplify()
		twice := once.Simplify()
		if !once.Equal(twice) {
			t.Errorf("%v is not a fixed point: resimplified to %v", once, twice)
		}
	}
}

func TestSimplifyPreservesValue(t *testing.T) {
	srcs := []string{
		"x+0",
		"1x + 0(x^2)",
		"(x+1)(x-1)",
		"(x+1)/(2x+4)",
		"x^1 + 0",
	}
	for _, src := range srcs {
		e, err := mathexpr.ParseText(src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", src, err)
		}
		s := e.Simplify()
		for _, v := range []float64{-2, 0, 0.5, 3} {
			vars := map[string]float64{"x": v}
			want, err := e.Evaluate(vars)
			if err != nil {
				t.Fatalf("evaluating %q: %v", src, err)
			}
			got, err := s.Evaluate(vars)
			if err != nil {
				t.Fatalf("evaluating simplified %v: %v", s, err)
			}
			if got != want {
				t.Errorf("%q at x=%g: simplified %v gives %g, want %g", src, v, s, got, want)
			}
		}
	}
}
