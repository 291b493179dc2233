package mathexpr

import (
	"errors"
	"testing"
)

func TestParseTrees(t *testing.T) {
	x := Var("x")
	cases := []struct {
		name string
		src  string
		want *Expr
	}{
		{"num", "3", Const(3)},
		{"decimal", "2.5", Const(2.5)},
		{"char", "x", x},
		{"default-name", "x", Var("")},
		{"multiletter", "foo", Var("foo")},
		{"paren", "(x)", x},
		{"nested", "(((x)))", x},
		{"add", "x+1", Add(x, Const(1))},
		{"sub", "x-1", Sub(x, Const(1))},
		{"mul", "x*2", Mul(x, Const(2))},
		{"div", "x/2", Div(x, Const(2))},
		{"pow", "x^2", Pow(x, Const(2))},
		{"precedence", "3+4*2", Add(Const(3), Mul(Const(4), Const(2)))},
		{"precedence-pow", "1+2*3^2", Add(Const(1), Mul(Const(2), Pow(Const(3), Const(2))))},
		{"leftassoc-sub", "x-y-z", Sub(Sub(x, Var("y")), Var("z"))},
		{"leftassoc-div", "12/2/3", Div(Div(Const(12), Const(2)), Const(3))},
		{"rightassoc-pow", "2^3^2", Pow(Const(2), Pow(Const(3), Const(2)))},
		{"grouping", "(3+4)*2", Mul(Add(Const(3), Const(4)), Const(2))},
		{"implicit-numchar", "2x", Mul(Const(2), x)},
		{"implicit-numopen", "3(x+1)", Mul(Const(3), Add(x, Const(1)))},
		{"implicit-charopen", "x(x+1)", Mul(x, Add(x, Const(1)))},
		{"implicit-closechar", "(x+1)x", Mul(Add(x, Const(1)), x)},
		{"implicit-closeopen", "(x+1)(x-1)", Mul(Add(x, Const(1)), Sub(x, Const(1)))},
		{"altmul", "4×2", Mul(Const(4), Const(2))},
		{"altdiv", "4÷2", Div(Const(4), Const(2))},
		{"bullet", "x•y", Mul(x, Var("y"))},
		{"superscript", "x²", Pow(x, Const(2))},
		{"superscript-neg", "x⁻¹", Pow(x, Const(-1))},
		{"sum-powers", "x^5 + x^12 + 8", Add(Add(Pow(x, Const(5)), Pow(x, Const(12))), Const(8))},
		{"quotient", "(x+1)/(2x+4)", Div(Add(x, Const(1)), Add(Mul(Const(2), x), Const(4)))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseText(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if !got.Equal(c.want) {
				t.Errorf("%q parsed to %v, want %v", c.src, got, c.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want any
	}{
		{"empty", "", new(*EmptyExpressionError)},
		{"blank", "  ", new(*EmptyExpressionError)},
		{"skipped-only", "$$$", new(*EmptyExpressionError)},
		{"close", ") ", new(*BracketError)},
		{"unclosed", "(x", new(*BracketError)},
		{"unclosed-nested", "((x)", new(*BracketError)},
		{"trailing-close", "x)", new(*BracketError)},
		{"trailing-operand", "x y", new(*TrailingTokenError)},
		{"trailing-num", "x 2", new(*TrailingTokenError)},
		{"dangling-op", "3+", new(*EmptyExpressionError)},
		{"dangling-pow", "x^", new(*EmptyExpressionError)},
		{"doubled-op", "3**2", new(*EmptyExpressionError)},
		{"leading-op", "*2", new(*EmptyExpressionError)},
		{"empty-brackets", "()", new(*EmptyExpressionError)},
		{"empty-nested-brackets", "(())", new(*EmptyExpressionError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := ParseText(c.src)
			if err == nil {
				t.Fatalf("%q parsed to %v without error", c.src, e)
			}
			if !errors.As(err, c.want) {
				t.Errorf("%q gave %#v, want %T", c.src, err, c.want)
			}
			var in InputError
			if !errors.As(err, &in) {
				t.Fatalf("%#v is not an InputError", err)
			}
			if in.Pos() < 1 {
				t.Errorf("error position %d is before the input", in.Pos())
			}
		})
	}
}

func TestParsePositions(t *testing.T) {
	_, err := ParseText("(x+1")
	var b *BracketError
	if !errors.As(err, &b) {
		t.Fatalf("got %#v, not a BracketError", err)
	}
	if b.Col != 1 {
		t.Errorf("unclosed bracket reported at column %d, want 1", b.Col)
	}

	_, err = ParseText("()")
	var empty *EmptyExpressionError
	if !errors.As(err, &empty) {
		t.Fatalf("got %#v, not an EmptyExpressionError", err)
	}
	if empty.Col != 2 {
		t.Errorf("empty brackets reported at column %d, want 2", empty.Col)
	}
}
