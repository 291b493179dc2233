package mathexpr

import "strconv"

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

// BracketError is an error indicating an unmatched bracket in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the bracket.
	Col int
	// Left is the opening bracket that was never closed, if any.
	Left string
	// Right is the closing bracket that was never opened, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating that a subexpression has no
// operand where one is required. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string
	// at the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+err.End)
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TrailingTokenError is an error indicating leftover input after a
// complete expression. It implements InputError.
type TrailingTokenError struct {
	// Col is the position of the first leftover token.
	Col int
	// Token is the leftover token.
	Token string
}

func (err *TrailingTokenError) Error() string {
	return errpos(err.Col, "unexpected "+err.Token+" after expression")
}

func (err *TrailingTokenError) Pos() int {
	return err.Col
}

// NameError is an error from evaluating an expression whose unknown is
// missing from the substitution.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// ExponentError is an error from differentiating a power whose exponent
// is not a constant.
type ExponentError struct {
	// Exponent is the offending exponent expression.
	Exponent *Expr
}

func (err *ExponentError) Error() string {
	return "cannot differentiate power with non-constant exponent " + err.Exponent.Format()
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TrailingTokenError)(nil)
)
