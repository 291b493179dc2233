// Package mathexpr converts textual arithmetic expressions into symbolic
// expression trees.
//
// A tree supports numeric evaluation under a variable substitution,
// symbolic differentiation with respect to its unknown, identity-removing
// simplification, and rendering back to text with minimal brackets and
// superscript exponents.
//
// Multiplication may be implicit: "2x", "3(x+1)" and "(x+1)(x-1)" all
// parse as products. Unrecognized characters never make scanning fail;
// they are skipped, so only parsing can report an error.
package mathexpr
