// Package interp is a minimal tree-walking evaluator for the Moebius
// AST, kept separate from the combinator/pratt core so the grammar
// packages stay free of any notion of integer arithmetic semantics.
package interp

import (
	"errors"
	"fmt"

	"github.com/midbel/moebius/environ"
	"github.com/midbel/moebius/lang"
)

var ErrDivideByZero = errors.New("division by zero")

// NewEnv returns an empty, top-level variable scope.
func NewEnv() environ.Environ[int64] {
	return environ.Empty[int64]()
}

// Eval walks expr, resolving identifiers against env.
func Eval(expr lang.Expr, env environ.Environ[int64]) (int64, error) {
	switch e := expr.(type) {
	case lang.Number:
		return e.Value, nil
	case lang.Ident:
		v, err := env.Resolve(e.Name)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", e.Name, err)
		}
		return v, nil
	case lang.Unary:
		v, err := Eval(e.Operand, env)
		if err != nil {
			return 0, err
		}
		if e.Op == '-' {
			return -v, nil
		}
		return 0, fmt.Errorf("unknown unary operator %q", e.Op)
	case lang.Binary:
		left, err := Eval(e.Left, env)
		if err != nil {
			return 0, err
		}
		right, err := Eval(e.Right, env)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case '+':
			return left + right, nil
		case '-':
			return left - right, nil
		case '*':
			return left * right, nil
		case '/':
			if right == 0 {
				return 0, ErrDivideByZero
			}
			return left / right, nil
		default:
			return 0, fmt.Errorf("unknown binary operator %q", e.Op)
		}
	default:
		return 0, fmt.Errorf("cannot evaluate %T", expr)
	}
}
