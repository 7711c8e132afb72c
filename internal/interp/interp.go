// Package interp evaluates statements against a variable store.
package interp

import (
	"fmt"
	"reflect"

	"github.com/HicaroD/minicc/internal/ast"
	"github.com/HicaroD/minicc/internal/diagnostics"
	"github.com/HicaroD/minicc/internal/lexer/token"
	"github.com/HicaroD/minicc/internal/symbols"
)

type Interpreter struct {
	store *symbols.Store
}

func New(store *symbols.Store) *Interpreter {
	return &Interpreter{store: store}
}

// Evaluate runs stmt and returns the assigned value. The store is written only
// after the whole right-hand side evaluated successfully.
func Evaluate(stmt *ast.Assignment, store *symbols.Store) (int64, error) {
	return New(store).Eval(stmt)
}

// Eval evaluates any node. Integer arithmetic wraps on overflow.
func (in *Interpreter) Eval(expr ast.Expr) (int64, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return n.Value, nil
	case *ast.VarRef:
		value, err := in.store.Lookup(n.Name)
		if err != nil {
			return 0, &diagnostics.UnboundVariableError{Name: n.Name, Pos: n.Pos, Err: err}
		}
		return value, nil
	case *ast.Assignment:
		value, err := in.Eval(n.Value)
		if err != nil {
			return 0, err
		}
		in.store.Set(n.Name, value)
		return value, nil
	case *ast.BinaryExpr:
		return in.evalBinary(n)
	default:
		panic(fmt.Sprintf("unimplemented ast node for interp: %s", reflect.TypeOf(n)))
	}
}

func (in *Interpreter) evalBinary(binary *ast.BinaryExpr) (int64, error) {
	lhs, err := in.Eval(binary.Left)
	if err != nil {
		return 0, err
	}
	rhs, err := in.Eval(binary.Right)
	if err != nil {
		return 0, err
	}

	switch binary.Op {
	case token.PLUS:
		return lhs + rhs, nil
	case token.MINUS:
		return lhs - rhs, nil
	case token.STAR:
		return lhs * rhs, nil
	case token.SLASH:
		if rhs == 0 {
			return 0, &diagnostics.DivisionByZeroError{Pos: binary.Pos}
		}
		// Go's integer division truncates toward zero.
		return lhs / rhs, nil
	default:
		panic(fmt.Sprintf("unimplemented binary operator: %s", binary.Op))
	}
}
