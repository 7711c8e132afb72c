package sema

import (
	"fmt"
	"reflect"

	"github.com/HicaroD/minicc/internal/ast"
	"github.com/HicaroD/minicc/internal/diagnostics"
	"github.com/HicaroD/minicc/internal/symbols"
)

type sema struct {
	declared *symbols.Declared
}

func New(declared *symbols.Declared) *sema {
	return &sema{declared: declared}
}

// Analyze checks that every variable referenced by stmt is already declared
// and then declares the assignment target. The right-hand side is checked
// before the target is added, so "x = x + 1" needs an earlier "x".
func Analyze(stmt *ast.Assignment, declared *symbols.Declared) error {
	return New(declared).checkExpr(stmt)
}

// Check analyzes every statement of program in order, stopping at the first
// error. Statements before the failing one stay declared.
func (s *sema) Check(program *ast.Program) error {
	for _, stmt := range program.Statements {
		err := s.checkExpr(stmt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *sema) checkExpr(expr ast.Expr) error {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return nil
	case *ast.VarRef:
		if !s.declared.Has(n.Name) {
			return &diagnostics.UndeclaredVariableError{Name: n.Name, Pos: n.Pos}
		}
		return nil
	case *ast.BinaryExpr:
		err := s.checkExpr(n.Left)
		if err != nil {
			return err
		}
		return s.checkExpr(n.Right)
	case *ast.Assignment:
		err := s.checkExpr(n.Value)
		if err != nil {
			return err
		}
		s.declared.Add(n.Name)
		return nil
	default:
		panic(fmt.Sprintf("unimplemented ast node for sema: %s", reflect.TypeOf(n)))
	}
}
