package testutil

import (
	"testing"

	"github.com/HicaroD/minicc/internal/ast"
	"github.com/HicaroD/minicc/internal/lexer"
	"github.com/HicaroD/minicc/internal/lexer/token"
	"github.com/HicaroD/minicc/internal/parser"
)

// ParseStmt lexes and parses src as a single strict statement, failing the test
// on any error.
func ParseStmt(t *testing.T, src string) *ast.Assignment {
	t.Helper()

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected lex error for %q: %v", src, err)
	}
	stmt, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return stmt
}

func NewNumber(value int64) *ast.NumberLiteral {
	return &ast.NumberLiteral{Value: value}
}

func NewVarRef(name string) *ast.VarRef {
	return &ast.VarRef{Name: name}
}

func NewBinExpr(left ast.Expr, op token.Kind, right ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{
		Left:  left,
		Op:    op,
		Right: right,
	}
}

func NewAssignment(name string, value ast.Expr) *ast.Assignment {
	return &ast.Assignment{Name: name, Value: value}
}
