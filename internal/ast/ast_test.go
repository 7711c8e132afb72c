package ast

import (
	"testing"

	"github.com/HicaroD/minicc/internal/lexer/token"
)

func TestString(t *testing.T) {
	stmt := &Assignment{
		Name: "x",
		Value: &BinaryExpr{
			Left: &NumberLiteral{Value: 3},
			Op:   token.PLUS,
			Right: &BinaryExpr{
				Left:  &VarRef{Name: "y"},
				Op:    token.STAR,
				Right: &NumberLiteral{Value: 2},
			},
		},
	}

	if stmt.String() != "x = (3 + (y * 2))" {
		t.Errorf("unexpected rendering %q", stmt.String())
	}

	program := &Program{Statements: []*Assignment{stmt, {Name: "z", Value: &VarRef{Name: "x"}}}}
	if program.String() != "x = (3 + (y * 2));\nz = x;\n" {
		t.Errorf("unexpected program rendering %q", program.String())
	}
}

func TestKinds(t *testing.T) {
	nodes := []Expr{&NumberLiteral{}, &VarRef{}, &Assignment{}, &BinaryExpr{}}
	expected := []NodeKind{KIND_NUMBER_LITERAL, KIND_VAR_REF, KIND_ASSIGNMENT, KIND_BINARY_EXPR}

	for i, node := range nodes {
		if node.Kind() != expected[i] {
			t.Errorf("expected %s, got %s", expected[i], node.Kind())
		}
	}
}
