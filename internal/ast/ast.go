// Package ast defines the abstract syntax tree of one assignment statement.
package ast

import (
	"fmt"

	"github.com/HicaroD/minicc/internal/lexer/token"
)

type NodeKind int

const (
	KIND_NUMBER_LITERAL NodeKind = iota
	KIND_VAR_REF
	KIND_ASSIGNMENT
	KIND_BINARY_EXPR
)

func (kind NodeKind) String() string {
	switch kind {
	case KIND_NUMBER_LITERAL:
		return "KIND_NUMBER_LITERAL"
	case KIND_VAR_REF:
		return "KIND_VAR_REF"
	case KIND_ASSIGNMENT:
		return "KIND_ASSIGNMENT"
	case KIND_BINARY_EXPR:
		return "KIND_BINARY_EXPR"
	default:
		return fmt.Sprintf("Unknown Node Kind: %d", int(kind))
	}
}

// Expr is implemented only by the node types of this package, so a type switch
// over NumberLiteral, VarRef, Assignment and BinaryExpr covers every node.
type Expr interface {
	Kind() NodeKind
	Position() token.Pos
	String() string

	exprNode()
}

type NumberLiteral struct {
	Value int64
	Pos   token.Pos
}

func (*NumberLiteral) exprNode() {}
func (*NumberLiteral) Kind() NodeKind { return KIND_NUMBER_LITERAL }
func (lit *NumberLiteral) Position() token.Pos { return lit.Pos }

func (lit *NumberLiteral) String() string {
	return fmt.Sprintf("%d", lit.Value)
}

type VarRef struct {
	Name string
	Pos  token.Pos
}

func (*VarRef) exprNode() {}
func (*VarRef) Kind() NodeKind { return KIND_VAR_REF }
func (ref *VarRef) Position() token.Pos { return ref.Pos }

func (ref *VarRef) String() string {
	return ref.Name
}

// Assignment is the root of every statement.
type Assignment struct {
	Name  string
	Value Expr
	Pos   token.Pos
}

func (*Assignment) exprNode() {}
func (*Assignment) Kind() NodeKind { return KIND_ASSIGNMENT }
func (assign *Assignment) Position() token.Pos { return assign.Pos }

func (assign *Assignment) String() string {
	return fmt.Sprintf("%s = %s", assign.Name, assign.Value)
}

type BinaryExpr struct {
	Left  Expr
	Op    token.Kind
	Right Expr
	Pos   token.Pos
}

func (*BinaryExpr) exprNode() {}
func (*BinaryExpr) Kind() NodeKind { return KIND_BINARY_EXPR }
func (binExpr *BinaryExpr) Position() token.Pos { return binExpr.Pos }

func (binExpr *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", binExpr.Left, binExpr.Op, binExpr.Right)
}

// Program is the statements of one source text, in order.
type Program struct {
	Statements []*Assignment
}

func (program *Program) String() string {
	s := ""
	for _, stmt := range program.Statements {
		s += stmt.String() + ";\n"
	}
	return s
}
