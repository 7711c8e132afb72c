package parser

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/HicaroD/minicc/internal/ast"
	"github.com/HicaroD/minicc/internal/diagnostics"
	"github.com/HicaroD/minicc/internal/lexer"
	"github.com/HicaroD/minicc/internal/lexer/token"
)

func tokenize(t *testing.T, src string) []*token.Token {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	return tokens
}

func TestParseStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x = 1;", "x = 1"},
		{"x = y;", "x = y"},
		{"x = 3 + 4 * 2;", "x = (3 + (4 * 2))"},
		{"x = 3 * 4 + 2;", "x = ((3 * 4) + 2)"},
		{"x = 1 - 2 - 3;", "x = ((1 - 2) - 3)"},
		{"x = 8 / 4 / 2;", "x = ((8 / 4) / 2)"},
		{"x = a + b * c - d / e;", "x = ((a + (b * c)) - (d / e))"},
		{"total_1 = 10 * 2 * 3 + 1 - x;", "total_1 = ((((10 * 2) * 3) + 1) - x)"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestParseStatement(%q)", test.input), func(t *testing.T) {
			stmt, err := Parse(tokenize(t, test.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stmt.String() != test.expected {
				t.Errorf("expected %q, but got %q", test.expected, stmt.String())
			}
		})
	}
}

func TestParseTree(t *testing.T) {
	stmt, err := Parse(tokenize(t, "x = 3 + y * 2;"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stmt.Name != "x" {
		t.Errorf("expected name 'x', got %s", stmt.Name)
	}
	plus, ok := stmt.Value.(*ast.BinaryExpr)
	if !ok || plus.Op != token.PLUS {
		t.Fatalf("expected '+' binary expression, got %v", stmt.Value)
	}
	if lit, ok := plus.Left.(*ast.NumberLiteral); !ok || lit.Value != 3 {
		t.Errorf("expected number literal 3, got %v", plus.Left)
	}
	star, ok := plus.Right.(*ast.BinaryExpr)
	if !ok || star.Op != token.STAR {
		t.Fatalf("expected '*' binary expression, got %v", plus.Right)
	}
	if ref, ok := star.Left.(*ast.VarRef); !ok || ref.Name != "y" {
		t.Errorf("expected variable reference y, got %v", star.Left)
	}
	if star.Pos.Offset != 10 {
		t.Errorf("expected '*' at offset 10, got %d", star.Pos.Offset)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	tokens := tokenize(t, "a = b * 2 + c / 3 - 1;")

	first, err := Parse(tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Parse(tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected structurally equal trees, got %v and %v", first, second)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
		found    token.Kind
	}{
		{"1 = 2;", []token.Kind{token.ID}, token.NUMBER},
		{"= 2;", []token.Kind{token.ID}, token.EQUAL},
		{"", []token.Kind{token.ID}, token.EOF},
		{"x 2;", []token.Kind{token.EQUAL}, token.NUMBER},
		{"x + 2;", []token.Kind{token.EQUAL}, token.PLUS},
		{"x = ;", []token.Kind{token.NUMBER, token.ID}, token.SEMICOLON},
		{"x = + 1;", []token.Kind{token.NUMBER, token.ID}, token.PLUS},
		{"x = 1 +;", []token.Kind{token.NUMBER, token.ID}, token.SEMICOLON},
		{"x = 1 * * 2;", []token.Kind{token.NUMBER, token.ID}, token.STAR},
		{"x = -1;", []token.Kind{token.NUMBER, token.ID}, token.MINUS},
		{"x = 1", []token.Kind{token.SEMICOLON}, token.EOF},
		{"x = 1 2;", []token.Kind{token.SEMICOLON}, token.NUMBER},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestParseErrors(%q)", test.input), func(t *testing.T) {
			_, err := Parse(tokenize(t, test.input))

			var parseErr *diagnostics.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *diagnostics.ParseError, got %v", err)
			}
			if !reflect.DeepEqual(parseErr.Expected, test.expected) {
				t.Errorf("expected kinds %v, got %v", test.expected, parseErr.Expected)
			}
			if parseErr.FoundKind() != test.found {
				t.Errorf("expected found kind %s, got %s", test.found.Name(), parseErr.FoundKind().Name())
			}
		})
	}
}

func TestNumberOutOfRange(t *testing.T) {
	_, err := Parse(tokenize(t, "x = 99999999999999999999;"))

	var rangeErr *diagnostics.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected *diagnostics.RangeError, got %v", err)
	}
	if rangeErr.Lexeme != "99999999999999999999" {
		t.Errorf("unexpected lexeme %q", rangeErr.Lexeme)
	}
}

func TestParseLeavesTrailingTokens(t *testing.T) {
	p := New(tokenize(t, "a = 1; b = a;"), true)

	first, err := p.ParseStatement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.String() != "a = 1" {
		t.Errorf("expected 'a = 1', got %q", first)
	}
	if p.Done() {
		t.Fatalf("expected second statement to be left unconsumed")
	}

	second, err := p.ParseStatement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.String() != "b = a" {
		t.Errorf("expected 'b = a', got %q", second)
	}
	if !p.Done() {
		t.Errorf("expected parser to be done")
	}
}

func TestParseAll(t *testing.T) {
	tests := []struct {
		input            string
		requireSemicolon bool
		expected         []string
	}{
		{"a = 1; b = a + 1;", true, []string{"a = 1", "b = (a + 1)"}},
		{"a = 1 b = a + 1", false, []string{"a = 1", "b = (a + 1)"}},
		{"a = 1; b = 2", false, []string{"a = 1", "b = 2"}},
		{"", true, nil},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestParseAll(%q)", test.input), func(t *testing.T) {
			program, err := New(tokenize(t, test.input), test.requireSemicolon).ParseAll()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got []string
			for _, stmt := range program.Statements {
				got = append(got, stmt.String())
			}
			if !reflect.DeepEqual(got, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestParseAllRelaxedStillRejectsGarbage(t *testing.T) {
	_, err := New(tokenize(t, "a = 1 2"), false).ParseAll()

	var parseErr *diagnostics.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *diagnostics.ParseError, got %v", err)
	}
	if parseErr.FoundKind() != token.NUMBER {
		t.Errorf("expected NUMBER, got %s", parseErr.FoundKind().Name())
	}
}

func TestParseWithoutEOFSentinel(t *testing.T) {
	tokens := tokenize(t, "x = 1")
	tokens = tokens[:len(tokens)-1]

	stmt, err := New(tokens, false).ParseStatement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stmt.String() != "x = 1" {
		t.Errorf("expected 'x = 1', got %q", stmt)
	}
}
