package parser

import (
	"strconv"

	"github.com/HicaroD/minicc/internal/ast"
	"github.com/HicaroD/minicc/internal/diagnostics"
	"github.com/HicaroD/minicc/internal/lexer/token"
)

type Parser struct {
	// RequireSemicolon makes ';' mandatory after every statement. When false,
	// a statement ends where its expression ends and ';' may be omitted.
	RequireSemicolon bool

	tokens []*token.Token
	pos    int
}

func New(tokens []*token.Token, requireSemicolon bool) *Parser {
	parser := new(Parser)
	parser.tokens = tokens
	parser.pos = 0
	parser.RequireSemicolon = requireSemicolon
	return parser
}

// Parse parses the first statement of tokens, with ';' required. Tokens after
// that statement are ignored.
func Parse(tokens []*token.Token) (*ast.Assignment, error) {
	return New(tokens, true).ParseStatement()
}

// Done reports whether every token up to EOF has been consumed.
func (p *Parser) Done() bool {
	return p.peek().Kind == token.EOF
}

// ParseAll parses statements until EOF.
func (p *Parser) ParseAll() (*ast.Program, error) {
	program := &ast.Program{}
	for !p.Done() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

// ParseStatement parses exactly one statement:
//
//	statement := ID '=' expression [';']
//
// On success the cursor is left on the first token after the statement.
func (p *Parser) ParseStatement() (*ast.Assignment, error) {
	name, ok := p.expect(token.ID)
	if !ok {
		return nil, unexpected(name, token.ID)
	}

	assign, ok := p.expect(token.EQUAL)
	if !ok {
		return nil, unexpected(assign, token.EQUAL)
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	semicolon, ok := p.expect(token.SEMICOLON)
	if !ok && p.RequireSemicolon {
		return nil, unexpected(semicolon, token.SEMICOLON)
	}

	return &ast.Assignment{Name: name.Lexeme, Value: expr, Pos: name.Pos}, nil
}

// expression := term (('+' | '-') term)*
func (p *Parser) parseExpr() (ast.Expr, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		next := p.peek()
		if _, ok := token.TERM[next.Kind]; ok {
			p.skip()
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			lhs = &ast.BinaryExpr{Left: lhs, Op: next.Kind, Right: rhs, Pos: next.Pos}
		} else {
			break
		}
	}
	return lhs, nil
}

// term := factor (('*' | '/') factor)*
func (p *Parser) parseTerm() (ast.Expr, error) {
	lhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		next := p.peek()
		if _, ok := token.FACTOR[next.Kind]; ok {
			p.skip()
			rhs, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			lhs = &ast.BinaryExpr{Left: lhs, Op: next.Kind, Right: rhs, Pos: next.Pos}
		} else {
			break
		}
	}
	return lhs, nil
}

// factor := NUMBER | ID
func (p *Parser) parseFactor() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.NUMBER:
		p.skip()
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, &diagnostics.RangeError{Lexeme: tok.Lexeme, Pos: tok.Pos}
		}
		return &ast.NumberLiteral{Value: value, Pos: tok.Pos}, nil
	case token.ID:
		p.skip()
		return &ast.VarRef{Name: tok.Lexeme, Pos: tok.Pos}, nil
	default:
		return nil, unexpected(tok, token.NUMBER, token.ID)
	}
}

func (p *Parser) expect(expectedKind token.Kind) (*token.Token, bool) {
	tok := p.peek()
	if tok.Kind != expectedKind {
		return tok, false
	}
	p.skip()
	return tok, true
}

// peek never runs past the end: a missing EOF sentinel is synthesized.
func (p *Parser) peek() *token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	var pos token.Pos
	if len(p.tokens) > 0 {
		pos = p.tokens[len(p.tokens)-1].Pos
	}
	return token.New("", token.EOF, pos)
}

func (p *Parser) skip() {
	if p.pos < len(p.tokens) && p.tokens[p.pos].Kind != token.EOF {
		p.pos++
	}
}

func unexpected(found *token.Token, expected ...token.Kind) error {
	return &diagnostics.ParseError{Expected: expected, Found: found}
}
