package lexer

import (
	"unicode/utf8"

	"github.com/HicaroD/minicc/internal/diagnostics"
	"github.com/HicaroD/minicc/internal/lexer/token"
)

const eof = '\000'

type Lexer struct {
	Filename string

	src    []byte
	offset int
	pos    token.Pos
}

func New(filename string, src []byte) *Lexer {
	lexer := new(Lexer)

	lexer.Filename = filename
	lexer.pos = token.NewPosition(filename, 1, 1)
	lexer.src = src
	lexer.offset = 0

	return lexer
}

// Tokenize lexes a single piece of source text with no file name attached.
func Tokenize(text string) ([]*token.Token, error) {
	return New("", []byte(text)).Tokenize()
}

// Next returns the next token. On an unknown character the returned token is
// INVALID and the error is a *diagnostics.LexError.
func (lex *Lexer) Next() (*token.Token, error) {
	lex.skipWhitespace()
	character := lex.peekChar()

	tok := &token.Token{}
	tok.Kind = token.INVALID

	if lex.offset >= len(lex.src) {
		lex.consumeTokenNoLex(tok, token.EOF)
		return tok, nil
	}

	err := lex.getToken(tok, character)
	return tok, err
}

func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, nil
}

func (lex *Lexer) getToken(tok *token.Token, ch byte) error {
	switch ch {
	case '=':
		lex.consumeToken(tok, token.EQUAL)
	case '+':
		lex.consumeToken(tok, token.PLUS)
	case '-':
		lex.consumeToken(tok, token.MINUS)
	case '*':
		lex.consumeToken(tok, token.STAR)
	case '/':
		lex.consumeToken(tok, token.SLASH)
	case ';':
		lex.consumeToken(tok, token.SEMICOLON)
	default:
		switch {
		case isLetter(ch):
			lex.getId(tok)
		case isDigit(ch):
			lex.getNumberLit(tok)
		default:
			char, _ := utf8.DecodeRune(lex.src[lex.offset:])
			return &diagnostics.LexError{Char: char, Pos: lex.pos}
		}
	}
	return nil
}

func (lex *Lexer) getNumberLit(tok *token.Token) {
	tok.Pos = lex.pos
	tok.Kind = token.NUMBER
	tok.Lexeme = string(lex.readWhile(isDigit))
}

func (lex *Lexer) getId(tok *token.Token) {
	tok.Pos = lex.pos
	tok.Kind = token.ID
	tok.Lexeme = string(lex.readWhile(
		func(chr byte) bool { return isLetter(chr) || isDigit(chr) || chr == '_' },
	))
}

func (lex *Lexer) consumeToken(tok *token.Token, kind token.Kind) {
	tok.Lexeme = string(lex.src[lex.offset])
	tok.Kind = kind
	tok.Pos = lex.pos
	lex.nextChar()
}

func (lex *Lexer) consumeTokenNoLex(tok *token.Token, kind token.Kind) {
	tok.Lexeme = ""
	tok.Kind = kind
	tok.Pos = lex.pos
}

func (lex *Lexer) skipWhitespace() {
	lex.readWhile(func(ch byte) bool {
		return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
	})
}

func (lex *Lexer) readWhile(isValid func(byte) bool) []byte {
	start := lex.offset
	for lex.offset < len(lex.src) && isValid(lex.peekChar()) {
		lex.nextChar()
	}
	return lex.src[start:lex.offset]
}

func (lex *Lexer) nextChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	lex.pos.Move(character)
	lex.offset++
	return character
}

func (lex *Lexer) peekChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	return lex.src[lex.offset]
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
