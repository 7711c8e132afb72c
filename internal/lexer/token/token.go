package token

import "fmt"

type Token struct {
	Lexeme string
	Kind   Kind
	Pos    Pos
}

func New(lexeme string, kind Kind, position Pos) *Token {
	return &Token{Lexeme: lexeme, Kind: kind, Pos: position}
}

// Name returns the lexeme for identifiers and numbers and the kind otherwise.
func (token *Token) Name() string {
	if token.Kind == ID || token.Kind == NUMBER {
		return token.Lexeme
	}
	return token.Kind.String()
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %s | %s", token.Lexeme, token.Kind.Name(), token.Pos)
}
