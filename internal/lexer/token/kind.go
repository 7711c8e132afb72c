package token

import "fmt"

type Kind int

const (
	// EOF
	EOF Kind = iota
	INVALID

	// Identifier
	ID

	// Literals
	NUMBER

	// =
	EQUAL

	// +
	PLUS
	// -
	MINUS
	// *
	STAR
	// /
	SLASH

	// ;
	SEMICOLON
)

var TERM map[Kind]bool = map[Kind]bool{
	PLUS:  true,
	MINUS: true,
}

var FACTOR map[Kind]bool = map[Kind]bool{
	STAR:  true,
	SLASH: true,
}

// Name is the upper-case kind name shown by the token dump, e.g. "NUMBER".
func (kind Kind) Name() string {
	switch kind {
	case EOF:
		return "EOF"
	case INVALID:
		return "INVALID"
	case ID:
		return "ID"
	case NUMBER:
		return "NUMBER"
	case EQUAL:
		return "EQUAL"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case SEMICOLON:
		return "SEMICOLON"
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "end of input"
	case INVALID:
		return "INVALID"
	case ID:
		return "identifier"
	case NUMBER:
		return "number"
	case EQUAL:
		return "="
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case SEMICOLON:
		return ";"
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}
