package diagnostics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HicaroD/minicc/internal/lexer/token"
)

var ErrDivisionByZero = errors.New("division by zero")

// LexError reports a character that does not start any token.
type LexError struct {
	Char rune
	Pos  token.Pos
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s unknown character %q at position %d", e.Pos, e.Char, e.Pos.Offset)
}

type ParseError struct {
	Expected []token.Kind
	Found    *token.Token
}

func (e *ParseError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, kind := range e.Expected {
		expected[i] = kind.String()
	}
	return fmt.Sprintf(
		"%s expected %s, but found %s",
		e.Found.Pos,
		strings.Join(expected, " or "),
		e.Found.Name(),
	)
}

// FoundKind is the kind of the offending token.
func (e *ParseError) FoundKind() token.Kind {
	return e.Found.Kind
}

// RangeError reports a number literal that does not fit a signed 64-bit integer.
type RangeError struct {
	Lexeme string
	Pos    token.Pos
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s number literal %s out of range", e.Pos, e.Lexeme)
}

type UndeclaredVariableError struct {
	Name string
	Pos  token.Pos
}

func (e *UndeclaredVariableError) Error() string {
	return fmt.Sprintf("%s undeclared variable: %s", e.Pos, e.Name)
}

// UnboundVariableError reports a variable read before any value was stored.
// Err is the store's lookup error, if any.
type UnboundVariableError struct {
	Name string
	Pos  token.Pos
	Err  error
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("%s variable '%s' is not initialized", e.Pos, e.Name)
}

func (e *UnboundVariableError) Unwrap() error {
	return e.Err
}

type DivisionByZeroError struct {
	Pos token.Pos
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s %s", e.Pos, ErrDivisionByZero)
}

func (e *DivisionByZeroError) Unwrap() error {
	return ErrDivisionByZero
}
