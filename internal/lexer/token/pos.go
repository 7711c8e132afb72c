package token

import "fmt"

type Pos struct {
	Filename     string
	Offset       int
	Line, Column int
}

func NewPosition(filename string, column, line int) Pos {
	return Pos{Filename: filename, Line: line, Column: column}
}

func (pos *Pos) Move(character byte) {
	pos.Offset++
	if character == '\n' {
		pos.Column = 1
		pos.Line++
	} else {
		pos.Column++
	}
}

func (pos Pos) String() string {
	if pos.Filename == "" {
		return fmt.Sprintf("[%d:%d]", pos.Line, pos.Column)
	}
	return fmt.Sprintf("[%s:%d:%d]", pos.Filename, pos.Line, pos.Column)
}
