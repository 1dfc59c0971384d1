package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo         Code = 1000
	LexInvalidToken Code = 1001

	// Парсерные
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnexpectedBracket Code = 2002
	SynUnmatchedBracket  Code = 2003

	// I/O
	IOLoadFileError Code = 4001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:          "Unknown error",
		LexInfo:              "Lexical information",
		LexInvalidToken:      "Invalid token",
		SynInfo:              "Syntax information",
		SynUnexpectedToken:   "Unexpected token",
		SynUnexpectedBracket: "Mismatched closing bracket",
		SynUnmatchedBracket:  "Unclosed bracket",
		IOLoadFileError:      "I/O load file error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
