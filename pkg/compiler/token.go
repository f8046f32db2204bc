package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF     TokenType = iota // sentinel: end of input
	NEWLINE                  // statement terminator

	// Literals
	NUMBER     // numeric literal, e.g. 123 or 9.8654
	IDENTIFIER // variable / label name
	STRING     // string literal "..."

	// Keywords
	LABEL    // "LABEL"
	GOTO     // "GOTO"
	PRINT    // "PRINT"
	INPUT    // "INPUT"
	LET      // "LET"
	IF       // "IF"
	THEN     // "THEN"
	ENDIF    // "ENDIF"
	WHILE    // "WHILE"
	REPEAT   // "REPEAT"
	ENDWHILE // "ENDWHILE"

	// Operators
	ASSIGN     // =
	PLUS       // +
	MINUS      // -
	STAR       // *
	SLASH      // /
	EQUALS     // ==
	NOT_EQ     // !=
	LESS       // <
	LESS_EQ    // <=
	GREATER    // >
	GREATER_EQ // >=
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:        "EOF",
	NEWLINE:    "NEWLINE",
	NUMBER:     "NUMBER",
	IDENTIFIER: "IDENTIFIER",
	STRING:     "STRING",
	LABEL:      "LABEL",
	GOTO:       "GOTO",
	PRINT:      "PRINT",
	INPUT:      "INPUT",
	LET:        "LET",
	IF:         "IF",
	THEN:       "THEN",
	ENDIF:      "ENDIF",
	WHILE:      "WHILE",
	REPEAT:     "REPEAT",
	ENDWHILE:   "ENDWHILE",
	ASSIGN:     "ASSIGN",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
	EQUALS:     "EQUALS",
	NOT_EQ:     "NOT_EQ",
	LESS:       "LESS",
	LESS_EQ:    "LESS_EQ",
	GREATER:    "GREATER",
	GREATER_EQ: "GREATER_EQ",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

// newToken resolves keywords at construction time: an IDENTIFIER whose
// lexeme matches a keyword (exact, uppercase) becomes that keyword.
func newToken(tt TokenType, lexeme string, line int) Token {
	if tt == IDENTIFIER {
		if kw, ok := keywords[lexeme]; ok {
			tt = kw
		}
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line}
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}
