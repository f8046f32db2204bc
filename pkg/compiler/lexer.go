package compiler

// keywords maps source text to its keyword TokenType.
// Teeny keywords are case-sensitive: "print" is an ordinary identifier.
var keywords = map[string]TokenType{
	"LABEL":    LABEL,
	"GOTO":     GOTO,
	"PRINT":    PRINT,
	"INPUT":    INPUT,
	"LET":      LET,
	"IF":       IF,
	"THEN":     THEN,
	"ENDIF":    ENDIF,
	"WHILE":    WHILE,
	"REPEAT":   REPEAT,
	"ENDWHILE": ENDWHILE,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
}

// NewLexer prepares src for scanning. A trailing newline is appended so the
// last statement always terminates and end-of-input defects (an unterminated
// string, a number ending in '.') are reported the same way everywhere.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src + "\n"), pos: 0, line: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

// skipWhitespace discards spaces, tabs, and carriage returns. Newlines are
// statement terminators, never whitespace.
func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		default:
			return
		}
	}
}

// skipComment discards a '#' comment up to, but not including, the newline
// that ends it.
func (l *Lexer) skipComment() {
	if l.peek() != '#' {
		return
	}
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanIdent collects an identifier or keyword token: an ASCII letter
// followed by ASCII letters and digits. The first letter must still be at
// l.peek().
func (l *Lexer) scanIdent() Token {
	line := l.line
	start := l.pos
	for isLetter(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	return newToken(IDENTIFIER, string(l.src[start:l.pos]), line)
}

// scanNumber collects a numeric literal: digits with an optional fraction.
// The first digit must still be at l.peek().
func (l *Lexer) scanNumber() (Token, error) {
	line := l.line
	start := l.pos
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' {
		if !isDigit(l.peek2()) {
			return Token{}, lexErrorf(line, "numbers must have at least one digit after the decimal point")
		}
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return newToken(NUMBER, string(l.src[start:l.pos]), line), nil
}

// scanString collects a string literal "...". The generated C embeds the
// text in a printf format verbatim, so '%' and the characters C would need
// escaping for are rejected here.
func (l *Lexer) scanString() (Token, error) {
	line := l.line
	l.advance() // consume opening "
	start := l.pos
	for l.pos < len(l.src) && l.peek() != '"' {
		switch l.peek() {
		case '%', '\r', '\n', '\\', '\t':
			return Token{}, lexErrorf(line, "unsupported character in string: %q", l.peek())
		}
		l.advance()
	}
	if l.pos >= len(l.src) {
		return Token{}, lexErrorf(line, "unterminated string literal")
	}
	lexeme := string(l.src[start:l.pos])
	l.advance() // consume closing "
	return newToken(STRING, lexeme, line), nil
}

// NextToken skips whitespace and at most one comment, then returns the next
// token. It returns a non-nil error on the first malformed construct.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	l.skipComment()

	if l.pos >= len(l.src) {
		return newToken(EOF, "", l.line), nil
	}

	ch := l.peek()
	line := l.line

	if isLetter(ch) {
		return l.scanIdent(), nil
	}
	if isDigit(ch) {
		return l.scanNumber()
	}
	if ch == '"' {
		return l.scanString()
	}

	l.advance() // ch is consumed; peek now sees the rune after it
	switch ch {
	case '\n':
		return newToken(NEWLINE, "\n", line), nil
	case '+':
		return newToken(PLUS, "+", line), nil
	case '-':
		return newToken(MINUS, "-", line), nil
	case '*':
		return newToken(STAR, "*", line), nil
	case '/':
		return newToken(SLASH, "/", line), nil
	case '=':
		if l.peek() == '=' {
			l.advance()
			return newToken(EQUALS, "==", line), nil
		}
		return newToken(ASSIGN, "=", line), nil
	case '<':
		if l.peek() == '=' {
			l.advance()
			return newToken(LESS_EQ, "<=", line), nil
		}
		return newToken(LESS, "<", line), nil
	case '>':
		if l.peek() == '=' {
			l.advance()
			return newToken(GREATER_EQ, ">=", line), nil
		}
		return newToken(GREATER, ">", line), nil
	case '!':
		if l.peek() == '=' {
			l.advance()
			return newToken(NOT_EQ, "!=", line), nil
		}
		return Token{}, lexErrorf(line, "'!' must be followed by '='")
	default:
		return Token{}, lexErrorf(line, "unexpected character %q", ch)
	}
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It returns a non-nil error on the first illegal construct.
func Lex(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
