package compiler

import (
	"fmt"
	"strings"
)

// Parser pulls tokens from the Lexer one at a time and emits C through the
// Emitter as each production is recognized. There is no AST: the grammar is
// simple enough that the translation is driven directly by the syntax.
//
// Grammar:
//
//	program    = {statement} EOF
//	statement  = "PRINT" (expression | STRING) nl
//	           | "IF" comparison "THEN" nl {statement} "ENDIF" nl
//	           | "WHILE" comparison "REPEAT" nl {statement} "ENDWHILE" nl
//	           | "LABEL" IDENTIFIER nl
//	           | "GOTO" IDENTIFIER nl
//	           | "LET" IDENTIFIER "=" expression nl
//	           | "INPUT" IDENTIFIER nl
//	comparison = expression (("==" | "!=" | "<" | "<=" | ">" | ">=") expression)+
//	expression = term {("+" | "-") term}
//	term       = unary {("*" | "/") unary}
//	unary      = ["+" | "-"] primary
//	primary    = NUMBER | IDENTIFIER
//	nl         = NEWLINE {NEWLINE}
type Parser struct {
	lexer       *Lexer
	em          *Emitter
	syms        *SymbolTable
	cur         Token
	sourceLines []string
}

// NewParser wires a parse session together. The symbol table carries all
// cross-statement state, so a fresh table means a fresh session.
func NewParser(l *Lexer, em *Emitter, syms *SymbolTable) *Parser {
	return &Parser{
		lexer:       l,
		em:          em,
		syms:        syms,
		sourceLines: strings.Split(string(l.src), "\n"),
	}
}

// fmtError wraps an error message with the source line where the token appears.
func (p *Parser) fmtError(kind ErrorKind, tok Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	lineIdx := tok.Line - 1 // Lines are 1-based

	snippet := ""
	if lineIdx >= 0 && lineIdx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[lineIdx])
	}

	return &Error{Kind: kind, Line: tok.Line, Msg: msg, Snippet: snippet}
}

// nextToken pulls the next token from the lexer into p.cur.
func (p *Parser) nextToken() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// check reports whether the current token has the given type.
func (p *Parser) check(tt TokenType) bool {
	return p.cur.Type == tt
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) error {
	if !p.check(tt) {
		return p.fmtError(ErrSyntax, p.cur, "expected %s, got %s (%q)", tt, p.cur.Type, p.cur.Lexeme)
	}
	return p.nextToken()
}

// parseNewline handles nl: one required NEWLINE, then any number more.
func (p *Parser) parseNewline() error {
	if err := p.expect(NEWLINE); err != nil {
		return err
	}
	for p.check(NEWLINE) {
		if err := p.nextToken(); err != nil {
			return err
		}
	}
	return nil
}

// parsePrimary handles primary: a number or a declared variable, echoed
// verbatim.
func (p *Parser) parsePrimary() error {
	switch {
	case p.check(NUMBER):
		p.em.Emit("%s", p.cur.Lexeme)
		return p.nextToken()
	case p.check(IDENTIFIER):
		if !p.syms.HasVar(p.cur.Lexeme) {
			return p.fmtError(ErrSemantic, p.cur, "undeclared variable %q", p.cur.Lexeme)
		}
		p.em.Emit("%s", p.cur.Lexeme)
		return p.nextToken()
	default:
		return p.fmtError(ErrSyntax, p.cur, "expected a number or identifier, got %s (%q)", p.cur.Type, p.cur.Lexeme)
	}
}

// parseUnary handles unary: an optional sign before a primary.
func (p *Parser) parseUnary() error {
	if p.check(PLUS) || p.check(MINUS) {
		p.em.Emit("%s", p.cur.Lexeme)
		if err := p.nextToken(); err != nil {
			return err
		}
	}
	return p.parsePrimary()
}

// parseTerm handles term: unaries joined by * and /.
func (p *Parser) parseTerm() error {
	if err := p.parseUnary(); err != nil {
		return err
	}
	for p.check(STAR) || p.check(SLASH) {
		p.em.Emit("%s", p.cur.Lexeme)
		if err := p.nextToken(); err != nil {
			return err
		}
		if err := p.parseUnary(); err != nil {
			return err
		}
	}
	return nil
}

// parseExpression handles expression: terms joined by + and -.
func (p *Parser) parseExpression() error {
	if err := p.parseTerm(); err != nil {
		return err
	}
	for p.check(PLUS) || p.check(MINUS) {
		p.em.Emit("%s", p.cur.Lexeme)
		if err := p.nextToken(); err != nil {
			return err
		}
		if err := p.parseTerm(); err != nil {
			return err
		}
	}
	return nil
}

func isComparisonOp(tt TokenType) bool {
	switch tt {
	case EQUALS, NOT_EQ, LESS, LESS_EQ, GREATER, GREATER_EQ:
		return true
	}
	return false
}

// parseComparison handles comparison: at least one comparison operator
// between expressions. A bare expression is not a valid condition.
func (p *Parser) parseComparison() error {
	if err := p.parseExpression(); err != nil {
		return err
	}
	if !isComparisonOp(p.cur.Type) {
		return p.fmtError(ErrSyntax, p.cur, "expected a comparison operator, got %s (%q)", p.cur.Type, p.cur.Lexeme)
	}
	for isComparisonOp(p.cur.Type) {
		p.em.Emit("%s", p.cur.Lexeme)
		if err := p.nextToken(); err != nil {
			return err
		}
		if err := p.parseExpression(); err != nil {
			return err
		}
	}
	return nil
}

// parseStatement handles one statement and the newline run that ends it.
func (p *Parser) parseStatement() error {
	switch p.cur.Type {
	case PRINT:
		if err := p.expect(PRINT); err != nil {
			return err
		}
		if p.check(STRING) {
			p.em.EmitLine(`printf("%s\n");`, p.cur.Lexeme)
			if err := p.expect(STRING); err != nil {
				return err
			}
		} else {
			p.em.Emit(`printf("%%.2f\n", (float)(`)
			if err := p.parseExpression(); err != nil {
				return err
			}
			p.em.EmitLine("));")
		}

	case IF:
		if err := p.expect(IF); err != nil {
			return err
		}
		p.em.Emit("if (")
		if err := p.parseComparison(); err != nil {
			return err
		}
		if err := p.expect(THEN); err != nil {
			return err
		}
		if err := p.parseNewline(); err != nil {
			return err
		}
		p.em.EmitLine(") {")
		for !p.check(ENDIF) {
			if err := p.parseStatement(); err != nil {
				return err
			}
		}
		if err := p.expect(ENDIF); err != nil {
			return err
		}
		p.em.EmitLine("}")

	case WHILE:
		if err := p.expect(WHILE); err != nil {
			return err
		}
		p.em.Emit("while (")
		if err := p.parseComparison(); err != nil {
			return err
		}
		if err := p.expect(REPEAT); err != nil {
			return err
		}
		if err := p.parseNewline(); err != nil {
			return err
		}
		p.em.EmitLine(") {")
		for !p.check(ENDWHILE) {
			if err := p.parseStatement(); err != nil {
				return err
			}
		}
		if err := p.expect(ENDWHILE); err != nil {
			return err
		}
		p.em.EmitLine("}")

	case LABEL:
		if err := p.expect(LABEL); err != nil {
			return err
		}
		if p.syms.DeclareLabel(p.cur.Lexeme) {
			return p.fmtError(ErrSemantic, p.cur, "duplicate label %q", p.cur.Lexeme)
		}
		p.em.EmitLine("%s:", p.cur.Lexeme)
		if err := p.expect(IDENTIFIER); err != nil {
			return err
		}

	case GOTO:
		if err := p.expect(GOTO); err != nil {
			return err
		}
		// The target may be declared later; reconciliation happens at
		// the end of the parse.
		p.syms.MarkGoto(p.cur.Lexeme)
		p.em.EmitLine("goto %s;", p.cur.Lexeme)
		if err := p.expect(IDENTIFIER); err != nil {
			return err
		}

	case LET:
		if err := p.expect(LET); err != nil {
			return err
		}
		// Declared before the right-hand side is parsed, so a first
		// use may reference itself: LET a = a + 1 is legal.
		if !p.syms.DeclareVar(p.cur.Lexeme) {
			p.em.HeaderLine("float %s;", p.cur.Lexeme)
		}
		p.em.Emit("%s = ", p.cur.Lexeme)
		if err := p.expect(IDENTIFIER); err != nil {
			return err
		}
		if err := p.expect(ASSIGN); err != nil {
			return err
		}
		if err := p.parseExpression(); err != nil {
			return err
		}
		p.em.EmitLine(";")

	case INPUT:
		if err := p.expect(INPUT); err != nil {
			return err
		}
		if !p.syms.DeclareVar(p.cur.Lexeme) {
			p.em.HeaderLine("float %s;", p.cur.Lexeme)
		}
		// A failed scanf leaves the variable untouched and the bad
		// token in the stream; store 0 and flush it instead.
		p.em.EmitLine(`if (0 == scanf("%%f", &%s)) {`, p.cur.Lexeme)
		p.em.EmitLine("%s = 0;", p.cur.Lexeme)
		p.em.EmitLine(`scanf("%%*s");`)
		p.em.EmitLine("}")
		if err := p.expect(IDENTIFIER); err != nil {
			return err
		}

	default:
		return p.fmtError(ErrSyntax, p.cur, "invalid statement at %s (%q)", p.cur.Type, p.cur.Lexeme)
	}

	return p.parseNewline()
}

// parseProgram handles program: the prologue, every statement, the epilogue.
func (p *Parser) parseProgram() error {
	p.em.HeaderLine("#include <stdio.h>")
	p.em.HeaderLine("int main(int argc, char *argv[]) {")

	for !p.check(EOF) {
		if err := p.parseStatement(); err != nil {
			return err
		}
	}

	p.em.EmitLine("return 0;")
	p.em.EmitLine("}")
	return nil
}

// Parse runs the whole translation. On success the emitter holds the
// complete C program; on failure the emitter's contents are meaningless and
// the first defect is returned.
func (p *Parser) Parse() error {
	if err := p.nextToken(); err != nil {
		return err
	}
	for p.check(NEWLINE) {
		if err := p.nextToken(); err != nil {
			return err
		}
	}
	if err := p.parseProgram(); err != nil {
		return err
	}

	if missing := p.syms.UndefinedLabels(); len(missing) > 0 {
		return &Error{Kind: ErrSemantic, Msg: fmt.Sprintf("goto to undefined label %q", missing[0])}
	}
	return nil
}
