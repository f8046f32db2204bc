package compiler

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a compilation defect.
type ErrorKind int

const (
	ErrLex      ErrorKind = iota // malformed token
	ErrSyntax                    // token stream does not match the grammar
	ErrSemantic                  // undeclared variable, duplicate or undefined label
	ErrIO                        // source file unreadable or artifact unwritable
)

// kindNames is indexed by ErrorKind.
var kindNames = [...]string{
	ErrLex:      "lex",
	ErrSyntax:   "syntax",
	ErrSemantic: "semantic",
	ErrIO:       "io",
}

func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a single fatal compilation defect. Compilation stops at the
// first one; there is no recovery or collection.
type Error struct {
	Kind    ErrorKind
	Line    int // 1-based source line, 0 when no position applies
	Msg     string
	Snippet string // offending source line, "" when unavailable
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s error", e.Kind)
	if e.Line > 0 {
		fmt.Fprintf(&sb, " on line %d", e.Line)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Msg)
	if e.Snippet != "" {
		fmt.Fprintf(&sb, "\n  |> %s", e.Snippet)
	}
	return sb.String()
}

func lexErrorf(line int, format string, args ...any) error {
	return &Error{Kind: ErrLex, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func ioErrorf(format string, args ...any) error {
	return &Error{Kind: ErrIO, Msg: fmt.Sprintf(format, args...)}
}
