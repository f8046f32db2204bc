package compiler

import (
	"errors"
	"strings"
	"testing"
)

// parse runs a full parse session over input and returns the first defect.
func parse(input string) error {
	p := NewParser(NewLexer(input), NewEmitter(), NewSymbolTable())
	return p.Parse()
}

// TestParse verifies which programs the grammar accepts and rejects.
func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "Label Print Goto",
			input: "LABEL loop\nPRINT \"hello, world\"\nGOTO loop",
		},
		{
			name:  "Empty Program",
			input: "",
		},
		{
			name:  "Only Comments And Newlines",
			input: "# nothing here\n\n\n",
		},
		{
			name:  "Let Then Print",
			input: "LET a = 1\nPRINT a",
		},
		{
			name:  "Let May Reference Itself",
			input: "LET foo = foo + 1",
		},
		{
			name:  "Input Declares Its Variable",
			input: "INPUT x\nPRINT x",
		},
		{
			name:  "If With Comparison",
			input: "LET a = 1\nIF a > 0 THEN\nPRINT a\nENDIF",
		},
		{
			name:  "While Loop",
			input: "LET n = 5\nWHILE n > 0 REPEAT\nLET n = n - 1\nENDWHILE",
		},
		{
			name:  "Nested Blocks",
			input: "LET n = 3\nWHILE n > 0 REPEAT\nIF n == 1 THEN\nPRINT \"last\"\nENDIF\nLET n = n - 1\nENDWHILE",
		},
		{
			name:  "Chained Comparison",
			input: "IF 1 < 2 < 3 THEN\nPRINT \"yes\"\nENDIF",
		},
		{
			name:  "Forward Goto",
			input: "GOTO done\nLABEL done",
		},
		{
			name:  "Unary Signs",
			input: "LET a = -1\nLET b = +a - -2",
		},
		{
			name:    "Undeclared Variable In Let",
			input:   "LET foo = bar * 3 + 2",
			wantErr: true,
		},
		{
			name:    "Undeclared Variable In Print",
			input:   "PRINT index\nGOTO main\n",
			wantErr: true,
		},
		{
			name:    "Undeclared Variable In Nested If",
			input:   "LET foo = 1\nIF foo > 0 THEN\nIF 10 * 10 < 100 THEN\nPRINT bar\nENDIF\nENDIF",
			wantErr: true,
		},
		{
			name:    "Goto Undefined Label",
			input:   "LABEL start\nGOTO missing\n",
			wantErr: true,
		},
		{
			name:    "Duplicate Label",
			input:   "LABEL a\nLABEL a",
			wantErr: true,
		},
		{
			name:    "If Without Comparison Operator",
			input:   "IF 1 THEN\nPRINT \"x\"\nENDIF",
			wantErr: true,
		},
		{
			name:    "If Without Then",
			input:   "IF 1 > 0\nPRINT \"x\"\nENDIF",
			wantErr: true,
		},
		{
			name:    "If Without Endif",
			input:   "IF 1 > 0 THEN\nPRINT \"x\"\n",
			wantErr: true,
		},
		{
			name:    "While Without Repeat",
			input:   "WHILE 1 > 0\nPRINT \"x\"\nENDWHILE",
			wantErr: true,
		},
		{
			name:    "Assignment Without Let",
			input:   "foo = 1\n",
			wantErr: true,
		},
		{
			name:    "Let Without Assign",
			input:   "LET foo 1\n",
			wantErr: true,
		},
		{
			name:    "Missing Newline Between Statements",
			input:   "PRINT 1 PRINT 2",
			wantErr: true,
		},
		{
			name:    "Keyword As Expression",
			input:   "LET a = PRINT\n",
			wantErr: true,
		},
		{
			name:    "Lex Error Surfaces Through Parse",
			input:   "LET a = 9.\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestParseErrorKinds verifies that each defect is classified and located.
func TestParseErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind ErrorKind
		wantLine int // 0 means the defect has no single line
	}{
		{
			name:     "Undeclared Variable Is Semantic",
			input:    "LET a = 1\nPRINT bar",
			wantKind: ErrSemantic,
			wantLine: 2,
		},
		{
			name:     "Duplicate Label Is Semantic",
			input:    "LABEL a\nLABEL a",
			wantKind: ErrSemantic,
			wantLine: 2,
		},
		{
			name:     "Undefined Goto Target Is Semantic",
			input:    "GOTO nowhere\n",
			wantKind: ErrSemantic,
			wantLine: 0,
		},
		{
			name:     "Missing Comparison Is Syntax",
			input:    "IF 1 THEN\nPRINT \"x\"\nENDIF",
			wantKind: ErrSyntax,
			wantLine: 1,
		},
		{
			name:     "Invalid Statement Is Syntax",
			input:    "LET a = 1\nfoo = 2\n",
			wantKind: ErrSyntax,
			wantLine: 2,
		},
		{
			name:     "Malformed Number Is Lexical",
			input:    "LET a = 9.\n",
			wantKind: ErrLex,
			wantLine: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parse(tt.input)
			if err == nil {
				t.Fatal("Parse() succeeded, expected an error")
			}
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("Parse() error %v is not a *Error", err)
			}
			if cerr.Kind != tt.wantKind {
				t.Errorf("error kind = %v, want %v", cerr.Kind, tt.wantKind)
			}
			if cerr.Line != tt.wantLine {
				t.Errorf("error line = %d, want %d", cerr.Line, tt.wantLine)
			}
		})
	}
}

// TestParseErrorSnippet verifies that parser diagnostics carry the offending
// source line.
func TestParseErrorSnippet(t *testing.T) {
	err := parse("LET a = 1\nPRINT bar")
	if err == nil {
		t.Fatal("Parse() succeeded, expected an error")
	}
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Parse() error %v is not a *Error", err)
	}
	if cerr.Snippet != "PRINT bar" {
		t.Errorf("error snippet = %q, want %q", cerr.Snippet, "PRINT bar")
	}
	if !strings.Contains(err.Error(), "|> PRINT bar") {
		t.Errorf("error text %q does not show the source line", err.Error())
	}
}

// TestParseReportsFirstMissingLabel verifies deterministic reporting when
// several GOTO targets are undefined.
func TestParseReportsFirstMissingLabel(t *testing.T) {
	err := parse("GOTO zebra\nGOTO apple\n")
	if err == nil {
		t.Fatal("Parse() succeeded, expected an error")
	}
	if !strings.Contains(err.Error(), `"apple"`) {
		t.Errorf("error %q should name the alphabetically first missing label", err.Error())
	}
}
