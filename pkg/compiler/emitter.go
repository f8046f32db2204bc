package compiler

import (
	"fmt"
	"os"
	"strings"
)

// Emitter accumulates the generated C program in two append-only buffers.
// The header holds the prologue and the float declarations the parser
// discovers along the way; code holds the statement bodies. Keeping them
// apart is what lets a single pass declare variables at their first use
// while still placing every declaration ahead of every statement.
type Emitter struct {
	header strings.Builder
	code   strings.Builder
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

// HeaderLine appends a formatted line to the header buffer.
func (e *Emitter) HeaderLine(format string, args ...any) {
	fmt.Fprintf(&e.header, format+"\n", args...)
}

// Emit appends formatted text to the code buffer without a newline. The
// parser uses it to build up a statement piecewise as it recognizes the
// pieces.
func (e *Emitter) Emit(format string, args ...any) {
	fmt.Fprintf(&e.code, format, args...)
}

// EmitLine appends a formatted line to the code buffer.
func (e *Emitter) EmitLine(format string, args ...any) {
	fmt.Fprintf(&e.code, format+"\n", args...)
}

// Program returns the finished artifact: the header buffer followed by the
// code buffer.
func (e *Emitter) Program() string {
	return e.header.String() + e.code.String()
}

// WriteFile writes the finished artifact to path.
func (e *Emitter) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(e.Program()), 0o644); err != nil {
		return ioErrorf("%v", err)
	}
	return nil
}
