package compiler

import "os"

// Compile transpiles Teeny source text into a complete C program. The parse
// is single-pass: the parser pulls tokens from the lexer and emits C as it
// goes, so the first defect of any kind ends the compilation.
func Compile(src string) (string, error) {
	em := NewEmitter()
	syms := NewSymbolTable()
	p := NewParser(NewLexer(src), em, syms)
	if err := p.Parse(); err != nil {
		return "", err
	}
	return em.Program(), nil
}

// ReadSource reads a Teeny source file as UTF-8 text.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", ioErrorf("%v", err)
	}
	return string(data), nil
}
