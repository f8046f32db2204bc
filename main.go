package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"teenyc/pkg/compiler"
)

func main() {
	outPath := flag.String("o", "", "output C file path (default: source with .c extension)")
	showTokens := flag.Bool("tokens", false, "print the token stream and exit without generating C")
	printC := flag.Bool("print", false, "print the generated C to stdout as well as writing it")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one source file argument")
		flag.Usage()
		os.Exit(2)
	}
	inPath := flag.Arg(0)

	source, err := compiler.ReadSource(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *showTokens {
		tokens, err := compiler.Lex(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		return
	}

	em := compiler.NewEmitter()
	syms := compiler.NewSymbolTable()
	parser := compiler.NewParser(compiler.NewLexer(source), em, syms)
	if err := parser.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *printC {
		fmt.Print(em.Program())
	}

	output := *outPath
	if output == "" {
		output = defaultOutputPath(inPath)
	}

	if err := em.WriteFile(output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("compiled %d bytes -> %s\n", len(em.Program()), output)
}

func defaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if ext == "" {
		return inPath + ".c"
	}
	return strings.TrimSuffix(inPath, ext) + ".c"
}
