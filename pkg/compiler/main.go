// Package compiler provides a single-pass transpiler from Teeny, a dialect
// of Tiny BASIC, to C.
//
// Pipeline: Teeny source → Lexer → Parser (emits C while parsing) → C text
package compiler
