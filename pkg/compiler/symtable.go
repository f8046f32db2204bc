package compiler

import (
	"fmt"
	"sort"
	"strings"
)

// SymbolTable tracks the session state a single parse accumulates: the
// variables declared so far, the labels declared by LABEL, and the labels
// referenced by GOTO. Teeny has one flat scope and one type (float), so a
// set per category is all that is needed.
type SymbolTable struct {
	vars   map[string]bool
	labels map[string]bool
	gotos  map[string]bool
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		vars:   make(map[string]bool),
		labels: make(map[string]bool),
		gotos:  make(map[string]bool),
	}
}

// DeclareVar records name as a declared variable and reports whether it was
// already declared.
func (s *SymbolTable) DeclareVar(name string) bool {
	_, ok := s.vars[name]
	s.vars[name] = true
	return ok
}

// HasVar reports whether name has been declared.
func (s *SymbolTable) HasVar(name string) bool {
	return s.vars[name]
}

// DeclareLabel records name as a declared label and reports whether it was
// already declared.
func (s *SymbolTable) DeclareLabel(name string) bool {
	_, ok := s.labels[name]
	s.labels[name] = true
	return ok
}

// MarkGoto records name as the target of a GOTO. Targets may be declared
// before or after the GOTO that names them.
func (s *SymbolTable) MarkGoto(name string) {
	s.gotos[name] = true
}

// UndefinedLabels returns, sorted, every GOTO target that was never declared
// by a LABEL statement.
func (s *SymbolTable) UndefinedLabels() []string {
	var missing []string
	for name := range s.gotos {
		if !s.labels[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	var sb strings.Builder
	dump := func(title string, set map[string]bool) {
		if len(set) == 0 {
			fmt.Fprintf(&sb, "%s: (empty)\n", title)
			return
		}
		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(&sb, "%s:\n", title)
		for _, name := range names {
			fmt.Fprintf(&sb, "  %s\n", name)
		}
	}
	dump("Variables", s.vars)
	dump("Labels", s.labels)
	dump("Goto targets", s.gotos)
	return sb.String()
}
