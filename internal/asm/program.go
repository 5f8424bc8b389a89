package asm

import (
	"fmt"
	"strconv"
	"strings"

	"asmir/internal/symbol"
)

// Section is a named, ordered list of expressions.
type Section struct {
	name string
	body []Expr
}

// NewSection validates name (rendered as ".<name>") and every node in body.
func NewSection(name string, body ...Expr) (*Section, error) {
	if _, err := symbol.Explicit(name); err != nil {
		return nil, fmt.Errorf("section name: %w", err)
	}
	if strings.HasPrefix(name, ".") {
		return nil, invalid("section", "name %q must not start with '.'", name)
	}
	items := make([]Expr, len(body))
	copy(items, body)
	for i, e := range items {
		if err := validateExpr(e, name+"/"+strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}
	return &Section{name: name, body: items}, nil
}

// MustSection is NewSection for static trees.
func MustSection(name string, body ...Expr) *Section {
	return must(NewSection(name, body...))
}

func (s *Section) Name() string { return s.name }

// Body returns a copy of the section content.
func (s *Section) Body() []Expr {
	out := make([]Expr, len(s.body))
	copy(out, s.body)
	return out
}

// Program is ordered global exports followed by ordered sections.
type Program struct {
	exports  []symbol.Symbol
	sections []*Section
}

// NewProgram rejects zero or duplicate exports and nil sections.
func NewProgram(exports []symbol.Symbol, sections ...*Section) (*Program, error) {
	seen := make(map[string]bool, len(exports))
	ex := make([]symbol.Symbol, 0, len(exports))
	for i, sym := range exports {
		if sym.IsZero() {
			return nil, invalid("program", "export %d has no symbol", i)
		}
		if seen[sym.Name()] {
			return nil, invalid("program", "symbol %s exported twice", sym)
		}
		seen[sym.Name()] = true
		ex = append(ex, sym)
	}
	secs := make([]*Section, len(sections))
	for i, s := range sections {
		if s == nil {
			return nil, invalid("program", "section %d is nil", i)
		}
		secs[i] = s
	}
	return &Program{exports: ex, sections: secs}, nil
}

// Exports returns a copy of the exported symbols.
func (p *Program) Exports() []symbol.Symbol {
	out := make([]symbol.Symbol, len(p.exports))
	copy(out, p.exports)
	return out
}

// Sections returns the sections in order. The slice is a copy; sections
// themselves are immutable.
func (p *Program) Sections() []*Section {
	out := make([]*Section, len(p.sections))
	copy(out, p.sections)
	return out
}

// Labels lists every symbol the program defines, in emission order,
// including both symbols of counted sequences.
func (p *Program) Labels() []symbol.Symbol {
	var out []symbol.Symbol
	var walk func(e Expr)
	walk = func(e Expr) {
		switch x := e.(type) {
		case Label:
			out = append(out, x.sym)
		case Counted:
			out = append(out, x.DataSymbol(), x.LengthSymbol())
		case Block:
			for _, item := range x.items {
				walk(item)
			}
		}
	}
	for _, s := range p.sections {
		for _, e := range s.body {
			walk(e)
		}
	}
	return out
}
