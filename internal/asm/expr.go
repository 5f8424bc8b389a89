package asm

import (
	"strconv"
	"strings"

	"fortio.org/safecast"

	"asmir/internal/symbol"
)

// Expr is one unit of section content: Data, Instruction, Label, Block,
// Raw, Comment, or Counted.
type Expr interface {
	isExpr()
}

// Label defines a symbol at the current location.
type Label struct {
	sym symbol.Symbol
}

func (Label) isExpr() {}

// DefLabel defines sym here.
func DefLabel(sym symbol.Symbol) (Label, error) {
	if sym.IsZero() {
		return Label{}, invalid("label", "zero symbol")
	}
	return Label{sym: sym}, nil
}

// MustLabel is DefLabel for static code.
func MustLabel(sym symbol.Symbol) Label { return must(DefLabel(sym)) }

func (l Label) Symbol() symbol.Symbol { return l.sym }

// Block groups expressions. It has no effect beyond ordering.
type Block struct {
	items []Expr
}

func (Block) isExpr() {}

// Group copies items into a Block.
func Group(items ...Expr) Block {
	out := make([]Expr, len(items))
	copy(out, items)
	return Block{items: out}
}

// Items returns a copy of the grouped expressions.
func (b Block) Items() []Expr {
	out := make([]Expr, len(b.items))
	copy(out, b.items)
	return out
}

// Len is the number of direct children.
func (b Block) Len() int { return len(b.items) }

// Raw is emitted verbatim, for text the IR cannot express.
type Raw struct {
	text string
}

func (Raw) isExpr() {}

// Verbatim wraps text as a Raw expression.
func Verbatim(text string) Raw { return Raw{text: text} }

func (r Raw) Text() string { return r.text }

// Comment is a single-line remark rendered with the dialect's comment marker.
type Comment struct {
	text string
}

func (Comment) isExpr() {}

// Remark builds a Comment. Line breaks are not allowed.
func Remark(text string) (Comment, error) {
	if strings.ContainsAny(text, "\r\n") {
		return Comment{}, invalid("comment", "line break in %q", text)
	}
	return Comment{text: text}, nil
}

func (c Comment) Text() string { return c.text }

// Counted is a byte sequence paired with a definable length. The bytes live
// under DataSymbol(name) and the length under LengthSymbol(name). How the
// length is defined is a dialect decision; consumers read it through
// SymbolValue(LengthSymbol(name)) either way.
type Counted struct {
	name  string
	bytes []byte
}

func (Counted) isExpr() {}

// CountedBytes defines b under the logical name. b is copied.
func CountedBytes(name string, b []byte) Counted {
	return Counted{name: name, bytes: cloneBytes(b)}
}

// CountedString is CountedBytes over the UTF-8 bytes of s.
func CountedString(name, s string) Counted {
	return Counted{name: name, bytes: []byte(s)}
}

// DataSymbol is the label holding the bytes of a counted sequence.
func DataSymbol(name string) symbol.Symbol { return symbol.Derived(name) }

// LengthSymbol is the symbol defining the length of a counted sequence.
func LengthSymbol(name string) symbol.Symbol { return symbol.Derived("S_" + name) }

func (c Counted) Name() string                { return c.name }
func (c Counted) Bytes() []byte               { return cloneBytes(c.bytes) }
func (c Counted) DataSymbol() symbol.Symbol   { return DataSymbol(c.name) }
func (c Counted) LengthSymbol() symbol.Symbol { return LengthSymbol(c.name) }

// Len is the byte count as a platform word.
func (c Counted) Len() (uint64, error) {
	n, err := safecast.Conv[uint64](len(c.bytes))
	if err != nil {
		return 0, invalid("counted bytes", "length of %q: %v", c.name, err)
	}
	return n, nil
}

// validateExpr rejects nil children and zero-valued nodes anywhere in e.
func validateExpr(e Expr, path string) error {
	switch x := e.(type) {
	case nil:
		return invalid("expression", "%s is nil", path)
	case Label:
		if x.sym.IsZero() {
			return invalid("expression", "%s: label without symbol", path)
		}
	case Instruction:
		if x.mnemonic == "" {
			return invalid("expression", "%s: instruction without mnemonic", path)
		}
	case Data:
		if x.kind == 0 {
			return invalid("expression", "%s: data without payload", path)
		}
	case Block:
		for i, item := range x.items {
			if err := validateExpr(item, path+"/"+strconv.Itoa(i)); err != nil {
				return err
			}
		}
	case Raw, Comment, Counted:
	default:
		return invalid("expression", "%s: unsupported node %T", path, e)
	}
	return nil
}
