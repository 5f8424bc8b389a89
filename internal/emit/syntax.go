package emit

import (
	"asmir/internal/dialect"
)

const (
	labelIndent = "\t"
	stmtIndent  = "\t\t"
)

// syntax is everything that differs between dialects.
type syntax struct {
	kind dialect.Kind

	regPrefix string
	immPrefix string
	// reverse reports whether operands print source first.
	reverse bool

	sectionDirective string
	globalDirective  string
	wordDirective    string
	floatDirective   string
	byteDirective    string
	commentMarker    string

	// countedLength selects the length idiom for counted byte sequences.
	countedLength lengthIdiom
	dataRef       func(s *syntax, ref refParts) string
}

type lengthIdiom uint8

const (
	// lengthWord stores the length in a second labelled machine word.
	lengthWord lengthIdiom = iota + 1
	// lengthEqu binds the length to an assembler constant computed from `$`.
	lengthEqu
)

var syntaxes = map[dialect.Kind]*syntax{
	dialect.ATT: {
		kind:             dialect.ATT,
		regPrefix:        "%",
		immPrefix:        "$",
		reverse:          true,
		sectionDirective: ".section",
		globalDirective:  ".global",
		wordDirective:    ".quad",
		floatDirective:   ".double",
		byteDirective:    ".byte",
		commentMarker:    "#",
		countedLength:    lengthWord,
		dataRef:          attDataRef,
	},
	dialect.Intel: {
		kind:             dialect.Intel,
		regPrefix:        "",
		immPrefix:        "",
		reverse:          false,
		sectionDirective: "section",
		globalDirective:  "global",
		wordDirective:    "dq",
		floatDirective:   "dq",
		byteDirective:    "db",
		commentMarker:    ";",
		countedLength:    lengthEqu,
		dataRef:          intelDataRef,
	},
}

func syntaxFor(k dialect.Kind) (*syntax, error) {
	syn, ok := syntaxes[k]
	if !ok {
		return nil, &UnsupportedDialectError{Dialect: k}
	}
	return syn, nil
}
