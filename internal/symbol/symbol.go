// Package symbol derives assembler-legal names for labels and constants.
//
// Two kinds of symbols exist:
//
//   - explicit symbols carry programmer-chosen text verbatim (after a
//     legality check), e.g. `_start`;
//   - derived symbols are computed from an arbitrary logical name by hashing
//     it, so two call sites that mention the same logical name agree on the
//     emitted label without sharing a table.
//
// Derived names have the form `L_<16 hex digits>`. The digest is the first 64
// bits of SHA-256 over the logical name bytes; no salt, no process state.
package symbol

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DerivedPrefix starts every derived symbol.
const DerivedPrefix = "L_"

// Symbol is an immutable assembler-legal name.
type Symbol struct {
	name    string
	derived bool
}

// InvalidNameError reports an explicit name that no supported assembler accepts.
type InvalidNameError struct {
	Name   string
	Offset int
	Reason string
}

func (e *InvalidNameError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("invalid symbol %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid symbol %q at byte %d: %s", e.Name, e.Offset, e.Reason)
}

// Explicit returns a symbol whose rendered text is exactly name.
func Explicit(name string) (Symbol, error) {
	if err := checkName(name); err != nil {
		return Symbol{}, err
	}
	return Symbol{name: name}, nil
}

// MustExplicit is Explicit for static names; it panics on an illegal name.
func MustExplicit(name string) Symbol {
	sym, err := Explicit(name)
	if err != nil {
		panic(err)
	}
	return sym
}

// Derived hashes logical into a stable `L_<hex>` symbol. It is total.
func Derived(logical string) Symbol {
	sum := sha256.Sum256([]byte(logical))
	return Symbol{name: DerivedPrefix + hex.EncodeToString(sum[:8]), derived: true}
}

// Name returns the rendered text.
func (s Symbol) Name() string { return s.name }

// String implements fmt.Stringer.
func (s Symbol) String() string { return s.name }

// IsZero reports whether s was never constructed.
func (s Symbol) IsZero() bool { return s.name == "" }

// IsDerived reports whether s came from Derived.
func (s Symbol) IsDerived() bool { return s.derived }

// checkName accepts the identifier alphabet shared by GNU as and NASM:
// ASCII letters, digits, '_' and '.', not starting with a digit. Register
// names and the NASM keywords the renderer emits are rejected.
func checkName(name string) error {
	if name == "" {
		return &InvalidNameError{Name: name, Offset: -1, Reason: "empty name"}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '.':
		case c >= '0' && c <= '9':
			if i == 0 {
				return &InvalidNameError{Name: name, Offset: i, Reason: "leading digit reads as a number"}
			}
		default:
			return &InvalidNameError{Name: name, Offset: i, Reason: fmt.Sprintf("character %q not allowed", c)}
		}
	}
	if isReserved(name) {
		return &InvalidNameError{Name: name, Offset: -1, Reason: "reserved assembler word"}
	}
	return nil
}
