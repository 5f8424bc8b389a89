package dialect

import (
	"fmt"
	"strings"
)

// Kind selects a textual assembler syntax sharing one semantic IR.
type Kind uint8

const (
	Unknown Kind = iota
	// ATT is the GNU as (AT&T) syntax: `mov $1, %rax`.
	ATT
	// Intel is the NASM syntax: `mov rax, 1`.
	Intel

	kindCount
)

// All lists the supported dialects in a stable order.
func All() []Kind {
	return []Kind{ATT, Intel}
}

func (k Kind) String() string {
	switch k {
	case ATT:
		return "att"
	case Intel:
		return "intel"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}

// Valid reports whether k names a supported dialect.
func (k Kind) Valid() bool {
	return k > Unknown && k < kindCount
}

// Ext is the conventional source file extension for the dialect.
func (k Kind) Ext() string {
	switch k {
	case ATT:
		return ".s"
	case Intel:
		return ".asm"
	default:
		return ".txt"
	}
}

// Assembler names the reference assembler that accepts the dialect.
func (k Kind) Assembler() string {
	switch k {
	case ATT:
		return "as"
	case Intel:
		return "nasm"
	default:
		return ""
	}
}

// AssemblerArgs is the argument list that makes Assembler() turn the
// source file src into the ELF64 object obj.
func (k Kind) AssemblerArgs(src, obj string) []string {
	switch k {
	case ATT:
		return []string{"--64", "-o", obj, src}
	case Intel:
		return []string{"-f", "elf64", "-o", obj, src}
	default:
		return nil
	}
}

// Parse converts a user-facing name into a Kind.
func Parse(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "att", "at&t", "gas", "gnu":
		return ATT, nil
	case "intel", "nasm":
		return Intel, nil
	default:
		return Unknown, fmt.Errorf("invalid dialect: %q (expected: att|intel)", s)
	}
}

// ParseList parses "all" or a comma-separated list of dialect names.
// Duplicates are dropped; order follows first appearance.
func ParseList(s string) ([]Kind, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return All(), nil
	}
	var out []Kind
	seen := make(map[Kind]bool, kindCount)
	for _, part := range strings.Split(s, ",") {
		k, err := Parse(part)
		if err != nil {
			return nil, err
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out, nil
}
