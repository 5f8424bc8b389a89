package asm

import "strings"

// Instruction is a mnemonic with operands in canonical order: destination
// first, then sources, as in the ISA manuals. Renderers reorder positionally.
type Instruction struct {
	mnemonic string
	operands []Operand
}

func (Instruction) isExpr() {}

// NewInstruction validates mnemonic and copies operands.
// Prefixed forms such as "rep movsb" are accepted.
func NewInstruction(mnemonic string, operands ...Operand) (Instruction, error) {
	if mnemonic == "" {
		return Instruction{}, invalid("instruction", "empty mnemonic")
	}
	if strings.TrimSpace(mnemonic) != mnemonic || strings.ContainsAny(mnemonic, "\t\r\n;#,") || strings.Contains(mnemonic, "  ") {
		return Instruction{}, invalid("instruction", "malformed mnemonic %q", mnemonic)
	}
	for i, op := range operands {
		if op == nil {
			return Instruction{}, invalid("instruction", "%s operand %d is nil", mnemonic, i)
		}
	}
	ops := make([]Operand, len(operands))
	copy(ops, operands)
	return Instruction{mnemonic: mnemonic, operands: ops}, nil
}

// Instr is NewInstruction for static code; it panics on invalid input.
func Instr(mnemonic string, operands ...Operand) Instruction {
	return must(NewInstruction(mnemonic, operands...))
}

// Mov is `mov dst, src`.
func Mov(dst, src Operand) Instruction { return Instr("mov", dst, src) }

// Lea is `lea dst, src`.
func Lea(dst Register, src DataRef) Instruction { return Instr("lea", dst, src) }

// Xor is `xor dst, src`.
func Xor(dst, src Operand) Instruction { return Instr("xor", dst, src) }

// Syscall is the operand-less `syscall`.
func Syscall() Instruction { return Instr("syscall") }

func (in Instruction) Mnemonic() string { return in.mnemonic }

// Operands returns a copy in canonical (destination-first) order.
func (in Instruction) Operands() []Operand {
	out := make([]Operand, len(in.operands))
	copy(out, in.operands)
	return out
}

// Len is the operand count.
func (in Instruction) Len() int { return len(in.operands) }

// Destination is the written operand, when the instruction has operands.
func (in Instruction) Destination() (Operand, bool) {
	if len(in.operands) == 0 {
		return nil, false
	}
	return in.operands[0], true
}

// Sources are the operands after the destination.
func (in Instruction) Sources() []Operand {
	if len(in.operands) < 2 {
		return nil
	}
	out := make([]Operand, len(in.operands)-1)
	copy(out, in.operands[1:])
	return out
}
