package asm

import (
	"strconv"

	"fortio.org/safecast"
)

// RegKind separates the two register families.
type RegKind uint8

const (
	RegGeneral RegKind = iota + 1
	RegSpecial
)

// Width is the operand size a general-purpose register is viewed at.
type Width uint8

const (
	W64 Width = iota + 1
	W32
	W16
	W8
)

func (w Width) Bits() int {
	switch w {
	case W64:
		return 64
	case W32:
		return 32
	case W16:
		return 16
	case W8:
		return 8
	}
	return 0
}

// Special enumerates the fixed-purpose registers.
type Special uint8

const (
	Accumulator Special = iota + 1
	BaseReg
	Counter
	DataReg
	DestIndex
	SourceIndex
	InstrPointer
)

var specialNames = [...]string{
	Accumulator:  "rax",
	BaseReg:      "rbx",
	Counter:      "rcx",
	DataReg:      "rdx",
	DestIndex:    "rdi",
	SourceIndex:  "rsi",
	InstrPointer: "rip",
}

// NumGeneral is the count of addressable general-purpose registers.
const NumGeneral = 16

// Names by encoding index; r8..r15 are formatted.
var (
	gpNames64 = [8]string{"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi"}
	gpNames32 = [8]string{"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi"}
	gpNames16 = [8]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}
	gpNames8  = [8]string{"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil"}
	extSuffix = map[Width]string{W64: "", W32: "d", W16: "w", W8: "b"}
)

// Register is a value type naming one machine register.
type Register struct {
	kind    RegKind
	index   uint8
	width   Width
	special Special
}

func (Register) isOperand() {}

// Fixed-purpose registers.
var (
	RAX = SpecialReg(Accumulator)
	RBX = SpecialReg(BaseReg)
	RCX = SpecialReg(Counter)
	RDX = SpecialReg(DataReg)
	RDI = SpecialReg(DestIndex)
	RSI = SpecialReg(SourceIndex)
	RIP = SpecialReg(InstrPointer)
)

// SpecialReg returns the fixed-purpose register s. Unknown values panic;
// the set is closed.
func SpecialReg(s Special) Register {
	if s < Accumulator || s > InstrPointer {
		panic(invalid("register", "unknown special register %d", s))
	}
	return Register{kind: RegSpecial, special: s, width: W64}
}

// GP returns general-purpose register index viewed at width w.
func GP(index int, w Width) (Register, error) {
	idx, err := safecast.Conv[uint8](index)
	if err != nil || idx >= NumGeneral {
		return Register{}, invalid("register", "general-purpose index %d out of range 0..%d", index, NumGeneral-1)
	}
	if w.Bits() == 0 {
		return Register{}, invalid("register", "unknown width %d", w)
	}
	return Register{kind: RegGeneral, index: idx, width: w}, nil
}

// MustGP is GP for static operands.
func MustGP(index int, w Width) Register {
	return must(GP(index, w))
}

// Kind reports the register family.
func (r Register) Kind() RegKind { return r.kind }

// Index is the general-purpose encoding index; 0 for special registers.
func (r Register) Index() int { return int(r.index) }

// Width is the access width; special registers are 64-bit.
func (r Register) Width() Width { return r.width }

// IsIP reports whether r is the instruction pointer.
func (r Register) IsIP() bool { return r.kind == RegSpecial && r.special == InstrPointer }

// IsZero reports whether r was never constructed.
func (r Register) IsZero() bool { return r.kind == 0 }

// Name is the bare register name shared by both dialects, e.g. "rax", "r9d".
func (r Register) Name() string {
	switch r.kind {
	case RegSpecial:
		return specialNames[r.special]
	case RegGeneral:
		if r.index >= 8 {
			return "r" + strconv.Itoa(int(r.index)) + extSuffix[r.width]
		}
		switch r.width {
		case W32:
			return gpNames32[r.index]
		case W16:
			return gpNames16[r.index]
		case W8:
			return gpNames8[r.index]
		default:
			return gpNames64[r.index]
		}
	}
	return ""
}

func (r Register) String() string { return r.Name() }

