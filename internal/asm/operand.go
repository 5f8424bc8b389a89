package asm

import (
	"asmir/internal/symbol"
)

// Operand is one of Register, Immediate, or DataRef.
type Operand interface {
	isOperand()
}

// ImmKind tags the Immediate variants.
type ImmKind uint8

const (
	ImmUnsigned ImmKind = iota + 1
	ImmSigned
	ImmPlatform
	ImmSymbolic
	ImmByteSeq
)

// Immediate is a constant operand.
type Immediate struct {
	kind  ImmKind
	u     uint64
	i     int64
	sym   symbol.Symbol
	bytes []byte
}

func (Immediate) isOperand() {}

// U64 is an unsigned 64-bit immediate.
func U64(v uint64) Immediate { return Immediate{kind: ImmUnsigned, u: v} }

// I64 is a signed 64-bit immediate.
func I64(v int64) Immediate { return Immediate{kind: ImmSigned, i: v} }

// USize is a platform-width unsigned immediate.
func USize(v uint) Immediate { return Immediate{kind: ImmPlatform, u: uint64(v)} }

// SymbolValue uses sym as an assembler-time numeric value. The consumer
// defines sym as a constant (e.g. a length), not as a runtime address.
func SymbolValue(sym symbol.Symbol) (Immediate, error) {
	if sym.IsZero() {
		return Immediate{}, invalid("immediate", "zero symbol")
	}
	return Immediate{kind: ImmSymbolic, sym: sym}, nil
}

// MustSymbolValue is SymbolValue for static operands.
func MustSymbolValue(sym symbol.Symbol) Immediate {
	return must(SymbolValue(sym))
}

// ByteSeq is a fixed byte sequence immediate. b is copied.
func ByteSeq(b []byte) Immediate {
	return Immediate{kind: ImmByteSeq, bytes: cloneBytes(b)}
}

func (v Immediate) Kind() ImmKind { return v.kind }

// Unsigned returns the value of an ImmUnsigned or ImmPlatform immediate.
func (v Immediate) Unsigned() uint64 { return v.u }

// Signed returns the value of an ImmSigned immediate.
func (v Immediate) Signed() int64 { return v.i }

// Symbol returns the symbol of an ImmSymbolic immediate.
func (v Immediate) Symbol() symbol.Symbol { return v.sym }

// Bytes returns a copy of an ImmByteSeq payload.
func (v Immediate) Bytes() []byte { return cloneBytes(v.bytes) }

// DataRef is a memory operand. It addresses a symbol relative to a base
// register (rip unless stated), plus a displacement and an optional scaled
// index. The displacement belongs to the reference, never to the symbol.
// A DataRef without a symbol is a plain base+displacement access.
type DataRef struct {
	sym   symbol.Symbol
	base  Register
	index Register
	scale uint8
	disp  int64
}

func (DataRef) isOperand() {}

// Ref addresses sym rip-relative, for position-independent loads.
func Ref(sym symbol.Symbol) (DataRef, error) {
	if sym.IsZero() {
		return DataRef{}, invalid("data reference", "zero symbol")
	}
	return DataRef{sym: sym, base: RIP}, nil
}

// MustRef is Ref for static operands.
func MustRef(sym symbol.Symbol) DataRef {
	return must(Ref(sym))
}

// RefFrom addresses sym relative to base.
func RefFrom(sym symbol.Symbol, base Register) (DataRef, error) {
	if sym.IsZero() {
		return DataRef{}, invalid("data reference", "zero symbol")
	}
	if base.IsZero() {
		return DataRef{}, invalid("data reference", "missing base register")
	}
	return DataRef{sym: sym, base: base}, nil
}

// Mem is a base+displacement access with no symbol.
func Mem(base Register, disp int64) (DataRef, error) {
	if base.IsZero() {
		return DataRef{}, invalid("memory reference", "missing base register")
	}
	if base.IsIP() {
		return DataRef{}, invalid("memory reference", "rip-relative access needs a symbol")
	}
	return DataRef{base: base, disp: disp}, nil
}

// IndexedMem is base + index*scale + disp. Scale is 1, 2, 4 or 8.
func IndexedMem(base, index Register, scale uint8, disp int64) (DataRef, error) {
	ref, err := Mem(base, disp)
	if err != nil {
		return DataRef{}, err
	}
	if index.IsZero() || index.IsIP() {
		return DataRef{}, invalid("memory reference", "index must be a general register")
	}
	switch scale {
	case 1, 2, 4, 8:
	default:
		return DataRef{}, invalid("memory reference", "scale %d not in {1,2,4,8}", scale)
	}
	ref.index = index
	ref.scale = scale
	return ref, nil
}

// Displaced returns a copy of r with displacement disp.
func (r DataRef) Displaced(disp int64) DataRef {
	r.disp = disp
	return r
}

func (r DataRef) Symbol() symbol.Symbol { return r.sym }
func (r DataRef) Base() Register        { return r.base }
func (r DataRef) Disp() int64           { return r.disp }

// Index returns the index register and scale; ok is false when unindexed.
func (r DataRef) Index() (index Register, scale uint8, ok bool) {
	return r.index, r.scale, !r.index.IsZero()
}

// IsRIPRelative reports whether the reference is instruction-pointer based.
func (r DataRef) IsRIPRelative() bool { return r.base.IsIP() }

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
