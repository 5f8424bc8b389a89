package asm

import (
	"bytes"
	"testing"

	"asmir/internal/symbol"
)

func TestImmediateVariants(t *testing.T) {
	if v := U64(7); v.Kind() != ImmUnsigned || v.Unsigned() != 7 {
		t.Fatalf("U64: %+v", v)
	}
	if v := I64(-3); v.Kind() != ImmSigned || v.Signed() != -3 {
		t.Fatalf("I64: %+v", v)
	}
	if v := USize(13); v.Kind() != ImmPlatform || v.Unsigned() != 13 {
		t.Fatalf("USize: %+v", v)
	}
	sym := symbol.Derived("len")
	if v := MustSymbolValue(sym); v.Kind() != ImmSymbolic || v.Symbol() != sym {
		t.Fatalf("SymbolValue: %+v", v)
	}
	if _, err := SymbolValue(symbol.Symbol{}); err == nil {
		t.Fatalf("SymbolValue accepted zero symbol")
	}
}

func TestByteSeq_Immutable(t *testing.T) {
	src := []byte{0x00, 0xFF}
	v := ByteSeq(src)
	src[0] = 0x42
	got := v.Bytes()
	if !bytes.Equal(got, []byte{0x00, 0xFF}) {
		t.Fatalf("ByteSeq aliased its input: %x", got)
	}
	got[1] = 0x00
	if !bytes.Equal(v.Bytes(), []byte{0x00, 0xFF}) {
		t.Fatalf("Bytes() exposed internal storage")
	}
}

func TestDataRefConstructors(t *testing.T) {
	sym := symbol.Derived("helloWorldStr")
	ref := MustRef(sym)
	if !ref.IsRIPRelative() || ref.Symbol() != sym || ref.Disp() != 0 {
		t.Fatalf("Ref: %+v", ref)
	}
	moved := ref.Displaced(8)
	if moved.Disp() != 8 || ref.Disp() != 0 {
		t.Fatalf("Displaced must copy: orig=%d moved=%d", ref.Disp(), moved.Disp())
	}
	if moved.Symbol() != sym {
		t.Fatalf("displacement changed the symbol")
	}

	if _, err := Ref(symbol.Symbol{}); err == nil {
		t.Fatalf("Ref accepted zero symbol")
	}
	if _, err := RefFrom(sym, Register{}); err == nil {
		t.Fatalf("RefFrom accepted zero base")
	}
	if _, err := Mem(RIP, 4); err == nil {
		t.Fatalf("Mem accepted rip without symbol")
	}
	mem, err := IndexedMem(RBX, RCX, 4, 8)
	if err != nil {
		t.Fatalf("IndexedMem: %v", err)
	}
	if idx, scale, ok := mem.Index(); !ok || idx != RCX || scale != 4 {
		t.Fatalf("Index() = %v %d %v", idx, scale, ok)
	}
	if _, err := IndexedMem(RBX, RCX, 3, 0); err == nil {
		t.Fatalf("scale 3 accepted")
	}
	if _, err := IndexedMem(RBX, RIP, 1, 0); err == nil {
		t.Fatalf("rip index accepted")
	}
}

func TestInstructionRoles(t *testing.T) {
	in := Mov(RAX, I64(60))
	if in.Mnemonic() != "mov" || in.Len() != 2 {
		t.Fatalf("unexpected instruction %+v", in)
	}
	dst, ok := in.Destination()
	if !ok || dst != Operand(RAX) {
		t.Fatalf("Destination = %v, %v", dst, ok)
	}
	src := in.Sources()
	if len(src) != 1 {
		t.Fatalf("Sources = %v", src)
	}
	if imm, ok := src[0].(Immediate); !ok || imm.Signed() != 60 {
		t.Fatalf("Sources[0] = %v", src[0])
	}
	if _, ok := Syscall().Destination(); ok {
		t.Fatalf("syscall has no destination")
	}
	if Syscall().Sources() != nil {
		t.Fatalf("syscall has no sources")
	}
}

func TestNewInstruction_Validation(t *testing.T) {
	bad := []string{"", " mov", "mov ", "mov\tx", "mov;", "a  b", "mov,"}
	for _, m := range bad {
		if _, err := NewInstruction(m); err == nil {
			t.Errorf("NewInstruction(%q) accepted", m)
		}
	}
	if _, err := NewInstruction("rep movsb"); err != nil {
		t.Errorf("prefixed mnemonic rejected: %v", err)
	}
	if _, err := NewInstruction("mov", RAX, nil); err == nil {
		t.Errorf("nil operand accepted")
	}
}
