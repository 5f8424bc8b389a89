package asm

import (
	"errors"
	"testing"
)

func TestRegisterNames(t *testing.T) {
	tests := []struct {
		reg  Register
		want string
	}{
		{RAX, "rax"},
		{RBX, "rbx"},
		{RCX, "rcx"},
		{RDX, "rdx"},
		{RDI, "rdi"},
		{RSI, "rsi"},
		{RIP, "rip"},
		{MustGP(0, W64), "rax"},
		{MustGP(4, W64), "rsp"},
		{MustGP(7, W32), "edi"},
		{MustGP(6, W8), "sil"},
		{MustGP(3, W16), "bx"},
		{MustGP(8, W64), "r8"},
		{MustGP(9, W32), "r9d"},
		{MustGP(12, W16), "r12w"},
		{MustGP(15, W8), "r15b"},
	}
	for _, tt := range tests {
		if got := tt.reg.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestGP_RejectsOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 16, 300} {
		_, err := GP(idx, W64)
		var opErr *InvalidOperandError
		if !errors.As(err, &opErr) {
			t.Errorf("GP(%d) error = %v, want *InvalidOperandError", idx, err)
		}
	}
	if _, err := GP(1, Width(0)); err == nil {
		t.Errorf("GP with zero width should fail")
	}
}

func TestRegisterProperties(t *testing.T) {
	if !RIP.IsIP() || RAX.IsIP() {
		t.Fatalf("IsIP mismatch")
	}
	if RAX.Kind() != RegSpecial || MustGP(2, W64).Kind() != RegGeneral {
		t.Fatalf("Kind mismatch")
	}
	if MustGP(9, W16).Index() != 9 || MustGP(9, W16).Width().Bits() != 16 {
		t.Fatalf("index/width not preserved")
	}
	var zero Register
	if !zero.IsZero() || RAX.IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}

func TestSpecialReg_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_ = SpecialReg(Special(99))
}
