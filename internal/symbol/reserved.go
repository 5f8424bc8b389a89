package symbol

import (
	"strconv"
	"strings"
)

// reserved holds lowercase words NASM parses as registers or as the
// keywords the Intel renderer itself writes. A label spelled like one of
// them would be read as that keyword.
var reserved = func() map[string]bool {
	words := []string{
		// 64/32/16/8-bit views of the legacy registers.
		"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
		"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
		"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
		"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil",
		"ah", "ch", "dh", "bh",
		"rip", "eip", "ip",
		"cs", "ds", "es", "fs", "gs", "ss",
		// Keywords and directives in rendered Intel source.
		"rel", "abs", "equ", "section", "global",
		"db", "dw", "dd", "dq",
		"byte", "word", "dword", "qword",
	}
	m := make(map[string]bool, len(words)+8*5)
	for _, w := range words {
		m[w] = true
	}
	for i := 8; i < 16; i++ {
		r := "r" + strconv.Itoa(i)
		for _, suffix := range []string{"", "d", "w", "b", "l"} {
			m[r+suffix] = true
		}
	}
	return m
}()

// isReserved reports whether name collides with a reserved word, ignoring case.
func isReserved(name string) bool {
	return reserved[strings.ToLower(name)]
}
