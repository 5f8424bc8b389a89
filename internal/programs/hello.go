// Package programs holds ready-made IR trees; Hello is the reference
// consumer of the asm API.
package programs

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"asmir/internal/asm"
	"asmir/internal/symbol"
)

const (
	// DefaultEntry is the ELF entry point the linker looks for.
	DefaultEntry = "_start"
	// DefaultMessage is what Hello prints when none is configured.
	DefaultMessage = "Hello, world!"

	helloData = "helloWorldStr"

	sysWrite = 1
	sysExit  = 60
	stdout   = 1
)

// HelloOptions configures Hello. Zero fields take the defaults.
type HelloOptions struct {
	Entry   string
	Message string
	// Newline appends '\n' to the message bytes.
	Newline bool
}

// Hello builds a Linux x86-64 program that writes the message to stdout
// with write(2) and exits with status 0. The message is NFC-normalized
// before being encoded as UTF-8.
func Hello(opts HelloOptions) (*asm.Program, error) {
	entryName := opts.Entry
	if entryName == "" {
		entryName = DefaultEntry
	}
	entry, err := symbol.Explicit(entryName)
	if err != nil {
		return nil, fmt.Errorf("entry symbol: %w", err)
	}
	msg := opts.Message
	if msg == "" {
		msg = DefaultMessage
	}
	msg = norm.NFC.String(msg)
	if opts.Newline {
		msg += "\n"
	}

	str, err := asm.Ref(asm.DataSymbol(helloData))
	if err != nil {
		return nil, err
	}
	strLen, err := asm.SymbolValue(asm.LengthSymbol(helloData))
	if err != nil {
		return nil, err
	}
	start, err := asm.DefLabel(entry)
	if err != nil {
		return nil, err
	}

	text, err := asm.NewSection("text",
		start,
		asm.Mov(asm.RAX, asm.I64(sysWrite)),
		asm.Mov(asm.RDI, asm.I64(stdout)),
		asm.Lea(asm.RSI, str),
		asm.Mov(asm.RDX, strLen),
		asm.Syscall(),
		asm.Mov(asm.RAX, asm.I64(sysExit)),
		asm.Xor(asm.RDI, asm.RDI),
		asm.Syscall(),
	)
	if err != nil {
		return nil, err
	}
	data, err := asm.NewSection("data",
		asm.Group(asm.CountedString(helloData, msg)),
	)
	if err != nil {
		return nil, err
	}
	return asm.NewProgram([]symbol.Symbol{entry}, text, data)
}

// HelloSymbolNames lists the logical names Hello derives symbols from, in
// the order the data section defines them.
func HelloSymbolNames() []string {
	return []string{helloData, "S_" + helloData}
}
