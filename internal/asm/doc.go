// Package asm is a typed intermediate representation of x86-64 assembler
// source.
//
// A program is a tree built once and never mutated:
//
//	Program → Section → Expr (Data, Instruction, Label, Block, Raw, Comment, Counted)
//	Instruction → Operand (Register, Immediate, DataRef)
//
// Nothing in this package knows about concrete syntax. Operands are stored in
// one canonical order, destination first, and string literals with a length
// are a single Counted node; internal/emit decides per dialect how either is
// spelled. Constructors validate what the types cannot express and return
// descriptive errors; Must* variants panic and exist for static trees.
package asm
