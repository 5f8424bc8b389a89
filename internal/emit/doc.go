// Package emit renders an asm.Program as assembler source in one dialect.
//
// Rendering is a pure, read-only traversal in insertion order. Every syntax
// difference between dialects lives in a syntax table (see syntax.go); the
// traversal itself is shared. The output of Build is a Listing, which keeps
// the rendered lines grouped by section so tools can consume it as data;
// Listing.Text joins it into newline-terminated source.
//
// Layout:
//
//	.global _start          exports, one per line
//
//	.section .text          section header
//		_start:             labels: one tab
//			mov	$1, %rax    statements: two tabs, mnemonic and operands tab-separated
package emit
