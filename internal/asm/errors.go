package asm

import "fmt"

// InvalidOperandError reports an operand, instruction, or node rejected at
// construction time.
type InvalidOperandError struct {
	What   string
	Reason string
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.What, e.Reason)
}

func invalid(what, format string, args ...any) error {
	return &InvalidOperandError{What: what, Reason: fmt.Sprintf(format, args...)}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
