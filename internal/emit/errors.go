package emit

import (
	"fmt"

	"asmir/internal/dialect"
)

// UnsupportedDialectError is returned for a dialect with no syntax table.
type UnsupportedDialectError struct {
	Dialect dialect.Kind
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("unsupported dialect %s", e.Dialect)
}

// MalformedError reports a node the renderer cannot place, such as a nil
// program or an operand type outside the closed set.
type MalformedError struct {
	Where  string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Where, e.Reason)
}
