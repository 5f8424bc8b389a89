// Package testkit holds structural checks shared by tests.
package testkit

import (
	"fmt"
	"strings"
)

// CheckSourceLayout runs the line discipline checks on rendered source:
// 1) the text is empty or ends with a newline, and contains no CR
// 2) no line has trailing whitespace; blank lines never lead or repeat
// 3) unindented lines are directives, one-tab lines define a label (or an
// equ constant), two-tab lines are statements, deeper indents are errors
func CheckSourceLayout(src string) error {
	if src == "" {
		return nil
	}
	if !strings.HasSuffix(src, "\n") {
		return fmt.Errorf("source is not newline-terminated")
	}
	if i := strings.IndexByte(src, '\r'); i >= 0 {
		return fmt.Errorf("carriage return at offset %d", i)
	}

	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	prevBlank := true
	for i, line := range lines {
		n := i + 1
		if line == "" {
			if prevBlank {
				return fmt.Errorf("line %d: unexpected blank line", n)
			}
			prevBlank = true
			continue
		}
		prevBlank = false
		if strings.TrimRight(line, " \t") != line {
			return fmt.Errorf("line %d: trailing whitespace in %q", n, line)
		}
		if err := checkIndent(line); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if prevBlank {
		return fmt.Errorf("line %d: trailing blank line", len(lines))
	}
	return nil
}

func checkIndent(line string) error {
	body := strings.TrimLeft(line, "\t")
	if body == "" || body[0] == ' ' {
		return fmt.Errorf("indentation mixes tabs and spaces: %q", line)
	}
	switch len(line) - len(body) {
	case 0:
		c := body[0]
		if c != '.' && !(c >= 'a' && c <= 'z') {
			return fmt.Errorf("unindented line is not a directive: %q", line)
		}
	case 1:
		if !strings.HasSuffix(body, ":") && !strings.Contains(body, " equ ") {
			return fmt.Errorf("one-tab line is not a label: %q", line)
		}
	case 2:
	default:
		return fmt.Errorf("indented too deep: %q", line)
	}
	return nil
}
