package emit

import (
	"fmt"
	"strconv"
	"strings"

	"asmir/internal/asm"
)

// refParts is a DataRef flattened to strings the dialect tables assemble.
type refParts struct {
	sym   string
	base  string
	rip   bool
	index string
	scale uint8
	disp  int64
}

func (s *syntax) register(r asm.Register) string {
	return s.regPrefix + r.Name()
}

func (s *syntax) immediate(v asm.Immediate) (string, error) {
	switch v.Kind() {
	case asm.ImmUnsigned, asm.ImmPlatform:
		return s.immPrefix + strconv.FormatUint(v.Unsigned(), 10), nil
	case asm.ImmSigned:
		return s.immPrefix + strconv.FormatInt(v.Signed(), 10), nil
	case asm.ImmSymbolic:
		return v.Symbol().Name(), nil
	case asm.ImmByteSeq:
		return hexList(v.Bytes()), nil
	default:
		return "", &MalformedError{Where: "immediate", Reason: fmt.Sprintf("unknown kind %d", v.Kind())}
	}
}

func (s *syntax) operand(op asm.Operand) (string, error) {
	switch x := op.(type) {
	case asm.Register:
		if x.IsZero() {
			return "", &MalformedError{Where: "operand", Reason: "zero register"}
		}
		return s.register(x), nil
	case asm.Immediate:
		return s.immediate(x)
	case asm.DataRef:
		if x.Base().IsZero() {
			return "", &MalformedError{Where: "operand", Reason: "memory reference without base"}
		}
		parts := refParts{
			sym:  x.Symbol().Name(),
			base: s.register(x.Base()),
			rip:  x.IsRIPRelative(),
			disp: x.Disp(),
		}
		if idx, scale, ok := x.Index(); ok {
			parts.index = s.register(idx)
			parts.scale = scale
		}
		return s.dataRef(s, parts), nil
	default:
		return "", &MalformedError{Where: "operand", Reason: fmt.Sprintf("unsupported operand %T", op)}
	}
}

// attDataRef renders `SYM+disp(%base,%index,scale)`.
func attDataRef(_ *syntax, r refParts) string {
	var sb strings.Builder
	sb.WriteString(r.sym)
	if r.disp != 0 {
		if r.sym != "" && r.disp > 0 {
			sb.WriteString("+")
		}
		sb.WriteString(strconv.FormatInt(r.disp, 10))
	}
	sb.WriteString("(")
	sb.WriteString(r.base)
	if r.index != "" {
		sb.WriteString(",")
		sb.WriteString(r.index)
		sb.WriteString(",")
		sb.WriteString(strconv.Itoa(int(r.scale)))
	}
	sb.WriteString(")")
	return sb.String()
}

// intelDataRef renders `[rel SYM + disp]` or `[base + index*scale + SYM + disp]`.
func intelDataRef(_ *syntax, r refParts) string {
	var terms []string
	if r.rip {
		terms = append(terms, "rel "+r.sym)
	} else {
		terms = append(terms, r.base)
		if r.index != "" {
			terms = append(terms, r.index+"*"+strconv.Itoa(int(r.scale)))
		}
		if r.sym != "" {
			terms = append(terms, r.sym)
		}
	}
	out := "[" + strings.Join(terms, " + ")
	switch {
	case r.disp > 0:
		out += " + " + strconv.FormatInt(r.disp, 10)
	case r.disp < 0:
		// Negate via the string form so math.MinInt64 survives.
		out += " - " + strings.TrimPrefix(strconv.FormatInt(r.disp, 10), "-")
	}
	return out + "]"
}

// hexList renders bytes as `0xHH, 0xHH` in input order.
func hexList(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b) * 6)
	for i, c := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%02X", c)
	}
	return sb.String()
}

// formatFloat keeps a '.' in the mantissa; NASM reads a bare "2" in dq as
// an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}
