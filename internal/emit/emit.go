package emit

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"asmir/internal/asm"
	"asmir/internal/dialect"
	"asmir/internal/trace"
)

// Render returns the source text of p in dialect d.
func Render(p *asm.Program, d dialect.Kind) (string, error) {
	l, err := Build(context.Background(), p, d)
	if err != nil {
		return "", err
	}
	return l.Text(), nil
}

// Build renders p into a Listing. The tracer attached to ctx, if any,
// receives one span for the program and one per section.
func Build(ctx context.Context, p *asm.Program, d dialect.Kind) (*Listing, error) {
	if p == nil {
		return nil, &MalformedError{Where: "program", Reason: "nil program"}
	}
	syn, err := syntaxFor(d)
	if err != nil {
		return nil, err
	}
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeProgram, "render", 0)

	l := &Listing{Dialect: d.String()}
	for _, sym := range p.Exports() {
		l.Exports = append(l.Exports, syn.globalDirective+" "+sym.Name())
	}
	e := &emitter{syn: syn, tracer: tr}
	for _, s := range p.Sections() {
		sl, err := e.section(s, span.ID())
		if err != nil {
			err = fmt.Errorf("section %s: %w", s.Name(), err)
			span.Fail(err)
			return nil, err
		}
		l.Sections = append(l.Sections, sl)
	}
	span.WithExtra("exports", strconv.Itoa(len(l.Exports))).
		WithExtra("sections", strconv.Itoa(len(l.Sections))).
		End(d.String())
	return l, nil
}

// RenderSection returns the text of one section: header then body lines.
func RenderSection(s *asm.Section, d dialect.Kind) (string, error) {
	if s == nil {
		return "", &MalformedError{Where: "section", Reason: "nil section"}
	}
	syn, err := syntaxFor(d)
	if err != nil {
		return "", err
	}
	e := &emitter{syn: syn, tracer: trace.Nop}
	sl, err := e.section(s, 0)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sl.writeTo(&sb)
	return sb.String(), nil
}

// FormatInstruction renders one instruction without indentation.
func FormatInstruction(in asm.Instruction, d dialect.Kind) (string, error) {
	syn, err := syntaxFor(d)
	if err != nil {
		return "", err
	}
	return syn.instruction(in)
}

// FormatOperand renders one operand.
func FormatOperand(op asm.Operand, d dialect.Kind) (string, error) {
	syn, err := syntaxFor(d)
	if err != nil {
		return "", err
	}
	return syn.operand(op)
}

// FormatData renders one data directive without indentation.
func FormatData(v asm.Data, d dialect.Kind) (string, error) {
	syn, err := syntaxFor(d)
	if err != nil {
		return "", err
	}
	return syn.data(v)
}

type emitter struct {
	syn    *syntax
	tracer trace.Tracer
	lines  []string
}

func (e *emitter) section(s *asm.Section, parent uint64) (SectionListing, error) {
	span := trace.Begin(e.tracer, trace.ScopeSection, "section:"+s.Name(), parent)
	e.lines = nil
	for _, x := range s.Body() {
		if err := e.expr(x, span.ID()); err != nil {
			span.Fail(err)
			return SectionListing{}, err
		}
	}
	span.WithExtra("lines", strconv.Itoa(len(e.lines))).End("")
	return SectionListing{
		Name:   s.Name(),
		Header: e.syn.sectionDirective + " ." + s.Name(),
		Lines:  e.lines,
	}, nil
}

func (e *emitter) emit(line string) {
	e.lines = append(e.lines, line)
}

func (e *emitter) expr(x asm.Expr, parent uint64) error {
	switch x := x.(type) {
	case asm.Label:
		trace.Point(e.tracer, trace.ScopeNode, "label", x.Symbol().Name(), parent)
		e.emit(labelIndent + x.Symbol().Name() + ":")
	case asm.Instruction:
		trace.Point(e.tracer, trace.ScopeNode, "instr", x.Mnemonic(), parent)
		text, err := e.syn.instruction(x)
		if err != nil {
			return err
		}
		e.emit(stmtIndent + text)
	case asm.Data:
		trace.Point(e.tracer, trace.ScopeNode, "data", "", parent)
		text, err := e.syn.data(x)
		if err != nil {
			return err
		}
		e.emit(stmtIndent + text)
	case asm.Block:
		for _, item := range x.Items() {
			if err := e.expr(item, parent); err != nil {
				return err
			}
		}
	case asm.Raw:
		trace.Point(e.tracer, trace.ScopeNode, "raw", "", parent)
		e.emit(x.Text())
	case asm.Comment:
		e.emit(stmtIndent + strings.TrimRight(e.syn.commentMarker+" "+x.Text(), " "))
	case asm.Counted:
		trace.Point(e.tracer, trace.ScopeNode, "counted", x.Name(), parent)
		return e.counted(x)
	case nil:
		return &MalformedError{Where: "expression", Reason: "nil expression"}
	default:
		return &MalformedError{Where: "expression", Reason: fmt.Sprintf("unsupported node %T", x)}
	}
	return nil
}

// counted lowers a counted byte sequence to the dialect's length idiom.
func (e *emitter) counted(c asm.Counted) error {
	dataSym := c.DataSymbol().Name()
	lenSym := c.LengthSymbol().Name()
	e.emit(labelIndent + dataSym + ":")
	e.emit(stmtIndent + joinDirective(e.syn.byteDirective, hexList(c.Bytes())))
	switch e.syn.countedLength {
	case lengthWord:
		n, err := c.Len()
		if err != nil {
			return err
		}
		e.emit(labelIndent + lenSym + ":")
		e.emit(stmtIndent + e.syn.wordDirective + " " + strconv.FormatUint(n, 10))
	case lengthEqu:
		e.emit(labelIndent + lenSym + " equ $ - " + dataSym)
	default:
		return &MalformedError{Where: "counted bytes", Reason: "dialect has no length idiom"}
	}
	return nil
}

func (s *syntax) instruction(in asm.Instruction) (string, error) {
	ops := in.Operands()
	if len(ops) == 0 {
		return in.Mnemonic(), nil
	}
	rendered := make([]string, len(ops))
	for i, op := range ops {
		text, err := s.operand(op)
		if err != nil {
			return "", fmt.Errorf("%s operand %d: %w", in.Mnemonic(), i, err)
		}
		pos := i
		if s.reverse {
			pos = len(ops) - 1 - i
		}
		rendered[pos] = text
	}
	return in.Mnemonic() + "\t" + strings.Join(rendered, ", "), nil
}

func (s *syntax) data(v asm.Data) (string, error) {
	switch v.Kind() {
	case asm.DataSigned:
		return s.wordDirective + " " + strconv.FormatInt(v.Signed(), 10), nil
	case asm.DataUnsigned, asm.DataPlatform:
		return s.wordDirective + " " + strconv.FormatUint(v.Unsigned(), 10), nil
	case asm.DataFloat:
		return s.floatDirective + " " + formatFloat(v.Float64()), nil
	case asm.DataByteSeq:
		return joinDirective(s.byteDirective, hexList(v.Bytes())), nil
	default:
		return "", &MalformedError{Where: "data", Reason: fmt.Sprintf("unknown kind %d", v.Kind())}
	}
}

func joinDirective(directive, args string) string {
	if args == "" {
		return directive
	}
	return directive + " " + args
}
