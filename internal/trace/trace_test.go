package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"off": LevelOff, "PHASE": LevelPhase, "detail": LevelDetail, "debug": LevelDebug} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestLevelFiltering(t *testing.T) {
	if !LevelPhase.ShouldEmit(ScopeProgram) || LevelPhase.ShouldEmit(ScopeSection) {
		t.Fatalf("phase level filters wrong")
	}
	if !LevelDetail.ShouldEmit(ScopeSection) || LevelDetail.ShouldEmit(ScopeNode) {
		t.Fatalf("detail level filters wrong")
	}
	if !LevelDebug.ShouldEmit(ScopeNode) || LevelOff.ShouldEmit(ScopeCommand) {
		t.Fatalf("debug/off level filters wrong")
	}
}

func TestStreamTracer_TextSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)

	root := Begin(tr, ScopeProgram, "render", 0)
	child := Begin(tr, ScopeSection, "section:text", root.ID())
	Point(tr, ScopeNode, "expr", "filtered out", child.ID())
	child.WithExtra("lines", "3").WithExtra("bytes", "40").End("")
	root.End("att")

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "→ render") || !strings.Contains(lines[3], "← render (att)") {
		t.Fatalf("unexpected root lines:\n%s", out)
	}
	if !strings.Contains(lines[2], "{bytes=40, lines=3}") {
		t.Fatalf("extras not sorted/rendered: %q", lines[2])
	}
	if strings.Contains(out, "filtered out") {
		t.Fatalf("node scope leaked at detail level")
	}
}

func TestStreamTracer_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDebug, Format: FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	Point(tr, ScopeNode, "label", "_start", 0)
	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if ev["kind"] != "point" || ev["scope"] != "node" || ev["detail"] != "_start" {
		t.Fatalf("unexpected event: %v", ev)
	}
}

func TestNew_OffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Enabled() {
		t.Fatalf("off tracer reports enabled")
	}
	if d := Begin(tr, ScopeCommand, "x", 0).End(""); d != 0 {
		t.Fatalf("inert span measured %v", d)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context should yield Nop")
	}
	tr := NewStreamTracer(&bytes.Buffer{}, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Fatalf("tracer not propagated")
	}
	if FromContext(WithTracer(ctx, nil)) != Nop {
		t.Fatalf("nil tracer should become Nop")
	}
}

func TestLevelError_EmitsOnlyFailures(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelError, FormatText)

	root := Begin(tr, ScopeProgram, "render", 0)
	ok := Begin(tr, ScopeSection, "section:data", root.ID())
	ok.End("")
	bad := Begin(tr, ScopeSection, "section:text", root.ID())
	Point(tr, ScopeNode, "instr", "mov", bad.ID())
	bad.Fail(errors.New("memory reference without base"))
	root.Fail(nil)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 failure lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "✗ section:text (memory reference without base)") {
		t.Fatalf("unexpected section failure line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "✗ render (error)") {
		t.Fatalf("unexpected root failure line: %q", lines[1])
	}
}

func TestFail_PassesFilteredScope(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	Begin(tr, ScopeNode, "counted", 0).Fail(errors.New("boom"))

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if ev["failed"] != true || ev["detail"] != "boom" || ev["kind"] != "end" {
		t.Fatalf("unexpected event: %v", ev)
	}

	buf.Reset()
	Begin(tr, ScopeNode, "counted", 0).End("fine")
	if buf.Len() != 0 {
		t.Fatalf("quiet span emitted on success: %q", buf.String())
	}
}

func TestLevelAccepts(t *testing.T) {
	failed := &Event{Scope: ScopeNode, Failed: true}
	if LevelOff.Accepts(failed) || !LevelError.Accepts(failed) || !LevelPhase.Accepts(failed) {
		t.Fatalf("failed events filtered wrong")
	}
	if LevelError.Accepts(&Event{Scope: ScopeCommand}) {
		t.Fatalf("error level accepted a successful event")
	}
}
