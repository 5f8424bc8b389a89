package ui

import (
	"strings"
	"testing"
)

func TestRenderSymbols_Plain(t *testing.T) {
	rows := []SymbolRow{
		{Logical: "helloWorldStr", Symbol: "L_0abee08d36b5fdd9"},
		{Logical: "", Symbol: "L_e3b0c44298fc1c14", Status: StatusOK},
	}
	got := RenderSymbols(rows, TableOptions{})
	want := "" +
		"logical          symbol              status\n" +
		"\"helloWorldStr\"  L_0abee08d36b5fdd9  ok\n" +
		"\"\"               L_e3b0c44298fc1c14  ok\n"
	if got != want {
		t.Fatalf("table mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSymbols_WideRunes(t *testing.T) {
	rows := []SymbolRow{
		{Logical: "日本", Symbol: "L_a"},
		{Logical: "ab", Symbol: "L_b"},
	}
	lines := strings.Split(strings.TrimSuffix(RenderSymbols(rows, TableOptions{}), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	// "日本" quoted is 6 cells wide, "ab" quoted is 4; both pad to "logical".
	if lines[1] != "\"日本\"   L_a     ok" {
		t.Fatalf("wide row = %q", lines[1])
	}
	if lines[2] != "\"ab\"     L_b     ok" {
		t.Fatalf("narrow row = %q", lines[2])
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"abcdef", 0, "abcdef"},
		{"abc", 5, "abc"},
		{"abcdef", 5, "ab..."},
		{"abcdef", 2, "ab"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestRenderSymbols_LongNameTruncated(t *testing.T) {
	rows := []SymbolRow{{Logical: strings.Repeat("x", 30), Symbol: "L_c", Status: StatusCollision}}
	out := RenderSymbols(rows, TableOptions{MaxNameWidth: 10})
	if !strings.Contains(out, "\"xxxxxx...  L_c     collision") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
