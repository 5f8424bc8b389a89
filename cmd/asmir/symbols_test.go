package main

import (
	"encoding/json"
	"strings"
	"testing"

	"asmir/internal/ui"
)

func TestSymbols_DefaultNames(t *testing.T) {
	stdout, _, err := execute(t, "symbols")
	if err != nil {
		t.Fatalf("symbols: %v", err)
	}
	want := "" +
		"logical            symbol              status\n" +
		"\"helloWorldStr\"    L_0abee08d36b5fdd9  ok\n" +
		"\"S_helloWorldStr\"  L_9f65a12c24e9cca1  ok\n"
	if stdout != want {
		t.Fatalf("symbols output mismatch:\n got:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestSymbols_JSON(t *testing.T) {
	stdout, _, err := execute(t, "symbols", "--format", "json", "", "helloWorldStr", "")
	if err != nil {
		t.Fatalf("symbols: %v", err)
	}
	var rows []symbolPayload
	if err := json.Unmarshal([]byte(stdout), &rows); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].Symbol != "L_e3b0c44298fc1c14" || rows[1].Symbol != "L_0abee08d36b5fdd9" {
		t.Fatalf("unexpected symbols: %+v", rows)
	}
	// Re-deriving the same name is not a collision.
	if rows[2].Status != ui.StatusOK {
		t.Fatalf("repeated name status = %q", rows[2].Status)
	}
}

func TestSymbols_ExplicitRejects(t *testing.T) {
	stdout, _, err := execute(t, "symbols", "--explicit", "_start", "9lives")
	if err == nil || !strings.Contains(err.Error(), "1 of 2 names rejected") {
		t.Fatalf("expected rejection error, got %v", err)
	}
	if !strings.Contains(stdout, "\"_start\"  _start  ok") {
		t.Fatalf("missing valid row:\n%s", stdout)
	}
	if !strings.Contains(stdout, "invalid") {
		t.Fatalf("missing invalid row:\n%s", stdout)
	}
}

func TestSymbols_BadFormat(t *testing.T) {
	if _, _, err := execute(t, "symbols", "--format", "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
