package programs

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"asmir/internal/asm"
	"asmir/internal/dialect"
	"asmir/internal/emit"
	"asmir/internal/symbol"
	"asmir/internal/testkit"
)

var update = flag.Bool("update", false, "rewrite golden files")

func TestHello_Golden(t *testing.T) {
	p, err := Hello(HelloOptions{})
	if err != nil {
		t.Fatalf("Hello: %v", err)
	}
	for _, d := range dialect.All() {
		t.Run(d.String(), func(t *testing.T) {
			got, err := emit.Render(p, d)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if err := testkit.CheckSourceLayout(got); err != nil {
				t.Fatalf("layout: %v", err)
			}
			path := filepath.Join("testdata", "hello_"+d.String()+d.Ext()+".golden")
			if *update {
				if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
					t.Fatal(err)
				}
				return
			}
			want, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read golden: %v", err)
			}
			if got != string(want) {
				t.Fatalf("output mismatch for %s\nwant:\n%s\ngot:\n%s", path, want, got)
			}
		})
	}
}

func TestHello_Options(t *testing.T) {
	p, err := Hello(HelloOptions{Entry: "main", Message: "hi", Newline: true})
	if err != nil {
		t.Fatalf("Hello: %v", err)
	}
	got, err := emit.Render(p, dialect.ATT)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{".global main\n", "\tmain:\n", ".byte 0x68, 0x69, 0x0A\n", ".quad 3\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestHello_NormalizesMessage(t *testing.T) {
	// "e" + combining acute accent composes to U+00E9 (0xC3 0xA9).
	p, err := Hello(HelloOptions{Message: "e\u0301"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := emit.Render(p, dialect.Intel)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "db 0xC3, 0xA9\n") {
		t.Fatalf("message not NFC-normalized:\n%s", got)
	}
}

func TestHello_InvalidEntry(t *testing.T) {
	if _, err := Hello(HelloOptions{Entry: "not valid"}); err == nil {
		t.Fatalf("invalid entry accepted")
	}
}

func TestHelloSymbolNames(t *testing.T) {
	names := HelloSymbolNames()
	if len(names) != 2 {
		t.Fatalf("names = %v", names)
	}
	if got, want := symbol.Derived(names[0]), asm.DataSymbol(helloData); got != want {
		t.Fatalf("data symbol = %s, want %s", got, want)
	}
	if got, want := symbol.Derived(names[1]), asm.LengthSymbol(helloData); got != want {
		t.Fatalf("length symbol = %s, want %s", got, want)
	}
}
