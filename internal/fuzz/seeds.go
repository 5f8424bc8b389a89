package fuzztests

import "testing"

const maxFuzzInput = 4 << 10

var messageSeeds = []string{
	"",
	"Hello, world!",
	"line one\nline two\n",
	"tab\there",
	"; not a comment",
	"# not a comment either",
	"$ - L_x",
	"Grüße, 世界",
	"e\u0301",
	"\x00\xff\xfe",
}

var nameSeeds = []string{
	"_start",
	"main",
	".Lloop",
	"L_0abee08d36b5fdd9",
	"",
	"9lives",
	"has space",
	"semi;colon",
	"ünicode",
	"a.b_c.9",
	"rax",
	"R15D",
	"rel",
	"section",
	"raxx",
}

func addStringSeeds(f *testing.F, seeds []string) {
	for _, s := range seeds {
		f.Add(s)
	}
}

func clamp(s string) string {
	if len(s) > maxFuzzInput {
		return s[:maxFuzzInput]
	}
	return s
}
