package internal

import (
	"testing"
)

var fuzzSeeds = []string{
	"",
	"(()",
	",.$(#",
	"-123 * (45.67)",
	"var a = 1; { var a = a + 1; print a; }",
	"\"unterminated",
	"print \"multi\nline\";",
	"// comment\n1 = 2;",
	"a = b = c",
	"{{{{",
}

func FuzzScan(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, source string) {
		tokens, _ := Scan(source)
		if len(tokens) == 0 || tokens[len(tokens)-1].Type() != EOF {
			t.Fatalf("token stream must end with EOF")
		}
		line := 1
		for _, tk := range tokens {
			if tk.Line() < line {
				t.Fatalf("token lines must not decrease: %s", tk)
			}
			line = tk.Line()
		}
	})
}

func FuzzParse(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, source string) {
		state := parseSource(source)
		for _, s := range state.stmts {
			if s == nil {
				t.Fatalf("parsed statements must not be nil")
			}
			(astPrinter{}).printStmt(s)
		}

		tp := &testPrinter{}
		switch status := NewInterpreter(tp, nil).Parse(source); status {
		case ExitOK, ExitDataErr:
		default:
			t.Fatalf("unexpected parse status %d", status)
		}
	})
}
