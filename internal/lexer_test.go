package internal

import (
	"strings"
	"testing"
)

func tokenLines(tokens []Token) string {
	out := make([]string, len(tokens))
	for i, tk := range tokens {
		out[i] = tk.String()
	}
	return strings.Join(out, "\n")
}

func checkTokens(t *testing.T, source string, expected ...string) {
	t.Helper()
	tokens, errs := Scan(source)
	if len(errs) != 0 {
		t.Errorf("Source %q: unexpected errors %v", source, errs)
	}
	if got, want := tokenLines(tokens), strings.Join(expected, "\n"); got != want {
		t.Errorf("Source %q:\nExpected:\n%s\nFound:\n%s", source, want, got)
	}
}

func TestScanPunctuation(t *testing.T) {
	checkTokens(t, "(()",
		"LEFT_PAREN ( null",
		"LEFT_PAREN ( null",
		"RIGHT_PAREN ) null",
		"EOF  null",
	)
	checkTokens(t, "{},.-+;*/",
		"LEFT_BRACE { null",
		"RIGHT_BRACE } null",
		"COMMA , null",
		"DOT . null",
		"MINUS - null",
		"PLUS + null",
		"SEMICOLON ; null",
		"STAR * null",
		"SLASH / null",
		"EOF  null",
	)
	checkTokens(t, "! != = == < <= > >=",
		"BANG ! null",
		"BANG_EQUAL != null",
		"EQUAL = null",
		"EQUAL_EQUAL == null",
		"LESS < null",
		"LESS_EQUAL <= null",
		"GREATER > null",
		"GREATER_EQUAL >= null",
		"EOF  null",
	)
	// Longest match
	checkTokens(t, "===",
		"EQUAL_EQUAL == null",
		"EQUAL = null",
		"EOF  null",
	)
}

func TestScanEmpty(t *testing.T) {
	checkTokens(t, "", "EOF  null")
	checkTokens(t, " \t\r\n", "EOF  null")

	tokens, _ := Scan("\n\n")
	if tokens[0].Line() != 3 {
		t.Errorf("EOF should be on line 3, found %d", tokens[0].Line())
	}
}

func TestScanLiterals(t *testing.T) {
	checkTokens(t, "123",
		"NUMBER 123 123.0",
		"EOF  null",
	)
	checkTokens(t, "45.67 0.0 1.50",
		"NUMBER 45.67 45.67",
		"NUMBER 0.0 0.0",
		"NUMBER 1.50 1.5",
		"EOF  null",
	)
	// A trailing dot is not part of the number
	checkTokens(t, "123.",
		"NUMBER 123 123.0",
		"DOT . null",
		"EOF  null",
	)
	checkTokens(t, ".5",
		"DOT . null",
		"NUMBER 5 5.0",
		"EOF  null",
	)
	checkTokens(t, `"hello" ""`,
		`STRING "hello" hello`,
		`STRING "" `,
		"EOF  null",
	)
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	checkTokens(t, "and class else false for fun if nil or print return super this true var while",
		"AND and null",
		"CLASS class null",
		"ELSE else null",
		"FALSE false null",
		"FOR for null",
		"FUN fun null",
		"IF if null",
		"NIL nil null",
		"OR or null",
		"PRINT print null",
		"RETURN return null",
		"SUPER super null",
		"THIS this null",
		"TRUE true null",
		"VAR var null",
		"WHILE while null",
		"EOF  null",
	)
	checkTokens(t, "_foo bar1 orchid",
		"IDENTIFIER _foo null",
		"IDENTIFIER bar1 null",
		"IDENTIFIER orchid null",
		"EOF  null",
	)
}

func TestScanComments(t *testing.T) {
	checkTokens(t, "// nothing here",
		"EOF  null",
	)
	checkTokens(t, "a // comment ( )\nb",
		"IDENTIFIER a null",
		"IDENTIFIER b null",
		"EOF  null",
	)

	tokens, _ := Scan("a // comment\nb")
	if tokens[1].Line() != 2 {
		t.Errorf("b should be on line 2, found %d", tokens[1].Line())
	}
}

func TestScanLines(t *testing.T) {
	tokens, _ := Scan("a\n\"x\ny\"\nb")
	lines := []int{1, 3, 4, 4}
	for i, tk := range tokens {
		if tk.Line() != lines[i] {
			t.Errorf("token %s should be on line %d, found %d", tk, lines[i], tk.Line())
		}
	}
	if tokens[1].String() != "STRING \"x\ny\" x\ny" {
		t.Errorf("unexpected multi-line string token %q", tokens[1].String())
	}
}

func TestScanErrors(t *testing.T) {
	tokens, errs := Scan(",.$(#")
	expectedErrs := []string{
		"[line 1] Error: Unexpected character: $",
		"[line 1] Error: Unexpected character: #",
	}
	if strings.Join(errs, "\n") != strings.Join(expectedErrs, "\n") {
		t.Errorf("unexpected errors %v", errs)
	}
	expected := strings.Join([]string{
		"COMMA , null",
		"DOT . null",
		"LEFT_PAREN ( null",
		"EOF  null",
	}, "\n")
	if got := tokenLines(tokens); got != expected {
		t.Errorf("Expected:\n%s\nFound:\n%s", expected, got)
	}

	tokens, errs = Scan("\"abc\n")
	if len(errs) != 1 || errs[0] != "[line 2] Error: Unterminated string." {
		t.Errorf("unexpected errors %v", errs)
	}
	if len(tokens) != 1 || tokens[0].Type() != EOF {
		t.Errorf("unterminated string must not produce a token, found %s", tokenLines(tokens))
	}

	// Multi-byte characters are reported once
	_, errs = Scan("é")
	if len(errs) != 1 || errs[0] != "[line 1] Error: Unexpected character: é" {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestTokenizeMode(t *testing.T) {
	tp := &testPrinter{}
	status := NewInterpreter(tp, nil).Tokenize("var x = 1;")
	if status != ExitOK {
		t.Fatalf("expected exit status %d, got %d", ExitOK, status)
	}
	expected := strings.Join([]string{
		"VAR var null",
		"IDENTIFIER x null",
		"EQUAL = null",
		"NUMBER 1 1.0",
		"SEMICOLON ; null",
		"EOF  null",
	}, "\n")
	if !tp.Equals(expected) {
		t.Errorf("Expected:\n%s\nFound:\n%s", expected, tp.printed)
	}

	status = NewInterpreter(tp, nil).Tokenize("@")
	if status != ExitDataErr {
		t.Errorf("expected exit status %d, got %d", ExitDataErr, status)
	}
	if tp.errored != "[line 1] Error: Unexpected character: @\n" {
		t.Errorf("unexpected error output %q", tp.errored)
	}
	if tp.printed != "EOF  null\n" {
		t.Errorf("tokens must still be printed, found %q", tp.printed)
	}
}

func TestTokenTypeString(t *testing.T) {
	if LEFT_PAREN.String() != "LEFT_PAREN" || EOF.String() != "EOF" {
		t.Errorf("unexpected names %s %s", LEFT_PAREN, EOF)
	}
	if TokenType(-1).String() != "TokenType(-1)" {
		t.Errorf("unexpected name for invalid type: %s", TokenType(-1))
	}
}
