package lexer

import "testing"

func TestTokenizeBasics(t *testing.T) {
	input := `var x = 5;
	x = x + 10;
	`

	tests := []struct {
		expectedLexeme string
		expectedKind   TokenKind
	}{
		{"", BeginFile},
		{"var", KwVar},
		{"x", Symbol},
		{"=", OpAssign},
		{"5", IntegerLit},
		{";", Semi},
		{"x", Symbol},
		{"=", OpAssign},
		{"x", Symbol},
		{"+", OpPlus},
		{"10", IntegerLit},
		{";", Semi},
		{"", EndFile},
	}

	tokens := Tokenize(input)
	if len(tokens) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tests), tokens)
	}
	for i, tt := range tests {
		tok := tokens[i]
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tokens[%d] - kind wrong. expected=%s, got=%s (lexeme=%q)",
				i, tt.expectedKind, tok.Kind, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tokens[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestTokenizeKeywords(t *testing.T) {
	input := "if else while for loop repeat until do var con vec mat swap break continue self"

	tests := []TokenKind{
		KwIf, KwElse, KwWhile, KwFor, KwLoop, KwRepeat, KwUntil, KwDo,
		KwVar, KwCon, KwVec, KwMat, KwSwap, KwBreak, KwContinue, KwSelf,
	}

	tokens := Tokenize(input)
	body := tokens[1 : len(tokens)-1]
	if len(body) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(body), len(tests), body)
	}
	for i, want := range tests {
		if body[i].Kind != want {
			t.Fatalf("tokens[%d] - kind wrong. expected=%s, got=%s", i, want, body[i].Kind)
		}
	}
}

func TestTokenizeBraKet(t *testing.T) {
	input := "<0| |1> <a|b> |a><b|"

	tests := []TokenKind{BasisBra, BasisKet, BraKet, KetBra}

	tokens := Tokenize(input)
	body := tokens[1 : len(tokens)-1]
	if len(body) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(body), len(tests), body)
	}
	for i, want := range tests {
		if body[i].Kind != want {
			t.Fatalf("tokens[%d] - kind wrong. expected=%s, got=%s (lexeme=%q)", i, want, body[i].Kind, body[i].Lexeme)
		}
	}
}

func TestTokenizeNamedBraKet(t *testing.T) {
	input := "<psi| |phi>"

	tests := []struct {
		kind   TokenKind
		lexeme string
	}{
		{BraSymbol, "<psi|"},
		{KetSymbol, "|phi>"},
	}

	tokens := Tokenize(input)
	body := tokens[1 : len(tokens)-1]
	if len(body) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(body), len(tests), body)
	}
	for i, tt := range tests {
		if body[i].Kind != tt.kind || body[i].Lexeme != tt.lexeme {
			t.Fatalf("tokens[%d] - expected %s(%q), got %s(%q)", i, tt.kind, tt.lexeme, body[i].Kind, body[i].Lexeme)
		}
	}
}

func TestTokenizeNumberBases(t *testing.T) {
	input := "42 0x2A 0b101010 0o52 3.14 2i"

	tests := []struct {
		kind   TokenKind
		lexeme string
	}{
		{IntegerLit, "42"},
		{IntegerLit, "0x2A"},
		{IntegerLit, "0b101010"},
		{IntegerLit, "0o52"},
		{RealLit, "3.14"},
		{ImaginaryLit, "2i"},
	}

	tokens := Tokenize(input)
	body := tokens[1 : len(tokens)-1]
	if len(body) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(body), len(tests), body)
	}
	for i, tt := range tests {
		if body[i].Kind != tt.kind || body[i].Lexeme != tt.lexeme {
			t.Fatalf("tokens[%d] - expected %s(%q), got %s(%q)", i, tt.kind, tt.lexeme, body[i].Kind, body[i].Lexeme)
		}
	}
}

func TestTokenizeInvalidByte(t *testing.T) {
	tokens := Tokenize("x = `;")
	found := false
	for _, tok := range tokens {
		if tok.Kind == Invalid {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an Invalid token for an unrecognised byte, got %v", tokens)
	}
}
