package parser

import (
	"testing"

	"yulfmt/internal/errors"
)

func scanTypes(t *testing.T, input string, expected []TokenType) []Token {
	t.Helper()
	tokens := NewScanner(input, "test.yul").ScanTokens()

	if len(tokens) != len(expected)+1 {
		t.Fatalf("expected %d tokens plus EOF, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s (%q)", i, exp, tokens[i].Type, tokens[i].Lexeme)
		}
	}
	if tokens[len(tokens)-1].Type != EOF {
		t.Errorf("expected trailing EOF, got %s", tokens[len(tokens)-1].Type)
	}
	return tokens
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "let if for switch case default function break continue leave true false foo $slot a.b_1 _x9"
	scanTypes(t, input, []TokenType{
		LET, IF, FOR, SWITCH, CASE, DEFAULT, FUNCTION, BREAK, CONTINUE, LEAVE, TRUE, FALSE,
		IDENTIFIER, IDENTIFIER, IDENTIFIER, IDENTIFIER,
	})
}

func TestNumbers(t *testing.T) {
	tokens := scanTypes(t, "42 0 12345 0x0 0x1F 0xabc", []TokenType{
		NUMBER, NUMBER, NUMBER, HEX_NUMBER, HEX_NUMBER, HEX_NUMBER,
	})
	if tokens[4].Lexeme != "0x1F" {
		t.Errorf("expected lexeme 0x1F, got %q", tokens[4].Lexeme)
	}
}

func TestStrings(t *testing.T) {
	tokens := scanTypes(t, `"hello" "a\"b" ""`, []TokenType{STRING, STRING, STRING})

	want := []string{`"hello"`, `"a\"b"`, `""`}
	for i, w := range want {
		if tokens[i].Lexeme != w {
			t.Errorf("expected lexeme %s, got %s", w, tokens[i].Lexeme)
		}
	}
}

func TestPunctuation(t *testing.T) {
	scanTypes(t, "{ } ( ) , := ->", []TokenType{
		LEFT_BRACE, RIGHT_BRACE, LEFT_PAREN, RIGHT_PAREN, COMMA, COLON_EQUAL, ARROW,
	})
}

func TestCommentsAreSkipped(t *testing.T) {
	tokens := scanTypes(t, "// leading\nlet /* a\n b */ x // trailing", []TokenType{LET, IDENTIFIER})

	x := tokens[1]
	if x.Position.Line != 3 || x.Position.Column != 7 {
		t.Errorf("expected x at 3:7, got %d:%d", x.Position.Line, x.Position.Column)
	}
}

func TestTokenPositions(t *testing.T) {
	tokens := scanTypes(t, "{\n  let x := 0x40\n}", []TokenType{
		LEFT_BRACE, LET, IDENTIFIER, COLON_EQUAL, HEX_NUMBER, RIGHT_BRACE,
	})

	hex := tokens[4]
	if hex.Position != (Position{Line: 2, Column: 12, Offset: 13}) {
		t.Errorf("unexpected start %+v", hex.Position)
	}
	if hex.End != (Position{Line: 2, Column: 16, Offset: 17}) {
		t.Errorf("unexpected end %+v", hex.End)
	}
}

func TestIllegalInput(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		lexeme string
	}{
		{"hex without digits", "0x", "0x"},
		{"unterminated string", `"abc`, `"abc`},
		{"string across lines", "\"ab\ncd\"", `"ab`},
		{"unterminated block comment", "/* open", "/* open"},
		{"lone colon", ":", ":"},
		{"lone minus", "-", "-"},
		{"unknown character", "@", "@"},
		{"multi-byte character", "é", "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.input, "test.yul")
			tok := s.Next()
			if tok.Type != ILLEGAL {
				t.Fatalf("expected ILLEGAL, got %s", tok.Type)
			}
			if tok.Lexeme != tt.lexeme {
				t.Errorf("expected lexeme %q, got %q", tt.lexeme, tok.Lexeme)
			}
			if len(s.Errors()) != 1 || s.Errors()[0].Kind != errors.LexError {
				t.Errorf("expected one LexError, got %v", s.Errors())
			}
		})
	}
}

func TestIllegalTokenIsReported(t *testing.T) {
	reporter := errors.NewReporter(10)
	s := NewScanner("a @ b", "test.yul")
	s.reporter = reporter

	s.ScanTokens()
	if reporter.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", reporter.Len())
	}
	d := reporter.All()[0]
	if d.Range.Start.Column != 3 || d.Range.End.Column != 4 {
		t.Errorf("unexpected range %v", d.Range)
	}
	if d.Range.Start.Filename != "test.yul" {
		t.Errorf("expected filename in range, got %q", d.Range.Start.Filename)
	}
}

func TestNextIsEndlessAfterEOF(t *testing.T) {
	s := NewScanner("x", "")
	if tok := s.Next(); tok.Type != IDENTIFIER {
		t.Fatalf("expected IDENTIFIER, got %s", tok.Type)
	}
	for i := 0; i < 3; i++ {
		if tok := s.Next(); tok.Type != EOF {
			t.Errorf("call %d: expected EOF, got %s", i, tok.Type)
		}
	}
}

func TestResetRescansIdentically(t *testing.T) {
	s := NewScanner("{ let a := add(1, 0x2) // c\n}", "")
	first := s.ScanTokens()

	s.Reset()
	for i, want := range first {
		if got := s.Next(); got != want {
			t.Errorf("token %d: expected %+v, got %+v", i, want, got)
		}
	}
}
