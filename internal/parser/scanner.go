package parser

import (
	"fmt"
	"unicode/utf8"

	"yulfmt/internal/ast"
	"yulfmt/internal/errors"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position // first byte
	End      Position // one past the last byte
}

type Scanner struct {
	source      string
	filename    string
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	errors      []errors.Diagnostic
	reporter    *errors.Reporter
}

func NewScanner(source, filename string) *Scanner {
	return &Scanner{
		source:   source,
		filename: filename,
		line:     1,
		column:   1,
	}
}

// Errors returns the lexical diagnostics produced since the last Reset.
func (s *Scanner) Errors() []errors.Diagnostic {
	return s.errors
}

// Reset rewinds the scanner to the start of the source.
func (s *Scanner) Reset() {
	s.start, s.current = 0, 0
	s.line, s.column = 1, 1
	s.errors = nil
}

// ScanTokens returns every token of the source, ending with a single EOF.
func (s *Scanner) ScanTokens() []Token {
	s.Reset()
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// Next returns the next token. Once the input is exhausted every call returns EOF.
func (s *Scanner) Next() Token {
	if tok, ok := s.skipTrivia(); !ok {
		return tok
	}

	s.markStart()
	if s.isAtEnd() {
		return s.makeToken(EOF)
	}

	c := s.advance()
	switch c {
	case '{':
		return s.makeToken(LEFT_BRACE)
	case '}':
		return s.makeToken(RIGHT_BRACE)
	case '(':
		return s.makeToken(LEFT_PAREN)
	case ')':
		return s.makeToken(RIGHT_PAREN)
	case ',':
		return s.makeToken(COMMA)
	case ':':
		if s.matchNext('=') {
			return s.makeToken(COLON_EQUAL)
		}
		return s.illegal("expected '=' after ':'")
	case '-':
		if s.matchNext('>') {
			return s.makeToken(ARROW)
		}
		return s.illegal("expected '>' after '-'")
	case '"':
		return s.scanString()
	}

	switch {
	case isDigit(c):
		return s.scanNumber(c)
	case isIdentStart(c):
		return s.scanIdentifier()
	}

	// Consume the whole rune so multi-byte input yields one token.
	if c >= utf8.RuneSelf {
		r, size := utf8.DecodeRuneInString(s.source[s.start:])
		for i := 1; i < size; i++ {
			s.advance()
		}
		if r == utf8.RuneError {
			return s.illegal("invalid UTF-8 in source")
		}
		return s.illegal(fmt.Sprintf("unexpected character %q", r))
	}
	return s.illegal(fmt.Sprintf("unexpected character %q", c))
}

// skipTrivia consumes whitespace and comments. It returns false together
// with an ILLEGAL token when a block comment is not terminated.
func (s *Scanner) skipTrivia() (Token, bool) {
	for !s.isAtEnd() {
		switch c := s.peek(); {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == '/' && s.peekNext() == '/':
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		case c == '/' && s.peekNext() == '*':
			s.markStart()
			s.advance()
			s.advance()
			for !(s.peek() == '*' && s.peekNext() == '/') {
				if s.isAtEnd() {
					return s.illegal("unterminated block comment"), false
				}
				s.advance()
			}
			s.advance()
			s.advance()
		default:
			return Token{}, true
		}
	}
	return Token{}, true
}

func (s *Scanner) scanNumber(first byte) Token {
	if first == '0' && s.peek() == 'x' {
		s.advance()
		if !isHexDigit(s.peek()) {
			return s.illegal("expected hex digit after '0x'")
		}
		for isHexDigit(s.peek()) {
			s.advance()
		}
		return s.makeToken(HEX_NUMBER)
	}

	for isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(NUMBER)
}

func (s *Scanner) scanIdentifier() Token {
	for isIdentPart(s.peek()) {
		s.advance()
	}
	return s.makeToken(lookupIdentifier(s.source[s.start:s.current]))
}

// scanString keeps the quotes and escapes in the lexeme so literals print as written.
func (s *Scanner) scanString() Token {
	for {
		if s.isAtEnd() || s.peek() == '\n' {
			return s.illegal("unterminated string literal")
		}
		c := s.advance()
		if c == '"' {
			return s.makeToken(STRING)
		}
		if c == '\\' {
			if s.isAtEnd() || s.peek() == '\n' {
				return s.illegal("unterminated string literal")
			}
			s.advance()
		}
	}
}

func (s *Scanner) markStart() {
	s.start = s.current
	s.startLine = s.line
	s.startColumn = s.column
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) makeToken(tokenType TokenType) Token {
	return Token{
		Type:     tokenType,
		Lexeme:   s.source[s.start:s.current],
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		End:      Position{Line: s.line, Column: s.column, Offset: s.current},
	}
}

func (s *Scanner) illegal(message string) Token {
	tok := s.makeToken(ILLEGAL)
	d := errors.New(errors.LexError, message, ast.SourceRange{
		Start: s.astPos(tok.Position),
		End:   s.astPos(tok.End),
	}).Build()

	s.errors = append(s.errors, d)
	if s.reporter != nil {
		s.reporter.Report(d)
	}
	return tok
}

func (s *Scanner) astPos(p Position) ast.Position {
	return ast.Position{Filename: s.filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func isIdentStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_' || c == '$'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '.'
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}
