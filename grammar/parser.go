package grammar

import (
	"fmt"
	"os"
	"sync"

	"github.com/alecthomas/participle/v2"
)

var (
	buildOnce sync.Once
	yulParser *participle.Parser[Program]
	buildErr  error
)

func parser() (*participle.Parser[Program], error) {
	buildOnce.Do(func() {
		yulParser, buildErr = participle.Build[Program](
			participle.Lexer(YulLexer),
			participle.Map(keywordMapper, "Ident"),
			participle.Elide("Whitespace", "Comment", "BlockComment"),
			participle.UseLookahead(2),
		)
	})
	if buildErr != nil {
		return nil, fmt.Errorf("failed to build parser: %w", buildErr)
	}
	return yulParser, nil
}

// Parse checks source against the reference grammar.
func Parse(filename, source string) (*Program, error) {
	p, err := parser()
	if err != nil {
		return nil, err
	}
	return p.ParseString(filename, source)
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

// ErrorPosition extracts the location of a grammar error.
func ErrorPosition(err error) (line, column int, ok bool) {
	pe, isParseErr := err.(participle.Error)
	if !isParseErr {
		return 0, 0, false
	}
	pos := pe.Position()
	return pos.Line, pos.Column, true
}

// Walk calls fn for every statement in source order, descending into nested blocks.
func (p *Program) Walk(fn func(*Statement)) {
	walkStatements(p.Statements, fn)
}

func walkStatements(stmts []*Statement, fn func(*Statement)) {
	for _, s := range stmts {
		fn(s)
		for _, b := range s.blocks() {
			walkStatements(b.Statements, fn)
		}
	}
}

func (s *Statement) blocks() []*Block {
	var out []*Block
	add := func(b *Block) {
		if b != nil {
			out = append(out, b)
		}
	}
	switch {
	case s.Block != nil:
		add(s.Block)
	case s.Function != nil:
		add(s.Function.Body)
	case s.If != nil:
		add(s.If.Body)
	case s.Switch != nil:
		for _, c := range s.Switch.Cases {
			add(c.Body)
		}
		add(s.Switch.Default)
	case s.For != nil:
		add(s.For.Pre)
		add(s.For.Post)
		add(s.For.Body)
	}
	return out
}

// CountStatements returns the number of statements at every depth.
func (p *Program) CountStatements() int {
	n := 0
	p.Walk(func(*Statement) { n++ })
	return n
}
