package ast

import (
	"strings"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 4

// PrintOptions tunes the canonical rendering.
type PrintOptions struct {
	Indent int // spaces per nesting level, DefaultIndent when <= 0
}

// Print renders a block in canonical form, terminated by a newline.
func Print(b *Block) string {
	return PrintWith(b, PrintOptions{})
}

// PrintWith renders a block in canonical form using the given options.
func PrintWith(b *Block, opts PrintOptions) string {
	p := newPrinter(opts)
	p.block(b, 0)
	p.out.WriteByte('\n')
	return p.out.String()
}

type printer struct {
	out  strings.Builder
	unit string
}

func newPrinter(opts PrintOptions) *printer {
	width := opts.Indent
	if width <= 0 {
		width = DefaultIndent
	}
	return &printer{unit: strings.Repeat(" ", width)}
}

func (p *printer) indent(depth int) {
	for i := 0; i < depth; i++ {
		p.out.WriteString(p.unit)
	}
}

func (p *printer) block(b *Block, depth int) {
	if b == nil || len(b.Statements) == 0 {
		p.out.WriteString("{ }")
		return
	}

	p.out.WriteString("{\n")
	for _, stmt := range b.Statements {
		p.indent(depth + 1)
		p.statement(stmt, depth+1)
		p.out.WriteByte('\n')
	}
	p.indent(depth)
	p.out.WriteByte('}')
}

func (p *printer) statement(stmt Statement, depth int) {
	switch s := stmt.(type) {
	case *Block:
		p.block(s, depth)
	case *VariableDeclaration:
		p.out.WriteString("let ")
		p.idents(s.Names)
		if s.Value != nil {
			p.out.WriteString(" := ")
			p.expr(s.Value)
		}
	case *Assignment:
		p.idents(s.Targets)
		p.out.WriteString(" := ")
		p.expr(s.Value)
	case *ExpressionStatement:
		p.expr(s.Expr)
	case *If:
		p.out.WriteString("if ")
		p.expr(s.Condition)
		p.out.WriteByte(' ')
		p.block(s.Body, depth)
	case *Switch:
		p.out.WriteString("switch ")
		p.expr(s.Expr)
		for _, c := range s.Cases {
			p.out.WriteByte('\n')
			p.indent(depth)
			p.switchCase(c, depth)
		}
	case *ForLoop:
		p.forLoop(s, depth)
	case *FunctionDefinition:
		p.out.WriteString("function ")
		p.out.WriteString(s.Name.Value)
		p.out.WriteByte('(')
		p.idents(s.Params)
		p.out.WriteByte(')')
		if len(s.Returns) > 0 {
			p.out.WriteString(" -> ")
			p.idents(s.Returns)
		}
		p.out.WriteByte(' ')
		p.block(s.Body, depth)
	case *Break:
		p.out.WriteString("break")
	case *Continue:
		p.out.WriteString("continue")
	case *Leave:
		p.out.WriteString("leave")
	}
}

func (p *printer) switchCase(c *Case, depth int) {
	if c.IsDefault() {
		p.out.WriteString("default ")
	} else {
		p.out.WriteString("case ")
		p.out.WriteString(c.Value.Value)
		p.out.WriteByte(' ')
	}
	p.block(c.Body, depth)
}

// The header stays on one line only while both the init and post blocks are empty.
func (p *printer) forLoop(f *ForLoop, depth int) {
	p.out.WriteString("for ")
	if isEmptyBlock(f.Pre) && isEmptyBlock(f.Post) {
		p.out.WriteString("{ } ")
		p.expr(f.Condition)
		p.out.WriteString(" { } ")
		p.block(f.Body, depth)
		return
	}

	p.block(f.Pre, depth)
	p.out.WriteByte('\n')
	p.indent(depth)
	p.expr(f.Condition)
	p.out.WriteByte('\n')
	p.indent(depth)
	p.block(f.Post, depth)
	p.out.WriteByte('\n')
	p.indent(depth)
	p.block(f.Body, depth)
}

func (p *printer) expr(e Expr) {
	switch x := e.(type) {
	case *FunctionCall:
		p.out.WriteString(x.Name.Value)
		p.out.WriteByte('(')
		for i, arg := range x.Args {
			if i > 0 {
				p.out.WriteString(", ")
			}
			p.expr(arg)
		}
		p.out.WriteByte(')')
	case *Identifier:
		p.out.WriteString(x.Name)
	case *Literal:
		p.out.WriteString(x.Value)
	}
}

func (p *printer) idents(ids []Ident) {
	for i, id := range ids {
		if i > 0 {
			p.out.WriteString(", ")
		}
		p.out.WriteString(id.Value)
	}
}

func isEmptyBlock(b *Block) bool {
	return b == nil || len(b.Statements) == 0
}

func render(fn func(p *printer)) string {
	p := newPrinter(PrintOptions{})
	fn(p)
	return p.out.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (b *Block) String() string {
	return render(func(p *printer) { p.block(b, 0) })
}

func (v *VariableDeclaration) String() string {
	return render(func(p *printer) { p.statement(v, 0) })
}

func (a *Assignment) String() string {
	return render(func(p *printer) { p.statement(a, 0) })
}

func (e *ExpressionStatement) String() string {
	return render(func(p *printer) { p.statement(e, 0) })
}

func (i *If) String() string {
	return render(func(p *printer) { p.statement(i, 0) })
}

func (f *ForLoop) String() string {
	return render(func(p *printer) { p.statement(f, 0) })
}

func (s *Switch) String() string {
	return render(func(p *printer) { p.statement(s, 0) })
}

func (c *Case) String() string {
	return render(func(p *printer) { p.switchCase(c, 0) })
}

func (f *FunctionDefinition) String() string {
	return render(func(p *printer) { p.statement(f, 0) })
}

func (*Break) String() string {
	return "break"
}

func (*Continue) String() string {
	return "continue"
}

func (*Leave) String() string {
	return "leave"
}

func (f *FunctionCall) String() string {
	return render(func(p *printer) { p.expr(f) })
}

func (i *Identifier) String() string {
	return i.Name
}

func (l *Literal) String() string {
	return l.Value
}
