package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (v *VariableDeclaration) NodePos() Position    { return v.Pos }
func (v *VariableDeclaration) NodeEndPos() Position { return v.EndPos }
func (*VariableDeclaration) NodeType() NodeType     { return VARIABLE_DECLARATION }

func (a *Assignment) NodePos() Position    { return a.Pos }
func (a *Assignment) NodeEndPos() Position { return a.EndPos }
func (*Assignment) NodeType() NodeType     { return ASSIGNMENT }

func (e *ExpressionStatement) NodePos() Position    { return e.Pos }
func (e *ExpressionStatement) NodeEndPos() Position { return e.EndPos }
func (*ExpressionStatement) NodeType() NodeType     { return EXPRESSION_STATEMENT }

func (i *If) NodePos() Position    { return i.Pos }
func (i *If) NodeEndPos() Position { return i.EndPos }
func (*If) NodeType() NodeType     { return IF }

func (f *ForLoop) NodePos() Position    { return f.Pos }
func (f *ForLoop) NodeEndPos() Position { return f.EndPos }
func (*ForLoop) NodeType() NodeType     { return FOR_LOOP }

func (s *Switch) NodePos() Position    { return s.Pos }
func (s *Switch) NodeEndPos() Position { return s.EndPos }
func (*Switch) NodeType() NodeType     { return SWITCH }

func (c *Case) NodePos() Position    { return c.Pos }
func (c *Case) NodeEndPos() Position { return c.EndPos }
func (*Case) NodeType() NodeType     { return CASE }

func (f *FunctionDefinition) NodePos() Position    { return f.Pos }
func (f *FunctionDefinition) NodeEndPos() Position { return f.EndPos }
func (*FunctionDefinition) NodeType() NodeType     { return FUNCTION_DEFINITION }

func (b *Break) NodePos() Position    { return b.Pos }
func (b *Break) NodeEndPos() Position { return b.EndPos }
func (*Break) NodeType() NodeType     { return BREAK }

func (c *Continue) NodePos() Position    { return c.Pos }
func (c *Continue) NodeEndPos() Position { return c.EndPos }
func (*Continue) NodeType() NodeType     { return CONTINUE }

func (l *Leave) NodePos() Position    { return l.Pos }
func (l *Leave) NodeEndPos() Position { return l.EndPos }
func (*Leave) NodeType() NodeType     { return LEAVE }

func (f *FunctionCall) NodePos() Position    { return f.Pos }
func (f *FunctionCall) NodeEndPos() Position { return f.EndPos }
func (*FunctionCall) NodeType() NodeType     { return FUNCTION_CALL }

func (i *Identifier) NodePos() Position    { return i.Pos }
func (i *Identifier) NodeEndPos() Position { return i.EndPos }
func (*Identifier) NodeType() NodeType     { return IDENTIFIER }

func (l *Literal) NodePos() Position    { return l.Pos }
func (l *Literal) NodeEndPos() Position { return l.EndPos }
func (*Literal) NodeType() NodeType     { return LITERAL }
