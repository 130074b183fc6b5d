package ast

// Equal reports whether two nodes have the same structure and values.
// Source positions are ignored.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.NodeType() != b.NodeType() {
		return false
	}

	switch x := a.(type) {
	case *Ident:
		return x.Value == b.(*Ident).Value
	case *Block:
		return equalStatements(x.Statements, b.(*Block).Statements)
	case *VariableDeclaration:
		y := b.(*VariableDeclaration)
		return equalIdents(x.Names, y.Names) && equalExpr(x.Value, y.Value)
	case *Assignment:
		y := b.(*Assignment)
		return equalIdents(x.Targets, y.Targets) && equalExpr(x.Value, y.Value)
	case *ExpressionStatement:
		return equalExpr(x.Expr, b.(*ExpressionStatement).Expr)
	case *If:
		y := b.(*If)
		return equalExpr(x.Condition, y.Condition) && equalBlock(x.Body, y.Body)
	case *ForLoop:
		y := b.(*ForLoop)
		return equalBlock(x.Pre, y.Pre) &&
			equalExpr(x.Condition, y.Condition) &&
			equalBlock(x.Post, y.Post) &&
			equalBlock(x.Body, y.Body)
	case *Switch:
		y := b.(*Switch)
		if !equalExpr(x.Expr, y.Expr) || len(x.Cases) != len(y.Cases) {
			return false
		}
		for i := range x.Cases {
			if !Equal(x.Cases[i], y.Cases[i]) {
				return false
			}
		}
		return true
	case *Case:
		y := b.(*Case)
		if x.IsDefault() != y.IsDefault() {
			return false
		}
		if !x.IsDefault() && !Equal(x.Value, y.Value) {
			return false
		}
		return equalBlock(x.Body, y.Body)
	case *FunctionDefinition:
		y := b.(*FunctionDefinition)
		return x.Name.Value == y.Name.Value &&
			equalIdents(x.Params, y.Params) &&
			equalIdents(x.Returns, y.Returns) &&
			equalBlock(x.Body, y.Body)
	case *Break, *Continue, *Leave:
		return true
	case *FunctionCall:
		y := b.(*FunctionCall)
		if x.Name.Value != y.Name.Value || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !equalExpr(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *Identifier:
		return x.Name == b.(*Identifier).Name
	case *Literal:
		y := b.(*Literal)
		return x.Kind == y.Kind && x.Value == y.Value
	}
	return false
}

func equalBlock(a, b *Block) bool {
	if a == nil || b == nil {
		return isEmptyBlock(a) && isEmptyBlock(b)
	}
	return Equal(a, b)
}

func equalExpr(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}

func equalStatements(a, b []Statement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalIdents(a, b []Ident) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Value != b[i].Value {
			return false
		}
	}
	return true
}

// isNil catches both untyped nil and typed nil pointers stored in the interface.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch x := n.(type) {
	case *Block:
		return x == nil
	case *Case:
		return x == nil
	case *Literal:
		return x == nil
	case *FunctionCall:
		return x == nil
	case *Identifier:
		return x == nil
	}
	return false
}
