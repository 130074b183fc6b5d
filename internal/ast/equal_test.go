package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualIgnoresPositions(t *testing.T) {
	a := &Block{
		Pos: Position{Line: 1, Column: 1},
		Statements: []Statement{
			&ExpressionStatement{Pos: Position{Line: 2}, Expr: call("pop", num("1"))},
		},
	}
	b := &Block{
		Pos: Position{Line: 7, Column: 3},
		Statements: []Statement{
			&ExpressionStatement{Pos: Position{Line: 9}, Expr: call("pop", num("1"))},
		},
	}

	assert.True(t, Equal(a, b))
}

func TestEqualDetectsDifferences(t *testing.T) {
	tests := []struct {
		name string
		a, b Node
	}{
		{"literal spelling", num("0x1"), num("1")},
		{"literal kind", num("1"), &Literal{Kind: StringLiteral, Value: "1"}},
		{"call name", call("add", num("1"), num("2")), call("sub", num("1"), num("2"))},
		{"arg count", call("f", num("1")), call("f")},
		{"node type", &Break{}, &Continue{}},
		{"declaration value", &VariableDeclaration{Names: names("a"), Value: num("1")}, &VariableDeclaration{Names: names("a")}},
		{"default vs case", &Case{Body: &Block{}}, &Case{Value: num("0"), Body: &Block{}}},
		{"function returns", &FunctionDefinition{Name: Ident{Value: "f"}, Returns: names("r"), Body: &Block{}}, &FunctionDefinition{Name: Ident{Value: "f"}, Body: &Block{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Equal(tt.a, tt.b))
		})
	}
}

func TestEqualNil(t *testing.T) {
	var block *Block
	assert.True(t, Equal(nil, nil))
	assert.True(t, Equal(block, nil))
	assert.False(t, Equal(&Block{}, nil))
}

func TestRangeOf(t *testing.T) {
	lit := &Literal{Pos: Position{Line: 1, Column: 5}, EndPos: Position{Line: 1, Column: 9}, Value: "0x40"}
	r := RangeOf(lit)
	assert.Equal(t, 5, r.Start.Column)
	assert.Equal(t, 9, r.End.Column)
	assert.Equal(t, "1:5", r.Start.String())
}
