package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yulfmt/grammar"
)

func TestParseBracedProgram(t *testing.T) {
	program, err := grammar.Parse("test.yul", `{
    let a := 1
    if iszero(a) {
        a := 2
    }
}
`)
	require.NoError(t, err)
	require.Len(t, program.Statements, 1)

	block := program.Statements[0].Block
	require.NotNil(t, block)
	require.Len(t, block.Statements, 2)

	let := block.Statements[0].Let
	require.NotNil(t, let)
	assert.Equal(t, []string{"a"}, let.Names)
	assert.Equal(t, "1", let.Value.Literal.Number)

	ifStmt := block.Statements[1].If
	require.NotNil(t, ifStmt)
	assert.Equal(t, "iszero", ifStmt.Condition.Call.Name)
	assert.Equal(t, []string{"a"}, ifStmt.Body.Statements[0].Assign.Targets)
}

func TestParseTopLevelStatements(t *testing.T) {
	program, err := grammar.Parse("", "let x := 0x40 // comment\n/* block */ mstore(x, \"a\\\"b\")")
	require.NoError(t, err)
	require.Len(t, program.Statements, 2)

	call := program.Statements[1].Call
	require.NotNil(t, call)
	assert.Equal(t, "mstore", call.Name)
	assert.Equal(t, `"a\"b"`, call.Args[1].Literal.String)
}

func TestParseAllStatementKinds(t *testing.T) {
	source := `{
    function f(a, b) -> r, s {
        for { let i := 0 } lt(i, a) { i := add(i, 1) } {
            if eq(i, b) { break }
            continue
        }
        leave
    }
    let x, y := f(1, 2)
    switch x
    case 0 { }
    case "abc" { sstore(0, true) }
    default { }
}`
	program, err := grammar.Parse("all.yul", source)
	require.NoError(t, err)

	body := program.Statements[0].Block.Statements
	fn := body[0].Function
	require.NotNil(t, fn)
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	assert.Equal(t, []string{"r", "s"}, fn.Returns)

	loop := fn.Body.Statements[0].For
	require.NotNil(t, loop)
	assert.True(t, loop.Body.Statements[1].Continue)
	assert.True(t, fn.Body.Statements[1].Leave)

	sw := body[2].Switch
	require.NotNil(t, sw)
	assert.Len(t, sw.Cases, 2)
	assert.NotNil(t, sw.Default)
	assert.Equal(t, "true", sw.Cases[1].Body.Statements[0].Call.Args[1].Literal.Bool)

	assert.Equal(t, 12, program.CountStatements())
}

func TestKeywordPrefixedIdentifiers(t *testing.T) {
	program, err := grammar.Parse("", "let letter := iffy(forward)")
	require.NoError(t, err)
	assert.Equal(t, []string{"letter"}, program.Statements[0].Let.Names)
}

func TestDottedNamesStartingWithKeyword(t *testing.T) {
	program, err := grammar.Parse("", `{
    let if.x := 1
    let true.v, for.y := f()
    function let.f(case.a) -> default.r {
    }
    pop(if.x)
}
`)
	require.NoError(t, err)
	body := program.Statements[0].Block.Statements
	require.Len(t, body, 4)
	assert.Equal(t, []string{"if.x"}, body[0].Let.Names)
	assert.Equal(t, []string{"true.v", "for.y"}, body[1].Let.Names)
	assert.Equal(t, "let.f", body[2].Function.Name)
	assert.Equal(t, []string{"case.a"}, body[2].Function.Params)
	assert.Equal(t, []string{"default.r"}, body[2].Function.Returns)
	assert.Equal(t, "if.x", body[3].Call.Args[0].Identifier)
}

func TestRejectsInvalidSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"missing brace", "{ let a := 1"},
		{"keyword as name", "{ let for := 1 }"},
		{"dangling comma", "{ f(1,) }"},
		{"bare literal statement", "{ 1 }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := grammar.Parse("bad.yul", tt.source)
			require.Error(t, err)
			line, col, ok := grammar.ErrorPosition(err)
			assert.True(t, ok)
			assert.Positive(t, line)
			assert.Positive(t, col)
		})
	}
}
