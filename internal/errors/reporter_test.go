package errors

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yulfmt/internal/ast"
)

func init() {
	color.NoColor = true
}

func at(line, col, length int) ast.SourceRange {
	return ast.SourceRange{
		Start: ast.Position{Line: line, Column: col},
		End:   ast.Position{Line: line, Column: col + length},
	}
}

func TestReporterKeepsInsertionOrder(t *testing.T) {
	r := NewReporter(10)
	assert.True(t, r.Report(Syntax("first", at(1, 1, 1))))
	assert.True(t, r.Report(DefaultOnlySwitch(at(2, 1, 6))))
	assert.True(t, r.Report(Syntax("third", at(3, 1, 1))))

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Message)
	assert.Equal(t, Warning, all[1].Level)
	assert.Equal(t, "third", all[2].Message)
	assert.True(t, r.HasErrors())
	assert.True(t, r.HasWarnings())
	assert.Equal(t, 3, r.Count(SyntaxError))
}

func TestReporterWarningsOnly(t *testing.T) {
	r := NewReporter(0)
	r.Report(DefaultOnlySwitch(at(1, 1, 6)))
	assert.False(t, r.HasErrors())
	assert.True(t, r.HasWarnings())
	assert.Equal(t, 1, r.Len())
}

func TestReporterLimit(t *testing.T) {
	r := NewReporter(1)
	assert.True(t, r.Report(DefaultOnlySwitch(at(1, 1, 1))))
	assert.False(t, r.Report(Syntax("dropped", at(2, 1, 1))))

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 1, r.Dropped())
	assert.True(t, r.HasErrors(), "a dropped error still fails the run")
}

func TestReporterAllReturnsCopy(t *testing.T) {
	r := NewReporter(4)
	r.Report(Syntax("original", at(1, 1, 1)))
	all := r.All()
	all[0].Message = "mutated"
	assert.Equal(t, "original", r.All()[0].Message)
}

func TestKindCodes(t *testing.T) {
	tests := []struct {
		kind Kind
		code string
	}{
		{UnknownVersion, ErrorUnknownVersion},
		{LexError, ErrorLexical},
		{SyntaxError, ErrorSyntax},
		{UndeclaredIdentifier, ErrorUndefinedFunction},
		{DuplicateDefault, ErrorDuplicateDefault},
		{ArityMismatch, ErrorInvalidArguments},
		{VerifyError, ErrorVerify},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.kind.Code())
			assert.False(t, IsWarning(tt.code))
			assert.NotEqual(t, "Unknown error code", GetErrorDescription(tt.code))
		})
	}
	assert.True(t, IsWarning(WarningDefaultOnlySwitch))
}

func TestUndefinedFunctionSuggestions(t *testing.T) {
	d := UndefinedFunction("mstroe", at(1, 5, 6), []string{"mstore", "mstore8", "sstore", "add"})
	assert.Equal(t, UndeclaredIdentifier, d.Kind)
	assert.Equal(t, ErrorUndefinedFunction, d.Code)
	assert.Contains(t, d.Message, "mstroe")
	require.Len(t, d.Suggestions, 1)
	assert.Contains(t, d.Suggestions[0].Message, "'mstore'")

	d = UndefinedFunction("zzz", at(1, 1, 3), []string{"mstore"})
	assert.Empty(t, d.Suggestions)
	assert.NotEmpty(t, d.HelpText)
}

func TestArityMessages(t *testing.T) {
	d := WrongArgumentCount("add", 2, 1, at(1, 1, 6))
	assert.Equal(t, ArityMismatch, d.Kind)
	assert.Equal(t, "function 'add' expects 2 arguments, but 1 were provided", d.Message)

	d = WrongReturnCount("add", 0, 1, at(1, 1, 9))
	assert.Equal(t, "function 'add' returns 1 value, but 0 were expected", d.Message)
	assert.NotEmpty(t, d.HelpText)
}

func TestSimilarNames(t *testing.T) {
	assert.Equal(t, []string{"mstore", "sstore"}, SimilarNames("mstorf", []string{"sstore", "mstore", "call"}))
	assert.Empty(t, SimilarNames("x", []string{"ab"}))
	assert.Empty(t, SimilarNames("add", []string{"add"}))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("add", "add"))
	assert.Equal(t, 1, levenshteinDistance("add", "ad"))
	assert.Equal(t, 3, levenshteinDistance("", "abc"))
	assert.Equal(t, 2, levenshteinDistance("mstore", "sstor"))
}

func TestFormatterOutput(t *testing.T) {
	source := "{\n    let a := 1\n    pop(ad(a))\n}"
	f := NewFormatter("test.yul", source)

	out := f.Format(UndefinedFunction("ad", at(3, 9, 2), []string{"add"}))

	assert.Contains(t, out, "error["+ErrorUndefinedFunction+"]: function 'ad' not found")
	assert.Contains(t, out, "--> test.yul:3:9")
	assert.Contains(t, out, "    pop(ad(a))")
	assert.Contains(t, out, "        ^^\n")
	assert.Contains(t, out, "did you mean 'add'?")
}

func TestFormatterWithoutLocation(t *testing.T) {
	f := NewFormatter("<stdin>", "")
	out := f.Format(UnknownEVMVersion("londn", []string{"byzantium", "london", "petersburg"}))
	assert.Contains(t, out, "error[E0900]")
	assert.Contains(t, out, "--> <stdin>")
	assert.Contains(t, out, "supported versions")
}

func TestFormatAllSummary(t *testing.T) {
	f := NewFormatter("a.yul", "{ }")
	out := f.FormatAll([]Diagnostic{
		Syntax("a", at(1, 1, 1)),
		Syntax("b", at(1, 3, 1)),
		DefaultOnlySwitch(at(1, 1, 1)),
	})
	assert.True(t, strings.HasSuffix(out, "2 errors and 1 warning generated\n"))
}

func TestFormatTruncatedNamesDropped(t *testing.T) {
	f := NewFormatter("a.yul", "{ }")
	diags := []Diagnostic{Syntax("a", at(1, 1, 1))}

	out := f.FormatTruncated(diags, 3)
	assert.True(t, strings.HasSuffix(out, "1 error generated\n3 more diagnostics not shown\n"), out)
	assert.Equal(t, "1 more diagnostic not shown\n", NotShown(1))
	assert.Equal(t, f.FormatAll(diags), f.FormatTruncated(diags, 0))
}

func TestCreateMarkerKeepsTabs(t *testing.T) {
	marker := createMarker("\tx := ﾃ", 7, 3, Error)
	assert.Equal(t, "\t     ^", marker)

	wide := createMarker("a 中文 b", 3, 6, Error)
	assert.Equal(t, "  ^^^^", wide)
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	err := RenderJSON(&buf, "in.yul", []Diagnostic{Syntax("expected '}'", at(2, 4, 1))})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "error", decoded[0]["severity"])
	assert.Equal(t, "E0101", decoded[0]["code"])
	assert.Equal(t, "in.yul", decoded[0]["file"])
	assert.EqualValues(t, 2, decoded[0]["line"])
	assert.EqualValues(t, 5, decoded[0]["endColumn"])
}
