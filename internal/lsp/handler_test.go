package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"yulfmt/internal/lsp"
)

const testURI = "file:///tmp/test.yul"

type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published, "no diagnostics published")
	return r.published[len(r.published)-1]
}

func open(t *testing.T, h *lsp.YulHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        testURI,
			LanguageID: "yul",
			Version:    1,
			Text:       text,
		},
	})
	require.NoError(t, err)
}

func formatting(h *lsp.YulHandler, ctx *glsp.Context) ([]protocol.TextEdit, error) {
	return h.TextDocumentFormatting(ctx, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
}

func TestOpenCleanDocumentPublishesNoDiagnostics(t *testing.T) {
	h := lsp.NewYulHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, h, ctx, "{ let a := 1 }")

	params := rec.last(t)
	assert.Equal(t, testURI, params.URI)
	assert.Empty(t, params.Diagnostics)
	require.NotNil(t, params.Version)
	assert.Equal(t, protocol.UInteger(1), *params.Version)
}

func TestFormattingReturnsWholeDocumentEdit(t *testing.T) {
	h := lsp.NewYulHandler()
	ctx := (&recorder{}).context()

	open(t, h, ctx, "{ let a := 1\n  mstore(0, a) }")

	edits, err := formatting(h, ctx)
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, "{\n    let a := 1\n    mstore(0, a)\n}\n", edits[0].NewText)
	assert.Equal(t, protocol.Position{Line: 0, Character: 0}, edits[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 16}, edits[0].Range.End)
}

func TestFormattingCanonicalDocumentHasNoEdits(t *testing.T) {
	h := lsp.NewYulHandler()
	ctx := (&recorder{}).context()

	open(t, h, ctx, "{\n    let a := 1\n}\n")

	edits, err := formatting(h, ctx)
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestArityErrorIsPublished(t *testing.T) {
	h := lsp.NewYulHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, h, ctx, "{ let x := add(1) }")

	diags := rec.last(t).Diagnostics
	require.Len(t, diags, 1)
	d := diags[0]
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, "E0013", d.Code.Value)
	assert.Equal(t, "yulfmt", *d.Source)
	assert.Contains(t, d.Message, "function 'add' expects 2 arguments, but 1 were provided")
	assert.Equal(t, protocol.UInteger(0), d.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(11), d.Range.Start.Character)

	edits, err := formatting(h, ctx)
	require.NoError(t, err)
	assert.Nil(t, edits, "documents with errors are never rewritten")
}

func TestWarningSeverity(t *testing.T) {
	h := lsp.NewYulHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, h, ctx, "{ switch 1 default { } }")

	diags := rec.last(t).Diagnostics
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *diags[0].Severity)
	assert.Equal(t, "W0001", diags[0].Code.Value)
}

func TestDidChangeReplacesDocument(t *testing.T) {
	h := lsp.NewYulHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, h, ctx, "{ let a := }")
	require.NotEmpty(t, rec.last(t).Diagnostics)

	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "{ let a := 1 }"},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).Diagnostics)
	assert.Equal(t, protocol.UInteger(2), *rec.last(t).Version)
}

func TestDidChangeRejectsIncrementalEdits(t *testing.T) {
	h := lsp.NewYulHandler()
	ctx := (&recorder{}).context()
	open(t, h, ctx, "{ }")

	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEvent{Range: &protocol.Range{}, Text: "x"},
		},
	})
	assert.Error(t, err)
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	h := lsp.NewYulHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, h, ctx, "{ let a := }")
	err := h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).Diagnostics)

	_, err = formatting(h, ctx)
	assert.Error(t, err)
}

func completionLabels(t *testing.T, h *lsp.YulHandler) []string {
	t.Helper()
	res, err := h.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)
	list, ok := res.(*protocol.CompletionList)
	require.True(t, ok)

	labels := make([]string, len(list.Items))
	for i, item := range list.Items {
		labels[i] = item.Label
	}
	return labels
}

func TestCompletionFollowsDialect(t *testing.T) {
	h := lsp.NewYulHandler()
	labels := completionLabels(t, h)
	assert.Contains(t, labels, "let")
	assert.Contains(t, labels, "leave")
	assert.Contains(t, labels, "mstore")
	assert.Contains(t, labels, "revert")

	_, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{
		InitializationOptions: map[string]any{"evmVersion": "homestead"},
	})
	require.NoError(t, err)
	assert.Equal(t, "homestead", h.Dialect().Name())

	labels = completionLabels(t, h)
	assert.Contains(t, labels, "mstore")
	assert.NotContains(t, labels, "revert")
}

func TestInitializeIgnoresUnknownVersion(t *testing.T) {
	h := lsp.NewYulHandler()
	res, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{
		InitializationOptions: map[string]any{"evmVersion": "london"},
	})
	require.NoError(t, err)
	assert.Equal(t, "petersburg", h.Dialect().Name())

	result := res.(*protocol.InitializeResult)
	assert.Equal(t, lsp.Name, result.ServerInfo.Name)
	assert.Equal(t, true, result.Capabilities.DocumentFormattingProvider)
}

func TestHoverOnBuiltin(t *testing.T) {
	h := lsp.NewYulHandler()
	ctx := (&recorder{}).context()
	open(t, h, ctx, "{\n    mstore(0x40, x)\n}")

	hover, err := h.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 1, Character: 6},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)

	content := hover.Contents.(protocol.MarkupContent)
	assert.Equal(t, protocol.MarkupKindMarkdown, content.Kind)
	assert.Contains(t, content.Value, "mstore(p0, p1)")
	assert.Contains(t, content.Value, "writes memory")
	assert.Equal(t, protocol.Position{Line: 1, Character: 4}, hover.Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 10}, hover.Range.End)

	hover, err = h.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 1, Character: 17},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, hover, "x is not a builtin")
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := lsp.NewYulHandler()
	ctx := (&recorder{}).context()
	open(t, h, ctx, "function f(a) -> r {\n    r := add(a, 0x1)\n    let s := \"hi\"\n}")

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 11)

	assertToken(t, &decoded[0], 1, 1, 8, "keyword", nil)
	assertToken(t, &decoded[1], 1, 10, 1, "function", []string{"declaration"})
	assertToken(t, &decoded[2], 1, 12, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[3], 1, 18, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[4], 2, 5, 1, "variable", nil)
	assertToken(t, &decoded[5], 2, 10, 3, "function", []string{"defaultLibrary"})
	assertToken(t, &decoded[6], 2, 14, 1, "variable", nil)
	assertToken(t, &decoded[7], 2, 17, 3, "number", nil)
	assertToken(t, &decoded[8], 3, 5, 3, "keyword", nil)
	assertToken(t, &decoded[9], 3, 9, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[10], 3, 14, 4, "string", nil)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
