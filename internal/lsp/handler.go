package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"yulfmt/internal/dialect"
	"yulfmt/internal/format"
	"yulfmt/internal/version"
)

var log = commonlog.GetLogger("yulfmt.lsp")

// Name is reported to clients in the initialize result.
const Name = "yulfmt"

// document is one open editor buffer together with its last formatting run.
type document struct {
	text    string
	version protocol.Integer
	lines   lineIndex
	result  format.Result
}

// YulHandler implements the LSP server handlers for Yul sources
type YulHandler struct {
	mu      sync.RWMutex
	docs    map[protocol.DocumentUri]*document
	dialect *dialect.Dialect
	opts    format.Options
}

// NewYulHandler creates a handler using the default dialect.
func NewYulHandler() *YulHandler {
	return &YulHandler{
		docs:    make(map[protocol.DocumentUri]*document),
		dialect: dialect.MustResolve(dialect.Default),
		opts:    format.DefaultOptions(),
	}
}

// Dialect returns the dialect documents are checked against.
func (h *YulHandler) Dialect() *dialect.Dialect {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dialect
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *YulHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if name := evmVersionOption(params.InitializationOptions); name != "" {
		d, err := dialect.Resolve(name)
		if err != nil {
			log.Warningf("ignoring evmVersion: %s", err)
		} else {
			h.mu.Lock()
			h.dialect = d
			h.mu.Unlock()
		}
	}
	log.Infof("initialized with dialect %s", h.Dialect().Name())

	serverVersion := version.Version
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			HoverProvider:              true,
			DocumentFormattingProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &serverVersion,
		},
	}, nil
}

// evmVersionOption extracts {"evmVersion": "..."} from the client's initialization options.
func evmVersionOption(opts any) string {
	m, ok := opts.(map[string]any)
	if !ok {
		return ""
	}
	name, _ := m["evmVersion"].(string)
	return name
}

// Initialized is called after the client receives the server's capabilities
func (h *YulHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *YulHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

// SetTrace accepts the client's trace level; nothing is traced.
func (h *YulHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *YulHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)
	doc := h.update(params.TextDocument.URI, params.TextDocument.Text, params.TextDocument.Version)
	publish(ctx, params.TextDocument.URI, doc)
	return nil
}

// TextDocumentDidChange handles change notifications. Only full-document sync is advertised,
// so the last whole-text change wins.
func (h *YulHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	text, ok := "", false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		}
	}
	if !ok {
		return fmt.Errorf("%s: expected a full document change", uri)
	}

	doc := h.update(uri, text, params.TextDocument.Version)
	publish(ctx, uri, doc)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *YulHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("closed %s", uri)

	h.mu.Lock()
	delete(h.docs, uri)
	h.mu.Unlock()

	// Clear whatever the editor still shows for the file.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// TextDocumentFormatting returns a single edit replacing the whole document, or no
// edits when the document has errors or is already canonical.
func (h *YulHandler) TextDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc, err := h.get(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if !doc.result.OK || doc.result.Text == doc.text {
		return nil, nil
	}
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{},
			End:   doc.lines.end(),
		},
		NewText: doc.result.Text,
	}}, nil
}

// TextDocumentCompletion lists the keywords and the builtins of the active dialect.
func (h *YulHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(h.Dialect()),
	}, nil
}

// TextDocumentHover describes the builtin under the cursor.
func (h *YulHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := h.get(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tok, ok := tokenAt(doc.text, doc.lines, params.Position)
	if !ok {
		return nil, nil
	}
	b, ok := h.Dialect().Builtin(tok.Lexeme)
	if !ok {
		return nil, nil
	}

	rng := protocol.Range{
		Start: doc.lines.position(tok.Position.Line, tok.Position.Column),
		End:   doc.lines.position(tok.End.Line, tok.End.Column),
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hoverText(b),
		},
		Range: &rng,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *YulHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.get(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(doc.text, doc.lines, h.Dialect())

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// update reformats text and stores it as the current state of uri.
func (h *YulHandler) update(uri protocol.DocumentUri, text string, v protocol.Integer) *document {
	h.mu.RLock()
	d, opts := h.dialect, h.opts
	h.mu.RUnlock()

	doc := &document{
		text:    text,
		version: v,
		lines:   newLineIndex(text),
		result:  format.Format(text, sourceName(uri), d, opts),
	}

	h.mu.Lock()
	h.docs[uri] = doc
	h.mu.Unlock()
	return doc
}

func (h *YulHandler) get(uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	doc, ok := h.docs[uri]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}
	return doc, nil
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, doc *document) {
	diagnostics := convertDiagnostics(doc.lines, doc.result.Diagnostics)
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	var v *protocol.UInteger
	if n, ok := toUInteger(int(doc.version)); ok {
		v = &n
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     v,
		Diagnostics: diagnostics,
	})
}

// sourceName turns a file URI into a platform path; other URIs are used as they are.
func sourceName(rawURI string) string {
	u, err := url.Parse(rawURI)
	if err != nil || u.Scheme != "file" {
		return rawURI
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path)
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
