package codebase

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/sectsv/table"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "sectsv"

type LSPServer struct {
	codebase   *Codebase
	extensions []string
	handler    protocol.Handler
	server     *server.Server
	version    string
}

func NewLSPServer(version string, extensions ...string) *LSPServer {
	ls := &LSPServer{
		version:    version,
		extensions: extensions,
		codebase:   New(".", extensions...),
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	ls.codebase = New(rootDirOf(params), ls.extensions...)
	if err := ls.codebase.ScanAll(); err != nil {
		log.Warningf("scan %s: %s", ls.codebase.RootDir(), err)
	}
	log.Infof("scanned %d documents in %s, %d failed",
		len(ls.codebase.Files()), ls.codebase.RootDir(), len(ls.codebase.Failed()))

	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save:      &protocol.SaveOptions{IncludeText: boolPtr(true)},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo:   &protocol.InitializeResultServerInfo{Name: lsName, Version: &ls.version},
	}, nil
}

// rootDirOf prefers the workspace path over its URI and falls back to the
// working directory.
func rootDirOf(params *protocol.InitializeParams) string {
	if params.RootPath != nil && *params.RootPath != "" {
		return *params.RootPath
	}
	if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			return path
		}
	}
	return "."
}

// shutdown must be answered for clients to exit cleanly.
func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	log.Infof("shutting down with %d open documents", len(ls.codebase.Files()))
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.codebase.RemoveFile(path)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

func (ls *LSPServer) update(ctx *glsp.Context, uri protocol.DocumentUri, content []byte) {
	path, err := uriToPath(uri)
	if err != nil {
		return
	}
	f := ls.codebase.UpdateFile(path, content)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: Diagnostics(f),
	})
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := ls.codebase.GetFile(path)
	if f == nil || f.Document == nil {
		return nil, nil
	}
	return Symbols(f), nil
}

// Diagnostics returns one error diagnostic covering the line of the file's
// structural fault, or an empty list.
func Diagnostics(f *FileInfo) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	perr := f.Fault()
	if perr == nil {
		return diagnostics
	}

	line := protocol.UInteger(perr.Line - 1)
	severity := protocol.DiagnosticSeverityError
	source := lsName
	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: 0},
			End:   protocol.Position{Line: line, Character: protocol.UInteger(lineLength(f.Content, perr.Line))},
		},
		Severity: &severity,
		Source:   &source,
		Message:  perr.Message,
	})
	return diagnostics
}

// Symbols lists the sections of the file, with their columns as children.
func Symbols(f *FileInfo) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol
	for _, s := range f.Document.Sections {
		nameLine := protocol.UInteger(s.Line - 1)
		lastLine := lastLineOf(s)
		nameRange := protocol.Range{
			Start: protocol.Position{Line: nameLine},
			End:   protocol.Position{Line: nameLine, Character: protocol.UInteger(len(s.Name))},
		}

		var children []protocol.DocumentSymbol
		headerLine := nameLine + 1
		offset := 0
		for _, c := range s.Columns {
			r := protocol.Range{
				Start: protocol.Position{Line: headerLine, Character: protocol.UInteger(offset)},
				End:   protocol.Position{Line: headerLine, Character: protocol.UInteger(offset + len(c))},
			}
			children = append(children, protocol.DocumentSymbol{
				Name:           c,
				Kind:           protocol.SymbolKindField,
				Range:          r,
				SelectionRange: r,
			})
			offset += len(c) + 1
		}

		detail := strings.Join(s.Columns, ", ")
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:   s.Name,
			Detail: &detail,
			Kind:   protocol.SymbolKindStruct,
			Range: protocol.Range{
				Start: protocol.Position{Line: nameLine},
				End:   protocol.Position{Line: protocol.UInteger(lastLine - 1), Character: protocol.UInteger(lineLength(f.Content, lastLine))},
			},
			SelectionRange: nameRange,
			Children:       children,
		})
	}
	return symbols
}

func lastLineOf(s *table.Section) int {
	if len(s.Rows) == 0 {
		return s.Line + 1
	}
	return s.Rows[len(s.Rows)-1].Line
}

// lineLength returns the length in bytes of the 1-based line n of content.
func lineLength(content []byte, n int) int {
	for i := 1; i < n; i++ {
		j := bytes.IndexByte(content, '\n')
		if j < 0 {
			return 0
		}
		content = content[j+1:]
	}
	if j := bytes.IndexByte(content, '\n'); j >= 0 {
		return j
	}
	return len(content)
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
