// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"yulfmt/internal/lsp"
)

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	verbosity := flag.Int("verbosity", 1, "log verbosity (0 quiet, 2 debug)")
	logFile := flag.String("log", "", "write logs to this file instead of stderr")
	flag.Parse()

	var logPath *string
	if *logFile != "" {
		logPath = logFile
	}
	commonlog.Configure(*verbosity, logPath)
	log := commonlog.GetLogger("yulfmt.lsp")

	yulHandler := lsp.NewYulHandler()

	handler = protocol.Handler{
		Initialize:                     yulHandler.Initialize,
		Initialized:                    yulHandler.Initialized,
		Shutdown:                       yulHandler.Shutdown,
		SetTrace:                       yulHandler.SetTrace,
		TextDocumentDidOpen:            yulHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           yulHandler.TextDocumentDidClose,
		TextDocumentDidChange:          yulHandler.TextDocumentDidChange,
		TextDocumentCompletion:         yulHandler.TextDocumentCompletion,
		TextDocumentHover:              yulHandler.TextDocumentHover,
		TextDocumentFormatting:         yulHandler.TextDocumentFormatting,
		TextDocumentSemanticTokensFull: yulHandler.TextDocumentSemanticTokensFull,
	}

	// stdio is reserved for the protocol, so nothing else may print to stdout.
	s := server.NewServer(&handler, lsp.Name, false)

	log.Info("starting yulfmt language server")
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
