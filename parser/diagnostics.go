// File: diagnostics.go
// Description: DiagnosticSink implementations. StderrSink reproduces the
//              parser's wire-format diagnostic on the standard error
//              stream; CollectingSink accumulates diagnostics in memory
//              for tests and the CLI's check subcommand. Taking a sink as
//              a caller-supplied collaborator, rather than writing to
//              os.Stderr from inside the parser, is what keeps the
//              parser testable without capturing a global stream.
package parser

import (
	"fmt"
	"io"
	"os"

	lcierrors "github.com/rubicks/lci/errors"
)

// StderrSink writes each diagnostic to Writer (os.Stderr by default) in
// the form "<file>:<line>: <message>".
type StderrSink struct {
	Writer io.Writer
}

func (s StderrSink) Report(d *lcierrors.Diagnostic) {
	w := s.Writer
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, d.Error())
}

// CollectingSink accumulates diagnostics instead of printing them,
// preserving report order.
type CollectingSink struct {
	Diagnostics []*lcierrors.Diagnostic
}

func (s *CollectingSink) Report(d *lcierrors.Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// First returns the earliest reported diagnostic, or nil if none were
// reported.
func (s *CollectingSink) First() *lcierrors.Diagnostic {
	if len(s.Diagnostics) == 0 {
		return nil
	}
	return s.Diagnostics[0]
}
