// File: error.go
// Description: Diagnostic, the structured error type threaded through the
//              parser instead of a bare error string. Adapted from the
//              contextual error type used elsewhere in this codebase, but
//              scoped to what a single-pass, fatal-on-first-error parser
//              needs: a code, a position, a cause, and a stable id for log
//              correlation. Stack trace capture and error-chain pooling are
//              not carried over — a parser diagnostic is raised once, at
//              the point of failure, and never re-wrapped across service
//              boundaries the way a request-handling error is.
package errors

import (
	"fmt"

	"github.com/google/uuid"
)

// Position locates a diagnostic in its originating source file. It
// mirrors token.Token's and ast.Position's fields without importing
// either package, keeping errors a leaf dependency.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Diagnostic is a structured parse error: a stable ID, a classifying
// Code, a Severity, the Position it was raised at, a human-readable
// Message, and an optional wrapped cause.
type Diagnostic struct {
	ID       uuid.UUID
	Code     Code
	Severity Severity
	Pos      Position
	Message  string
	cause    error
}

// New creates a Diagnostic at pos with the given code and formatted
// message.
func New(code Code, pos Position, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		ID:       uuid.New(),
		Code:     code,
		Severity: SeverityFor(code),
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Wrap creates a Diagnostic that carries cause as its underlying error,
// e.g. when a resource limit trips inside a runtime call the parser
// cannot otherwise classify.
func Wrap(cause error, code Code, pos Position, format string, args ...interface{}) *Diagnostic {
	d := New(code, pos, format, args...)
	d.cause = cause
	return d
}

// Error implements the standard error interface, rendering the wire
// format diagnostics are reported in: "<file>:<line>: <message>".
func (d *Diagnostic) Error() string {
	if d.cause != nil {
		return fmt.Sprintf("%s: %s: %s", d.Pos.String(), d.Message, d.cause.Error())
	}
	return fmt.Sprintf("%s: %s", d.Pos.String(), d.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (d *Diagnostic) Unwrap() error { return d.cause }

// HasCode reports whether err is a *Diagnostic carrying code.
func HasCode(err error, code Code) bool {
	d, ok := err.(*Diagnostic)
	return ok && d.Code == code
}

// GetCode returns the code carried by err, or CodeUnknown if err is not a
// *Diagnostic.
func GetCode(err error) Code {
	if d, ok := err.(*Diagnostic); ok {
		return d.Code
	}
	return CodeUnknown
}
