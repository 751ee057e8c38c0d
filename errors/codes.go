// File: codes.go
// Description: Structured error codes the parser attaches to diagnostics,
//              grouped by the phase of parsing that raised them.
package errors

// Code classifies a diagnostic for downstream tooling (exit codes, log
// filtering, documentation lookups).
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	// Cursor-level expectation failures: the token under the cursor did not
	// match what the grammar required at that position.
	CodeExpect Code = "parse.expect"

	// Grammar-specific structural violations.
	CodeLoopNameMismatch    Code = "parse.loop.name_mismatch"
	CodeNaryUnterminated    Code = "parse.nary.unterminated"
	CodeConflictingInit     Code = "parse.decl.conflicting_init"
	CodeEmptySwitch         Code = "parse.switch.empty"
	CodeUnexpectedEOF       Code = "parse.unexpected_eof"

	// Configured-limit violations: the input is well-formed but exceeds a
	// tunable bound from config.Options.
	CodeNaryTooManyArgs Code = "parse.nary.too_many_args"
	CodeInputTooLarge   Code = "parse.input.too_large"

	// Resource and internal failures, never produced by malformed source.
	CodeInternalOOM Code = "parse.internal.oom"
	CodeInternal    Code = "parse.internal"
)

// String returns the dotted code string.
func (c Code) String() string { return string(c) }

// Severity classifies how serious a diagnostic is.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	default:
		return "error"
	}
}

// SeverityFor returns the default severity for a code. Every parse error is
// currently fatal: the parser stops at the first diagnostic, per its
// fail-fast contract, but SeverityFor still distinguishes resource
// exhaustion (fatal regardless of recovery policy) from ordinary grammar
// violations for callers with their own recovery logic.
func SeverityFor(c Code) Severity {
	switch c {
	case CodeInternalOOM, CodeInternal, CodeInputTooLarge:
		return SeverityFatal
	default:
		return SeverityError
	}
}
