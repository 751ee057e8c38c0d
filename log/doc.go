// Package log provides the structured logger used by the parser and the
// CLI: level filtering, pluggable text/JSON formatting, persistent
// fields, and a helper for logging errors.Diagnostic values.
package log
