// Package errors provides the structured diagnostic type the parser
// raises instead of a bare error string: a Code, a Severity, a source
// position, and a stable uuid identifying the occurrence for log
// correlation.
package errors
