// Package lexer implements a reference scanner satisfying token.Supplier,
// turning LOLCODE source text into the token stream the parser consumes.
// It is a companion, not a dependency of the parser: parser.Parser takes
// any token.Supplier, and this package is one implementation among
// possible others (hand-built token slices, for instance, as used
// throughout the parser's own tests).
package lexer
