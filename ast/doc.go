// Package ast defines the LOLCODE abstract syntax tree produced by the
// parser package and walked by a downstream evaluator.
//
// Every non-leaf node owns its children exclusively; the tree has no
// cycles and no shared subtrees. Statement and Expression are closed sets
// of variants, each represented as a distinct Go type implementing the
// corresponding interface — a tagged sum type expressed through Go's
// interface dispatch rather than a manual discriminant-plus-void-pointer
// pair. Exhaustive type switches in evaluator and visitor code stand in
// for the source material's tag-and-cast.
package ast
