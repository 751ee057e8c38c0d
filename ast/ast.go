// File: ast.go
// Description: Base Node contract, source Position, and the two
//              structural containers (Program, Block) shared by every
//              statement and expression variant.
package ast

import (
	"fmt"
	"strings"
)

// Position locates a node in its originating source file.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Node is the base contract every AST node satisfies.
type Node interface {
	// String returns a canonical, re-parseable textual form of the node.
	String() string

	// Accept dispatches to the matching Visitor method.
	Accept(v Visitor) interface{}

	// Position returns the source position of the node's leading token.
	Position() Position

	// Validate reports structural invariants the parser could not enforce
	// purely through its grammar (e.g. declaration initializer exclusivity).
	Validate() error
}

// Expression is the marker interface for every expression variant.
type Expression interface {
	Node
	exprNode()
}

// Statement is the marker interface for every statement variant.
type Statement interface {
	Node
	stmtNode()
}

// Block is an ordered, possibly empty, sequence of statements. It appears
// inside the Program root and inside every statement variant that opens a
// nested body (if/then/else, switch, loop, function definition, alternate
// array definition).
type Block struct {
	Statements []Statement
	Pos        Position
}

func (b *Block) String() string {
	return strings.Join(blockLines(b), "\n")
}

// blockLines flattens a block's statements into source lines, splitting
// any statement whose own String() already spans multiple lines (an
// if/switch/loop/function/bukkit body nested inside this one).
func blockLines(b *Block) []string {
	if b == nil {
		return nil
	}
	var lines []string
	for _, s := range b.Statements {
		lines = append(lines, strings.Split(s.String(), "\n")...)
	}
	return lines
}

func (b *Block) Accept(v Visitor) interface{} { return v.VisitBlock(b) }
func (b *Block) Position() Position            { return b.Pos }

func (b *Block) Validate() error {
	for i, s := range b.Statements {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

// Program is the root of a parsed source file: the banner version string
// recorded from HAI, and the top-level Block running to KTHXBYE or EOF.
type Program struct {
	Version string
	Block   *Block
	Pos     Position
}

func (p *Program) String() string {
	lines := append([]string{"HAI " + p.Version}, blockLines(p.Block)...)
	lines = append(lines, "KTHXBYE")
	return strings.Join(lines, "\n")
}

func (p *Program) Accept(v Visitor) interface{} { return v.VisitProgram(p) }
func (p *Program) Position() Position            { return p.Pos }

func (p *Program) Validate() error {
	if p.Block == nil {
		return fmt.Errorf("program has no block")
	}
	return p.Block.Validate()
}
