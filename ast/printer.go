package ast

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Printer renders a tree to an indented, line-per-node form for
// inspection and test fixtures. It implements every Visitor method itself
// and walks children through its own methods, not through the embedded
// BaseVisitor.
type Printer struct {
	BaseVisitor
	out   io.Writer
	depth int
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print dumps n and its descendants to the Printer's writer.
func (p *Printer) Print(n Node) {
	n.Accept(p)
}

func (p *Printer) line(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s%s\n", strings.Repeat("  ", p.depth), fmt.Sprintf(format, args...))
}

func (p *Printer) child(n Node) {
	if n == nil {
		return
	}
	// Absent optional children (a nil *Identifier or *Block) arrive as
	// typed nil pointers, which the interface nil check above misses.
	if v := reflect.ValueOf(n); v.Kind() == reflect.Ptr && v.IsNil() {
		return
	}
	p.depth++
	n.Accept(p)
	p.depth--
}

func (p *Printer) VisitProgram(prog *Program) interface{} {
	p.line("Program(version=%s)", prog.Version)
	p.child(prog.Block)
	return nil
}

func (p *Printer) VisitBlock(b *Block) interface{} {
	p.line("Block(%d statements)", len(b.Statements))
	for _, s := range b.Statements {
		p.child(s)
	}
	return nil
}

func (p *Printer) VisitIdentifier(i *Identifier) interface{} {
	p.line("Identifier(%s)", i.String())
	return nil
}

func (p *Printer) VisitConstant(c *Constant) interface{} {
	p.line("Constant(%s)", c.String())
	return nil
}

func (p *Printer) VisitCastExpr(c *CastExpr) interface{} {
	p.line("CastExpr(%s)", c.Type.String())
	p.child(c.Target)
	return nil
}

func (p *Printer) VisitFuncCallExpr(f *FuncCallExpr) interface{} {
	p.line("FuncCallExpr")
	p.child(f.Scope)
	p.child(f.Name)
	for _, a := range f.Args {
		p.child(a)
	}
	return nil
}

func (p *Printer) VisitOperatorExpr(o *OperatorExpr) interface{} {
	p.line("OperatorExpr(%s)", o.Op.String())
	for _, a := range o.Args {
		p.child(a)
	}
	return nil
}

func (p *Printer) VisitImplicitVar(i *ImplicitVar) interface{} {
	p.line("ImplicitVar(IT)")
	return nil
}

func (p *Printer) VisitExprStmt(s *ExprStmt) interface{} {
	p.line("ExprStmt")
	p.child(s.Value)
	return nil
}

func (p *Printer) VisitPrintStmt(s *PrintStmt) interface{} {
	p.line("PrintStmt(bang=%t)", s.Bang)
	for _, a := range s.Args {
		p.child(a)
	}
	return nil
}

func (p *Printer) VisitInputStmt(s *InputStmt) interface{} {
	p.line("InputStmt")
	p.child(s.Target)
	return nil
}

func (p *Printer) VisitAssignStmt(s *AssignStmt) interface{} {
	p.line("AssignStmt")
	p.child(s.Target)
	p.child(s.Value)
	return nil
}

func (p *Printer) VisitDeclStmt(s *DeclStmt) interface{} {
	p.line("DeclStmt")
	p.child(s.Scope)
	p.child(s.Target)
	p.child(s.InitExpr)
	p.child(s.Parent)
	return nil
}

func (p *Printer) VisitCastStmt(s *CastStmt) interface{} {
	p.line("CastStmt(%s)", s.Type.String())
	p.child(s.Target)
	return nil
}

func (p *Printer) VisitIfStmt(s *IfStmt) interface{} {
	p.line("IfStmt(%d elifs, else=%t)", len(s.Elifs), s.No != nil)
	p.child(s.Yes)
	for _, e := range s.Elifs {
		p.child(e.Guard)
		p.child(e.Block)
	}
	p.child(s.No)
	return nil
}

func (p *Printer) VisitSwitchStmt(s *SwitchStmt) interface{} {
	p.line("SwitchStmt(%d cases, default=%t)", len(s.Cases), s.Default != nil)
	for _, c := range s.Cases {
		p.child(c.Guard)
		p.child(c.Block)
	}
	p.child(s.Default)
	return nil
}

func (p *Printer) VisitBreakStmt(s *BreakStmt) interface{} {
	p.line("BreakStmt")
	return nil
}

func (p *Printer) VisitReturnStmt(s *ReturnStmt) interface{} {
	p.line("ReturnStmt")
	p.child(s.Value)
	return nil
}

func (p *Printer) VisitLoopStmt(s *LoopStmt) interface{} {
	p.line("LoopStmt(name=%s)", s.Name.String())
	if s.Guard != nil {
		p.child(s.Guard)
	}
	p.child(s.Body)
	return nil
}

func (p *Printer) VisitDeallocStmt(s *DeallocStmt) interface{} {
	p.line("DeallocStmt")
	p.child(s.Target)
	return nil
}

func (p *Printer) VisitFuncDefStmt(s *FuncDefStmt) interface{} {
	p.line("FuncDefStmt(name=%s, %d params)", s.Name.String(), len(s.Params))
	p.child(s.Body)
	return nil
}

func (p *Printer) VisitAltArrayDefStmt(s *AltArrayDefStmt) interface{} {
	p.line("AltArrayDefStmt(name=%s)", s.Name.String())
	p.child(s.Body)
	return nil
}
