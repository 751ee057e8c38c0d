package parser

import (
	"strings"
	"testing"

	"github.com/rubicks/lci/ast"
	"github.com/rubicks/lci/config"
	lcierrors "github.com/rubicks/lci/errors"
	"github.com/rubicks/lci/lexer"
)

func parse(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	l := lexer.New("test.lol", src)
	sink := &CollectingSink{}
	p := New(l, Options{Sink: sink})
	prog, err := p.Parse()
	if err != nil && sink.First() == nil {
		t.Fatalf("parse failed with no diagnostic reported: %v", err)
	}
	return prog, err
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parse(t, src)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return prog
}

func TestParser_MinimalProgram(t *testing.T) {
	prog := mustParse(t, "HAI 1.2\nKTHXBYE\n")
	if prog.Version != "1.2" {
		t.Errorf("version = %q, want 1.2", prog.Version)
	}
	if len(prog.Block.Statements) != 0 {
		t.Errorf("got %d statements, want 0", len(prog.Block.Statements))
	}
}

func TestParser_PrintWithBang(t *testing.T) {
	prog := mustParse(t, "HAI 1.2\nVISIBLE \"hi\"!\nKTHXBYE\n")
	if len(prog.Block.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Block.Statements))
	}
	print, ok := prog.Block.Statements[0].(*ast.PrintStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ast.PrintStmt", prog.Block.Statements[0])
	}
	if !print.Bang {
		t.Error("Bang = false, want true")
	}
	if len(print.Args) != 1 {
		t.Fatalf("got %d args, want 1", len(print.Args))
	}
	str, ok := print.Args[0].(*ast.Constant)
	if !ok || str.Kind != ast.ConstString || str.StrVal != "hi" {
		t.Errorf("arg = %#v, want string constant %q", print.Args[0], "hi")
	}
}

func TestParser_DeclarationWithExpressionInit(t *testing.T) {
	prog := mustParse(t, "HAI 1.2\nI HAS A VAR ITZ 42\nKTHXBYE\n")
	if len(prog.Block.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Block.Statements))
	}
	decl, ok := prog.Block.Statements[0].(*ast.DeclStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ast.DeclStmt", prog.Block.Statements[0])
	}
	if decl.Scope.String() != "I" || decl.Target.String() != "VAR" {
		t.Errorf("scope/target = %s/%s, want I/VAR", decl.Scope, decl.Target)
	}
	init, ok := decl.InitExpr.(*ast.Constant)
	if !ok || init.Kind != ast.ConstInteger || init.IntVal != 42 {
		t.Errorf("init-expr = %#v, want integer constant 42", decl.InitExpr)
	}
	if decl.InitType != nil || decl.Parent != nil {
		t.Error("declaration has more than one initializer populated")
	}
}

func TestParser_IfThenElseWithElseif(t *testing.T) {
	src := strings.Join([]string{
		"HAI 1.2",
		"BOTH SAEM X AN 1",
		"O RLY?",
		"YA RLY",
		`VISIBLE "a"`,
		"MEBBE BOTH SAEM X AN 2",
		`VISIBLE "b"`,
		"NO WAI",
		`VISIBLE "c"`,
		"OIC",
		"KTHXBYE",
		"",
	}, "\n")
	prog := mustParse(t, src)
	if len(prog.Block.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Block.Statements))
	}
	if _, ok := prog.Block.Statements[0].(*ast.ExprStmt); !ok {
		t.Errorf("statement 0 is %T, want *ast.ExprStmt", prog.Block.Statements[0])
	}
	ifs, ok := prog.Block.Statements[1].(*ast.IfStmt)
	if !ok {
		t.Fatalf("statement 1 is %T, want *ast.IfStmt", prog.Block.Statements[1])
	}
	if len(ifs.Yes.Statements) != 1 {
		t.Errorf("YA RLY block has %d statements, want 1", len(ifs.Yes.Statements))
	}
	if len(ifs.Elifs) != 1 {
		t.Fatalf("got %d elseif clauses, want 1", len(ifs.Elifs))
	}
	if len(ifs.Elifs[0].Block.Statements) != 1 {
		t.Errorf("elseif block has %d statements, want 1", len(ifs.Elifs[0].Block.Statements))
	}
	if ifs.No == nil || len(ifs.No.Statements) != 1 {
		t.Errorf("NO WAI block missing or wrong length: %#v", ifs.No)
	}
}

func TestParser_LoopNameMismatch(t *testing.T) {
	src := "HAI 1.2\nIM IN YR A UPPIN YR I TIL BOTH SAEM I AN 10\nVISIBLE I\nIM OUTTA YR B\nKTHXBYE\n"
	_, err := parse(t, src)
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}
	if !lcierrors.HasCode(err, lcierrors.CodeLoopNameMismatch) {
		t.Errorf("got code %s, want %s", lcierrors.GetCode(err), lcierrors.CodeLoopNameMismatch)
	}
}

func TestParser_NaryOperatorWithoutTerminator(t *testing.T) {
	src := "HAI 1.2\nVISIBLE ALL OF WIN AN WIN\nKTHXBYE\n"
	_, err := parse(t, src)
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}
	if !lcierrors.HasCode(err, lcierrors.CodeNaryUnterminated) {
		t.Errorf("got code %s, want %s", lcierrors.GetCode(err), lcierrors.CodeNaryUnterminated)
	}
}

func TestParser_NaryOperatorArgCap(t *testing.T) {
	cfg := config.Default()
	cfg.MaxOperatorArgs = 2
	src := "HAI 1.2\nVISIBLE ALL OF WIN AN WIN AN WIN MKAY\nKTHXBYE\n"
	l := lexer.New("test.lol", src)
	sink := &CollectingSink{}
	p := New(l, Options{Config: cfg, Sink: sink})
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected a parse error for exceeding the configured operand cap")
	}
	if !lcierrors.HasCode(err, lcierrors.CodeNaryTooManyArgs) {
		t.Errorf("got code %s, want %s", lcierrors.GetCode(err), lcierrors.CodeNaryTooManyArgs)
	}
}

func TestParser_Determinism(t *testing.T) {
	src := "HAI 1.2\nI HAS A X ITZ 1\nVISIBLE X\nKTHXBYE\n"
	a := mustParse(t, src)
	b := mustParse(t, src)
	if a.String() != b.String() {
		t.Errorf("parsing the same source twice produced different trees:\n%s\nvs\n%s", a.String(), b.String())
	}
}

func TestParser_StructuralRoundTrip(t *testing.T) {
	srcs := []string{
		"HAI 1.2\nKTHXBYE\n",
		"HAI 1.2\nVISIBLE \"hi\"!\nKTHXBYE\n",
		"HAI 1.2\nI HAS A X ITZ 42\nKTHXBYE\n",
		strings.Join([]string{
			"HAI 1.2",
			"O RLY?",
			"YA RLY",
			`VISIBLE "a"`,
			"MEBBE BOTH SAEM X AN 2",
			`VISIBLE "b"`,
			"NO WAI",
			`VISIBLE "c"`,
			"OIC",
			"KTHXBYE",
			"",
		}, "\n"),
		strings.Join([]string{
			"HAI 1.2",
			"IM IN YR LOOP UPPIN YR I TIL BOTH SAEM I AN 10",
			"VISIBLE I",
			"IM OUTTA YR LOOP",
			"KTHXBYE",
			"",
		}, "\n"),
		strings.Join([]string{
			"HAI 1.2",
			`VISIBLE "she said :"hi:" and went:)home"`,
			"KTHXBYE",
			"",
		}, "\n"),
	}
	for _, src := range srcs {
		prog := mustParse(t, src)
		serialized := prog.String()
		reparsed := mustParse(t, serialized)
		if got := reparsed.String(); got != serialized {
			t.Errorf("round trip mismatch for %q:\nfirst:  %s\nsecond: %s", src, serialized, got)
		}
	}
}

func TestParser_DeclarationExclusivity(t *testing.T) {
	prog := mustParse(t, "HAI 1.2\nI HAS A X ITZ A NUMBR\nKTHXBYE\n")
	decl := prog.Block.Statements[0].(*ast.DeclStmt)
	if decl.InitType == nil || *decl.InitType != ast.TypeNumbr {
		t.Fatalf("init-type = %#v, want NUMBR", decl.InitType)
	}
	if decl.InitExpr != nil || decl.Parent != nil {
		t.Error("declaration has more than one initializer populated")
	}
}

func TestParser_SwitchListParallelism(t *testing.T) {
	src := strings.Join([]string{
		"HAI 1.2",
		"WTF?",
		"OMG 1",
		`VISIBLE "one"`,
		"OMG 2",
		`VISIBLE "two"`,
		"OMGWTF",
		`VISIBLE "other"`,
		"OIC",
		"KTHXBYE",
		"",
	}, "\n")
	prog := mustParse(t, src)
	sw := prog.Block.Statements[0].(*ast.SwitchStmt)
	if len(sw.Cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(sw.Cases))
	}
	for i, c := range sw.Cases {
		if c.Guard == nil || c.Block == nil {
			t.Errorf("case %d has a nil guard or block", i)
		}
	}
	if sw.Default == nil {
		t.Error("expected an OMGWTF default block")
	}
}

func TestParser_SwitchExpressionGuard(t *testing.T) {
	src := strings.Join([]string{
		"HAI 1.2",
		"I HAS A X ITZ 2",
		"WTF?",
		"OMG SUM OF 1 AN 1",
		`VISIBLE "two"`,
		"OMG X",
		`VISIBLE "x"`,
		"OIC",
		"KTHXBYE",
		"",
	}, "\n")
	prog := mustParse(t, src)
	sw := prog.Block.Statements[1].(*ast.SwitchStmt)
	if len(sw.Cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(sw.Cases))
	}
	if _, ok := sw.Cases[0].Guard.(*ast.OperatorExpr); !ok {
		t.Errorf("case 0 guard is %T, want *ast.OperatorExpr", sw.Cases[0].Guard)
	}
	if _, ok := sw.Cases[1].Guard.(*ast.Identifier); !ok {
		t.Errorf("case 1 guard is %T, want *ast.Identifier", sw.Cases[1].Guard)
	}
}

func TestParser_EmptySwitchRejected(t *testing.T) {
	src := "HAI 1.2\nWTF?\nOIC\nKTHXBYE\n"
	_, err := parse(t, src)
	if err == nil {
		t.Fatal("expected a parse error for a switch with no cases")
	}
	if !lcierrors.HasCode(err, lcierrors.CodeEmptySwitch) {
		t.Errorf("got code %s, want %s", lcierrors.GetCode(err), lcierrors.CodeEmptySwitch)
	}
}

func TestParser_FunctionDefinitionAndCall(t *testing.T) {
	src := strings.Join([]string{
		"HAI 1.2",
		"HOW IZ I ADD YR A AN YR B",
		"FOUND YR SUM OF A AN B",
		"IF U SAY SO",
		"I HAS A RESULT ITZ I IZ ADD YR 1 AN YR 2 MKAY",
		"KTHXBYE",
		"",
	}, "\n")
	prog := mustParse(t, src)
	if len(prog.Block.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Block.Statements))
	}
	def, ok := prog.Block.Statements[0].(*ast.FuncDefStmt)
	if !ok {
		t.Fatalf("statement 0 is %T, want *ast.FuncDefStmt", prog.Block.Statements[0])
	}
	if len(def.Params) != 2 {
		t.Errorf("got %d params, want 2", len(def.Params))
	}
	decl := prog.Block.Statements[1].(*ast.DeclStmt)
	call, ok := decl.InitExpr.(*ast.FuncCallExpr)
	if !ok {
		t.Fatalf("init-expr is %T, want *ast.FuncCallExpr", decl.InitExpr)
	}
	if len(call.Args) != 2 {
		t.Errorf("got %d call args, want 2", len(call.Args))
	}
}

func TestParser_LoopWithUppinAndTil(t *testing.T) {
	src := strings.Join([]string{
		"HAI 1.2",
		"IM IN YR LOOP UPPIN YR I TIL BOTH SAEM I AN 10",
		"VISIBLE I",
		"IM OUTTA YR LOOP",
		"KTHXBYE",
		"",
	}, "\n")
	prog := mustParse(t, src)
	loop := prog.Block.Statements[0].(*ast.LoopStmt)
	if loop.Update == nil || loop.Update.Kind != ast.LoopUpdateUppin {
		t.Fatalf("update = %#v, want Uppin", loop.Update)
	}
	if loop.GuardKind != ast.LoopGuardTil {
		t.Errorf("guard kind = %v, want Til", loop.GuardKind)
	}
	if len(loop.Body.Statements) != 1 {
		t.Errorf("got %d body statements, want 1", len(loop.Body.Statements))
	}
}

func TestParser_BukkitDefinition(t *testing.T) {
	src := strings.Join([]string{
		"HAI 1.2",
		"O HAI IM ANIMAL",
		"I HAS A SOUND ITZ \"generic noise\"",
		"KTHX",
		"KTHXBYE",
		"",
	}, "\n")
	prog := mustParse(t, src)
	bukkit := prog.Block.Statements[0].(*ast.AltArrayDefStmt)
	if bukkit.Name.String() != "ANIMAL" {
		t.Errorf("name = %s, want ANIMAL", bukkit.Name)
	}
	if len(bukkit.Body.Statements) != 1 {
		t.Errorf("got %d body statements, want 1", len(bukkit.Body.Statements))
	}
}

func TestParser_LineFidelity(t *testing.T) {
	src := "HAI 1.2\nI HAS A X ITZ 1\nKTHXBYE\n"
	prog := mustParse(t, src)
	decl := prog.Block.Statements[0].(*ast.DeclStmt)
	if decl.Position().Line != 2 {
		t.Errorf("declaration line = %d, want 2", decl.Position().Line)
	}
}

func TestParser_UnclosedBlockAtEOF(t *testing.T) {
	src := "HAI 1.2\nO RLY?\nYA RLY\nVISIBLE \"a\"\n"
	_, err := parse(t, src)
	if err == nil {
		t.Fatal("expected a parse error for a block never closed with OIC")
	}
	if !lcierrors.HasCode(err, lcierrors.CodeUnexpectedEOF) {
		t.Errorf("got code %s, want %s", lcierrors.GetCode(err), lcierrors.CodeUnexpectedEOF)
	}
}
