// File: statement.go
// Description: Statement dispatch over the fourteen variants. Unknown
//              leading tokens fall through to the expression-statement
//              production, per the grammar's "anything else is an
//              expression" rule.
package parser

import (
	"github.com/rubicks/lci/ast"
	lcierrors "github.com/rubicks/lci/errors"
	"github.com/rubicks/lci/token"
)

// parseStatement dispatches on the current token's kind and parses one
// complete statement, including its trailing NEWLINE where the grammar
// requires one.
func (p *Parser) parseStatement() (ast.Statement, error) {
	if err := p.enterNested(); err != nil {
		return nil, err
	}
	defer p.exitNested()

	tok := p.current()

	switch tok.Kind {
	case token.VISIBLE:
		return p.parsePrintStmt()
	case token.GIMMEH:
		return p.parseInputStmt()
	case token.ORLY:
		return p.parseIfStmt()
	case token.WTF:
		return p.parseSwitchStmt()
	case token.GTFO:
		return p.parseBreakStmt()
	case token.FOUNDYR:
		return p.parseReturnStmt()
	case token.IMINYR:
		return p.parseLoopStmt()
	case token.HOWIZ:
		return p.parseFuncDefStmt()
	case token.OHAIIM:
		return p.parseAltArrayDefStmt()
	}

	if isIdentifierLeader(tok.Kind) {
		return p.parseIdentifierLedStatement()
	}

	return p.parseExprStmt()
}

// parseIdentifierLedStatement resolves the statements that all begin
// with an identifier (or SRS <expr>, or scope HAS A): cast, assignment,
// declaration, deallocation, and the generic expression-statement
// fallback (including a bare function call).
func (p *Parser) parseIdentifierLedStatement() (ast.Statement, error) {
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	switch {
	case p.peek(token.ISNOWA):
		return p.parseCastStmtFrom(id)
	case p.peek(token.RNOOB):
		return p.parseDeallocStmtFrom(id)
	case p.peek(token.R):
		return p.parseAssignStmtFrom(id)
	case p.peek(token.HASA):
		return p.parseDeclStmtFrom(id)
	case p.peek(token.IZ):
		call, err := p.parseFunctionCall(id)
		if err != nil {
			return nil, err
		}
		return p.finishExprStmt(call)
	default:
		return p.finishExprStmt(id)
	}
}

func (p *Parser) requireNewline() error {
	_, err := p.require(token.NEWLINE)
	return err
}

// parseExprStmt parses a bare expression followed by NEWLINE.
func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return p.finishExprStmt(expr)
}

func (p *Parser) finishExprStmt(expr ast.Expression) (*ast.ExprStmt, error) {
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Value: expr, Pos: expr.Position()}, nil
}

// parseCastStmtFrom continues from an already-parsed target identifier:
// "IS NOW A <type> NEWLINE".
func (p *Parser) parseCastStmtFrom(target *ast.Identifier) (*ast.CastStmt, error) {
	p.accept(token.ISNOWA)
	typ, err := p.parseTypeTag()
	if err != nil {
		return nil, err
	}
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return &ast.CastStmt{Target: target, Type: typ, Pos: target.Position()}, nil
}

// parseDeallocStmtFrom continues from an already-parsed target
// identifier: "R NOOB NEWLINE".
func (p *Parser) parseDeallocStmtFrom(target *ast.Identifier) (*ast.DeallocStmt, error) {
	p.accept(token.RNOOB)
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return &ast.DeallocStmt{Target: target, Pos: target.Position()}, nil
}

// parseAssignStmtFrom continues from an already-parsed target
// identifier: "R <expr> NEWLINE".
func (p *Parser) parseAssignStmtFrom(target *ast.Identifier) (*ast.AssignStmt, error) {
	p.accept(token.R)
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return &ast.AssignStmt{Target: target, Value: value, Pos: target.Position()}, nil
}

// parseDeclStmtFrom continues from an already-parsed scope identifier:
// "HAS A <target> [ITZ <expr> | ITZ A <type> | ITZ LIEK A <parent>] NEWLINE".
func (p *Parser) parseDeclStmtFrom(scope *ast.Identifier) (*ast.DeclStmt, error) {
	p.accept(token.HASA)
	target, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	decl := &ast.DeclStmt{Scope: scope, Target: target, Pos: scope.Position()}

	switch {
	case p.peek(token.ITZLIEKA):
		p.cur.advance()
		parent, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		decl.Parent = parent
	case p.peek(token.ITZA):
		p.cur.advance()
		typ, err := p.parseTypeTag()
		if err != nil {
			return nil, err
		}
		decl.InitType = &typ
	case p.peek(token.ITZ):
		p.cur.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		decl.InitExpr = expr
	}

	if err := p.requireNewline(); err != nil {
		return nil, err
	}

	if err := decl.Validate(); err != nil {
		declPos := decl.Position()
		return nil, p.fail(lcierrors.CodeConflictingInit, lcierrors.Position{File: declPos.File, Line: declPos.Line, Column: declPos.Column}, err.Error())
	}
	return decl, nil
}

// parsePrintStmt is "VISIBLE <expr> (<expr>)* [!] NEWLINE".
func (p *Parser) parsePrintStmt() (*ast.PrintStmt, error) {
	visible, _ := p.accept(token.VISIBLE)
	stmt := &ast.PrintStmt{Pos: astPos(visible)}

	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt.Args = append(stmt.Args, first)

	for p.canStartExpression() {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Args = append(stmt.Args, arg)
	}

	if _, ok := p.accept(token.BANG); ok {
		stmt.Bang = true
	}

	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseInputStmt is "GIMMEH <ident> NEWLINE".
func (p *Parser) parseInputStmt() (*ast.InputStmt, error) {
	gimmeh, _ := p.accept(token.GIMMEH)
	target, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return &ast.InputStmt{Target: target, Pos: astPos(gimmeh)}, nil
}

// parseIfStmt is:
// "O RLY? NEWLINE YA RLY NEWLINE <block> (MEBBE <expr> NEWLINE <block>)*
//  (NO WAI NEWLINE <block>)? OIC NEWLINE".
func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	orly, _ := p.accept(token.ORLY)
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	if _, err := p.require(token.YARLY); err != nil {
		return nil, err
	}
	if err := p.requireNewline(); err != nil {
		return nil, err
	}

	stops := map[token.Kind]bool{token.MEBBE: true, token.NOWAI: true, token.OIC: true}
	yes, err := p.parseBlock(stops, false)
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Yes: yes, Pos: astPos(orly)}

	for p.peek(token.MEBBE) {
		p.cur.advance()
		guard, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.requireNewline(); err != nil {
			return nil, err
		}
		block, err := p.parseBlock(stops, false)
		if err != nil {
			return nil, err
		}
		stmt.Elifs = append(stmt.Elifs, ast.ElseIfClause{Guard: guard, Block: block})
	}

	if p.peek(token.NOWAI) {
		p.cur.advance()
		if err := p.requireNewline(); err != nil {
			return nil, err
		}
		no, err := p.parseBlock(map[token.Kind]bool{token.OIC: true}, false)
		if err != nil {
			return nil, err
		}
		stmt.No = no
	}

	if _, err := p.require(token.OIC); err != nil {
		return nil, err
	}
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseSwitchStmt is:
// "WTF? NEWLINE (OMG <expr> NEWLINE <block>)+ (OMGWTF NEWLINE <block>)? OIC NEWLINE".
func (p *Parser) parseSwitchStmt() (*ast.SwitchStmt, error) {
	wtf, _ := p.accept(token.WTF)
	if err := p.requireNewline(); err != nil {
		return nil, err
	}

	stmt := &ast.SwitchStmt{Pos: astPos(wtf)}
	stops := map[token.Kind]bool{token.OMG: true, token.OMGWTF: true, token.OIC: true}

	if !p.peek(token.OMG) {
		cur := p.current()
		return nil, p.fail(lcierrors.CodeEmptySwitch, posOf(cur),
			"expected %s but got %s", token.OMG.String(), describeToken(cur))
	}

	for p.peek(token.OMG) {
		p.cur.advance()
		guard, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.requireNewline(); err != nil {
			return nil, err
		}
		block, err := p.parseBlock(stops, false)
		if err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, ast.SwitchCase{Guard: guard, Block: block})
	}

	if p.peek(token.OMGWTF) {
		p.cur.advance()
		if err := p.requireNewline(); err != nil {
			return nil, err
		}
		def, err := p.parseBlock(map[token.Kind]bool{token.OIC: true}, false)
		if err != nil {
			return nil, err
		}
		stmt.Default = def
	}

	if _, err := p.require(token.OIC); err != nil {
		return nil, err
	}
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseBreakStmt is "GTFO NEWLINE".
func (p *Parser) parseBreakStmt() (*ast.BreakStmt, error) {
	gtfo, _ := p.accept(token.GTFO)
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return &ast.BreakStmt{Pos: astPos(gtfo)}, nil
}

// parseReturnStmt is "FOUND YR <expr> NEWLINE".
func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	foundyr, _ := p.accept(token.FOUNDYR)
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value, Pos: astPos(foundyr)}, nil
}

// parseLoopStmt is:
// "IM IN YR <name> [<update-op> YR <var>] [TIL <expr> | WILE <expr>]
//  NEWLINE <block> IM OUTTA YR <name> NEWLINE".
func (p *Parser) parseLoopStmt() (*ast.LoopStmt, error) {
	iminyr, _ := p.accept(token.IMINYR)
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	stmt := &ast.LoopStmt{Name: name, Pos: astPos(iminyr)}

	if update, err := p.parseLoopUpdate(); err != nil {
		return nil, err
	} else if update != nil {
		stmt.Update = update
	}

	switch {
	case p.peek(token.TIL):
		p.cur.advance()
		guard, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.GuardKind = ast.LoopGuardTil
		stmt.Guard = guard
	case p.peek(token.WILE):
		p.cur.advance()
		guard, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.GuardKind = ast.LoopGuardWile
		stmt.Guard = guard
	}

	if err := p.requireNewline(); err != nil {
		return nil, err
	}

	body, err := p.parseBlock(map[token.Kind]bool{token.IMOUTTAYR: true}, false)
	if err != nil {
		return nil, err
	}
	stmt.Body = body

	imouttayr, err := p.require(token.IMOUTTAYR)
	if err != nil {
		return nil, err
	}
	closingName, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	stmt.ClosingName = closingName

	if err := p.requireNewline(); err != nil {
		return nil, err
	}

	if name.String() != closingName.String() {
		return nil, p.fail(lcierrors.CodeLoopNameMismatch, posOf(imouttayr),
			"loop opened as %q closed as %q", name.String(), closingName.String())
	}

	return stmt, nil
}

// parseLoopUpdate parses the optional "<UPPIN|NERFIN|ident> YR <var>"
// prefix of a loop header. Returns a nil update and no error if the
// current token isn't an update-operator leader.
func (p *Parser) parseLoopUpdate() (*ast.LoopUpdate, error) {
	var kind ast.LoopUpdateKind
	var funcName *ast.Identifier

	switch {
	case p.peek(token.UPPIN):
		p.cur.advance()
		kind = ast.LoopUpdateUppin
	case p.peek(token.NERFIN):
		p.cur.advance()
		kind = ast.LoopUpdateNerfin
	case isIdentifierLeader(p.current().Kind) && p.peekAhead(1, token.YR):
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		kind = ast.LoopUpdateUnaryFunc
		funcName = name
	default:
		return nil, nil
	}

	if _, err := p.require(token.YR); err != nil {
		return nil, err
	}
	v, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	return &ast.LoopUpdate{Kind: kind, FuncName: funcName, Var: v}, nil
}

// parseFuncDefStmt is:
// "HOW IZ <scope> <name> [YR <arg> (AN YR <arg>)*] NEWLINE <block>
//  IF U SAY SO NEWLINE".
func (p *Parser) parseFuncDefStmt() (*ast.FuncDefStmt, error) {
	howiz, _ := p.accept(token.HOWIZ)
	scope, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	stmt := &ast.FuncDefStmt{Scope: scope, Name: name, Pos: astPos(howiz)}

	if p.peek(token.YR) {
		p.cur.advance()
		param, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		stmt.Params = append(stmt.Params, param)

		for p.peek(token.ANYR) {
			p.cur.advance()
			param, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			stmt.Params = append(stmt.Params, param)
		}
	}

	if err := p.requireNewline(); err != nil {
		return nil, err
	}

	body, err := p.parseBlock(map[token.Kind]bool{token.IFUSAYSO: true}, false)
	if err != nil {
		return nil, err
	}
	stmt.Body = body

	if _, err := p.require(token.IFUSAYSO); err != nil {
		return nil, err
	}
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseAltArrayDefStmt is:
// "O HAI IM <name> [IM LIEK <parent>] NEWLINE <block> KTHX NEWLINE".
func (p *Parser) parseAltArrayDefStmt() (*ast.AltArrayDefStmt, error) {
	ohaiim, _ := p.accept(token.OHAIIM)
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	stmt := &ast.AltArrayDefStmt{Name: name, Pos: astPos(ohaiim)}

	if p.peek(token.IMLIEK) {
		p.cur.advance()
		parent, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		stmt.Parent = parent
	}

	if err := p.requireNewline(); err != nil {
		return nil, err
	}

	body, err := p.parseBlock(map[token.Kind]bool{token.KTHX: true}, false)
	if err != nil {
		return nil, err
	}
	stmt.Body = body

	if _, err := p.require(token.KTHX); err != nil {
		return nil, err
	}
	if err := p.requireNewline(); err != nil {
		return nil, err
	}
	return stmt, nil
}
