// File: expression.go
// Description: Expression dispatch: casts, constants, the implicit
//              variable, function calls vs. bare identifiers (resolved
//              with one token of lookahead), and prefix operators of
//              unary, binary, and n-ary arity.
package parser

import (
	"github.com/rubicks/lci/ast"
	lcierrors "github.com/rubicks/lci/errors"
	"github.com/rubicks/lci/token"
)

var binaryOperators = map[token.Kind]ast.OperatorKind{
	token.SUMOF:      ast.OpAdd,
	token.DIFFOF:     ast.OpSub,
	token.PRODUKTOF:  ast.OpMult,
	token.QUOSHUNTOF: ast.OpDiv,
	token.MODOF:      ast.OpMod,
	token.BIGGROF:    ast.OpMax,
	token.SMALLROF:   ast.OpMin,
	token.BOTHOF:     ast.OpAnd,
	token.EITHEROF:   ast.OpOr,
	token.WONOF:      ast.OpXor,
	token.BOTHSAEM:   ast.OpEq,
	token.DIFFRINT:   ast.OpNeq,
}

var naryOperators = map[token.Kind]ast.OperatorKind{
	token.ALLOF:  ast.OpAllOf,
	token.ANYOF:  ast.OpAnyOf,
	token.SMOOSH: ast.OpConcat,
}

func isOperatorLeader(kind token.Kind) bool {
	if kind == token.NOT {
		return true
	}
	if _, ok := binaryOperators[kind]; ok {
		return true
	}
	if _, ok := naryOperators[kind]; ok {
		return true
	}
	return false
}

// parseExpression dispatches on the current token to the matching
// expression production.
func (p *Parser) parseExpression() (ast.Expression, error) {
	if err := p.enterNested(); err != nil {
		return nil, err
	}
	defer p.exitNested()

	tok := p.current()

	switch {
	case tok.Kind == token.MAEK:
		return p.parseCastExpression()
	case isConstantLeader(tok.Kind):
		return p.parseConstant()
	case tok.Kind == token.IT:
		p.cur.advance()
		return &ast.ImplicitVar{Pos: astPos(tok)}, nil
	case tok.Kind == token.NOT:
		return p.parseUnaryOperator()
	case isIdentifierLeader(tok.Kind):
		return p.parseIdentifierOrCall()
	case isOperatorLeader(tok.Kind):
		if op, ok := binaryOperators[tok.Kind]; ok {
			return p.parseBinaryOperator(op)
		}
		op := naryOperators[tok.Kind]
		return p.parseNaryOperator(op)
	default:
		return nil, p.fail(lcierrors.CodeExpect, posOf(tok),
			"expected an expression but got %s", describeToken(tok))
	}
}

// parseCastExpression is "MAEK <expr> A <type>".
func (p *Parser) parseCastExpression() (*ast.CastExpr, error) {
	maek, _ := p.accept(token.MAEK)
	target, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(token.A); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeTag()
	if err != nil {
		return nil, err
	}
	return &ast.CastExpr{Target: target, Type: typ, Pos: astPos(maek)}, nil
}

// parseIdentifierOrCall speculatively parses one identifier then peeks
// for IZ: present means a function call, absent means the identifier is
// the whole expression. No further backtracking is required.
func (p *Parser) parseIdentifierOrCall() (ast.Expression, error) {
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if !p.peek(token.IZ) {
		return id, nil
	}
	return p.parseFunctionCall(id)
}

// parseFunctionCall continues from a scope identifier already parsed:
// "IZ <name> [YR <arg> (AN YR <arg>)*] MKAY".
func (p *Parser) parseFunctionCall(scope *ast.Identifier) (*ast.FuncCallExpr, error) {
	izTok, _ := p.accept(token.IZ)
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	call := &ast.FuncCallExpr{Scope: scope, Name: name, Pos: astPos(izTok)}

	if p.peek(token.YR) {
		p.cur.advance()
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		for p.peek(token.ANYR) {
			p.cur.advance()
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
		}
	}

	if _, err := p.require(token.MKAY); err != nil {
		return nil, err
	}
	return call, nil
}

// parseUnaryOperator parses "NOT <expr>".
func (p *Parser) parseUnaryOperator() (*ast.OperatorExpr, error) {
	tok, _ := p.accept(token.NOT)
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.OperatorExpr{Op: ast.OpNot, Args: []ast.Expression{arg}, Pos: astPos(tok)}, nil
}

// parseBinaryOperator parses "<op> <expr> [AN] <expr>"; AN between
// operands is grammar-permissive and never required.
func (p *Parser) parseBinaryOperator(op ast.OperatorKind) (*ast.OperatorExpr, error) {
	tok := p.cur.advance()
	lhs, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.accept(token.AN)
	rhs, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.OperatorExpr{Op: op, Args: []ast.Expression{lhs, rhs}, Pos: astPos(tok)}, nil
}

// parseNaryOperator parses "<op> <expr> ([AN] <expr>)* MKAY". The
// terminator is mandatory; a missing MKAY is a malformed-construct
// diagnostic.
func (p *Parser) parseNaryOperator(op ast.OperatorKind) (*ast.OperatorExpr, error) {
	tok := p.cur.advance()
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}

	for {
		if p.peek(token.MKAY) {
			p.cur.advance()
			return &ast.OperatorExpr{Op: op, Args: operands, Pos: astPos(tok)}, nil
		}
		p.accept(token.AN)
		if p.peek(token.MKAY) {
			p.cur.advance()
			return &ast.OperatorExpr{Op: op, Args: operands, Pos: astPos(tok)}, nil
		}
		if !p.canStartExpression() {
			cur := p.current()
			return nil, p.fail(lcierrors.CodeNaryUnterminated, posOf(cur),
				"expected %s but got %s", token.MKAY.String(), describeToken(cur))
		}
		if len(operands) >= p.cfg.MaxOperatorArgs {
			cur := p.current()
			return nil, p.fail(lcierrors.CodeNaryTooManyArgs, posOf(cur),
				"%s exceeds the configured maximum of %d operands", op, p.cfg.MaxOperatorArgs)
		}
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
}

// canStartExpression reports whether the current token could begin a
// new expression, used by the n-ary operator loop to distinguish "one
// more operand" from "the terminator is missing".
func (p *Parser) canStartExpression() bool {
	tok := p.current()
	switch {
	case tok.Kind == token.MAEK, tok.Kind == token.IT, tok.Kind == token.NOT:
		return true
	case isConstantLeader(tok.Kind), isIdentifierLeader(tok.Kind), isOperatorLeader(tok.Kind):
		return true
	default:
		return false
	}
}
