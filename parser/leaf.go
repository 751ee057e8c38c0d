// File: leaf.go
// Description: Leaf-level parsers: constants, type tags, and identifiers
//              (direct or indirect, with recursive slot chains).
package parser

import (
	"strconv"

	"github.com/rubicks/lci/ast"
	lcierrors "github.com/rubicks/lci/errors"
	"github.com/rubicks/lci/token"
)

// parseConstant dispatches on the current literal token kind.
func (p *Parser) parseConstant() (*ast.Constant, error) {
	tok := p.current()
	switch tok.Kind {
	case token.INTEGER:
		p.cur.advance()
		v, err := strconv.ParseInt(tok.Payload, 10, 64)
		if err != nil {
			return nil, p.fail(lcierrors.CodeExpect, posOf(tok),
				"malformed integer literal %q", tok.Payload)
		}
		return &ast.Constant{Kind: ast.ConstInteger, IntVal: v, Pos: astPos(tok)}, nil
	case token.FLOAT:
		p.cur.advance()
		v, err := strconv.ParseFloat(tok.Payload, 32)
		if err != nil {
			return nil, p.fail(lcierrors.CodeExpect, posOf(tok),
				"malformed float literal %q", tok.Payload)
		}
		return &ast.Constant{Kind: ast.ConstFloat, FloatVal: float32(v), Pos: astPos(tok)}, nil
	case token.BOOLEAN:
		p.cur.advance()
		return &ast.Constant{Kind: ast.ConstBoolean, BoolVal: tok.Payload == "WIN", Pos: astPos(tok)}, nil
	case token.STRING:
		p.cur.advance()
		return &ast.Constant{Kind: ast.ConstString, StrVal: tok.Payload, Pos: astPos(tok)}, nil
	case token.NOOB:
		p.cur.advance()
		return &ast.Constant{Kind: ast.ConstNil, Pos: astPos(tok)}, nil
	default:
		return nil, p.fail(lcierrors.CodeExpect, posOf(tok),
			"expected a constant but got %s", describeToken(tok))
	}
}

// isConstantLeader reports whether kind begins a constant expression.
func isConstantLeader(kind token.Kind) bool {
	switch kind {
	case token.INTEGER, token.FLOAT, token.BOOLEAN, token.STRING, token.NOOB:
		return true
	default:
		return false
	}
}

// parseTypeTag accepts exactly one of the five type keywords.
func (p *Parser) parseTypeTag() (ast.TypeTag, error) {
	tok := p.current()
	switch tok.Kind {
	case token.NOOB:
		p.cur.advance()
		return ast.TypeNoob, nil
	case token.TROOF:
		p.cur.advance()
		return ast.TypeTroof, nil
	case token.NUMBR:
		p.cur.advance()
		return ast.TypeNumbr, nil
	case token.NUMBAR:
		p.cur.advance()
		return ast.TypeNumbar, nil
	case token.YARN:
		p.cur.advance()
		return ast.TypeYarn, nil
	default:
		return 0, p.fail(lcierrors.CodeExpect, posOf(tok),
			"expected a type name but got %s", describeToken(tok))
	}
}

// parseIdentifier parses a direct name or an indirect SRS <expr> form,
// then recursively attaches an 'Z-qualified slot chain if present. A bare
// A token (the cast keyword) is taken as the direct name "A".
func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	tok := p.current()

	var id *ast.Identifier
	switch tok.Kind {
	case token.IDENT:
		p.cur.advance()
		id = &ast.Identifier{Kind: ast.IdentDirect, Name: tok.Payload, Pos: astPos(tok)}
	case token.A:
		p.cur.advance()
		id = &ast.Identifier{Kind: ast.IdentDirect, Name: token.A.String(), Pos: astPos(tok)}
	case token.SRS:
		p.cur.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		id = &ast.Identifier{Kind: ast.IdentIndirect, Expr: expr, Pos: astPos(tok)}
	default:
		return nil, p.fail(lcierrors.CodeExpect, posOf(tok),
			"expected an identifier but got %s", describeToken(tok))
	}

	if p.peek(token.APOSTROPHEZ) {
		p.cur.advance()
		slot, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		id.Slot = slot
	}

	return id, nil
}

func isIdentifierLeader(kind token.Kind) bool {
	return kind == token.IDENT || kind == token.A || kind == token.SRS
}

func astPos(t token.Token) ast.Position {
	return ast.Position{File: t.File, Line: t.Line, Column: t.Column}
}
