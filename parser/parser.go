// File: parser.go
// Description: Parser drives a recursive-descent parse of a token.Supplier
//              into an *ast.Program. The cursor primitives (peek/accept/
//              require) and the overall New/Parse shape follow this
//              codebase's other hand-written recursive-descent parser;
//              here they operate over LOLCODE's keyword-dispatch grammar
//              instead of that parser's infix-expression grammar.
package parser

import (
	"fmt"

	"github.com/rubicks/lci/ast"
	"github.com/rubicks/lci/config"
	lcierrors "github.com/rubicks/lci/errors"
	lcilog "github.com/rubicks/lci/log"
	"github.com/rubicks/lci/token"
)

// cursor buffers tokens pulled from a token.Supplier one at a time,
// giving the parser bounded lookahead without requiring the supplier
// itself to support unread. It never retreats.
type cursor struct {
	supplier token.Supplier
	buf      []token.Token
}

func newCursor(s token.Supplier) *cursor {
	return &cursor{supplier: s}
}

func (c *cursor) fill(n int) {
	for len(c.buf) <= n {
		c.buf = append(c.buf, c.supplier.NextToken())
	}
}

// at returns the token n positions ahead of the cursor (0 == current).
func (c *cursor) at(n int) token.Token {
	c.fill(n)
	return c.buf[n]
}

// advance consumes and returns the current token.
func (c *cursor) advance() token.Token {
	c.fill(0)
	t := c.buf[0]
	c.buf = c.buf[1:]
	return t
}

// DiagnosticSink receives parser diagnostics instead of the parser
// writing to a stream directly, per the caller-supplied-collaborator
// design this codebase favors for testability.
type DiagnosticSink interface {
	Report(d *lcierrors.Diagnostic)
}

// Options configures a Parser.
type Options struct {
	Logger *lcilog.Logger
	Sink   DiagnosticSink
	Config config.Options
}

// Parser consumes a token.Supplier and produces an *ast.Program. It
// fails fast: the first diagnostic aborts the parse, and Parse returns a
// nil root alongside the error.
type Parser struct {
	cur    *cursor
	file   string
	logger *lcilog.Logger
	sink   DiagnosticSink
	cfg    config.Options
	depth  int
}

// New creates a Parser reading tokens from supplier. A nil Logger, a nil
// Sink, or a zero Config in opts is replaced by a default; file names in
// diagnostics come from the supplier's tokens.
func New(supplier token.Supplier, opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = lcilog.New().WithName("parser")
	}
	sink := opts.Sink
	if sink == nil {
		sink = StderrSink{}
	}
	cfg := opts.Config
	if cfg == (config.Options{}) {
		cfg = config.Default()
	}
	return &Parser{
		cur:    newCursor(supplier),
		logger: logger,
		sink:   sink,
		cfg:    cfg,
	}
}

func (p *Parser) current() token.Token     { return p.cur.at(0) }
func (p *Parser) lookahead(n int) token.Token { return p.cur.at(n) }

// peek reports whether the current token has kind k, without consuming.
func (p *Parser) peek(k token.Kind) bool {
	return p.current().Kind == k
}

// peekAhead reports whether the token n positions ahead has kind k.
func (p *Parser) peekAhead(n int, k token.Kind) bool {
	return p.lookahead(n).Kind == k
}

// accept consumes and returns the current token if it has kind k.
func (p *Parser) accept(k token.Kind) (token.Token, bool) {
	if p.peek(k) {
		return p.cur.advance(), true
	}
	return token.Token{}, false
}

// require consumes the current token if it has kind k, otherwise raises
// an "unexpected token" diagnostic identifying the expected kind, the
// actual token, and its source line.
func (p *Parser) require(k token.Kind) (token.Token, error) {
	if tok, ok := p.accept(k); ok {
		return tok, nil
	}
	got := p.current()
	return token.Token{}, p.fail(lcierrors.CodeExpect, posOf(got),
		"expected %s but got %s", k.String(), describeToken(got))
}

func describeToken(t token.Token) string {
	if t.Kind == token.EOF {
		return "EOF"
	}
	return t.String()
}

func posOf(t token.Token) lcierrors.Position {
	return lcierrors.Position{File: t.File, Line: t.Line, Column: t.Column}
}

// fail builds a Diagnostic, reports it through the sink, logs it, and
// returns it as the error the caller propagates up the call stack. The
// parser does not attempt to recover after this point.
func (p *Parser) fail(code lcierrors.Code, pos lcierrors.Position, format string, args ...interface{}) error {
	d := lcierrors.New(code, pos, format, args...)
	p.sink.Report(d)
	p.logger.LogDiagnostic(d)
	return d
}

// enterNested increments the recursion depth and fails if the configured
// maximum nesting depth is exceeded, guarding against stack exhaustion
// from pathological input.
func (p *Parser) enterNested() error {
	p.depth++
	if p.depth > p.cfg.MaxNestingDepth {
		return p.fail(lcierrors.CodeInternal, posOf(p.current()),
			"maximum nesting depth %d exceeded", p.cfg.MaxNestingDepth)
	}
	return nil
}

func (p *Parser) exitNested() {
	p.depth--
}

// Parse runs the program assembler: HAI <version> NEWLINE, a block, then
// KTHXBYE NEWLINE or EOF.
func (p *Parser) Parse() (*ast.Program, error) {
	hai, err := p.require(token.HAI)
	if err != nil {
		return nil, err
	}

	version, err := p.parseVersion()
	if err != nil {
		return nil, err
	}

	if _, err := p.require(token.NEWLINE); err != nil {
		return nil, err
	}

	block, err := p.parseBlock(map[token.Kind]bool{token.KTHXBYE: true}, true)
	if err != nil {
		return nil, err
	}

	if p.peek(token.KTHXBYE) {
		p.cur.advance()
		// A trailing NEWLINE after KTHXBYE is conventional but not
		// required when EOF follows immediately.
		p.accept(token.NEWLINE)
	}

	return &ast.Program{
		Version: version,
		Block:   block,
		Pos:     ast.Position{File: hai.File, Line: hai.Line, Column: hai.Column},
	}, nil
}

// parseVersion accepts the version token after HAI. Tokens here are a
// FLOAT (the common "1.2" case) or an IDENT/INTEGER/STRING (future-proofing
// against version strings the lexer didn't recognize as numeric); it is
// recorded verbatim and, unless Config.StrictVersion is set, never
// rejected.
func (p *Parser) parseVersion() (string, error) {
	tok := p.current()
	switch tok.Kind {
	case token.FLOAT, token.INTEGER, token.IDENT, token.STRING:
		p.cur.advance()
	default:
		return "", p.fail(lcierrors.CodeExpect, posOf(tok),
			"expected a version token but got %s", describeToken(tok))
	}
	if p.cfg.StrictVersion {
		if !isMajorMinor(tok.Payload) {
			return "", p.fail(lcierrors.CodeExpect, posOf(tok),
				"expected version in major.minor form but got %s", tok.Payload)
		}
	}
	return tok.Payload, nil
}

func isMajorMinor(s string) bool {
	major, minor := 0, 0
	n, err := fmt.Sscanf(s, "%d.%d", &major, &minor)
	return err == nil && n == 2
}

// parseBlock parses statements until the current token's kind is in
// stops, or, if allowEOF is set, until EOF. Blank (bare NEWLINE)
// statement separators are skipped rather than producing empty
// expression-statements.
func (p *Parser) parseBlock(stops map[token.Kind]bool, allowEOF bool) (*ast.Block, error) {
	if err := p.enterNested(); err != nil {
		return nil, err
	}
	defer p.exitNested()

	start := p.current()
	block := &ast.Block{Pos: ast.Position{File: start.File, Line: start.Line, Column: start.Column}}

	for {
		cur := p.current()
		if cur.Kind == token.EOF {
			if allowEOF {
				return block, nil
			}
			return nil, p.fail(lcierrors.CodeUnexpectedEOF, posOf(cur),
				"unexpected end of file inside block")
		}
		if stops[cur.Kind] {
			return block, nil
		}
		if cur.Kind == token.NEWLINE {
			p.cur.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
}
