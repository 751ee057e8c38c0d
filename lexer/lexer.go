// File: lexer.go
// Description: A hand-written scanner that turns LOLCODE source text into
//              the token stream parser.Parser consumes, implementing
//              token.Supplier. Grounded in the keyword table derived from
//              the language's own header and, structurally, in this
//              codebase's other hand-rolled scanner: word-at-a-time
//              advancement with explicit line/column bookkeeping rather
//              than a generated DFA.
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	lcierrors "github.com/rubicks/lci/errors"
	"github.com/rubicks/lci/token"
)

// maxKeywordWords is the longest keyword phrase in words ("IF U SAY SO").
const maxKeywordWords = 4

// keywordPhrases maps a space-joined, uppercase keyword phrase to its
// Kind, built once from token.Keywords.
var keywordPhrases = buildKeywordPhrases()

func buildKeywordPhrases() map[string]token.Kind {
	m := make(map[string]token.Kind, len(token.Keywords))
	for _, kw := range token.Keywords {
		m[kw.Phrase] = kw.Kind
	}
	return m
}

// Lexer scans a single LOLCODE source file into tokens on demand.
type Lexer struct {
	file   string
	src    []rune
	pos    int
	line   int
	column int
	done   bool
}

// New creates a Lexer over src, attributing diagnostics to file.
func New(file, src string) *Lexer {
	return &Lexer{
		file:   file,
		src:    []rune(src),
		line:   1,
		column: 1,
	}
}

// NewWithLimit creates a Lexer like New, but first rejects src if its
// byte length exceeds maxBytes. A maxBytes of zero or less disables the
// check. Callers reading a source file under a configured size bound
// use this instead of New.
func NewWithLimit(file, src string, maxBytes int) (*Lexer, error) {
	if maxBytes > 0 && len(src) > maxBytes {
		return nil, lcierrors.New(lcierrors.CodeInputTooLarge, lcierrors.Position{File: file},
			"input size %d bytes exceeds configured maximum %d bytes", len(src), maxBytes)
	}
	return New(file, src), nil
}

func (l *Lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *Lexer) advanceRune() (rune, bool) {
	r, ok := l.peekRune()
	if !ok {
		return 0, false
	}
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r, true
}

// NextToken returns the next token, or an unbounded run of EOF tokens
// once the source is exhausted.
func (l *Lexer) NextToken() token.Token {
	if l.done {
		return token.Token{Kind: token.EOF, File: l.file, Line: l.line, Column: l.column}
	}

	for {
		r, ok := l.peekRune()
		if !ok {
			l.done = true
			return token.Token{Kind: token.EOF, File: l.file, Line: l.line, Column: l.column}
		}

		switch {
		case r == '\n':
			line, col := l.line, l.column
			l.advanceRune()
			return token.Token{Kind: token.NEWLINE, File: l.file, Line: line, Column: col}
		case r == ' ' || r == '\t' || r == '\r':
			l.advanceRune()
			continue
		case l.startsWith("BTW"):
			l.skipLineComment()
			continue
		case l.startsWith("OBTW"):
			l.skipBlockComment()
			continue
		case r == '"':
			return l.scanString()
		case r == '!':
			line, col := l.line, l.column
			l.advanceRune()
			return token.Token{Kind: token.BANG, Payload: "!", File: l.file, Line: line, Column: col}
		default:
			return l.scanWordRun()
		}
	}
}

// startsWith reports whether the unconsumed input begins with word,
// bounded so "BTWISTED" doesn't falsely match "BTW".
func (l *Lexer) startsWith(word string) bool {
	runes := []rune(word)
	if l.pos+len(runes) > len(l.src) {
		return false
	}
	for i, r := range runes {
		if l.src[l.pos+i] != r {
			return false
		}
	}
	end := l.pos + len(runes)
	if end < len(l.src) && isWordRune(l.src[end]) {
		return false
	}
	return true
}

func (l *Lexer) skipLineComment() {
	for {
		r, ok := l.peekRune()
		if !ok || r == '\n' {
			return
		}
		l.advanceRune()
	}
}

func (l *Lexer) skipBlockComment() {
	for {
		if l.startsWith("TLDR") {
			for range []rune("TLDR") {
				l.advanceRune()
			}
			return
		}
		if _, ok := l.advanceRune(); !ok {
			return
		}
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// word is one maximal run of non-space characters, with its starting
// position, used both as a literal candidate and as one slot of a
// multi-word keyword phrase.
type word struct {
	text   string
	line   int
	column int
	endPos int
}

// peekWordAt returns the word starting at position from, without consuming
// it, or ok=false if from is at or past EOF or a newline.
func (l *Lexer) peekWordAt(from int) (word, bool) {
	pos := from
	if pos >= len(l.src) || l.src[pos] == '\n' {
		return word{}, false
	}
	line, column := l.lineColAt(pos)
	start := pos
	for pos < len(l.src) && l.src[pos] != ' ' && l.src[pos] != '\t' && l.src[pos] != '\n' && l.src[pos] != '\r' {
		pos++
	}
	return word{text: string(l.src[start:pos]), line: line, column: column, endPos: pos}, true
}

// lineColAt recomputes line/column for an absolute position by scanning
// from the lexer's current position, which is always <= pos during a
// single NextToken call.
func (l *Lexer) lineColAt(pos int) (int, int) {
	line, col := l.line, l.column
	for i := l.pos; i < pos; i++ {
		if l.src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// skipSpacesFrom returns the position of the next non-space, non-tab
// character at or after from, stopping at a newline or EOF.
func (l *Lexer) skipSpacesFrom(from int) int {
	pos := from
	for pos < len(l.src) && (l.src[pos] == ' ' || l.src[pos] == '\t' || l.src[pos] == '\r') {
		pos++
	}
	return pos
}

// scanWordRun gathers up to maxKeywordWords consecutive whitespace-
// separated words starting at the cursor and greedily matches the
// longest prefix against the keyword table; a miss falls back to
// treating the first word alone as a literal or identifier.
func (l *Lexer) scanWordRun() token.Token {
	startLine, startCol := l.line, l.column
	words := make([]word, 0, maxKeywordWords)
	pos := l.pos
	for len(words) < maxKeywordWords {
		w, ok := l.peekWordAt(pos)
		if !ok {
			break
		}
		words = append(words, w)
		pos = l.skipSpacesFrom(w.endPos)
	}
	if len(words) == 0 {
		// Single stray character (e.g. an unrecognized symbol).
		r, _ := l.advanceRune()
		return token.Token{Kind: token.ILLEGAL, Payload: string(r), File: l.file, Line: startLine, Column: startCol}
	}

	for n := len(words); n >= 1; n-- {
		phrase := joinWords(words[:n])
		if kind, ok := keywordPhrases[phrase]; ok {
			l.consumeThrough(words[n-1].endPos)
			return token.Token{Kind: kind, Payload: phrase, File: l.file, Line: startLine, Column: startCol}
		}
	}

	l.consumeThrough(words[0].endPos)
	return l.classifyWord(words[0].text, startLine, startCol)
}

func joinWords(ws []word) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = w.text
	}
	return strings.Join(parts, " ")
}

// consumeThrough advances the cursor's rune position (and line/column
// bookkeeping) up to target, an absolute index into l.src.
func (l *Lexer) consumeThrough(target int) {
	for l.pos < target {
		l.advanceRune()
	}
}

func (l *Lexer) classifyWord(text string, line, col int) token.Token {
	switch text {
	case "WIN", "FAIL":
		return token.Token{Kind: token.BOOLEAN, Payload: text, File: l.file, Line: line, Column: col}
	}
	if isIntegerLiteral(text) {
		return token.Token{Kind: token.INTEGER, Payload: text, File: l.file, Line: line, Column: col}
	}
	if isFloatLiteral(text) {
		return token.Token{Kind: token.FLOAT, Payload: text, File: l.file, Line: line, Column: col}
	}
	if isIdentifier(text) {
		return token.Token{Kind: token.IDENT, Payload: text, File: l.file, Line: line, Column: col}
	}
	return token.Token{Kind: token.ILLEGAL, Payload: text, File: l.file, Line: line, Column: col}
}

func isIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isFloatLiteral(s string) bool {
	_, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return false
	}
	return strings.Contains(s, ".")
}

func isIdentifier(s string) bool {
	r := []rune(s)
	if len(r) == 0 || !unicode.IsLetter(r[0]) {
		return false
	}
	for _, c := range r[1:] {
		if !isWordRune(c) {
			return false
		}
	}
	return true
}

// scanString consumes a quoted YARN literal starting at the current `"`,
// processing the language's backslash-free colon escapes: :) newline,
// :> tab, :o bell, :" literal quote, :: literal colon.
func (l *Lexer) scanString() token.Token {
	startLine, startCol := l.line, l.column
	l.advanceRune() // opening quote

	var b strings.Builder
	for {
		r, ok := l.advanceRune()
		if !ok || r == '\n' {
			// Unterminated string: return what we have as a best-effort
			// literal; the parser's NEWLINE/EOF expectations will surface
			// the real diagnostic downstream.
			return token.Token{Kind: token.STRING, Payload: b.String(), File: l.file, Line: startLine, Column: startCol}
		}
		if r == '"' {
			return token.Token{Kind: token.STRING, Payload: b.String(), File: l.file, Line: startLine, Column: startCol}
		}
		if r == ':' {
			esc, ok := l.peekRune()
			if ok {
				switch esc {
				case ')':
					l.advanceRune()
					b.WriteRune('\n')
					continue
				case '>':
					l.advanceRune()
					b.WriteRune('\t')
					continue
				case 'o':
					l.advanceRune()
					b.WriteRune('\a')
					continue
				case '"':
					l.advanceRune()
					b.WriteRune('"')
					continue
				case ':':
					l.advanceRune()
					b.WriteRune(':')
					continue
				}
			}
		}
		b.WriteRune(r)
	}
}
