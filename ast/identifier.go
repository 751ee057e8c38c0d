// File: identifier.go
// Description: Identifier (direct and indirect forms, with slot chains),
//              the closed TypeTag set, and Constant leaf values.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// IdentifierKind distinguishes a plain name token from an SRS-indirected
// expression that yields a name at runtime.
type IdentifierKind int

const (
	IdentDirect IdentifierKind = iota
	IdentIndirect
)

func (k IdentifierKind) String() string {
	if k == IdentIndirect {
		return "indirect"
	}
	return "direct"
}

// Identifier is either a direct name token or an indirect SRS <expr> form,
// optionally followed by an 'Z-qualified slot chain. A slot chain is a
// singly linked, owned, finite sequence — never a cycle.
type Identifier struct {
	Kind IdentifierKind
	Name string     // populated when Kind == IdentDirect
	Expr Expression // populated when Kind == IdentIndirect
	Slot *Identifier
	Pos  Position
}

func (i *Identifier) String() string {
	var base string
	switch i.Kind {
	case IdentIndirect:
		base = "SRS " + i.Expr.String()
	default:
		base = i.Name
	}
	if i.Slot != nil {
		return base + "'Z " + i.Slot.String()
	}
	return base
}

func (i *Identifier) Accept(v Visitor) interface{} { return v.VisitIdentifier(i) }
func (i *Identifier) Position() Position            { return i.Pos }

func (i *Identifier) Validate() error {
	switch i.Kind {
	case IdentDirect:
		if i.Name == "" {
			return fmt.Errorf("direct identifier has no name")
		}
	case IdentIndirect:
		if i.Expr == nil {
			return fmt.Errorf("indirect identifier has no expression")
		}
		if err := i.Expr.Validate(); err != nil {
			return fmt.Errorf("indirect identifier: %w", err)
		}
	}
	if i.Slot != nil {
		return i.Slot.Validate()
	}
	return nil
}

func (i *Identifier) exprNode() {}

// TypeTag is the closed set of LOLCODE type names.
type TypeTag int

const (
	TypeNoob TypeTag = iota
	TypeTroof
	TypeNumbr
	TypeNumbar
	TypeYarn
)

func (t TypeTag) String() string {
	switch t {
	case TypeNoob:
		return "NOOB"
	case TypeTroof:
		return "TROOF"
	case TypeNumbr:
		return "NUMBR"
	case TypeNumbar:
		return "NUMBAR"
	case TypeYarn:
		return "YARN"
	default:
		return "UNKNOWN"
	}
}

// ConstantKind is the closed set of constant value kinds.
type ConstantKind int

const (
	ConstInteger ConstantKind = iota
	ConstFloat
	ConstBoolean
	ConstString
	ConstNil
	ConstArray
)

// Constant is a leaf expression carrying a literal value. Exactly one of
// IntVal/FloatVal/BoolVal/StrVal is meaningful, selected by Kind; ConstNil
// and ConstArray carry no scalar payload.
type Constant struct {
	Kind     ConstantKind
	IntVal   int64
	FloatVal float32
	BoolVal  bool
	StrVal   string
	Pos      Position
}

func (c *Constant) String() string {
	switch c.Kind {
	case ConstInteger:
		return strconv.FormatInt(c.IntVal, 10)
	case ConstFloat:
		return strconv.FormatFloat(float64(c.FloatVal), 'f', -1, 32)
	case ConstBoolean:
		if c.BoolVal {
			return "WIN"
		}
		return "FAIL"
	case ConstString:
		return `"` + escapeYarn(c.StrVal) + `"`
	case ConstNil:
		return "NOOB"
	case ConstArray:
		return "BUKKIT"
	default:
		return "?"
	}
}

// escapeYarn re-encodes a decoded YARN value using the language's
// colon escapes, the exact reverse of the lexer's scanString decode
// table (:) newline, :> tab, :o bell, :" literal quote, :: literal
// colon), so a printed Constant re-lexes to the same string.
func escapeYarn(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(":)")
		case '\t':
			b.WriteString(":>")
		case '\a':
			b.WriteString(":o")
		case '"':
			b.WriteString(`:"`)
		case ':':
			b.WriteString("::")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *Constant) Accept(v Visitor) interface{} { return v.VisitConstant(c) }
func (c *Constant) Position() Position            { return c.Pos }
func (c *Constant) Validate() error               { return nil }
func (c *Constant) exprNode()                     {}
