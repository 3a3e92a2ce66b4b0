// Package token models a request path as a chain of segment tokens, from the
// first segment of the path to the last, and dispatches visitors over them.
package token

import (
	"iter"
	"strings"

	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/uri/literal"
)

// Kind tags the four kinds of path segment token.
type Kind int

const (
	// KindIdentifier is an ordinary segment: an entity set, singleton,
	// property, navigation property or operation name.
	KindIdentifier Kind = iota
	// KindTypeCast is a qualified type name narrowing the previous segment.
	KindTypeCast
	// KindKey is a key predicate selecting one entity of a collection.
	KindKey
	// KindSystem is a protocol meta-segment such as $count.
	KindSystem
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindTypeCast:
		return "type cast"
	case KindKey:
		return "key"
	case KindSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Token is one segment of a path. Tokens own the rest of the chain through
// Next; chains are never shared between requests.
type Token interface {
	Identifier() string
	Next() Token
	Kind() Kind
	IsNamespaceOrContainerQualified() bool
	// Accept calls the visitor method matching the token's kind.
	Accept(v ActionVisitor) error
}

type link struct {
	next Token
}

func (l link) Next() Token { return l.next }

// IdentifierToken is an ordinary named segment.
type IdentifierToken struct {
	link
	identifier string
}

// NewIdentifier creates an identifier token followed by next (which may be nil).
func NewIdentifier(identifier string, next Token) (*IdentifierToken, error) {
	if identifier == "" {
		return nil, errors.NewArgument("identifier")
	}
	return &IdentifierToken{link: link{next}, identifier: identifier}, nil
}

func (t *IdentifierToken) Identifier() string { return t.identifier }
func (t *IdentifierToken) Kind() Kind         { return KindIdentifier }

// IsNamespaceOrContainerQualified reports whether the identifier is dotted,
// e.g. "Default.People" or "NS.Function".
func (t *IdentifierToken) IsNamespaceOrContainerQualified() bool {
	return strings.Contains(t.identifier, ".")
}

func (t *IdentifierToken) Accept(v ActionVisitor) error {
	if v == nil {
		return errors.NewArgument("visitor")
	}
	return v.VisitIdentifier(t)
}

// TypeCastToken narrows the previous segment to a derived type.
type TypeCastToken struct {
	link
	typeName string
}

// NewTypeCast creates a type-cast token for a qualified type name.
func NewTypeCast(qualifiedTypeName string, next Token) (*TypeCastToken, error) {
	if qualifiedTypeName == "" {
		return nil, errors.NewArgument("qualifiedTypeName")
	}
	return &TypeCastToken{link: link{next}, typeName: qualifiedTypeName}, nil
}

func (t *TypeCastToken) Identifier() string { return t.typeName }
func (t *TypeCastToken) Kind() Kind         { return KindTypeCast }

func (t *TypeCastToken) IsNamespaceOrContainerQualified() bool {
	return strings.Contains(t.typeName, ".")
}

func (t *TypeCastToken) Accept(v ActionVisitor) error {
	if v == nil {
		return errors.NewArgument("visitor")
	}
	return v.VisitTypeCast(t)
}

// KeyToken selects an entity of the preceding collection by key.
type KeyToken struct {
	link
	values []literal.KeyValue
}

// NewKey creates a key token. Single-part keys may leave the name empty.
func NewKey(values []literal.KeyValue, next Token) (*KeyToken, error) {
	if len(values) == 0 {
		return nil, errors.NewArgument("values")
	}
	return &KeyToken{link: link{next}, values: append([]literal.KeyValue(nil), values...)}, nil
}

// Identifier returns the key predicate without parentheses, e.g. "'1'" or "A=1,B=2".
func (t *KeyToken) Identifier() string { return literal.FormatKey(t.values) }
func (t *KeyToken) Kind() Kind         { return KindKey }

// Values returns the key components.
func (t *KeyToken) Values() []literal.KeyValue {
	return append([]literal.KeyValue(nil), t.values...)
}

func (t *KeyToken) IsNamespaceOrContainerQualified() bool { return false }

func (t *KeyToken) Accept(v ActionVisitor) error {
	if v == nil {
		return errors.NewArgument("visitor")
	}
	return v.VisitKey(t)
}

// SystemToken is a protocol meta-segment such as $count, $value or $ref.
type SystemToken struct {
	link
	identifier string
}

// NewSystem creates a system token.
func NewSystem(identifier string, next Token) (*SystemToken, error) {
	if identifier == "" {
		return nil, errors.NewArgument("identifier")
	}
	return &SystemToken{link: link{next}, identifier: identifier}, nil
}

func (t *SystemToken) Identifier() string { return t.identifier }
func (t *SystemToken) Kind() Kind         { return KindSystem }

// IsNamespaceOrContainerQualified is always false: system segments are never qualified.
func (t *SystemToken) IsNamespaceOrContainerQualified() bool { return false }

func (t *SystemToken) Accept(v ActionVisitor) error {
	if v == nil {
		return errors.NewArgument("visitor")
	}
	return v.VisitSystem(t)
}

// Segments yields head and every token after it, in path order.
func Segments(head Token) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for t := head; t != nil; t = t.Next() {
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of tokens in the chain.
func Len(head Token) int {
	n := 0
	for range Segments(head) {
		n++
	}
	return n
}

// Last returns the final token of the chain, or nil for an empty chain.
func Last(head Token) Token {
	var last Token
	for t := range Segments(head) {
		last = t
	}
	return last
}

// String renders the chain as a path: segments joined by "/", with key
// predicates attached to the preceding segment in parentheses.
func String(head Token) string {
	var b strings.Builder
	for t := range Segments(head) {
		if t.Kind() == KindKey {
			b.WriteString("(" + t.Identifier() + ")")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('/')
		}
		b.WriteString(t.Identifier())
	}
	return b.String()
}
