package token

import (
	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/uri/literal"
)

// Part describes one token for Build.
type Part struct {
	Kind       Kind
	Identifier string
	Keys       []literal.KeyValue
}

// Ident describes an identifier token.
func Ident(identifier string) Part { return Part{Kind: KindIdentifier, Identifier: identifier} }

// Cast describes a type-cast token.
func Cast(qualifiedTypeName string) Part { return Part{Kind: KindTypeCast, Identifier: qualifiedTypeName} }

// System describes a system token.
func System(identifier string) Part { return Part{Kind: KindSystem, Identifier: identifier} }

// Key describes a key token with a single unnamed value.
func Key(value any) Part {
	return Part{Kind: KindKey, Keys: []literal.KeyValue{{Value: value}}}
}

// CompositeKey describes a key token with named values.
func CompositeKey(values ...literal.KeyValue) Part {
	return Part{Kind: KindKey, Keys: values}
}

// Build creates a chain from parts listed in path order and returns its head.
// The chain is built from the last segment backwards so every token owns its rest.
func Build(parts ...Part) (Token, error) {
	var next Token
	for i := len(parts) - 1; i >= 0; i-- {
		tok, err := newToken(parts[i], next)
		if err != nil {
			return nil, err
		}
		next = tok
	}
	return next, nil
}

func newToken(p Part, next Token) (Token, error) {
	var (
		tok Token
		err error
	)
	switch p.Kind {
	case KindIdentifier:
		tok, err = asToken(NewIdentifier(p.Identifier, next))
	case KindTypeCast:
		tok, err = asToken(NewTypeCast(p.Identifier, next))
	case KindKey:
		tok, err = asToken(NewKey(p.Keys, next))
	case KindSystem:
		tok, err = asToken(NewSystem(p.Identifier, next))
	default:
		err = errors.NewArgument("kind")
	}
	if err != nil {
		return nil, err
	}
	return tok, nil
}

// asToken keeps a failed constructor's typed nil out of the Token interface.
func asToken[T Token](t T, err error) (Token, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}
