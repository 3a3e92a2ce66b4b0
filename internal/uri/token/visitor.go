package token

import (
	"github.com/conduit-lang/odatacore/internal/errors"
)

// ActionVisitor handles each kind of token for its side effects.
type ActionVisitor interface {
	VisitIdentifier(t *IdentifierToken) error
	VisitTypeCast(t *TypeCastToken) error
	VisitKey(t *KeyToken) error
	VisitSystem(t *SystemToken) error
}

// Visitor computes a value of type T from each kind of token.
type Visitor[T any] interface {
	VisitIdentifier(t *IdentifierToken) (T, error)
	VisitTypeCast(t *TypeCastToken) (T, error)
	VisitKey(t *KeyToken) (T, error)
	VisitSystem(t *SystemToken) (T, error)
}

// Apply dispatches tok to the visitor method for its kind and returns the result.
func Apply[T any](tok Token, v Visitor[T]) (T, error) {
	var zero T
	if v == nil {
		return zero, errors.NewArgument("visitor")
	}

	switch t := tok.(type) {
	case *IdentifierToken:
		return v.VisitIdentifier(t)
	case *TypeCastToken:
		return v.VisitTypeCast(t)
	case *KeyToken:
		return v.VisitKey(t)
	case *SystemToken:
		return v.VisitSystem(t)
	default:
		return zero, errors.NewArgument("token")
	}
}

// Map applies v to every token of the chain, in path order.
func Map[T any](head Token, v Visitor[T]) ([]T, error) {
	var out []T
	for t := range Segments(head) {
		r, err := Apply(t, v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Walk calls Accept on every token of the chain, stopping at the first error.
func Walk(head Token, v ActionVisitor) error {
	if v == nil {
		return errors.NewArgument("visitor")
	}
	for t := range Segments(head) {
		if err := t.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

// ActionFuncs adapts plain functions to ActionVisitor. Nil fields ignore their kind.
type ActionFuncs struct {
	Identifier func(*IdentifierToken) error
	TypeCast   func(*TypeCastToken) error
	Key        func(*KeyToken) error
	System     func(*SystemToken) error
}

func (f ActionFuncs) VisitIdentifier(t *IdentifierToken) error { return call(f.Identifier, t) }
func (f ActionFuncs) VisitTypeCast(t *TypeCastToken) error     { return call(f.TypeCast, t) }
func (f ActionFuncs) VisitKey(t *KeyToken) error               { return call(f.Key, t) }
func (f ActionFuncs) VisitSystem(t *SystemToken) error         { return call(f.System, t) }

func call[T any](fn func(T) error, t T) error {
	if fn == nil {
		return nil
	}
	return fn(t)
}
