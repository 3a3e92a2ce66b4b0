// Package path holds bound request paths: token chains resolved against a
// catalog into typed segments.
package path

import (
	"github.com/conduit-lang/odatacore/internal/edm"
	"github.com/conduit-lang/odatacore/internal/uri/literal"
)

// Segment is one bound segment of a request path.
type Segment interface {
	// Identifier is the segment's text in a resource path.
	Identifier() string
	// EdmType is the type the path addresses after this segment, or nil when unknown.
	EdmType() edm.Type
	isSegment()
}

// EntitySetSegment addresses an entity set of the container.
type EntitySetSegment struct {
	Set *edm.EntitySet
}

func (s *EntitySetSegment) Identifier() string { return s.Set.Name() }
func (s *EntitySetSegment) EdmType() edm.Type {
	return edm.NewCollectionType(edm.Ref(s.Set.EntityType(), false))
}
func (*EntitySetSegment) isSegment() {}

// SingletonSegment addresses a singleton of the container.
type SingletonSegment struct {
	Singleton *edm.Singleton
}

func (s *SingletonSegment) Identifier() string { return s.Singleton.Name() }
func (s *SingletonSegment) EdmType() edm.Type  { return s.Singleton.EntityType() }
func (*SingletonSegment) isSegment()           {}

// NavigationPropertySegment follows a navigation property. Source is the
// navigation source the segment lands in; for containment it is a
// contained entity set.
type NavigationPropertySegment struct {
	Property *edm.NavigationProperty
	Source   edm.NavigationSource
}

func (s *NavigationPropertySegment) Identifier() string { return s.Property.Name() }
func (s *NavigationPropertySegment) EdmType() edm.Type  { return s.Property.Type().Definition }
func (*NavigationPropertySegment) isSegment()           {}

// KeySegment selects a single entity from the preceding collection.
type KeySegment struct {
	Keys       []literal.KeyValue
	EntityType edm.StructuredType
	Source     edm.NavigationSource
}

// Identifier renders the key predicate in parentheses, e.g. "('1')" or "(A=1,B=2)".
func (s *KeySegment) Identifier() string { return "(" + literal.FormatKey(s.Keys) + ")" }
func (s *KeySegment) EdmType() edm.Type  { return s.EntityType }
func (*KeySegment) isSegment()           {}

// TypeSegment narrows the preceding segment to a derived type. Type may be
// an unresolved placeholder.
type TypeSegment struct {
	Type       edm.Type
	Collection bool
}

func (s *TypeSegment) Identifier() string { return edm.TypeName(s.Type) }

func (s *TypeSegment) EdmType() edm.Type {
	if s.Collection {
		return edm.NewCollectionType(edm.Ref(s.Type, false))
	}
	return s.Type
}

func (*TypeSegment) isSegment() {}

// PropertySegment accesses a declared structural property.
type PropertySegment struct {
	Property *edm.StructuralProperty
}

func (s *PropertySegment) Identifier() string { return s.Property.Name() }
func (s *PropertySegment) EdmType() edm.Type  { return s.Property.Type().Definition }
func (*PropertySegment) isSegment()           {}

// DynamicPropertySegment accesses an undeclared property of an open type.
type DynamicPropertySegment struct {
	Name string
}

func (s *DynamicPropertySegment) Identifier() string { return s.Name }
func (s *DynamicPropertySegment) EdmType() edm.Type  { return nil }
func (*DynamicPropertySegment) isSegment()           {}

// CountSegment is $count.
type CountSegment struct{}

func (CountSegment) Identifier() string { return "$count" }
func (CountSegment) EdmType() edm.Type  { return edm.Primitive(edm.PrimitiveInt32) }
func (CountSegment) isSegment()         {}

// ValueSegment is $value on a primitive property or media entity.
type ValueSegment struct {
	Type edm.Type
}

func (s ValueSegment) Identifier() string { return "$value" }
func (s ValueSegment) EdmType() edm.Type  { return s.Type }
func (ValueSegment) isSegment()           {}
