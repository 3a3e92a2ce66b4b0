package edm

import (
	"strings"
)

// Element is anything with a name.
type Element interface {
	Name() string
}

// SchemaElement is a named construct declared in a namespace.
type SchemaElement interface {
	Element
	Namespace() string
	SchemaElementKind() SchemaElementKind
}

// FullName returns the namespace-qualified name of a schema element.
func FullName(e SchemaElement) string {
	if e == nil {
		return ""
	}
	if e.Namespace() == "" {
		return e.Name()
	}
	return e.Namespace() + "." + e.Name()
}

// SplitQualifiedName splits "NS.Sub.Name" into ("NS.Sub", "Name").
func SplitQualifiedName(qualifiedName string) (namespace, name string) {
	i := strings.LastIndexByte(qualifiedName, '.')
	if i < 0 {
		return "", qualifiedName
	}
	return qualifiedName[:i], qualifiedName[i+1:]
}

// Type is a type definition.
type Type interface {
	TypeKind() TypeKind
}

// SchemaType is a type definition declared in a schema.
type SchemaType interface {
	Type
	SchemaElement
}

// TypeReference refers to a type definition together with its nullability.
type TypeReference struct {
	Definition Type
	Nullable   bool
}

// IsZero reports whether the reference points at no type.
func (r TypeReference) IsZero() bool {
	return r.Definition == nil
}

// IsCollection reports whether the referenced type is a collection.
func (r TypeReference) IsCollection() bool {
	return r.Definition != nil && r.Definition.TypeKind() == TypeKindCollection
}

// FullName returns the canonical name of the referenced type:
// "NS.Name" for schema types and "Collection(NS.Name)" for collections.
func (r TypeReference) FullName() string {
	return TypeName(r.Definition)
}

// TypeName returns the canonical name of a type definition.
func TypeName(t Type) string {
	switch v := t.(type) {
	case nil:
		return ""
	case *CollectionType:
		return CollectionTypeName(v.ElementType().FullName())
	case SchemaElement:
		return FullName(v)
	default:
		return ""
	}
}

// CollectionTypeName wraps an item type name: "Collection(NS.Name)".
func CollectionTypeName(itemTypeName string) string {
	return "Collection(" + itemTypeName + ")"
}

// IsCollectionTypeName reports whether name already has the Collection(...) form.
func IsCollectionTypeName(name string) bool {
	return strings.HasPrefix(name, "Collection(") && strings.HasSuffix(name, ")")
}

// PrimitiveType is one of the built-in Edm primitive types.
type PrimitiveType struct {
	kind PrimitiveTypeKind
}

func (p *PrimitiveType) Name() string                         { return p.kind.Name() }
func (p *PrimitiveType) Namespace() string                    { return CoreNamespace }
func (p *PrimitiveType) SchemaElementKind() SchemaElementKind { return SchemaElementTypeDefinition }
func (p *PrimitiveType) TypeKind() TypeKind                   { return TypeKindPrimitive }

// PrimitiveKind returns which primitive this is.
func (p *PrimitiveType) PrimitiveKind() PrimitiveTypeKind { return p.kind }

// CollectionType is an unnamed collection of another type.
type CollectionType struct {
	element TypeReference
}

// NewCollectionType creates a collection of the given element type.
func NewCollectionType(element TypeReference) *CollectionType {
	return &CollectionType{element: element}
}

func (c *CollectionType) TypeKind() TypeKind { return TypeKindCollection }

// ElementType returns the type of the collection's items.
func (c *CollectionType) ElementType() TypeReference { return c.element }

// EnumMember is a named value of an enum type.
type EnumMember struct {
	Name  string
	Value int64
}

// EnumType is a named set of integral values.
type EnumType struct {
	namespace  string
	name       string
	underlying PrimitiveTypeKind
	isFlags    bool
	members    []EnumMember
}

// NewEnumType creates an enum type backed by Edm.Int32 unless another underlying kind is given.
func NewEnumType(namespace, name string, members ...EnumMember) *EnumType {
	return &EnumType{
		namespace:  namespace,
		name:       name,
		underlying: PrimitiveInt32,
		members:    members,
	}
}

func (e *EnumType) Name() string                         { return e.name }
func (e *EnumType) Namespace() string                    { return e.namespace }
func (e *EnumType) SchemaElementKind() SchemaElementKind { return SchemaElementTypeDefinition }
func (e *EnumType) TypeKind() TypeKind                   { return TypeKindEnum }
func (e *EnumType) Members() []EnumMember                { return append([]EnumMember(nil), e.members...) }
func (e *EnumType) UnderlyingType() PrimitiveTypeKind    { return e.underlying }
func (e *EnumType) IsFlags() bool                        { return e.isFlags }

// SetFlags marks the enum as a flags enum.
func (e *EnumType) SetFlags(flags bool) *EnumType {
	e.isFlags = flags
	return e
}

// SetUnderlyingType overrides the integral type backing the enum.
func (e *EnumType) SetUnderlyingType(kind PrimitiveTypeKind) *EnumType {
	e.underlying = kind
	return e
}

// Ref returns a reference to t with the given nullability.
func Ref(t Type, nullable bool) TypeReference {
	return TypeReference{Definition: t, Nullable: nullable}
}

// CollectionRef returns a non-nullable reference to a collection of element.
func CollectionRef(element TypeReference) TypeReference {
	return TypeReference{Definition: NewCollectionType(element)}
}
