// Package odata holds the in-memory values a response writer serializes:
// primitives, complex and enum values, collections and stream references.
package odata

// Value is a value about to be written in a response.
type Value interface {
	// TypeNameAnnotation is the type name the writer was told to emit for
	// the value, or "" when none was set.
	TypeNameAnnotation() string
	isValue()
}

// Annotations carries writer instructions attached to a value.
type Annotations struct {
	// SerializationTypeName overrides the type name derived from the value.
	SerializationTypeName string
}

func (a Annotations) TypeNameAnnotation() string { return a.SerializationTypeName }

// NullValue is an explicit null.
type NullValue struct {
	Annotations
}

// PrimitiveValue wraps a Go value mapped to an Edm primitive type.
type PrimitiveValue struct {
	Annotations
	Value any
}

// ComplexValue is an instance of a complex type.
type ComplexValue struct {
	Annotations
	TypeName   string
	Properties []Property
}

// CollectionValue is a collection of primitive, enum or complex values.
// TypeName may name either the item type or the collection type.
type CollectionValue struct {
	Annotations
	TypeName string
	Items    []Value
}

// EnumValue is a member of an enum type.
type EnumValue struct {
	Annotations
	TypeName string
	Value    string
}

// StreamReferenceValue points at a media stream. It is only valid as a
// property of an entity.
type StreamReferenceValue struct {
	Annotations
	ContentType string
	ReadLink    string
	EditLink    string
	ETag        string
}

// Property is a named value inside a complex value.
type Property struct {
	Name  string
	Value Value
}

func (*NullValue) isValue()            {}
func (*PrimitiveValue) isValue()       {}
func (*ComplexValue) isValue()         {}
func (*CollectionValue) isValue()      {}
func (*EnumValue) isValue()            {}
func (*StreamReferenceValue) isValue() {}

// Null returns a null value.
func Null() *NullValue { return &NullValue{} }

// Primitive wraps v.
func Primitive(v any) *PrimitiveValue { return &PrimitiveValue{Value: v} }

// Enum returns a member of the named enum type.
func Enum(typeName, member string) *EnumValue {
	return &EnumValue{TypeName: typeName, Value: member}
}

// Collection returns a collection value.
func Collection(typeName string, items ...Value) *CollectionValue {
	return &CollectionValue{TypeName: typeName, Items: items}
}

// Complex returns a complex value.
func Complex(typeName string, props ...Property) *ComplexValue {
	return &ComplexValue{TypeName: typeName, Properties: props}
}

// WithTypeName sets the serialization type name of v and returns it.
func WithTypeName[V interface {
	Value
	annotations() *Annotations
}](v V, typeName string) V {
	v.annotations().SerializationTypeName = typeName
	return v
}

func (v *NullValue) annotations() *Annotations            { return &v.Annotations }
func (v *PrimitiveValue) annotations() *Annotations       { return &v.Annotations }
func (v *ComplexValue) annotations() *Annotations         { return &v.Annotations }
func (v *CollectionValue) annotations() *Annotations      { return &v.Annotations }
func (v *EnumValue) annotations() *Annotations            { return &v.Annotations }
func (v *StreamReferenceValue) annotations() *Annotations { return &v.Annotations }

// IsNull reports whether v represents null: an explicit null or a
// primitive wrapping nil.
func IsNull(v Value) bool {
	switch x := v.(type) {
	case *NullValue:
		return x != nil
	case *PrimitiveValue:
		return x != nil && x.Value == nil
	}
	return false
}
