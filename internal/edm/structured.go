package edm

// StructuredType is an entity or complex type with properties and an optional base type.
type StructuredType interface {
	SchemaType
	BaseType() StructuredType
	IsAbstract() bool
	IsOpen() bool
	DeclaredProperties() []Property
	// FindProperty looks up a property declared on this type or any base type.
	FindProperty(name string) (Property, bool)
}

// Property is a structural or navigation property of a structured type.
type Property interface {
	Element
	Type() TypeReference
	DeclaringType() StructuredType
}

// StructuralProperty is a property holding a primitive, complex, enum or collection value.
type StructuralProperty struct {
	name      string
	typ       TypeReference
	declaring StructuredType
}

func (p *StructuralProperty) Name() string                  { return p.name }
func (p *StructuralProperty) Type() TypeReference           { return p.typ }
func (p *StructuralProperty) DeclaringType() StructuredType { return p.declaring }

// NavigationProperty is a property pointing at related entities.
type NavigationProperty struct {
	name           string
	target         StructuredType
	collection     bool
	nullable       bool
	containsTarget bool
	declaring      StructuredType
}

// NavigationPropertyInfo describes a navigation property to add to an entity type.
type NavigationPropertyInfo struct {
	Name           string
	Target         StructuredType
	Collection     bool
	Nullable       bool
	ContainsTarget bool
}

func (p *NavigationProperty) Name() string                  { return p.name }
func (p *NavigationProperty) DeclaringType() StructuredType { return p.declaring }

// Target returns the entity type at the other end.
func (p *NavigationProperty) Target() StructuredType { return p.target }

// IsCollection reports whether the property points at many entities.
func (p *NavigationProperty) IsCollection() bool { return p.collection }

// ContainsTarget reports whether related entities are contained (reachable only through this property).
func (p *NavigationProperty) ContainsTarget() bool { return p.containsTarget }

// Type returns the target type, wrapped in a collection for many-valued properties.
func (p *NavigationProperty) Type() TypeReference {
	if p.collection {
		return CollectionRef(TypeReference{Definition: p.target})
	}
	return TypeReference{Definition: p.target, Nullable: p.nullable}
}

type structuredType struct {
	namespace  string
	name       string
	base       StructuredType
	abstract   bool
	open       bool
	properties []Property
	byName     map[string]Property
}

func newStructuredType(namespace, name string, base StructuredType) structuredType {
	return structuredType{
		namespace: namespace,
		name:      name,
		base:      base,
		byName:    make(map[string]Property),
	}
}

func (s *structuredType) Name() string                         { return s.name }
func (s *structuredType) Namespace() string                    { return s.namespace }
func (s *structuredType) SchemaElementKind() SchemaElementKind { return SchemaElementTypeDefinition }
func (s *structuredType) BaseType() StructuredType             { return s.base }
func (s *structuredType) IsAbstract() bool                     { return s.abstract }
func (s *structuredType) IsOpen() bool                         { return s.open }

func (s *structuredType) DeclaredProperties() []Property {
	return append([]Property(nil), s.properties...)
}

func (s *structuredType) FindProperty(name string) (Property, bool) {
	if p, ok := s.byName[name]; ok {
		return p, true
	}
	if s.base != nil {
		return s.base.FindProperty(name)
	}
	return nil, false
}

func (s *structuredType) addProperty(p Property) {
	s.properties = append(s.properties, p)
	s.byName[p.Name()] = p
}

// EntityType is a structured type with a key, addressable through navigation sources.
type EntityType struct {
	structuredType
	keys []string
}

// NewEntityType creates an entity type. base may be nil.
func NewEntityType(namespace, name string, base StructuredType) *EntityType {
	return &EntityType{structuredType: newStructuredType(namespace, name, base)}
}

func (e *EntityType) TypeKind() TypeKind { return TypeKindEntity }

// SetAbstract marks the type abstract.
func (e *EntityType) SetAbstract(abstract bool) *EntityType {
	e.abstract = abstract
	return e
}

// SetOpen marks the type open (it accepts dynamic properties).
func (e *EntityType) SetOpen(open bool) *EntityType {
	e.open = open
	return e
}

// AddKeys declares key properties by name.
func (e *EntityType) AddKeys(names ...string) *EntityType {
	e.keys = append(e.keys, names...)
	return e
}

// Keys returns the key property names, inherited from the base type when none are declared.
func (e *EntityType) Keys() []string {
	if len(e.keys) == 0 {
		if base, ok := e.base.(*EntityType); ok {
			return base.Keys()
		}
	}
	return append([]string(nil), e.keys...)
}

// AddStructuralProperty adds a structural property and returns it.
func (e *EntityType) AddStructuralProperty(name string, typ TypeReference) *StructuralProperty {
	p := &StructuralProperty{name: name, typ: typ, declaring: e}
	e.addProperty(p)
	return p
}

// AddNavigationProperty adds a navigation property and returns it.
func (e *EntityType) AddNavigationProperty(info NavigationPropertyInfo) *NavigationProperty {
	p := &NavigationProperty{
		name:           info.Name,
		target:         info.Target,
		collection:     info.Collection,
		nullable:       info.Nullable,
		containsTarget: info.ContainsTarget,
		declaring:      e,
	}
	e.addProperty(p)
	return p
}

// ComplexType is a keyless structured type.
type ComplexType struct {
	structuredType
}

// NewComplexType creates a complex type. base may be nil.
func NewComplexType(namespace, name string, base StructuredType) *ComplexType {
	return &ComplexType{structuredType: newStructuredType(namespace, name, base)}
}

func (c *ComplexType) TypeKind() TypeKind { return TypeKindComplex }

// SetOpen marks the type open.
func (c *ComplexType) SetOpen(open bool) *ComplexType {
	c.open = open
	return c
}

// SetAbstract marks the type abstract.
func (c *ComplexType) SetAbstract(abstract bool) *ComplexType {
	c.abstract = abstract
	return c
}

// AddStructuralProperty adds a structural property and returns it.
func (c *ComplexType) AddStructuralProperty(name string, typ TypeReference) *StructuralProperty {
	p := &StructuralProperty{name: name, typ: typ, declaring: c}
	c.addProperty(p)
	return p
}
