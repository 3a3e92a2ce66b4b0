package edm

// NavigationSource is an addressable collection or single entity.
type NavigationSource interface {
	Element
	EntityType() StructuredType
	NavigationSourceKind() NavigationSourceKind
}

// Container is an entity container.
type Container interface {
	SchemaElement
	NavigationSources() []NavigationSource
	FindNavigationSource(name string) (NavigationSource, bool)
}

// EntityContainer holds the entity sets and singletons a service exposes.
type EntityContainer struct {
	namespace string
	name      string
	sources   []NavigationSource
	byName    map[string]NavigationSource
}

// NewEntityContainer creates an empty entity container.
func NewEntityContainer(namespace, name string) *EntityContainer {
	return &EntityContainer{
		namespace: namespace,
		name:      name,
		byName:    make(map[string]NavigationSource),
	}
}

func (c *EntityContainer) Name() string                         { return c.name }
func (c *EntityContainer) Namespace() string                    { return c.namespace }
func (c *EntityContainer) SchemaElementKind() SchemaElementKind { return SchemaElementEntityContainer }

// NavigationSources returns entity sets and singletons in declaration order.
func (c *EntityContainer) NavigationSources() []NavigationSource {
	return append([]NavigationSource(nil), c.sources...)
}

// FindNavigationSource finds an entity set or singleton by name.
func (c *EntityContainer) FindNavigationSource(name string) (NavigationSource, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// AddEntitySet adds an entity set of the given entity type.
func (c *EntityContainer) AddEntitySet(name string, entityType StructuredType) *EntitySet {
	s := &EntitySet{name: name, entityType: entityType, container: c}
	c.add(s)
	return s
}

// AddSingleton adds a singleton of the given entity type.
func (c *EntityContainer) AddSingleton(name string, entityType StructuredType) *Singleton {
	s := &Singleton{name: name, entityType: entityType, container: c}
	c.add(s)
	return s
}

func (c *EntityContainer) add(s NavigationSource) {
	c.sources = append(c.sources, s)
	c.byName[s.Name()] = s
}

// EntitySet is a top-level collection of entities.
type EntitySet struct {
	name       string
	entityType StructuredType
	container  *EntityContainer
}

func (s *EntitySet) Name() string                               { return s.name }
func (s *EntitySet) EntityType() StructuredType                 { return s.entityType }
func (s *EntitySet) NavigationSourceKind() NavigationSourceKind { return NavigationSourceEntitySet }
func (s *EntitySet) Container() *EntityContainer                { return s.container }

// Singleton is a single top-level entity.
type Singleton struct {
	name       string
	entityType StructuredType
	container  *EntityContainer
}

func (s *Singleton) Name() string                               { return s.name }
func (s *Singleton) EntityType() StructuredType                 { return s.entityType }
func (s *Singleton) NavigationSourceKind() NavigationSourceKind { return NavigationSourceSingleton }
func (s *Singleton) Container() *EntityContainer                { return s.container }

// ContainedEntitySet is the set of entities reached through a containment navigation property.
type ContainedEntitySet struct {
	parent     NavigationSource
	navigation *NavigationProperty
}

// NewContainedEntitySet creates the contained set reached from parent through navigation.
func NewContainedEntitySet(parent NavigationSource, navigation *NavigationProperty) *ContainedEntitySet {
	return &ContainedEntitySet{parent: parent, navigation: navigation}
}

func (s *ContainedEntitySet) Name() string                               { return s.navigation.Name() }
func (s *ContainedEntitySet) EntityType() StructuredType                 { return s.navigation.Target() }
func (s *ContainedEntitySet) NavigationSourceKind() NavigationSourceKind { return NavigationSourceContainedEntitySet }

// Parent returns the navigation source the containing entity belongs to.
func (s *ContainedEntitySet) Parent() NavigationSource { return s.parent }

// NavigationProperty returns the containment property.
func (s *ContainedEntitySet) NavigationProperty() *NavigationProperty { return s.navigation }
