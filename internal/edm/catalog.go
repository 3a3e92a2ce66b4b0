package edm

import (
	"iter"
	"reflect"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/metrics"
)

// ConflictPolicy decides what happens when a type, term or container name is
// registered twice in one catalog. Operations never conflict: a repeated
// operation name adds an overload.
type ConflictPolicy int

const (
	// ConflictReject fails the second registration and leaves the catalog unchanged.
	ConflictReject ConflictPolicy = iota
	// ConflictFirstWins keeps the first registration and ignores later ones.
	ConflictFirstWins
)

// ParseConflictPolicy converts a configuration value to a ConflictPolicy.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return ConflictReject, nil
	case "first_wins", "first-wins":
		return ConflictFirstWins, nil
	default:
		return 0, errors.NewArgument("conflict_policy").
			WithSuggestion("use one of: reject, first_wins")
	}
}

// String returns the configuration spelling of the policy
func (p ConflictPolicy) String() string {
	if p == ConflictFirstWins {
		return "first_wins"
	}
	return "reject"
}

// operationGroup is the overload set registered under one name. The same
// group object is indexed under every alias of its namespace.
type operationGroup struct {
	operations []Operation
}

// Catalog holds the schema elements contributed by one schema plus the list
// of catalogs it references. It is filled by a single loader through
// Register, then sealed; after that it is read-only and safe for concurrent
// readers. Lookups are local: they never consult referenced catalogs (see
// Resolver for that).
type Catalog struct {
	types      map[string]SchemaType
	terms      map[string]Term
	operations map[string]*operationGroup
	containers map[string]Container

	// operation groups in the order their first overload was registered
	groups []*operationGroup

	// registration order, for SchemaElements and EntityContainer
	elements       []SchemaElement
	containerNames []string

	aliases    map[string]string // alias -> namespace
	referenced []*Catalog
	sealed     bool

	policy  ConflictPolicy
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the logger used for registration and resolution events.
func WithLogger(logger *zap.Logger) CatalogOption {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the metrics the catalog records into.
func WithMetrics(m *metrics.Metrics) CatalogOption {
	return func(c *Catalog) {
		c.metrics = m
	}
}

// WithConflictPolicy sets the duplicate-name policy. The default is ConflictReject.
func WithConflictPolicy(policy ConflictPolicy) CatalogOption {
	return func(c *Catalog) {
		c.policy = policy
	}
}

// NewCatalog creates an empty catalog referencing the given catalogs. The
// built-in core catalog and core vocabulary are always appended, once.
func NewCatalog(referenced []*Catalog, opts ...CatalogOption) *Catalog {
	c := newCatalog(opts...)
	for _, r := range referenced {
		if r != nil {
			c.referenced = append(c.referenced, r)
		}
	}
	for _, builtin := range []*Catalog{CoreCatalog(), CoreVocabulary()} {
		if !slices.Contains(c.referenced, builtin) {
			c.referenced = append(c.referenced, builtin)
		}
	}
	return c
}

func newCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		types:      make(map[string]SchemaType),
		terms:      make(map[string]Term),
		operations: make(map[string]*operationGroup),
		containers: make(map[string]Container),
		aliases:    make(map[string]string),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds a schema element to the registry matching its kind. It fails
// without changing the catalog when element is nil, is a placeholder, has an
// unsupported kind, conflicts under ConflictReject, or the catalog is sealed.
func (c *Catalog) Register(element SchemaElement) error {
	if isNil(element) || element.Name() == "" {
		return c.reject(errors.NewArgument("element"))
	}
	name := FullName(element)

	if c.sealed {
		return c.reject(errors.NewCatalogSealed(name))
	}
	if IsUnresolved(element) {
		return c.reject(errors.NewUnsupportedElement(name, "unresolved "+element.SchemaElementKind().String()))
	}

	kind := element.SchemaElementKind()
	switch kind {
	case SchemaElementTypeDefinition:
		t, ok := element.(SchemaType)
		if !ok {
			return c.reject(errors.NewUnsupportedElement(name, kind.String()))
		}
		if _, exists := c.types[name]; exists {
			return c.duplicate(name, kind)
		}
		c.indexAll(element, func(key string) { c.types[key] = t })

	case SchemaElementValueTerm:
		t, ok := element.(Term)
		if !ok {
			return c.reject(errors.NewUnsupportedElement(name, kind.String()))
		}
		if _, exists := c.terms[name]; exists {
			return c.duplicate(name, kind)
		}
		c.indexAll(element, func(key string) { c.terms[key] = t })

	case SchemaElementEntityContainer:
		ct, ok := element.(Container)
		if !ok {
			return c.reject(errors.NewUnsupportedElement(name, kind.String()))
		}
		if _, exists := c.containers[name]; exists {
			return c.duplicate(name, kind)
		}
		c.containerNames = append(c.containerNames, name)
		c.indexAll(element, func(key string) { c.containers[key] = ct })

	case SchemaElementAction, SchemaElementFunction:
		op, ok := element.(Operation)
		if !ok {
			return c.reject(errors.NewUnsupportedElement(name, kind.String()))
		}
		group, exists := c.operations[name]
		if !exists {
			group = &operationGroup{}
			c.groups = append(c.groups, group)
			c.indexAll(element, func(key string) { c.operations[key] = group })
		}
		group.operations = append(group.operations, op)

	default:
		return c.reject(errors.NewUnsupportedElement(name, kind.String()))
	}

	c.elements = append(c.elements, element)
	c.metrics.RecordRegistration(kind.String())
	c.logger.Debug("registered schema element",
		zap.String("name", name),
		zap.Stringer("kind", kind),
	)
	return nil
}

// duplicate handles a second registration of a type, term or container name.
// Under ConflictFirstWins the new element is dropped with a warning.
func (c *Catalog) duplicate(name string, kind SchemaElementKind) error {
	if c.policy == ConflictFirstWins {
		c.logger.Warn("ignoring duplicate schema element",
			zap.String("name", name),
			zap.Stringer("kind", kind),
		)
		return nil
	}
	return c.reject(errors.NewDuplicateElement(name, kind.String()))
}

func (c *Catalog) reject(err *errors.Error) error {
	c.metrics.RecordRegistrationFailure(string(err.Code))
	c.logger.Debug("registration rejected", zap.Error(err))
	return err
}

// indexAll calls store for the element's full name and every alias-qualified name.
func (c *Catalog) indexAll(element SchemaElement, store func(key string)) {
	store(FullName(element))
	for alias, ns := range c.aliases {
		if ns == element.Namespace() {
			store(alias + "." + element.Name())
		}
	}
}

// DeclareAlias makes elements of namespace findable as "alias.Name". It
// applies to elements already registered and to later registrations.
func (c *Catalog) DeclareAlias(namespace, alias string) error {
	if namespace == "" {
		return errors.NewArgument("namespace")
	}
	if alias == "" {
		return errors.NewArgument("alias")
	}
	if c.sealed {
		return errors.NewCatalogSealed(alias)
	}
	c.aliases[alias] = namespace

	for _, e := range c.elements {
		if e.Namespace() != namespace {
			continue
		}
		key := alias + "." + e.Name()
		full := FullName(e)
		switch e.SchemaElementKind() {
		case SchemaElementTypeDefinition:
			c.types[key] = c.types[full]
		case SchemaElementValueTerm:
			c.terms[key] = c.terms[full]
		case SchemaElementEntityContainer:
			c.containers[key] = c.containers[full]
		case SchemaElementAction, SchemaElementFunction:
			c.operations[key] = c.operations[full]
		}
	}
	return nil
}

// AddReferencedCatalog appends a catalog to the referenced list.
func (c *Catalog) AddReferencedCatalog(ref *Catalog) error {
	if ref == nil {
		return errors.NewArgument("catalog")
	}
	if c.sealed {
		return errors.NewCatalogSealed("referenced catalog")
	}
	c.referenced = append(c.referenced, ref)
	return nil
}

// Seal ends the loading phase. Further registrations fail.
func (c *Catalog) Seal() {
	c.sealed = true
}

// Sealed reports whether the catalog has been sealed.
func (c *Catalog) Sealed() bool {
	return c.sealed
}

// FindDeclaredType returns the type registered under qualifiedName in this catalog.
func (c *Catalog) FindDeclaredType(qualifiedName string) (SchemaType, bool) {
	t, ok := c.types[qualifiedName]
	return t, ok
}

// FindDeclaredValueTerm returns the term registered under qualifiedName in this catalog.
func (c *Catalog) FindDeclaredValueTerm(qualifiedName string) (Term, bool) {
	t, ok := c.terms[qualifiedName]
	return t, ok
}

// FindDeclaredOperations returns the overloads registered under qualifiedName,
// in registration order. The result is a copy and is empty for unknown names.
func (c *Catalog) FindDeclaredOperations(qualifiedName string) []Operation {
	group, ok := c.operations[qualifiedName]
	if !ok {
		return []Operation{}
	}
	return append([]Operation(nil), group.operations...)
}

// FindDeclaredBoundOperations lazily yields every bound operation in this
// catalog that can be invoked on bindingType, in registration order. Each
// overload set is scanned once even when it is indexed under several names.
// The sequence can be ranged over repeatedly; each pass rescans.
func (c *Catalog) FindDeclaredBoundOperations(bindingType Type) iter.Seq[Operation] {
	return func(yield func(Operation) bool) {
		visited := make(map[*operationGroup]struct{}, len(c.groups))
		for _, group := range c.groups {
			if _, seen := visited[group]; seen {
				continue
			}
			visited[group] = struct{}{}
			for _, op := range group.operations {
				if HasEquivalentBindingType(op, bindingType) && !yield(op) {
					return
				}
			}
		}
	}
}

// FindDeclaredBoundOperationsByName lazily yields the overloads of qualifiedName
// that can be invoked on bindingType.
func (c *Catalog) FindDeclaredBoundOperationsByName(qualifiedName string, bindingType Type) iter.Seq[Operation] {
	return func(yield func(Operation) bool) {
		group, ok := c.operations[qualifiedName]
		if !ok {
			return
		}
		for _, op := range group.operations {
			if HasEquivalentBindingType(op, bindingType) && !yield(op) {
				return
			}
		}
	}
}

// FindDeclaredEntityContainer returns the container registered under qualifiedName.
func (c *Catalog) FindDeclaredEntityContainer(qualifiedName string) (Container, bool) {
	ct, ok := c.containers[qualifiedName]
	return ct, ok
}

// EntityContainer returns the first registered container. Catalogs with more
// than one container are accepted here; rejecting them is left to validation.
func (c *Catalog) EntityContainer() (Container, bool) {
	if len(c.containerNames) == 0 {
		return nil, false
	}
	return c.containers[c.containerNames[0]], true
}

// ReferencedCatalogs returns a copy of the referenced catalog list.
func (c *Catalog) ReferencedCatalogs() []*Catalog {
	return append([]*Catalog(nil), c.referenced...)
}

// SchemaElements returns all registered elements in registration order.
func (c *Catalog) SchemaElements() []SchemaElement {
	return append([]SchemaElement(nil), c.elements...)
}

// DeclaredNamespaces returns the distinct namespaces of registered elements, in first-seen order.
func (c *Catalog) DeclaredNamespaces() []string {
	seen := make(map[string]bool)
	var namespaces []string
	for _, e := range c.elements {
		if !seen[e.Namespace()] {
			seen[e.Namespace()] = true
			namespaces = append(namespaces, e.Namespace())
		}
	}
	return namespaces
}

// FindDirectlyDerivedTypes returns the registered structured types whose base type is baseType.
func (c *Catalog) FindDirectlyDerivedTypes(baseType StructuredType) []StructuredType {
	if baseType == nil {
		return nil
	}
	var derived []StructuredType
	for _, e := range c.elements {
		st, ok := e.(StructuredType)
		if !ok || st.BaseType() == nil {
			continue
		}
		if IsEquivalentTo(st.BaseType(), baseType) {
			derived = append(derived, st)
		}
	}
	return derived
}

// isNil reports whether element is nil or a typed nil pointer.
func isNil(element SchemaElement) bool {
	if element == nil {
		return true
	}
	v := reflect.ValueOf(element)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
