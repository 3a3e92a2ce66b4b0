package fixture

import (
	"fmt"
	"strings"

	"github.com/conduit-lang/odatacore/internal/edm"
	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/uri/literal"
	"github.com/conduit-lang/odatacore/internal/uri/selectexpand"
	"github.com/conduit-lang/odatacore/internal/uri/token"
)

// Built is a fixture turned into a catalog and an unbound request.
type Built struct {
	Catalog *edm.Catalog

	// Path is nil when the fixture has no request path.
	Path         token.Token
	SelectExpand *selectexpand.Clause
	ExpectedType string
	Single       bool
}

// Build registers the fixture's elements in a new catalog. Type names
// that match nothing become placeholders; Catalog.Validate reports them.
func (f *Fixture) Build(opts ...edm.CatalogOption) (*Built, error) {
	b := &builder{
		fixture:    f,
		catalog:    edm.NewCatalog(nil, opts...),
		structured: make(map[string]edm.StructuredType),
		defs:       make(map[string]structuredDef),
		building:   make(map[string]bool),
	}
	b.resolver = edm.NewResolver(b.catalog)

	if err := b.types(); err != nil {
		return nil, err
	}
	if err := b.operations(); err != nil {
		return nil, err
	}
	if err := b.terms(); err != nil {
		return nil, err
	}
	if err := b.container(); err != nil {
		return nil, err
	}
	if f.Alias != "" {
		if err := b.catalog.DeclareAlias(f.Namespace, f.Alias); err != nil {
			return nil, err
		}
	}

	out := &Built{Catalog: b.catalog}
	if r := f.Request; r != nil {
		head, err := requestPath(r.Path)
		if err != nil {
			return nil, err
		}
		out.Path = head
		out.SelectExpand = clause(r.Select, r.Expand)
		out.ExpectedType = b.qualify(r.ExpectedType)
		out.Single = r.Single
	}
	return out, nil
}

type structuredDef struct {
	def    StructuredDef
	entity bool
}

type builder struct {
	fixture    *Fixture
	catalog    *edm.Catalog
	resolver   *edm.Resolver
	structured map[string]edm.StructuredType
	defs       map[string]structuredDef
	building   map[string]bool
}

// qualify prefixes names without a namespace with the fixture namespace.
func (b *builder) qualify(name string) string {
	if name == "" || strings.Contains(name, ".") {
		return name
	}
	return b.fixture.Namespace + "." + name
}

func (b *builder) types() error {
	ns := b.fixture.Namespace

	for _, e := range b.fixture.EnumTypes {
		members := make([]edm.EnumMember, len(e.Members))
		for i, m := range e.Members {
			members[i] = edm.EnumMember{Name: m, Value: int64(i)}
		}
		if err := b.catalog.Register(edm.NewEnumType(ns, e.Name, members...).SetFlags(e.Flags)); err != nil {
			return err
		}
	}

	var order []string
	for _, d := range b.fixture.ComplexTypes {
		order = append(order, b.addDef(d, false))
	}
	for _, d := range b.fixture.EntityTypes {
		order = append(order, b.addDef(d, true))
	}

	// Bases are created before derived types, whatever the declaration order.
	for _, name := range order {
		if _, err := b.structuredType(name); err != nil {
			return err
		}
	}
	for _, name := range order {
		if err := b.catalog.Register(b.structured[name]); err != nil {
			return err
		}
	}
	for _, name := range order {
		b.members(name)
	}
	return nil
}

func (b *builder) addDef(d StructuredDef, entity bool) string {
	name := b.qualify(d.Name)
	b.defs[name] = structuredDef{def: d, entity: entity}
	return name
}

func (b *builder) structuredType(name string) (edm.StructuredType, error) {
	if t, ok := b.structured[name]; ok {
		return t, nil
	}
	d, ok := b.defs[name]
	if !ok {
		return b.resolver.ResolveStructuredType(name, b.location(name)), nil
	}
	if b.building[name] {
		return nil, fmt.Errorf("type %s inherits from itself", name)
	}
	b.building[name] = true
	defer delete(b.building, name)

	var base edm.StructuredType
	if d.def.Base != "" {
		var err error
		if base, err = b.structuredType(b.qualify(d.def.Base)); err != nil {
			return nil, err
		}
	}

	var t edm.StructuredType
	if d.entity {
		et := edm.NewEntityType(b.fixture.Namespace, d.def.Name, base).
			SetAbstract(d.def.Abstract).
			SetOpen(d.def.Open)
		et.AddKeys(d.def.Keys...)
		t = et
	} else {
		t = edm.NewComplexType(b.fixture.Namespace, d.def.Name, base).
			SetAbstract(d.def.Abstract).
			SetOpen(d.def.Open)
	}
	b.structured[name] = t
	return t, nil
}

func (b *builder) members(name string) {
	d := b.defs[name]
	switch t := b.structured[name].(type) {
	case *edm.EntityType:
		for _, p := range d.def.Properties {
			t.AddStructuralProperty(p.Name, b.typeRef(p.Type, p.Nullable))
		}
		for _, n := range d.def.Navigation {
			target, _ := b.structuredType(b.qualify(n.Target))
			t.AddNavigationProperty(edm.NavigationPropertyInfo{
				Name:           n.Name,
				Target:         target,
				Collection:     n.Collection,
				Nullable:       n.Nullable,
				ContainsTarget: n.Contains,
			})
		}
	case *edm.ComplexType:
		for _, p := range d.def.Properties {
			t.AddStructuralProperty(p.Name, b.typeRef(p.Type, p.Nullable))
		}
	}
}

// typeRef resolves "Edm.String", "Person", "NS.Person" or "Collection(...)".
// Unknown names resolve to placeholders.
func (b *builder) typeRef(name string, nullable bool) edm.TypeReference {
	if name == "" {
		return edm.TypeReference{}
	}
	if edm.IsCollectionTypeName(name) {
		inner := strings.TrimSuffix(strings.TrimPrefix(name, "Collection("), ")")
		return edm.CollectionRef(b.typeRef(inner, false))
	}
	qualified := b.qualify(name)
	if t, ok := b.structured[qualified]; ok {
		return edm.Ref(t, nullable)
	}
	return edm.Ref(b.resolver.ResolveType(qualified, b.location(qualified)), nullable)
}

func (b *builder) location(name string) errors.Location {
	return errors.Location{Source: b.fixture.Namespace + ":" + name}
}

func (b *builder) operations() error {
	ns := b.fixture.Namespace
	for _, o := range b.fixture.Operations {
		params := make([]*edm.OperationParameter, len(o.Parameters))
		for i, p := range o.Parameters {
			params[i] = edm.NewParameter(p.Name, b.typeRef(p.Type, true))
		}
		ret := b.typeRef(o.Return, true)

		var op edm.SchemaElement
		switch strings.ToLower(o.Kind) {
		case "action":
			op = edm.NewAction(ns, o.Name, ret, o.Bound, params...)
		case "function", "":
			op = edm.NewFunction(ns, o.Name, ret, o.Bound, o.Composable, params...)
		default:
			return fmt.Errorf("operation %s: unknown kind %q", o.Name, o.Kind)
		}
		if err := b.catalog.Register(op); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) terms() error {
	for _, t := range b.fixture.Terms {
		term := edm.NewValueTerm(b.fixture.Namespace, t.Name, b.typeRef(t.Type, true)).
			SetAppliesTo(t.AppliesTo).
			SetDefaultValue(t.Default)
		if err := b.catalog.Register(term); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) container() error {
	c := b.fixture.Container
	if c == nil {
		return nil
	}

	ec := edm.NewEntityContainer(b.fixture.Namespace, c.Name)
	for _, s := range c.EntitySets {
		t, _ := b.structuredType(b.qualify(s.Type))
		ec.AddEntitySet(s.Name, t)
	}
	for _, s := range c.Singletons {
		t, _ := b.structuredType(b.qualify(s.Type))
		ec.AddSingleton(s.Name, t)
	}
	return b.catalog.Register(ec)
}

func requestPath(segments []SegmentDef) (token.Token, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	parts := make([]token.Part, 0, len(segments))
	for i, s := range segments {
		switch {
		case s.ID != "":
			parts = append(parts, token.Ident(s.ID))
		case s.Cast != "":
			parts = append(parts, token.Cast(s.Cast))
		case s.System != "":
			parts = append(parts, token.System(s.System))
		case s.Key != nil:
			values, err := keyValues(s.Key)
			if err != nil {
				return nil, fmt.Errorf("request path segment %d: %w", i, err)
			}
			parts = append(parts, token.CompositeKey(values...))
		default:
			return nil, fmt.Errorf("request path segment %d: one of id, cast, key or system is required", i)
		}
	}
	return token.Build(parts...)
}

// keyValues accepts a scalar or a list of {name, value} maps.
func keyValues(raw any) ([]literal.KeyValue, error) {
	list, ok := raw.([]any)
	if !ok {
		return []literal.KeyValue{{Value: raw}}, nil
	}

	values := make([]literal.KeyValue, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("composite key parts must be {name, value} maps, got %T", item)
		}
		name, _ := m["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("composite key part without a name")
		}
		values = append(values, literal.KeyValue{Name: name, Value: m["value"]})
	}
	return values, nil
}

func clause(selects []string, expands []ExpandDef) *selectexpand.Clause {
	c := selectexpand.NewClause()
	for _, s := range selects {
		switch {
		case s == "*":
			c.Add(selectexpand.SelectAll())
		case strings.HasSuffix(s, ".*"):
			c.Add(selectexpand.SelectNamespace(strings.TrimSuffix(s, ".*")))
		default:
			c.Add(selectexpand.Select(strings.Split(s, "/")...))
		}
	}
	for _, e := range expands {
		c.Add(&selectexpand.ExpandItem{
			Path:  strings.Split(e.Name, "/"),
			Child: clause(e.Select, e.Expand),
		})
	}
	return c
}
