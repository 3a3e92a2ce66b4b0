// Package binder resolves token chains and select/expand trees against a
// catalog, producing bound paths.
package binder

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/conduit-lang/odatacore/internal/edm"
	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/uri/path"
	"github.com/conduit-lang/odatacore/internal/uri/selectexpand"
	"github.com/conduit-lang/odatacore/internal/uri/token"
)

// Binder binds request input against one catalog and everything it references.
type Binder struct {
	resolver *edm.Resolver
	logger   *zap.Logger
}

// Option configures a Binder.
type Option func(*Binder)

// WithLogger sets the logger used for binding diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Binder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a binder for catalog.
func New(catalog *edm.Catalog, opts ...Option) *Binder {
	b := &Binder{resolver: edm.NewResolver(catalog), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Bind binds a token chain against catalog with a default binder.
func Bind(catalog *edm.Catalog, head token.Token) (*path.Path, error) {
	if catalog == nil {
		return nil, errors.NewArgument("catalog")
	}
	return New(catalog).BindPath(head)
}

// BindPath walks the chain from head and returns the bound path. Unknown
// type casts bind to placeholders; anything else that does not fit the
// schema fails with a shape violation.
func (b *Binder) BindPath(head token.Token) (*path.Path, error) {
	if head == nil {
		return nil, errors.NewArgument("head")
	}

	s := &pathState{binder: b, path: path.New()}
	if err := token.Walk(head, s); err != nil {
		b.logger.Debug("path binding failed",
			zap.String("path", token.String(head)),
			zap.Error(err),
		)
		return nil, err
	}
	return s.path, nil
}

// pathState is the ActionVisitor that accumulates a bound path.
type pathState struct {
	binder *Binder
	path   *path.Path

	// structured is the type addressed so far, nil once the path leaves
	// structured values.
	structured edm.StructuredType
	valueType  edm.Type
	collection bool
	source     edm.NavigationSource
	terminal   bool
}

func (s *pathState) push(seg path.Segment) {
	s.path = s.path.Append(seg)
}

func (s *pathState) check(id string) error {
	if s.terminal {
		return errors.NewInvalidSegment(id, fmt.Sprintf("no segment may follow %q", s.path.LastSegment().Identifier()))
	}
	return nil
}

func (s *pathState) VisitIdentifier(t *token.IdentifierToken) error {
	if err := s.check(t.Identifier()); err != nil {
		return err
	}
	if s.path.IsEmpty() {
		return s.bindSource(t)
	}

	id := t.Identifier()
	if s.structured == nil {
		return errors.NewInvalidSegment(id, "the preceding segment is not a structured value")
	}
	if s.collection {
		return errors.NewInvalidSegment(id, "properties of a collection need a key segment first")
	}

	prop, ok := s.structured.FindProperty(id)
	if !ok {
		if s.structured.IsOpen() {
			s.push(&path.DynamicPropertySegment{Name: id})
			s.structured, s.valueType, s.collection = nil, nil, false
			return nil
		}
		return unknownProperty(s.structured, id)
	}

	switch p := prop.(type) {
	case *edm.NavigationProperty:
		var source edm.NavigationSource
		if p.ContainsTarget() && s.source != nil {
			source = edm.NewContainedEntitySet(s.source, p)
		}
		s.push(&path.NavigationPropertySegment{Property: p, Source: source})
		s.structured, s.valueType, s.collection, s.source = p.Target(), p.Type().Definition, p.IsCollection(), source
	case *edm.StructuralProperty:
		s.push(&path.PropertySegment{Property: p})
		s.bindValue(p.Type())
	default:
		return errors.NewInvalidSegment(id, "unsupported property kind")
	}
	return nil
}

func (s *pathState) bindSource(t *token.IdentifierToken) error {
	container, ok := s.binder.resolver.EntityContainer()
	if !ok {
		return errors.NewNoContainer()
	}

	name := t.Identifier()
	if t.IsNamespaceOrContainerQualified() {
		name = trimContainer(container, name)
	}
	source, ok := container.FindNavigationSource(name)
	if !ok {
		err := errors.NewInvalidSegment(t.Identifier(),
			fmt.Sprintf("container %s has no entity set or singleton with this name", edm.FullName(container)))
		if hint := didYouMean(name, sourceNames(container)); hint != "" {
			err = err.WithSuggestion(hint)
		}
		return err
	}

	switch src := source.(type) {
	case *edm.EntitySet:
		s.push(&path.EntitySetSegment{Set: src})
		s.collection = true
	case *edm.Singleton:
		s.push(&path.SingletonSegment{Singleton: src})
		s.collection = false
	default:
		return errors.NewInvalidSegment(name, "unsupported navigation source")
	}
	s.structured, s.valueType, s.source = source.EntityType(), source.EntityType(), source
	return nil
}

// trimContainer strips a leading "Container." or "NS.Container." qualifier.
func trimContainer(container edm.Container, name string) string {
	for _, prefix := range []string{edm.FullName(container) + ".", container.Name() + "."} {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			return rest
		}
	}
	return name
}

func (s *pathState) bindValue(ref edm.TypeReference) {
	s.valueType = ref.Definition
	s.collection = ref.IsCollection()
	elem := ref.Definition
	if c, ok := elem.(*edm.CollectionType); ok {
		elem = c.ElementType().Definition
	}
	s.structured, _ = elem.(edm.StructuredType)
}

func (s *pathState) VisitKey(t *token.KeyToken) error {
	if err := s.check(t.Identifier()); err != nil {
		return err
	}
	if s.path.IsEmpty() || !s.collection || s.structured == nil {
		return errors.NewInvalidSegment("("+t.Identifier()+")", "a key must follow a collection of entities")
	}
	entityType, ok := s.structured.(*edm.EntityType)
	if ok && len(t.Values()) > 1 && len(t.Values()) != len(entityType.Keys()) {
		return errors.NewInvalidSegment("("+t.Identifier()+")",
			fmt.Sprintf("%s has %d key properties", edm.FullName(entityType), len(entityType.Keys())))
	}

	s.push(&path.KeySegment{Keys: t.Values(), EntityType: s.structured, Source: s.source})
	s.collection = false
	s.valueType = s.structured
	return nil
}

func (s *pathState) VisitTypeCast(t *token.TypeCastToken) error {
	if err := s.check(t.Identifier()); err != nil {
		return err
	}
	if s.path.IsEmpty() {
		return errors.NewInvalidSegment(t.Identifier(), "a type cast cannot start a path")
	}

	cast := s.binder.resolver.ResolveType(t.Identifier(), errors.Location{})
	s.push(&path.TypeSegment{Type: cast, Collection: s.collection})
	if edm.IsUnresolved(cast) {
		return nil
	}

	derived, ok := cast.(edm.StructuredType)
	if !ok || s.structured == nil {
		if s.valueType != nil && !edm.IsEquivalentTo(cast, s.valueType) {
			return errors.NewInvalidSegment(t.Identifier(), "the cast does not match the value type")
		}
		return nil
	}
	if !edm.IsOrInheritsFrom(derived, s.structured) {
		return errors.NewInvalidSegment(t.Identifier(),
			fmt.Sprintf("%s does not derive from %s", edm.FullName(derived), edm.FullName(s.structured)))
	}
	s.structured = derived
	s.valueType = derived
	return nil
}

func (s *pathState) VisitSystem(t *token.SystemToken) error {
	if err := s.check(t.Identifier()); err != nil {
		return err
	}

	switch t.Identifier() {
	case "$count":
		if !s.collection {
			return errors.NewInvalidSegment(t.Identifier(), "$count must follow a collection")
		}
		s.push(path.CountSegment{})
	case "$value":
		if s.path.IsEmpty() || s.collection {
			return errors.NewInvalidSegment(t.Identifier(), "$value must follow a single value")
		}
		s.push(path.ValueSegment{Type: s.valueType})
	default:
		return errors.NewInvalidSegment(t.Identifier(), "unsupported system segment")
	}
	s.terminal = true
	s.structured, s.collection = nil, false
	return nil
}

// BindSelectExpand checks every select and expand path of c against typ.
// Select paths must end in a property (or any name on an open type);
// expand paths must end in a navigation property, and their nested clauses
// are checked against its target. Paths through an unknown type cast are
// not checked past the cast.
func (b *Binder) BindSelectExpand(typ edm.StructuredType, c *selectexpand.Clause) error {
	if typ == nil {
		return errors.NewArgument("typ")
	}

	for _, item := range c.Items() {
		switch it := item.(type) {
		case *selectexpand.PathSelectItem:
			if _, _, err := b.walkProperties(typ, it.Path); err != nil {
				return err
			}
		case *selectexpand.ExpandItem:
			prop, known, err := b.walkProperties(typ, it.Path)
			if err != nil {
				return err
			}
			if !known {
				continue
			}
			nav, ok := prop.(*edm.NavigationProperty)
			if !ok {
				return errors.NewInvalidSegment(it.Text(), "only navigation properties can be expanded")
			}
			if err := b.BindSelectExpand(nav.Target(), it.Child); err != nil {
				return err
			}
		}
	}
	return nil
}

// walkProperties follows a select or expand path and returns its last
// property. known is false when the path ends in a dynamic property or
// passes through a cast to an unknown type.
func (b *Binder) walkProperties(typ edm.StructuredType, segments []string) (last edm.Property, known bool, err error) {
	if len(segments) == 0 {
		return nil, false, errors.NewArgument("path")
	}

	current := typ
	for _, seg := range segments {
		if current == nil {
			return nil, false, errors.NewInvalidSegment(seg, "the preceding segment is not a structured value")
		}

		prop, ok := current.FindProperty(seg)
		switch {
		case ok:
			last = prop
			current = structuredOf(prop)
		case strings.Contains(seg, "."):
			cast := b.resolver.ResolveStructuredType(seg, errors.Location{})
			if edm.IsUnresolved(cast) {
				return nil, false, nil
			}
			if !edm.IsOrInheritsFrom(cast, current) {
				return nil, false, errors.NewInvalidSegment(seg,
					fmt.Sprintf("%s does not derive from %s", edm.FullName(cast), edm.FullName(current)))
			}
			current = cast
		case current.IsOpen():
			return nil, false, nil
		default:
			return nil, false, unknownProperty(current, seg)
		}
	}
	return last, last != nil, nil
}

func unknownProperty(t edm.StructuredType, name string) error {
	err := errors.NewUnknownProperty(edm.FullName(t), name)
	if hint := didYouMean(name, propertyNames(t)); hint != "" {
		err = err.WithSuggestion(hint)
	}
	return err
}

func structuredOf(p edm.Property) edm.StructuredType {
	if nav, ok := p.(*edm.NavigationProperty); ok {
		return nav.Target()
	}
	t := p.Type().Definition
	if c, ok := t.(*edm.CollectionType); ok {
		t = c.ElementType().Definition
	}
	st, _ := t.(edm.StructuredType)
	return st
}
