package edm

import (
	"iter"

	"go.uber.org/zap"

	"github.com/conduit-lang/odatacore/internal/errors"
)

// Resolver looks names up across a catalog and everything it references,
// directly or transitively. Where a Find method reports a miss, the matching
// Resolve method hands out a placeholder instead, so a broken reference
// never aborts loading or binding. Placeholders are never stored.
type Resolver struct {
	root     *Catalog
	catalogs []*Catalog
}

// NewResolver creates a resolver rooted at root. Referenced catalogs are
// searched breadth-first after root; each catalog is visited once.
func NewResolver(root *Catalog) *Resolver {
	r := &Resolver{root: root}
	if root == nil {
		return r
	}

	visited := map[*Catalog]bool{root: true}
	queue := []*Catalog{root}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		r.catalogs = append(r.catalogs, c)
		for _, ref := range c.referenced {
			if !visited[ref] {
				visited[ref] = true
				queue = append(queue, ref)
			}
		}
	}
	return r
}

// Catalogs returns the catalogs searched, in search order.
func (r *Resolver) Catalogs() []*Catalog {
	return append([]*Catalog(nil), r.catalogs...)
}

// FindType finds a type in any reachable catalog.
func (r *Resolver) FindType(qualifiedName string) (SchemaType, bool) {
	for _, c := range r.catalogs {
		if t, ok := c.FindDeclaredType(qualifiedName); ok {
			return t, true
		}
	}
	return nil, false
}

// ResolveType returns the type named qualifiedName or an UnresolvedType.
func (r *Resolver) ResolveType(qualifiedName string, loc errors.Location) SchemaType {
	if t, ok := r.FindType(qualifiedName); ok {
		return t
	}
	r.unresolved("type", qualifiedName)
	return NewUnresolvedType(qualifiedName, loc)
}

// ResolveStructuredType returns the structured type named qualifiedName or
// an UnresolvedEntityType when it is missing or not structured.
func (r *Resolver) ResolveStructuredType(qualifiedName string, loc errors.Location) StructuredType {
	if t, ok := r.FindType(qualifiedName); ok {
		if st, ok := t.(StructuredType); ok {
			return st
		}
	}
	r.unresolved("entity type", qualifiedName)
	return NewUnresolvedEntityType(qualifiedName, loc)
}

// FindValueTerm finds a term in any reachable catalog.
func (r *Resolver) FindValueTerm(qualifiedName string) (Term, bool) {
	for _, c := range r.catalogs {
		if t, ok := c.FindDeclaredValueTerm(qualifiedName); ok {
			return t, true
		}
	}
	return nil, false
}

// ResolveValueTerm returns the term named qualifiedName or an UnresolvedValueTerm.
func (r *Resolver) ResolveValueTerm(qualifiedName string, loc errors.Location) Term {
	if t, ok := r.FindValueTerm(qualifiedName); ok {
		return t
	}
	r.unresolved("term", qualifiedName)
	return NewUnresolvedValueTerm(qualifiedName, loc)
}

// FindOperations returns the overloads of qualifiedName from every reachable catalog.
func (r *Resolver) FindOperations(qualifiedName string) []Operation {
	var ops []Operation
	for _, c := range r.catalogs {
		ops = append(ops, c.FindDeclaredOperations(qualifiedName)...)
	}
	return ops
}

// ResolveOperations returns the overloads of qualifiedName, or a single
// UnresolvedOperation when there are none.
func (r *Resolver) ResolveOperations(qualifiedName string, loc errors.Location) []Operation {
	if ops := r.FindOperations(qualifiedName); len(ops) > 0 {
		return ops
	}
	r.unresolved("operation", qualifiedName)
	return []Operation{NewUnresolvedOperation(qualifiedName, loc)}
}

// FindBoundOperations lazily yields bound operations invocable on bindingType from every reachable catalog.
func (r *Resolver) FindBoundOperations(bindingType Type) iter.Seq[Operation] {
	return func(yield func(Operation) bool) {
		for _, c := range r.catalogs {
			for op := range c.FindDeclaredBoundOperations(bindingType) {
				if !yield(op) {
					return
				}
			}
		}
	}
}

// FindEntityContainer finds a container by name in any reachable catalog.
func (r *Resolver) FindEntityContainer(qualifiedName string) (Container, bool) {
	for _, c := range r.catalogs {
		if ct, ok := c.FindDeclaredEntityContainer(qualifiedName); ok {
			return ct, true
		}
	}
	return nil, false
}

// ResolveEntityContainer returns the container named qualifiedName or an UnresolvedEntityContainer.
func (r *Resolver) ResolveEntityContainer(qualifiedName string, loc errors.Location) Container {
	if ct, ok := r.FindEntityContainer(qualifiedName); ok {
		return ct
	}
	r.unresolved("entity container", qualifiedName)
	return NewUnresolvedEntityContainer(qualifiedName, loc)
}

// EntityContainer returns the root catalog's container.
func (r *Resolver) EntityContainer() (Container, bool) {
	if r.root == nil {
		return nil, false
	}
	return r.root.EntityContainer()
}

func (r *Resolver) unresolved(kind, qualifiedName string) {
	if r.root == nil {
		return
	}
	r.root.metrics.RecordUnresolved(kind)
	r.root.logger.Debug("substituting placeholder for unresolved reference",
		zap.String("kind", kind),
		zap.String("name", qualifiedName),
	)
}
