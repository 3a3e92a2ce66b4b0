package edm

import "github.com/conduit-lang/odatacore/internal/errors"

// Validate reports every placeholder reachable from the catalog's registered
// elements: base types, property and navigation targets, operation parameter
// and return types, term types and container element types. It is the pass
// that surfaces unresolved references deferred during loading.
func (c *Catalog) Validate() errors.ErrorList {
	var list errors.ErrorList
	seen := make(map[Unresolved]bool)
	report := func(t any) {
		u, ok := t.(Unresolved)
		if ok && !seen[u] {
			seen[u] = true
			list = append(list, u.Diagnostic())
		}
	}
	reportRef := func(ref TypeReference) {
		for def := ref.Definition; def != nil; {
			report(def)
			coll, ok := def.(*CollectionType)
			if !ok {
				break
			}
			def = coll.ElementType().Definition
		}
	}

	for _, e := range c.elements {
		switch v := e.(type) {
		case StructuredType:
			if v.BaseType() != nil {
				report(v.BaseType())
			}
			for _, p := range v.DeclaredProperties() {
				reportRef(p.Type())
			}
		case Operation:
			for _, p := range v.Parameters() {
				reportRef(p.Type)
			}
			reportRef(v.ReturnType())
		case Term:
			reportRef(v.Type())
		case Container:
			for _, s := range v.NavigationSources() {
				report(s.EntityType())
			}
		}
	}
	return list
}
