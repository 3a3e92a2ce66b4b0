// Package selectexpand models the bound $select/$expand tree of a request
// and renders it as the projection part of a context URL.
package selectexpand

import (
	"strings"
)

// Item is one entry of a select/expand clause.
type Item interface {
	isItem()
}

// PathSelectItem selects a property, optionally through type casts,
// e.g. ["Sample.Employee", "Salary"].
type PathSelectItem struct {
	Path []string
}

// WildcardSelectItem is "*".
type WildcardSelectItem struct{}

// NamespaceWildcardSelectItem is "NS.*": every operation of a namespace.
type NamespaceWildcardSelectItem struct {
	Namespace string
}

// ExpandItem expands a navigation path with a nested clause.
type ExpandItem struct {
	Path  []string
	Child *Clause
}

func (*PathSelectItem) isItem()              {}
func (WildcardSelectItem) isItem()           {}
func (*NamespaceWildcardSelectItem) isItem() {}
func (*ExpandItem) isItem()                  {}

// Text renders the selected path, segments joined by "/".
func (s *PathSelectItem) Text() string { return strings.Join(s.Path, "/") }

// Text renders "*".
func (WildcardSelectItem) Text() string { return "*" }

// Text renders "NS.*".
func (s *NamespaceWildcardSelectItem) Text() string { return s.Namespace + ".*" }

// Text renders the expanded navigation path.
func (e *ExpandItem) Text() string { return strings.Join(e.Path, "/") }

// Clause is a select/expand tree level. Items keep their declaration order.
type Clause struct {
	items []Item
}

// NewClause creates a clause from items in declaration order.
func NewClause(items ...Item) *Clause {
	c := &Clause{}
	for _, item := range items {
		c.Add(item)
	}
	return c
}

// Add appends an item. Nil items, typed or not, are ignored.
func (c *Clause) Add(item Item) *Clause {
	if !isNilItem(item) {
		c.items = append(c.items, item)
	}
	return c
}

func isNilItem(item Item) bool {
	switch v := item.(type) {
	case nil:
		return true
	case *PathSelectItem:
		return v == nil
	case *NamespaceWildcardSelectItem:
		return v == nil
	case *ExpandItem:
		return v == nil
	default:
		return false
	}
}

// Items returns all items in declaration order.
func (c *Clause) Items() []Item {
	if c == nil {
		return nil
	}
	return append([]Item(nil), c.items...)
}

// SelectedItems returns the select items in declaration order.
func (c *Clause) SelectedItems() []Item {
	var out []Item
	for _, item := range c.Items() {
		if _, ok := item.(*ExpandItem); !ok {
			out = append(out, item)
		}
	}
	return out
}

// ExpandedItems returns the expand items in declaration order.
func (c *Clause) ExpandedItems() []*ExpandItem {
	var out []*ExpandItem
	for _, item := range c.Items() {
		if e, ok := item.(*ExpandItem); ok {
			out = append(out, e)
		}
	}
	return out
}

// IsEmpty reports whether the clause selects and expands nothing.
func (c *Clause) IsEmpty() bool {
	return c == nil || len(c.items) == 0
}

// Select creates a select item for a property path.
func Select(path ...string) *PathSelectItem {
	return &PathSelectItem{Path: path}
}

// SelectAll creates a "*" item.
func SelectAll() WildcardSelectItem {
	return WildcardSelectItem{}
}

// SelectNamespace creates a "NS.*" item.
func SelectNamespace(namespace string) *NamespaceWildcardSelectItem {
	return &NamespaceWildcardSelectItem{Namespace: namespace}
}

// Expand creates an expand item for a navigation property with a nested clause.
func Expand(name string, child *Clause) *ExpandItem {
	return &ExpandItem{Path: []string{name}, Child: child}
}
