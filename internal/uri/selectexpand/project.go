package selectexpand

import (
	"strings"
)

// Projector renders a clause in context-URL projection form.
type Projector struct {
	// OmitBareExpansions drops expanded navigation properties that select
	// nothing underneath, instead of listing them by name.
	OmitBareExpansions bool
}

// Project renders c with the default projector.
func Project(c *Clause) string {
	return Projector{}.Project(c)
}

// Project renders c as "(a,b,Nav(c))". Selected items come first, then
// expansions, each group in declaration order. An empty projection renders
// as "" and never as "()".
func (p Projector) Project(c *Clause) string {
	content := p.content(c)
	if content == "" {
		return ""
	}
	return "(" + content + ")"
}

func (p Projector) content(c *Clause) string {
	if c.IsEmpty() {
		return ""
	}

	var parts []string
	for _, item := range c.SelectedItems() {
		if text := selectText(item); text != "" {
			parts = append(parts, text)
		}
	}
	for _, e := range c.ExpandedItems() {
		if text := p.expandText(e); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, ",")
}

func (p Projector) expandText(e *ExpandItem) string {
	sub := p.content(e.Child)
	switch {
	case sub != "":
		return e.Text() + "(" + sub + ")"
	case p.OmitBareExpansions:
		return ""
	default:
		return e.Text()
	}
}

func selectText(item Item) string {
	switch s := item.(type) {
	case *PathSelectItem:
		return s.Text()
	case WildcardSelectItem:
		return s.Text()
	case *NamespaceWildcardSelectItem:
		return s.Text()
	default:
		return ""
	}
}
