package contexturl

import (
	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/uri/path"
)

// Info holds the parts of a context URL. It is built per response and
// handed to the writer, which assembles and escapes the final URL.
type Info struct {
	builder *Builder

	isContained                 bool
	navigationSource            string
	typeName                    string
	typeCast                    string
	hasTypeCast                 bool
	includeFragmentItemSelector bool
	query                       *BoundQuery
}

// TypeName returns the type of the described payload.
func (i *Info) TypeName() string { return i.typeName }

// TypeCast returns the expected entity type when it differs from the
// navigation source's entity type.
func (i *Info) TypeCast() (string, bool) { return i.typeCast, i.hasTypeCast }

// IncludeFragmentItemSelector reports whether the URL ends in "/$entity":
// a single entity read from a collection-valued source.
func (i *Info) IncludeFragmentItemSelector() bool { return i.includeFragmentItemSelector }

// IsContained reports whether the source is a contained entity set.
func (i *Info) IsContained() bool { return i.isContained }

// NavigationSource returns the plain navigation source name.
func (i *Info) NavigationSource() string { return i.navigationSource }

// NavigationPath returns the path to the navigation source. For a
// contained entity set with a bound request path, it is that path without
// a trailing type cast or key, which must then end in a navigation
// property. Otherwise it is the navigation source name.
func (i *Info) NavigationPath() (string, error) {
	if !i.isContained || i.query == nil || i.query.Path.IsEmpty() {
		return i.navigationSource, nil
	}

	trimmed := i.query.Path.TrimEndingTypeSegment().TrimEndingKeySegment()
	if _, ok := trimmed.LastSegment().(*path.NavigationPropertySegment); !ok {
		return "", i.builder.fail(sourceNavigationSource, errors.NewContainedPath(trimmed.ResourcePathString()))
	}
	return trimmed.ResourcePathString(), nil
}

// ResourcePath returns the request path when it addresses an individual
// property, and "" otherwise.
func (i *Info) ResourcePath() string {
	if i.query == nil || !i.query.Path.IsIndividualProperty() {
		return ""
	}
	return i.query.Path.ResourcePathString()
}

// QueryClause returns the select/expand projection, e.g. "(Name,Friends(Id))".
// It reports false when there is no bound query or nothing is projected.
func (i *Info) QueryClause() (string, bool) {
	if i.query == nil {
		return "", false
	}
	clause := i.builder.projector.Project(i.query.SelectExpand)
	return clause, clause != ""
}
