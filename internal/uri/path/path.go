package path

import (
	"strings"

	"github.com/conduit-lang/odatacore/internal/edm"
)

// Path is an immutable sequence of bound segments. Operations that trim
// return a new Path sharing no state with the receiver.
type Path struct {
	segments []Segment
}

// New creates a path from segments in request order.
func New(segments ...Segment) *Path {
	return &Path{segments: append([]Segment(nil), segments...)}
}

// Segments returns a copy of the segments.
func (p *Path) Segments() []Segment {
	if p == nil {
		return nil
	}
	return append([]Segment(nil), p.segments...)
}

// Len returns the number of segments.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.segments)
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool { return p.Len() == 0 }

// FirstSegment returns the first segment, or nil for an empty path.
func (p *Path) FirstSegment() Segment {
	if p.IsEmpty() {
		return nil
	}
	return p.segments[0]
}

// LastSegment returns the last segment, or nil for an empty path.
func (p *Path) LastSegment() Segment {
	if p.IsEmpty() {
		return nil
	}
	return p.segments[len(p.segments)-1]
}

// Append returns a new path with seg added at the end.
func (p *Path) Append(seg Segment) *Path {
	return New(append(p.Segments(), seg)...)
}

// TrimEndingTypeSegment drops one trailing type segment, if present.
func (p *Path) TrimEndingTypeSegment() *Path {
	if _, ok := p.LastSegment().(*TypeSegment); ok {
		return New(p.segments[:len(p.segments)-1]...)
	}
	return New(p.Segments()...)
}

// TrimEndingKeySegment drops one trailing key segment, if present.
func (p *Path) TrimEndingKeySegment() *Path {
	if _, ok := p.LastSegment().(*KeySegment); ok {
		return New(p.segments[:len(p.segments)-1]...)
	}
	return New(p.Segments()...)
}

// IsIndividualProperty reports whether the path ends, ignoring a trailing
// type cast, in a single-valued declared property or a dynamic property.
func (p *Path) IsIndividualProperty() bool {
	switch s := p.TrimEndingTypeSegment().LastSegment().(type) {
	case *PropertySegment:
		return !s.Property.Type().IsCollection()
	case *DynamicPropertySegment:
		return true
	default:
		return false
	}
}

// NavigationSource returns the navigation source addressed by the path:
// the source of the last entity set, singleton or navigation segment.
func (p *Path) NavigationSource() (edm.NavigationSource, bool) {
	for i := p.Len() - 1; i >= 0; i-- {
		switch s := p.segments[i].(type) {
		case *EntitySetSegment:
			return s.Set, true
		case *SingletonSegment:
			return s.Singleton, true
		case *NavigationPropertySegment:
			if s.Source != nil {
				return s.Source, true
			}
			return nil, false
		}
	}
	return nil, false
}

// ResourcePathString renders the path as it appears in a URL: segments
// joined by "/", with key predicates attached to the preceding segment.
func (p *Path) ResourcePathString() string {
	var b strings.Builder
	for _, seg := range p.Segments() {
		if _, ok := seg.(*KeySegment); !ok && b.Len() > 0 {
			b.WriteByte('/')
		}
		b.WriteString(seg.Identifier())
	}
	return b.String()
}

// String returns the resource path.
func (p *Path) String() string { return p.ResourcePathString() }
