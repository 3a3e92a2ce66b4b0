package path

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/odatacore/internal/edm"
	"github.com/conduit-lang/odatacore/internal/edm/edmtest"
	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/uri/literal"
)

func property(t *testing.T, typ edm.StructuredType, name string) *edm.StructuralProperty {
	t.Helper()
	p, ok := typ.FindProperty(name)
	require.True(t, ok, name)
	sp, ok := p.(*edm.StructuralProperty)
	require.True(t, ok, name)
	return sp
}

func key(v any) *KeySegment {
	return &KeySegment{Keys: []literal.KeyValue{{Value: v}}}
}

func TestResourcePathString(t *testing.T) {
	m := edmtest.New(t)
	id := uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301")

	tests := []struct {
		name string
		path *Path
		want string
	}{
		{"empty", New(), ""},
		{"entity set", New(&EntitySetSegment{Set: m.People}), "People"},
		{"string key", New(&EntitySetSegment{Set: m.Orders}, key("1")), "Orders('1')"},
		{"escaped key", New(&EntitySetSegment{Set: m.Orders}, key("O'1")), "Orders('O''1')"},
		{"guid key", New(&EntitySetSegment{Set: m.Orders}, key(id)), "Orders(3f2504e0-4f89-11d3-9a0c-0305e82c3301)"},
		{
			"composite key",
			New(&EntitySetSegment{Set: m.Orders}, &KeySegment{Keys: []literal.KeyValue{
				{Name: "Region", Value: "EU"},
				{Name: "Number", Value: 7},
			}}),
			"Orders(Region='EU',Number=7)",
		},
		{
			"contained navigation",
			New(&EntitySetSegment{Set: m.Orders}, key("1"), &NavigationPropertySegment{Property: m.Items}),
			"Orders('1')/Items",
		},
		{
			"type cast and property",
			New(&EntitySetSegment{Set: m.People}, key(5), &TypeSegment{Type: m.Employee}, &PropertySegment{Property: property(t, m.Employee, "Salary")}),
			"People(5)/Sample.Employee/Salary",
		},
		{"count", New(&EntitySetSegment{Set: m.People}, CountSegment{}), "People/$count"},
		{"singleton value", New(&SingletonSegment{Singleton: m.Me}, &PropertySegment{Property: property(t, m.Person, "Name")}, ValueSegment{}), "Me/Name/$value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.ResourcePathString())
		})
	}
}

func TestTrimEndingSegments(t *testing.T) {
	m := edmtest.New(t)
	nav := &NavigationPropertySegment{Property: m.Items}
	p := New(&EntitySetSegment{Set: m.Orders}, key("1"), nav, key(3), &TypeSegment{Type: m.Item})

	trimmed := p.TrimEndingTypeSegment().TrimEndingKeySegment()
	assert.Same(t, nav, trimmed.LastSegment())
	assert.Equal(t, "Orders('1')/Items", trimmed.ResourcePathString())

	// Only one segment is trimmed and the receiver is untouched.
	assert.Equal(t, 5, p.Len())
	twice := New(&EntitySetSegment{Set: m.People}, &TypeSegment{Type: m.Employee}, &TypeSegment{Type: m.Employee})
	assert.Equal(t, 2, twice.TrimEndingTypeSegment().Len())

	// Trimming a path without the segment kind returns an equal path.
	assert.Equal(t, p.ResourcePathString(), p.TrimEndingKeySegment().ResourcePathString())

	var empty *Path
	assert.Nil(t, empty.TrimEndingTypeSegment().LastSegment())
	assert.True(t, empty.IsEmpty())
}

func TestIsIndividualProperty(t *testing.T) {
	m := edmtest.New(t)
	people := &EntitySetSegment{Set: m.People}

	tests := []struct {
		name string
		path *Path
		want bool
	}{
		{"entity set", New(people), false},
		{"entity", New(people, key(1)), false},
		{"single-valued property", New(people, key(1), &PropertySegment{Property: property(t, m.Person, "Name")}), true},
		{"complex property", New(people, key(1), &PropertySegment{Property: property(t, m.Person, "Home")}), true},
		{"collection property", New(people, key(1), &PropertySegment{Property: property(t, m.Person, "Emails")}), false},
		{"property then cast", New(people, key(1), &PropertySegment{Property: property(t, m.Person, "Home")}, &TypeSegment{Type: m.Address}), true},
		{"dynamic property", New(&EntitySetSegment{Set: m.Bags}, key(1), &DynamicPropertySegment{Name: "Extra"}), true},
		{"navigation", New(people, key(1), &NavigationPropertySegment{Property: m.Friends}), false},
		{"count", New(people, CountSegment{}), false},
		{"empty", New(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.IsIndividualProperty())
		})
	}
}

func TestNavigationSource(t *testing.T) {
	m := edmtest.New(t)
	contained := edm.NewContainedEntitySet(m.Orders, m.Items)

	p := New(&EntitySetSegment{Set: m.Orders}, key("1"), &NavigationPropertySegment{Property: m.Items, Source: contained}, key(2))
	src, ok := p.NavigationSource()
	require.True(t, ok)
	assert.Same(t, contained, src)

	src, ok = New(&SingletonSegment{Singleton: m.Me}).NavigationSource()
	require.True(t, ok)
	assert.Equal(t, "Me", src.Name())

	_, ok = New().NavigationSource()
	assert.False(t, ok)
}

func TestSegmentTypes(t *testing.T) {
	m := edmtest.New(t)

	set := &EntitySetSegment{Set: m.People}
	assert.Equal(t, "Collection(Sample.Person)", edm.TypeName(set.EdmType()))
	assert.Equal(t, "Sample.Person", edm.TypeName((&SingletonSegment{Singleton: m.Me}).EdmType()))
	assert.Equal(t, "Collection(Sample.Person)", edm.TypeName((&NavigationPropertySegment{Property: m.Friends}).EdmType()))
	assert.Equal(t, "Collection(Sample.Employee)", edm.TypeName((&TypeSegment{Type: m.Employee, Collection: true}).EdmType()))
	assert.Equal(t, "Edm.Int32", edm.TypeName(CountSegment{}.EdmType()))
	assert.Nil(t, (&DynamicPropertySegment{Name: "X"}).EdmType())

	unresolved := &TypeSegment{Type: edm.NewUnresolvedType("Sample.Missing", errors.Location{})}
	assert.Equal(t, "Sample.Missing", unresolved.Identifier())
}
