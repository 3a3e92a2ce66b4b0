package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/odatacore/internal/edm"
	"github.com/conduit-lang/odatacore/internal/edm/edmtest"
	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/uri/literal"
	"github.com/conduit-lang/odatacore/internal/uri/path"
	"github.com/conduit-lang/odatacore/internal/uri/selectexpand"
	"github.com/conduit-lang/odatacore/internal/uri/token"
)

func chain(t *testing.T, parts ...token.Part) token.Token {
	t.Helper()
	head, err := token.Build(parts...)
	require.NoError(t, err)
	return head
}

func TestBindPath(t *testing.T) {
	m := edmtest.New(t)

	tests := []struct {
		name  string
		parts []token.Part
		want  string
		last  path.Segment
	}{
		{"entity set", []token.Part{token.Ident("People")}, "People", &path.EntitySetSegment{}},
		{"container qualified", []token.Part{token.Ident("Sample.Default.People")}, "People", &path.EntitySetSegment{}},
		{"singleton", []token.Part{token.Ident("Me")}, "Me", &path.SingletonSegment{}},
		{"key", []token.Part{token.Ident("People"), token.Key(1)}, "People(1)", &path.KeySegment{}},
		{"property", []token.Part{token.Ident("People"), token.Key(1), token.Ident("Name")}, "People(1)/Name", &path.PropertySegment{}},
		{"complex then nested", []token.Part{token.Ident("Me"), token.Ident("Home"), token.Ident("City")}, "Me/Home/City", &path.PropertySegment{}},
		{
			"cast then derived property",
			[]token.Part{token.Ident("People"), token.Key(1), token.Cast("Sample.Employee"), token.Ident("Salary")},
			"People(1)/Sample.Employee/Salary",
			&path.PropertySegment{},
		},
		{"navigation", []token.Part{token.Ident("Me"), token.Ident("Friends")}, "Me/Friends", &path.NavigationPropertySegment{}},
		{"count", []token.Part{token.Ident("People"), token.System("$count")}, "People/$count", path.CountSegment{}},
		{"value", []token.Part{token.Ident("Me"), token.Ident("Name"), token.System("$value")}, "Me/Name/$value", path.ValueSegment{}},
		{"dynamic", []token.Part{token.Ident("Bags"), token.Key(1), token.Ident("Anything")}, "Bags(1)/Anything", &path.DynamicPropertySegment{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Bind(m.Catalog, chain(t, tt.parts...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.ResourcePathString())
			assert.IsType(t, tt.last, p.LastSegment())
		})
	}
}

func TestBindContainedNavigation(t *testing.T) {
	m := edmtest.New(t)

	p, err := Bind(m.Catalog, chain(t, token.Ident("Orders"), token.Key("1"), token.Ident("Items"), token.Key(2)))
	require.NoError(t, err)

	source, ok := p.NavigationSource()
	require.True(t, ok)
	assert.Equal(t, edm.NavigationSourceContainedEntitySet, source.NavigationSourceKind())
	assert.Equal(t, "Items", source.Name())

	nav, ok := p.TrimEndingKeySegment().LastSegment().(*path.NavigationPropertySegment)
	require.True(t, ok)
	assert.Same(t, m.Items, nav.Property)
	assert.Equal(t, "Orders('1')/Items(2)", p.ResourcePathString())
}

func TestBindUnknownCastIsSoft(t *testing.T) {
	m := edmtest.New(t)

	p, err := Bind(m.Catalog, chain(t, token.Ident("People"), token.Cast("Sample.Missing")))
	require.NoError(t, err)

	seg, ok := p.LastSegment().(*path.TypeSegment)
	require.True(t, ok)
	assert.True(t, edm.IsUnresolved(seg.Type))
	assert.Equal(t, "People/Sample.Missing", p.ResourcePathString())
}

func TestBindPathFailures(t *testing.T) {
	m := edmtest.New(t)

	tests := []struct {
		name  string
		parts []token.Part
		code  errors.ErrorCode
	}{
		{"unknown source", []token.Part{token.Ident("Nope")}, errors.ErrInvalidSegment},
		{"unknown property", []token.Part{token.Ident("Me"), token.Ident("Nope")}, errors.ErrUnknownProperty},
		{"property of collection", []token.Part{token.Ident("People"), token.Ident("Name")}, errors.ErrInvalidSegment},
		{"key on single", []token.Part{token.Ident("Me"), token.Key(1)}, errors.ErrInvalidSegment},
		{"unrelated cast", []token.Part{token.Ident("People"), token.Cast("Sample.Order")}, errors.ErrInvalidSegment},
		{"count on single", []token.Part{token.Ident("Me"), token.System("$count")}, errors.ErrInvalidSegment},
		{"after count", []token.Part{token.Ident("People"), token.System("$count"), token.Ident("X")}, errors.ErrInvalidSegment},
		{"unknown system", []token.Part{token.Ident("People"), token.System("$batch")}, errors.ErrInvalidSegment},
		{"leading cast", []token.Part{token.Cast("Sample.Person")}, errors.ErrInvalidSegment},
		{
			"composite key arity",
			[]token.Part{token.Ident("People"), token.CompositeKey(literal.KeyValue{Name: "A", Value: 1}, literal.KeyValue{Name: "B", Value: 2})},
			errors.ErrInvalidSegment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Bind(m.Catalog, chain(t, tt.parts...))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrShapeViolation)

			var e *errors.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.code, e.Code)
		})
	}
}

func TestBindWithoutContainer(t *testing.T) {
	_, err := Bind(edm.NewCatalog(nil), chain(t, token.Ident("People")))
	assert.ErrorIs(t, err, errors.ErrShapeViolation)

	_, err = Bind(nil, chain(t, token.Ident("People")))
	assert.ErrorIs(t, err, errors.ErrArgument)

	_, err = New(edm.NewCatalog(nil)).BindPath(nil)
	assert.ErrorIs(t, err, errors.ErrArgument)
}

func TestBindSelectExpand(t *testing.T) {
	m := edmtest.New(t)
	b := New(m.Catalog)

	ok := []*selectexpand.Clause{
		selectexpand.NewClause(selectexpand.Select("Name"), selectexpand.Select("Age")),
		selectexpand.NewClause(selectexpand.Expand("Friends", selectexpand.NewClause(selectexpand.Select("Id")))),
		selectexpand.NewClause(selectexpand.Select("Sample.Employee", "Salary")),
		selectexpand.NewClause(selectexpand.Select("Home", "City")),
		selectexpand.NewClause(selectexpand.SelectAll(), selectexpand.SelectNamespace("Sample")),
		selectexpand.NewClause(selectexpand.Select("Sample.Missing", "Whatever")),
	}
	for _, c := range ok {
		assert.NoError(t, b.BindSelectExpand(m.Person, c), selectexpand.Project(c))
	}

	bad := []*selectexpand.Clause{
		selectexpand.NewClause(selectexpand.Select("Nope")),
		selectexpand.NewClause(selectexpand.Expand("Name", nil)),
		selectexpand.NewClause(selectexpand.Expand("Friends", selectexpand.NewClause(selectexpand.Select("Nope")))),
		selectexpand.NewClause(selectexpand.Select("Sample.Order", "Id")),
	}
	for _, c := range bad {
		assert.ErrorIs(t, b.BindSelectExpand(m.Person, c), errors.ErrShapeViolation, selectexpand.Project(c))
	}

	assert.NoError(t, b.BindSelectExpand(m.Bag, selectexpand.NewClause(selectexpand.Select("Anything"))))
	assert.ErrorIs(t, b.BindSelectExpand(nil, nil), errors.ErrArgument)
}

func TestUnknownNamesCarrySuggestions(t *testing.T) {
	m := edmtest.New(t)

	_, err := Bind(m.Catalog, chain(t, token.Ident("Me"), token.Ident("Emials")))
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "did you mean Emails?", e.Suggestion)

	_, err = Bind(m.Catalog, chain(t, token.Ident("Peeple")))
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "did you mean People?", e.Suggestion)

	_, err = Bind(m.Catalog, chain(t, token.Ident("Me"), token.Ident("Completely")))
	require.ErrorAs(t, err, &e)
	assert.Empty(t, e.Suggestion)
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 3, levenshtein("saturday", "sunday"))
	assert.Equal(t, 4, levenshtein("", "abcd"))
	assert.Equal(t, 0, levenshtein("same", "same"))
	assert.Equal(t, []string{"Name", "Age"}, similar("nme", []string{"Age", "Name", "Friends"}))
}
