package edm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/odatacore/internal/errors"
)

func TestUnresolvedPlaceholders(t *testing.T) {
	loc := errors.Location{Source: "schema.xml", Line: 12, Column: 4}

	t.Run("type", func(t *testing.T) {
		u := NewUnresolvedType("Test.Sub.Missing", loc)
		assert.Equal(t, "Missing", u.Name())
		assert.Equal(t, "Test.Sub", u.Namespace())
		assert.Equal(t, "Test.Sub.Missing", FullName(u))
		assert.Equal(t, TypeKindNone, u.TypeKind())
		assert.Equal(t, SchemaElementTypeDefinition, u.SchemaElementKind())
		assert.Equal(t, loc, u.Location())
		assert.Equal(t, errors.ErrUnresolvedType, u.Diagnostic().Code)
		assert.ErrorIs(t, u.Diagnostic(), errors.ErrUnresolved)
	})

	t.Run("entity type", func(t *testing.T) {
		var st StructuredType = NewUnresolvedEntityType("Test.Ghost", loc)
		assert.Equal(t, TypeKindEntity, st.TypeKind())
		assert.Nil(t, st.BaseType())
		assert.Empty(t, st.DeclaredProperties())
		_, ok := st.FindProperty("Id")
		assert.False(t, ok)
	})

	t.Run("operations", func(t *testing.T) {
		ops := []Operation{
			NewUnresolvedOperation("Test.Op", loc),
			NewUnresolvedAction("Test.Act", loc),
			NewUnresolvedFunction("Test.Fn", loc),
		}
		kinds := []SchemaElementKind{SchemaElementNone, SchemaElementAction, SchemaElementFunction}

		for i, op := range ops {
			assert.Equal(t, kinds[i], op.SchemaElementKind())
			assert.False(t, op.IsBound())
			assert.Empty(t, op.Parameters())
			assert.True(t, op.ReturnType().IsZero())
			assert.Nil(t, BindingType(op))
			_, ok := op.FindParameter("x")
			assert.False(t, ok)
			assert.True(t, IsUnresolved(op))
			assert.Equal(t, errors.ErrUnresolvedOperation, op.(Unresolved).Diagnostic().Code)
		}
	})

	t.Run("term", func(t *testing.T) {
		var term Term = NewUnresolvedValueTerm("Core.Nope", errors.Location{})
		assert.True(t, term.Type().IsZero())
		assert.Empty(t, term.AppliesTo())
		assert.Equal(t, SchemaElementValueTerm, term.SchemaElementKind())
	})

	t.Run("container", func(t *testing.T) {
		var c Container = NewUnresolvedEntityContainer("Test.Default", errors.Location{})
		assert.Empty(t, c.NavigationSources())
		_, ok := c.FindNavigationSource("People")
		assert.False(t, ok)
	})

	t.Run("fresh instances", func(t *testing.T) {
		assert.NotSame(t, NewUnresolvedType("Test.X", loc), NewUnresolvedType("Test.X", loc))
	})
}

func TestIsUnresolvedAndDiagnostics(t *testing.T) {
	m := newTestModel(t)
	missing := NewUnresolvedType("Test.Missing", errors.Location{})

	assert.False(t, IsUnresolved(m.person))
	assert.True(t, IsUnresolved(missing))
	assert.False(t, IsUnresolved(nil))

	// Types held as Type, e.g. a cast segment's target, are checked the same way.
	var typ Type = missing
	assert.True(t, IsUnresolved(typ))
	typ = Primitive(PrimitiveString)
	assert.False(t, IsUnresolved(typ))

	list := Diagnostics(m.person, missing, NewUnresolvedValueTerm("Test.T", errors.Location{}))
	require.Len(t, list, 2)
	assert.Equal(t, errors.ErrUnresolvedType, list[0].Code)
	assert.Equal(t, errors.ErrUnresolvedTerm, list[1].Code)
	assert.False(t, list.HasErrors(), "unresolved references are deferred warnings")
}
