package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/odatacore/internal/edm"
	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/uri/selectexpand"
	"github.com/conduit-lang/odatacore/internal/uri/token"
)

func load(t *testing.T, name string) *Built {
	t.Helper()
	f, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	built, err := f.Build()
	require.NoError(t, err)
	return built
}

func TestBuildPeopleFixture(t *testing.T) {
	built := load(t, "people.yaml")
	c := built.Catalog

	person, ok := c.FindDeclaredType("Sample.Person")
	require.True(t, ok)
	employee, ok := c.FindDeclaredType("Sample.Employee")
	require.True(t, ok)
	assert.True(t, edm.IsOrInheritsFrom(employee, person))

	_, ok = c.FindDeclaredType("S.Person")
	assert.True(t, ok, "alias-qualified lookup")

	color, ok := c.FindDeclaredType("Sample.Color")
	require.True(t, ok)
	assert.Equal(t, edm.TypeKindEnum, color.TypeKind())

	home, ok := person.(edm.StructuredType).FindProperty("Home")
	require.True(t, ok)
	assert.Equal(t, "Sample.Address", home.Type().FullName())

	emails, ok := person.(edm.StructuredType).FindProperty("Emails")
	require.True(t, ok)
	assert.Equal(t, "Collection(Edm.String)", emails.Type().FullName())

	var bound []string
	for op := range c.FindDeclaredBoundOperations(employee) {
		bound = append(bound, op.Name())
	}
	assert.ElementsMatch(t, []string{"Promote", "TopFriends"}, bound)

	_, ok = c.FindDeclaredValueTerm("Sample.Sensitive")
	assert.True(t, ok)

	container, ok := c.EntityContainer()
	require.True(t, ok)
	assert.Len(t, container.NavigationSources(), 3)

	assert.Empty(t, c.Validate())

	assert.Equal(t, "Orders('1')/Items", token.String(built.Path))
	assert.Equal(t, "(Id,Color)", selectexpand.Project(built.SelectExpand))
	assert.Equal(t, "Sample.Item", built.ExpectedType)
	assert.False(t, built.Single)
}

func TestBuildBrokenFixtureKeepsPlaceholders(t *testing.T) {
	built := load(t, "broken.yaml")

	diags := built.Catalog.Validate()
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.ErrorIs(t, d, errors.ErrUnresolved)
	}

	assert.Equal(t, "Things(A=1,B='x')", token.String(built.Path))
	assert.Equal(t, "(*,Broken.*,Broken.Thing/Id,Parts(Name,Owner))", selectexpand.Project(built.SelectExpand))
}

func TestBuildDuplicateTypes(t *testing.T) {
	f := &Fixture{
		Namespace: "Dup",
		EntityTypes: []StructuredDef{
			{Name: "A", Keys: []string{"Id"}},
			{Name: "A", Keys: []string{"Id"}},
		},
	}
	_, err := f.Build()
	assert.ErrorIs(t, err, errors.ErrArgument)

	built, err := f.Build(edm.WithConflictPolicy(edm.ConflictFirstWins))
	require.NoError(t, err)
	assert.Len(t, built.Catalog.SchemaElements(), 1)
}

func TestBuildRejectsInheritanceCycles(t *testing.T) {
	f := &Fixture{
		Namespace: "Cycle",
		EntityTypes: []StructuredDef{
			{Name: "A", Base: "B"},
			{Name: "B", Base: "A"},
		},
	}
	_, err := f.Build()
	assert.ErrorContains(t, err, "inherits from itself")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "nons.yaml")
	require.NoError(t, os.WriteFile(file, []byte("entity_types: []\n"), 0o644))
	_, err = Load(file)
	assert.ErrorContains(t, err, "namespace is required")
}

func TestRequestPathErrors(t *testing.T) {
	_, err := requestPath([]SegmentDef{{}})
	assert.ErrorContains(t, err, "one of id, cast, key or system")

	_, err = requestPath([]SegmentDef{{ID: "A"}, {Key: []any{"bare"}}})
	assert.ErrorContains(t, err, "{name, value}")

	head, err := requestPath(nil)
	assert.NoError(t, err)
	assert.Nil(t, head)
}

func TestBuildRejectsUnknownOperationKind(t *testing.T) {
	f := &Fixture{
		Namespace:  "Ops",
		Operations: []OperationDef{{Name: "Run", Kind: "procedure"}},
	}
	_, err := f.Build()
	assert.ErrorContains(t, err, `unknown kind "procedure"`)
}
