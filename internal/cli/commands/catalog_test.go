package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCommand(t *testing.T) {
	out, _, err := run(t, "catalog", "--fixture", "testdata/catalog.yaml", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Schema elements")
	assert.Contains(t, out, "Sample.Employee")
	assert.Contains(t, out, "base Sample.Person")
	assert.Contains(t, out, "key Id")
	assert.Contains(t, out, "Sample.Color")
	assert.Contains(t, out, "bound (employee Sample.Employee)")
	assert.Contains(t, out, "bound (person Sample.Person, count Edm.Int32) Collection(Sample.Person)")
	assert.Contains(t, out, "Container Sample.Default")
	assert.Contains(t, out, "Orders  entity set of Sample.Order")
	assert.Contains(t, out, "Me  singleton of Sample.Person")
	assert.Contains(t, out, "✓ all references resolved")
}

func TestCatalogCommandMissingFixture(t *testing.T) {
	_, errOut, err := run(t, "catalog", "-f", "testdata/nope.yaml", "--no-color")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "FIXTURE FAILED")
	assert.Contains(t, errOut, "testdata/nope.yaml")
}
