package edm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testModel struct {
	catalog  *Catalog
	person   *EntityType
	employee *EntityType
	order    *EntityType
	item     *EntityType
	address  *ComplexType
}

func newTestModel(t *testing.T, opts ...CatalogOption) *testModel {
	t.Helper()

	m := &testModel{catalog: NewCatalog(nil, opts...)}

	m.address = NewComplexType("Test", "Address", nil)
	m.address.AddStructuralProperty("City", PrimitiveRef(PrimitiveString, true))

	m.person = NewEntityType("Test", "Person", nil).AddKeys("Id")
	m.person.AddStructuralProperty("Id", PrimitiveRef(PrimitiveInt32, false))
	m.person.AddStructuralProperty("Name", PrimitiveRef(PrimitiveString, true))
	m.person.AddStructuralProperty("Home", Ref(m.address, true))

	m.employee = NewEntityType("Test", "Employee", m.person)
	m.employee.AddStructuralProperty("Salary", PrimitiveRef(PrimitiveDecimal, false))

	m.item = NewEntityType("Test", "Item", nil).AddKeys("Id")
	m.item.AddStructuralProperty("Id", PrimitiveRef(PrimitiveInt32, false))

	m.order = NewEntityType("Test", "Order", nil).AddKeys("Id")
	m.order.AddStructuralProperty("Id", PrimitiveRef(PrimitiveString, false))
	m.order.AddNavigationProperty(NavigationPropertyInfo{
		Name:           "Items",
		Target:         m.item,
		Collection:     true,
		ContainsTarget: true,
	})

	for _, e := range []SchemaElement{m.address, m.person, m.employee, m.item, m.order} {
		require.NoError(t, m.catalog.Register(e))
	}
	return m
}
