// Package edmtest provides a small people-and-orders catalog for tests of
// packages that bind against a schema.
package edmtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/odatacore/internal/edm"
)

// Namespace is the namespace of every type in the sample model.
const Namespace = "Sample"

// Model is the sample catalog together with handles on its elements.
type Model struct {
	Catalog   *edm.Catalog
	Container *edm.EntityContainer

	Address  *edm.ComplexType
	Color    *edm.EnumType
	Person   *edm.EntityType
	Employee *edm.EntityType
	Order    *edm.EntityType
	Item     *edm.EntityType
	Bag      *edm.EntityType

	People *edm.EntitySet
	Orders *edm.EntitySet
	Bags   *edm.EntitySet
	Me     *edm.Singleton

	Friends *edm.NavigationProperty
	Items   *edm.NavigationProperty
}

// New builds and registers the sample model:
//
//	Person(Id) { Name, Age, Emails[], Home: Address, Friends -> Person[] }
//	Employee : Person { Salary }
//	Order(Id) { Total, Items => Item[] (contained) }
//	Item(Id) { Color }
//	Bag(Id) open
//	Container Default { People, Orders, Bags, Me }
func New(t testing.TB, opts ...edm.CatalogOption) *Model {
	t.Helper()

	m := &Model{Catalog: edm.NewCatalog(nil, opts...)}

	m.Address = edm.NewComplexType(Namespace, "Address", nil)
	m.Address.AddStructuralProperty("City", edm.PrimitiveRef(edm.PrimitiveString, true))

	m.Color = edm.NewEnumType(Namespace, "Color",
		edm.EnumMember{Name: "Red", Value: 0},
		edm.EnumMember{Name: "Green", Value: 1},
	)

	m.Person = edm.NewEntityType(Namespace, "Person", nil).AddKeys("Id")
	m.Person.AddStructuralProperty("Id", edm.PrimitiveRef(edm.PrimitiveInt32, false))
	m.Person.AddStructuralProperty("Name", edm.PrimitiveRef(edm.PrimitiveString, true))
	m.Person.AddStructuralProperty("Age", edm.PrimitiveRef(edm.PrimitiveInt32, true))
	m.Person.AddStructuralProperty("Emails", edm.CollectionRef(edm.PrimitiveRef(edm.PrimitiveString, false)))
	m.Person.AddStructuralProperty("Home", edm.Ref(m.Address, true))
	m.Friends = m.Person.AddNavigationProperty(edm.NavigationPropertyInfo{
		Name:       "Friends",
		Target:     m.Person,
		Collection: true,
	})

	m.Employee = edm.NewEntityType(Namespace, "Employee", m.Person)
	m.Employee.AddStructuralProperty("Salary", edm.PrimitiveRef(edm.PrimitiveDecimal, false))

	m.Item = edm.NewEntityType(Namespace, "Item", nil).AddKeys("Id")
	m.Item.AddStructuralProperty("Id", edm.PrimitiveRef(edm.PrimitiveInt32, false))
	m.Item.AddStructuralProperty("Color", edm.Ref(m.Color, true))

	m.Order = edm.NewEntityType(Namespace, "Order", nil).AddKeys("Id")
	m.Order.AddStructuralProperty("Id", edm.PrimitiveRef(edm.PrimitiveString, false))
	m.Order.AddStructuralProperty("Total", edm.PrimitiveRef(edm.PrimitiveDecimal, false))
	m.Items = m.Order.AddNavigationProperty(edm.NavigationPropertyInfo{
		Name:           "Items",
		Target:         m.Item,
		Collection:     true,
		ContainsTarget: true,
	})

	m.Bag = edm.NewEntityType(Namespace, "Bag", nil).AddKeys("Id").SetOpen(true)
	m.Bag.AddStructuralProperty("Id", edm.PrimitiveRef(edm.PrimitiveInt32, false))

	m.Container = edm.NewEntityContainer(Namespace, "Default")
	m.People = m.Container.AddEntitySet("People", m.Person)
	m.Orders = m.Container.AddEntitySet("Orders", m.Order)
	m.Bags = m.Container.AddEntitySet("Bags", m.Bag)
	m.Me = m.Container.AddSingleton("Me", m.Person)

	for _, e := range []edm.SchemaElement{
		m.Address, m.Color, m.Person, m.Employee, m.Item, m.Order, m.Bag, m.Container,
	} {
		require.NoError(t, m.Catalog.Register(e))
	}
	return m
}
