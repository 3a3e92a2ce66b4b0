package selectexpand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		clause *Clause
		want   string
	}{
		{"nil clause", nil, ""},
		{"empty clause", NewClause(), ""},
		{"selected properties", NewClause(Select("Name"), Select("Age")), "(Name,Age)"},
		{"expansion with selection", NewClause(Expand("Friends", NewClause(Select("Id")))), "(Friends(Id))"},
		{"selection before expansion", NewClause(Expand("Friends", NewClause(Select("Id"))), Select("Name")), "(Name,Friends(Id))"},
		{"bare expansion", NewClause(Expand("Friends", nil)), "(Friends)"},
		{"bare expansion with empty child", NewClause(Select("Name"), Expand("Friends", NewClause())), "(Name,Friends)"},
		{
			"nested expansion",
			NewClause(Expand("Friends", NewClause(Select("Name"), Expand("Friends", NewClause(Select("Id")))))),
			"(Friends(Name,Friends(Id)))",
		},
		{"wildcards", NewClause(SelectAll(), SelectNamespace("Sample")), "(*,Sample.*)"},
		{"cast path", NewClause(Select("Sample.Employee", "Salary")), "(Sample.Employee/Salary)"},
		{"declaration order kept", NewClause(Select("Zeta"), Select("Alpha")), "(Zeta,Alpha)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Project(tt.clause))
		})
	}
}

func TestProjectOmitBareExpansions(t *testing.T) {
	p := Projector{OmitBareExpansions: true}

	assert.Equal(t, "", p.Project(NewClause(Expand("Friends", nil))))
	assert.Equal(t, "(Name)", p.Project(NewClause(Select("Name"), Expand("Friends", NewClause()))))
	assert.Equal(t, "(Orders(Id))", p.Project(NewClause(Expand("Friends", nil), Expand("Orders", NewClause(Select("Id"))))))
	assert.Equal(t,
		"(Friends(Name))",
		p.Project(NewClause(Expand("Friends", NewClause(Select("Name"), Expand("Friends", nil))))),
	)
}

func TestClauseItems(t *testing.T) {
	friends := Expand("Friends", nil)
	c := NewClause(Select("Name"), friends, nil, SelectAll())

	assert.Len(t, c.Items(), 3)
	assert.Len(t, c.SelectedItems(), 2)
	assert.Equal(t, []*ExpandItem{friends}, c.ExpandedItems())
	assert.False(t, c.IsEmpty())

	var empty *Clause
	assert.True(t, empty.IsEmpty())
	assert.Nil(t, empty.Items())
}

func TestClauseIgnoresTypedNilItems(t *testing.T) {
	c := NewClause(
		Select("Name"),
		(*PathSelectItem)(nil),
		(*NamespaceWildcardSelectItem)(nil),
		(*ExpandItem)(nil),
	)
	c.Add(nil)

	assert.Len(t, c.Items(), 1)
	assert.NotPanics(t, func() {
		assert.Equal(t, "(Name)", Project(c))
	})
}
