package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/odatacore/internal/cli/ui"
	"github.com/conduit-lang/odatacore/internal/edm"
	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/fixture"
)

// NewCatalogCommand creates the catalog command
func NewCatalogCommand() *cobra.Command {
	var (
		fixtureFile string
		noColor     bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the schema elements a fixture declares",
		Long: `Load a fixture into a catalog and list its types, operations, terms
and container sources. Unresolved references are reported as warnings.`,
		Example: "  odatactx catalog --fixture people.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fixture.Load(fixtureFile)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.FixtureError(fixtureFile, err, noColor))
				return errReported
			}
			built, err := f.Build()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.FixtureError(fixtureFile, err, noColor))
				return errReported
			}
			printCatalog(cmd, built.Catalog, noColor)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fixtureFile, "fixture", "f", "", "fixture file to load")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	_ = cmd.MarkFlagRequired("fixture")

	return cmd
}

func printCatalog(cmd *cobra.Command, c *edm.Catalog, noColor bool) {
	out := cmd.OutOrStdout()

	ui.Header(out, "Schema elements", noColor)
	table := ui.NewTable(out, noColor, "Name", "Kind", "Details")
	var container edm.Container
	for _, e := range c.SchemaElements() {
		kind := e.SchemaElementKind().String()
		var details string
		switch v := e.(type) {
		case edm.StructuredType:
			kind = v.TypeKind().String()
			details = structuredDetails(v)
		case edm.SchemaType:
			kind = v.TypeKind().String()
		case edm.Operation:
			details = operationDetails(v)
		case edm.Term:
			details = v.Type().FullName()
		case edm.Container:
			container = v
		}
		table.AddRow(edm.FullName(e), kind, details)
	}
	table.Render()
	fmt.Fprintln(out)

	if container != nil {
		s := ui.NewSection(out, "Container "+edm.FullName(container), noColor)
		for _, src := range container.NavigationSources() {
			s.AddLine("%s  %s of %s", src.Name(), src.NavigationSourceKind(), edm.FullName(src.EntityType()))
		}
		s.Render()
	}

	if diags := c.Validate(); len(diags) > 0 {
		fmt.Fprint(out, errors.FormatErrorList(diags, noColor))
	} else {
		ui.WriteSuccess(out, "all references resolved", noColor)
	}
}

func structuredDetails(t edm.StructuredType) string {
	var parts []string
	if base := t.BaseType(); base != nil {
		parts = append(parts, "base "+edm.FullName(base))
	}
	if et, ok := t.(*edm.EntityType); ok && len(et.Keys()) > 0 {
		parts = append(parts, "key "+strings.Join(et.Keys(), ","))
	}
	if t.IsAbstract() {
		parts = append(parts, "abstract")
	}
	if t.IsOpen() {
		parts = append(parts, "open")
	}
	parts = append(parts, fmt.Sprintf("%d properties", len(t.DeclaredProperties())))
	return strings.Join(parts, ", ")
}

func operationDetails(op edm.Operation) string {
	params := make([]string, len(op.Parameters()))
	for i, p := range op.Parameters() {
		params[i] = p.Name + " " + p.Type.FullName()
	}
	s := "(" + strings.Join(params, ", ") + ")"
	if ret := op.ReturnType(); ret.Definition != nil {
		s += " " + ret.FullName()
	}
	if op.IsBound() {
		s = "bound " + s
	}
	return s
}
