package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/odatacore/internal/cli/config"
	"github.com/conduit-lang/odatacore/internal/cli/ui"
	"github.com/conduit-lang/odatacore/internal/contexturl"
	"github.com/conduit-lang/odatacore/internal/edm"
	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/fixture"
	"github.com/conduit-lang/odatacore/internal/logging"
	"github.com/conduit-lang/odatacore/internal/metrics"
	"github.com/conduit-lang/odatacore/internal/uri/binder"
	"github.com/conduit-lang/odatacore/internal/uri/path"
	"github.com/conduit-lang/odatacore/internal/uri/selectexpand"
)

type describeOptions struct {
	fixture string
	config  string
	noColor bool
}

// NewDescribeCommand creates the describe command
func NewDescribeCommand() *cobra.Command {
	var opts describeOptions

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Bind a fixture's request and print its context URL parts",
		Long: `Load a fixture, bind its request path and select/expand tree against
the catalog, and print the context URL descriptor: navigation path,
resource path, type name, type cast, fragment item selector and query
clause.

Configuration is read from --config, or odatactx.yaml in the working
directory. Environment variables prefixed with ODATACTX_ override it.`,
		Example: `  odatactx describe --fixture people.yaml
  ODATACTX_METRICS_ENABLED=true odatactx describe -f people.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.fixture, "fixture", "f", "", "fixture file to load")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "configuration file")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	_ = cmd.MarkFlagRequired("fixture")

	return cmd
}

func runDescribe(cmd *cobra.Command, opts describeOptions) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := config.Load(opts.config)
	if err != nil {
		fmt.Fprint(errOut, ui.ConfigError(err, opts.noColor))
		return errReported
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var (
		registry *prometheus.Registry
		m        *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		m = metrics.New(registry)
	}

	f, err := fixture.Load(opts.fixture)
	if err != nil {
		fmt.Fprint(errOut, ui.FixtureError(opts.fixture, err, opts.noColor))
		return errReported
	}
	built, err := f.Build(
		edm.WithLogger(logger),
		edm.WithMetrics(m),
		edm.WithConflictPolicy(cfg.ConflictPolicy()),
	)
	if err != nil {
		fmt.Fprint(errOut, ui.FixtureError(opts.fixture, err, opts.noColor))
		return errReported
	}
	if built.Path == nil {
		fmt.Fprint(errOut, ui.FixtureError(opts.fixture, fmt.Errorf("the fixture has no request path"), opts.noColor))
		return errReported
	}
	built.Catalog.Seal()

	info, bound, err := describe(built, cfg, logger, m)
	if err != nil {
		fmt.Fprint(errOut, ui.BindingError(opts.fixture, err, opts.noColor))
		return errReported
	}

	ui.Header(out, "Context URL", opts.noColor)
	if err := printInfo(out, info, bound, opts.noColor); err != nil {
		fmt.Fprint(errOut, ui.BindingError(opts.fixture, err, opts.noColor))
		return errReported
	}

	if diags := built.Catalog.Validate(); len(diags) > 0 {
		fmt.Fprintln(out)
		fmt.Fprint(out, errors.FormatErrorList(diags, opts.noColor))
	}
	if registry != nil {
		fmt.Fprintln(out)
		if err := printMetrics(out, registry, opts.noColor); err != nil {
			return fmt.Errorf("failed to gather metrics: %w", err)
		}
	}
	return nil
}

// describe binds the fixture's request and builds its context URL descriptor.
func describe(built *fixture.Built, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*contexturl.Info, *path.Path, error) {
	b := binder.New(built.Catalog, binder.WithLogger(logger))
	bound, err := b.BindPath(built.Path)
	if err != nil {
		return nil, nil, err
	}

	structured := structuredTarget(bound)
	if built.SelectExpand != nil && !built.SelectExpand.IsEmpty() {
		if structured == nil {
			return nil, nil, errors.NewInvalidSegment(bound.String(), "select and expand need a structured result")
		}
		if err := b.BindSelectExpand(structured, built.SelectExpand); err != nil {
			return nil, nil, err
		}
	}

	source, ok := bound.NavigationSource()
	if !ok {
		return nil, nil, errors.NewInvalidSegment(bound.String(), "the path does not address a navigation source")
	}

	expected := built.ExpectedType
	if expected == "" {
		expected = edm.FullName(source.EntityType())
		if et, ok := structured.(*edm.EntityType); ok {
			expected = edm.FullName(et)
		}
	}

	builder := contexturl.NewBuilder(
		contexturl.WithLogger(logger),
		contexturl.WithMetrics(m),
		contexturl.WithProjector(selectexpand.Projector{
			OmitBareExpansions: cfg.Projection.OmitBareExpansions,
		}),
	)
	info, err := builder.FromNavigationSource(source, expected, built.Single || isSingle(bound),
		&contexturl.BoundQuery{Path: bound, SelectExpand: built.SelectExpand})
	if err != nil {
		return nil, nil, err
	}
	return info, bound, nil
}

// structuredTarget returns the structured type the path ends on, looking
// through collections.
func structuredTarget(p *path.Path) edm.StructuredType {
	seg := p.LastSegment()
	if seg == nil {
		return nil
	}
	t := seg.EdmType()
	if c, ok := t.(*edm.CollectionType); ok {
		t = c.ElementType().Definition
	}
	s, _ := t.(edm.StructuredType)
	return s
}

// isSingle reports whether the path addresses one entity.
func isSingle(p *path.Path) bool {
	switch s := p.TrimEndingTypeSegment().LastSegment().(type) {
	case *path.KeySegment, *path.SingletonSegment:
		return true
	case *path.NavigationPropertySegment:
		return !s.Property.IsCollection()
	default:
		return false
	}
}

func printInfo(w io.Writer, info *contexturl.Info, bound *path.Path, noColor bool) error {
	navPath, err := info.NavigationPath()
	if err != nil {
		return err
	}
	cast, _ := info.TypeCast()
	query, _ := info.QueryClause()

	kv := ui.NewKeyValueTable(w, noColor)
	kv.AddRow("Request path", bound.String())
	kv.AddRow("Navigation source", info.NavigationSource())
	kv.AddRow("Contained", strconv.FormatBool(info.IsContained()))
	kv.AddRow("Navigation path", navPath)
	kv.AddRow("Resource path", info.ResourcePath())
	kv.AddRow("Type name", info.TypeName())
	kv.AddRow("Type cast", cast)
	kv.AddRow("Fragment item selector", strconv.FormatBool(info.IncludeFragmentItemSelector()))
	kv.AddRow("Query clause", query)
	kv.Render()
	return nil
}

func printMetrics(w io.Writer, g prometheus.Gatherer, noColor bool) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	s := ui.NewSection(w, "Metrics", noColor)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, l := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			sort.Strings(labels)
			s.AddLine("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), metric.GetCounter().GetValue())
		}
	}
	s.Render()
	return nil
}
