// Package contexturl derives the parts of a response's context URL from the
// value, collection, navigation source or type context being written.
package contexturl

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/conduit-lang/odatacore/internal/edm"
	"github.com/conduit-lang/odatacore/internal/errors"
	"github.com/conduit-lang/odatacore/internal/metrics"
	"github.com/conduit-lang/odatacore/internal/odata"
	"github.com/conduit-lang/odatacore/internal/uri/path"
	"github.com/conduit-lang/odatacore/internal/uri/selectexpand"
)

// NullTypeName is the type name of a null value.
const NullTypeName = "Edm.Null"

// Metric labels for the kind of input an Info was built from.
const (
	sourceValue            = "value"
	sourceCollectionStart  = "collection_start"
	sourceNavigationSource = "navigation_source"
	sourceTypeContext      = "type_context"
)

// BoundQuery is the parsed and bound request an Info describes.
type BoundQuery struct {
	Path         *path.Path
	SelectExpand *selectexpand.Clause
}

// CollectionStartInfo is what a writer knows when it starts a top-level collection.
type CollectionStartInfo struct {
	// CollectionTypeName is the full "Collection(...)" name, when known.
	CollectionTypeName string
}

// TypeContext carries precomputed navigation source facts for writers that
// have no live navigation source.
type TypeContext struct {
	NavigationSourceName           string
	NavigationSourceEntityTypeName string
	NavigationSourceKind           edm.NavigationSourceKind
	ExpectedEntityTypeName         string
}

// Builder creates Info values.
type Builder struct {
	logger    *zap.Logger
	metrics   *metrics.Metrics
	projector selectexpand.Projector
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Builder) { b.metrics = m }
}

// WithProjector sets how select/expand trees are rendered.
func WithProjector(p selectexpand.Projector) Option {
	return func(b *Builder) { b.projector = p }
}

// NewBuilder creates a builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBuilder = NewBuilder()

// FromValue builds an Info for a single value with the default builder.
func FromValue(value odata.Value, query *BoundQuery) (*Info, error) {
	return defaultBuilder.FromValue(value, query)
}

// FromCollectionStart builds an Info for a collection with the default builder.
func FromCollectionStart(info *CollectionStartInfo, itemType edm.TypeReference) (*Info, error) {
	return defaultBuilder.FromCollectionStart(info, itemType)
}

// FromNavigationSource builds an Info for entities of a navigation source with the default builder.
func FromNavigationSource(source edm.NavigationSource, expectedEntityTypeName string, isSingle bool, query *BoundQuery) (*Info, error) {
	return defaultBuilder.FromNavigationSource(source, expectedEntityTypeName, isSingle, query)
}

// FromTypeContext builds an Info from a type context with the default builder.
func FromTypeContext(tc *TypeContext, isSingle bool, query *BoundQuery) (*Info, error) {
	return defaultBuilder.FromTypeContext(tc, isSingle, query)
}

// FromValue builds an Info whose type name is derived from value:
// Edm.Null for null, then a serialization type name annotation, then the
// declared type of complex, collection and enum values, then the primitive
// type of the wrapped Go value.
func (b *Builder) FromValue(value odata.Value, query *BoundQuery) (*Info, error) {
	typeName, err := typeNameForValue(value)
	if err != nil {
		return nil, b.fail(sourceValue, err)
	}
	return b.built(sourceValue, &Info{builder: b, typeName: typeName, query: query}), nil
}

// FromCollectionStart builds an Info for a collection. A non-empty explicit
// collection type name wins over one derived from itemType.
func (b *Builder) FromCollectionStart(info *CollectionStartInfo, itemType edm.TypeReference) (*Info, error) {
	var typeName string
	switch {
	case info != nil && info.CollectionTypeName != "":
		typeName = info.CollectionTypeName
	case !itemType.IsZero():
		typeName = edm.CollectionTypeName(itemType.FullName())
	default:
		return nil, b.fail(sourceCollectionStart, errors.NewArgument("itemType"))
	}
	return b.built(sourceCollectionStart, &Info{builder: b, typeName: typeName}), nil
}

// FromNavigationSource builds an Info for entities read from source.
// expectedEntityTypeName becomes the type cast when it differs from the
// source's entity type.
func (b *Builder) FromNavigationSource(source edm.NavigationSource, expectedEntityTypeName string, isSingle bool, query *BoundQuery) (*Info, error) {
	if source == nil {
		return nil, b.fail(sourceNavigationSource, errors.NewArgument("source"))
	}

	var entityTypeName string
	if et := source.EntityType(); et != nil {
		entityTypeName = edm.FullName(et)
	}
	info := b.fromSource(source.NavigationSourceKind(), source.Name(), entityTypeName, expectedEntityTypeName, isSingle, query)
	return b.built(sourceNavigationSource, info), nil
}

// FromTypeContext builds an Info exactly like FromNavigationSource, from
// precomputed fields.
func (b *Builder) FromTypeContext(tc *TypeContext, isSingle bool, query *BoundQuery) (*Info, error) {
	if tc == nil {
		return nil, b.fail(sourceTypeContext, errors.NewArgument("typeContext"))
	}
	info := b.fromSource(tc.NavigationSourceKind, tc.NavigationSourceName, tc.NavigationSourceEntityTypeName, tc.ExpectedEntityTypeName, isSingle, query)
	return b.built(sourceTypeContext, info), nil
}

func (b *Builder) fromSource(kind edm.NavigationSourceKind, name, entityTypeName, expected string, isSingle bool, query *BoundQuery) *Info {
	info := &Info{
		builder:                     b,
		isContained:                 kind == edm.NavigationSourceContainedEntitySet,
		navigationSource:            name,
		typeName:                    entityTypeName,
		includeFragmentItemSelector: isSingle && kind != edm.NavigationSourceSingleton,
		query:                       query,
	}
	if expected != entityTypeName {
		info.typeCast = expected
		info.hasTypeCast = true
	}
	return info
}

func (b *Builder) built(source string, info *Info) *Info {
	b.metrics.RecordContextURL(source)
	b.logger.Debug("context url info built",
		zap.String("source", source),
		zap.String("type_name", info.typeName),
	)
	return info
}

func (b *Builder) fail(source string, err *errors.Error) error {
	if err.Category == errors.CategoryShape {
		b.metrics.RecordShapeViolation(string(err.Code))
		b.logger.Warn("context url shape violation",
			zap.String("source", source),
			zap.String("code", string(err.Code)),
			zap.String("message", err.Message),
		)
	}
	return err
}

func typeNameForValue(value odata.Value) (string, *errors.Error) {
	if value == nil {
		return "", errors.NewArgument("value")
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", errors.NewArgument("value")
	}
	if odata.IsNull(value) {
		return NullTypeName, nil
	}
	if name := value.TypeNameAnnotation(); name != "" {
		return name, nil
	}

	switch v := value.(type) {
	case *odata.ComplexValue:
		return v.TypeName, nil
	case *odata.CollectionValue:
		if v.TypeName == "" || edm.IsCollectionTypeName(v.TypeName) {
			return v.TypeName, nil
		}
		return edm.CollectionTypeName(v.TypeName), nil
	case *odata.EnumValue:
		return v.TypeName, nil
	case *odata.PrimitiveValue:
		kind, ok := odata.PrimitiveKindOf(v.Value)
		if !ok {
			return "", errors.NewUnsupportedPrimitive(fmt.Sprintf("%T", v.Value))
		}
		return kind.FullName(), nil
	case *odata.StreamReferenceValue:
		return "", errors.NewStreamValue()
	default:
		return "", errors.NewUnsupportedPrimitive(fmt.Sprintf("%T", value))
	}
}
