// Package fixture loads YAML descriptions of already-parsed schema elements
// and a bound request, for the CLI and for tests.
package fixture

import (
	"fmt"

	"github.com/spf13/viper"
)

// Fixture is the YAML document.
type Fixture struct {
	Namespace    string          `mapstructure:"namespace"`
	Alias        string          `mapstructure:"alias"`
	EntityTypes  []StructuredDef `mapstructure:"entity_types"`
	ComplexTypes []StructuredDef `mapstructure:"complex_types"`
	EnumTypes    []EnumDef       `mapstructure:"enum_types"`
	Operations   []OperationDef  `mapstructure:"operations"`
	Terms        []TermDef       `mapstructure:"terms"`
	Container    *ContainerDef   `mapstructure:"container"`
	Request      *RequestDef     `mapstructure:"request"`
}

// StructuredDef describes an entity or complex type.
type StructuredDef struct {
	Name       string          `mapstructure:"name"`
	Base       string          `mapstructure:"base"`
	Abstract   bool            `mapstructure:"abstract"`
	Open       bool            `mapstructure:"open"`
	Keys       []string        `mapstructure:"keys"`
	Properties []PropertyDef   `mapstructure:"properties"`
	Navigation []NavigationDef `mapstructure:"navigation"`
}

// PropertyDef describes a structural property. Type is a qualified name,
// a name in the fixture namespace, or Collection(...).
type PropertyDef struct {
	Name     string `mapstructure:"name"`
	Type     string `mapstructure:"type"`
	Nullable bool   `mapstructure:"nullable"`
}

// NavigationDef describes a navigation property.
type NavigationDef struct {
	Name       string `mapstructure:"name"`
	Target     string `mapstructure:"target"`
	Collection bool   `mapstructure:"collection"`
	Nullable   bool   `mapstructure:"nullable"`
	Contains   bool   `mapstructure:"contains"`
}

// EnumDef describes an enum type. Members are numbered from zero.
type EnumDef struct {
	Name    string   `mapstructure:"name"`
	Members []string `mapstructure:"members"`
	Flags   bool     `mapstructure:"flags"`
}

// OperationDef describes an action or function. For bound operations the
// first parameter is the binding parameter.
type OperationDef struct {
	Name       string         `mapstructure:"name"`
	Kind       string         `mapstructure:"kind"`
	Bound      bool           `mapstructure:"bound"`
	Composable bool           `mapstructure:"composable"`
	Parameters []ParameterDef `mapstructure:"parameters"`
	Return     string         `mapstructure:"return"`
}

// ParameterDef describes an operation parameter.
type ParameterDef struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
}

// TermDef describes a value term.
type TermDef struct {
	Name      string `mapstructure:"name"`
	Type      string `mapstructure:"type"`
	AppliesTo string `mapstructure:"applies_to"`
	Default   string `mapstructure:"default"`
}

// ContainerDef describes the entity container.
type ContainerDef struct {
	Name       string      `mapstructure:"name"`
	EntitySets []SourceDef `mapstructure:"entity_sets"`
	Singletons []SourceDef `mapstructure:"singletons"`
}

// SourceDef describes an entity set or singleton.
type SourceDef struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
}

// RequestDef describes a bound request.
type RequestDef struct {
	Path         []SegmentDef `mapstructure:"path"`
	Select       []string     `mapstructure:"select"`
	Expand       []ExpandDef  `mapstructure:"expand"`
	ExpectedType string       `mapstructure:"expected_type"`
	Single       bool         `mapstructure:"single"`
}

// SegmentDef is one path segment; exactly one field is set. Key is a
// scalar for single-part keys or a list of {name, value} pairs.
type SegmentDef struct {
	ID     string `mapstructure:"id"`
	Cast   string `mapstructure:"cast"`
	Key    any    `mapstructure:"key"`
	System string `mapstructure:"system"`
}

// ExpandDef is an expanded navigation property with its nested options.
type ExpandDef struct {
	Name   string      `mapstructure:"name"`
	Select []string    `mapstructure:"select"`
	Expand []ExpandDef `mapstructure:"expand"`
}

// Load reads a fixture file. The format is inferred from the extension.
func Load(file string) (*Fixture, error) {
	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", file, err)
	}

	var f Fixture
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("failed to decode fixture %s: %w", file, err)
	}
	if f.Namespace == "" {
		return nil, fmt.Errorf("fixture %s: namespace is required", file)
	}
	return &f, nil
}
