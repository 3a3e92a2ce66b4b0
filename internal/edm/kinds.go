// Package edm provides the entity data model: schema elements, the schema
// catalog that registers and looks them up, and the placeholder elements
// handed out when a lookup by name fails.
package edm

// SchemaElementKind identifies which registry a schema element belongs to.
type SchemaElementKind int

const (
	SchemaElementNone SchemaElementKind = iota
	SchemaElementTypeDefinition
	SchemaElementAction
	SchemaElementFunction
	SchemaElementValueTerm
	SchemaElementEntityContainer
)

// String returns the string representation of the element kind
func (k SchemaElementKind) String() string {
	switch k {
	case SchemaElementTypeDefinition:
		return "type"
	case SchemaElementAction:
		return "action"
	case SchemaElementFunction:
		return "function"
	case SchemaElementValueTerm:
		return "term"
	case SchemaElementEntityContainer:
		return "container"
	default:
		return "none"
	}
}

// TypeKind is the kind of a type definition.
type TypeKind int

const (
	TypeKindNone TypeKind = iota
	TypeKindPrimitive
	TypeKindEntity
	TypeKindComplex
	TypeKindCollection
	TypeKindEnum
)

// String returns the string representation of the type kind
func (k TypeKind) String() string {
	switch k {
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindEntity:
		return "entity"
	case TypeKindComplex:
		return "complex"
	case TypeKindCollection:
		return "collection"
	case TypeKindEnum:
		return "enum"
	default:
		return "none"
	}
}

// NavigationSourceKind distinguishes entity sets, singletons and contained sets.
type NavigationSourceKind int

const (
	NavigationSourceNone NavigationSourceKind = iota
	NavigationSourceEntitySet
	NavigationSourceSingleton
	NavigationSourceContainedEntitySet
	NavigationSourceUnknown
)

// String returns the string representation of the navigation source kind
func (k NavigationSourceKind) String() string {
	switch k {
	case NavigationSourceEntitySet:
		return "entity set"
	case NavigationSourceSingleton:
		return "singleton"
	case NavigationSourceContainedEntitySet:
		return "contained entity set"
	case NavigationSourceUnknown:
		return "unknown"
	default:
		return "none"
	}
}

// PrimitiveTypeKind enumerates the built-in primitive types.
type PrimitiveTypeKind int

const (
	PrimitiveNone PrimitiveTypeKind = iota
	PrimitiveBinary
	PrimitiveBoolean
	PrimitiveByte
	PrimitiveDate
	PrimitiveDateTimeOffset
	PrimitiveDecimal
	PrimitiveDouble
	PrimitiveDuration
	PrimitiveGuid
	PrimitiveInt16
	PrimitiveInt32
	PrimitiveInt64
	PrimitiveSByte
	PrimitiveSingle
	PrimitiveStream
	PrimitiveString
	PrimitiveTimeOfDay
)

// CoreNamespace is the namespace of the built-in primitive types.
const CoreNamespace = "Edm"

var primitiveNames = map[PrimitiveTypeKind]string{
	PrimitiveBinary:         "Binary",
	PrimitiveBoolean:        "Boolean",
	PrimitiveByte:           "Byte",
	PrimitiveDate:           "Date",
	PrimitiveDateTimeOffset: "DateTimeOffset",
	PrimitiveDecimal:        "Decimal",
	PrimitiveDouble:         "Double",
	PrimitiveDuration:       "Duration",
	PrimitiveGuid:           "Guid",
	PrimitiveInt16:          "Int16",
	PrimitiveInt32:          "Int32",
	PrimitiveInt64:          "Int64",
	PrimitiveSByte:          "SByte",
	PrimitiveSingle:         "Single",
	PrimitiveStream:         "Stream",
	PrimitiveString:         "String",
	PrimitiveTimeOfDay:      "TimeOfDay",
}

// Name returns the unqualified name, e.g. "Int32".
func (k PrimitiveTypeKind) Name() string {
	if name, ok := primitiveNames[k]; ok {
		return name
	}
	return "None"
}

// FullName returns the canonical protocol name, e.g. "Edm.Int32".
func (k PrimitiveTypeKind) FullName() string {
	return CoreNamespace + "." + k.Name()
}

func (k PrimitiveTypeKind) String() string {
	return k.FullName()
}
