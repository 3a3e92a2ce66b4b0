package errors

import "fmt"

// Argument error codes (ARG001-099)
const (
	// ErrMissingArgument indicates a required input was nil or empty.
	ErrMissingArgument ErrorCode = "ARG001"
	// ErrDuplicateElement indicates a second registration of a type, term or container name.
	ErrDuplicateElement ErrorCode = "ARG002"
	// ErrCatalogSealed indicates a registration after loading completed.
	ErrCatalogSealed ErrorCode = "ARG003"
	// ErrUnsupportedElement indicates an element of a kind no registry accepts.
	ErrUnsupportedElement ErrorCode = "ARG004"
)

// Unresolved reference codes (UNR100-199)
const (
	// ErrUnresolvedType indicates a type name that no catalog declares.
	ErrUnresolvedType ErrorCode = "UNR101"
	// ErrUnresolvedOperation indicates an action or function name that no catalog declares.
	ErrUnresolvedOperation ErrorCode = "UNR102"
	// ErrUnresolvedTerm indicates a value term name that no catalog declares.
	ErrUnresolvedTerm ErrorCode = "UNR103"
	// ErrUnresolvedContainer indicates an entity container name that no catalog declares.
	ErrUnresolvedContainer ErrorCode = "UNR104"
)

// Shape violation codes (SHP200-299)
const (
	// ErrStreamValue indicates a stream reference reached context-URL construction.
	ErrStreamValue ErrorCode = "SHP201"
	// ErrContainedPath indicates a contained element whose path does not end in a navigation property.
	ErrContainedPath ErrorCode = "SHP202"
	// ErrUnsupportedPrimitive indicates a primitive value with no protocol type.
	ErrUnsupportedPrimitive ErrorCode = "SHP203"
	// ErrInvalidSegment indicates a path segment that cannot follow the previous one.
	ErrInvalidSegment ErrorCode = "SHP204"
	// ErrUnknownProperty indicates a property that a closed structured type does not declare.
	ErrUnknownProperty ErrorCode = "SHP205"
	// ErrNoContainer indicates path binding against a catalog without an entity container.
	ErrNoContainer ErrorCode = "SHP206"
)

// NewArgument creates an ARG001 error for a missing required input.
func NewArgument(name string) *Error {
	return newError(ErrMissingArgument, CategoryArgument, SeverityError, name,
		fmt.Sprintf("value for %q must not be nil or empty", name))
}

// NewDuplicateElement creates an ARG002 error.
func NewDuplicateElement(qualifiedName, kind string) *Error {
	return newError(ErrDuplicateElement, CategoryArgument, SeverityError, qualifiedName,
		fmt.Sprintf("%s %q is already registered", kind, qualifiedName)).
		WithSuggestion("each type, term and container name may be registered once per catalog")
}

// NewCatalogSealed creates an ARG003 error.
func NewCatalogSealed(qualifiedName string) *Error {
	return newError(ErrCatalogSealed, CategoryArgument, SeverityError, qualifiedName,
		fmt.Sprintf("cannot register %q: catalog is sealed", qualifiedName))
}

// NewUnsupportedElement creates an ARG004 error.
func NewUnsupportedElement(qualifiedName, kind string) *Error {
	return newError(ErrUnsupportedElement, CategoryArgument, SeverityError, qualifiedName,
		fmt.Sprintf("element %q has unsupported kind %s", qualifiedName, kind))
}

// NewUnresolved creates a UNR1xx diagnostic for a failed lookup.
// Unresolved references are carried by placeholder elements and reported as warnings.
func NewUnresolved(code ErrorCode, kind, qualifiedName string, loc Location) *Error {
	return newError(code, CategoryUnresolved, SeverityWarning, qualifiedName,
		fmt.Sprintf("the %s %q could not be found", kind, qualifiedName)).WithLocation(loc)
}

// NewStreamValue creates an SHP201 error.
func NewStreamValue() *Error {
	return newError(ErrStreamValue, CategoryShape, SeverityError, "",
		"stream values must be properties of an entry and cannot describe a context URL")
}

// NewContainedPath creates an SHP202 error.
func NewContainedPath(resourcePath string) *Error {
	return newError(ErrContainedPath, CategoryShape, SeverityError, resourcePath,
		fmt.Sprintf("the path %q is not valid for a contained element: it must end with a navigation property", resourcePath))
}

// NewUnsupportedPrimitive creates an SHP203 error.
func NewUnsupportedPrimitive(goType string) *Error {
	return newError(ErrUnsupportedPrimitive, CategoryShape, SeverityError, goType,
		fmt.Sprintf("no primitive type is defined for values of Go type %s", goType))
}

// NewInvalidSegment creates an SHP204 error.
func NewInvalidSegment(segment, reason string) *Error {
	return newError(ErrInvalidSegment, CategoryShape, SeverityError, segment,
		fmt.Sprintf("segment %q is not valid here: %s", segment, reason))
}

// NewUnknownProperty creates an SHP205 error.
func NewUnknownProperty(typeName, property string) *Error {
	return newError(ErrUnknownProperty, CategoryShape, SeverityError, property,
		fmt.Sprintf("type %q declares no property %q", typeName, property))
}

// NewNoContainer creates an SHP206 error.
func NewNoContainer() *Error {
	return newError(ErrNoContainer, CategoryShape, SeverityError, "",
		"the catalog has no entity container to resolve the first path segment against")
}
