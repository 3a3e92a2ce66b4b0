package edm

import (
	"github.com/conduit-lang/odatacore/internal/errors"
)

// Unresolved is implemented by every placeholder element. A placeholder
// stands in for an element whose lookup failed; it answers the same
// questions as the real element with empty answers, and carries the
// diagnostic a later validation pass reports.
type Unresolved interface {
	SchemaElement
	Diagnostic() *errors.Error
	Location() errors.Location
}

// IsUnresolved reports whether e is a placeholder for a failed lookup. It
// accepts types as well as elements.
func IsUnresolved(e any) bool {
	_, ok := e.(Unresolved)
	return ok
}

// Diagnostics collects the diagnostics of all placeholders among elements.
func Diagnostics(elements ...Element) errors.ErrorList {
	var list errors.ErrorList
	for _, e := range elements {
		if u, ok := e.(Unresolved); ok {
			list = append(list, u.Diagnostic())
		}
	}
	return list
}

type unresolvedElement struct {
	namespace  string
	name       string
	diagnostic *errors.Error
}

func newUnresolvedElement(code errors.ErrorCode, kind, qualifiedName string, loc errors.Location) unresolvedElement {
	ns, name := SplitQualifiedName(qualifiedName)
	return unresolvedElement{
		namespace:  ns,
		name:       name,
		diagnostic: errors.NewUnresolved(code, kind, qualifiedName, loc),
	}
}

func (u *unresolvedElement) Name() string              { return u.name }
func (u *unresolvedElement) Namespace() string         { return u.namespace }
func (u *unresolvedElement) Diagnostic() *errors.Error { return u.diagnostic }
func (u *unresolvedElement) Location() errors.Location { return u.diagnostic.Location }

// UnresolvedType stands in for a type definition that could not be found.
type UnresolvedType struct {
	unresolvedElement
}

// NewUnresolvedType creates a placeholder type.
func NewUnresolvedType(qualifiedName string, loc errors.Location) *UnresolvedType {
	return &UnresolvedType{newUnresolvedElement(errors.ErrUnresolvedType, "type", qualifiedName, loc)}
}

func (u *UnresolvedType) SchemaElementKind() SchemaElementKind { return SchemaElementTypeDefinition }
func (u *UnresolvedType) TypeKind() TypeKind                   { return TypeKindNone }

// UnresolvedEntityType stands in for an entity type that could not be found,
// where the caller needs a structured type.
type UnresolvedEntityType struct {
	unresolvedElement
}

// NewUnresolvedEntityType creates a placeholder entity type.
func NewUnresolvedEntityType(qualifiedName string, loc errors.Location) *UnresolvedEntityType {
	return &UnresolvedEntityType{newUnresolvedElement(errors.ErrUnresolvedType, "entity type", qualifiedName, loc)}
}

func (u *UnresolvedEntityType) SchemaElementKind() SchemaElementKind { return SchemaElementTypeDefinition }
func (u *UnresolvedEntityType) TypeKind() TypeKind                   { return TypeKindEntity }
func (u *UnresolvedEntityType) BaseType() StructuredType             { return nil }
func (u *UnresolvedEntityType) IsAbstract() bool                     { return false }
func (u *UnresolvedEntityType) IsOpen() bool                         { return false }
func (u *UnresolvedEntityType) DeclaredProperties() []Property       { return nil }
func (u *UnresolvedEntityType) FindProperty(string) (Property, bool) { return nil, false }

// UnresolvedOperation stands in for an operation that could not be found.
// It reports no parameters, no return type, and is never bound.
type UnresolvedOperation struct {
	unresolvedElement
}

// NewUnresolvedOperation creates a placeholder operation of unknown kind.
func NewUnresolvedOperation(qualifiedName string, loc errors.Location) *UnresolvedOperation {
	return &UnresolvedOperation{newUnresolvedElement(errors.ErrUnresolvedOperation, "operation", qualifiedName, loc)}
}

func (u *UnresolvedOperation) SchemaElementKind() SchemaElementKind { return SchemaElementNone }
func (u *UnresolvedOperation) IsBound() bool                        { return false }
func (u *UnresolvedOperation) Parameters() []*OperationParameter    { return nil }
func (u *UnresolvedOperation) ReturnType() TypeReference            { return TypeReference{} }

func (u *UnresolvedOperation) FindParameter(string) (*OperationParameter, bool) {
	return nil, false
}

// UnresolvedAction is an UnresolvedOperation known to be an action.
type UnresolvedAction struct {
	UnresolvedOperation
}

// NewUnresolvedAction creates a placeholder action.
func NewUnresolvedAction(qualifiedName string, loc errors.Location) *UnresolvedAction {
	return &UnresolvedAction{UnresolvedOperation{newUnresolvedElement(errors.ErrUnresolvedOperation, "action", qualifiedName, loc)}}
}

func (u *UnresolvedAction) SchemaElementKind() SchemaElementKind { return SchemaElementAction }

// UnresolvedFunction is an UnresolvedOperation known to be a function.
type UnresolvedFunction struct {
	UnresolvedOperation
}

// NewUnresolvedFunction creates a placeholder function.
func NewUnresolvedFunction(qualifiedName string, loc errors.Location) *UnresolvedFunction {
	return &UnresolvedFunction{UnresolvedOperation{newUnresolvedElement(errors.ErrUnresolvedOperation, "function", qualifiedName, loc)}}
}

func (u *UnresolvedFunction) SchemaElementKind() SchemaElementKind { return SchemaElementFunction }

// IsComposable is always false for a placeholder function.
func (u *UnresolvedFunction) IsComposable() bool { return false }

// UnresolvedValueTerm stands in for a term that could not be found.
type UnresolvedValueTerm struct {
	unresolvedElement
}

// NewUnresolvedValueTerm creates a placeholder term.
func NewUnresolvedValueTerm(qualifiedName string, loc errors.Location) *UnresolvedValueTerm {
	return &UnresolvedValueTerm{newUnresolvedElement(errors.ErrUnresolvedTerm, "term", qualifiedName, loc)}
}

func (u *UnresolvedValueTerm) SchemaElementKind() SchemaElementKind { return SchemaElementValueTerm }
func (u *UnresolvedValueTerm) Type() TypeReference                  { return TypeReference{} }
func (u *UnresolvedValueTerm) AppliesTo() string                    { return "" }
func (u *UnresolvedValueTerm) DefaultValue() string                 { return "" }

// UnresolvedEntityContainer stands in for a container that could not be found.
type UnresolvedEntityContainer struct {
	unresolvedElement
}

// NewUnresolvedEntityContainer creates a placeholder container.
func NewUnresolvedEntityContainer(qualifiedName string, loc errors.Location) *UnresolvedEntityContainer {
	return &UnresolvedEntityContainer{newUnresolvedElement(errors.ErrUnresolvedContainer, "entity container", qualifiedName, loc)}
}

func (u *UnresolvedEntityContainer) SchemaElementKind() SchemaElementKind {
	return SchemaElementEntityContainer
}

func (u *UnresolvedEntityContainer) NavigationSources() []NavigationSource { return nil }

func (u *UnresolvedEntityContainer) FindNavigationSource(string) (NavigationSource, bool) {
	return nil, false
}

var (
	_ SchemaType     = (*UnresolvedType)(nil)
	_ StructuredType = (*UnresolvedEntityType)(nil)
	_ Operation      = (*UnresolvedOperation)(nil)
	_ Operation      = (*UnresolvedAction)(nil)
	_ Operation      = (*UnresolvedFunction)(nil)
	_ Term           = (*UnresolvedValueTerm)(nil)
	_ Container      = (*UnresolvedEntityContainer)(nil)
	_ Unresolved     = (*UnresolvedAction)(nil)
)
