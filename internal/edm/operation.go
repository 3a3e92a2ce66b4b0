package edm

// OperationParameter is a named, typed parameter of an action or function.
type OperationParameter struct {
	Name string
	Type TypeReference
}

// NewParameter creates an operation parameter.
func NewParameter(name string, typ TypeReference) *OperationParameter {
	return &OperationParameter{Name: name, Type: typ}
}

// Operation is an action or a function. Bound operations take the type they
// are invoked on as their first parameter.
type Operation interface {
	SchemaElement
	IsBound() bool
	Parameters() []*OperationParameter
	ReturnType() TypeReference
	FindParameter(name string) (*OperationParameter, bool)
}

// BindingType returns the type a bound operation is invoked on, or nil.
func BindingType(op Operation) Type {
	if op == nil || !op.IsBound() {
		return nil
	}
	params := op.Parameters()
	if len(params) == 0 {
		return nil
	}
	return params[0].Type.Definition
}

type operation struct {
	namespace  string
	name       string
	bound      bool
	params     []*OperationParameter
	returnType TypeReference
}

func (o *operation) Name() string              { return o.name }
func (o *operation) Namespace() string         { return o.namespace }
func (o *operation) IsBound() bool             { return o.bound }
func (o *operation) ReturnType() TypeReference { return o.returnType }

func (o *operation) Parameters() []*OperationParameter {
	return append([]*OperationParameter(nil), o.params...)
}

func (o *operation) FindParameter(name string) (*OperationParameter, bool) {
	for _, p := range o.params {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Action is an operation that may have side effects.
type Action struct {
	operation
}

// NewAction creates an action. For bound actions the first parameter is the binding parameter.
func NewAction(namespace, name string, returnType TypeReference, bound bool, params ...*OperationParameter) *Action {
	return &Action{operation{
		namespace:  namespace,
		name:       name,
		bound:      bound,
		params:     params,
		returnType: returnType,
	}}
}

func (a *Action) SchemaElementKind() SchemaElementKind { return SchemaElementAction }

// Function is a side-effect free operation.
type Function struct {
	operation
	composable bool
}

// NewFunction creates a function. For bound functions the first parameter is the binding parameter.
func NewFunction(namespace, name string, returnType TypeReference, bound, composable bool, params ...*OperationParameter) *Function {
	return &Function{
		operation: operation{
			namespace:  namespace,
			name:       name,
			bound:      bound,
			params:     params,
			returnType: returnType,
		},
		composable: composable,
	}
}

func (f *Function) SchemaElementKind() SchemaElementKind { return SchemaElementFunction }

// IsComposable reports whether further path segments may follow the function.
func (f *Function) IsComposable() bool { return f.composable }
