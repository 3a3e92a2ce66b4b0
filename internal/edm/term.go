package edm

// Term is a value term that annotations apply values of.
type Term interface {
	SchemaElement
	Type() TypeReference
	AppliesTo() string
	DefaultValue() string
}

// ValueTerm is a declared value term.
type ValueTerm struct {
	namespace    string
	name         string
	typ          TypeReference
	appliesTo    string
	defaultValue string
}

// NewValueTerm creates a value term.
func NewValueTerm(namespace, name string, typ TypeReference) *ValueTerm {
	return &ValueTerm{namespace: namespace, name: name, typ: typ}
}

func (t *ValueTerm) Name() string                         { return t.name }
func (t *ValueTerm) Namespace() string                    { return t.namespace }
func (t *ValueTerm) SchemaElementKind() SchemaElementKind { return SchemaElementValueTerm }
func (t *ValueTerm) Type() TypeReference                  { return t.typ }
func (t *ValueTerm) AppliesTo() string                    { return t.appliesTo }
func (t *ValueTerm) DefaultValue() string                 { return t.defaultValue }

// SetAppliesTo restricts the kinds of elements the term applies to, e.g. "Property EntitySet".
func (t *ValueTerm) SetAppliesTo(appliesTo string) *ValueTerm {
	t.appliesTo = appliesTo
	return t
}

// SetDefaultValue sets the value used when an annotation omits one.
func (t *ValueTerm) SetDefaultValue(value string) *ValueTerm {
	t.defaultValue = value
	return t
}
