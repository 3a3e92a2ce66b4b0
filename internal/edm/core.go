package edm

import "sync"

// CoreVocabularyNamespace is the namespace of the built-in Core vocabulary terms.
const CoreVocabularyNamespace = "Org.OData.Core.V1"

var (
	coreOnce       sync.Once
	coreCatalog    *Catalog
	coreVocabulary *Catalog
	primitives     map[PrimitiveTypeKind]*PrimitiveType
)

func initCore() {
	primitives = make(map[PrimitiveTypeKind]*PrimitiveType, len(primitiveNames))
	coreCatalog = newCatalog()
	for kind := PrimitiveBinary; kind <= PrimitiveTimeOfDay; kind++ {
		p := &PrimitiveType{kind: kind}
		primitives[kind] = p
		mustRegister(coreCatalog, p)
	}
	coreCatalog.Seal()

	// PrimitiveRef would re-enter coreOnce here.
	str := TypeReference{Definition: primitives[PrimitiveString]}
	boolean := TypeReference{Definition: primitives[PrimitiveBoolean]}

	coreVocabulary = newCatalog()
	_ = coreVocabulary.DeclareAlias(CoreVocabularyNamespace, "Core")
	for _, term := range []*ValueTerm{
		NewValueTerm(CoreVocabularyNamespace, "Description", str),
		NewValueTerm(CoreVocabularyNamespace, "LongDescription", str),
		NewValueTerm(CoreVocabularyNamespace, "IsLanguageDependent", boolean).SetAppliesTo("Term Property").SetDefaultValue("true"),
		NewValueTerm(CoreVocabularyNamespace, "Computed", boolean).SetAppliesTo("Property").SetDefaultValue("true"),
		NewValueTerm(CoreVocabularyNamespace, "Immutable", boolean).SetAppliesTo("Property").SetDefaultValue("true"),
		NewValueTerm(CoreVocabularyNamespace, "IsURL", boolean).SetAppliesTo("Property Term").SetDefaultValue("true"),
		NewValueTerm(CoreVocabularyNamespace, "AcceptableMediaTypes", CollectionRef(str)).SetAppliesTo("EntityType Property"),
		NewValueTerm(CoreVocabularyNamespace, "MediaType", str).SetAppliesTo("Property"),
		NewValueTerm(CoreVocabularyNamespace, "OptimisticConcurrency", CollectionRef(str)).SetAppliesTo("EntitySet"),
	} {
		mustRegister(coreVocabulary, term)
	}
	coreVocabulary.Seal()
}

func mustRegister(c *Catalog, e SchemaElement) {
	if err := c.Register(e); err != nil {
		panic(err)
	}
}

// CoreCatalog returns the shared catalog of Edm primitive types. It is sealed.
func CoreCatalog() *Catalog {
	coreOnce.Do(initCore)
	return coreCatalog
}

// CoreVocabulary returns the shared catalog of Core vocabulary terms. It is sealed.
func CoreVocabulary() *Catalog {
	coreOnce.Do(initCore)
	return coreVocabulary
}

// Primitive returns the shared primitive type for kind, or nil for PrimitiveNone.
func Primitive(kind PrimitiveTypeKind) *PrimitiveType {
	coreOnce.Do(initCore)
	return primitives[kind]
}

// PrimitiveRef returns a reference to the primitive type for kind.
func PrimitiveRef(kind PrimitiveTypeKind, nullable bool) TypeReference {
	p := Primitive(kind)
	if p == nil {
		return TypeReference{}
	}
	return TypeReference{Definition: p, Nullable: nullable}
}
