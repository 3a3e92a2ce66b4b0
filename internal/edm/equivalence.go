package edm

// IsEquivalentTo reports whether two type definitions denote the same type.
// Schema types are compared by kind and full name; collections by element type.
func IsEquivalentTo(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	if a.TypeKind() != b.TypeKind() {
		return false
	}

	if ac, ok := a.(*CollectionType); ok {
		bc, ok := b.(*CollectionType)
		if !ok {
			return false
		}
		return IsEquivalentTo(ac.ElementType().Definition, bc.ElementType().Definition)
	}

	as, aok := a.(SchemaElement)
	bs, bok := b.(SchemaElement)
	return aok && bok && FullName(as) == FullName(bs)
}

// IsOrInheritsFrom reports whether t equals ancestor or derives from it.
func IsOrInheritsFrom(t, ancestor Type) bool {
	if IsEquivalentTo(t, ancestor) {
		return true
	}
	st, ok := t.(StructuredType)
	if !ok {
		return false
	}
	for base := st.BaseType(); base != nil; base = base.BaseType() {
		if IsEquivalentTo(base, ancestor) {
			return true
		}
	}
	return false
}

// HasEquivalentBindingType reports whether op is bound and can be invoked on
// bindingType: the binding parameter's type is bindingType or one of its
// ancestors. Collections match element-wise and nullability is ignored.
func HasEquivalentBindingType(op Operation, bindingType Type) bool {
	if op == nil || bindingType == nil || !op.IsBound() {
		return false
	}
	params := op.Parameters()
	if len(params) == 0 {
		return false
	}
	return isBindable(params[0].Type.Definition, bindingType)
}

func isBindable(parameterType, bindingType Type) bool {
	if parameterType == nil {
		return false
	}

	pc, pok := parameterType.(*CollectionType)
	bc, bok := bindingType.(*CollectionType)
	switch {
	case pok && bok:
		return isBindable(pc.ElementType().Definition, bc.ElementType().Definition)
	case pok || bok:
		return false
	}

	return IsOrInheritsFrom(bindingType, parameterType)
}
