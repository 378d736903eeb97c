package sema

// resolveCall picks the best-matching overload of name for the given
// argument types, per spec.md §4.3: "Lookup with a concrete argument-type
// vector returns the symbol whose parameter types match position-by-
// position; on no match, a fall-through to the name's primary
// (non-overloaded) symbol is attempted, and finally the parent scope is
// consulted." The outward parent-scope fallthrough is already built into
// Symbols.Resolve/OverloadSet, which walk the scope chain.
func (a *Analyzer) resolveCall(name string, argTypes []DataType) (*Symbol, string, bool) {
	if set := a.Symbols.OverloadSet(name); len(set) > 1 {
		if match := matchOverload(set, argTypes); match != nil {
			return match, "", true
		}
	}
	return a.Symbols.Resolve(name)
}

// matchOverload returns the first candidate whose parameter types match
// argTypes position-by-position (allowing integer-to-real widening, the
// same implicit conversion assignment allows), or nil if none matches.
func matchOverload(candidates []*Symbol, argTypes []DataType) *Symbol {
	for _, c := range candidates {
		if len(c.Params) != len(argTypes) {
			continue
		}
		ok := true
		for i, p := range c.Params {
			if !paramMatches(p.Type, argTypes[i]) {
				ok = false
				break
			}
		}
		if ok {
			return c
		}
	}
	return nil
}

func paramMatches(paramType, argType DataType) bool {
	if paramType == argType {
		return true
	}
	if paramType == Real && argType == Integer {
		return true
	}
	if paramType == String && argType == Char {
		return true
	}
	return paramType == Unknown || argType == Unknown
}
