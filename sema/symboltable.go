package sema

// SymbolTable is a stack of Scopes. The global scope (level 0) is created
// at construction, pre-populated with built-ins, and never popped (spec.md
// §3).
type SymbolTable struct {
	current *Scope
	global  *Scope
}

// NewSymbolTable creates a table with a freshly built-in-populated global
// scope.
func NewSymbolTable() *SymbolTable {
	g := newScope(nil)
	st := &SymbolTable{current: g, global: g}
	registerBuiltins(st)
	return st
}

// Global returns the never-popped root scope.
func (st *SymbolTable) Global() *Scope { return st.global }

// Current returns the top-of-stack scope.
func (st *SymbolTable) Current() *Scope { return st.current }

// EnterScope pushes a new child of the current scope and makes it current.
func (st *SymbolTable) EnterScope() *Scope {
	st.current = newScope(st.current)
	return st.current
}

// ExitScope pops the current scope, restoring its parent. Popping the
// global scope is a programming error and panics, matching the invariant
// that the global scope is never popped.
func (st *SymbolTable) ExitScope() {
	if st.current == st.global {
		panic("sema: cannot pop the global scope")
	}
	st.current = st.current.parent
}

// EnterWithScope pushes a scope annotated with a with-statement's target
// symbol and resolved record type, so field lookups inside the with body
// can fall through to it.
func (st *SymbolTable) EnterWithScope(target *Symbol, typ *TypeInfo) *Scope {
	sc := st.EnterScope()
	sc.WithTarget = target
	sc.WithType = typ
	return sc
}

// Define binds sym in the current scope. Returns false on a local
// duplicate-name conflict.
func (st *SymbolTable) Define(sym *Symbol) bool {
	return st.current.defineLocal(sym)
}

// DefineGlobal binds sym directly in the global scope, used for built-in
// registration regardless of what scope is current at call time.
func (st *SymbolTable) DefineGlobal(sym *Symbol) bool {
	return st.global.defineLocal(sym)
}

// DefineOverload adds sym as one more overload of its name in the current
// scope.
func (st *SymbolTable) DefineOverload(sym *Symbol) {
	st.current.addOverload(sym)
}

// Resolve looks up name starting at the current scope and walking toward
// global, consulting each with-target's field set along the way (spec.md
// §4.3's with-statement rule). withQualifier is set to the with-target's
// name when resolution succeeded through a with scope's record fields; the
// returned Symbol in that case is a synthetic one carrying the *field's*
// type, not the with-target's own record type.
func (st *SymbolTable) Resolve(name string) (sym *Symbol, withQualifier string, ok bool) {
	for sc := st.current; sc != nil; sc = sc.parent {
		if s, found := sc.lookupLocal(name); found {
			return s, "", true
		}
		if sc.WithType != nil {
			if field, isField := sc.WithType.FieldType(name); isField {
				fieldSym := &Symbol{
					Name:     name,
					Kind:     SymVariable,
					Type:     field.Type,
					TypeName: field.TypeName,
				}
				return fieldSym, sc.WithTarget.Name, true
			}
		}
	}
	return nil, "", false
}

// ResolveLocal looks up name against the current scope only.
func (st *SymbolTable) ResolveLocal(name string) (*Symbol, bool) {
	return st.current.lookupLocal(name)
}

// OverloadSet returns the overloads of name visible from the current
// scope, searching outward like Resolve but returning the whole set from
// the first scope that defines any.
func (st *SymbolTable) OverloadSet(name string) []*Symbol {
	for sc := st.current; sc != nil; sc = sc.parent {
		if set := sc.overloadSet(name); len(set) > 0 {
			return set
		}
		if _, found := sc.lookupLocal(name); found {
			return nil
		}
	}
	return nil
}
