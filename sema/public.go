package sema

import "github.com/pascalc/pascalc/ast"

// Public accessors consumed by the emitter, which needs the analyzer's
// resolved type registry but must not duplicate its resolution logic
// (spec.md §4.4: the emitter works from "the AST plus the symbol table"
// the analyzer already built).

// Types returns the full set of resolved user-defined and anonymous
// TypeInfo records, keyed by lowered name.
func (a *Analyzer) Types() map[string]*TypeInfo { return a.types }

// LookupType exposes lookupType for the emitter.
func (a *Analyzer) LookupType(name string) *TypeInfo { return a.lookupType(name) }

// ResolveTypeText exposes resolveTypeText for the emitter, which needs to
// turn a raw type-definition string (e.g. a var declaration's Type field)
// into the same (DataType, registryKey) pair the analyzer computed.
func (a *Analyzer) ResolveTypeText(raw string) (DataType, string) { return a.resolveTypeText(raw) }

// NamedTypeOf exposes namedTypeOf for the emitter's field/index/pointer
// lowering, which needs an expression's named type, not just its DataType.
func (a *Analyzer) NamedTypeOf(e ast.Expr) (DataType, string) { return a.namedTypeOf(e) }

// IsBuiltinName reports whether name refers to one of the registered
// built-in procedures/functions (spec.md §4.3), used by the emitter to
// decide between a built-in dispatch and a user-defined call.
func IsBuiltinName(name string) bool { return isBuiltin(name) }

// ExprType exposes typeOf for the emitter, which needs an expression's
// coarse DataType in the rare cases it can't avoid it — distinguishing a
// logical `and`/`or`/`xor` (C++ &&/||/!=) from its bitwise counterpart on
// integers (C++ &/|/^).
func (a *Analyzer) ExprType(e ast.Expr) DataType { return a.typeOf(e) }

// ResolveCall exposes resolveCall for the emitter, which needs to pick the
// same overload the analyzer picked for a given call site in order to emit
// that overload's mangled name rather than an arbitrary one sharing its
// bare Pascal name.
func (a *Analyzer) ResolveCall(name string, argTypes []DataType) (*Symbol, string, bool) {
	return a.resolveCall(name, argTypes)
}

// CharLiteralOrdinal exposes ordinalOfCharLiteral for the emitter, which
// needs the same decoding of a quoted char or #N ordinal literal the
// analyzer uses when it resolves a char-bounded range or array dimension.
func CharLiteralOrdinal(text string) int { return ordinalOfCharLiteral(text) }
