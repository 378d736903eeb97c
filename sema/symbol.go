package sema

import "github.com/pascalc/pascalc/ast"

// SymbolKind classifies what a Symbol denotes, per spec.md §3's symbol tuple.
type SymbolKind int

const (
	SymVariable SymbolKind = iota
	SymParameter
	SymConstant
	SymProcedure
	SymFunction
	SymType
)

func (k SymbolKind) String() string {
	switch k {
	case SymVariable:
		return "variable"
	case SymParameter:
		return "parameter"
	case SymConstant:
		return "constant"
	case SymProcedure:
		return "procedure"
	case SymFunction:
		return "function"
	case SymType:
		return "type-definition"
	default:
		return "unknown"
	}
}

// ParamInfo is one resolved callable parameter: its mode (value/ref/const)
// and DataType, used for overload matching and the emitter's parameter
// lowering.
type ParamInfo struct {
	Name     string
	Type     DataType
	TypeName string
	Mode     ast.ParamMode
}

// Symbol is an entry in a Scope: a name bound to a kind, a DataType, and
// kind-dependent extension slots (spec.md §3).
type Symbol struct {
	Name       string
	Kind       SymbolKind
	Type       DataType
	ScopeLevel int

	// Variables with a user-defined type carry the original type name so
	// the emitter can recover record/array/enum shape via the TypeInfo
	// registry instead of just the coarse DataType.
	TypeName string

	// Type-alias symbols (SymType) carry the raw definition text.
	TypeText string

	// Pointer-typed variables/parameters.
	PointeeTypeName string

	// Constants carry their folded literal value (an enum member carries its
	// ordinal); no analyzer or emitter pass reads it.
	ConstValue any

	// Callables (SymProcedure/SymFunction).
	Params     []ParamInfo
	ReturnType DataType
	ReturnTypeName string
	IsForward  bool

	// Overloads holds every overload sharing Name when more than one
	// callable with this name exists in the defining scope; nil otherwise.
	// The scope's primary map still stores one representative (the first
	// definition) so simple-case lookups don't need to special-case it.
	Overloads []*Symbol
}

// IsCallable reports whether the symbol denotes a procedure or function.
func (s *Symbol) IsCallable() bool { return s.Kind == SymProcedure || s.Kind == SymFunction }
