package emit

import (
	"strings"

	"github.com/pascalc/pascalc/sema"
)

// typeAbbrev renders a DataType as a short token suitable for a mangled
// C++ identifier suffix.
func typeAbbrev(dt sema.DataType) string {
	switch dt {
	case sema.Integer:
		return "i"
	case sema.Real:
		return "r"
	case sema.Boolean:
		return "b"
	case sema.Char:
		return "c"
	case sema.Byte:
		return "y"
	case sema.String:
		return "s"
	case sema.Pointer:
		return "p"
	case sema.FileType:
		return "f"
	default:
		return "x"
	}
}

// mangleSuffix renders a parameter-type suffix for an overloaded callable's
// C++ name; an empty parameter list still needs a suffix so the emitted
// zero-arg overload doesn't collide with the scheme's own naming.
func mangleSuffix(types []sema.DataType) string {
	if len(types) == 0 {
		return "v"
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = typeAbbrev(t)
	}
	return strings.Join(parts, "")
}

// mangledName renders sym's C++ name: its Pascal spelling unchanged unless
// it's one of several overloads sharing that name, in which case a
// parameter-type suffix disambiguates it (spec.md §4.4's "overload name
// mangling") since emitted overloads aren't guaranteed to be distinguishable
// by C++'s own overload resolution once implicit numeric conversions are in
// play the same way Pascal's widening rules are.
func mangledName(sym *sema.Symbol) string {
	if len(sym.Overloads) <= 1 {
		return sym.Name
	}
	types := make([]sema.DataType, len(sym.Params))
	for i, p := range sym.Params {
		types[i] = p.Type
	}
	return sym.Name + "_" + mangleSuffix(types)
}
