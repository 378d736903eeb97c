package emit

import (
	"strconv"
	"strings"

	"github.com/pascalc/pascalc/sema"
)

// builtinCppType maps the built-in Pascal type keywords to their C++
// runtime equivalents.
var builtinCppType = map[sema.DataType]string{
	sema.Integer:  "int",
	sema.Real:     "double",
	sema.Boolean:  "bool",
	sema.Char:     "char",
	sema.Byte:     "uint8_t",
	sema.String:   "PString",
	sema.Void:     "void",
	sema.FileType: "PFile",
}

// looksLikeIdentifier reports whether s is a clean C++-legal name rather
// than raw reconstructed type text (which contains spaces/brackets) —
// distinguishing a named `type X = ...` declaration (emit X directly, a
// `using` for it was already written) from an inline anonymous shape
// (expand it in place).
func looksLikeIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

// cppTypeRef renders raw (a var/field/param/return type's raw textual
// definition) as the C++ type to declare it with.
func (e *Emitter) cppTypeRef(raw string) string {
	dt, regKey := e.analyzer.ResolveTypeText(raw)
	if regKey == "" {
		if cpp, ok := builtinCppType[dt]; ok {
			return cpp
		}
		return "int"
	}
	if looksLikeIdentifier(regKey) {
		return regKey
	}
	info := e.analyzer.LookupType(regKey)
	if info == nil {
		return builtinCppType[dt]
	}
	return e.cppShapeExpr(info)
}

// cppShapeExpr expands info's shape into a concrete (possibly anonymous,
// template-instantiated) C++ type expression.
func (e *Emitter) cppShapeExpr(info *sema.TypeInfo) string {
	switch info.Shape {
	case sema.ShapeEnum:
		return "int" // enum ordinal storage; named enum classes are emitted by emitTypeDecl for `type` declarations
	case sema.ShapeRange:
		return "int"
	case sema.ShapeSet:
		return "PSet<256>"
	case sema.ShapeBoundedString:
		return "PString"
	case sema.ShapeArray:
		return e.cppArrayType(info)
	case sema.ShapeFile:
		if info.FileElemTypeName == "" {
			return "PFile"
		}
		return "PTypedFile<" + e.cppTypeRef(info.FileElemTypeName) + ">"
	case sema.ShapePointer:
		return e.cppTypeRef(info.PointeeTypeName) + " *"
	case sema.ShapeRecord:
		if looksLikeIdentifier(info.Name) {
			return info.Name
		}
		return "void * /* unsupported: anonymous inline record type */"
	default: // ShapeAlias
		return e.cppTypeRef(info.AliasTarget)
	}
}

func (e *Emitter) cppArrayType(info *sema.TypeInfo) string {
	elem := e.cppTypeRef(info.ElemTypeName)
	t := elem
	// Nest a PArray per dimension, innermost dimension first, so
	// `array[1..2, 1..3] of Integer` becomes PArray<PArray<int,1,3>,1,2>.
	for i := len(info.Dims) - 1; i >= 0; i-- {
		d := info.Dims[i]
		t = "PArray<" + t + "," + strconv.Itoa(d.Low) + "," + strconv.Itoa(d.High) + ">"
	}
	return t
}

// emitTypeDecl emits one user-defined `type` declaration's C++ definition:
// enums as scoped enums, records as structs, everything else as a `using`
// alias.
func (e *Emitter) emitTypeDecl(name, typeText string, record bool) {
	if record {
		info := e.analyzer.LookupType(name)
		if info == nil {
			return
		}
		e.writef("struct %s {", name)
		e.indent++
		for _, f := range info.Fields {
			e.writef("%s %s;", e.cppTypeRef(f.TypeName), f.Name)
		}
		e.indent--
		e.writeLine("};")
		return
	}

	info := e.analyzer.LookupType(name)
	if info != nil && info.Shape == sema.ShapeEnum {
		e.writef("enum class %s : int { %s };", name, strings.Join(info.EnumNames, ", "))
		return
	}
	e.writef("using %s = %s;", name, e.cppTypeRef(typeText))
}
