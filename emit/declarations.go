package emit

import (
	"strings"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/sema"
)

func (e *Emitter) emitDeclSection(decls []ast.Decl) {
	for _, d := range decls {
		d.Accept(e)
	}
}

func (e *Emitter) VisitConstDecl(d *ast.ConstDecl) any {
	value := e.exprText(d.Value)
	if d.Type != "" {
		e.writef("constexpr %s %s = %s;", e.cppTypeRef(d.Type), d.Name, value)
	} else {
		e.writef("constexpr auto %s = %s;", d.Name, value)
	}
	return nil
}

// VisitLabelDecl is a no-op: C++ labels need no forward declaration, they
// simply appear at their LabelStmt.
func (e *Emitter) VisitLabelDecl(d *ast.LabelDecl) any { return nil }

func (e *Emitter) VisitTypeDecl(d *ast.TypeDecl) any {
	e.emitTypeDecl(d.Name, d.TypeText, d.Record != nil)
	return nil
}

func (e *Emitter) VisitVarDecl(d *ast.VarDecl) any {
	cppType := e.cppTypeRef(d.Type)
	for _, name := range d.Names {
		e.writef("%s %s{};", cppType, name)
	}
	return nil
}

// cppParamList renders a procedure/function's parameter list: by-value
// parameters pass by value, `var` parameters by mutable reference, `const`
// parameters by const reference (spec.md §4.4's parameter-mode lowering).
func (e *Emitter) cppParamList(params []ast.Param) string {
	var parts []string
	for _, p := range params {
		cppType := e.cppTypeRef(p.Type)
		for _, name := range p.Names {
			switch p.Mode {
			case ast.ByRef:
				parts = append(parts, cppType+" &"+name)
			case ast.ByConstRef:
				parts = append(parts, "const "+cppType+" &"+name)
			default:
				parts = append(parts, cppType+" "+name)
			}
		}
	}
	return strings.Join(parts, ", ")
}

func (e *Emitter) VisitProcDecl(d *ast.ProcDecl) any {
	name := e.declCppName(d.Name, d.Params)
	params := e.cppParamList(d.Params)

	if d.Body == nil {
		e.writef("void %s(%s);", name, params)
		return nil
	}

	if e.funcDepth == 0 {
		e.writef("void %s(%s) {", name, params)
	} else {
		e.writef("auto %s = [&](%s) {", name, params)
	}
	e.emitCallableBody(d.Decls, d.Body, "", "")
	if e.funcDepth == 0 {
		e.writeLine("}")
	} else {
		e.writeLine("};")
	}
	return nil
}

func (e *Emitter) VisitFuncDecl(d *ast.FuncDecl) any {
	name := e.declCppName(d.Name, d.Params)
	params := e.cppParamList(d.Params)
	retType := e.cppTypeRef(d.ReturnType)

	if d.Body == nil {
		e.writef("%s %s(%s);", retType, name, params)
		return nil
	}

	if e.funcDepth == 0 {
		e.writef("%s %s(%s) {", retType, name, params)
	} else {
		e.writef("auto %s = [&](%s) -> %s {", name, params, retType)
	}
	e.emitCallableBody(d.Decls, d.Body, d.Name, retType)
	if e.funcDepth == 0 {
		e.writeLine("}")
	} else {
		e.writeLine("};")
	}
	return nil
}

// emitCallableBody emits a procedure/function's local declarations and
// statements between the already-written opening brace and the caller's
// closing brace. When returnName is non-empty, the body is a function's:
// a __result local is declared up front and returned at the end, and
// assignments to returnName inside the body are rewritten to it (spec.md
// §4.4's F_result rule).
func (e *Emitter) emitCallableBody(decls []ast.Decl, body *ast.CompoundStmt, returnName, returnCppType string) {
	e.indent++
	e.funcDepth++

	savedReturnName, savedReturnCpp := e.currentReturnName, e.currentReturnCpp
	e.currentReturnName, e.currentReturnCpp = returnName, returnCppType

	if returnName != "" {
		e.writef("%s __result{};", returnCppType)
	}
	e.emitDeclSection(decls)
	for _, s := range body.Stmts {
		e.emitStmt(s)
	}
	if returnName != "" {
		e.writeLine("return __result;")
	}

	e.currentReturnName, e.currentReturnCpp = savedReturnName, savedReturnCpp
	e.funcDepth--
	e.indent--
}

// calleeCppName resolves name to its Symbol (when one is visible at global
// scope — the emitter does not replay nested-scope entry the analyzer
// performed, so a deeply shadowed nested overload falls back to its bare
// name) and renders the disambiguated, possibly-mangled C++ name.
func (e *Emitter) calleeCppName(name string) string {
	sym, _, ok := e.analyzer.Symbols.Resolve(name)
	if !ok {
		return name
	}
	return mangledName(sym)
}

// declCppName names a procedure/function declaration being emitted. It
// mangles against params (this declaration's own parameter list) rather
// than whatever overload Resolve happens to return for the bare name,
// since two overloads sharing a name would otherwise collide on the first
// one's mangled suffix.
func (e *Emitter) declCppName(name string, params []ast.Param) string {
	sym, _, ok := e.analyzer.Symbols.Resolve(name)
	if !ok || len(sym.Overloads) <= 1 {
		return name
	}
	return name + "_" + mangleSuffix(e.paramDataTypes(params))
}

func (e *Emitter) paramDataTypes(params []ast.Param) []sema.DataType {
	var types []sema.DataType
	for _, p := range params {
		dt, _ := e.analyzer.ResolveTypeText(p.Type)
		for range p.Names {
			types = append(types, dt)
		}
	}
	return types
}

func (e *Emitter) VisitUsesDecl(d *ast.UsesDecl) any {
	e.writef("// uses %s", strings.Join(d.Names, ", "))
	return nil
}

func (e *Emitter) VisitUnitDecl(d *ast.UnitDecl) any {
	e.writeLine(e.EmitUnit(d))
	return nil
}

func (e *Emitter) VisitProgramDecl(d *ast.ProgramDecl) any {
	e.writeLine(e.EmitProgram(d))
	return nil
}
