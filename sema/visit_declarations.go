package sema

import (
	"strconv"
	"strings"

	"github.com/pascalc/pascalc/ast"
)

// processDecls analyzes a declaration section in source order: each
// declaration is defined into the current scope before later ones are
// analyzed, so later declarations (and the section's own body) can refer
// back to earlier ones. Forward-declared procedures/functions are the one
// exception, resolved separately via forwardPending.
func (a *Analyzer) processDecls(decls []ast.Decl) {
	for _, d := range decls {
		d.Accept(a)
	}
}

func (a *Analyzer) VisitConstDecl(d *ast.ConstDecl) any {
	vt := a.typeOf(d.Value)
	dt, typeName := vt, ""
	if d.Type != "" {
		dt, typeName = a.resolveTypeText(d.Type)
	}
	sym := &Symbol{
		Name:       d.Name,
		Kind:       SymConstant,
		Type:       dt,
		TypeName:   typeName,
		ConstValue: foldConstant(d.Value),
	}
	if !a.Symbols.Define(sym) {
		a.addError(ErrRedeclaration, d, "%q is already declared in this scope", d.Name)
	}
	return nil
}

// foldConstant recovers a literal constant's Go-native value for
// Symbol.ConstValue. Anything beyond a bare literal is left unfolded (nil)
// rather than attempting general constant evaluation.
func foldConstant(e ast.Expr) any {
	lit, ok := e.(*ast.Literal)
	if !ok {
		return nil
	}
	switch lit.Kind {
	case ast.IntLit:
		n, _ := strconv.Atoi(lit.Text)
		return n
	case ast.RealLit:
		f, _ := strconv.ParseFloat(lit.Text, 64)
		return f
	case ast.BoolLit:
		return strings.EqualFold(lit.Text, "true")
	case ast.CharLit:
		return ordinalOfCharLiteral(lit.Text)
	default:
		return lit.Text
	}
}

func (a *Analyzer) VisitLabelDecl(d *ast.LabelDecl) any {
	for _, name := range d.Names {
		sym := &Symbol{Name: name, Kind: SymVariable, Type: Unknown}
		a.Symbols.Define(sym)
	}
	return nil
}

func (a *Analyzer) VisitTypeDecl(d *ast.TypeDecl) any {
	var dt DataType
	if d.Record != nil {
		info := a.buildRecordTypeInfo(d.Name, d.Record)
		seen := make(map[string]bool, len(info.Fields))
		for _, f := range info.Fields {
			if seen[strings.ToLower(f.Name)] {
				a.addError(ErrDuplicateField, d, "record %q declares field %q more than once", d.Name, f.Name)
			}
			seen[strings.ToLower(f.Name)] = true
		}
		a.registerType(info)
		dt = Custom
	} else {
		dt, _ = a.resolveNamedType(d.Name, d.TypeText)
		// An enumeration's member names become constants of the enum type.
		if info := a.lookupType(d.Name); info != nil && info.Shape == ShapeEnum {
			for i, member := range info.EnumNames {
				if !a.Symbols.Define(&Symbol{Name: member, Kind: SymConstant, Type: Custom, TypeName: d.Name, ConstValue: i}) {
					a.addError(ErrRedeclaration, d, "%q is already declared in this scope", member)
				}
			}
		}
	}
	sym := &Symbol{Name: d.Name, Kind: SymType, Type: dt, TypeName: d.Name, TypeText: d.TypeText}
	if !a.Symbols.Define(sym) {
		a.addError(ErrRedeclaration, d, "type %q is already declared in this scope", d.Name)
	}
	return nil
}

// buildRecordTypeInfo flattens a record's fixed fields plus every variant
// case's fields into one field list (spec.md §4.4: variant records are
// emitted without discriminant enforcement, so every case's fields simply
// coexist).
func (a *Analyzer) buildRecordTypeInfo(name string, r *ast.RecordType) *TypeInfo {
	info := &TypeInfo{Name: name, Base: Custom, Shape: ShapeRecord}
	for _, f := range r.Fields {
		info.Fields = append(info.Fields, a.resolveFieldDecl(f))
	}
	if r.Variant != nil {
		for _, c := range r.Variant.Cases {
			for _, f := range c.Fields {
				info.Fields = append(info.Fields, a.resolveFieldDecl(f))
			}
		}
	}
	return info
}

func (a *Analyzer) resolveFieldDecl(f ast.FieldDecl) RecordField {
	dt, typeName := a.resolveTypeText(f.Type)
	return RecordField{Name: f.Name, Type: dt, TypeName: typeName}
}

func (a *Analyzer) VisitVarDecl(d *ast.VarDecl) any {
	dt, typeName := a.resolveTypeText(d.Type)
	if dt == Unknown {
		a.addError(ErrUndefinedType, d, "undefined type %q", d.Type)
	}
	kind := SymVariable
	if d.Mode != ast.ByValue {
		kind = SymParameter
	}
	for _, name := range d.Names {
		sym := &Symbol{Name: name, Kind: kind, Type: dt, TypeName: typeName}
		if !a.Symbols.Define(sym) {
			a.addError(ErrRedeclaration, d, "%q is already declared in this scope", name)
		}
	}
	return nil
}

// resolveParams resolves a parameter list into both the ParamInfo slice
// used for overload matching and the per-parameter Symbols defined in the
// callable's own scope.
func (a *Analyzer) resolveParams(params []ast.Param) []ParamInfo {
	var out []ParamInfo
	for _, p := range params {
		dt, typeName := a.resolveTypeText(p.Type)
		for _, name := range p.Names {
			out = append(out, ParamInfo{Name: name, Type: dt, TypeName: typeName, Mode: p.Mode})
		}
	}
	return out
}

func (a *Analyzer) defineParams(params []ParamInfo) {
	for _, p := range params {
		sym := &Symbol{Name: p.Name, Kind: SymParameter, Type: p.Type, TypeName: p.TypeName}
		a.Symbols.Define(sym)
	}
}

func (a *Analyzer) VisitProcDecl(d *ast.ProcDecl) any {
	params := a.resolveParams(d.Params)
	k := key(d.Name)

	if d.Forward || d.Body == nil {
		sym := &Symbol{Name: d.Name, Kind: SymProcedure, Type: Unknown, Params: params, ReturnType: Unknown, IsForward: true}
		a.defineCallable(sym)
		a.forwardPending[k] = sym
		return nil
	}

	a.resolveForwardOrDefine(k, &Symbol{Name: d.Name, Kind: SymProcedure, Type: Unknown, Params: params, ReturnType: Unknown})

	savedName, savedType, savedLoop := a.currentReturnName, a.currentReturnType, a.loopDepth
	a.currentReturnName, a.currentReturnType, a.loopDepth = "", Unknown, 0

	a.Symbols.EnterScope()
	a.defineParams(params)
	a.processDecls(d.Decls)
	a.analyzeStmt(d.Body)
	a.Symbols.ExitScope()

	a.currentReturnName, a.currentReturnType, a.loopDepth = savedName, savedType, savedLoop
	return nil
}

func (a *Analyzer) VisitFuncDecl(d *ast.FuncDecl) any {
	params := a.resolveParams(d.Params)
	retType, retTypeName := a.resolveTypeText(d.ReturnType)
	k := key(d.Name)

	if d.Forward || d.Body == nil {
		sym := &Symbol{Name: d.Name, Kind: SymFunction, Type: retType, Params: params, ReturnType: retType, ReturnTypeName: retTypeName, IsForward: true}
		a.defineCallable(sym)
		a.forwardPending[k] = sym
		return nil
	}

	a.resolveForwardOrDefine(k, &Symbol{Name: d.Name, Kind: SymFunction, Type: retType, Params: params, ReturnType: retType, ReturnTypeName: retTypeName})

	savedName, savedType, savedLoop := a.currentReturnName, a.currentReturnType, a.loopDepth
	a.currentReturnName, a.currentReturnType, a.loopDepth = d.Name, retType, 0

	a.Symbols.EnterScope()
	a.defineParams(params)
	a.processDecls(d.Decls)
	a.analyzeStmt(d.Body)
	a.Symbols.ExitScope()

	a.currentReturnName, a.currentReturnType, a.loopDepth = savedName, savedType, savedLoop
	return nil
}

// resolveForwardOrDefine handles a non-forward procedure/function
// declaration's definition. If a matching forward declaration is pending
// under k, the implementation fills it in place (same Symbol, so every
// call site resolved against the forward reference sees the real
// signature) rather than being registered as a second overload. Otherwise
// it's defined normally, becoming a genuine overload if the name already
// has an unrelated definition in scope.
func (a *Analyzer) resolveForwardOrDefine(k string, fresh *Symbol) *Symbol {
	if fwd, pending := a.forwardPending[k]; pending {
		fwd.Params = fresh.Params
		fwd.ReturnType = fresh.ReturnType
		fwd.ReturnTypeName = fresh.ReturnTypeName
		fwd.Type = fresh.Type
		fwd.IsForward = false
		delete(a.forwardPending, k)
		return fwd
	}
	a.defineCallable(fresh)
	return fresh
}

// defineCallable registers sym as an overload when its name already has a
// local definition (spec.md §4.3's overload resolution), otherwise as a
// plain definition.
func (a *Analyzer) defineCallable(sym *Symbol) {
	if _, exists := a.Symbols.ResolveLocal(sym.Name); exists {
		a.Symbols.DefineOverload(sym)
		return
	}
	a.Symbols.Define(sym)
}

// VisitUsesDecl is a no-op in the analyzer: cross-unit symbol resolution is
// the unit loader's job (spec.md §6), not the core analyzer's.
func (a *Analyzer) VisitUsesDecl(d *ast.UsesDecl) any { return nil }

func (a *Analyzer) VisitUnitDecl(d *ast.UnitDecl) any {
	a.AnalyzeUnit(d)
	return nil
}

func (a *Analyzer) VisitProgramDecl(d *ast.ProgramDecl) any {
	a.AnalyzeProgram(d)
	return nil
}
