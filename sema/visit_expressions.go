package sema

import "github.com/pascalc/pascalc/ast"

// typeOf type-checks e by driving it through the Visitor protocol and
// coercing the result back to a DataType (every expression Visit method
// returns one). Returns Unknown for a nil expression.
func (a *Analyzer) typeOf(e ast.Expr) DataType {
	if e == nil {
		return Unknown
	}
	if dt, ok := e.Accept(a).(DataType); ok {
		return dt
	}
	return Unknown
}

// namedTypeOf recurses structurally (not through Accept, since it must not
// emit diagnostics of its own) to recover the *named* type behind an
// expression, when one exists: an identifier's declared type name, a field
// access's field type name, an array index's element type name, or a
// pointer dereference's pointee type name. Used by field-access, indexing,
// and with-statement resolution, which need more than the coarse DataType.
func (a *Analyzer) namedTypeOf(e ast.Expr) (DataType, string) {
	switch n := e.(type) {
	case *ast.Ident:
		sym, _, ok := a.Symbols.Resolve(n.Name)
		if !ok {
			return Unknown, ""
		}
		if sym.IsCallable() {
			return sym.ReturnType, sym.ReturnTypeName
		}
		return sym.Type, sym.TypeName
	case *ast.FieldAccessExpr:
		_, recvTypeName := a.namedTypeOf(n.Receiver)
		info := a.lookupType(recvTypeName)
		if info == nil {
			return Unknown, ""
		}
		field, ok := info.FieldType(n.Field)
		if !ok {
			return Unknown, ""
		}
		return field.Type, field.TypeName
	case *ast.IndexExpr:
		_, recvTypeName := a.namedTypeOf(n.Receiver)
		info := a.lookupType(recvTypeName)
		if info == nil {
			return Unknown, ""
		}
		if info.Base == String {
			return Char, ""
		}
		return a.resolveTypeText(info.ElemTypeName)
	case *ast.DerefExpr:
		_, opTypeName := a.namedTypeOf(n.Operand)
		info := a.lookupType(opTypeName)
		if info == nil || info.Shape != ShapePointer {
			return Unknown, ""
		}
		return a.resolveTypeText(info.PointeeTypeName)
	case *ast.CallExpr:
		if callee, ok := n.Callee.(*ast.Ident); ok {
			sym, _, ok := a.Symbols.Resolve(callee.Name)
			if ok {
				return sym.ReturnType, sym.ReturnTypeName
			}
		}
		return Unknown, ""
	default:
		return Unknown, ""
	}
}

func (a *Analyzer) VisitLiteral(e *ast.Literal) any {
	switch e.Kind {
	case ast.IntLit:
		return Integer
	case ast.RealLit:
		return Real
	case ast.StringLit:
		return String
	case ast.CharLit:
		return Char
	case ast.BoolLit:
		return Boolean
	case ast.NilLit:
		return Pointer
	default:
		return Unknown
	}
}

func (a *Analyzer) VisitIdent(e *ast.Ident) any {
	sym, withQualifier, ok := a.Symbols.Resolve(e.Name)
	if !ok {
		a.addError(ErrUndefined, e, "undefined identifier %q", e.Name)
		return Unknown
	}
	if withQualifier != "" && e.WithQualifier == "" {
		e.WithQualifier = withQualifier
	}
	if sym.IsCallable() {
		return sym.ReturnType
	}
	return sym.Type
}

func (a *Analyzer) VisitBinaryExpr(e *ast.BinaryExpr) any {
	lt := a.typeOf(e.Left)
	rt := a.typeOf(e.Right)
	return a.checkBinaryOp(e, e.Op, lt, rt)
}

func (a *Analyzer) VisitUnaryExpr(e *ast.UnaryExpr) any {
	t := a.typeOf(e.Operand)
	switch e.Op {
	case ast.OpNot:
		if t != Boolean && t != Unknown {
			a.addError(ErrTypeMismatch, e, "'not' requires a boolean operand, got %s", t)
		}
		return Boolean
	default: // OpPos, OpNeg
		if !t.IsNumeric() && t != Unknown {
			a.addError(ErrTypeMismatch, e, "unary +/- requires a numeric operand, got %s", t)
		}
		return t
	}
}

func (a *Analyzer) VisitAddressOfExpr(e *ast.AddressOfExpr) any {
	a.typeOf(e.Operand)
	return Pointer
}

func (a *Analyzer) VisitDerefExpr(e *ast.DerefExpr) any {
	t := a.typeOf(e.Operand)
	if t != Pointer && t != Unknown {
		a.addError(ErrTypeMismatch, e, "'^' requires a pointer operand, got %s", t)
	}
	dt, _ := a.namedTypeOf(e)
	return dt
}

func (a *Analyzer) VisitCallExpr(e *ast.CallExpr) any {
	argTypes := make([]DataType, len(e.Args))
	for i, arg := range e.Args {
		argTypes[i] = a.typeOf(arg)
	}
	callee, ok := e.Callee.(*ast.Ident)
	if !ok {
		// Computed callee (e.g. a function-pointer field) — evaluate for
		// side effects/diagnostics but the result type is unknown to us.
		return a.typeOf(e.Callee)
	}
	sym, withQualifier, found := a.resolveCall(callee.Name, argTypes)
	if !found {
		a.addError(ErrUndefined, e, "undefined procedure or function %q", callee.Name)
		return Unknown
	}
	if withQualifier != "" && callee.WithQualifier == "" {
		callee.WithQualifier = withQualifier
	}
	if sym.Params != nil && len(sym.Overloads) == 0 && !isBuiltin(sym.Name) {
		if len(sym.Params) != len(e.Args) {
			a.addError(ErrArgumentCount, e, "%q expects %d argument(s), got %d", callee.Name, len(sym.Params), len(e.Args))
		}
	}
	return sym.ReturnType
}

func (a *Analyzer) VisitFieldAccessExpr(e *ast.FieldAccessExpr) any {
	_, recvTypeName := a.namedTypeOf(e.Receiver)
	a.typeOf(e.Receiver)
	info := a.lookupType(recvTypeName)
	if info == nil {
		a.addError(ErrUndefinedType, e, "cannot resolve field %q: receiver has no known record type", e.Field)
		return Unknown
	}
	field, ok := info.FieldType(e.Field)
	if !ok {
		a.addError(ErrUndefined, e, "record %q has no field %q", info.Name, e.Field)
		return Unknown
	}
	return field.Type
}

func (a *Analyzer) VisitIndexExpr(e *ast.IndexExpr) any {
	recvType := a.typeOf(e.Receiver)
	for _, idx := range e.Indices {
		it := a.typeOf(idx)
		if !it.IsOrdinal() && it != Custom && it != Unknown {
			a.addError(ErrTypeMismatch, e, "array index must be ordinal, got %s", it)
		}
	}
	if recvType == String {
		return Char
	}
	dt, _ := a.namedTypeOf(e)
	return dt
}

func (a *Analyzer) VisitSetLiteralExpr(e *ast.SetLiteralExpr) any {
	for _, el := range e.Elements {
		a.typeOf(el)
	}
	return Custom
}

func (a *Analyzer) VisitRangeExpr(e *ast.RangeExpr) any {
	a.typeOf(e.Start)
	a.typeOf(e.End)
	return a.typeOf(e.Start)
}

func (a *Analyzer) VisitFormattedExpr(e *ast.FormattedExpr) any {
	t := a.typeOf(e.Value)
	if e.Width != nil {
		a.typeOf(e.Width)
	}
	if e.Precision != nil {
		a.typeOf(e.Precision)
	}
	return t
}
