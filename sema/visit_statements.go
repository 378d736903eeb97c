package sema

import "github.com/pascalc/pascalc/ast"

func (a *Analyzer) analyzeStmt(s ast.Stmt) {
	if s == nil {
		return
	}
	s.Accept(a)
}

func (a *Analyzer) VisitExprStmt(s *ast.ExprStmt) any {
	a.typeOf(s.X)
	return nil
}

func (a *Analyzer) VisitCompoundStmt(s *ast.CompoundStmt) any {
	for _, stmt := range s.Stmts {
		a.analyzeStmt(stmt)
	}
	return nil
}

func (a *Analyzer) VisitAssignStmt(s *ast.AssignStmt) any {
	if !a.isAssignable(s.Target) {
		a.addError(ErrInvalidAssignment, s, "left-hand side of assignment is not an assignable place")
	}
	dst := a.typeOf(s.Target)
	src := a.typeOf(s.Value)
	if dst != Unknown && src != Unknown && !assignable(dst, src) {
		a.addError(ErrInvalidAssignment, s, "cannot assign %s to %s", src, dst)
	}
	return nil
}

// isAssignable reports whether target is a legal assignment place: a
// variable/parameter identifier (including a function's own name inside
// its body, Pascal's return-value assignment), a field access, an array
// index, or a pointer dereference.
func (a *Analyzer) isAssignable(target ast.Expr) bool {
	switch t := target.(type) {
	case *ast.Ident:
		if a.currentReturnName != "" && key(t.Name) == key(a.currentReturnName) {
			return true
		}
		sym, _, ok := a.Symbols.Resolve(t.Name)
		return ok && (sym.Kind == SymVariable || sym.Kind == SymParameter)
	case *ast.FieldAccessExpr, *ast.IndexExpr, *ast.DerefExpr:
		return true
	default:
		return false
	}
}

func (a *Analyzer) VisitIfStmt(s *ast.IfStmt) any {
	a.requireBoolean(s.Cond, "if")
	a.analyzeStmt(s.Then)
	if s.Else != nil {
		a.analyzeStmt(s.Else)
	}
	return nil
}

func (a *Analyzer) VisitWhileStmt(s *ast.WhileStmt) any {
	a.requireBoolean(s.Cond, "while")
	a.loopDepth++
	a.analyzeStmt(s.Body)
	a.loopDepth--
	return nil
}

func (a *Analyzer) VisitForStmt(s *ast.ForStmt) any {
	sym, _, ok := a.Symbols.Resolve(s.Var)
	if !ok {
		a.addError(ErrUndefined, s, "undefined loop variable %q", s.Var)
	} else if !sym.Type.IsOrdinal() && sym.Type != Custom {
		a.addError(ErrControlFlow, s, "for-loop variable %q must be an ordinal type, got %s", s.Var, sym.Type)
	}
	a.typeOf(s.Start)
	a.typeOf(s.End)
	a.loopDepth++
	a.analyzeStmt(s.Body)
	a.loopDepth--
	return nil
}

func (a *Analyzer) VisitRepeatStmt(s *ast.RepeatStmt) any {
	a.loopDepth++
	for _, stmt := range s.Stmts {
		a.analyzeStmt(stmt)
	}
	a.loopDepth--
	a.requireBoolean(s.Cond, "repeat/until")
	return nil
}

func (a *Analyzer) VisitCaseStmt(s *ast.CaseStmt) any {
	et := a.typeOf(s.Expr)
	if !et.IsOrdinal() && et != Custom && et != Unknown {
		a.addError(ErrControlFlow, s, "case expression must be ordinal, got %s", et)
	}
	for _, branch := range s.Branches {
		for _, v := range branch.Values {
			vt := a.typeOf(v)
			if !vt.IsOrdinal() && vt != Custom && vt != Unknown {
				a.addError(ErrControlFlow, s, "case branch value must be ordinal, got %s", vt)
			}
		}
		a.analyzeStmt(branch.Body)
	}
	for _, stmt := range s.ElseStmts {
		a.analyzeStmt(stmt)
	}
	return nil
}

// VisitWithStmt pushes one scope per with-target (spec.md §4.3: "the
// analyzer pushes a scope for each with-target"), each annotated with the
// target's resolved record TypeInfo so unqualified field lookups inside
// the body fall through to it, then analyzes the body and pops every
// pushed scope in reverse order.
func (a *Analyzer) VisitWithStmt(s *ast.WithStmt) any {
	pushed := 0
	for _, target := range s.Targets {
		a.typeOf(target)
		ident, ok := target.(*ast.Ident)
		if !ok {
			continue
		}
		sym, _, ok := a.Symbols.Resolve(ident.Name)
		if !ok {
			continue
		}
		typeName := sym.TypeName
		info := a.lookupType(typeName)
		if info == nil || info.Shape != ShapeRecord {
			continue
		}
		a.Symbols.EnterWithScope(sym, info)
		pushed++
	}
	a.analyzeStmt(s.Body)
	for ; pushed > 0; pushed-- {
		a.Symbols.ExitScope()
	}
	return nil
}

func (a *Analyzer) VisitLabelStmt(s *ast.LabelStmt) any {
	a.analyzeStmt(s.Stmt)
	return nil
}

func (a *Analyzer) VisitGotoStmt(s *ast.GotoStmt) any {
	return nil
}

func (a *Analyzer) VisitBreakStmt(s *ast.BreakStmt) any {
	if a.loopDepth == 0 {
		a.addError(ErrControlFlow, s, "'break' outside of a loop")
	}
	return nil
}

func (a *Analyzer) VisitContinueStmt(s *ast.ContinueStmt) any {
	if a.loopDepth == 0 {
		a.addError(ErrControlFlow, s, "'continue' outside of a loop")
	}
	return nil
}

func (a *Analyzer) requireBoolean(e ast.Expr, construct string) {
	t := a.typeOf(e)
	if t != Boolean && t != Unknown {
		a.addError(ErrControlFlow, e, "%s condition must be boolean, got %s", construct, t)
	}
}
