package emit

import (
	"fmt"
	"strings"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/sema"
)

// emitStmtList emits s's statements directly into the surrounding block
// rather than nesting a redundant C++ block when s is itself a compound
// statement, which is how Pascal's `begin...end` usually appears as a
// then/else/loop body.
func (e *Emitter) emitStmtList(s ast.Stmt) {
	if cs, ok := s.(*ast.CompoundStmt); ok {
		for _, st := range cs.Stmts {
			e.emitStmt(st)
		}
		return
	}
	e.emitStmt(s)
}

// VisitExprStmt lowers an expression used as a statement. A call to one of
// the built-in statement forms (write, inc, new, ...) has no meaningful
// expression rendering — dispatch it to its own lowering first, falling
// back to a plain `expr;` for everything else, including a discarded
// user-defined function result.
func (e *Emitter) VisitExprStmt(s *ast.ExprStmt) any {
	if call, ok := s.X.(*ast.CallExpr); ok {
		if callee, ok := call.Callee.(*ast.Ident); ok && sema.IsBuiltinName(callee.Name) {
			if e.emitBuiltinStmt(strings.ToLower(callee.Name), call.Args) {
				return nil
			}
		}
	}
	e.writef("%s;", e.exprText(s.X))
	return nil
}

func (e *Emitter) VisitCompoundStmt(s *ast.CompoundStmt) any {
	e.writeLine("{")
	e.indent++
	for _, st := range s.Stmts {
		e.emitStmt(st)
	}
	e.indent--
	e.writeLine("}")
	return nil
}

// VisitAssignStmt lowers `target := value`, rewriting an assignment to the
// enclosing function's own name into the __result local (spec.md §4.4).
func (e *Emitter) VisitAssignStmt(s *ast.AssignStmt) any {
	value := e.exprText(s.Value)
	// A char assigned to a String target becomes a one-character PString.
	if e.analyzer.ExprType(s.Value) == sema.Char && e.analyzer.ExprType(s.Target) == sema.String {
		value = fmt.Sprintf("PString(std::string(1, %s))", value)
	}
	if ident, ok := s.Target.(*ast.Ident); ok && e.isReturnName(ident.Name) {
		e.writef("__result = %s;", value)
		return nil
	}
	e.writef("%s = %s;", e.exprText(s.Target), value)
	return nil
}

func (e *Emitter) isReturnName(name string) bool {
	return e.currentReturnName != "" && strings.EqualFold(name, e.currentReturnName)
}

func (e *Emitter) VisitIfStmt(s *ast.IfStmt) any {
	e.writef("if (%s) {", e.exprText(s.Cond))
	e.indent++
	e.emitStmtList(s.Then)
	e.indent--
	if s.Else != nil {
		e.writeLine("} else {")
		e.indent++
		e.emitStmtList(s.Else)
		e.indent--
	}
	e.writeLine("}")
	return nil
}

func (e *Emitter) VisitWhileStmt(s *ast.WhileStmt) any {
	e.writef("while (%s) {", e.exprText(s.Cond))
	e.indent++
	e.emitStmtList(s.Body)
	e.indent--
	e.writeLine("}")
	return nil
}

// VisitForStmt lowers `for V := Start to|downto End do Body`, caching End
// in a temporary evaluated exactly once at loop entry (spec.md §4.4's
// for-loop semantic-preservation rule — Pascal evaluates the bound once,
// unlike a naive re-evaluated C++ loop condition).
func (e *Emitter) VisitForStmt(s *ast.ForStmt) any {
	tmp := fmt.Sprintf("__forend%d", e.forCounter)
	e.forCounter++
	e.writeLine("{")
	e.indent++
	e.writef("auto %s = %s;", tmp, e.exprText(s.End))
	e.writef("%s = %s;", s.Var, e.exprText(s.Start))
	cmp, step := "<=", "++"+s.Var
	if s.Down {
		cmp, step = ">=", "--"+s.Var
	}
	e.writef("for (; %s %s %s; %s) {", s.Var, cmp, tmp, step)
	e.indent++
	e.emitStmtList(s.Body)
	e.indent--
	e.writeLine("}")
	e.indent--
	e.writeLine("}")
	return nil
}

func (e *Emitter) VisitRepeatStmt(s *ast.RepeatStmt) any {
	e.writeLine("do {")
	e.indent++
	for _, st := range s.Stmts {
		e.emitStmt(st)
	}
	e.indent--
	e.writef("} while (!(%s));", e.exprText(s.Cond))
	return nil
}

// VisitCaseStmt lowers `case Expr of branches... [else] end` to an
// if/else-if chain over a cached selector temporary, since C++ switch
// labels can't express Pascal's range-valued case labels (spec.md §8
// property 8's case-range expansion).
func (e *Emitter) VisitCaseStmt(s *ast.CaseStmt) any {
	tmp := fmt.Sprintf("__case%d", e.caseCounter)
	e.caseCounter++
	e.writeLine("{")
	e.indent++
	e.writef("auto %s = %s;", tmp, e.exprText(s.Expr))
	for i, branch := range s.Branches {
		cond := e.caseBranchCond(tmp, branch.Values)
		keyword := "if"
		if i > 0 {
			keyword = "else if"
		}
		e.writef("%s (%s) {", keyword, cond)
		e.indent++
		e.emitStmtList(branch.Body)
		e.indent--
		e.writeLine("}")
	}
	if len(s.ElseStmts) > 0 {
		e.writeLine("else {")
		e.indent++
		for _, st := range s.ElseStmts {
			e.emitStmt(st)
		}
		e.indent--
		e.writeLine("}")
	}
	e.indent--
	e.writeLine("}")
	return nil
}

func (e *Emitter) caseBranchCond(selector string, values []ast.Expr) string {
	var conds []string
	for _, v := range values {
		if rng, ok := v.(*ast.RangeExpr); ok {
			conds = append(conds, fmt.Sprintf("(%s >= %s && %s <= %s)", selector, e.exprText(rng.Start), selector, e.exprText(rng.End)))
			continue
		}
		conds = append(conds, fmt.Sprintf("%s == %s", selector, e.exprText(v)))
	}
	return strings.Join(conds, " || ")
}

// VisitWithStmt declares one C++ reference alias per with-target and
// registers it so a with-qualified Ident (tagged by the analyzer) rewrites
// to a member access through it (spec.md §4.4's `with` lowering).
func (e *Emitter) VisitWithStmt(s *ast.WithStmt) any {
	e.writeLine("{")
	e.indent++
	var keys []string
	for _, target := range s.Targets {
		ident, ok := target.(*ast.Ident)
		if !ok {
			continue
		}
		alias := fmt.Sprintf("__with%d", e.withCounter)
		e.withCounter++
		e.writef("auto &%s = %s;", alias, e.exprText(target))
		key := strings.ToLower(ident.Name)
		e.pushWithAlias(key, alias)
		keys = append(keys, key)
	}
	e.emitStmtList(s.Body)
	for range keys {
		e.popWithAlias()
	}
	e.indent--
	e.writeLine("}")
	return nil
}

func (e *Emitter) VisitLabelStmt(s *ast.LabelStmt) any {
	e.writef("%s:;", s.Name)
	e.emitStmt(s.Stmt)
	return nil
}

func (e *Emitter) VisitGotoStmt(s *ast.GotoStmt) any {
	e.writef("goto %s;", s.Name)
	return nil
}

func (e *Emitter) VisitBreakStmt(s *ast.BreakStmt) any {
	e.writeLine("break;")
	return nil
}

func (e *Emitter) VisitContinueStmt(s *ast.ContinueStmt) any {
	e.writeLine("continue;")
	return nil
}
