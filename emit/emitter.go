// Package emit lowers a resolved Pascal AST to C++ source text. It is a
// second traversal over the same ast.Visitor protocol the analyzer uses,
// run only after analysis reports no errors: every lowering here assumes
// the program already type-checks (spec.md §4.4).
package emit

import (
	"fmt"
	"strings"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/sema"
)

// Emitter walks a *ast.ProgramDecl or *ast.UnitDecl and writes C++ text to
// an internal buffer. It implements ast.Visitor so the same node families
// the parser and analyzer share drive code generation, no parallel tree.
type Emitter struct {
	buf    strings.Builder
	indent int

	analyzer *sema.Analyzer

	// withAlias maps a with-target's lowered Pascal name to the C++
	// reference variable generated for the innermost active with-statement
	// naming it, so a with-qualified Ident (spec.md §4.4) rewrites to a
	// member access on the right alias even under nested withs.
	withAlias map[string]string
	withStack []withFrame

	// currentReturnName/currentReturnCpp identify the active function's
	// own name and C++ return type, used to rewrite `F := expr` to
	// `__result = expr` inside F's body (spec.md §4.4).
	currentReturnName string
	currentReturnCpp  string

	// funcDepth is 0 at file scope and >0 inside a procedure/function
	// body; it decides whether a nested ProcDecl/FuncDecl lowers to a
	// free function or a reference-capturing local lambda.
	funcDepth int

	// forCounter, caseCounter, withCounter generate unique temporary names
	// for each for-loop's cached bound, each case statement's cached
	// selector, and each with-statement's alias, so nested occurrences of
	// the same construct never collide.
	forCounter  int
	caseCounter int
	withCounter int
}

// withFrame records what withAlias[key] was before a with-statement
// shadowed it, so exiting the with restores (rather than simply deletes)
// the entry for a name with more than one enclosing with-target.
type withFrame struct {
	key     string
	prev    string
	hadPrev bool
}

// New creates an Emitter over a, the Analyzer that already resolved prog
// (or the unit containing it) with zero errors.
func New(a *sema.Analyzer) *Emitter {
	return &Emitter{analyzer: a, withAlias: make(map[string]string)}
}

func (e *Emitter) pushWithAlias(key, alias string) {
	prev, had := e.withAlias[key]
	e.withStack = append(e.withStack, withFrame{key: key, prev: prev, hadPrev: had})
	e.withAlias[key] = alias
}

func (e *Emitter) popWithAlias() {
	n := len(e.withStack) - 1
	f := e.withStack[n]
	e.withStack = e.withStack[:n]
	if f.hadPrev {
		e.withAlias[f.key] = f.prev
	} else {
		delete(e.withAlias, f.key)
	}
}

// EmitProgram lowers a complete program to a translation unit: the runtime
// include, every type/global declaration, then a `main` wrapping the
// program's statement block.
func (e *Emitter) EmitProgram(p *ast.ProgramDecl) string {
	e.writeHeader()
	e.writeLine("int __argc;")
	e.writeLine("char **__argv;")
	e.writeLine("")
	e.emitDeclSection(p.Decls)
	e.writeLine("")
	e.writeLine("int main(int argc, char **argv) {")
	e.indent++
	e.writeLine("__argc = argc;")
	e.writeLine("__argv = argv;")
	e.emitStmt(p.Main)
	e.writeLine("return 0;")
	e.indent--
	e.writeLine("}")
	return e.buf.String()
}

// EmitUnit lowers a unit to a translation unit exposing its interface
// declarations via a header-style guard comment; pascalc emits one .cpp
// per unit and a matching .hpp is left to the build step's `uses` wiring
// (spec.md §6 treats cross-unit linking as the Unit Loader's concern).
func (e *Emitter) EmitUnit(u *ast.UnitDecl) string {
	e.writeHeader()
	e.writeLine("// unit " + u.Name)
	e.emitDeclSection(u.InterfaceDecls)
	e.emitDeclSection(u.ImplementationDecls)
	if len(u.InitStmts) > 0 {
		e.writeLine("")
		e.writeLine("namespace {")
		e.indent++
		e.writeLine("struct " + u.Name + "_Init {")
		e.indent++
		e.writeLine(u.Name + "_Init() {")
		e.indent++
		for _, s := range u.InitStmts {
			e.emitStmt(s)
		}
		e.indent--
		e.writeLine("}")
		e.indent--
		e.writeLine("} " + strings.ToLower(u.Name) + "_init_instance;")
		e.indent--
		e.writeLine("}")
	}
	return e.buf.String()
}

func (e *Emitter) writeHeader() {
	e.writeLine(`#include "pascalrt.hpp"`)
	e.writeLine("using namespace pascalrt;")
	e.writeLine("")
}

func (e *Emitter) writeLine(s string) {
	if s == "" {
		e.buf.WriteString("\n")
		return
	}
	e.buf.WriteString(strings.Repeat("    ", e.indent))
	e.buf.WriteString(s)
	e.buf.WriteString("\n")
}

func (e *Emitter) writef(format string, args ...any) {
	e.writeLine(fmt.Sprintf(format, args...))
}

// emitStmt drives s through the Visitor protocol; every VisitXStmt method
// writes complete lines rather than returning text, since a statement
// never nests inside a C++ expression context.
func (e *Emitter) emitStmt(s ast.Stmt) {
	if s == nil {
		return
	}
	s.Accept(e)
}

// exprText drives e through the Visitor protocol and coerces the result
// back to a string; every VisitXExpr method returns one.
func (e *Emitter) exprText(expr ast.Expr) string {
	if expr == nil {
		return ""
	}
	if s, ok := expr.Accept(e).(string); ok {
		return s
	}
	return ""
}
