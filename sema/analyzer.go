package sema

import (
	"fmt"

	"github.com/pascalc/pascalc/ast"
)

// Analyzer performs semantic analysis over a parsed Program or Unit: scope
// management, type resolution, overload discrimination, type-checking, and
// forward-declaration bookkeeping (spec.md §4.3). Errors are accumulated
// rather than thrown; Errors() is checked by the caller before emission.
type Analyzer struct {
	Symbols *SymbolTable

	// types maps a lowered type name to its resolved TypeInfo. Populated as
	// type declarations are processed; built-in names never appear here.
	types map[string]*TypeInfo

	errors []*SemanticError

	// currentReturnName is the active function's name, used to recognize
	// the Pascal return-value assignment `F := expr` inside F's own body.
	currentReturnName string
	currentReturnType DataType

	loopDepth int

	// forwardPending tracks forward-declared callables (by lowered name)
	// awaiting a matching implementation within the same declaration
	// section (spec.md §4.3).
	forwardPending map[string]*Symbol
}

// NewAnalyzer creates an Analyzer with a freshly built-in-populated global
// scope.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Symbols:        NewSymbolTable(),
		types:          make(map[string]*TypeInfo),
		forwardPending: make(map[string]*Symbol),
	}
}

// Errors returns every diagnostic accumulated so far.
func (a *Analyzer) Errors() []*SemanticError { return a.errors }

func (a *Analyzer) addError(kind ErrorKind, pos ast.Node, format string, args ...any) {
	a.errors = append(a.errors, &SemanticError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos.Pos(),
	})
}

// AnalyzeProgram analyzes a complete program: its declarations then its
// main compound statement.
func (a *Analyzer) AnalyzeProgram(p *ast.ProgramDecl) {
	a.processDecls(p.Decls)
	a.checkUnresolvedForwards()
	a.analyzeStmt(p.Main)
}

// AnalyzeUnit analyzes a unit's interface then implementation sections
// (signatures are pre-registered in the interface pass so implementation
// bodies can call each other regardless of textual order), then its
// initialization statements.
func (a *Analyzer) AnalyzeUnit(u *ast.UnitDecl) {
	a.processDecls(u.InterfaceDecls)
	a.processDecls(u.ImplementationDecls)
	a.checkUnresolvedForwards()
	for _, s := range u.InitStmts {
		a.analyzeStmt(s)
	}
}

// checkUnresolvedForwards reports every forward declaration that never
// received a matching implementation within the section (spec.md §4.3).
func (a *Analyzer) checkUnresolvedForwards() {
	for _, sym := range a.forwardPending {
		a.errors = append(a.errors, &SemanticError{
			Kind:    ErrForwardDecl,
			Message: "unresolved forward declaration: " + sym.Name,
		})
	}
	a.forwardPending = make(map[string]*Symbol)
}
