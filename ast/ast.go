// Package ast defines the typed abstract syntax tree produced by the parser:
// three disjoint node families (expressions, statements, declarations)
// sharing a common "accept a visitor" capability. Analysis and emission are
// both implementations of Visitor rather than methods hung off the nodes
// themselves, so adding a new pass never touches this package.
package ast

import "github.com/pascalc/pascalc/token"

// Node is implemented by every AST node. Every node carries a source
// location for diagnostics.
type Node interface {
	Pos() token.Position
	Accept(v Visitor) any
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is any declaration node.
type Decl interface {
	Node
	declNode()
}

// Base embeds the common source position every node carries.
type Base struct {
	P token.Position
}

func (b Base) Pos() token.Position { return b.P }

// NewBase constructs a Base from a token position; used by the parser when
// building node literals across the package boundary.
func NewBase(pos token.Position) Base { return Base{P: pos} }

// ParamMode tags how a parameter group is passed.
type ParamMode int

const (
	ByValue ParamMode = iota
	ByRef             // var
	ByConstRef        // const
)

func (m ParamMode) String() string {
	switch m {
	case ByRef:
		return "var"
	case ByConstRef:
		return "const"
	default:
		return "value"
	}
}

// Param is one parameter group: a shared mode and type for one or more names.
type Param struct {
	Names []string
	Type  string
	Mode  ParamMode
}

// Visitor is the polymorphic traversal protocol every AST node accepts.
// A default traversal (see Walk) recurs through children unconditionally;
// named passes (the semantic analyzer, the emitter) implement Visitor to
// override per-node behavior and are driven by Accept alone; neither uses
// Walk.
type Visitor interface {
	// Expressions
	VisitLiteral(*Literal) any
	VisitIdent(*Ident) any
	VisitBinaryExpr(*BinaryExpr) any
	VisitUnaryExpr(*UnaryExpr) any
	VisitAddressOfExpr(*AddressOfExpr) any
	VisitDerefExpr(*DerefExpr) any
	VisitCallExpr(*CallExpr) any
	VisitFieldAccessExpr(*FieldAccessExpr) any
	VisitIndexExpr(*IndexExpr) any
	VisitSetLiteralExpr(*SetLiteralExpr) any
	VisitRangeExpr(*RangeExpr) any
	VisitFormattedExpr(*FormattedExpr) any

	// Statements
	VisitExprStmt(*ExprStmt) any
	VisitCompoundStmt(*CompoundStmt) any
	VisitAssignStmt(*AssignStmt) any
	VisitIfStmt(*IfStmt) any
	VisitWhileStmt(*WhileStmt) any
	VisitForStmt(*ForStmt) any
	VisitRepeatStmt(*RepeatStmt) any
	VisitCaseStmt(*CaseStmt) any
	VisitWithStmt(*WithStmt) any
	VisitLabelStmt(*LabelStmt) any
	VisitGotoStmt(*GotoStmt) any
	VisitBreakStmt(*BreakStmt) any
	VisitContinueStmt(*ContinueStmt) any

	// Declarations
	VisitConstDecl(*ConstDecl) any
	VisitLabelDecl(*LabelDecl) any
	VisitTypeDecl(*TypeDecl) any
	VisitVarDecl(*VarDecl) any
	VisitProcDecl(*ProcDecl) any
	VisitFuncDecl(*FuncDecl) any
	VisitUsesDecl(*UsesDecl) any
	VisitUnitDecl(*UnitDecl) any
	VisitProgramDecl(*ProgramDecl) any
}
