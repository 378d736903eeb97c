package ast

import (
	"testing"

	"github.com/pascalc/pascalc/token"
)

// recordingVisitor implements Visitor and records which method was called.
type recordingVisitor struct{ got string }

func (r *recordingVisitor) VisitLiteral(*Literal) any          { r.got = "Literal"; return nil }
func (r *recordingVisitor) VisitIdent(*Ident) any               { r.got = "Ident"; return nil }
func (r *recordingVisitor) VisitBinaryExpr(*BinaryExpr) any     { r.got = "BinaryExpr"; return nil }
func (r *recordingVisitor) VisitUnaryExpr(*UnaryExpr) any       { r.got = "UnaryExpr"; return nil }
func (r *recordingVisitor) VisitAddressOfExpr(*AddressOfExpr) any { r.got = "AddressOfExpr"; return nil }
func (r *recordingVisitor) VisitDerefExpr(*DerefExpr) any       { r.got = "DerefExpr"; return nil }
func (r *recordingVisitor) VisitCallExpr(*CallExpr) any         { r.got = "CallExpr"; return nil }
func (r *recordingVisitor) VisitFieldAccessExpr(*FieldAccessExpr) any {
	r.got = "FieldAccessExpr"
	return nil
}
func (r *recordingVisitor) VisitIndexExpr(*IndexExpr) any         { r.got = "IndexExpr"; return nil }
func (r *recordingVisitor) VisitSetLiteralExpr(*SetLiteralExpr) any { r.got = "SetLiteralExpr"; return nil }
func (r *recordingVisitor) VisitRangeExpr(*RangeExpr) any         { r.got = "RangeExpr"; return nil }
func (r *recordingVisitor) VisitFormattedExpr(*FormattedExpr) any { r.got = "FormattedExpr"; return nil }
func (r *recordingVisitor) VisitExprStmt(*ExprStmt) any           { r.got = "ExprStmt"; return nil }
func (r *recordingVisitor) VisitCompoundStmt(*CompoundStmt) any   { r.got = "CompoundStmt"; return nil }
func (r *recordingVisitor) VisitAssignStmt(*AssignStmt) any       { r.got = "AssignStmt"; return nil }
func (r *recordingVisitor) VisitIfStmt(*IfStmt) any               { r.got = "IfStmt"; return nil }
func (r *recordingVisitor) VisitWhileStmt(*WhileStmt) any         { r.got = "WhileStmt"; return nil }
func (r *recordingVisitor) VisitForStmt(*ForStmt) any             { r.got = "ForStmt"; return nil }
func (r *recordingVisitor) VisitRepeatStmt(*RepeatStmt) any       { r.got = "RepeatStmt"; return nil }
func (r *recordingVisitor) VisitCaseStmt(*CaseStmt) any           { r.got = "CaseStmt"; return nil }
func (r *recordingVisitor) VisitWithStmt(*WithStmt) any           { r.got = "WithStmt"; return nil }
func (r *recordingVisitor) VisitLabelStmt(*LabelStmt) any         { r.got = "LabelStmt"; return nil }
func (r *recordingVisitor) VisitGotoStmt(*GotoStmt) any           { r.got = "GotoStmt"; return nil }
func (r *recordingVisitor) VisitBreakStmt(*BreakStmt) any         { r.got = "BreakStmt"; return nil }
func (r *recordingVisitor) VisitContinueStmt(*ContinueStmt) any   { r.got = "ContinueStmt"; return nil }
func (r *recordingVisitor) VisitConstDecl(*ConstDecl) any         { r.got = "ConstDecl"; return nil }
func (r *recordingVisitor) VisitLabelDecl(*LabelDecl) any         { r.got = "LabelDecl"; return nil }
func (r *recordingVisitor) VisitTypeDecl(*TypeDecl) any           { r.got = "TypeDecl"; return nil }
func (r *recordingVisitor) VisitVarDecl(*VarDecl) any             { r.got = "VarDecl"; return nil }
func (r *recordingVisitor) VisitProcDecl(*ProcDecl) any           { r.got = "ProcDecl"; return nil }
func (r *recordingVisitor) VisitFuncDecl(*FuncDecl) any           { r.got = "FuncDecl"; return nil }
func (r *recordingVisitor) VisitUsesDecl(*UsesDecl) any           { r.got = "UsesDecl"; return nil }
func (r *recordingVisitor) VisitUnitDecl(*UnitDecl) any           { r.got = "UnitDecl"; return nil }
func (r *recordingVisitor) VisitProgramDecl(*ProgramDecl) any     { r.got = "ProgramDecl"; return nil }

func TestAcceptDispatchesToRightMethod(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1}
	cases := []struct {
		node Node
		want string
	}{
		{&Literal{Base: NewBase(pos), Kind: IntLit, Text: "1"}, "Literal"},
		{&Ident{Base: NewBase(pos), Name: "x"}, "Ident"},
		{&BinaryExpr{Base: NewBase(pos), Op: OpAdd}, "BinaryExpr"},
		{&ForStmt{Base: NewBase(pos)}, "ForStmt"},
		{&CaseStmt{Base: NewBase(pos)}, "CaseStmt"},
		{&TypeDecl{Base: NewBase(pos), Name: "T"}, "TypeDecl"},
		{&ProgramDecl{Base: NewBase(pos), Name: "P"}, "ProgramDecl"},
	}
	for _, c := range cases {
		rv := &recordingVisitor{}
		c.node.Accept(rv)
		if rv.got != c.want {
			t.Errorf("Accept on %T dispatched to %s, want %s", c.node, rv.got, c.want)
		}
	}
}

func TestWalkVisitsAllSubexpressions(t *testing.T) {
	pos := token.Position{}
	left := &Literal{Base: NewBase(pos), Kind: IntLit, Text: "1"}
	right := &Literal{Base: NewBase(pos), Kind: IntLit, Text: "2"}
	bin := &BinaryExpr{Base: NewBase(pos), Op: OpAdd, Left: left, Right: right}

	var visited []Expr
	Walk(bin, func(e Expr) { visited = append(visited, e) })
	if len(visited) != 3 {
		t.Fatalf("expected 3 nodes visited (bin + 2 literals), got %d", len(visited))
	}
}
