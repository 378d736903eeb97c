package ast

// LiteralKind distinguishes the primitive literal kinds.
type LiteralKind int

const (
	IntLit LiteralKind = iota
	RealLit
	StringLit
	CharLit
	BoolLit
	NilLit
)

// Literal is a primitive constant: integer, real, string, char, boolean, or nil.
type Literal struct {
	Base
	Kind LiteralKind
	Text string // original source spelling
}

func (e *Literal) exprNode()           {}
func (e *Literal) Accept(v Visitor) any { return v.VisitLiteral(e) }

// Ident is a name reference, optionally decorated with the name of the
// with-target record it was resolved through (set by the analyzer, never by
// the parser — see spec.md §4.3's with-statement rule).
type Ident struct {
	Base
	Name          string
	WithQualifier string // "" unless resolved through an enclosing `with`
}

func (e *Ident) exprNode()           {}
func (e *Ident) Accept(v Visitor) any { return v.VisitIdent(e) }

// BinaryOp enumerates the binary operators of spec.md §4.2's precedence table.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv     // real division: /
	OpIntDiv  // div
	OpMod     // mod
	OpAnd
	OpOr
	OpXor
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
	OpIn
	OpShl
	OpShr
)

// BinaryExpr is a left-associative binary operation.
type BinaryExpr struct {
	Base
	Op          BinaryOp
	Left, Right Expr
}

func (e *BinaryExpr) exprNode()           {}
func (e *BinaryExpr) Accept(v Visitor) any { return v.VisitBinaryExpr(e) }

// UnaryOp enumerates the unary operators: not, +, -.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpPos
	OpNeg
)

// UnaryExpr is a prefix unary operation.
type UnaryExpr struct {
	Base
	Op      UnaryOp
	Operand Expr
}

func (e *UnaryExpr) exprNode()           {}
func (e *UnaryExpr) Accept(v Visitor) any { return v.VisitUnaryExpr(e) }

// AddressOfExpr is `@x`.
type AddressOfExpr struct {
	Base
	Operand Expr
}

func (e *AddressOfExpr) exprNode()           {}
func (e *AddressOfExpr) Accept(v Visitor) any { return v.VisitAddressOfExpr(e) }

// DerefExpr is postfix `ptr^`.
type DerefExpr struct {
	Base
	Operand Expr
}

func (e *DerefExpr) exprNode()           {}
func (e *DerefExpr) Accept(v Visitor) any { return v.VisitDerefExpr(e) }

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Base
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) exprNode()           {}
func (e *CallExpr) Accept(v Visitor) any { return v.VisitCallExpr(e) }

// FieldAccessExpr is `receiver.Field`.
type FieldAccessExpr struct {
	Base
	Receiver Expr
	Field    string
}

func (e *FieldAccessExpr) exprNode()           {}
func (e *FieldAccessExpr) Accept(v Visitor) any { return v.VisitFieldAccessExpr(e) }

// IndexExpr is `receiver[i0, i1, ...]`; Indices is ordered to support
// N-dimensional access in one postfix form.
type IndexExpr struct {
	Base
	Receiver Expr
	Indices  []Expr
}

func (e *IndexExpr) exprNode()           {}
func (e *IndexExpr) Accept(v Visitor) any { return v.VisitIndexExpr(e) }

// SetLiteralExpr is `[e1, e2..e3, ...]`; elements may be single values or
// RangeExpr ranges.
type SetLiteralExpr struct {
	Base
	Elements []Expr
}

func (e *SetLiteralExpr) exprNode()           {}
func (e *SetLiteralExpr) Accept(v Visitor) any { return v.VisitSetLiteralExpr(e) }

// RangeExpr is `start..end`, used inside set literals and case-branch value
// lists.
type RangeExpr struct {
	Base
	Start, End Expr
}

func (e *RangeExpr) exprNode()           {}
func (e *RangeExpr) Accept(v Visitor) any { return v.VisitRangeExpr(e) }

// FormattedExpr is `expr:width:precision` as used in write/writeln argument
// lists. Width and Precision are nil when omitted.
type FormattedExpr struct {
	Base
	Value     Expr
	Width     Expr
	Precision Expr
}

func (e *FormattedExpr) exprNode()           {}
func (e *FormattedExpr) Accept(v Visitor) any { return v.VisitFormattedExpr(e) }
