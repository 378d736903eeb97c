package ast

// ConstDecl is `const Name [: Type] = Value`.
type ConstDecl struct {
	Base
	Name  string
	Type  string // "" if the type is inferred from Value
	Value Expr
}

func (d *ConstDecl) declNode()           {}
func (d *ConstDecl) Accept(v Visitor) any { return v.VisitConstDecl(d) }

// LabelDecl is `label Names...`.
type LabelDecl struct {
	Base
	Names []string
}

func (d *LabelDecl) declNode()           {}
func (d *LabelDecl) Accept(v Visitor) any { return v.VisitLabelDecl(d) }

// FieldDecl is one record field: `Name: Type`.
type FieldDecl struct {
	Name string
	Type string
}

// VariantCase is one `values: (fields)` arm of a record's variant part.
type VariantCase struct {
	Values []Expr
	Fields []FieldDecl
}

// VariantPart is the `case Selector: SelectorType of cases...` tail of a
// record type. Invariant: field names (fixed plus every case) are unique
// within the enclosing record — enforced by the analyzer, not this node.
type VariantPart struct {
	SelectorName string
	SelectorType string
	Cases        []VariantCase
}

// RecordType is a record's body: fixed fields plus an optional variant part.
// The variant part follows, never interleaves with, the fixed field list.
type RecordType struct {
	Fields  []FieldDecl
	Variant *VariantPart // nil if the record has no variant part
}

// TypeDecl is `type Name = TypeText`. TypeText is the raw textual
// definition (e.g. "array[1..10] of integer", "(Red, Green, Blue)",
// "^TNode"); the emitter re-parses its shape to recover bounds and element
// types per spec.md §4.2. Record carries the structured form when TypeText
// denotes a record, so record-specific passes don't need to re-parse text.
type TypeDecl struct {
	Base
	Name     string
	TypeText string
	Record   *RecordType // non-nil only when TypeText is a record definition
}

func (d *TypeDecl) declNode()           {}
func (d *TypeDecl) Accept(v Visitor) any { return v.VisitTypeDecl(d) }

// VarDecl is `Names: Type` in a var section, or a parameter group with Mode
// set to ByRef/ByConstRef when it appears in a parameter list.
type VarDecl struct {
	Base
	Names []string
	Type  string
	Mode  ParamMode
}

func (d *VarDecl) declNode()           {}
func (d *VarDecl) Accept(v Visitor) any { return v.VisitVarDecl(d) }

// ProcDecl is a procedure declaration. Body is nil for a forward declaration
// or an interface-section signature; Decls holds the local declaration
// section (const/type/var/nested procedures) preceding Body.
type ProcDecl struct {
	Base
	Name    string
	Params  []Param
	Decls   []Decl
	Body    *CompoundStmt
	Forward bool
}

func (d *ProcDecl) declNode()           {}
func (d *ProcDecl) Accept(v Visitor) any { return v.VisitProcDecl(d) }

// FuncDecl is a function declaration; otherwise identical to ProcDecl.
type FuncDecl struct {
	Base
	Name       string
	Params     []Param
	ReturnType string
	Decls      []Decl
	Body       *CompoundStmt
	Forward    bool
}

func (d *FuncDecl) declNode()           {}
func (d *FuncDecl) Accept(v Visitor) any { return v.VisitFuncDecl(d) }

// UsesDecl is `uses Names...`.
type UsesDecl struct {
	Base
	Names []string
}

func (d *UsesDecl) declNode()           {}
func (d *UsesDecl) Accept(v Visitor) any { return v.VisitUsesDecl(d) }

// UnitDecl is a complete unit: interface section (signatures only) plus an
// implementation section (bodies) and an optional initialization block.
type UnitDecl struct {
	Base
	Name                string
	InterfaceUses       *UsesDecl
	InterfaceDecls      []Decl
	ImplementationUses  *UsesDecl
	ImplementationDecls []Decl
	InitStmts           []Stmt
}

func (d *UnitDecl) declNode()           {}
func (d *UnitDecl) Accept(v Visitor) any { return v.VisitUnitDecl(d) }

// ProgramDecl is the root node of a complete program:
// `program Name; [uses ...;] decls... main-compound .`
type ProgramDecl struct {
	Base
	Name  string
	Uses  *UsesDecl
	Decls []Decl
	Main  *CompoundStmt
}

func (d *ProgramDecl) declNode()           {}
func (d *ProgramDecl) Accept(v Visitor) any { return v.VisitProgramDecl(d) }
