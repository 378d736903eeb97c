package parser

import (
	"testing"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/lexer"
)

func parseProgram(t *testing.T, src string) ast.Decl {
	t.Helper()
	l := lexer.New(src)
	p := New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	return prog
}

func TestParseMinimalProgram(t *testing.T) {
	prog := parseProgram(t, `
		program Hello;
		begin
			writeln('hello')
		end.
	`)
	pd, ok := prog.(*ast.ProgramDecl)
	if !ok {
		t.Fatalf("expected *ast.ProgramDecl, got %T", prog)
	}
	if pd.Name != "Hello" {
		t.Errorf("Name = %q, want Hello", pd.Name)
	}
	if len(pd.Main.Stmts) != 1 {
		t.Fatalf("Main.Stmts length = %d, want 1", len(pd.Main.Stmts))
	}
}

func TestParseUsesClause(t *testing.T) {
	prog := parseProgram(t, `
		program P;
		uses SysUtils, Classes;
		begin
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	if pd.Uses == nil {
		t.Fatal("expected Uses clause")
	}
	want := []string{"SysUtils", "Classes"}
	if len(pd.Uses.Names) != len(want) {
		t.Fatalf("Uses.Names = %v, want %v", pd.Uses.Names, want)
	}
	for i, n := range want {
		if pd.Uses.Names[i] != n {
			t.Errorf("Uses.Names[%d] = %q, want %q", i, pd.Uses.Names[i], n)
		}
	}
}

func TestParseConstSection(t *testing.T) {
	prog := parseProgram(t, `
		program P;
		const
			MaxSize = 100;
			Greeting: string = 'hi';
		begin
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	if len(pd.Decls) != 2 {
		t.Fatalf("Decls length = %d, want 2", len(pd.Decls))
	}
	c0 := pd.Decls[0].(*ast.ConstDecl)
	if c0.Name != "MaxSize" {
		t.Errorf("Decls[0].Name = %q, want MaxSize", c0.Name)
	}
	c1 := pd.Decls[1].(*ast.ConstDecl)
	if c1.Name != "Greeting" || c1.Type != "string" {
		t.Errorf("Decls[1] = %+v, want Name=Greeting Type=string", c1)
	}
}

func TestParseVarSectionMultiNames(t *testing.T) {
	prog := parseProgram(t, `
		program P;
		var
			X, Y, Z: Integer;
			Name: String;
		begin
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	if len(pd.Decls) != 2 {
		t.Fatalf("Decls length = %d, want 2", len(pd.Decls))
	}
	v0 := pd.Decls[0].(*ast.VarDecl)
	if len(v0.Names) != 3 || v0.Type != "Integer" {
		t.Errorf("Decls[0] = %+v, want 3 names of type Integer", v0)
	}
}

func TestParseArrayTypeDecl(t *testing.T) {
	prog := parseProgram(t, `
		program P;
		type
			TVector = array [1..10] of Real;
		begin
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	td := pd.Decls[0].(*ast.TypeDecl)
	if td.Name != "TVector" {
		t.Errorf("Name = %q, want TVector", td.Name)
	}
	if td.Record != nil {
		t.Errorf("Record should be nil for an array type")
	}
	if td.TypeText == "" {
		t.Errorf("TypeText should not be empty")
	}
}

func TestParseRecordTypeWithVariant(t *testing.T) {
	prog := parseProgram(t, `
		program P;
		type
			TShape = record
				Name: String;
				case Kind: Integer of
					0: (Radius: Real);
					1: (Width, Height: Real);
			end;
		begin
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	td := pd.Decls[0].(*ast.TypeDecl)
	if td.Record == nil {
		t.Fatal("expected Record to be set")
	}
	if len(td.Record.Fields) != 1 || td.Record.Fields[0].Name != "Name" {
		t.Errorf("Fields = %+v", td.Record.Fields)
	}
	if td.Record.Variant == nil {
		t.Fatal("expected Variant to be set")
	}
	if td.Record.Variant.SelectorName != "Kind" {
		t.Errorf("SelectorName = %q, want Kind", td.Record.Variant.SelectorName)
	}
	if len(td.Record.Variant.Cases) != 2 {
		t.Fatalf("Cases length = %d, want 2", len(td.Record.Variant.Cases))
	}
	if len(td.Record.Variant.Cases[1].Fields) != 2 {
		t.Errorf("Cases[1].Fields = %+v, want 2 fields", td.Record.Variant.Cases[1].Fields)
	}
}

func TestParseProcAndFuncDecl(t *testing.T) {
	prog := parseProgram(t, `
		program P;

		procedure Swap(var A, B: Integer);
		var
			Tmp: Integer;
		begin
			Tmp := A;
			A := B;
			B := Tmp
		end;

		function Square(const X: Real): Real;
		begin
			Square := X * X
		end;

		begin
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	if len(pd.Decls) != 2 {
		t.Fatalf("Decls length = %d, want 2", len(pd.Decls))
	}
	proc := pd.Decls[0].(*ast.ProcDecl)
	if proc.Name != "Swap" || proc.Forward {
		t.Errorf("Swap decl = %+v", proc)
	}
	if len(proc.Params) != 1 || proc.Params[0].Mode != ast.ByRef || len(proc.Params[0].Names) != 2 {
		t.Errorf("Swap params = %+v", proc.Params)
	}
	if proc.Body == nil || len(proc.Body.Stmts) != 3 {
		t.Fatalf("Swap body = %+v", proc.Body)
	}

	fn := pd.Decls[1].(*ast.FuncDecl)
	if fn.Name != "Square" || fn.ReturnType != "Real" {
		t.Errorf("Square decl = %+v", fn)
	}
	if len(fn.Params) != 1 || fn.Params[0].Mode != ast.ByConstRef {
		t.Errorf("Square params = %+v", fn.Params)
	}
}

func TestParseForwardDecl(t *testing.T) {
	prog := parseProgram(t, `
		program P;
		procedure Helper(X: Integer); forward;
		procedure Helper(X: Integer);
		begin
		end;
		begin
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	fwd := pd.Decls[0].(*ast.ProcDecl)
	if !fwd.Forward || fwd.Body != nil {
		t.Errorf("forward decl = %+v", fwd)
	}
	impl := pd.Decls[1].(*ast.ProcDecl)
	if impl.Forward || impl.Body == nil {
		t.Errorf("implementation decl = %+v", impl)
	}
}

func TestParseUnitInterfaceImplementation(t *testing.T) {
	prog := parseProgram(t, `
		unit Geometry;

		interface

		function Area(W, H: Real): Real;

		implementation

		function Area(W, H: Real): Real;
		begin
			Area := W * H
		end;

		begin
		end.
	`)
	ud, ok := prog.(*ast.UnitDecl)
	if !ok {
		t.Fatalf("expected *ast.UnitDecl, got %T", prog)
	}
	if ud.Name != "Geometry" {
		t.Errorf("Name = %q, want Geometry", ud.Name)
	}
	if len(ud.InterfaceDecls) != 1 {
		t.Fatalf("InterfaceDecls length = %d, want 1", len(ud.InterfaceDecls))
	}
	ifaceFn := ud.InterfaceDecls[0].(*ast.FuncDecl)
	if !ifaceFn.Forward || ifaceFn.Body != nil {
		t.Errorf("interface signature should have no body: %+v", ifaceFn)
	}
	if len(ud.ImplementationDecls) != 1 {
		t.Fatalf("ImplementationDecls length = %d, want 1", len(ud.ImplementationDecls))
	}
	implFn := ud.ImplementationDecls[0].(*ast.FuncDecl)
	if implFn.Body == nil {
		t.Errorf("implementation signature should have a body")
	}
}

func TestParseLabelAndGoto(t *testing.T) {
	prog := parseProgram(t, `
		program P;
		label 1;
		var I: Integer;
		begin
			I := 0;
			1: I := I + 1;
			if I < 10 then goto 1
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	lbl := pd.Decls[0].(*ast.LabelDecl)
	if len(lbl.Names) != 1 || lbl.Names[0] != "1" {
		t.Errorf("LabelDecl = %+v", lbl)
	}
}

func TestParseCaseStatementWithRanges(t *testing.T) {
	prog := parseProgram(t, `
		program P;
		var Ch: Char;
		begin
			case Ch of
				'a'..'z': writeln('lower');
				'A'..'Z': writeln('upper');
			else
				writeln('other')
			end
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	cs := pd.Main.Stmts[0].(*ast.CaseStmt)
	if len(cs.Branches) != 2 {
		t.Fatalf("Branches length = %d, want 2", len(cs.Branches))
	}
	if _, ok := cs.Branches[0].Values[0].(*ast.RangeExpr); !ok {
		t.Errorf("Branches[0].Values[0] = %T, want *ast.RangeExpr", cs.Branches[0].Values[0])
	}
	if len(cs.ElseStmts) != 1 {
		t.Errorf("ElseStmts length = %d, want 1", len(cs.ElseStmts))
	}
}

func TestParseSetLiteralAndMembership(t *testing.T) {
	prog := parseProgram(t, `
		program P;
		var X: Integer;
		begin
			if X in [1, 2, 5..10] then writeln('yes')
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	ifs := pd.Main.Stmts[0].(*ast.IfStmt)
	be := ifs.Cond.(*ast.BinaryExpr)
	if be.Op != ast.OpIn {
		t.Fatalf("Op = %v, want OpIn", be.Op)
	}
	set := be.Right.(*ast.SetLiteralExpr)
	if len(set.Elements) != 3 {
		t.Fatalf("Elements length = %d, want 3", len(set.Elements))
	}
	if _, ok := set.Elements[2].(*ast.RangeExpr); !ok {
		t.Errorf("Elements[2] = %T, want *ast.RangeExpr", set.Elements[2])
	}
}

func TestParseForLoopDowntoAndWrite(t *testing.T) {
	prog := parseProgram(t, `
		program P;
		var I: Integer;
		begin
			for I := 10 downto 1 do
				write(I:4)
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	fs := pd.Main.Stmts[0].(*ast.ForStmt)
	if !fs.Down {
		t.Error("Down should be true for downto loop")
	}
	call := fs.Body.(*ast.ExprStmt).X.(*ast.CallExpr)
	if _, ok := call.Args[0].(*ast.FormattedExpr); !ok {
		t.Errorf("Args[0] = %T, want *ast.FormattedExpr", call.Args[0])
	}
}

func TestParseWithStatement(t *testing.T) {
	prog := parseProgram(t, `
		program P;
		type TPoint = record X, Y: Integer; end;
		var P1: TPoint;
		begin
			with P1 do
			begin
				X := 1;
				Y := 2
			end
		end.
	`)
	pd := prog.(*ast.ProgramDecl)
	ws := pd.Main.Stmts[0].(*ast.WithStmt)
	if len(ws.Targets) != 1 {
		t.Fatalf("Targets length = %d, want 1", len(ws.Targets))
	}
	if _, ok := ws.Body.(*ast.CompoundStmt); !ok {
		t.Errorf("Body = %T, want *ast.CompoundStmt", ws.Body)
	}
}

func TestParseErrorRecoveryContinuesAfterBadStatement(t *testing.T) {
	l := lexer.New(`
		program P;
		begin
			+++;
			writeln('still here')
		end.
	`)
	p := New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected at least one parse error")
	}
	pd, ok := prog.(*ast.ProgramDecl)
	if !ok {
		t.Fatalf("expected *ast.ProgramDecl despite errors, got %T", prog)
	}
	if pd.Main == nil {
		t.Fatal("expected Main compound to still be produced")
	}
}
