package sema

import (
	"testing"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/lexer"
	"github.com/pascalc/pascalc/parser"
)

// analyze parses src as a complete program and runs the analyzer over it,
// returning the resulting errors (parse errors fail the test immediately:
// a test exercising semantic analysis should never hit a syntax error).
func analyze(t *testing.T, src string) []*SemanticError {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	pd, ok := prog.(*ast.ProgramDecl)
	if !ok {
		t.Fatalf("expected *ast.ProgramDecl, got %T", prog)
	}
	a := NewAnalyzer()
	a.AnalyzeProgram(pd)
	return a.Errors()
}

func assertNoErrors(t *testing.T, errs []*SemanticError) {
	t.Helper()
	if len(errs) != 0 {
		t.Fatalf("unexpected semantic errors: %v", errs)
	}
}

func assertHasError(t *testing.T, errs []*SemanticError, kind ErrorKind) {
	t.Helper()
	for _, e := range errs {
		if e.Kind == kind {
			return
		}
	}
	t.Fatalf("expected an error of kind %s, got %v", kind, errs)
}

func TestAnalyzeMinimalProgram(t *testing.T) {
	errs := analyze(t, `
		program Hello;
		begin
			writeln('hello')
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeUndefinedIdentifier(t *testing.T) {
	errs := analyze(t, `
		program P;
		begin
			writeln(Bogus)
		end.
	`)
	assertHasError(t, errs, ErrUndefined)
}

func TestAnalyzeVarDeclAndAssignment(t *testing.T) {
	errs := analyze(t, `
		program P;
		var
			x: Integer;
			s: String;
		begin
			x := 1;
			s := 'hi'
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeIntegerToRealWidens(t *testing.T) {
	errs := analyze(t, `
		program P;
		var
			r: Real;
		begin
			r := 1
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeRealToIntegerRejected(t *testing.T) {
	errs := analyze(t, `
		program P;
		var
			i: Integer;
		begin
			i := 1.5
		end.
	`)
	assertHasError(t, errs, ErrInvalidAssignment)
}

func TestAnalyzeCharToStringAccepted(t *testing.T) {
	errs := analyze(t, `
		program P;
		var
			s: String;
		begin
			s := 'a'
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeDivModRequireIntegers(t *testing.T) {
	errs := analyze(t, `
		program P;
		var
			x: Integer;
		begin
			x := 1.0 div 2
		end.
	`)
	assertHasError(t, errs, ErrTypeMismatch)
}

func TestAnalyzeInRequiresSetOnRight(t *testing.T) {
	errs := analyze(t, `
		program P;
		var
			x: Integer;
			b: Boolean;
		begin
			b := x in x
		end.
	`)
	assertHasError(t, errs, ErrTypeMismatch)
}

func TestAnalyzeInAcceptsSetLiteral(t *testing.T) {
	errs := analyze(t, `
		program P;
		var
			x: Integer;
			b: Boolean;
		begin
			b := x in [1, 2, 3]
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeBreakOutsideLoop(t *testing.T) {
	errs := analyze(t, `
		program P;
		begin
			break
		end.
	`)
	assertHasError(t, errs, ErrControlFlow)
}

func TestAnalyzeBreakInsideLoop(t *testing.T) {
	errs := analyze(t, `
		program P;
		var
			i: Integer;
		begin
			while true do
			begin
				break
			end
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeIfConditionMustBeBoolean(t *testing.T) {
	errs := analyze(t, `
		program P;
		var
			x: Integer;
		begin
			if x then x := 1
		end.
	`)
	assertHasError(t, errs, ErrControlFlow)
}

func TestAnalyzeForLoopVariableMustBeOrdinal(t *testing.T) {
	errs := analyze(t, `
		program P;
		var
			r: Real;
		begin
			for r := 1 to 10 do
				writeln(r)
		end.
	`)
	assertHasError(t, errs, ErrControlFlow)
}

func TestAnalyzeRecordFieldAccess(t *testing.T) {
	errs := analyze(t, `
		program P;
		type
			TPoint = record
				X: Integer;
				Y: Integer;
			end;
		var
			p: TPoint;
		begin
			p.X := 1;
			p.Y := p.X
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeRecordUndefinedField(t *testing.T) {
	errs := analyze(t, `
		program P;
		type
			TPoint = record
				X: Integer;
			end;
		var
			p: TPoint;
		begin
			p.Z := 1
		end.
	`)
	assertHasError(t, errs, ErrUndefined)
}

func TestAnalyzeWithStatementFieldFallthrough(t *testing.T) {
	errs := analyze(t, `
		program P;
		type
			TPoint = record
				X: Integer;
				Y: Integer;
			end;
		var
			p: TPoint;
		begin
			with p do
			begin
				X := 1;
				Y := X
			end
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeArrayIndexing(t *testing.T) {
	errs := analyze(t, `
		program P;
		type
			TArr = array[1..10] of Integer;
		var
			a: TArr;
			i: Integer;
		begin
			a[1] := 5;
			i := a[1]
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeArrayIndexedByEnumResolvesOrdinalExtent(t *testing.T) {
	src := `
		program P;
		type
			TColor = (Red, Green, Blue);
			TArr = array[TColor] of Integer;
		var
			a: TArr;
			c: TColor;
		begin
			a[Red] := 1;
			c := Green;
			a[c] := 2
		end.
	`
	l := lexer.New(src)
	p := parser.New(l)
	prog, ok := p.ParseProgram().(*ast.ProgramDecl)
	if !ok || len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	a := NewAnalyzer()
	a.AnalyzeProgram(prog)
	assertNoErrors(t, a.Errors())

	info := a.LookupType("TArr")
	if info == nil {
		t.Fatal("expected TArr to be registered")
	}
	if len(info.Dims) != 1 {
		t.Fatalf("expected one array dimension, got %d", len(info.Dims))
	}
	if info.Dims[0].Low != 0 || info.Dims[0].High != 2 {
		t.Errorf("TColor-bound dimension = [%d,%d], want [0,2]", info.Dims[0].Low, info.Dims[0].High)
	}
}

func TestAnalyzeArrayIndexMustBeOrdinal(t *testing.T) {
	errs := analyze(t, `
		program P;
		type
			TArr = array[1..10] of Integer;
		var
			a: TArr;
		begin
			a[1.5] := 5
		end.
	`)
	assertHasError(t, errs, ErrTypeMismatch)
}

func TestAnalyzeFunctionReturnAssignment(t *testing.T) {
	errs := analyze(t, `
		program P;
		function Square(n: Integer): Integer;
		begin
			Square := n * n
		end;
		begin
			writeln(Square(3))
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeForwardDeclarationResolved(t *testing.T) {
	errs := analyze(t, `
		program P;
		procedure Foo; forward;
		procedure Foo;
		begin
			writeln('foo')
		end;
		begin
			Foo
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeUnresolvedForwardDeclaration(t *testing.T) {
	errs := analyze(t, `
		program P;
		procedure Foo; forward;
		begin
			writeln('never defined')
		end.
	`)
	assertHasError(t, errs, ErrForwardDecl)
}

func TestAnalyzeOverloadResolutionByArgType(t *testing.T) {
	errs := analyze(t, `
		program P;
		function Describe(n: Integer): String;
		begin
			Describe := 'int'
		end;
		function Describe(s: String): String;
		begin
			Describe := 'str'
		end;
		begin
			writeln(Describe(1));
			writeln(Describe('x'))
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeDuplicateLocalDeclaration(t *testing.T) {
	errs := analyze(t, `
		program P;
		var
			x: Integer;
			x: Real;
		begin
		end.
	`)
	assertHasError(t, errs, ErrRedeclaration)
}

func TestAnalyzeEnumOrdinalType(t *testing.T) {
	errs := analyze(t, `
		program P;
		type
			TColor = (Red, Green, Blue);
		var
			c: TColor;
		begin
		end.
	`)
	assertNoErrors(t, errs)
}

func TestAnalyzeConstDecl(t *testing.T) {
	errs := analyze(t, `
		program P;
		const
			Max = 100;
		var
			x: Integer;
		begin
			x := Max
		end.
	`)
	assertNoErrors(t, errs)
}
