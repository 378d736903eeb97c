// Package testutil collects the parse-analyze-emit harness duplicated
// across this module's package tests into one place, in the spirit of the
// fixture harness go-dws/internal/interp/fixture_test.go builds around
// go-snaps: load a source string once, run it through the full pipeline,
// and let the caller assert on whichever stage it cares about.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/emit"
	"github.com/pascalc/pascalc/lexer"
	"github.com/pascalc/pascalc/parser"
	"github.com/pascalc/pascalc/sema"
)

// Pipeline lexes, parses, and analyzes src as a complete program, then
// lowers it to C++. It fails the test immediately on any parse or semantic
// error, since a test driving the full pipeline should never be exercising
// error recovery — that belongs to the stage-specific test suites.
func Pipeline(t *testing.T, src string) (*ast.ProgramDecl, *sema.Analyzer, string) {
	t.Helper()

	prog, errs := Parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	a := sema.NewAnalyzer()
	a.AnalyzeProgram(prog)
	if errs := a.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected semantic errors: %v", errs)
	}

	cpp := emit.New(a).EmitProgram(prog)
	return prog, a, cpp
}

// Parse lexes and parses src as a complete program, returning the parser's
// raw errors rather than failing the test, for callers that specifically
// want to assert on malformed input.
func Parse(t *testing.T, src string) (*ast.ProgramDecl, []parser.Error) {
	t.Helper()
	p := parser.New(lexer.New(src))
	decl := p.ParseProgram()
	if len(p.Errors()) != 0 {
		return nil, p.Errors()
	}
	prog, ok := decl.(*ast.ProgramDecl)
	if !ok {
		t.Fatalf("expected *ast.ProgramDecl, got %T", decl)
	}
	return prog, nil
}

// WriteFile writes content to name under dir, failing the test on error,
// and returns the full path. Handy for exercising file-based commands
// (unitloader, the fmt/emit/build subcommands) without leaving fixtures on
// disk between test runs.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
