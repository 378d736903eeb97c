package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/internal/diag"
	"github.com/pascalc/pascalc/internal/errors"
	"github.com/pascalc/pascalc/lexer"
	"github.com/pascalc/pascalc/parser"
	"github.com/pascalc/pascalc/sema"
)

// readSource reads filename, or stdin when filename is "-".
func readSource(filename string) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return string(data), nil
}

// parseSource lexes and parses src, converting lexer and parser errors into
// the unified *errors.CompilerError list at this boundary exactly as the
// teacher's compile.go does for its own lexer/parser errors.
func parseSource(src, filename string) (ast.Decl, []*errors.CompilerError) {
	l := lexer.New(src)
	p := parser.New(l)
	decl := p.ParseProgram()

	if len(l.Errors()) == 0 && len(p.Errors()) == 0 {
		return decl, nil
	}
	compilerErrors := make([]*errors.CompilerError, 0, len(l.Errors())+len(p.Errors()))
	for _, lerr := range l.Errors() {
		compilerErrors = append(compilerErrors, errors.NewCompilerError(lerr.Pos, lerr.Message, src, filename))
	}
	for _, perr := range p.Errors() {
		compilerErrors = append(compilerErrors, errors.NewCompilerError(perr.Pos, perr.Message, src, filename))
	}
	return decl, compilerErrors
}

// analyzeProgram runs semantic analysis on a parsed program, converting the
// analyzer's structured errors into the unified diagnostic type.
func analyzeProgram(p *ast.ProgramDecl, src, filename string) (*sema.Analyzer, []*errors.CompilerError) {
	a := sema.NewAnalyzer()
	a.AnalyzeProgram(p)
	if len(a.Errors()) == 0 {
		return a, nil
	}
	compilerErrors := make([]*errors.CompilerError, 0, len(a.Errors()))
	for _, semErr := range a.Errors() {
		compilerErrors = append(compilerErrors, semErr.ToCompilerError(src, filename))
	}
	return a, compilerErrors
}

// printDiagnostics renders errs in the requested format to stderr and
// returns a non-nil summary error for a subcommand's RunE to return
// directly.
func printDiagnostics(errs []*errors.CompilerError, format string, color bool) error {
	rendered, err := diag.RenderErrors(errs, diag.ParseFormat(format), color)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, rendered)
	return fmt.Errorf("%d error(s)", len(errs))
}
