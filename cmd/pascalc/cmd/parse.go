package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/internal/diag"
)

var parseTrace bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and report any syntax errors",
	Long: `parse runs the lexer and parser over a Pascal-dialect source file and
reports syntax errors, if any. With --trace, the parsed AST is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseTrace, "trace", false, "print the parsed AST")
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]
	src, err := readSource(filename)
	if err != nil {
		return err
	}

	decl, errs := parseSource(src, filename)
	format, _ := cmd.Flags().GetString("format")
	if len(errs) > 0 {
		return printDiagnostics(errs, format, !noColor)
	}

	if parseTrace {
		fmt.Println(diag.Trace(decl))
	}

	switch d := decl.(type) {
	case *ast.ProgramDecl:
		fmt.Printf("parsed program %q: %d declaration(s)\n", d.Name, len(d.Decls))
	case *ast.UnitDecl:
		fmt.Printf("parsed unit %q: %d interface, %d implementation declaration(s)\n",
			d.Name, len(d.InterfaceDecls), len(d.ImplementationDecls))
	}
	return nil
}
