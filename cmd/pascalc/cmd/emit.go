package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pascalc/pascalc/ast"
	"github.com/pascalc/pascalc/emit"
	"github.com/pascalc/pascalc/internal/config"
)

var (
	emitOutput     string
	emitConfigPath string
)

var emitCmd = &cobra.Command{
	Use:   "emit <file>",
	Short: "Translate a source file to C++",
	Long: `emit lexes, parses, and semantically analyzes a Pascal-dialect source
file, then lowers it to a .cpp translation unit that includes the
pascalrt.hpp runtime header.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := emitToFile(cmd, args[0])
		return err
	},
}

func init() {
	rootCmd.AddCommand(emitCmd)
	emitCmd.Flags().StringVarP(&emitOutput, "output", "o", "", "output file name, written into the config's output directory (default: <input base name>.cpp)")
	emitCmd.Flags().StringVar(&emitConfigPath, "config", "pascalc.yaml", "project config file")
}

// emitToFile runs the full emit pipeline and returns the path it wrote the
// translated C++ to, so the build subcommand can reuse it without
// re-invoking the CLI layer.
func emitToFile(cmd *cobra.Command, filename string) (cppPath string, err error) {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := config.Load(emitConfigPath)
	if err != nil {
		return "", err
	}

	src, err := readSource(filename)
	if err != nil {
		return "", err
	}

	decl, errs := parseSource(src, filename)
	if len(errs) > 0 {
		return "", printDiagnostics(errs, format, !noColor)
	}

	program, ok := decl.(*ast.ProgramDecl)
	if !ok {
		return "", fmt.Errorf("%s: emit currently only supports whole programs, not standalone units", filename)
	}

	analyzer, errs := analyzeProgram(program, src, filename)
	if len(errs) > 0 {
		return "", printDiagnostics(errs, format, !noColor)
	}

	cpp := emit.New(analyzer).EmitProgram(program)

	outFile := emitOutput
	if outFile == "" {
		outFile = withExt(filename, ".cpp")
	}
	outFile = filepath.Join(cfg.OutputDir, filepath.Base(outFile))
	if err := os.WriteFile(outFile, []byte(cpp), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outFile, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "wrote %s\n", outFile)
	}
	return outFile, nil
}

func withExt(filename, ext string) string {
	trimmed := strings.TrimSuffix(filename, filepath.Ext(filename))
	return trimmed + ext
}
