package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pascalc/pascalc/internal/config"
)

var (
	buildCompiler string
	buildOutput   string
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Translate a source file to C++ and compile it with a C++ toolchain",
	Long: `build runs the same pipeline as "emit", then shells out to a C++
compiler to produce a native binary. The compiler invocation is the
downstream toolchain collaborator spec.md §1 places out of the compiler
core's scope: pascalc only ever writes a .cpp file and a shell command.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildCompiler, "cxx", "c++", "C++ compiler to invoke")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output binary (default: <input> without extension)")
	buildCmd.Flags().StringVar(&emitConfigPath, "config", "pascalc.yaml", "project config file")
}

func runBuild(cmd *cobra.Command, args []string) error {
	filename := args[0]

	cfg, err := config.Load(emitConfigPath)
	if err != nil {
		return err
	}

	cppFile, err := emitToFile(cmd, filename)
	if err != nil {
		return err
	}

	binFile := buildOutput
	if binFile == "" {
		binFile = withExt(filepath.Base(filename), "")
	}

	runtimeDir := filepath.Dir(cppFile)
	cxxArgs := []string{
		"-std=" + cfg.CppStandard,
		"-I", runtimeDir,
		cppFile,
		"-o", binFile,
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%s %s\n", buildCompiler, strings.Join(cxxArgs, " "))
	}

	c := exec.Command(buildCompiler, cxxArgs...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", buildCompiler, err)
	}
	return nil
}
