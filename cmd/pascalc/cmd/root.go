// Package cmd implements pascalc's command-line interface: a cobra root
// command plus the lex, parse, emit, build, and fmt subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build-time ldflags; defaulted here for `go run`.
	Version = "0.1.0-dev"
	// GitCommit is set by build-time ldflags.
	GitCommit = "unknown"
)

var verbose bool
var noColor bool

var rootCmd = &cobra.Command{
	Use:   "pascalc",
	Short: "Pascal-to-C++ source translator",
	Long: `pascalc translates a Pascal-dialect source file into C++.

It lexes and parses the input into an AST, resolves symbols and types
against the Pascal-dialect rules (1-based strings, subrange arrays,
overload resolution, parameter modes), then lowers the AST to a .cpp
translation unit that includes the pascalrt.hpp runtime header.`,
	Version: Version,
}

// Execute runs the root command and returns any error from the invoked
// subcommand, letting main decide the process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("pascalc version {{.Version}} (%s)\n", GitCommit))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in diagnostics")
	rootCmd.PersistentFlags().String("format", "text", "diagnostic output format: text or json")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "pascalc: "+msg+"\n", args...)
}
