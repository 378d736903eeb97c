package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pascalc/pascalc/lexer"
	"github.com/pascalc/pascalc/token"
)

var (
	fmtWrite bool
	fmtList  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file...>",
	Short: "Normalize Pascal source whitespace",
	Long: `fmt re-lexes a Pascal-dialect source file, preserving comments, and
re-renders it with normalized token spacing: one space between tokens,
statement separators hugging the preceding token, and a blank line
collapsed to at most one. It reads from standard input and writes to
standard output when no file is given.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to the source file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting would change, instead of printing them")
}

func runFmt(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		src, err := readSource("-")
		if err != nil {
			return err
		}
		fmt.Print(formatSource(src))
		return nil
	}

	hadErr := false
	for _, filename := range args {
		if err := formatFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "pascalc fmt: %s: %v\n", filename, err)
			hadErr = true
		}
	}
	if hadErr {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

func formatFile(filename string) error {
	src, err := readSource(filename)
	if err != nil {
		return err
	}
	formatted := formatSource(src)
	changed := formatted != src

	switch {
	case fmtList:
		if changed {
			fmt.Println(filename)
		}
	case fmtWrite:
		if changed {
			if err := os.WriteFile(filename, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", filename, err)
			}
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}

// formatSource re-lexes src with comments preserved and re-renders the
// token stream with normalized spacing. This is a lexical formatter, not
// an AST-driven pretty-printer (spec.md's Non-goals exclude a
// clang-format-equivalent codegen pretty-printer; the same restraint
// applies here) — it exercises lexer.WithPreserveComments, which the core
// spec defines but no other command puts to use.
func formatSource(src string) string {
	l := lexer.New(src, lexer.WithPreserveComments(true))

	var sb strings.Builder
	lastLine := 0
	needSpace := false
	prevKind := token.ILLEGAL

	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}

		if tok.Pos.Line > lastLine+1 && lastLine != 0 {
			sb.WriteString("\n")
		}
		if tok.Pos.Line != lastLine && lastLine != 0 {
			sb.WriteString("\n")
			needSpace = false
		}
		lastLine = tok.Pos.Line

		if needSpace && !noSpaceBefore(tok.Kind) && !noSpaceAfter(prevKind) {
			sb.WriteString(" ")
		}
		sb.WriteString(tokenText(tok))
		needSpace = true
		prevKind = tok.Kind
	}
	sb.WriteString("\n")
	return sb.String()
}

// noSpaceBefore reports whether a space should never precede a token of
// kind k, regardless of what came before it.
func noSpaceBefore(k token.Kind) bool {
	switch k {
	case token.SEMI, token.COMMA, token.DOT, token.RPAREN, token.RBRACK,
		token.COLON, token.DOTDOT, token.LPAREN, token.LBRACK:
		return true
	}
	return false
}

// noSpaceAfter reports whether a space should never follow a token of kind
// k, regardless of what comes next — the mirror of noSpaceBefore for
// tokens that open a grouping or bind tightly to what follows.
func noSpaceAfter(k token.Kind) bool {
	switch k {
	case token.LPAREN, token.LBRACK, token.DOT, token.CARET, token.AT:
		return true
	}
	return false
}

func tokenText(tok token.Token) string {
	switch tok.Kind {
	case token.STRING:
		return "'" + strings.ReplaceAll(tok.Text, "'", "''") + "'"
	case token.COMMENT:
		return tok.Text
	default:
		return tok.Text
	}
}
