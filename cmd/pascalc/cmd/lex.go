package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pascalc/pascalc/lexer"
	"github.com/pascalc/pascalc/token"
)

var lexShowPos bool

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a source file and print its tokens",
	Long: `lex tokenizes a Pascal-dialect source file and prints the resulting
token stream, one token per line. Pass - to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "print each token's line:column")
}

func runLex(_ *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	l := lexer.New(src)
	count := 0
	for {
		tok := l.NextToken()
		count++
		printLexToken(tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	if verbose {
		fmt.Printf("--- %d token(s)\n", count)
	}
	return nil
}

func printLexToken(tok token.Token) {
	if lexShowPos {
		fmt.Printf("%-12s %-20q @%d:%d\n", tok.Kind, tok.Text, tok.Pos.Line, tok.Pos.Column)
		return
	}
	fmt.Printf("%-12s %q\n", tok.Kind, tok.Text)
}
