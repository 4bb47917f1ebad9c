// Command wealdfront is a thin demonstration harness over the Weald
// front-end: it lexes and parses a file and prints the resulting tokens,
// problems, or AST. It is not part of the front-end itself.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/unleashy/weald/internal/display"
	"github.com/unleashy/weald/lexer"
	"github.com/unleashy/weald/parser"
	"github.com/unleashy/weald/source"
)

func main() {
	root := &cobra.Command{
		Use:           "wealdfront",
		Short:         "Lex and parse Weald source files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(tokensCmd(), parseCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func readSource(path string) (*source.Source, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return source.New(path, string(body)), nil
}

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}

			toks, problems := lexer.Tokenize(src)
			display.Tokens(cmd.OutOrStdout(), src, toks)
			display.Problems(cmd.ErrOrStderr(), src, problems)
			return nil
		},
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}

			toks, lexProblems := lexer.Tokenize(src)
			script, parseProblems := parser.Parse(toks)

			display.Script(cmd.OutOrStdout(), script)
			display.Problems(cmd.ErrOrStderr(), src, lexProblems)
			display.Problems(cmd.ErrOrStderr(), src, parseProblems)
			return nil
		},
	}
}
