package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prim/internal/diagfmt"
	"prim/internal/driver"
	"prim/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "Dump the token stream of a file",
	Long: `Tokenize lexes a single source file and prints its tokens. With
--with-trivia every token also shows the whitespace and comments attached to it.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("with-trivia", false, "include leading/trailing trivia for every token")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withTrivia, err := cmd.Flags().GetBool("with-trivia")
	if err != nil {
		return fmt.Errorf("failed to get with-trivia flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика уходит в stderr, чтобы не мешать потоку токенов
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
		opts := diagfmt.PrettyOpts{
			Color:   useColor,
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	tokens := result.Tokens
	if !withTrivia {
		tokens = stripTrivia(tokens)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s (expected pretty|json)", format)
	}
}

// stripTrivia возвращает копию токенов без привязанной тривии.
func stripTrivia(tokens []token.Token) []token.Token {
	out := make([]token.Token, len(tokens))
	for i, tok := range tokens {
		tok.Leading = nil
		tok.Trailing = nil
		out[i] = tok
	}
	return out
}
