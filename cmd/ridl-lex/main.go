// Package main is the entry point for ridl-lex, a token dump tool for IDL
// source files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ridl-lang/ridl/pkg/lexer"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ridl-lex [file]",
	Short: "Tokenize an IDL source file",
	Long: `ridl-lex reads an IDL source file (or stdin when no file is given),
lexes it into keyword, literal, identifier and punctuation tokens and
prints one token per line. Use --format yaml for a machine-readable dump.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	rootCmd.SetVersionTemplate("ridl-lex version {{.Version}}\n")

	rootCmd.Flags().String("format", "", "Output format: text or yaml (default text, env RIDL_FORMAT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// tokenDump is the YAML shape of one token.
type tokenDump struct {
	Type  string `yaml:"type"`
	Text  string `yaml:"text"`
	Pos   int    `yaml:"pos"`
	Value string `yaml:"value,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	format := envOrDefault("RIDL_FORMAT", "text")
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		format = v
	}
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}

	var (
		src  []byte
		name = "<stdin>"
		err  error
	)
	if len(args) == 1 {
		name = args[0]
		src, err = os.ReadFile(name)
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(string(src))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	if format == "yaml" {
		dump := make([]tokenDump, 0, len(tokens))
		for _, tok := range tokens {
			dump = append(dump, tokenDump{
				Type:  tok.Type.String(),
				Text:  tok.Text,
				Pos:   tok.Pos,
				Value: tokenValue(tok),
			})
		}
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(dump); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, tok := range tokens {
		if v := tokenValue(tok); v != "" {
			fmt.Fprintf(out, "%d\t%s\t%s\n", tok.Pos, tok.Type, v)
		} else {
			fmt.Fprintf(out, "%d\t%s\t%s\n", tok.Pos, tok.Type, tok.Text)
		}
	}
	return nil
}

// tokenValue renders the parsed payload of a keyword or literal token.
func tokenValue(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TokenKeyword:
		return tok.Keyword.String()
	case lexer.TokenLiteral:
		return tok.Literal.String()
	default:
		return ""
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
