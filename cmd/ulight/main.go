// Command ulight is a thin CLI front-end over the ulight highlighting core:
// it reads source text and prints its classified token stream, or lists
// the languages the core supports. File I/O, flag parsing and output
// formatting live here; tokenizing itself never leaves the library.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ulight",
	Short: "Single-pass syntax highlighting for many languages",
	Long: `ulight tokenizes source text for one of several supported languages
and prints the resulting classified token stream.

It never builds an AST and never fails on malformed input: ambiguous
bytes are reported as an "error" token and tokenizing continues.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log dispatch at debug level to stderr")
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}

func newLogHandler() *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ulight: %v\n", err)
		os.Exit(1)
	}
}
