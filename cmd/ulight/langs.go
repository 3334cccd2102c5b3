package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ulight/ulight"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List the language tags accepted by \"ulight tokens --lang\"",
	RunE:  runLangs,
}

func init() {
	rootCmd.AddCommand(langsCmd)
}

func runLangs(cmd *cobra.Command, args []string) error {
	for _, tag := range ulight.AllLangTags() {
		fmt.Fprintln(cmd.OutOrStdout(), tag.String())
	}
	return nil
}
