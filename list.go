package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/turtle/drawings"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in drawings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range drawings.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}
