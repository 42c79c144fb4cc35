package main

import (
	"github.com/spf13/cobra"

	"github.com/milk9111/turtle/config"
	"github.com/milk9111/turtle/render"
)

var viewCmd = &cobra.Command{
	Use:   "view <script>",
	Short: "Run a script and show the canvas in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}

		s, err := loadSession(cfg, args[0], logger)
		if err != nil {
			return err
		}

		term, err := render.NewTerminal()
		if err != nil {
			return err
		}
		defer term.Close()

		if err := term.Present(s.canvas); err != nil {
			return err
		}
		return term.WaitKey(s.canvas)
	},
}
