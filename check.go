package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/turtle/config"
)

var checkCmd = &cobra.Command{
	Use:   "check <script>",
	Short: "Run a script without a window and report the final turtle state",
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

		t := s.turtle
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, turtle at (%d,%d) facing %s, pen down %t, colour %s\n",
			args[0], t.X, t.Y, t.Facing, t.PenDown, config.Colour(t.Colour))
		return nil
	},
}
