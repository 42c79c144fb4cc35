// turtle is a small turtle-graphics interpreter.
//
// Usage:
//
//	turtle [script]          - run script, then draw with the keyboard
//	turtle check <script>    - run script headless and report the result
//	turtle view <script>     - run script and show it in the terminal
//	turtle list              - list the built-in drawings
//
// A script that is not found on disk is looked up among the built-in
// drawings, so "turtle square" works from anywhere.
//
// Keys: W/A/S/D or arrows move, Space toggles the pen, Escape quits.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/turtle/config"
	"github.com/milk9111/turtle/drawings"
	"github.com/milk9111/turtle/script"
)

var (
	flagConfig string
	flagDebug  bool
	flagWatch  bool
	flagHUD    bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error(err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "turtle [script]",
	Short:         "Draw with a turtle from a script and the keyboard",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "turtle",
		})
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
	RunE: runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ./"+config.DefaultFile+" or built-in)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log every executed instruction")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload the script when it changes")
	rootCmd.Flags().BoolVar(&flagHUD, "hud", false, "show turtle status line")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(listCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		logger.Info("no draw file specified")
	}

	s, err := loadSession(cfg, path, logger)
	if err != nil {
		return err
	}

	game := NewGame(cfg, s, path, logger)

	if flagWatch && path != "" {
		if !drawings.OnDisk(path) {
			return fmt.Errorf("watch %s: not a file on disk", path)
		}
		w, err := script.NewWatcher(path)
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		defer w.Close()
		game.Watch(w)
	}

	if flagHUD || cfg.HUD {
		hud, err := NewHUD()
		if err != nil {
			return err
		}
		game.ShowHUD(hud)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
