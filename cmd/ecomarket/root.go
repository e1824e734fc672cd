//go:build !js && !wasm

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vcrobe/ecomarket/console"
	"github.com/vcrobe/ecomarket/internal/config"
)

// cfg is loaded from the environment before any command runs; flags
// applied by each command override it.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "ecomarket",
	Short: "Pre-render and serve the ecological marketplace landing page",
	Long: `ecomarket renders the landing page component natively, through the same
mount path the WebAssembly build uses in the browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		return console.SetLevel(cfg.LogLevel)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		console.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
