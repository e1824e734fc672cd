//go:build !js && !wasm

package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vcrobe/ecomarket/console"
	"github.com/vcrobe/ecomarket/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page for local development",
	Long: `Renders the landing page once at startup and serves it at "/". Files in the
assets directory (main.wasm, wasm_exec.js) are served under "/assets/".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("assets") {
			cfg.AssetsDir, _ = cmd.Flags().GetString("assets")
		}

		page, err := site.RenderPage(site.PageOptions{
			Title:      cfg.Title,
			Stylesheet: cfg.Stylesheet,
		})
		if err != nil {
			return err
		}

		ln, err := net.Listen("tcp", cfg.Addr)
		if err != nil {
			return errors.Wrapf(err, "listen on %s", cfg.Addr)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		console.Logger().WithField("addr", ln.Addr().String()).
			WithField("assets", cfg.AssetsDir).
			Info("serving landing page")

		if err := site.Serve(ctx, ln, site.NewHandler(page, cfg.AssetsDir), cfg.ShutdownTimeout); err != nil {
			return err
		}
		console.Log("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("assets", "", "Directory served under /assets/")
}
