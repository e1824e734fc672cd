//go:build !js && !wasm

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vcrobe/ecomarket/console"
	"github.com/vcrobe/ecomarket/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the pre-rendered page",
	Long:  `Mounts the landing page into a document shell and writes the resulting HTML to a file or stdout.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		selector, _ := cmd.Flags().GetString("selector")

		page, err := site.RenderPage(site.PageOptions{
			Title:      cfg.Title,
			Stylesheet: cfg.Stylesheet,
			Selector:   selector,
		})
		if err != nil {
			return err
		}

		if out == "" || out == "-" {
			return writePage(cmd.OutOrStdout(), page)
		}

		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		if err := writePage(f, page); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "close %s", out)
		}
		console.Log("wrote", out)
		return nil
	},
}

func writePage(w io.Writer, page []byte) error {
	if _, err := w.Write(page); err != nil {
		return errors.Wrap(err, "write page")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	renderCmd.Flags().String("selector", site.DefaultSelector, "Mount selector inside the document shell")
}
