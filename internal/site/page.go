// Package site pre-renders the landing page into a complete HTML document
// and serves it over HTTP for local development.
package site

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/vcrobe/ecomarket/internal/app/components"
	"github.com/vcrobe/ecomarket/runtime"
	"github.com/vcrobe/ecomarket/vdom/htmldoc"
)

// DefaultSelector is where the page mounts, matching the browser entry point.
const DefaultSelector = "body"

// PageOptions controls the document shell around the rendered page.
type PageOptions struct {
	Title      string
	Stylesheet string
	Selector   string
}

// RenderPage mounts the landing page into a fresh document shell and
// returns the serialized document.
func RenderPage(opts PageOptions) ([]byte, error) {
	if opts.Selector == "" {
		opts.Selector = DefaultSelector
	}

	doc, err := htmldoc.Shell(opts.Title, opts.Stylesheet)
	if err != nil {
		return nil, errors.Wrap(err, "build shell")
	}

	if _, err := runtime.Mount(doc, opts.Selector, &components.EcoMarketplace{}); err != nil {
		return nil, errors.Wrap(err, "mount page")
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
