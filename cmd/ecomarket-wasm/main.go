//go:build js || wasm

package main

import (
	"github.com/vcrobe/ecomarket/console"
	"github.com/vcrobe/ecomarket/internal/app/components"
	"github.com/vcrobe/ecomarket/runtime"
	"github.com/vcrobe/ecomarket/vdom"
)

func main() {
	// Create the renderer against the page document, mounting into <body>
	renderer := runtime.NewRenderer(vdom.BrowserHost{}, "body")

	// Set the root component and render it once
	renderer.SetCurrentComponent(&components.EcoMarketplace{})
	if err := renderer.RenderRoot(); err != nil {
		console.Error("Failed to mount page:", err.Error())
		panic(err)
	}

	// The page is static: nothing is left for Go to do, the browser owns the DOM now.
}
