//go:build dev
// +build dev

package runtime

import "github.com/vcrobe/ecomarket/vdom"

// callRender invokes Render in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func (r *RendererImpl) callRender(comp Component, key string) (*vdom.VNode, error) {
	return comp.Render(r), nil
}
