// Package testcomponents holds in-memory test harnesses for components:
// a renderer that captures VDOM output and hosts that record what gets
// mounted, with no browser or WASM dependencies.
package testcomponents

import (
	"github.com/vcrobe/ecomarket/runtime"
	"github.com/vcrobe/ecomarket/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Inspect the resulting VDOM tree
// - See which child keys were rendered, in order
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	childKeys   []string
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs a render of the component and returns its tree.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.childKeys = nil
	r.currentVDOM = r.component.Render(r)
	return r.currentVDOM
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// ChildKeys returns the keys passed to RenderChild during the last render.
func (r *TestRenderer) ChildKeys() []string {
	return append([]string(nil), r.childKeys...)
}

// RenderChild renders the child in place and records its key.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	r.childKeys = append(r.childKeys, key)
	child.SetRenderer(r)
	return child.Render(r)
}
