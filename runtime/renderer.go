package runtime

import "github.com/vcrobe/ecomarket/vdom"

// Renderer defines the minimal set of runtime operations used by Render() code.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Renderer interface {
	// RenderChild renders a child component in place.
	// The key parameter uniquely identifies the child within one render pass.
	RenderChild(key string, child Component) *vdom.VNode
}
