package runtime

// ComponentBase is a struct that components can embed to satisfy the
// SetRenderer half of the Component interface.
// This type has no build tags and works in both WASM and test environments.
type ComponentBase struct {
	renderer Renderer // Use interface type, not concrete implementation
}

// SetRenderer is called by the framework's runtime to inject a reference
// to the renderer. This method should not be called by user code.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// GetRenderer returns the renderer instance associated with this component,
// or nil if the component has not been rendered yet.
func (b *ComponentBase) GetRenderer() Renderer {
	return b.renderer
}

// Mounted reports whether a renderer has been attached.
func (b *ComponentBase) Mounted() bool {
	return b.renderer != nil
}
