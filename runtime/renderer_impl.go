package runtime

import (
	"github.com/pkg/errors"

	"github.com/vcrobe/ecomarket/console"
	"github.com/vcrobe/ecomarket/vdom"
)

// ErrAlreadyMounted is returned when RenderRoot runs a second time on the same renderer.
var ErrAlreadyMounted = errors.New("renderer already mounted")

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the concrete implementation of the Renderer interface.
// It renders the current component once and attaches the result to the
// host element matched by mountID.
type RendererImpl struct {
	host             vdom.Host
	mountID          string
	currentComponent Component       // The root component to render
	activeKeys       map[string]bool // Child keys seen during the current render
	mounted          *vdom.VNode     // Tree attached by the last successful RenderRoot
}

// NewRenderer creates a new runtime renderer that mounts into the element
// matched by mountID on host.
func NewRenderer(host vdom.Host, mountID string) *RendererImpl {
	return &RendererImpl{
		host:       host,
		mountID:    mountID,
		activeKeys: make(map[string]bool),
	}
}

// SetCurrentComponent sets the component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// Mounted returns the tree attached by RenderRoot, or nil before mounting.
func (r *RendererImpl) Mounted() *vdom.VNode {
	return r.mounted
}

// RenderRoot builds the tree of the current component and attaches it as
// the sole child of the mount target. The target is resolved before any
// rendering happens, so a missing target leaves the document untouched.
func (r *RendererImpl) RenderRoot() error {
	if r.mounted != nil {
		return ErrAlreadyMounted
	}
	if r.currentComponent == nil {
		return errors.New("no component to render")
	}
	if r.host == nil {
		return vdom.TargetUnavailable(r.mountID, "no host")
	}

	target, err := r.host.Lookup(r.mountID)
	if err != nil {
		return err
	}

	r.activeKeys = make(map[string]bool)
	r.currentComponent.SetRenderer(r)

	tree, err := r.callRender(r.currentComponent, "__root__")
	if err != nil {
		return err
	}
	if tree == nil {
		return errors.Errorf("component rendered no tree for %q", r.mountID)
	}

	target.Clear()
	if err := target.Append(tree); err != nil {
		return errors.Wrapf(err, "attach to %q", r.mountID)
	}

	r.mounted = tree
	return nil
}

// RenderChild renders a child component during the root render.
// Keys must be unique within one render; a repeated key is reported and
// the child is still rendered.
func (r *RendererImpl) RenderChild(key string, child Component) *vdom.VNode {
	if r.activeKeys[key] {
		console.Warn("duplicate child key in render:", key)
	}
	r.activeKeys[key] = true

	child.SetRenderer(r)
	return child.Render(r)
}
