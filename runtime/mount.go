package runtime

import "github.com/vcrobe/ecomarket/vdom"

// ErrMountTargetUnavailable is returned when the host cannot supply the
// element a component is mounted into.
var ErrMountTargetUnavailable = vdom.ErrMountTargetUnavailable

// Mount renders comp once and attaches the result as the only child of the
// element matched by selector. It returns the attached tree.
//
// Mount is the one-shot entry used by applications with a single static
// root; it does not keep the renderer around for later renders.
func Mount(host vdom.Host, selector string, comp Component) (*vdom.VNode, error) {
	r := NewRenderer(host, selector)
	r.SetCurrentComponent(comp)
	if err := r.RenderRoot(); err != nil {
		return nil, err
	}
	return r.Mounted(), nil
}
