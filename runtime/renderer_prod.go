//go:build !dev
// +build !dev

package runtime

import (
	"github.com/pkg/errors"

	"github.com/vcrobe/ecomarket/console"
	"github.com/vcrobe/ecomarket/vdom"
)

// callRender invokes Render in production mode.
// In production mode, panics are recovered, logged, and returned as errors
// so that nothing is attached to the document.
func (r *RendererImpl) callRender(comp Component, key string) (tree *vdom.VNode, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("render panic in component", key)
			tree = nil
			err = errors.Errorf("render panic in component %s: %v", key, rec)
		}
	}()
	return comp.Render(r), nil
}
