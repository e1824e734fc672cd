//go:build !wasm && !dev
// +build !wasm,!dev

package runtime_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/ecomarket/runtime"
	"github.com/vcrobe/ecomarket/testcomponents"
	"github.com/vcrobe/ecomarket/vdom"
)

// label is a leaf component rendering a single paragraph.
type label struct {
	runtime.ComponentBase
	Text string
}

func (l *label) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Paragraph(l.Text, nil)
}

// list renders one label child per entry, keyed by Keys.
type list struct {
	runtime.ComponentBase
	Keys    []string
	renders int
}

func (c *list) Render(r runtime.Renderer) *vdom.VNode {
	c.renders++
	root := vdom.Div(vdom.Class("list"))
	for _, k := range c.Keys {
		root.Children = append(root.Children, r.RenderChild(k, &label{Text: k}))
	}
	return root
}

type panicky struct {
	runtime.ComponentBase
}

func (p *panicky) Render(r runtime.Renderer) *vdom.VNode {
	panic("boom")
}

type empty struct {
	runtime.ComponentBase
}

func (e *empty) Render(r runtime.Renderer) *vdom.VNode {
	return nil
}

// TestRenderRoot_AttachesOnce verifies the rendered tree becomes the only
// child of the mount target.
func TestRenderRoot_AttachesOnce(t *testing.T) {
	// Arrange
	host := &testcomponents.RecordingHost{}
	comp := &list{Keys: []string{"a", "b"}}
	r := runtime.NewRenderer(host, "body")
	r.SetCurrentComponent(comp)

	// Act
	err := r.RenderRoot()

	// Assert
	require.NoError(t, err)
	require.Len(t, host.Attached, 1)
	assert.Same(t, r.Mounted(), host.Attached[0])
	assert.Equal(t, 1, host.Clears)
	assert.Len(t, host.Attached[0].Children, 2)
	assert.Equal(t, "b", host.Attached[0].Children[1].Content)
	assert.True(t, comp.Mounted())
	assert.Same(t, r, comp.GetRenderer())
}

// TestRenderRoot_SecondCallKeepsSingleCopy verifies a repeated mount is
// rejected without rendering or attaching again.
func TestRenderRoot_SecondCallKeepsSingleCopy(t *testing.T) {
	host := &testcomponents.RecordingHost{}
	comp := &list{Keys: []string{"a"}}
	r := runtime.NewRenderer(host, "body")
	r.SetCurrentComponent(comp)
	require.NoError(t, r.RenderRoot())

	err := r.RenderRoot()

	assert.True(t, errors.Is(err, runtime.ErrAlreadyMounted))
	assert.Len(t, host.Attached, 1)
	assert.Equal(t, 1, comp.renders)
	assert.Equal(t, 1, host.Lookups)
}

// TestRenderRoot_MissingTarget verifies nothing is rendered or attached
// when the host has no document.
func TestRenderRoot_MissingTarget(t *testing.T) {
	host := &testcomponents.MissingHost{}
	comp := &list{Keys: []string{"a"}}
	r := runtime.NewRenderer(host, "body")
	r.SetCurrentComponent(comp)

	err := r.RenderRoot()

	require.Error(t, err)
	assert.True(t, errors.Is(err, runtime.ErrMountTargetUnavailable), "got %v", err)
	assert.Contains(t, err.Error(), `"body"`)
	assert.Equal(t, 0, comp.renders)
	assert.Nil(t, r.Mounted())
}

func TestRenderRoot_SelectorMismatch(t *testing.T) {
	host := &testcomponents.RecordingHost{Selector: "#app"}
	r := runtime.NewRenderer(host, "body")
	r.SetCurrentComponent(&list{})

	err := r.RenderRoot()

	assert.True(t, errors.Is(err, runtime.ErrMountTargetUnavailable))
	assert.Empty(t, host.Attached)
}

func TestRenderRoot_NilHost(t *testing.T) {
	r := runtime.NewRenderer(nil, "body")
	r.SetCurrentComponent(&list{})

	err := r.RenderRoot()

	assert.True(t, errors.Is(err, runtime.ErrMountTargetUnavailable))
}

func TestRenderRoot_NoComponent(t *testing.T) {
	host := &testcomponents.RecordingHost{}
	r := runtime.NewRenderer(host, "body")

	assert.Error(t, r.RenderRoot())
	assert.Equal(t, 0, host.Lookups)
}

// TestRenderRoot_PanicRecovered verifies production builds turn a render
// panic into an error and leave the target untouched.
func TestRenderRoot_PanicRecovered(t *testing.T) {
	host := &testcomponents.RecordingHost{}
	r := runtime.NewRenderer(host, "body")
	r.SetCurrentComponent(&panicky{})

	err := r.RenderRoot()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 0, host.Clears)
	assert.Empty(t, host.Attached)
	assert.Nil(t, r.Mounted())
}

func TestRenderRoot_NilTree(t *testing.T) {
	host := &testcomponents.RecordingHost{}
	r := runtime.NewRenderer(host, "body")
	r.SetCurrentComponent(&empty{})

	assert.Error(t, r.RenderRoot())
	assert.Empty(t, host.Attached)
}

func TestRenderRoot_AppendFailure(t *testing.T) {
	host := &testcomponents.RecordingHost{AppendErr: errors.New("dom gone")}
	r := runtime.NewRenderer(host, "body")
	r.SetCurrentComponent(&list{})

	err := r.RenderRoot()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dom gone")
	assert.Nil(t, r.Mounted())
}

// TestRenderChild_DuplicateKeysStillRender verifies repeated keys are
// tolerated: both children appear in the tree.
func TestRenderChild_DuplicateKeysStillRender(t *testing.T) {
	host := &testcomponents.RecordingHost{}
	r := runtime.NewRenderer(host, "body")
	r.SetCurrentComponent(&list{Keys: []string{"x", "x"}})

	require.NoError(t, r.RenderRoot())

	assert.Len(t, r.Mounted().Children, 2)
}
