//go:build !wasm
// +build !wasm

package runtime_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/ecomarket/runtime"
	"github.com/vcrobe/ecomarket/vdom"
	"github.com/vcrobe/ecomarket/vdom/htmldoc"
)

type greeting struct {
	runtime.ComponentBase
}

func (g *greeting) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(vdom.Class("greeting"), vdom.Paragraph("привет", nil))
}

func TestMount_ReplacesBodyContents(t *testing.T) {
	doc, err := htmldoc.ParseString(`<html><body><noscript>enable wasm</noscript></body></html>`)
	require.NoError(t, err)

	tree, err := runtime.Mount(doc, "body", &greeting{})

	require.NoError(t, err)
	require.NotNil(t, tree)
	out := doc.String()
	assert.Contains(t, out, `<body><div class="greeting"><p>привет</p></div></body>`)
	assert.Equal(t, 1, strings.Count(out, `class="greeting"`))
}

func TestMount_NoDocument(t *testing.T) {
	tree, err := runtime.Mount(&htmldoc.Document{}, "body", &greeting{})

	assert.Nil(t, tree)
	assert.True(t, errors.Is(err, runtime.ErrMountTargetUnavailable), "got %v", err)
}
